// Package compose turns validated payloads into minimal mutation
// descriptions: ordered partial-update change lists and normalized order
// item lists.
package compose

import (
	"restaurant-orders-api/payload"
)

// FieldSpec declares one mutable field of an entity: its wire name, the
// column it maps to, and how to extract its typed value from the payload.
type FieldSpec struct {
	Name    string
	Column  string
	Extract func(v payload.Value) (interface{}, error)
}

// Change is one (column, value) pair of a partial update. Columns come from
// FieldSpec declarations, never from the payload, so downstream statement
// builders can interpolate them while binding every value as a placeholder.
type Change struct {
	Field  string
	Column string
	Value  interface{}
}

// Update returns the changes for the mutable fields present in the payload,
// in declared field order regardless of payload order. An empty result
// means the update is a no-op; callers treat that as success without a
// write. Forbidden and unrecognized fields are rejected before this runs.
func Update(p payload.Payload, fields []FieldSpec) ([]Change, error) {
	var changes []Change
	for _, f := range fields {
		v := p.Get(f.Name)
		if !v.Present() {
			continue
		}
		val, err := f.Extract(v)
		if err != nil {
			return nil, err
		}
		changes = append(changes, Change{Field: f.Name, Column: f.Column, Value: val})
	}
	return changes, nil
}
