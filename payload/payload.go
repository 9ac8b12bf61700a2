// Package payload represents inbound JSON bodies as a tagged-value mapping,
// so every validation rule is an explicit check on a value's kind rather
// than a runtime coercion.
package payload

import "sort"

type Kind int

const (
	Absent Kind = iota
	Null
	String
	Number
	Bool
	Array
	Object
)

// Value is a single payload field. The zero Value is Absent.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	arr  []Value
	obj  map[string]Value
}

func (v Value) Kind() Kind { return v.kind }

// Present reports whether the field occurred in the payload at all.
// An explicit null is present.
func (v Value) Present() bool { return v.kind != Absent }

func (v Value) Str() string  { return v.str }
func (v Value) Num() float64 { return v.num }
func (v Value) Bool() bool   { return v.b }
func (v Value) Arr() []Value { return v.arr }
func (v Value) Obj() Payload { return v.obj }

// Payload maps field names to tagged values.
type Payload map[string]Value

// FromMap converts a decoded JSON object (as encoding/json produces it:
// float64 numbers, []interface{} arrays, map[string]interface{} objects)
// into a Payload.
func FromMap(m map[string]interface{}) Payload {
	p := make(Payload, len(m))
	for k, raw := range m {
		p[k] = fromAny(raw)
	}
	return p
}

func fromAny(raw interface{}) Value {
	switch x := raw.(type) {
	case nil:
		return Value{kind: Null}
	case string:
		return Value{kind: String, str: x}
	case float64:
		return Value{kind: Number, num: x}
	case bool:
		return Value{kind: Bool, b: x}
	case []interface{}:
		arr := make([]Value, len(x))
		for i, e := range x {
			arr[i] = fromAny(e)
		}
		return Value{kind: Array, arr: arr}
	case map[string]interface{}:
		return Value{kind: Object, obj: FromMap(x)}
	default:
		// json.Decoder never produces anything else for interface{} targets.
		return Value{kind: Null}
	}
}

// Get returns the field's value; Absent if the key does not occur.
func (p Payload) Get(name string) Value { return p[name] }

// Has reports key presence, explicit null included.
func (p Payload) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// Keys returns the payload's field names sorted for deterministic output.
func (p Payload) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
