package payload

import (
	"math"
	"strconv"
	"strings"

	"restaurant-orders-api/outcome"
)

// Field validators. Each checks one already-present field and returns the
// typed Go value on success. Failures carry the outcome kind the caller
// reports, so handlers never re-map validation errors.

// TrimmedString requires a string that is non-empty after trimming
// whitespace. The original (untrimmed) value is returned.
func TrimmedString(field string, v Value) (string, error) {
	if v.Kind() != String {
		return "", outcome.Errorf(outcome.TypeOrConstraintViolation, "field %q must be a string", field)
	}
	if strings.TrimSpace(v.Str()) == "" {
		return "", outcome.Errorf(outcome.TypeOrConstraintViolation, "field %q must not be empty", field)
	}
	return v.Str(), nil
}

// AnyString requires a string; empty is allowed.
func AnyString(field string, v Value) (string, error) {
	if v.Kind() != String {
		return "", outcome.Errorf(outcome.TypeOrConstraintViolation, "field %q must be a string", field)
	}
	return v.Str(), nil
}

// Boolean requires a JSON boolean.
func Boolean(field string, v Value) (bool, error) {
	if v.Kind() != Bool {
		return false, outcome.Errorf(outcome.TypeOrConstraintViolation, "field %q must be a boolean", field)
	}
	return v.Bool(), nil
}

// Cuisines requires a non-empty array of non-empty trimmed strings.
func Cuisines(field string, v Value) ([]string, error) {
	if v.Kind() != Array {
		return nil, outcome.Errorf(outcome.TypeOrConstraintViolation, "field %q must be an array of strings", field)
	}
	if len(v.Arr()) == 0 {
		return nil, outcome.Errorf(outcome.TypeOrConstraintViolation, "field %q must not be empty", field)
	}
	out := make([]string, 0, len(v.Arr()))
	for _, e := range v.Arr() {
		if e.Kind() != String || strings.TrimSpace(e.Str()) == "" {
			return nil, outcome.Errorf(outcome.TypeOrConstraintViolation, "field %q must contain only non-empty strings", field)
		}
		out = append(out, e.Str())
	}
	return out, nil
}

// Price requires a number >= 0 and returns it rounded to 2 decimal places.
func Price(field string, v Value) (float64, error) {
	if v.Kind() != Number {
		return 0, outcome.Errorf(outcome.TypeOrConstraintViolation, "field %q must be a number", field)
	}
	if v.Num() < 0 {
		return 0, outcome.Errorf(outcome.TypeOrConstraintViolation, "field %q must not be negative", field)
	}
	return Round2(v.Num()), nil
}

// PositiveInt requires a mathematical integer >= 1. The kind parameter lets
// identifier fields report MalformedIdentifier while counts report
// TypeOrConstraintViolation; both map to 400.
func PositiveInt(field string, v Value, kind outcome.Kind) (int64, error) {
	if v.Kind() != Number {
		return 0, outcome.Errorf(kind, "field %q must be a positive integer", field)
	}
	n := v.Num()
	if n != math.Trunc(n) || n < 1 {
		return 0, outcome.Errorf(kind, "field %q must be a positive integer", field)
	}
	return int64(n), nil
}

// RatingValue requires a number in the closed interval [0, 5].
func RatingValue(field string, v Value) (float64, error) {
	if v.Kind() != Number {
		return 0, outcome.Errorf(outcome.TypeOrConstraintViolation, "field %q must be a number", field)
	}
	if v.Num() < 0 || v.Num() > 5 {
		return 0, outcome.Errorf(outcome.TypeOrConstraintViolation, "field %q must be between 0 and 5", field)
	}
	return v.Num(), nil
}

// ParseIdentifier validates a route path segment as a positive integer id.
func ParseIdentifier(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, outcome.Errorf(outcome.MalformedIdentifier, "identifier %q must be a positive integer", raw)
	}
	return id, nil
}

// Round2 rounds to 2 decimal places by scaling, rounding half away from
// zero, and dividing. The scaled product is the binary representation,
// not the decimal one: 59.005*100 is 5900.500000000001, so it rounds up
// to 59.01, while inputs whose product lands just below the half point
// round down.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
