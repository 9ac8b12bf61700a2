// Package outcome carries the typed result of a failed request stage.
// Mapping kinds to HTTP status codes lives here so handlers stay uniform.
package outcome

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	MalformedIdentifier Kind = iota
	MissingRequiredField
	TypeOrConstraintViolation
	UnrecognizedField
	ForbiddenField
	NotFound
	StoreFailure
)

func (k Kind) String() string {
	switch k {
	case MalformedIdentifier:
		return "malformed identifier"
	case MissingRequiredField:
		return "missing required field"
	case TypeOrConstraintViolation:
		return "type or constraint violation"
	case UnrecognizedField:
		return "unrecognized field"
	case ForbiddenField:
		return "forbidden field"
	case NotFound:
		return "not found"
	case StoreFailure:
		return "store failure"
	default:
		return "unknown"
	}
}

// HTTPStatus returns the transport status a kind maps to. The table is a
// compatibility contract; do not change it.
func (k Kind) HTTPStatus() int {
	switch k {
	case MalformedIdentifier, MissingRequiredField, TypeOrConstraintViolation, UnrecognizedField:
		return http.StatusBadRequest
	case ForbiddenField:
		return http.StatusUnprocessableEntity
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Outcome is the error value produced when a request is rejected during
// validation or fails during persistence.
type Outcome struct {
	Kind   Kind
	Detail string
	// Cause holds the underlying store error for StoreFailure outcomes.
	Cause error
}

func (o *Outcome) Error() string { return o.Detail }

func (o *Outcome) Unwrap() error { return o.Cause }

func New(kind Kind, detail string) *Outcome {
	return &Outcome{Kind: kind, Detail: detail}
}

func Errorf(kind Kind, format string, args ...interface{}) *Outcome {
	return &Outcome{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// Store wraps a persistence-layer error as a StoreFailure with a generic
// client-facing detail; the cause is kept for logging.
func Store(err error) *Outcome {
	return &Outcome{Kind: StoreFailure, Detail: "internal server error", Cause: err}
}

// From extracts the Outcome from an error chain, wrapping anything else as
// a StoreFailure.
func From(err error) *Outcome {
	var o *Outcome
	if errors.As(err, &o) {
		return o
	}
	return Store(err)
}
