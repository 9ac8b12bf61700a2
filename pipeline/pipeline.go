// Package pipeline builds the per-operation request check chains. Each
// operation declares its steps once, in order; execution is fail-fast, so
// the first rejecting step decides the outcome.
package pipeline

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/zoobzio/pipz"

	"restaurant-orders-api/models"
	"restaurant-orders-api/outcome"
	"restaurant-orders-api/payload"
	"restaurant-orders-api/store"
)

// Request is the mutable state threaded through a chain: the classified
// payload, the raw route identifiers, and whatever the existence checkers
// resolved along the way.
type Request struct {
	Payload    payload.Payload
	RouteID    string
	RawDishID  string
	Restaurant *models.Restaurant
	// DishIndex is the position of the resolved dish in the restaurant's
	// dish list; valid only after ResolveDish ran.
	DishIndex int
}

// Chain is one operation's declared check sequence.
type Chain = pipz.Chainable[*Request]

func NewChain(name string, steps ...Chain) Chain {
	return pipz.NewSequence(name, steps...)
}

// Run executes the chain and reduces a failure to its typed outcome.
func Run(ctx context.Context, chain Chain, req *Request) *outcome.Outcome {
	if _, err := chain.Process(ctx, req); err != nil {
		var perr *pipz.Error[*Request]
		if errors.As(err, &perr) {
			return outcome.From(perr.Err)
		}
		return outcome.From(err)
	}
	return nil
}

// ForbidFields rejects a payload containing any explicitly disallowed
// field. Presence alone triggers the rejection, an explicit null included.
func ForbidFields(fields ...string) Chain {
	return pipz.Effect("forbid-fields", func(_ context.Context, r *Request) error {
		if bad := payload.Forbidden(r.Payload, fields); len(bad) > 0 {
			return outcome.Errorf(outcome.ForbiddenField,
				"payload must not contain: %s", strings.Join(bad, ", "))
		}
		return nil
	})
}

// RequireFields rejects a creation payload missing any required field.
func RequireFields(fields ...string) Chain {
	return pipz.Effect("require-fields", func(_ context.Context, r *Request) error {
		if missing := payload.Missing(r.Payload, fields); len(missing) > 0 {
			return outcome.Errorf(outcome.MissingRequiredField,
				"missing required fields: %s", strings.Join(missing, ", "))
		}
		return nil
	})
}

// KnownFields rejects payload keys that belong to neither the allow-list
// nor the forbid-list.
func KnownFields(allow, forbid []string) Chain {
	return pipz.Effect("known-fields", func(_ context.Context, r *Request) error {
		if unknown := payload.Unrecognized(r.Payload, allow, forbid); len(unknown) > 0 {
			return outcome.Errorf(outcome.UnrecognizedField,
				"unrecognized fields: %s", strings.Join(unknown, ", "))
		}
		return nil
	})
}

// FieldRule pairs a field name with its validator.
type FieldRule struct {
	Name  string
	Check func(v payload.Value) error
}

// ValidateFields runs the rules in declared order against the fields
// present in the payload; the first violation wins.
func ValidateFields(rules ...FieldRule) Chain {
	return pipz.Effect("validate-fields", func(_ context.Context, r *Request) error {
		for _, rule := range rules {
			v := r.Payload.Get(rule.Name)
			if !v.Present() {
				continue
			}
			if err := rule.Check(v); err != nil {
				return err
			}
		}
		return nil
	})
}

// ResolveRestaurant turns the route id segment into a stored restaurant.
// A non-numeric segment is a malformed identifier; a well-formed id with
// no row is not found.
func ResolveRestaurant(st store.Store) Chain {
	return pipz.Apply("resolve-restaurant", func(ctx context.Context, r *Request) (*Request, error) {
		id, err := payload.ParseIdentifier(r.RouteID)
		if err != nil {
			return r, err
		}
		rest, err := st.GetRestaurant(ctx, id)
		if err != nil {
			return r, lookupOutcome(err, id)
		}
		r.Restaurant = rest
		return r, nil
	})
}

// ResolveBodyRestaurant resolves a restaurantId carried in the payload.
func ResolveBodyRestaurant(st store.Store, field string) Chain {
	return pipz.Apply("resolve-body-restaurant", func(ctx context.Context, r *Request) (*Request, error) {
		id, err := payload.PositiveInt(field, r.Payload.Get(field), outcome.MalformedIdentifier)
		if err != nil {
			return r, err
		}
		rest, err := st.GetRestaurant(ctx, id)
		if err != nil {
			return r, lookupOutcome(err, id)
		}
		r.Restaurant = rest
		return r, nil
	})
}

// ResolveDish scans the resolved restaurant's dish list for the dish named
// by the route and records its position for index-based update/delete.
// Must run after ResolveRestaurant.
func ResolveDish() Chain {
	return pipz.Apply("resolve-dish", func(_ context.Context, r *Request) (*Request, error) {
		if _, err := payload.ParseIdentifier(r.RawDishID); err != nil {
			return r, err
		}
		for i, d := range r.Restaurant.Dishes {
			if d.ID == r.RawDishID {
				r.DishIndex = i
				return r, nil
			}
		}
		return r, outcome.Errorf(outcome.NotFound,
			"dish %s not found in restaurant %d", r.RawDishID, r.Restaurant.ID)
	})
}

// RequireDishesExist confirms every dishId in the named array field is on
// the resolved restaurant's current menu. Must run after the items passed
// validation and the restaurant was resolved.
func RequireDishesExist(field string) Chain {
	return pipz.Effect("require-dishes-exist", func(_ context.Context, r *Request) error {
		menu := make(map[string]bool, len(r.Restaurant.Dishes))
		for _, d := range r.Restaurant.Dishes {
			menu[d.ID] = true
		}
		for _, item := range r.Payload.Get(field).Arr() {
			id := int64(item.Obj().Get("dishId").Num())
			if !menu[strconv.FormatInt(id, 10)] {
				return outcome.Errorf(outcome.NotFound,
					"dish %d not found in restaurant %d", id, r.Restaurant.ID)
			}
		}
		return nil
	})
}

func lookupOutcome(err error, id int64) error {
	if errors.Is(err, store.ErrNotFound) {
		return outcome.Errorf(outcome.NotFound, "restaurant %d not found", id)
	}
	return outcome.Store(err)
}
