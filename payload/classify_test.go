package payload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"restaurant-orders-api/payload"
)

func TestMissing(t *testing.T) {
	p := payload.FromMap(map[string]interface{}{
		"name":     "Taizu",
		"isKosher": nil,
	})

	missing := payload.Missing(p, []string{"name", "isKosher", "cuisines"})

	// An explicit null is present, so only the absent key is missing.
	assert.Equal(t, []string{"cuisines"}, missing)
}

func TestMissingNoneAbsent(t *testing.T) {
	p := payload.FromMap(map[string]interface{}{"name": "Taizu"})
	assert.Empty(t, payload.Missing(p, []string{"name"}))
}

func TestForbiddenPresenceAloneTriggers(t *testing.T) {
	p := payload.FromMap(map[string]interface{}{
		"name": "Taizu",
		"id":   nil, // explicit null still counts
	})

	assert.Equal(t, []string{"id"}, payload.Forbidden(p, []string{"id", "averageRating"}))
	assert.Empty(t, payload.Forbidden(p, []string{"averageRating"}))
}

func TestUnrecognized(t *testing.T) {
	p := payload.FromMap(map[string]interface{}{
		"name":     "Taizu",
		"id":       float64(3),
		"zebra":    true,
		"aardvark": "x",
	})

	unknown := payload.Unrecognized(p, []string{"name"}, []string{"id"})

	// Sorted, and exactly keys(P) minus both lists.
	assert.Equal(t, []string{"aardvark", "zebra"}, unknown)
}

func TestUnrecognizedEmptyPayload(t *testing.T) {
	assert.Empty(t, payload.Unrecognized(payload.Payload{}, []string{"name"}, nil))
}
