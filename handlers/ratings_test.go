package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-orders-api/models"
)

func rate(t *testing.T, api http.Handler, restaurantID int64, rating interface{}) int {
	t.Helper()
	w := do(t, api, http.MethodPost, "/ratings", map[string]interface{}{
		"restaurantId": restaurantID,
		"rating":       rating,
	})
	return w.Code
}

func TestRatingBounds(t *testing.T) {
	api, _ := newTestAPI(t)
	id := createRestaurant(t, api)

	assert.Equal(t, http.StatusBadRequest, rate(t, api, id, -0.01))
	assert.Equal(t, http.StatusOK, rate(t, api, id, 0))
	assert.Equal(t, http.StatusOK, rate(t, api, id, 5))
	assert.Equal(t, http.StatusBadRequest, rate(t, api, id, 5.01))
	assert.Equal(t, http.StatusBadRequest, rate(t, api, id, "4"))
}

func TestRatingUpdatesAverage(t *testing.T) {
	api, _ := newTestAPI(t)
	id := createRestaurant(t, api)

	require.Equal(t, http.StatusOK, rate(t, api, id, 4))
	require.Equal(t, http.StatusOK, rate(t, api, id, 5))

	var got models.Restaurant
	w := do(t, api, http.MethodGet, restaurantPath(id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &got)
	require.NotNil(t, got.AverageRating)
	assert.Equal(t, 4.5, *got.AverageRating)
}

func TestRatingAverageExposedRounded(t *testing.T) {
	api, _ := newTestAPI(t)
	id := createRestaurant(t, api)

	// Mean of 1, 2, 2 is 1.666...; reads expose 1.67.
	for _, r := range []float64{1, 2, 2} {
		require.Equal(t, http.StatusOK, rate(t, api, id, r))
	}

	var got models.Restaurant
	w := do(t, api, http.MethodGet, restaurantPath(id), nil)
	decode(t, w, &got)
	require.NotNil(t, got.AverageRating)
	assert.Equal(t, 1.67, *got.AverageRating)
}

func TestRatingRejections(t *testing.T) {
	api, _ := newTestAPI(t)
	id := createRestaurant(t, api)

	w := do(t, api, http.MethodPost, "/ratings", map[string]interface{}{
		"restaurantId": 999, "rating": 4,
	})
	assert.Equal(t, http.StatusNotFound, w.Code, "unknown restaurant")

	w = do(t, api, http.MethodPost, "/ratings", map[string]interface{}{
		"restaurantId": 0, "rating": 4,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "malformed restaurantId")

	w = do(t, api, http.MethodPost, "/ratings", map[string]interface{}{
		"restaurantId": id,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing rating")

	w = do(t, api, http.MethodPost, "/ratings", map[string]interface{}{
		"id": 3, "restaurantId": id, "rating": 4,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "client-supplied id")

	w = do(t, api, http.MethodPost, "/ratings", map[string]interface{}{
		"restaurantId": id, "rating": 4, "comment": "great",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "unrecognized field")
}
