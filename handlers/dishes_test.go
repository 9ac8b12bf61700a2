package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-orders-api/models"
)

func getDishes(t *testing.T, api http.Handler, restaurantID int64) models.DishList {
	t.Helper()
	w := do(t, api, http.MethodGet, restaurantPath(restaurantID)+"/dishes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var dishes models.DishList
	decode(t, w, &dishes)
	return dishes
}

func TestDishLifecycle(t *testing.T) {
	api, _ := newTestAPI(t)
	id := createRestaurant(t, api)

	w := do(t, api, http.MethodPost, restaurantPath(id)+"/dishes", map[string]interface{}{
		"name":        "Soup",
		"description": "hot and sour",
		"price":       12.345,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	dishes := getDishes(t, api, id)
	require.Len(t, dishes, 1)
	assert.Equal(t, "1", dishes[0].ID)
	assert.Equal(t, "Soup", dishes[0].Name)
	assert.Equal(t, 12.35, dishes[0].Price) // rounded to 2dp on write

	w = do(t, api, http.MethodPut, restaurantPath(id)+"/dishes/1", map[string]interface{}{
		"price": 13.0,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	dishes = getDishes(t, api, id)
	assert.Equal(t, 13.0, dishes[0].Price)
	assert.Equal(t, "Soup", dishes[0].Name) // partial update left the rest alone

	w = do(t, api, http.MethodDelete, restaurantPath(id)+"/dishes/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, getDishes(t, api, id))
}

func TestDishIDsAreMonotonicAndNeverReused(t *testing.T) {
	api, _ := newTestAPI(t)
	id := createRestaurant(t, api)

	addDish(t, api, id, "One", 1)
	addDish(t, api, id, "Two", 2)

	w := do(t, api, http.MethodDelete, restaurantPath(id)+"/dishes/1", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// Counter is at 3; the freed id 1 must not come back.
	addDish(t, api, id, "Three", 3)

	dishes := getDishes(t, api, id)
	require.Len(t, dishes, 2)
	assert.Equal(t, "2", dishes[0].ID)
	assert.Equal(t, "3", dishes[1].ID)
}

func TestDishUpdateNoopIsSuccess(t *testing.T) {
	api, _ := newTestAPI(t)
	id := createRestaurant(t, api)
	addDish(t, api, id, "Soup", 12)

	w := do(t, api, http.MethodPut, restaurantPath(id)+"/dishes/1", map[string]interface{}{})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDishRejections(t *testing.T) {
	api, _ := newTestAPI(t)
	id := createRestaurant(t, api)
	addDish(t, api, id, "Soup", 12)

	base := restaurantPath(id) + "/dishes"

	w := do(t, api, http.MethodPost, base, map[string]interface{}{
		"name": "x", "price": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing description")

	w = do(t, api, http.MethodPost, base, map[string]interface{}{
		"name": "x", "description": "", "price": -1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "negative price")

	w = do(t, api, http.MethodPost, base, map[string]interface{}{
		"id": "9", "name": "x", "description": "", "price": 1,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "client-supplied id")

	w = do(t, api, http.MethodPost, base, map[string]interface{}{
		"name": "x", "description": "", "price": 1, "spicy": true,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "unrecognized field")

	w = do(t, api, http.MethodPut, base+"/99", map[string]interface{}{"price": 2})
	assert.Equal(t, http.StatusNotFound, w.Code, "dish not in menu")

	w = do(t, api, http.MethodPut, base+"/soup", map[string]interface{}{"price": 2})
	assert.Equal(t, http.StatusBadRequest, w.Code, "malformed dish id")

	w = do(t, api, http.MethodPost, "/restaurants/999/dishes", map[string]interface{}{
		"name": "x", "description": "", "price": 1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code, "unknown restaurant")
}
