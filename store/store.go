// Package store is the data-access capability handed to the components
// that perform store I/O. Handlers depend on the Store interface, so tests
// can substitute an in-memory SQLite database.
package store

import (
	"context"
	"errors"

	"restaurant-orders-api/compose"
	"restaurant-orders-api/models"
)

// ErrNotFound reports that a point lookup matched no row.
var ErrNotFound = errors.New("not found")

type Store interface {
	ListRestaurants(ctx context.Context, cuisine string) ([]models.Restaurant, error)
	GetRestaurant(ctx context.Context, id int64) (*models.Restaurant, error)
	CreateRestaurant(ctx context.Context, r *models.Restaurant) error
	UpdateRestaurant(ctx context.Context, id int64, changes []compose.Change) error
	// DeleteRestaurant removes the restaurant's ratings, its orders, and
	// the restaurant row as one atomic unit.
	DeleteRestaurant(ctx context.Context, id int64) error
	// UpdateDishes replaces the restaurant's dish list and advances its
	// dish id counter in a single statement.
	UpdateDishes(ctx context.Context, id int64, dishes models.DishList, nextDishID int64) error
	// CreateRating inserts the rating and recomputes the restaurant's
	// average rating atomically.
	CreateRating(ctx context.Context, r *models.Rating) error
	CreateOrder(ctx context.Context, o *models.Order) error
}
