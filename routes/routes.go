package routes

import (
	"github.com/gin-gonic/gin"

	"restaurant-orders-api/handlers"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/health", handlers.Health)

	// ── Restaurants ────────────────────────────────────────────────
	r.GET("/restaurants", h.ListRestaurants)
	r.GET("/restaurants/:id", h.GetRestaurant)
	r.POST("/restaurants", h.CreateRestaurant)
	r.PUT("/restaurants/:id", h.UpdateRestaurant)
	r.DELETE("/restaurants/:id", h.DeleteRestaurant)

	// ── Dishes (owned by a restaurant) ─────────────────────────────
	r.GET("/restaurants/:id/dishes", h.ListDishes)
	r.POST("/restaurants/:id/dishes", h.CreateDish)
	r.PUT("/restaurants/:id/dishes/:dishId", h.UpdateDish)
	r.DELETE("/restaurants/:id/dishes/:dishId", h.DeleteDish)

	// ── Ratings & orders ───────────────────────────────────────────
	r.POST("/ratings", h.CreateRating)
	r.POST("/order", h.CreateOrder)
}
