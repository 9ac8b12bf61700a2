package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-orders-api/models"
	"restaurant-orders-api/outcome"
	"restaurant-orders-api/payload"
	"restaurant-orders-api/pipeline"
)

var ratingRequired = []string{"restaurantId", "rating"}

var ratingForbidden = []string{"id"}

var ratingRules = []pipeline.FieldRule{
	{Name: "restaurantId", Check: func(v payload.Value) error {
		_, err := payload.PositiveInt("restaurantId", v, outcome.MalformedIdentifier)
		return err
	}},
	{Name: "rating", Check: func(v payload.Value) error {
		_, err := payload.RatingValue("rating", v)
		return err
	}},
}

func (h *Handler) buildRatingChain() {
	h.createRating = pipeline.NewChain("create-rating",
		pipeline.ForbidFields(ratingForbidden...),
		pipeline.RequireFields(ratingRequired...),
		pipeline.KnownFields(ratingRequired, ratingForbidden),
		pipeline.ValidateFields(ratingRules...),
		pipeline.ResolveBodyRestaurant(h.store, "restaurantId"),
	)
}

// CreateRating appends a rating and recomputes the restaurant's average in
// the same transaction.
func (h *Handler) CreateRating(c *gin.Context) {
	p, ok := h.bindPayload(c)
	if !ok {
		return
	}
	req := &pipeline.Request{Payload: p}
	if o := pipeline.Run(c.Request.Context(), h.createRating, req); o != nil {
		h.reject(c, o)
		return
	}

	rating := &models.Rating{
		RestaurantID: req.Restaurant.ID,
		Rating:       p.Get("rating").Num(),
	}
	if err := h.store.CreateRating(c.Request.Context(), rating); err != nil {
		h.reject(c, outcome.Store(err))
		return
	}
	c.Status(http.StatusOK)
}
