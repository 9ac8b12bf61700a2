package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"restaurant-orders-api/models"
	"restaurant-orders-api/outcome"
	"restaurant-orders-api/payload"
	"restaurant-orders-api/pipeline"
	"restaurant-orders-api/store"
)

// Handler serves the API. It owns the per-operation check chains, built
// once at construction.
type Handler struct {
	store store.Store
	log   zerolog.Logger

	getRestaurant    pipeline.Chain
	createRestaurant pipeline.Chain
	updateRestaurant pipeline.Chain
	deleteRestaurant pipeline.Chain

	listDishes pipeline.Chain
	createDish pipeline.Chain
	updateDish pipeline.Chain
	deleteDish pipeline.Chain

	createRating pipeline.Chain
	createOrder  pipeline.Chain
}

func New(st store.Store, log zerolog.Logger) *Handler {
	h := &Handler{store: st, log: log}
	h.buildRestaurantChains()
	h.buildDishChains()
	h.buildRatingChain()
	h.buildOrderChain()
	return h
}

// bindPayload decodes the request body into a classified payload. A body
// that is not a JSON object is rejected before any chain runs.
func (h *Handler) bindPayload(c *gin.Context) (payload.Payload, bool) {
	var raw map[string]interface{}
	if err := c.ShouldBindJSON(&raw); err != nil {
		h.reject(c, outcome.New(outcome.TypeOrConstraintViolation, "request body must be a JSON object"))
		return nil, false
	}
	return payload.FromMap(raw), true
}

// reject writes the outcome as a plain-text response with its mapped
// status. Store failures are logged with their cause; the client only sees
// the generic detail.
func (h *Handler) reject(c *gin.Context, o *outcome.Outcome) {
	if o.Kind == outcome.StoreFailure {
		h.log.Error().Err(o.Cause).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("store failure")
	}
	c.String(o.Kind.HTTPStatus(), o.Detail)
}

// publicView normalizes a restaurant for reads: the average rating is
// exposed rounded to 2 decimal places (stored at full precision) and list
// columns render as empty arrays rather than null.
func publicView(r models.Restaurant) models.Restaurant {
	if r.AverageRating != nil {
		rounded := payload.Round2(*r.AverageRating)
		r.AverageRating = &rounded
	}
	if r.Cuisines == nil {
		r.Cuisines = models.StringList{}
	}
	if r.Dishes == nil {
		r.Dishes = models.DishList{}
	}
	return r
}

// Health is the liveness endpoint.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Restaurant Orders API",
	})
}
