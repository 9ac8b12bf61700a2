package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-orders-api/compose"
	"restaurant-orders-api/models"
	"restaurant-orders-api/outcome"
	"restaurant-orders-api/payload"
	"restaurant-orders-api/pipeline"
)

// Mutable fields in declared order; the composer emits changes in this
// order no matter how the payload was keyed.
var restaurantMutable = []string{"name", "isKosher", "cuisines"}

// Clients may never supply these. averageRating is derived, dish state has
// its own routes, and identities are assigned by the store.
var restaurantForbidden = []string{"id", "averageRating", "dishes", "nextDishId"}

var restaurantRules = []pipeline.FieldRule{
	{Name: "name", Check: func(v payload.Value) error {
		_, err := payload.TrimmedString("name", v)
		return err
	}},
	{Name: "isKosher", Check: func(v payload.Value) error {
		_, err := payload.Boolean("isKosher", v)
		return err
	}},
	{Name: "cuisines", Check: func(v payload.Value) error {
		_, err := payload.Cuisines("cuisines", v)
		return err
	}},
}

var restaurantFields = []compose.FieldSpec{
	{Name: "name", Column: "name", Extract: func(v payload.Value) (interface{}, error) {
		s, err := payload.TrimmedString("name", v)
		return s, err
	}},
	{Name: "isKosher", Column: "is_kosher", Extract: func(v payload.Value) (interface{}, error) {
		b, err := payload.Boolean("isKosher", v)
		return b, err
	}},
	{Name: "cuisines", Column: "cuisines", Extract: func(v payload.Value) (interface{}, error) {
		list, err := payload.Cuisines("cuisines", v)
		if err != nil {
			return nil, err
		}
		return models.StringList(list), nil
	}},
}

func (h *Handler) buildRestaurantChains() {
	h.getRestaurant = pipeline.NewChain("get-restaurant",
		pipeline.ResolveRestaurant(h.store),
	)
	h.createRestaurant = pipeline.NewChain("create-restaurant",
		pipeline.ForbidFields(restaurantForbidden...),
		pipeline.RequireFields(restaurantMutable...),
		pipeline.KnownFields(restaurantMutable, restaurantForbidden),
		pipeline.ValidateFields(restaurantRules...),
	)
	h.updateRestaurant = pipeline.NewChain("update-restaurant",
		pipeline.ForbidFields(restaurantForbidden...),
		pipeline.KnownFields(restaurantMutable, restaurantForbidden),
		pipeline.ValidateFields(restaurantRules...),
		pipeline.ResolveRestaurant(h.store),
	)
	h.deleteRestaurant = pipeline.NewChain("delete-restaurant",
		pipeline.ResolveRestaurant(h.store),
	)
}

// ListRestaurants returns all restaurants, optionally filtered to those
// serving the given cuisine.
func (h *Handler) ListRestaurants(c *gin.Context) {
	restaurants, err := h.store.ListRestaurants(c.Request.Context(), c.Query("cuisine"))
	if err != nil {
		h.reject(c, outcome.Store(err))
		return
	}
	out := make([]models.Restaurant, len(restaurants))
	for i, r := range restaurants {
		out[i] = publicView(r)
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetRestaurant(c *gin.Context) {
	req := &pipeline.Request{RouteID: c.Param("id")}
	if o := pipeline.Run(c.Request.Context(), h.getRestaurant, req); o != nil {
		h.reject(c, o)
		return
	}
	c.JSON(http.StatusOK, publicView(*req.Restaurant))
}

func (h *Handler) CreateRestaurant(c *gin.Context) {
	p, ok := h.bindPayload(c)
	if !ok {
		return
	}
	req := &pipeline.Request{Payload: p}
	if o := pipeline.Run(c.Request.Context(), h.createRestaurant, req); o != nil {
		h.reject(c, o)
		return
	}

	cuisines := make(models.StringList, 0, len(p.Get("cuisines").Arr()))
	for _, v := range p.Get("cuisines").Arr() {
		cuisines = append(cuisines, v.Str())
	}
	restaurant := &models.Restaurant{
		Name:       p.Get("name").Str(),
		IsKosher:   p.Get("isKosher").Bool(),
		Cuisines:   cuisines,
		Dishes:     models.DishList{},
		NextDishID: 1,
	}
	if err := h.store.CreateRestaurant(c.Request.Context(), restaurant); err != nil {
		h.reject(c, outcome.Store(err))
		return
	}
	c.Status(http.StatusCreated)
}

func (h *Handler) UpdateRestaurant(c *gin.Context) {
	p, ok := h.bindPayload(c)
	if !ok {
		return
	}
	req := &pipeline.Request{Payload: p, RouteID: c.Param("id")}
	if o := pipeline.Run(c.Request.Context(), h.updateRestaurant, req); o != nil {
		h.reject(c, o)
		return
	}

	changes, err := compose.Update(p, restaurantFields)
	if err != nil {
		h.reject(c, outcome.From(err))
		return
	}
	// No mutable field present: a successful no-op.
	if len(changes) == 0 {
		c.Status(http.StatusOK)
		return
	}
	if err := h.store.UpdateRestaurant(c.Request.Context(), req.Restaurant.ID, changes); err != nil {
		h.reject(c, outcome.Store(err))
		return
	}
	c.Status(http.StatusOK)
}

// DeleteRestaurant removes the restaurant together with its ratings and
// orders; the store guarantees all-or-nothing.
func (h *Handler) DeleteRestaurant(c *gin.Context) {
	req := &pipeline.Request{RouteID: c.Param("id")}
	if o := pipeline.Run(c.Request.Context(), h.deleteRestaurant, req); o != nil {
		h.reject(c, o)
		return
	}
	if err := h.store.DeleteRestaurant(c.Request.Context(), req.Restaurant.ID); err != nil {
		h.reject(c, outcome.Store(err))
		return
	}
	c.Status(http.StatusNoContent)
}
