package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"restaurant-orders-api/compose"
	"restaurant-orders-api/models"
	"restaurant-orders-api/outcome"
	"restaurant-orders-api/payload"
	"restaurant-orders-api/pipeline"
)

var dishMutable = []string{"name", "description", "price"}

var dishForbidden = []string{"id"}

var dishRules = []pipeline.FieldRule{
	{Name: "name", Check: func(v payload.Value) error {
		_, err := payload.TrimmedString("name", v)
		return err
	}},
	{Name: "description", Check: func(v payload.Value) error {
		_, err := payload.AnyString("description", v)
		return err
	}},
	{Name: "price", Check: func(v payload.Value) error {
		_, err := payload.Price("price", v)
		return err
	}},
}

var dishFields = []compose.FieldSpec{
	{Name: "name", Column: "name", Extract: func(v payload.Value) (interface{}, error) {
		s, err := payload.TrimmedString("name", v)
		return s, err
	}},
	{Name: "description", Column: "description", Extract: func(v payload.Value) (interface{}, error) {
		s, err := payload.AnyString("description", v)
		return s, err
	}},
	{Name: "price", Column: "price", Extract: func(v payload.Value) (interface{}, error) {
		p, err := payload.Price("price", v)
		return p, err
	}},
}

func (h *Handler) buildDishChains() {
	h.listDishes = pipeline.NewChain("list-dishes",
		pipeline.ResolveRestaurant(h.store),
	)
	h.createDish = pipeline.NewChain("create-dish",
		pipeline.ForbidFields(dishForbidden...),
		pipeline.RequireFields(dishMutable...),
		pipeline.KnownFields(dishMutable, dishForbidden),
		pipeline.ValidateFields(dishRules...),
		pipeline.ResolveRestaurant(h.store),
	)
	h.updateDish = pipeline.NewChain("update-dish",
		pipeline.ForbidFields(dishForbidden...),
		pipeline.KnownFields(dishMutable, dishForbidden),
		pipeline.ValidateFields(dishRules...),
		pipeline.ResolveRestaurant(h.store),
		pipeline.ResolveDish(),
	)
	h.deleteDish = pipeline.NewChain("delete-dish",
		pipeline.ResolveRestaurant(h.store),
		pipeline.ResolveDish(),
	)
}

func (h *Handler) ListDishes(c *gin.Context) {
	req := &pipeline.Request{RouteID: c.Param("id")}
	if o := pipeline.Run(c.Request.Context(), h.listDishes, req); o != nil {
		h.reject(c, o)
		return
	}
	dishes := req.Restaurant.Dishes
	if dishes == nil {
		dishes = models.DishList{}
	}
	c.JSON(http.StatusOK, dishes)
}

// CreateDish appends a dish with the restaurant's next dish id and advances
// the counter. Ids are never reused, even after a delete.
func (h *Handler) CreateDish(c *gin.Context) {
	p, ok := h.bindPayload(c)
	if !ok {
		return
	}
	req := &pipeline.Request{Payload: p, RouteID: c.Param("id")}
	if o := pipeline.Run(c.Request.Context(), h.createDish, req); o != nil {
		h.reject(c, o)
		return
	}

	restaurant := req.Restaurant
	dish := models.Dish{
		ID:          strconv.FormatInt(restaurant.NextDishID, 10),
		Name:        p.Get("name").Str(),
		Description: p.Get("description").Str(),
		Price:       payload.Round2(p.Get("price").Num()),
	}
	dishes := append(restaurant.Dishes, dish)
	err := h.store.UpdateDishes(c.Request.Context(), restaurant.ID, dishes, restaurant.NextDishID+1)
	if err != nil {
		h.reject(c, outcome.Store(err))
		return
	}
	c.Status(http.StatusCreated)
}

func (h *Handler) UpdateDish(c *gin.Context) {
	p, ok := h.bindPayload(c)
	if !ok {
		return
	}
	req := &pipeline.Request{Payload: p, RouteID: c.Param("id"), RawDishID: c.Param("dishId")}
	if o := pipeline.Run(c.Request.Context(), h.updateDish, req); o != nil {
		h.reject(c, o)
		return
	}

	changes, err := compose.Update(p, dishFields)
	if err != nil {
		h.reject(c, outcome.From(err))
		return
	}
	if len(changes) == 0 {
		c.Status(http.StatusOK)
		return
	}

	restaurant := req.Restaurant
	dish := restaurant.Dishes[req.DishIndex]
	for _, ch := range changes {
		switch ch.Field {
		case "name":
			dish.Name = ch.Value.(string)
		case "description":
			dish.Description = ch.Value.(string)
		case "price":
			dish.Price = ch.Value.(float64)
		}
	}
	restaurant.Dishes[req.DishIndex] = dish
	err = h.store.UpdateDishes(c.Request.Context(), restaurant.ID, restaurant.Dishes, restaurant.NextDishID)
	if err != nil {
		h.reject(c, outcome.Store(err))
		return
	}
	c.Status(http.StatusOK)
}

func (h *Handler) DeleteDish(c *gin.Context) {
	req := &pipeline.Request{RouteID: c.Param("id"), RawDishID: c.Param("dishId")}
	if o := pipeline.Run(c.Request.Context(), h.deleteDish, req); o != nil {
		h.reject(c, o)
		return
	}

	restaurant := req.Restaurant
	i := req.DishIndex
	dishes := append(restaurant.Dishes[:i:i], restaurant.Dishes[i+1:]...)
	// The counter stays where it is; the removed id is retired for good.
	err := h.store.UpdateDishes(c.Request.Context(), restaurant.ID, dishes, restaurant.NextDishID)
	if err != nil {
		h.reject(c, outcome.Store(err))
		return
	}
	c.Status(http.StatusNoContent)
}
