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

var orderRequired = []string{"restaurantId", "orderItems"}

var orderForbidden = []string{"id"}

var orderRules = []pipeline.FieldRule{
	{Name: "restaurantId", Check: func(v payload.Value) error {
		_, err := payload.PositiveInt("restaurantId", v, outcome.MalformedIdentifier)
		return err
	}},
	{Name: "orderItems", Check: checkOrderItems},
}

// checkOrderItems validates the shape of every line item: a non-empty
// array of objects carrying a positive-integer dishId and amount.
func checkOrderItems(v payload.Value) error {
	if v.Kind() != payload.Array {
		return outcome.New(outcome.TypeOrConstraintViolation, `field "orderItems" must be an array`)
	}
	if len(v.Arr()) == 0 {
		return outcome.New(outcome.TypeOrConstraintViolation, `field "orderItems" must not be empty`)
	}
	for _, item := range v.Arr() {
		if item.Kind() != payload.Object {
			return outcome.New(outcome.TypeOrConstraintViolation, `field "orderItems" must contain objects`)
		}
		obj := item.Obj()
		if missing := payload.Missing(obj, []string{"dishId", "amount"}); len(missing) > 0 {
			return outcome.Errorf(outcome.MissingRequiredField, "order item is missing: %s", missing[0])
		}
		if _, err := payload.PositiveInt("dishId", obj.Get("dishId"), outcome.MalformedIdentifier); err != nil {
			return err
		}
		if _, err := payload.PositiveInt("amount", obj.Get("amount"), outcome.TypeOrConstraintViolation); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) buildOrderChain() {
	h.createOrder = pipeline.NewChain("create-order",
		pipeline.ForbidFields(orderForbidden...),
		pipeline.RequireFields(orderRequired...),
		pipeline.KnownFields(orderRequired, orderForbidden),
		pipeline.ValidateFields(orderRules...),
		pipeline.ResolveBodyRestaurant(h.store, "restaurantId"),
		pipeline.RequireDishesExist("orderItems"),
	)
}

// CreateOrder persists a new order. Duplicate dish ids are merged into one
// line item with the summed amount before the write.
func (h *Handler) CreateOrder(c *gin.Context) {
	p, ok := h.bindPayload(c)
	if !ok {
		return
	}
	req := &pipeline.Request{Payload: p}
	if o := pipeline.Run(c.Request.Context(), h.createOrder, req); o != nil {
		h.reject(c, o)
		return
	}

	raw := p.Get("orderItems").Arr()
	items := make([]models.OrderItem, 0, len(raw))
	for _, it := range raw {
		obj := it.Obj()
		items = append(items, models.OrderItem{
			DishID: int64(obj.Get("dishId").Num()),
			Amount: int64(obj.Get("amount").Num()),
		})
	}

	order := &models.Order{
		RestaurantID: req.Restaurant.ID,
		OrderItems:   compose.MergeOrderItems(items),
	}
	if err := h.store.CreateOrder(c.Request.Context(), order); err != nil {
		h.reject(c, outcome.Store(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"orderId": order.ID})
}
