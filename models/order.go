package models

import (
	"database/sql/driver"
	"encoding/json"
)

// Order is created once and never modified afterwards.
type Order struct {
	ID           int64         `json:"id" gorm:"primaryKey"`
	RestaurantID int64         `json:"restaurantId" gorm:"not null;index"`
	OrderItems   OrderItemList `json:"orderItems" gorm:"type:text;not null"`
}

type OrderItem struct {
	DishID int64 `json:"dishId"`
	Amount int64 `json:"amount"`
}

// OrderItemList is persisted as a JSON-encoded TEXT column.
type OrderItemList []OrderItem

func (l OrderItemList) Value() (driver.Value, error) {
	if l == nil {
		l = OrderItemList{}
	}
	return json.Marshal(l)
}

func (l *OrderItemList) Scan(src interface{}) error {
	return scanJSON(src, l)
}
