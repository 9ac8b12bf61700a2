package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type Restaurant struct {
	ID            int64      `json:"id" gorm:"primaryKey"`
	Name          string     `json:"name" gorm:"not null"`
	AverageRating *float64   `json:"averageRating,omitempty"`
	IsKosher      bool       `json:"isKosher" gorm:"not null"`
	Cuisines      StringList `json:"cuisines" gorm:"type:text;not null"`
	Dishes        DishList   `json:"dishes" gorm:"type:text"`
	// NextDishID assigns dish identities. It only ever moves forward, so a
	// deleted dish's id is never handed out again.
	NextDishID int64 `json:"-" gorm:"not null;default:1"`
}

// Dish lives inside its restaurant's dishes column; its id is a
// string-encoded positive integer unique within that restaurant.
type Dish struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// StringList is persisted as a JSON-encoded TEXT column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

// DishList is persisted as a JSON-encoded TEXT column, order preserved.
type DishList []Dish

func (l DishList) Value() (driver.Value, error) {
	if l == nil {
		l = DishList{}
	}
	return json.Marshal(l)
}

func (l *DishList) Scan(src interface{}) error {
	return scanJSON(src, l)
}

func scanJSON(src, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("cannot scan %T into JSON column", src)
	}
}
