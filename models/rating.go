package models

// Rating is append-only; creating one triggers a recompute of the owning
// restaurant's average rating.
type Rating struct {
	ID           int64   `json:"id" gorm:"primaryKey"`
	RestaurantID int64   `json:"restaurantId" gorm:"not null;index"`
	Rating       float64 `json:"rating" gorm:"not null"`
}
