package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"restaurant-orders-api/compose"
	"restaurant-orders-api/models"
)

// SQL implements Store on a GORM connection.
type SQL struct {
	db *gorm.DB
}

func NewSQL(db *gorm.DB) *SQL {
	return &SQL{db: db}
}

func (s *SQL) ListRestaurants(ctx context.Context, cuisine string) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := s.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	if cuisine == "" {
		return restaurants, nil
	}
	// Cuisines live in a JSON column, so the filter runs here rather than
	// in SQL. Matching is a case-insensitive substring check per element.
	needle := strings.ToLower(cuisine)
	filtered := restaurants[:0]
	for _, r := range restaurants {
		for _, c := range r.Cuisines {
			if strings.Contains(strings.ToLower(c), needle) {
				filtered = append(filtered, r)
				break
			}
		}
	}
	return filtered, nil
}

func (s *SQL) GetRestaurant(ctx context.Context, id int64) (*models.Restaurant, error) {
	var r models.Restaurant
	err := s.db.WithContext(ctx).First(&r, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *SQL) CreateRestaurant(ctx context.Context, r *models.Restaurant) error {
	if r.Dishes == nil {
		r.Dishes = models.DishList{}
	}
	if r.NextDishID == 0 {
		r.NextDishID = 1
	}
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *SQL) UpdateRestaurant(ctx context.Context, id int64, changes []compose.Change) error {
	if len(changes) == 0 {
		return nil
	}
	set, args := setClause(changes)
	args = append(args, id)
	return s.db.WithContext(ctx).
		Exec("UPDATE restaurants SET "+set+" WHERE id = ?", args...).Error
}

// setClause renders the SET list in declared change order. Column names
// come from our own field specs; every value is bound as a placeholder.
func setClause(changes []compose.Change) (string, []interface{}) {
	parts := make([]string, 0, len(changes))
	args := make([]interface{}, 0, len(changes))
	for _, ch := range changes {
		parts = append(parts, ch.Column+" = ?")
		args = append(args, ch.Value)
	}
	return strings.Join(parts, ", "), args
}

func (s *SQL) DeleteRestaurant(ctx context.Context, id int64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteRatings(tx, id); err != nil {
			return err
		}
		if err := deleteOrders(tx, id); err != nil {
			return err
		}
		return deleteRestaurantRow(tx, id)
	})
}

func deleteRatings(tx *gorm.DB, restaurantID int64) error {
	return tx.Where("restaurant_id = ?", restaurantID).Delete(&models.Rating{}).Error
}

func deleteOrders(tx *gorm.DB, restaurantID int64) error {
	return tx.Where("restaurant_id = ?", restaurantID).Delete(&models.Order{}).Error
}

func deleteRestaurantRow(tx *gorm.DB, id int64) error {
	return tx.Delete(&models.Restaurant{}, id).Error
}

func (s *SQL) UpdateDishes(ctx context.Context, id int64, dishes models.DishList, nextDishID int64) error {
	if dishes == nil {
		dishes = models.DishList{}
	}
	return s.db.WithContext(ctx).Model(&models.Restaurant{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"dishes": dishes, "next_dish_id": nextDishID}).Error
}

func (s *SQL) CreateRating(ctx context.Context, r *models.Rating) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(r).Error; err != nil {
			return err
		}
		// The mean includes the row inserted above because both run in the
		// same transaction.
		var avg float64
		if err := tx.Model(&models.Rating{}).
			Where("restaurant_id = ?", r.RestaurantID).
			Select("AVG(rating)").Scan(&avg).Error; err != nil {
			return err
		}
		return tx.Model(&models.Restaurant{}).
			Where("id = ?", r.RestaurantID).
			Update("average_rating", avg).Error
	})
}

func (s *SQL) CreateOrder(ctx context.Context, o *models.Order) error {
	return s.db.WithContext(ctx).Create(o).Error
}
