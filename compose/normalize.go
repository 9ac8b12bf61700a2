package compose

import "restaurant-orders-api/models"

// MergeOrderItems collapses duplicate dish ids into a single item with the
// summed amount. The first occurrence of a dish id keeps its position.
// Runs only after item validation and dish existence checks.
func MergeOrderItems(items []models.OrderItem) []models.OrderItem {
	merged := make([]models.OrderItem, 0, len(items))
	index := make(map[int64]int, len(items))
	for _, item := range items {
		if at, seen := index[item.DishID]; seen {
			merged[at].Amount += item.Amount
			continue
		}
		index[item.DishID] = len(merged)
		merged = append(merged, item)
	}
	return merged
}
