package domain

import "time"

type Order struct {
	ID           uint
	UserID       int
	RestaurantID int
	AddressID    int
	Lines        []OrderLine
	TotalPrice   float64
	Status       string
	PlacedTiming time.Time
}

// OrderLine is one (food item, unit price, quantity) tuple captured at
// placement time. The unit price is frozen on the order; later catalog
// changes never alter it.
type OrderLine struct {
	FoodItemID int
	Price      float64
	Quantity   int
}

const (
	OrderStatusPlaced    = "PLACED"
	OrderStatusCancelled = "CANCELLED"
	OrderStatusCompleted = "COMPLETED"
)
