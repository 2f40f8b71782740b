package domain

type RestaurantProfile struct {
	RestaurantID int
	Name         string
}

type FoodItem struct {
	FoodItemID   int
	RestaurantID int
	Name         string
	Price        float64
}
