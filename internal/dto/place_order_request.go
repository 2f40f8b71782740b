package dto

type PlaceOrderRequest struct {
	UserID       int           `json:"userId"`
	RestaurantID int           `json:"restaurantId"`
	AddressID    int           `json:"addressId"`
	CartItems    []CartItemDTO `json:"cartItems"`
}

type CartItemDTO struct {
	FoodItemID int     `json:"foodItemId"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type CompleteOrderRequest struct {
	UserID int `json:"userId"`
}
