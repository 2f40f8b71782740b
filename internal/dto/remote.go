package dto

// Wire payloads exchanged with the user and restaurant services.

type UserProfileDTO struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	WalletBalance float64 `json:"walletBalance"`
}

type AddressDTO struct {
	ID     int    `json:"id"`
	UserID int    `json:"userId"`
	Street string `json:"street"`
	City   string `json:"city"`
}

type RestaurantDTO struct {
	RestaurantID int    `json:"restaurantId"`
	Name         string `json:"name"`
}

type FoodItemDTO struct {
	FoodItemID   int     `json:"foodItemId"`
	RestaurantID int     `json:"restaurantId"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
}

type AmountDTO struct {
	Amount float64 `json:"amount"`
}
