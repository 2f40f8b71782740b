package dto

import "time"

type OrderResponse struct {
	OrderID      uint           `json:"orderId"`
	UserID       int            `json:"userId"`
	RestaurantID int            `json:"restaurantId"`
	AddressID    int            `json:"addressId"`
	Lines        []OrderLineDTO `json:"lines"`
	TotalPrice   float64        `json:"totalPrice"`
	Status       string         `json:"status"`
	PlacedTiming time.Time      `json:"placedTiming"`
}

type OrderLineDTO struct {
	FoodItemID int     `json:"foodItemId"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type PlaceOrderResponse struct {
	TraceID   string        `json:"traceId"`
	Message   string        `json:"message"`
	Order     OrderResponse `json:"order"`
	Timestamp time.Time     `json:"timestamp"`
}

type CommonResponse struct {
	TraceID   string    `json:"traceId"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type OrderListResponse struct {
	TraceID   string          `json:"traceId"`
	Orders    []OrderResponse `json:"orders"`
	Timestamp time.Time       `json:"timestamp"`
}

type ErrorResponse struct {
	TraceID   string    `json:"traceId"`
	Status    int       `json:"status"`
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
