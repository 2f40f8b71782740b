package commons

// User-presentable messages returned by the order workflow.
const (
	UserNotFound               = "User not found"
	InvalidRestaurantID        = "Invalid restaurant id"
	AddressNotFound            = "Address not found"
	InvalidFoodItemID          = "Invalid food item id"
	FoodItemNotInRestaurant    = "Food item does not belong to the restaurant"
	RestaurantOwnerOrderError  = "A restaurant owner cannot place an order"
	UnauthorizedUser           = "Unauthorized user"
	OrderNotFound              = "Order not found"
	OrderPlacedSuccessfully    = "Order placed successfully"
	OrderCancelledSuccessfully = "Order cancelled successfully"
	OrderCompletedSuccessfully = "Order completed successfully"
)
