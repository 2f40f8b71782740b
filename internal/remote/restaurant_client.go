package remote

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"tiffin/internal/domain"
	"tiffin/internal/dto"
)

// RestaurantClient talks to the restaurant service: restaurant profiles and
// the food-item catalog.
type RestaurantClient struct {
	api apiClient
}

func NewRestaurantClient(httpClient *http.Client, baseURL string, logger *zap.Logger) *RestaurantClient {
	return &RestaurantClient{
		api: apiClient{
			httpClient: httpClient,
			baseURL:    baseURL,
			logger:     logger,
		},
	}
}

func (c *RestaurantClient) GetRestaurantProfile(ctx context.Context, restaurantID int) (*domain.RestaurantProfile, error) {
	var out dto.RestaurantDTO
	if err := c.api.getJSON(ctx, fmt.Sprintf("/api/restaurants/%d", restaurantID), &out); err != nil {
		return nil, err
	}

	return &domain.RestaurantProfile{
		RestaurantID: out.RestaurantID,
		Name:         out.Name,
	}, nil
}

func (c *RestaurantClient) GetFoodItem(ctx context.Context, foodItemID int) (*domain.FoodItem, error) {
	var out dto.FoodItemDTO
	if err := c.api.getJSON(ctx, fmt.Sprintf("/api/fooditems/%d", foodItemID), &out); err != nil {
		return nil, err
	}

	item := mapFoodItem(out)
	return &item, nil
}

func (c *RestaurantClient) GetRestaurantMenu(ctx context.Context, restaurantID int) ([]domain.FoodItem, error) {
	var out []dto.FoodItemDTO
	if err := c.api.getJSON(ctx, fmt.Sprintf("/api/fooditems/restaurant/%d", restaurantID), &out); err != nil {
		return nil, err
	}

	menu := make([]domain.FoodItem, len(out))
	for i, f := range out {
		menu[i] = mapFoodItem(f)
	}

	return menu, nil
}

func mapFoodItem(f dto.FoodItemDTO) domain.FoodItem {
	return domain.FoodItem{
		FoodItemID:   f.FoodItemID,
		RestaurantID: f.RestaurantID,
		Name:         f.Name,
		Price:        f.Price,
	}
}
