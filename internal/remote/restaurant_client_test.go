package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "tiffin/internal/errors"
)

func TestRestaurantClient_GetRestaurantProfile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/restaurants/2", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"restaurantId": 2,
			"name":         "Spice Hub",
		})
	}))
	defer srv.Close()

	client := NewRestaurantClient(srv.Client(), srv.URL, zap.NewNop())

	profile, err := client.GetRestaurantProfile(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, profile.RestaurantID)
	assert.Equal(t, "Spice Hub", profile.Name)
}

func TestRestaurantClient_GetRestaurantProfile_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewRestaurantClient(srv.Client(), srv.URL, zap.NewNop())

	_, err := client.GetRestaurantProfile(context.Background(), 99)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestRestaurantClient_GetFoodItem_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/fooditems/1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"foodItemId":   1,
			"restaurantId": 2,
			"name":         "Masala Dosa",
			"price":        50.0,
		})
	}))
	defer srv.Close()

	client := NewRestaurantClient(srv.Client(), srv.URL, zap.NewNop())

	item, err := client.GetFoodItem(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, item.FoodItemID)
	assert.Equal(t, 2, item.RestaurantID)
	assert.Equal(t, 50.0, item.Price)
}

func TestRestaurantClient_GetFoodItem_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewRestaurantClient(srv.Client(), srv.URL, zap.NewNop())

	_, err := client.GetFoodItem(context.Background(), 77)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestRestaurantClient_GetRestaurantMenu_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/fooditems/restaurant/2", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"foodItemId": 1, "restaurantId": 2, "name": "Masala Dosa", "price": 50.0},
			{"foodItemId": 4, "restaurantId": 2, "name": "Filter Coffee", "price": 15.0},
		})
	}))
	defer srv.Close()

	client := NewRestaurantClient(srv.Client(), srv.URL, zap.NewNop())

	menu, err := client.GetRestaurantMenu(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, menu, 2)
	assert.Equal(t, 1, menu[0].FoodItemID)
	assert.Equal(t, 4, menu[1].FoodItemID)
}

func TestRestaurantClient_GetRestaurantMenu_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"not":"a list"`))
	}))
	defer srv.Close()

	client := NewRestaurantClient(srv.Client(), srv.URL, zap.NewNop())

	_, err := client.GetRestaurantMenu(context.Background(), 2)

	_, ok := apperrors.IsUpstreamError(err)
	assert.True(t, ok)
}
