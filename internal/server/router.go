package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"tiffin/internal/order/controller"
)

func NewRouter(orderCtrl *controller.OrderController, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", orderCtrl.PlaceOrder)
		r.Put("/{orderId}/cancel", orderCtrl.CancelOrder)
		r.Put("/{orderId}/complete", orderCtrl.CompleteOrder)
		r.Get("/user/{userId}", orderCtrl.GetOrdersByUser)
		r.Get("/restaurant/{restaurantId}", orderCtrl.GetOrdersByRestaurant)
	})

	return r
}
