package order

import (
	"database/sql"
	"net/http"

	"go.uber.org/zap"

	"tiffin/internal/config"
	"tiffin/internal/order/controller"
	"tiffin/internal/order/pricing"
	"tiffin/internal/order/repository"
	"tiffin/internal/order/usecase"
	"tiffin/internal/remote"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) *controller.OrderController {
	httpClient := &http.Client{Timeout: cfg.Services.RequestTimeout}

	userClient := remote.NewUserClient(httpClient, cfg.Services.UserServiceURL, logger)
	restaurantClient := remote.NewRestaurantClient(httpClient, cfg.Services.RestaurantServiceURL, logger)

	orderRepo := repository.NewMySQLOrderRepository(db)
	cartRepo := repository.NewMySQLCartRepository(db)

	workflow := usecase.NewOrderWorkflow(
		orderRepo,
		cartRepo,
		userClient,
		restaurantClient,
		pricing.NewEngine(),
		logger,
	)

	return controller.NewOrderController(workflow, logger)
}
