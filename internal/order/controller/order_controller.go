package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tiffin/internal/domain"
	"tiffin/internal/dto"
	apperrors "tiffin/internal/errors"
)

type OrderWorkflow interface {
	PlaceOrder(ctx context.Context, userID, restaurantID, addressID int, lines []domain.OrderLine) (*dto.OrderConfirmation, error)
	CancelOrder(ctx context.Context, orderID uint) (*dto.OrderConfirmation, error)
	MarkOrderAsCompleted(ctx context.Context, orderID uint, actingUserID int) (*dto.OrderConfirmation, error)
	GetOrdersByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	GetOrdersByRestaurantID(ctx context.Context, restaurantID int) ([]domain.Order, error)
}

type OrderController struct {
	workflow OrderWorkflow
	logger   *zap.Logger
}

func NewOrderController(workflow OrderWorkflow, logger *zap.Logger) *OrderController {
	return &OrderController{
		workflow: workflow,
		logger:   logger,
	}
}

func (c *OrderController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if validationErr := c.validatePlaceOrderRequest(req); validationErr != nil {
		ve, _ := apperrors.IsValidationError(validationErr)
		c.writeValidationError(w, traceID, ve.Message, ve.Details...)
		return
	}

	lines := make([]domain.OrderLine, len(req.CartItems))
	for i, item := range req.CartItems {
		lines[i] = domain.OrderLine{
			FoodItemID: item.FoodItemID,
			Price:      item.Price,
			Quantity:   item.Quantity,
		}
	}

	confirmation, err := c.workflow.PlaceOrder(r.Context(), req.UserID, req.RestaurantID, req.AddressID, lines)
	if err != nil {
		c.handleWorkflowError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.PlaceOrderResponse{
		TraceID:   traceID,
		Message:   confirmation.Message,
		Order:     mapOrder(confirmation.Order),
		Timestamp: time.Now().UTC(),
	})
}

func (c *OrderController) CancelOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.parseOrderID(w, r, traceID, logger)
	if !ok {
		return
	}

	confirmation, err := c.workflow.CancelOrder(r.Context(), orderID)
	if err != nil {
		c.handleWorkflowError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.CommonResponse{
		TraceID:   traceID,
		Message:   confirmation.Message,
		Timestamp: time.Now().UTC(),
	})
}

func (c *OrderController) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	orderID, ok := c.parseOrderID(w, r, traceID, logger)
	if !ok {
		return
	}

	var req dto.CompleteOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, traceID, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.UserID <= 0 {
		c.writeValidationError(w, traceID, "validation failed", apperrors.ValidationDetail{
			Field:   "userId",
			Message: "userId must be a positive integer",
		})
		return
	}

	confirmation, err := c.workflow.MarkOrderAsCompleted(r.Context(), orderID, req.UserID)
	if err != nil {
		c.handleWorkflowError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.CommonResponse{
		TraceID:   traceID,
		Message:   confirmation.Message,
		Timestamp: time.Now().UTC(),
	})
}

func (c *OrderController) GetOrdersByUser(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil || userID <= 0 {
		c.writeValidationError(w, traceID, "invalid userId", apperrors.ValidationDetail{
			Field:   "userId",
			Message: "userId must be a positive integer",
		})
		return
	}

	orders, err := c.workflow.GetOrdersByUserID(r.Context(), userID)
	if err != nil {
		c.handleWorkflowError(w, traceID, err, logger)
		return
	}

	c.writeOrderList(w, traceID, orders)
}

func (c *OrderController) GetOrdersByRestaurant(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	restaurantID, err := strconv.Atoi(chi.URLParam(r, "restaurantId"))
	if err != nil || restaurantID <= 0 {
		c.writeValidationError(w, traceID, "invalid restaurantId", apperrors.ValidationDetail{
			Field:   "restaurantId",
			Message: "restaurantId must be a positive integer",
		})
		return
	}

	orders, err := c.workflow.GetOrdersByRestaurantID(r.Context(), restaurantID)
	if err != nil {
		c.handleWorkflowError(w, traceID, err, logger)
		return
	}

	c.writeOrderList(w, traceID, orders)
}

func (c *OrderController) validatePlaceOrderRequest(req dto.PlaceOrderRequest) error {
	var details []apperrors.ValidationDetail

	if req.UserID <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "userId",
			Message: "userId must be a positive integer",
		})
	}

	if req.RestaurantID <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "restaurantId",
			Message: "restaurantId must be a positive integer",
		})
	}

	if req.AddressID <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "addressId",
			Message: "addressId must be a positive integer",
		})
	}

	if len(req.CartItems) == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "cartItems",
			Message: "cartItems must not be empty",
		})
	}

	for idx, item := range req.CartItems {
		if item.FoodItemID <= 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "cartItems[" + strconv.Itoa(idx) + "].foodItemId",
				Message: "foodItemId must be a positive integer",
			})
		}

		if item.Quantity <= 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "cartItems[" + strconv.Itoa(idx) + "].quantity",
				Message: "quantity must be a positive integer",
			})
		}

		if item.Price < 0 {
			details = append(details, apperrors.ValidationDetail{
				Field:   "cartItems[" + strconv.Itoa(idx) + "].price",
				Message: "price must be non-negative",
			})
		}
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

func (c *OrderController) parseOrderID(w http.ResponseWriter, r *http.Request, traceID string, logger *zap.Logger) (uint, bool) {
	orderIDStr := chi.URLParam(r, "orderId")
	orderID, err := strconv.ParseUint(orderIDStr, 10, 64)
	if err != nil || orderID == 0 {
		logger.Warn("invalid orderId in path", zap.String("orderId", orderIDStr))
		c.writeValidationError(w, traceID, "invalid orderId", apperrors.ValidationDetail{
			Field:   "orderId",
			Message: "orderId must be a positive integer",
		})
		return 0, false
	}
	return uint(orderID), true
}

func (c *OrderController) handleWorkflowError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	if _, ok := apperrors.IsNotFoundError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusNotFound, "NOT_FOUND", err.Error())
		return
	}

	if _, ok := apperrors.IsUnauthorizedError(err); ok {
		c.writeErrorResponse(w, traceID, http.StatusForbidden, "UNAUTHORIZED", err.Error())
		return
	}

	if _, ok := apperrors.IsUpstreamError(err); ok {
		logger.Error("upstream failure", zap.Error(err))
		c.writeErrorResponse(w, traceID, http.StatusBadGateway, "UPSTREAM_FAILURE", "a dependent service is unavailable")
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeErrorResponse(w, traceID, http.StatusInternalServerError, "INTERNAL_ERROR", "an unexpected error occurred")
}

func (c *OrderController) writeOrderList(w http.ResponseWriter, traceID string, orders []domain.Order) {
	responses := make([]dto.OrderResponse, len(orders))
	for i := range orders {
		responses[i] = mapOrder(&orders[i])
	}

	c.writeJSON(w, http.StatusOK, dto.OrderListResponse{
		TraceID:   traceID,
		Orders:    responses,
		Timestamp: time.Now().UTC(),
	})
}

func mapOrder(order *domain.Order) dto.OrderResponse {
	lines := make([]dto.OrderLineDTO, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = dto.OrderLineDTO{
			FoodItemID: line.FoodItemID,
			Price:      line.Price,
			Quantity:   line.Quantity,
		}
	}

	return dto.OrderResponse{
		OrderID:      order.ID,
		UserID:       order.UserID,
		RestaurantID: order.RestaurantID,
		AddressID:    order.AddressID,
		Lines:        lines,
		TotalPrice:   order.TotalPrice,
		Status:       order.Status,
		PlacedTiming: order.PlacedTiming,
	}
}

func (c *OrderController) writeErrorResponse(w http.ResponseWriter, traceID string, statusCode int, code string, message string) {
	c.writeJSON(w, statusCode, dto.ErrorResponse{
		TraceID:   traceID,
		Status:    statusCode,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, traceID string, message string, details ...apperrors.ValidationDetail) {
	response := validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	}

	c.writeJSON(w, http.StatusBadRequest, response)
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
