package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tiffin/internal/commons"
	"tiffin/internal/domain"
	"tiffin/internal/dto"
	apperrors "tiffin/internal/errors"
)

type UserDirectory interface {
	GetUserProfile(ctx context.Context, userID int) (*domain.UserProfile, error)
	GetUserAddresses(ctx context.Context, userID int) ([]domain.Address, error)
	DebitWallet(ctx context.Context, userID int, amount float64) error
	CreditWallet(ctx context.Context, userID int, amount float64) error
}

type RestaurantDirectory interface {
	GetRestaurantProfile(ctx context.Context, restaurantID int) (*domain.RestaurantProfile, error)
	GetFoodItem(ctx context.Context, foodItemID int) (*domain.FoodItem, error)
	GetRestaurantMenu(ctx context.Context, restaurantID int) ([]domain.FoodItem, error)
}

type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Order, error)
	FindByRestaurantID(ctx context.Context, restaurantID int) ([]domain.Order, error)
}

type CartRepository interface {
	DeleteByUserID(ctx context.Context, userID int) error
}

type PricingEngine interface {
	Total(lines []domain.OrderLine) float64
}

// OrderWorkflow orchestrates order placement, cancellation, completion and
// listing against the remote user and restaurant services and the local
// order store. Every remote read runs before any mutation; once the order
// row is written there is no rollback of the wallet debit or cart clear.
type OrderWorkflow struct {
	orderRepo   OrderRepository
	cartRepo    CartRepository
	users       UserDirectory
	restaurants RestaurantDirectory
	pricing     PricingEngine
	logger      *zap.Logger
}

func NewOrderWorkflow(
	orderRepo OrderRepository,
	cartRepo CartRepository,
	users UserDirectory,
	restaurants RestaurantDirectory,
	pricing PricingEngine,
	logger *zap.Logger,
) *OrderWorkflow {
	return &OrderWorkflow{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		users:       users,
		restaurants: restaurants,
		pricing:     pricing,
		logger:      logger,
	}
}

// PlaceOrder validates the cart against the user, restaurant, address and
// catalog services, persists the order as PLACED, debits the wallet and
// clears the cart. Validation order matters: user, restaurant, addresses,
// then each cart line against the catalog and the restaurant's menu.
func (w *OrderWorkflow) PlaceOrder(
	ctx context.Context,
	userID int,
	restaurantID int,
	addressID int,
	lines []domain.OrderLine,
) (*dto.OrderConfirmation, error) {
	w.logger.Info("placing order",
		zap.Int("userId", userID),
		zap.Int("restaurantId", restaurantID),
		zap.Int("lineCount", len(lines)))

	user, err := w.users.GetUserProfile(ctx, userID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewNotFoundError(commons.UserNotFound)
		}
		return nil, err
	}

	if user.Role == domain.RoleRestaurantOwner {
		return nil, apperrors.NewUnauthorizedError(commons.RestaurantOwnerOrderError)
	}

	if _, err := w.restaurants.GetRestaurantProfile(ctx, restaurantID); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewNotFoundError(commons.InvalidRestaurantID)
		}
		return nil, err
	}

	addresses, err := w.users.GetUserAddresses(ctx, userID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewNotFoundError(commons.AddressNotFound)
		}
		return nil, err
	}
	if len(addresses) == 0 {
		return nil, apperrors.NewNotFoundError(commons.AddressNotFound)
	}

	for _, line := range lines {
		if _, err := w.restaurants.GetFoodItem(ctx, line.FoodItemID); err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				return nil, apperrors.NewNotFoundError(commons.InvalidFoodItemID)
			}
			return nil, err
		}

		menu, err := w.restaurants.GetRestaurantMenu(ctx, restaurantID)
		if err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				return nil, apperrors.NewNotFoundError(commons.FoodItemNotInRestaurant)
			}
			return nil, err
		}

		if !menuContains(menu, line.FoodItemID) {
			return nil, apperrors.NewNotFoundError(commons.FoodItemNotInRestaurant)
		}
	}

	total := w.pricing.Total(lines)

	order := &domain.Order{
		UserID:       userID,
		RestaurantID: restaurantID,
		AddressID:    addressID,
		Lines:        lines,
		TotalPrice:   total,
		Status:       domain.OrderStatusPlaced,
		PlacedTiming: time.Now().UTC(),
	}

	saved, err := w.orderRepo.Save(ctx, order)
	if err != nil {
		w.logger.Error("persisting order failed", zap.Int("userId", userID), zap.Error(err))
		return nil, err
	}

	if err := w.users.DebitWallet(ctx, userID, total); err != nil {
		// The order row already exists; the debit is not re-attempted.
		w.logger.Error("wallet debit failed after order persisted",
			zap.Uint("orderId", saved.ID), zap.Float64("amount", total), zap.Error(err))
		return nil, err
	}

	if err := w.cartRepo.DeleteByUserID(ctx, userID); err != nil {
		// Best-effort: the order stands and the wallet stays debited.
		w.logger.Error("cart clear failed after order persisted",
			zap.Uint("orderId", saved.ID), zap.Int("userId", userID), zap.Error(err))
		return nil, err
	}

	w.logger.Info("order placed",
		zap.Uint("orderId", saved.ID),
		zap.Int("userId", userID),
		zap.Float64("totalPrice", total))

	return &dto.OrderConfirmation{
		Message: commons.OrderPlacedSuccessfully,
		Order:   saved,
	}, nil
}

// CancelOrder sets the order to CANCELLED and refunds its total to the
// user's wallet. Cancellation is not idempotent: a second cancel of the
// same order issues a second credit.
func (w *OrderWorkflow) CancelOrder(ctx context.Context, orderID uint) (*dto.OrderConfirmation, error) {
	order, err := w.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewNotFoundError(commons.OrderNotFound)
		}
		return nil, err
	}

	order.Status = domain.OrderStatusCancelled
	if _, err := w.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	if err := w.users.CreditWallet(ctx, order.UserID, order.TotalPrice); err != nil {
		w.logger.Error("wallet refund failed after cancellation persisted",
			zap.Uint("orderId", orderID), zap.Float64("amount", order.TotalPrice), zap.Error(err))
		return nil, err
	}

	w.logger.Info("order cancelled",
		zap.Uint("orderId", orderID),
		zap.Float64("refunded", order.TotalPrice))

	return &dto.OrderConfirmation{
		Message: commons.OrderCancelledSuccessfully,
		Order:   order,
	}, nil
}

// MarkOrderAsCompleted sets the order to COMPLETED. Only the acting user's
// role is checked, not ownership of the restaurant the order belongs to.
func (w *OrderWorkflow) MarkOrderAsCompleted(ctx context.Context, orderID uint, actingUserID int) (*dto.OrderConfirmation, error) {
	order, err := w.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewNotFoundError(commons.OrderNotFound)
		}
		return nil, err
	}

	actor, err := w.users.GetUserProfile(ctx, actingUserID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewNotFoundError(commons.UserNotFound)
		}
		return nil, err
	}

	if actor.Role != domain.RoleRestaurantOwner {
		return nil, apperrors.NewUnauthorizedError(commons.UnauthorizedUser)
	}

	order.Status = domain.OrderStatusCompleted
	if _, err := w.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	w.logger.Info("order completed",
		zap.Uint("orderId", orderID),
		zap.Int("actingUserId", actingUserID))

	return &dto.OrderConfirmation{
		Message: commons.OrderCompletedSuccessfully,
		Order:   order,
	}, nil
}

func (w *OrderWorkflow) GetOrdersByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	if _, err := w.users.GetUserProfile(ctx, userID); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewNotFoundError(commons.UserNotFound)
		}
		return nil, err
	}

	return w.orderRepo.FindByUserID(ctx, userID)
}

func (w *OrderWorkflow) GetOrdersByRestaurantID(ctx context.Context, restaurantID int) ([]domain.Order, error) {
	if _, err := w.restaurants.GetRestaurantProfile(ctx, restaurantID); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			return nil, apperrors.NewNotFoundError(commons.InvalidRestaurantID)
		}
		return nil, err
	}

	return w.orderRepo.FindByRestaurantID(ctx, restaurantID)
}

func menuContains(menu []domain.FoodItem, foodItemID int) bool {
	for _, item := range menu {
		if item.FoodItemID == foodItemID {
			return true
		}
	}
	return false
}
