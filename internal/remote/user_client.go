package remote

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"tiffin/internal/domain"
	"tiffin/internal/dto"
)

// UserClient talks to the user service: profiles, saved addresses and the
// wallet. Wallet balance lives on the user service; this client only asks
// for mutations, it never stores the balance.
type UserClient struct {
	api apiClient
}

func NewUserClient(httpClient *http.Client, baseURL string, logger *zap.Logger) *UserClient {
	return &UserClient{
		api: apiClient{
			httpClient: httpClient,
			baseURL:    baseURL,
			logger:     logger,
		},
	}
}

func (c *UserClient) GetUserProfile(ctx context.Context, userID int) (*domain.UserProfile, error) {
	var out dto.UserProfileDTO
	if err := c.api.getJSON(ctx, fmt.Sprintf("/api/users/%d", userID), &out); err != nil {
		return nil, err
	}

	return &domain.UserProfile{
		ID:            out.ID,
		Name:          out.Name,
		Role:          domain.Role(out.Role),
		WalletBalance: out.WalletBalance,
	}, nil
}

func (c *UserClient) GetUserAddresses(ctx context.Context, userID int) ([]domain.Address, error) {
	var out []dto.AddressDTO
	if err := c.api.getJSON(ctx, fmt.Sprintf("/api/addresses/user/%d", userID), &out); err != nil {
		return nil, err
	}

	addresses := make([]domain.Address, len(out))
	for i, a := range out {
		addresses[i] = domain.Address{
			ID:     a.ID,
			UserID: a.UserID,
			Street: a.Street,
			City:   a.City,
		}
	}

	return addresses, nil
}

func (c *UserClient) DebitWallet(ctx context.Context, userID int, amount float64) error {
	return c.api.postJSON(ctx, fmt.Sprintf("/api/users/%d/wallet/deduct", userID), dto.AmountDTO{Amount: amount})
}

func (c *UserClient) CreditWallet(ctx context.Context, userID int, amount float64) error {
	return c.api.postJSON(ctx, fmt.Sprintf("/api/users/%d/wallet/add", userID), dto.AmountDTO{Amount: amount})
}
