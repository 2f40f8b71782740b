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

	"tiffin/internal/domain"
	apperrors "tiffin/internal/errors"
)

func TestUserClient_GetUserProfile_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":            1,
			"name":          "John",
			"role":          "USER",
			"walletBalance": 500.0,
		})
	}))
	defer srv.Close()

	client := NewUserClient(srv.Client(), srv.URL, zap.NewNop())

	profile, err := client.GetUserProfile(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.ID)
	assert.Equal(t, domain.RoleUser, profile.Role)
	assert.Equal(t, 500.0, profile.WalletBalance)
}

func TestUserClient_GetUserProfile_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewUserClient(srv.Client(), srv.URL, zap.NewNop())

	profile, err := client.GetUserProfile(context.Background(), 42)
	assert.Nil(t, profile)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestUserClient_GetUserProfile_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewUserClient(srv.Client(), srv.URL, zap.NewNop())

	_, err := client.GetUserProfile(context.Background(), 1)

	_, ok := apperrors.IsUpstreamError(err)
	assert.True(t, ok)
}

func TestUserClient_GetUserProfile_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewUserClient(&http.Client{}, srv.URL, zap.NewNop())

	_, err := client.GetUserProfile(context.Background(), 1)

	_, ok := apperrors.IsUpstreamError(err)
	assert.True(t, ok)
}

func TestUserClient_GetUserAddresses_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/addresses/user/1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"id": 3, "userId": 1, "street": "12 Fort Rd", "city": "Pune"},
		})
	}))
	defer srv.Close()

	client := NewUserClient(srv.Client(), srv.URL, zap.NewNop())

	addresses, err := client.GetUserAddresses(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, 3, addresses[0].ID)
	assert.Equal(t, 1, addresses[0].UserID)
}

func TestUserClient_GetUserAddresses_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewUserClient(srv.Client(), srv.URL, zap.NewNop())

	addresses, err := client.GetUserAddresses(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, addresses)
}

func TestUserClient_DebitWallet_SendsAmount(t *testing.T) {
	var gotPath string
	var gotBody map[string]float64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewUserClient(srv.Client(), srv.URL, zap.NewNop())

	err := client.DebitWallet(context.Background(), 1, 100.0)
	require.NoError(t, err)
	assert.Equal(t, "/api/users/1/wallet/deduct", gotPath)
	assert.Equal(t, 100.0, gotBody["amount"])
}

func TestUserClient_CreditWallet_SendsAmount(t *testing.T) {
	var gotPath string
	var gotBody map[string]float64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewUserClient(srv.Client(), srv.URL, zap.NewNop())

	err := client.CreditWallet(context.Background(), 1, 100.0)
	require.NoError(t, err)
	assert.Equal(t, "/api/users/1/wallet/add", gotPath)
	assert.Equal(t, 100.0, gotBody["amount"])
}

func TestUserClient_DebitWallet_UserNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewUserClient(srv.Client(), srv.URL, zap.NewNop())

	err := client.DebitWallet(context.Background(), 42, 10.0)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}
