package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiffin/internal/domain"
	"tiffin/internal/errors"
	"tiffin/internal/testutil"
)

// Unit Tests

func TestNewMySQLOrderRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLOrderRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func placedOrder() *domain.Order {
	return &domain.Order{
		UserID:       1,
		RestaurantID: 2,
		AddressID:    3,
		Lines: []domain.OrderLine{
			{FoodItemID: 1, Price: 50.0, Quantity: 2},
		},
		TotalPrice:   100.0,
		Status:       domain.OrderStatusPlaced,
		PlacedTiming: time.Now().UTC().Truncate(time.Second),
	}
}

func TestOrderRepository_Save_AssignsID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	saved, err := repo.Save(context.Background(), placedOrder())
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
}

func TestOrderRepository_Save_ThenFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	saved, err := repo.Save(context.Background(), placedOrder())
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.ID, found.ID)
	assert.Equal(t, 1, found.UserID)
	assert.Equal(t, 2, found.RestaurantID)
	assert.Equal(t, 3, found.AddressID)
	assert.Equal(t, 100.0, found.TotalPrice)
	assert.Equal(t, domain.OrderStatusPlaced, found.Status)
	require.Len(t, found.Lines, 1)
	assert.Equal(t, 1, found.Lines[0].FoodItemID)
	assert.Equal(t, 50.0, found.Lines[0].Price)
	assert.Equal(t, 2, found.Lines[0].Quantity)
}

func TestOrderRepository_Save_UpdatesStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	saved, err := repo.Save(context.Background(), placedOrder())
	require.NoError(t, err)

	saved.Status = domain.OrderStatusCancelled
	_, err = repo.Save(context.Background(), saved)
	require.NoError(t, err)

	found, err := repo.FindByID(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusCancelled, found.Status)
	// Lines are untouched by status updates.
	assert.Len(t, found.Lines, 1)
}

func TestOrderRepository_Save_UpdateUnknownOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	order := placedOrder()
	order.ID = 9999

	_, err := repo.Save(context.Background(), order)
	require.Error(t, err)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}

func TestOrderRepository_FindByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	order, err := repo.FindByID(context.Background(), uint(9999))
	assert.Error(t, err)
	assert.Nil(t, order)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}

func TestOrderRepository_FindByUserID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	first := placedOrder()
	_, err := repo.Save(context.Background(), first)
	require.NoError(t, err)

	second := placedOrder()
	second.RestaurantID = 5
	_, err = repo.Save(context.Background(), second)
	require.NoError(t, err)

	other := placedOrder()
	other.UserID = 9
	_, err = repo.Save(context.Background(), other)
	require.NoError(t, err)

	orders, err := repo.FindByUserID(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
	for _, o := range orders {
		assert.Equal(t, 1, o.UserID)
		assert.Len(t, o.Lines, 1)
	}
}

func TestOrderRepository_FindByUserID_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	orders, err := repo.FindByUserID(context.Background(), 12345)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepository_FindByRestaurantID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLOrderRepository(db)

	first := placedOrder()
	_, err := repo.Save(context.Background(), first)
	require.NoError(t, err)

	other := placedOrder()
	other.RestaurantID = 7
	_, err = repo.Save(context.Background(), other)
	require.NoError(t, err)

	orders, err := repo.FindByRestaurantID(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, 2, orders[0].RestaurantID)
}
