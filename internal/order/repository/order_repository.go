package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tiffin/internal/domain"
	"tiffin/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

// Save inserts the order on first save, assigning its id, and updates the
// status and total on subsequent saves. Order lines are written once at
// insert time and never touched again.
func (r *MySQLOrderRepository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order.ID == 0 {
		return r.insert(ctx, order)
	}
	return r.update(ctx, order)
}

func (r *MySQLOrderRepository) insert(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		INSERT INTO Orders (userId, restaurantId, addressId, totalPrice, status, placedTiming)
		VALUES (?, ?, ?, ?, ?, ?)
	`, order.UserID, order.RestaurantID, order.AddressID, order.TotalPrice, order.Status, order.PlacedTiming)
	if err != nil {
		return nil, fmt.Errorf("inserting order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting inserted order id: %w", err)
	}
	order.ID = uint(id)

	for _, line := range order.Lines {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO OrderItems (orderId, foodItemId, price, quantity)
			VALUES (?, ?, ?, ?)
		`, order.ID, line.FoodItemID, line.Price, line.Quantity)
		if err != nil {
			return nil, fmt.Errorf("inserting order line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing order insert: %w", err)
	}

	return order, nil
}

func (r *MySQLOrderRepository) update(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE Orders SET totalPrice = ?, status = ? WHERE id = ?
	`, order.TotalPrice, order.Status, order.ID)
	if err != nil {
		return nil, fmt.Errorf("updating order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", order.ID))
	}

	return order, nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := `
		SELECT id, userId, restaurantId, addressId, totalPrice, status, placedTiming
		FROM Orders
		WHERE id = ?
	`

	var order domain.Order
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.UserID, &order.RestaurantID, &order.AddressID,
		&order.TotalPrice, &order.Status, &order.PlacedTiming,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	lines, err := r.loadLines(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Lines = lines

	return &order, nil
}

func (r *MySQLOrderRepository) FindByUserID(ctx context.Context, userID int) ([]domain.Order, error) {
	return r.queryOrders(ctx, `
		SELECT id, userId, restaurantId, addressId, totalPrice, status, placedTiming
		FROM Orders
		WHERE userId = ?
		ORDER BY id
	`, userID)
}

func (r *MySQLOrderRepository) FindByRestaurantID(ctx context.Context, restaurantID int) ([]domain.Order, error) {
	return r.queryOrders(ctx, `
		SELECT id, userId, restaurantId, addressId, totalPrice, status, placedTiming
		FROM Orders
		WHERE restaurantId = ?
		ORDER BY id
	`, restaurantID)
}

func (r *MySQLOrderRepository) queryOrders(ctx context.Context, query string, arg interface{}) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		err := rows.Scan(
			&order.ID, &order.UserID, &order.RestaurantID, &order.AddressID,
			&order.TotalPrice, &order.Status, &order.PlacedTiming,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order rows: %w", err)
	}

	for i := range orders {
		lines, err := r.loadLines(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Lines = lines
	}

	return orders, nil
}

func (r *MySQLOrderRepository) loadLines(ctx context.Context, orderID uint) ([]domain.OrderLine, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT foodItemId, price, quantity
		FROM OrderItems
		WHERE orderId = ?
		ORDER BY id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("querying order lines: %w", err)
	}
	defer rows.Close()

	lines := []domain.OrderLine{}
	for rows.Next() {
		var line domain.OrderLine
		if err := rows.Scan(&line.FoodItemID, &line.Price, &line.Quantity); err != nil {
			return nil, fmt.Errorf("scanning order line: %w", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating order lines: %w", err)
	}

	return lines, nil
}
