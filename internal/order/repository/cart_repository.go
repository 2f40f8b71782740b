package repository

import (
	"context"
	"database/sql"
	"fmt"
)

type MySQLCartRepository struct {
	db *sql.DB
}

func NewMySQLCartRepository(db *sql.DB) *MySQLCartRepository {
	return &MySQLCartRepository{db: db}
}

// DeleteByUserID clears the user's cart. Deleting an already-empty cart is
// not an error.
func (r *MySQLCartRepository) DeleteByUserID(ctx context.Context, userID int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM Carts WHERE userId = ?`, userID)
	if err != nil {
		return fmt.Errorf("deleting cart for user %d: %w", userID, err)
	}
	return nil
}
