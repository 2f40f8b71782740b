package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the test database. Expects a MySQL instance on
// localhost:3306 with a database named 'tiffin_test'; tests are skipped
// when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/tiffin_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"OrderItems", "Orders", "Carts"}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

func SetupTestTables(t *testing.T, db *sql.DB) {
	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS Orders (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		userId INT NOT NULL,
		restaurantId INT NOT NULL,
		addressId INT NOT NULL,
		totalPrice DOUBLE NOT NULL,
		status VARCHAR(20) NOT NULL,
		placedTiming DATETIME NOT NULL
	)`

	createOrderItemsTable := `
	CREATE TABLE IF NOT EXISTS OrderItems (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		orderId INT NOT NULL,
		foodItemId INT NOT NULL,
		price DOUBLE NOT NULL,
		quantity INT NOT NULL
	)`

	createCartsTable := `
	CREATE TABLE IF NOT EXISTS Carts (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		userId INT NOT NULL,
		foodItemId INT NOT NULL,
		price DOUBLE NOT NULL,
		quantity INT NOT NULL
	)`

	for _, stmt := range []string{createOrdersTable, createOrderItemsTable, createCartsTable} {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("failed to create test table: %v", err)
		}
	}
}
