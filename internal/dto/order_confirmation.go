package dto

import "tiffin/internal/domain"

// OrderConfirmation is the workflow-level result of a mutating order
// operation: a human-readable message plus the order as persisted.
type OrderConfirmation struct {
	Message string
	Order   *domain.Order
}
