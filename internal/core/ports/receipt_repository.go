// Package ports defines the outbound interfaces of the order-completion service.
// These interfaces establish contracts between the application core and
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"

	"completion/internal/core/domain/model/receipt"
)

// ReceiptRepository defines the persistence contract for receipt aggregates.
// Receipts are written exactly once per completion run and are read-only
// afterwards; there is no update path.
type ReceiptRepository interface {
	// Add persists a new receipt. Returns an ObjectAlreadyExistsError when a
	// receipt for the same order already exists (the receipts table carries a
	// unique index on order_id), and a transport error when the store is
	// unreachable.
	Add(ctx context.Context, r *receipt.Receipt) error

	// GetByID retrieves a receipt by its identifier. Returns an
	// ObjectNotFoundError when no such receipt exists; any other error means
	// the store is unavailable.
	GetByID(ctx context.Context, receiptID string) (*receipt.Receipt, error)
}
