package queries

import (
	"context"
	"database/sql"
	"errors"

	"completion/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetReceiptQueryHandler retrieves stored receipts from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// A missing receipt is a normal empty result reported as an
// ObjectNotFoundError; any other failure means the store is unavailable and
// passes through untouched so callers can distinguish the two.
type GetReceiptQueryHandler struct {
	db *gorm.DB
}

// NewGetReceiptQueryHandler creates a handler for receipt retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetReceiptQueryHandler(db *gorm.DB) GetReceiptQueryHandler {
	return GetReceiptQueryHandler{db: db}
}

// Handle executes the lookup for one receipt.
func (h GetReceiptQueryHandler) Handle(
	ctx context.Context,
	query GetReceiptQuery,
) (GetReceiptQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetReceiptQueryResponse{}, err
	}

	var response GetReceiptQueryResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			receipt_id,
			order_id,
			customer_id,
			order_total,
			tax_amount,
			delivery_fee,
			delivery_time,
			status,
			generated_at
		FROM receipts
		WHERE receipt_id = ?
	`, query.ReceiptID()).Row()

	err := row.Scan(
		&response.ReceiptID,
		&response.OrderID,
		&response.CustomerID,
		&response.OrderTotal,
		&response.TaxAmount,
		&response.DeliveryFee,
		&response.DeliveryTime,
		&response.Status,
		&response.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetReceiptQueryResponse{}, errs.NewObjectNotFoundError("receipt", query.ReceiptID())
		}
		return GetReceiptQueryResponse{}, err
	}

	return response, nil
}
