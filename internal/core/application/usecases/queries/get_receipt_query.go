// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"completion/internal/pkg/errs"
	"completion/internal/pkg/guard"
)

var (
	ErrGetReceiptQueryIsNotConstructed = errors.New(
		"GetReceiptQuery must be created via NewGetReceiptQuery constructor",
	)
)

// GetReceiptQuery retrieves a stored receipt by its identifier.
//
// Example:
//
//	query, err := NewGetReceiptQuery("RECEIPT-550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    return err
//	}
//
//	receipt, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // normal empty result
//	}
type GetReceiptQuery struct {
	receiptID string

	guard guard.ConstructorGuard
}

// NewGetReceiptQuery creates a query for a receipt lookup.
// The receipt identifier must not be empty.
func NewGetReceiptQuery(receiptID string) (GetReceiptQuery, error) {
	if receiptID == "" {
		return GetReceiptQuery{}, errs.NewValueIsRequiredError("receiptId")
	}

	return GetReceiptQuery{
		receiptID: receiptID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetReceiptQueryIsNotConstructed if validation fails.
func (q GetReceiptQuery) Validate() error {
	return q.guard.Validate(ErrGetReceiptQueryIsNotConstructed)
}

// ReceiptID returns the identifier being looked up.
func (q GetReceiptQuery) ReceiptID() string {
	return q.receiptID
}

// GetReceiptQueryResponse represents a receipt in the read model.
type GetReceiptQueryResponse struct {
	ReceiptID    string
	OrderID      string
	CustomerID   string
	OrderTotal   float64
	TaxAmount    float64
	DeliveryFee  float64
	DeliveryTime *time.Time
	Status       string
	GeneratedAt  time.Time
}
