// Package receiptrepo provides data transfer objects and mapping functions for
// receipt persistence. This package implements the repository pattern for the
// receipt aggregate, handling the conversion between domain entities and
// database representations.
package receiptrepo

import (
	"time"

	"completion/internal/core/domain/model/receipt"
)

// ReceiptDTO represents the database structure for persisting receipts.
// The unique index on order_id guards against a retried completion event
// inserting a second receipt for the same order.
type ReceiptDTO struct {
	ReceiptID    string  `gorm:"primaryKey"`
	OrderID      string  `gorm:"uniqueIndex"`
	CustomerID   string  `gorm:"index"`
	OrderTotal   float64 `gorm:"type:numeric(12,2)"`
	TaxAmount    float64 `gorm:"type:numeric(12,2)"`
	DeliveryFee  float64 `gorm:"type:numeric(12,2)"`
	DeliveryTime *time.Time
	Status       string
	GeneratedAt  time.Time
}

// TableName specifies the database table name for receipt entities.
// Overrides GORM's default naming convention to use "receipts".
func (ReceiptDTO) TableName() string {
	return "receipts"
}

// fromDomain converts a receipt aggregate to its database representation.
func fromDomain(r *receipt.Receipt) ReceiptDTO {
	return ReceiptDTO{
		ReceiptID:    r.ID(),
		OrderID:      r.OrderID(),
		CustomerID:   r.CustomerID(),
		OrderTotal:   r.OrderTotal(),
		TaxAmount:    r.TaxAmount(),
		DeliveryFee:  r.DeliveryFee(),
		DeliveryTime: r.DeliveryTime(),
		Status:       r.Status(),
		GeneratedAt:  r.GeneratedAt(),
	}
}

// toDomain converts a database DTO back to a receipt aggregate.
func toDomain(dto ReceiptDTO) (*receipt.Receipt, error) {
	return receipt.RestoreReceipt(
		dto.ReceiptID,
		dto.OrderID,
		dto.CustomerID,
		dto.OrderTotal,
		dto.TaxAmount,
		dto.DeliveryFee,
		dto.DeliveryTime,
		dto.Status,
		dto.GeneratedAt,
	)
}
