package receipt

import (
	"errors"
	"fmt"
	"math"
	"time"

	"completion/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrReceiptIsNotConstructed is returned when a Receipt instance was not created
	// through the NewReceipt or RestoreReceipt factory methods.
	ErrReceiptIsNotConstructed = errors.New("Receipt must be created via NewReceipt or RestoreReceipt")
)

const (
	// StatusCompleted is the only status a receipt is ever created with.
	// Receipts exist solely for completed orders.
	StatusCompleted = "completed"

	// IDPrefix prefixes every generated receipt identifier.
	IDPrefix = "RECEIPT-"

	taxRate         = 0.10
	deliveryFeeRate = 0.05
)

// Receipt represents the billing record produced when an order reaches its
// terminal completed state. It is the aggregate root for receipt persistence
// and is immutable once created.
//
// Receipt follows these invariants:
//   - Must reference a non-empty order and customer identifier
//   - Order total must be non-negative
//   - TaxAmount and DeliveryFee are derived from the order total, never set directly
//   - Can only be created through NewReceipt or RestoreReceipt
type Receipt struct {
	id           string
	orderID      string
	customerID   string
	orderTotal   float64
	taxAmount    float64
	deliveryFee  float64
	deliveryTime *time.Time
	status       string
	generatedAt  time.Time

	// isConstructed ensures the receipt was created via a factory method
	isConstructed bool
}

// NewReceipt creates a Receipt for a completed order. The receipt identifier
// is freshly generated ("RECEIPT-<uuid>") and the tax and delivery-fee figures
// are derived from the order total. GeneratedAt is set to the current UTC time.
//
// Example:
//
//	r, err := receipt.NewReceipt("order-1", "cust-1", 25.00, nil)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(r.TaxAmount())   // 2.50
//	fmt.Println(r.DeliveryFee()) // 1.25
func NewReceipt(orderID string, customerID string, orderTotal float64, deliveryTime *time.Time) (*Receipt, error) {
	r := &Receipt{
		id:            IDPrefix + uuid.NewString(),
		taxAmount:     TaxFor(orderTotal),
		deliveryFee:   DeliveryFeeFor(orderTotal),
		deliveryTime:  deliveryTime,
		status:        StatusCompleted,
		generatedAt:   time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setOrderID(orderID),
		r.setCustomerID(customerID),
		r.setOrderTotal(orderTotal),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReceipt reconstructs a Receipt from persistence. All figures are taken
// as stored; no derivation is performed. Used exclusively by repositories.
func RestoreReceipt(
	id string,
	orderID string,
	customerID string,
	orderTotal float64,
	taxAmount float64,
	deliveryFee float64,
	deliveryTime *time.Time,
	status string,
	generatedAt time.Time,
) (*Receipt, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("receiptId")
	}

	r := &Receipt{
		id:            id,
		taxAmount:     taxAmount,
		deliveryFee:   deliveryFee,
		deliveryTime:  deliveryTime,
		status:        status,
		generatedAt:   generatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setOrderID(orderID),
		r.setCustomerID(customerID),
		r.setOrderTotal(orderTotal),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// TaxFor derives the tax amount for an order total: 10%, rounded to 2 decimals.
// Pure and total over its input.
func TaxFor(orderTotal float64) float64 {
	return round2(orderTotal * taxRate)
}

// DeliveryFeeFor derives the delivery fee for an order total: 5%, rounded to 2 decimals.
// Pure and total over its input.
func DeliveryFeeFor(orderTotal float64) float64 {
	return round2(orderTotal * deliveryFeeRate)
}

// Validate checks that the receipt was created through a factory method.
func (r *Receipt) Validate() error {
	if !r.isConstructed {
		return ErrReceiptIsNotConstructed
	}
	return nil
}

// ID returns the receipt's unique identifier.
func (r *Receipt) ID() string {
	return r.id
}

// OrderID returns the identifier of the completed order.
func (r *Receipt) OrderID() string {
	return r.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (r *Receipt) CustomerID() string {
	return r.customerID
}

// OrderTotal returns the order total the receipt was computed from.
func (r *Receipt) OrderTotal() float64 {
	return r.orderTotal
}

// TaxAmount returns the derived tax amount.
func (r *Receipt) TaxAmount() float64 {
	return r.taxAmount
}

// DeliveryFee returns the derived delivery fee.
func (r *Receipt) DeliveryFee() float64 {
	return r.deliveryFee
}

// DeliveryTime returns the delivery timestamp, or nil if none was provided.
func (r *Receipt) DeliveryTime() *time.Time {
	return r.deliveryTime
}

// Status returns the receipt status.
func (r *Receipt) Status() string {
	return r.status
}

// GeneratedAt returns the creation timestamp of the receipt.
func (r *Receipt) GeneratedAt() time.Time {
	return r.generatedAt
}

// setOrderID validates and sets the order identifier.
// This is a private method used only during construction.
func (r *Receipt) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	r.orderID = orderID
	return nil
}

// setCustomerID validates and sets the customer identifier.
// This is a private method used only during construction.
func (r *Receipt) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	r.customerID = customerID
	return nil
}

// setOrderTotal validates and sets the order total.
// This is a private method used only during construction.
func (r *Receipt) setOrderTotal(orderTotal float64) error {
	if orderTotal < 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderTotal",
			fmt.Errorf("%.2f is negative", orderTotal))
	}
	r.orderTotal = orderTotal
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
