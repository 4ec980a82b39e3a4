// Package commands contains write operations of the order-completion service.
// Implements the Command pattern for state-changing operations in the CQRS
// architecture. Commands validate their input on construction; handlers
// coordinate the side-effecting steps.
package commands

import (
	"errors"
	"fmt"
	"time"

	"completion/internal/pkg/errs"
	"completion/internal/pkg/guard"
)

var (
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
)

// CompleteOrderCommand represents a request to run the completion workflow for
// an order that has reached its terminal state. Carries the order identity,
// the total the derived figures are computed from, and the optional customer
// contact data for the notification step.
//
// Example:
//
//	cmd, err := NewCompleteOrderCommand("order-1", "cust-1", 25.00, nil, "a@b.c", "Ada")
//	if err != nil {
//	    return fmt.Errorf("invalid completion request: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("completed: %v (receipt %s)\n", result.Success, result.Receipt.ID())
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       string
	customerID    string
	orderTotal    float64
	deliveryTime  *time.Time
	customerEmail string
	customerName  string

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete an order.
// Validates that the order and customer identifiers are present and that the
// order total is non-negative. Delivery time, customer email, and customer
// name are optional.
func NewCompleteOrderCommand(
	orderID string,
	customerID string,
	orderTotal float64,
	deliveryTime *time.Time,
	customerEmail string,
	customerName string,
) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		deliveryTime:  deliveryTime,
		customerEmail: customerEmail,
		customerName:  customerName,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setOrderTotal(orderTotal),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteOrderCommandIsNotConstructed if validation fails.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the completed order.
func (c CompleteOrderCommand) OrderID() string {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c CompleteOrderCommand) CustomerID() string {
	return c.customerID
}

// OrderTotal returns the order total.
func (c CompleteOrderCommand) OrderTotal() float64 {
	return c.orderTotal
}

// DeliveryTime returns the delivery timestamp, or nil if none was provided.
func (c CompleteOrderCommand) DeliveryTime() *time.Time {
	return c.deliveryTime
}

// CustomerEmail returns the customer's email address, possibly empty.
func (c CompleteOrderCommand) CustomerEmail() string {
	return c.customerEmail
}

// CustomerName returns the customer's display name, possibly empty.
func (c CompleteOrderCommand) CustomerName() string {
	return c.customerName
}

func (c *CompleteOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	c.customerID = customerID
	return nil
}

func (c *CompleteOrderCommand) setOrderTotal(orderTotal float64) error {
	if orderTotal < 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderTotal",
			fmt.Errorf("%.2f is negative", orderTotal))
	}
	c.orderTotal = orderTotal
	return nil
}
