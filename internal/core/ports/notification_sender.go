package ports

import "context"

// Notification carries the data for an order-completion email. The recipient
// address may be empty; senders attempt delivery with whatever identifying
// data is present and report failure the same way as a transport error.
type Notification struct {
	CustomerID    string
	CustomerEmail string
	CustomerName  string
	OrderID       string
	OrderTotal    float64
}

// NotificationSender defines the outbound contract for completion emails.
// Implementations never panic past their boundary; any transport failure is
// returned as an error for the caller to downgrade to a step outcome.
type NotificationSender interface {
	// Send delivers (or simulates) the completion email.
	Send(ctx context.Context, n Notification) error

	// Simulated reports whether the sender is running in simulation mode.
	// Used by the health endpoint to report the emailer state.
	Simulated() bool
}
