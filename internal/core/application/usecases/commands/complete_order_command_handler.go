package commands

import (
	"context"
	"log/slog"
	"sync"

	"completion/internal/core/domain/model/loyalty"
	"completion/internal/core/domain/model/receipt"
	"completion/internal/core/ports"
	"completion/internal/metrics"
)

// CompletionResult aggregates the outcomes of one completion run.
// Success is always exactly the logical AND of the three step outcomes.
// The result is never persisted; it exists only for the duration of one request.
type CompletionResult struct {
	Success          bool
	OrderID          string
	CustomerID       string
	NotificationSent bool
	LoyaltyUpdated   bool
	PointsAwarded    int
	ReceiptStored    bool
	Receipt          *receipt.Receipt
}

// CompleteOrderCommandHandler orchestrates the completion workflow:
// customer notification, loyalty-point accrual, and receipt persistence.
//
// The three steps run as a best-effort saga without compensation: once the
// command is validated they are attempted unconditionally and independently,
// a failure in one never blocks or rolls back another, and every step failure
// is downgraded to a false sub-result instead of an error. The only error
// Handle returns is command validation failure, which is terminal and happens
// before any side effect.
//
// Example:
//
//	handler := NewCompleteOrderCommandHandler(sender, customers, receipts, reg, logger)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err // invalid command, nothing was attempted
//	}
//	if !result.Success {
//	    // partial failure; inspect the per-step flags
//	}
type CompleteOrderCommandHandler struct {
	sender    ports.NotificationSender
	customers ports.CustomerRepository
	receipts  ports.ReceiptRepository
	metrics   *metrics.Registry
	logger    *slog.Logger
}

// NewCompleteOrderCommandHandler creates the orchestrating handler.
// All dependencies are injected so tests can substitute fakes; none may be nil.
func NewCompleteOrderCommandHandler(
	sender ports.NotificationSender,
	customers ports.CustomerRepository,
	receipts ports.ReceiptRepository,
	registry *metrics.Registry,
	logger *slog.Logger,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		sender:    sender,
		customers: customers,
		receipts:  receipts,
		metrics:   registry,
		logger:    logger.With("component", "complete_order_handler"),
	}
}

// Handle runs the completion workflow for a validated command.
//
// Exactly one receipt is generated per invocation with a fresh identifier.
// The notification, loyalty, and persistence steps execute concurrently; the
// steps share no state and the underlying pool and transport are safe for
// concurrent use. Handle blocks until all three have reported.
func (h CompleteOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteOrderCommand,
) (CompletionResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompletionResult{}, err
	}

	rcpt, err := receipt.NewReceipt(cmd.OrderID(), cmd.CustomerID(), cmd.OrderTotal(), cmd.DeliveryTime())
	if err != nil {
		// Unreachable for a constructed command; surfaced as an internal fault.
		return CompletionResult{}, err
	}

	points := loyalty.PointsForTotal(cmd.OrderTotal())

	var sent, awarded, stored bool
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		sent = h.sendNotification(ctx, cmd)
	}()
	go func() {
		defer wg.Done()
		awarded = h.awardPoints(ctx, cmd.CustomerID(), points)
	}()
	go func() {
		defer wg.Done()
		stored = h.storeReceipt(ctx, rcpt)
	}()

	wg.Wait()

	result := CompletionResult{
		Success:          sent && awarded && stored,
		OrderID:          cmd.OrderID(),
		CustomerID:       cmd.CustomerID(),
		NotificationSent: sent,
		LoyaltyUpdated:   awarded,
		PointsAwarded:    points,
		ReceiptStored:    stored,
		Receipt:          rcpt,
	}

	h.metrics.RecordCompletion(result.Success)
	h.logger.InfoContext(ctx, "Order completion processed",
		"orderId", cmd.OrderID(),
		"success", result.Success,
		"notificationSent", sent,
		"loyaltyUpdated", awarded,
		"receiptStored", stored,
	)

	return result, nil
}

// sendNotification attempts the completion email and converts any transport
// failure to a false outcome.
func (h CompleteOrderCommandHandler) sendNotification(ctx context.Context, cmd CompleteOrderCommand) bool {
	err := h.sender.Send(ctx, ports.Notification{
		CustomerID:    cmd.CustomerID(),
		CustomerEmail: cmd.CustomerEmail(),
		CustomerName:  cmd.CustomerName(),
		OrderID:       cmd.OrderID(),
		OrderTotal:    cmd.OrderTotal(),
	})
	if err != nil {
		h.metrics.RecordStepFailure(metrics.StepNotification)
		h.logger.WarnContext(ctx, "Failed to send completion email",
			"orderId", cmd.OrderID(), "error", err)
		return false
	}
	return true
}

// awardPoints attempts the loyalty increment and converts any failure,
// including an unknown customer, to a false outcome.
func (h CompleteOrderCommandHandler) awardPoints(ctx context.Context, customerID string, points int) bool {
	if err := h.customers.AddLoyaltyPoints(ctx, customerID, points); err != nil {
		h.metrics.RecordStepFailure(metrics.StepLoyalty)
		h.logger.WarnContext(ctx, "Failed to award loyalty points",
			"customerId", customerID, "points", points, "error", err)
		return false
	}
	return true
}

// storeReceipt attempts the receipt insert and converts any failure, including
// a duplicate completion for the same order, to a false outcome.
func (h CompleteOrderCommandHandler) storeReceipt(ctx context.Context, rcpt *receipt.Receipt) bool {
	if err := h.receipts.Add(ctx, rcpt); err != nil {
		h.metrics.RecordStepFailure(metrics.StepReceipt)
		h.logger.WarnContext(ctx, "Failed to store receipt",
			"receiptId", rcpt.ID(), "orderId", rcpt.OrderID(), "error", err)
		return false
	}
	return true
}
