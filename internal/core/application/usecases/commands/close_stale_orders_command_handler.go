package commands

import (
	"context"
	"log/slog"
	"time"

	"completion/internal/core/ports"
	"completion/internal/metrics"
)

// CloseStaleOrdersResult reports the outcome of one auto-close sweep.
type CloseStaleOrdersResult struct {
	// Eligible is the number of delivered orders older than the cutoff.
	Eligible int64

	// Closed is the number of orders actually closed. Zero on a dry run.
	Closed int64

	// DryRun echoes whether the sweep mutated anything.
	DryRun bool
}

// CloseStaleOrdersCommandHandler closes delivered orders that were never
// explicitly closed by the customer, in batches, on a schedule.
type CloseStaleOrdersCommandHandler struct {
	orders  ports.OrderRepository
	metrics *metrics.Registry
	logger  *slog.Logger
}

// NewCloseStaleOrdersCommandHandler creates a handler for auto-close sweeps.
func NewCloseStaleOrdersCommandHandler(
	orders ports.OrderRepository,
	registry *metrics.Registry,
	logger *slog.Logger,
) CloseStaleOrdersCommandHandler {
	return CloseStaleOrdersCommandHandler{
		orders:  orders,
		metrics: registry,
		logger:  logger.With("component", "close_stale_orders_handler"),
	}
}

// Handle runs one sweep. The cutoff is now minus the command's hour threshold.
// On a dry run only the eligible count is reported; otherwise up to the batch
// size of orders is closed.
func (h CloseStaleOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd CloseStaleOrdersCommand,
) (CloseStaleOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return CloseStaleOrdersResult{}, err
	}

	cutoff := time.Now().UTC().Add(-time.Duration(cmd.Hours()) * time.Hour)

	eligible, err := h.orders.CountDeliveredBefore(ctx, cutoff)
	if err != nil {
		return CloseStaleOrdersResult{}, err
	}

	result := CloseStaleOrdersResult{Eligible: eligible, DryRun: cmd.DryRun()}
	if cmd.DryRun() {
		h.logger.InfoContext(ctx, "Auto-close dry run", "eligible", eligible, "cutoff", cutoff)
		return result, nil
	}

	closed, err := h.orders.CloseDeliveredBefore(ctx, cutoff, cmd.BatchSize())
	if err != nil {
		return CloseStaleOrdersResult{}, err
	}

	result.Closed = closed
	h.metrics.RecordStaleOrdersClosed(closed)
	h.logger.InfoContext(ctx, "Auto-close sweep finished",
		"eligible", eligible, "closed", closed, "cutoff", cutoff)
	return result, nil
}
