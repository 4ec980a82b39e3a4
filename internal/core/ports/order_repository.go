package ports

import (
	"context"
	"time"
)

// OrderRepository defines the persistence contract used by the stale-order
// auto-close sweep. Orders themselves are owned by the upstream order service;
// this service only transitions long-delivered orders to their closed state.
type OrderRepository interface {
	// CloseDeliveredBefore closes up to limit orders that were delivered
	// before the cutoff and reports how many rows were affected.
	CloseDeliveredBefore(ctx context.Context, cutoff time.Time, limit int) (int64, error)

	// CountDeliveredBefore reports how many orders would be closed by a sweep
	// with the given cutoff. Used for dry runs.
	CountDeliveredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
