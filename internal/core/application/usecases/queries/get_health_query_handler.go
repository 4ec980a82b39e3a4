package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetHealthQueryHandler performs a lightweight liveness probe against the
// pooled database connection: acquire one connection, ping, release. A probe
// failure yields DatabaseReachable=false and never propagates as an error.
type GetHealthQueryHandler struct {
	db *gorm.DB
}

// NewGetHealthQueryHandler creates a handler for health probes.
// Requires a GORM database connection whose pool will be probed.
func NewGetHealthQueryHandler(db *gorm.DB) GetHealthQueryHandler {
	return GetHealthQueryHandler{db: db}
}

// Handle executes the probe. The connection is released on every exit path.
func (h GetHealthQueryHandler) Handle(
	ctx context.Context,
	query GetHealthQuery,
) (GetHealthQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetHealthQueryResponse{}, err
	}

	if h.db == nil {
		return GetHealthQueryResponse{DatabaseReachable: false}, nil
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return GetHealthQueryResponse{DatabaseReachable: false}, nil
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return GetHealthQueryResponse{DatabaseReachable: false}, nil
	}
	defer func() {
		_ = conn.Close()
	}()

	if err := conn.PingContext(ctx); err != nil {
		return GetHealthQueryResponse{DatabaseReachable: false}, nil
	}

	return GetHealthQueryResponse{DatabaseReachable: true}, nil
}
