// Package orderrepo implements the order persistence used by the stale-order
// auto-close sweep. Orders are owned by the upstream order service; this
// adapter only transitions long-delivered orders to their closed state.
package orderrepo

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Order status values as written by the upstream order service.
const (
	StatusDelivered = "delivered"
	StatusClosed    = "closed"
)

// OrderDTO represents the slice of the orders table this service touches.
type OrderDTO struct {
	OrderID   string `gorm:"primaryKey"`
	Status    string `gorm:"index"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// CloseDeliveredBefore closes up to limit delivered orders older than the
// cutoff. The batch is selected by a subquery so the limit applies to the
// UPDATE, which postgres does not support directly.
func (r *GormOrderRepository) CloseDeliveredBefore(ctx context.Context, cutoff time.Time, limit int) (int64, error) {
	batch := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("order_id").
		Where("status = ? AND updated_at < ?", StatusDelivered, cutoff).
		Limit(limit)

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("order_id IN (?)", batch).
		Update("status", StatusClosed)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// CountDeliveredBefore reports how many orders a sweep with the given cutoff
// would close.
func (r *GormOrderRepository) CountDeliveredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status = ? AND updated_at < ?", StatusDelivered, cutoff).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}
