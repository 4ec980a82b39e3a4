// Package customerrepo implements the loyalty-ledger side of customer
// persistence. The customer record is owned by the data store; this adapter
// only issues a single additive update against the stored point balance.
package customerrepo

import (
	"context"

	"completion/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// AddLoyaltyPoints applies a single additive increment to the customer's
// stored point balance. The update affecting no rows means the customer does
// not exist and is reported as an ObjectNotFoundError.
func (r *GormCustomerRepository) AddLoyaltyPoints(ctx context.Context, customerID string, points int) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}

	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("customer_id = ?", customerID).
		UpdateColumn("loyalty_points", gorm.Expr("loyalty_points + ?", points))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", customerID)
	}

	return nil
}

// CustomerDTO represents the customer row this service touches.
// Only the loyalty balance is mutated here; everything else belongs to the
// upstream user service.
type CustomerDTO struct {
	CustomerID    string `gorm:"primaryKey"`
	LoyaltyPoints int
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}
