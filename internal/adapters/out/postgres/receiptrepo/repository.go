package receiptrepo

import (
	"context"
	"errors"

	"completion/internal/core/domain/model/receipt"
	"completion/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// GormReceiptRepository implements ReceiptRepository using GORM.
// Connection scoping is owned by GORM's pooled *sql.DB: each operation
// borrows a connection for its duration and releases it on every exit path.
type GormReceiptRepository struct {
	db *gorm.DB
}

// NewGormReceiptRepository creates a new GORM receipt repository.
func NewGormReceiptRepository(db *gorm.DB) *GormReceiptRepository {
	return &GormReceiptRepository{db: db}
}

// Add inserts a new receipt row. A second receipt for the same order trips
// the unique index on order_id and is reported as an ObjectAlreadyExistsError.
func (r *GormReceiptRepository) Add(ctx context.Context, aggregate *receipt.Receipt) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsErrorWithCause("order", aggregate.OrderID(), err)
		}
		return err
	}

	return nil
}

// GetByID retrieves a receipt by its identifier.
func (r *GormReceiptRepository) GetByID(ctx context.Context, receiptID string) (*receipt.Receipt, error) {
	var dto ReceiptDTO
	if err := r.db.WithContext(ctx).First(&dto, "receipt_id = ?", receiptID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("receipt", receiptID)
		}
		return nil, err
	}

	return toDomain(dto)
}

// isUniqueViolation reports whether err is a postgres unique-constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
