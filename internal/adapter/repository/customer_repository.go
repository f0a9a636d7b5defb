package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainErrors "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/errors"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
	domainRepo "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/repository"
)

// customerRepository implements the CustomerRepository interface
type customerRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewCustomerRepository creates a new customer repository instance
func NewCustomerRepository(db *gorm.DB, logger *zap.Logger) domainRepo.CustomerRepository {
	return &customerRepository{
		db:     db,
		logger: logger,
	}
}

func (r *customerRepository) GetByID(ctx context.Context, id uint) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).First(&customer, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrNotFound
		}
		r.logger.Error("Failed to get customer", zap.Uint("customer_id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

func (r *customerRepository) FindByIdentity(ctx context.Context, identity model.Identity) (*model.Customer, error) {
	customer, err := findByIdentity(r.db.WithContext(ctx), identity)
	if err != nil {
		r.logger.Error("Failed to resolve customer identity", zap.Error(err))
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}
	return customer, nil
}

// WithinTransaction runs fn inside a database transaction. Errors returned
// by fn roll the transaction back and are returned unchanged.
func (r *customerRepository) WithinTransaction(ctx context.Context, fn func(tx domainRepo.CustomerTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&customerTx{db: tx, logger: r.logger})
	})
}

// customerTx implements CustomerTx on an open transaction
type customerTx struct {
	db     *gorm.DB
	logger *zap.Logger
}

// FindByIdentityForUpdate locks the matched row with SELECT ... FOR UPDATE.
func (t *customerTx) FindByIdentityForUpdate(ctx context.Context, identity model.Identity) (*model.Customer, error) {
	customer, err := findByIdentity(t.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), identity)
	if err != nil {
		return nil, fmt.Errorf("failed to lock customer: %w", err)
	}
	return customer, nil
}

func (t *customerTx) Create(ctx context.Context, customer *model.Customer) error {
	if err := t.db.WithContext(ctx).Omit(clause.Associations).Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", translateError(err))
	}
	return nil
}

func (t *customerTx) Save(ctx context.Context, customer *model.Customer) error {
	if err := t.db.WithContext(ctx).Omit(clause.Associations).Save(customer).Error; err != nil {
		return fmt.Errorf("failed to save customer: %w", translateError(err))
	}
	return nil
}

func (t *customerTx) RecordCheck(ctx context.Context, check *model.EligibilityCheck) error {
	if err := t.db.WithContext(ctx).Omit(clause.Associations).Create(check).Error; err != nil {
		t.logger.Error("Failed to record eligibility check",
			zap.Uint("customer_id", check.CustomerID),
			zap.Error(err))
		return fmt.Errorf("failed to record eligibility check: %w", err)
	}
	return nil
}

// findByIdentity tries email, then phone, then tax id and returns the first
// hit, or nil when none match.
func findByIdentity(db *gorm.DB, identity model.Identity) (*model.Customer, error) {
	lookups := []struct {
		column string
		value  string
	}{
		{"email", identity.Email},
		{"phone", identity.Phone},
		{"tax_id", identity.TaxID},
	}

	db = db.Session(&gorm.Session{})
	for _, l := range lookups {
		if l.value == "" {
			continue
		}
		var customer model.Customer
		err := db.Where(l.column+" = ?", l.value).First(&customer).Error
		if err == nil {
			return &customer, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return nil, nil
}

// eligibilityCheckRepository implements the EligibilityCheckRepository interface
type eligibilityCheckRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewEligibilityCheckRepository creates a new eligibility check repository instance
func NewEligibilityCheckRepository(db *gorm.DB, logger *zap.Logger) domainRepo.EligibilityCheckRepository {
	return &eligibilityCheckRepository{
		db:     db,
		logger: logger,
	}
}

func (r *eligibilityCheckRepository) LatestPerCustomer(ctx context.Context) ([]model.EligibilityCheck, error) {
	db := r.db.WithContext(ctx)
	latest := db.Model(&model.EligibilityCheck{}).Select("MAX(id)").Group("customer_id")

	var checks []model.EligibilityCheck
	err := db.Preload("Customer").
		Where("id IN (?)", latest).
		Order("created_at DESC, id DESC").
		Find(&checks).Error
	if err != nil {
		r.logger.Error("Failed to list latest eligibility checks", zap.Error(err))
		return nil, fmt.Errorf("failed to list eligibility checks: %w", err)
	}
	return checks, nil
}
