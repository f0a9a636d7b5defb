package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
	domainRepo "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/repository"
)

// interestRepository implements the InterestRepository interface
type interestRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewInterestRepository creates a new customer interest repository instance
func NewInterestRepository(db *gorm.DB, logger *zap.Logger) domainRepo.InterestRepository {
	return &interestRepository{
		db:     db,
		logger: logger,
	}
}

func (r *interestRepository) Create(ctx context.Context, interest *model.CustomerInterest) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(interest).Error; err != nil {
		err = translateError(err)
		if !isClientError(err) {
			r.logger.Error("Failed to record interest",
				zap.Uint("customer_id", interest.CustomerID),
				zap.Uint("bank_id", interest.BankID),
				zap.Error(err))
		}
		return fmt.Errorf("failed to record interest: %w", err)
	}
	return nil
}

func (r *interestRepository) List(ctx context.Context, customerID *uint) ([]model.CustomerInterest, error) {
	query := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Bank").
		Preload("Product").
		Order("created_at DESC, id DESC")

	if customerID != nil {
		query = query.Where("customer_id = ?", *customerID)
	}

	var interests []model.CustomerInterest
	if err := query.Find(&interests).Error; err != nil {
		r.logger.Error("Failed to list interests", zap.Error(err))
		return nil, fmt.Errorf("failed to list interests: %w", err)
	}
	return interests, nil
}
