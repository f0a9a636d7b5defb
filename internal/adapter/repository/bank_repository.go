package repository

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gorm.io/gorm"

	domainErrors "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/errors"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
	domainRepo "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/repository"
)

// bankRepository implements the BankRepository interface
type bankRepository struct {
	crudRepository[model.Bank]
}

// NewBankRepository creates a new bank repository instance
func NewBankRepository(db *gorm.DB, logger *zap.Logger) domainRepo.BankRepository {
	return &bankRepository{
		crudRepository: newCRUDRepository[model.Bank](db, logger, "bank"),
	}
}

// Delete removes the bank together with its products, salary criteria,
// loan rules and customer interests.
func (r *bankRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		productIDs := tx.Model(&model.Product{}).Select("id").Where("bank_id = ?", id)
		if err := tx.Where("product_id IN (?)", productIDs).Delete(&model.SalaryCriteria{}).Error; err != nil {
			return fmt.Errorf("failed to delete salary criteria: %w", err)
		}
		if err := tx.Where("bank_id = ?", id).Delete(&model.CustomerInterest{}).Error; err != nil {
			return fmt.Errorf("failed to delete interests: %w", err)
		}
		if err := tx.Where("bank_id = ?", id).Delete(&model.Product{}).Error; err != nil {
			return fmt.Errorf("failed to delete products: %w", err)
		}
		if err := tx.Where("bank_id = ?", id).Delete(&model.LoanRule{}).Error; err != nil {
			return fmt.Errorf("failed to delete loan rules: %w", err)
		}

		result := tx.Delete(&model.Bank{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete bank: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
	if err != nil && !isClientError(err) {
		r.logger.Error("Failed to delete bank", zap.Uint("bank_id", id), zap.Error(err))
	}
	return err
}

// ListByPincodes narrows candidates with LIKE and confirms membership on
// the parsed pincode list.
func (r *bankRepository) ListByPincodes(ctx context.Context, codes []string) ([]model.Bank, error) {
	if len(codes) == 0 {
		return []model.Bank{}, nil
	}

	db := r.db.WithContext(ctx)
	cond := db.Where("pincodes LIKE ?", "%"+codes[0]+"%")
	for _, code := range codes[1:] {
		cond = cond.Or("pincodes LIKE ?", "%"+code+"%")
	}

	var banks []model.Bank
	if err := db.Where(cond).Order("id").Find(&banks).Error; err != nil {
		r.logger.Error("Failed to list banks by pincode", zap.Strings("pincodes", codes), zap.Error(err))
		return nil, fmt.Errorf("failed to list banks by pincode: %w", err)
	}

	return lo.Filter(banks, func(bank model.Bank, _ int) bool {
		return lo.SomeBy(codes, func(code string) bool {
			return bank.HasPincode(code)
		})
	}), nil
}

func (r *bankRepository) ListForMatching(ctx context.Context) ([]model.Bank, error) {
	byID := func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	}

	var banks []model.Bank
	err := r.db.WithContext(ctx).
		Preload("Products", byID).
		Preload("Products.SalaryCriteria", byID).
		Preload("LoanRules", byID).
		Order("id").
		Find(&banks).Error
	if err != nil {
		r.logger.Error("Failed to load reference snapshot", zap.Error(err))
		return nil, fmt.Errorf("failed to load reference snapshot: %w", err)
	}

	return banks, nil
}
