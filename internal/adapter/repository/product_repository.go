package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domainErrors "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/errors"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
	domainRepo "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/repository"
)

// productRepository implements the ProductRepository interface
type productRepository struct {
	crudRepository[model.Product]
}

// NewProductRepository creates a new product repository instance
func NewProductRepository(db *gorm.DB, logger *zap.Logger) domainRepo.ProductRepository {
	return &productRepository{
		crudRepository: newCRUDRepository[model.Product](db, logger, "product", "SalaryCriteria"),
	}
}

// Delete removes the product and its salary criteria. Interests that
// referenced the product keep their bank.
func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&model.SalaryCriteria{}).Error; err != nil {
			return fmt.Errorf("failed to delete salary criteria: %w", err)
		}
		if err := tx.Model(&model.CustomerInterest{}).Where("product_id = ?", id).Update("product_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach interests: %w", err)
		}

		result := tx.Delete(&model.Product{}, id)
		if result.Error != nil {
			r.logger.Error("Failed to delete product", zap.Uint("product_id", id), zap.Error(result.Error))
			return fmt.Errorf("failed to delete product: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
}

func (r *productRepository) ListByBank(ctx context.Context, bankID uint) ([]model.Product, error) {
	var products []model.Product
	err := r.withPreloads(r.db.WithContext(ctx)).
		Where("bank_id = ?", bankID).
		Order("id").
		Find(&products).Error
	if err != nil {
		r.logger.Error("Failed to list products by bank", zap.Uint("bank_id", bankID), zap.Error(err))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
