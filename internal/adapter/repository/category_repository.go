package repository

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	domainErrors "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/errors"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
	domainRepo "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/repository"
)

// companyCategoryRepository implements the CompanyCategoryRepository interface
type companyCategoryRepository struct {
	crudRepository[model.CompanyCategory]
}

// NewCompanyCategoryRepository creates a new company category repository instance
func NewCompanyCategoryRepository(db *gorm.DB, logger *zap.Logger) domainRepo.CompanyCategoryRepository {
	return &companyCategoryRepository{
		crudRepository: newCRUDRepository[model.CompanyCategory](db, logger, "company category"),
	}
}

// EnsureByName looks the category up by its normalised name and creates it
// when missing. A concurrent insert of the same name is resolved by
// re-reading the winner's row.
func (r *companyCategoryRepository) EnsureByName(ctx context.Context, name string) (*model.CompanyCategory, error) {
	find := func() (*model.CompanyCategory, error) {
		var category model.CompanyCategory
		err := r.db.WithContext(ctx).Where("name_key = ?", model.NormalizeKey(name)).First(&category).Error
		if err != nil {
			return nil, err
		}
		return &category, nil
	}

	category, err := find()
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get company category: %w", err)
	}

	category = &model.CompanyCategory{Name: name}
	if err := r.Create(ctx, category); err != nil {
		if errors.Is(err, domainErrors.ErrDuplicate) {
			return find()
		}
		return nil, err
	}

	r.logger.Info("Created company category", zap.String("name", name), zap.Uint("category_id", category.ID))
	return category, nil
}

// Delete removes the category with its companies and salary criteria.
func (r *companyCategoryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&model.SalaryCriteria{}).Error; err != nil {
			return fmt.Errorf("failed to delete salary criteria: %w", err)
		}
		if err := tx.Where("category_id = ?", id).Delete(&model.Company{}).Error; err != nil {
			return fmt.Errorf("failed to delete companies: %w", err)
		}

		result := tx.Delete(&model.CompanyCategory{}, id)
		if result.Error != nil {
			r.logger.Error("Failed to delete company category", zap.Uint("category_id", id), zap.Error(result.Error))
			return fmt.Errorf("failed to delete company category: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domainErrors.ErrNotFound
		}
		return nil
	})
}

// companyRepository implements the CompanyRepository interface
type companyRepository struct {
	crudRepository[model.Company]
}

// NewCompanyRepository creates a new company repository instance
func NewCompanyRepository(db *gorm.DB, logger *zap.Logger) domainRepo.CompanyRepository {
	return &companyRepository{
		crudRepository: newCRUDRepository[model.Company](db, logger, "company", "Category"),
	}
}

func (r *companyRepository) FindByName(ctx context.Context, name string) (*model.Company, error) {
	var company model.Company
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("name_key = ?", model.NormalizeKey(name)).
		First(&company).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error("Failed to find company", zap.String("name", name), zap.Error(err))
		return nil, fmt.Errorf("failed to find company: %w", err)
	}
	return &company, nil
}

// salaryCriteriaRepository implements the SalaryCriteriaRepository interface
type salaryCriteriaRepository struct {
	crudRepository[model.SalaryCriteria]
}

// NewSalaryCriteriaRepository creates a new salary criteria repository instance
func NewSalaryCriteriaRepository(db *gorm.DB, logger *zap.Logger) domainRepo.SalaryCriteriaRepository {
	return &salaryCriteriaRepository{
		crudRepository: newCRUDRepository[model.SalaryCriteria](db, logger, "salary criteria", "Category"),
	}
}

func (r *salaryCriteriaRepository) ListByProduct(ctx context.Context, productID uint) ([]model.SalaryCriteria, error) {
	var criteria []model.SalaryCriteria
	err := r.withPreloads(r.db.WithContext(ctx)).
		Where("product_id = ?", productID).
		Order("id").
		Find(&criteria).Error
	if err != nil {
		r.logger.Error("Failed to list salary criteria", zap.Uint("product_id", productID), zap.Error(err))
		return nil, fmt.Errorf("failed to list salary criteria: %w", err)
	}
	return criteria, nil
}
