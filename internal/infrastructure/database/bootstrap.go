package database

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
)

// EnsureDefaults creates the reference rows the service relies on. It is
// idempotent and runs once at startup, after Migrate.
func EnsureDefaults(db *gorm.DB, logger *zap.Logger) error {
	var unlisted model.CompanyCategory
	err := db.Where("name_key = ?", model.NormalizeKey(model.UnlistedCategoryName)).First(&unlisted).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up default category: %w", err)
	}

	unlisted = model.CompanyCategory{Name: model.UnlistedCategoryName}
	if err := db.Create(&unlisted).Error; err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("failed to create default category: %w", err)
	}

	logger.Info("Created default company category", zap.String("name", model.UnlistedCategoryName))
	return nil
}
