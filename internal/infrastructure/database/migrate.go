package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
)

// Migrate runs database migrations
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("Running GORM auto-migrations...")
	err := db.AutoMigrate(
		&model.CompanyCategory{},
		&model.Company{},
		&model.Bank{},
		&model.Product{},
		&model.SalaryCriteria{},
		&model.LoanRule{},
		&model.Customer{},
		&model.CustomerInterest{},
		&model.EligibilityCheck{},
		&model.Admin{},
		&model.ManagedCard{},
	)
	if err != nil {
		logger.Error("Failed to run migrations", zap.Error(err))
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if db.Dialector.Name() == "postgres" {
		logger.Info("Creating custom indexes...")
		if err := createCustomIndexes(db); err != nil {
			logger.Error("Failed to create custom indexes", zap.Error(err))
			return err
		}
	}

	logger.Info("Database migrations completed successfully")
	return nil
}

// createCustomIndexes creates indexes GORM doesn't handle automatically
func createCustomIndexes(db *gorm.DB) error {
	// Pincode lookups use LIKE '%code%'
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`).Error; err != nil {
		return fmt.Errorf("failed to create pg_trgm extension: %w", err)
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_banks_pincodes_trgm ON banks USING gin (pincodes gin_trgm_ops)`).Error; err != nil {
		return fmt.Errorf("failed to create pincode index: %w", err)
	}
	return nil
}
