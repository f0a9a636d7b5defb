package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/raulk/clock"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/adapter/repository"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/config"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/infrastructure/database"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/usecase"
	"github.com/wekeepgrowing/loan-eligibility-service/pkg/logger"
)

func main() {
	var seedPath string
	flag.StringVar(&seedPath, "f", "configs/seed.yaml", "Path to seed file (short)")
	flag.StringVar(&seedPath, "file", "configs/seed.yaml", "Path to seed file (long)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.DefaultZapLogger().Fatal("Failed to load config", zap.Error(err))
	}

	zapLogger, err := logger.NewZapLogger(logger.Config{
		Level:  cfg.Log.Level,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		logger.DefaultZapLogger().Fatal("Failed to initialize logger", zap.Error(err))
	}
	defer zapLogger.Sync()

	file, err := loadSeedFile(seedPath)
	if err != nil {
		zapLogger.Fatal("Failed to read seed file", zap.String("path", seedPath), zap.Error(err))
	}

	db, err := database.NewConnection(&cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db, zapLogger)

	if err := database.Migrate(db, zapLogger); err != nil {
		zapLogger.Fatal("Failed to run database migrations", zap.Error(err))
	}
	if err := database.EnsureDefaults(db, zapLogger); err != nil {
		zapLogger.Fatal("Failed to create default records", zap.Error(err))
	}

	s := &seeder{
		reference: newReferenceService(db, zapLogger),
		logger:    zapLogger,
	}
	stats, err := s.Run(context.Background(), file)
	if err != nil {
		zapLogger.Fatal("Seeding failed", zap.Error(err))
	}

	zapLogger.Info("Seeding completed",
		zap.Int("categories", stats.Categories),
		zap.Int("companies", stats.Companies),
		zap.Int("banks", stats.Banks),
		zap.Int("products", stats.Products),
		zap.Int("salary_criteria", stats.SalaryCriteria),
		zap.Int("loan_rules", stats.LoanRules))
}

func loadSeedFile(path string) (*seedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &file, nil
}

func newReferenceService(db *gorm.DB, logger *zap.Logger) *usecase.ReferenceService {
	repos := usecase.ReferenceRepositories{
		Banks:          repository.NewBankRepository(db, logger),
		Products:       repository.NewProductRepository(db, logger),
		Categories:     repository.NewCompanyCategoryRepository(db, logger),
		Companies:      repository.NewCompanyRepository(db, logger),
		SalaryCriteria: repository.NewSalaryCriteriaRepository(db, logger),
		LoanRules:      repository.NewLoanRuleRepository(db, logger),
	}
	return usecase.NewReferenceService(repos, nil, 0, nil, clock.New(), logger)
}
