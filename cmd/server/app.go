package main

import (
	"context"
	"fmt"

	"github.com/raulk/clock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	handlers "github.com/wekeepgrowing/loan-eligibility-service/internal/adapter/handler/http"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/adapter/repository"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/config"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/provider"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/eligibility"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/infrastructure/storage"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/middleware/auth"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/usecase"
	"github.com/wekeepgrowing/loan-eligibility-service/pkg/cache"
)

type app struct {
	handlers *handlers.Handlers
	closers  []func() error
	logger   *zap.Logger
}

// newApp wires repositories, optional redis and S3 backends, services and
// handlers.
func newApp(ctx context.Context, cfg *config.Config, db *gorm.DB, logger *zap.Logger) (*app, error) {
	a := &app{logger: logger}
	clk := clock.New()

	location, err := cfg.Service.Location()
	if err != nil {
		return nil, err
	}

	var snapshots provider.SnapshotCache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, redisCache.Close)
		snapshots = redisCache
		logger.Info("Reference snapshot cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	var blobs provider.BlobStore
	if cfg.Storage.Enabled {
		client, err := storage.NewS3Client(ctx, cfg.Storage)
		if err != nil {
			return nil, err
		}
		blobs = storage.NewS3BlobStore(client, cfg.Storage, logger)
		logger.Info("Image uploads enabled", zap.String("bucket", cfg.Storage.Bucket))
	}

	strategy, err := eligibility.NewStrategy(cfg.Eligibility.Strategy, eligibility.Options{
		LoanMultiplier: decimal.NewFromFloat(cfg.Eligibility.LoanMultiplier),
	})
	if err != nil {
		return nil, fmt.Errorf("invalid eligibility.strategy: %w", err)
	}

	repos := usecase.ReferenceRepositories{
		Banks:          repository.NewBankRepository(db, logger),
		Products:       repository.NewProductRepository(db, logger),
		Categories:     repository.NewCompanyCategoryRepository(db, logger),
		Companies:      repository.NewCompanyRepository(db, logger),
		SalaryCriteria: repository.NewSalaryCriteriaRepository(db, logger),
		LoanRules:      repository.NewLoanRuleRepository(db, logger),
	}
	customerRepo := repository.NewCustomerRepository(db, logger)

	referenceService := usecase.NewReferenceService(repos, snapshots, cfg.Redis.SnapshotTTL, blobs, clk, logger)
	customerService := usecase.NewCustomerService(
		customerRepo,
		referenceService,
		eligibility.NewCategoryResolver(repos.Companies, repos.Categories),
		strategy,
		usecase.CustomerServiceConfig{
			Throttle:   eligibility.Throttle{WindowDays: cfg.Eligibility.ThrottleDays},
			MaxReasons: cfg.Eligibility.MaxReasons,
			RequireDOB: cfg.Eligibility.RequireDOB,
			Location:   location,
		},
		clk,
		logger,
	)
	interestService := usecase.NewInterestService(repository.NewInterestRepository(db, logger), customerRepo, repos.Banks, repos.Products, logger)
	cardService := usecase.NewCardService(repository.NewCardRepository(db, logger), blobs, logger)
	adminService := usecase.NewAdminService(
		repository.NewAdminRepository(db, logger),
		auth.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.TTL, clk),
		cfg.Admin.MaxAdmins,
		logger,
	)
	reportService := usecase.NewReportService(repository.NewEligibilityCheckRepository(db, logger))

	if err := adminService.Bootstrap(ctx, cfg.Admin.BootstrapEmail, cfg.Admin.BootstrapPassword); err != nil {
		return nil, err
	}

	logger.Info("Eligibility engine configured",
		zap.String("strategy", strategy.Name()),
		zap.Int("throttle_days", cfg.Eligibility.ThrottleDays),
		zap.String("timezone", location.String()))

	a.handlers = &handlers.Handlers{
		Customers: handlers.NewCustomerHandler(logger, customerService),
		Reference: handlers.NewReferenceHandler(logger, referenceService),
		Interests: handlers.NewInterestHandler(logger, interestService),
		Cards:     handlers.NewCardHandler(logger, cardService),
		Admins:    handlers.NewAdminHandler(logger, adminService),
		Reports:   handlers.NewReportHandler(reportService),
	}
	return a, nil
}

func (a *app) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			a.logger.Error("Failed to close resource", zap.Error(err))
		}
	}
}
