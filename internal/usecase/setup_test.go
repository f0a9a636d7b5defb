package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/raulk/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/adapter/repository"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/eligibility"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/infrastructure/database"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/usecase"
)

type fixture struct {
	db        *gorm.DB
	clock     *clock.Mock
	repos     usecase.ReferenceRepositories
	reference *usecase.ReferenceService
	customers *usecase.CustomerService
	reports   *usecase.ReportService
	interests *usecase.InterestService
	bank      *model.Bank
	product   *model.Product
}

func intPtr(v int) *int {
	return &v
}

// newFixture wires the services against an in-memory database holding one
// bank serving 560001 with one product open to UNLISTED employers earning
// at least 30000 between 21 and 60.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := zap.NewNop()
	ctx := context.Background()

	db, err := database.NewInMemory(logger)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Close(db, logger)
	})

	clk := clock.NewMock()
	clk.Set(time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC))

	repos := usecase.ReferenceRepositories{
		Banks:          repository.NewBankRepository(db, logger),
		Products:       repository.NewProductRepository(db, logger),
		Categories:     repository.NewCompanyCategoryRepository(db, logger),
		Companies:      repository.NewCompanyRepository(db, logger),
		SalaryCriteria: repository.NewSalaryCriteriaRepository(db, logger),
		LoanRules:      repository.NewLoanRuleRepository(db, logger),
	}
	reference := usecase.NewReferenceService(repos, nil, 0, nil, clk, logger)

	bank := &model.Bank{Name: "State Bank", State: "Karnataka"}
	bank.SetPincodes([]string{"560001", "560002"})
	require.NoError(t, repos.Banks.Create(ctx, bank))

	product := &model.Product{BankID: bank.ID, Title: "Personal Loan", MinAge: intPtr(21), MaxAge: intPtr(60)}
	require.NoError(t, repos.Products.Create(ctx, product))

	unlisted, err := repos.Categories.EnsureByName(ctx, model.UnlistedCategoryName)
	require.NoError(t, err)
	require.NoError(t, repos.SalaryCriteria.Create(ctx, &model.SalaryCriteria{
		ProductID:  product.ID,
		CategoryID: unlisted.ID,
		MinSalary:  decimal.NewFromInt(30000),
	}))

	customerRepo := repository.NewCustomerRepository(db, logger)
	strategy, err := eligibility.NewStrategy(eligibility.StrategyProduct, eligibility.Options{})
	require.NoError(t, err)

	customers := usecase.NewCustomerService(
		customerRepo,
		reference,
		eligibility.NewCategoryResolver(repos.Companies, repos.Categories),
		strategy,
		usecase.CustomerServiceConfig{
			Throttle:   eligibility.Throttle{WindowDays: 1},
			MaxReasons: 5,
		},
		clk,
		logger,
	)

	return &fixture{
		db:        db,
		clock:     clk,
		repos:     repos,
		reference: reference,
		customers: customers,
		reports:   usecase.NewReportService(repository.NewEligibilityCheckRepository(db, logger)),
		interests: usecase.NewInterestService(
			repository.NewInterestRepository(db, logger),
			customerRepo,
			repos.Banks,
			repos.Products,
			logger,
		),
		bank:    bank,
		product: product,
	}
}

func newMockClock() *clock.Mock {
	clk := clock.NewMock()
	clk.Set(time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC))
	return clk
}
