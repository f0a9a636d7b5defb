package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/raulk/clock"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
	domainErrors "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/errors"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/repository"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/eligibility"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/infrastructure/metrics"
	apperrors "github.com/wekeepgrowing/loan-eligibility-service/pkg/errors"
)

// Intake outcomes reported in the response status.
const (
	StatusCreated = "created"
	StatusUpdated = "updated"
)

// SnapshotSource provides the reference data for an evaluation
type SnapshotSource interface {
	Snapshot(ctx context.Context) (*eligibility.Snapshot, error)
}

// CategoryResolver maps an employer to its company category
type CategoryResolver interface {
	Resolve(ctx context.Context, employerName string) (*model.CompanyCategory, error)
}

// CustomerServiceConfig holds the eligibility settings of CustomerService
type CustomerServiceConfig struct {
	Throttle   eligibility.Throttle
	MaxReasons int
	RequireDOB bool
	// Location decides the calendar day used for ages and throttling.
	Location *time.Location
}

// CustomerService registers customers and runs eligibility checks
type CustomerService struct {
	customers  repository.CustomerRepository
	snapshots  SnapshotSource
	categories CategoryResolver
	strategy   eligibility.Strategy
	cfg        CustomerServiceConfig
	clock      clock.Clock
	logger     *zap.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customers repository.CustomerRepository,
	snapshots SnapshotSource,
	categories CategoryResolver,
	strategy eligibility.Strategy,
	cfg CustomerServiceConfig,
	clk clock.Clock,
	logger *zap.Logger,
) *CustomerService {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &CustomerService{
		customers:  customers,
		snapshots:  snapshots,
		categories: categories,
		strategy:   strategy,
		cfg:        cfg,
		clock:      clk,
		logger:     logger,
	}
}

// CreateOrCheckEligibility resolves or creates the customer identified by
// req, applies the throttle, evaluates eligibility and records the result.
//
// The customer row stays locked from the throttle decision until the check
// is recorded, so concurrent submissions for one identity are serialised and
// all but the first are throttled. A throttled submission changes nothing.
func (s *CustomerService) CreateOrCheckEligibility(ctx context.Context, req *dto.CustomerIntakeRequest) (*dto.EligibilityResponse, error) {
	today := eligibility.Today(s.clock.Now(), s.cfg.Location)

	if err := s.validate(req, today); err != nil {
		metrics.ObserveEligibility(metrics.OutcomeInvalid, 0)
		return nil, err
	}

	category, err := s.categories.Resolve(ctx, req.EmployerName)
	if err != nil {
		metrics.ObserveEligibility(metrics.OutcomeError, 0)
		return nil, fmt.Errorf("failed to resolve company category: %w", err)
	}

	snapshot, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		metrics.ObserveEligibility(metrics.OutcomeError, 0)
		return nil, err
	}

	var resp *dto.EligibilityResponse
	err = s.customers.WithinTransaction(ctx, func(tx repository.CustomerTx) error {
		customer, err := tx.FindByIdentityForUpdate(ctx, req.Identity())
		if err != nil {
			return err
		}

		status := StatusCreated
		if customer != nil {
			decision := s.cfg.Throttle.Decide(customer.LastEligibilityCheckDate, today)
			if !decision.Allowed {
				return domainErrors.NewThrottleError(decision.LastCheckedOn, decision.NextEligibleOn)
			}
			status = StatusUpdated
		} else {
			customer = &model.Customer{}
		}

		req.ApplyTo(customer)
		if status == StatusCreated {
			if err := tx.Create(ctx, customer); err != nil {
				return err
			}
		}

		var age *int
		if customer.DateOfBirth != nil {
			years := eligibility.Age(*customer.DateOfBirth, today)
			age = &years
		}

		report, err := s.strategy.Evaluate(eligibility.Profile{
			EmploymentCategory: customer.EmploymentCategory,
			MonthlySalary:      customer.MonthlySalary,
			Pincode:            customer.Pincode,
			Age:                age,
			Category:           *category,
		}, snapshot)
		if err != nil {
			return fmt.Errorf("failed to evaluate eligibility: %w", err)
		}

		customer.LastEligibilityCheckDate = &today
		if err := tx.Save(ctx, customer); err != nil {
			return err
		}

		check, err := newEligibilityCheck(customer.ID, today, age, category.Name, report)
		if err != nil {
			return err
		}
		if err := tx.RecordCheck(ctx, check); err != nil {
			return err
		}

		resp = &dto.EligibilityResponse{
			Status:               status,
			Message:              fmt.Sprintf("Customer %s successfully", status),
			Reference:            check.Reference,
			Strategy:             report.Strategy,
			Customer:             dto.NewCustomerSummary(customer, age),
			CompanyCategory:      category.Name,
			CheckedOn:            today.Format(time.DateOnly),
			EligibleProducts:     report.Offers,
			IneligibilityReasons: report.TopReasons(s.cfg.MaxReasons),
		}
		return nil
	})

	if err != nil {
		var throttled *domainErrors.ThrottleError
		switch {
		case errors.As(err, &throttled):
			metrics.ObserveEligibility(metrics.OutcomeRestricted, 0)
			s.logger.Info("Eligibility check throttled",
				zap.String("last_checked_on", throttled.LastCheckedOn.Format(time.DateOnly)))
			return nil, err
		case errors.Is(err, domainErrors.ErrDuplicate):
			metrics.ObserveEligibility(metrics.OutcomeInvalid, 0)
			return nil, apperrors.NewFieldError("email", "email, phone or tax id already belongs to another customer")
		}
		metrics.ObserveEligibility(metrics.OutcomeError, 0)
		s.logger.Error("Eligibility check failed", zap.Error(err))
		return nil, fmt.Errorf("failed to check eligibility: %w", err)
	}

	outcome := metrics.OutcomeIneligible
	if len(resp.EligibleProducts) > 0 {
		outcome = metrics.OutcomeEligible
	}
	metrics.ObserveEligibility(outcome, len(resp.EligibleProducts))

	s.logger.Info("Eligibility checked",
		zap.Uint("customer_id", resp.Customer.ID),
		zap.String("status", resp.Status),
		zap.String("reference", resp.Reference),
		zap.String("strategy", resp.Strategy),
		zap.Int("eligible", len(resp.EligibleProducts)))
	return resp, nil
}

func (s *CustomerService) validate(req *dto.CustomerIntakeRequest, today time.Time) error {
	errs := fieldErrors{}
	if req.Identity().IsEmpty() {
		errs.add("email", "email, phone or tax_id is required")
	}
	if !model.IsValidPincode(req.Pincode) {
		errs.add("pincode", "pincode must be exactly 6 digits")
	}
	if req.MonthlySalary.IsNegative() {
		errs.add("monthly_salary", "monthly salary must not be negative")
	}
	switch dob := req.DateOfBirth.Ptr(); {
	case dob == nil && s.cfg.RequireDOB:
		errs.add("date_of_birth", "date of birth is required")
	case dob != nil && dob.After(today):
		errs.add("date_of_birth", "date of birth cannot be in the future")
	}
	return errs.err()
}

func newEligibilityCheck(customerID uint, today time.Time, age *int, category string, report *eligibility.Report) (*model.EligibilityCheck, error) {
	reference, err := newCheckReference()
	if err != nil {
		return nil, err
	}
	offers, err := json.Marshal(report.Offers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode offers: %w", err)
	}
	reasons, err := json.Marshal(report.Reasons)
	if err != nil {
		return nil, fmt.Errorf("failed to encode reasons: %w", err)
	}

	return &model.EligibilityCheck{
		Reference:     reference,
		CustomerID:    customerID,
		Strategy:      report.Strategy,
		CheckedOn:     today,
		Age:           age,
		Category:      category,
		EligibleCount: len(report.Offers),
		Offers:        datatypes.JSON(offers),
		Reasons:       datatypes.JSON(reasons),
	}, nil
}
