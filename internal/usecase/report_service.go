package usecase

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/repository"
)

// ReportService serves the admin view of past eligibility checks
type ReportService struct {
	checks repository.EligibilityCheckRepository
}

// NewReportService creates a new report service
func NewReportService(checks repository.EligibilityCheckRepository) *ReportService {
	return &ReportService{checks: checks}
}

// LatestChecks returns each customer's most recent check, newest first.
func (s *ReportService) LatestChecks(ctx context.Context) ([]dto.EligibilityCheckView, error) {
	checks, err := s.checks.LatestPerCustomer(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Map(checks, func(c model.EligibilityCheck, _ int) dto.EligibilityCheckView {
		view := dto.EligibilityCheckView{
			Reference:       c.Reference,
			CustomerID:      c.CustomerID,
			Strategy:        c.Strategy,
			CheckedOn:       c.CheckedOn.Format(time.DateOnly),
			Age:             c.Age,
			CompanyCategory: c.Category,
			EligibleCount:   c.EligibleCount,
			Offers:          c.Offers,
			Reasons:         c.Reasons,
			CreatedAt:       c.CreatedAt,
		}
		if c.Customer != nil {
			view.CustomerName = c.Customer.FullName
			view.Email = c.Customer.Email
			view.Phone = c.Customer.Phone
		}
		return view
	}), nil
}
