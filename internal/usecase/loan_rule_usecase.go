package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
	domainErrors "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/errors"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
)

const (
	loanRuleNotFound  = "Loan rule not found"
	duplicateLoanRule = "a loan rule for this job type already exists for this bank"
)

func (s *ReferenceService) ListLoanRules(ctx context.Context) ([]model.LoanRule, error) {
	return s.repos.LoanRules.List(ctx)
}

func (s *ReferenceService) GetLoanRule(ctx context.Context, id uint) (*model.LoanRule, error) {
	rule, err := s.repos.LoanRules.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, loanRuleNotFound)
	}
	return rule, nil
}

// ListLoanRulesByBank returns NOT_FOUND when the bank does not exist.
func (s *ReferenceService) ListLoanRulesByBank(ctx context.Context, bankID uint) ([]model.LoanRule, error) {
	if _, err := s.GetBank(ctx, bankID); err != nil {
		return nil, err
	}
	return s.repos.LoanRules.ListByBank(ctx, bankID)
}

func (s *ReferenceService) CreateLoanRule(ctx context.Context, req *dto.LoanRuleRequest) (*model.LoanRule, error) {
	if err := s.validateLoanRule(ctx, req); err != nil {
		return nil, err
	}

	rule := &model.LoanRule{}
	req.ApplyTo(rule)
	if err := s.repos.LoanRules.Create(ctx, rule); err != nil {
		return nil, writeError(err, "job_type", duplicateLoanRule)
	}
	s.invalidate(ctx)
	return rule, nil
}

func (s *ReferenceService) UpdateLoanRule(ctx context.Context, id uint, req *dto.LoanRuleRequest) (*model.LoanRule, error) {
	rule, err := s.GetLoanRule(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validateLoanRule(ctx, req); err != nil {
		return nil, err
	}

	req.ApplyTo(rule)
	if err := s.repos.LoanRules.Update(ctx, rule); err != nil {
		return nil, writeError(err, "job_type", duplicateLoanRule)
	}
	s.invalidate(ctx)
	return rule, nil
}

func (s *ReferenceService) DeleteLoanRule(ctx context.Context, id uint) error {
	if err := s.repos.LoanRules.Delete(ctx, id); err != nil {
		return notFound(err, loanRuleNotFound)
	}
	s.invalidate(ctx)
	return nil
}

func (s *ReferenceService) validateLoanRule(ctx context.Context, req *dto.LoanRuleRequest) error {
	errs := fieldErrors{}
	req.JobType = strings.TrimSpace(req.JobType)
	if req.JobType == "" {
		errs.add("job_type", "job type is required")
	}
	if req.MinSalary.IsNegative() {
		errs.add("min_salary", "min_salary must not be negative")
	}
	if req.MinAge > req.MaxAge {
		errs.add("min_age", "min_age must not exceed max_age")
	}
	checkDecimalRange(errs, "min_rate", req.MinRate, req.MaxRate)

	if _, err := s.repos.Banks.GetByID(ctx, req.BankID); err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return err
		}
		errs.add("bank", "bank does not exist")
	}
	return errs.err()
}
