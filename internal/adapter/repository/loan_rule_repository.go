package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
	domainRepo "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/repository"
)

// loanRuleRepository implements the LoanRuleRepository interface
type loanRuleRepository struct {
	crudRepository[model.LoanRule]
}

// NewLoanRuleRepository creates a new loan rule repository instance
func NewLoanRuleRepository(db *gorm.DB, logger *zap.Logger) domainRepo.LoanRuleRepository {
	return &loanRuleRepository{
		crudRepository: newCRUDRepository[model.LoanRule](db, logger, "loan rule"),
	}
}

func (r *loanRuleRepository) ListByBank(ctx context.Context, bankID uint) ([]model.LoanRule, error) {
	var rules []model.LoanRule
	err := r.db.WithContext(ctx).Where("bank_id = ?", bankID).Order("id").Find(&rules).Error
	if err != nil {
		r.logger.Error("Failed to list loan rules", zap.Uint("bank_id", bankID), zap.Error(err))
		return nil, fmt.Errorf("failed to list loan rules: %w", err)
	}
	return rules, nil
}
