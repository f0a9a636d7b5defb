package repository

import (
	"context"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
)

// BankRepository defines the interface for bank persistence
type BankRepository interface {
	CRUDRepository[model.Bank]

	// ListByPincodes returns banks serving any of codes, ordered by id
	ListByPincodes(ctx context.Context, codes []string) ([]model.Bank, error)

	// ListForMatching returns every bank with products, salary criteria and
	// loan rules preloaded in id order
	ListForMatching(ctx context.Context) ([]model.Bank, error)
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	CRUDRepository[model.Product]

	ListByBank(ctx context.Context, bankID uint) ([]model.Product, error)
}

// CompanyCategoryRepository defines the interface for company category persistence
type CompanyCategoryRepository interface {
	CRUDRepository[model.CompanyCategory]

	// EnsureByName returns the category named name, creating it when missing
	EnsureByName(ctx context.Context, name string) (*model.CompanyCategory, error)
}

// CompanyRepository defines the interface for company persistence
type CompanyRepository interface {
	CRUDRepository[model.Company]

	// FindByName matches case-insensitively. Returns nil without error when
	// no company matches.
	FindByName(ctx context.Context, name string) (*model.Company, error)
}

// SalaryCriteriaRepository defines the interface for salary criteria persistence
type SalaryCriteriaRepository interface {
	CRUDRepository[model.SalaryCriteria]

	ListByProduct(ctx context.Context, productID uint) ([]model.SalaryCriteria, error)
}

// LoanRuleRepository defines the interface for loan rule persistence
type LoanRuleRepository interface {
	CRUDRepository[model.LoanRule]

	ListByBank(ctx context.Context, bankID uint) ([]model.LoanRule, error)
}

// InterestRepository defines the interface for customer interest persistence
type InterestRepository interface {
	Create(ctx context.Context, interest *model.CustomerInterest) error

	// List returns interests newest first with customer, bank and product
	// preloaded. A nil customerID lists every interest.
	List(ctx context.Context, customerID *uint) ([]model.CustomerInterest, error)
}

// CardRepository defines the interface for managed card persistence
type CardRepository interface {
	CRUDRepository[model.ManagedCard]

	ListActive(ctx context.Context) ([]model.ManagedCard, error)
}
