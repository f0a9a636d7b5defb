package repository

import (
	"context"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// GetByID retrieves a customer, returning errors.ErrNotFound when missing
	GetByID(ctx context.Context, id uint) (*model.Customer, error)

	// FindByIdentity resolves a customer by email, then phone, then tax id.
	// Returns nil without error when no customer matches.
	FindByIdentity(ctx context.Context, identity model.Identity) (*model.Customer, error)

	// WithinTransaction runs fn in a single database transaction
	WithinTransaction(ctx context.Context, fn func(tx CustomerTx) error) error
}

// CustomerTx is the transactional view used by the intake flow
type CustomerTx interface {
	// FindByIdentityForUpdate resolves a customer and locks its row until commit
	FindByIdentityForUpdate(ctx context.Context, identity model.Identity) (*model.Customer, error)

	Create(ctx context.Context, customer *model.Customer) error
	Save(ctx context.Context, customer *model.Customer) error

	// RecordCheck stores the outcome of an eligibility run
	RecordCheck(ctx context.Context, check *model.EligibilityCheck) error
}

// EligibilityCheckRepository reads persisted eligibility runs
type EligibilityCheckRepository interface {
	// LatestPerCustomer returns each customer's most recent check, newest first
	LatestPerCustomer(ctx context.Context) ([]model.EligibilityCheck, error)
}
