package repository

import (
	"context"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
)

// AdminRepository defines the interface for admin account persistence
type AdminRepository interface {
	// CreateWithLimit inserts admin unless maxAdmins accounts already exist.
	// The count and insert share a transaction. Returns
	// errors.ErrAdminLimitReached when the cap is hit.
	CreateWithLimit(ctx context.Context, admin *model.Admin, maxAdmins int) error

	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id uint) (*model.Admin, error)

	// GetByEmail returns errors.ErrNotFound when no admin matches
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)

	Update(ctx context.Context, admin *model.Admin) error
	List(ctx context.Context) ([]model.Admin, error)
}
