package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domainErrors "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/errors"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
	domainRepo "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/repository"
)

// adminRepository implements the AdminRepository interface
type adminRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewAdminRepository creates a new admin repository instance
func NewAdminRepository(db *gorm.DB, logger *zap.Logger) domainRepo.AdminRepository {
	return &adminRepository{
		db:     db,
		logger: logger,
	}
}

// maxSerializationRetries bounds how often a capped insert is retried after a
// PostgreSQL serialization failure.
const maxSerializationRetries = 3

// CreateWithLimit counts and inserts in one transaction. On PostgreSQL the
// transaction runs SERIALIZABLE so two concurrent creations cannot both
// observe a count below the cap; the loser of such a race is retried and
// then sees the new count.
func (r *adminRepository) CreateWithLimit(ctx context.Context, admin *model.Admin, maxAdmins int) error {
	var opts []*sql.TxOptions
	if r.db.Dialector.Name() == "postgres" {
		opts = append(opts, &sql.TxOptions{Isolation: sql.LevelSerializable})
	}

	err := retrySerializable(maxSerializationRetries, func() error {
		admin.ID = 0
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&model.Admin{}).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to count admins: %w", err)
			}
			if count >= int64(maxAdmins) {
				return domainErrors.ErrAdminLimitReached
			}

			if err := tx.Omit(clause.Associations).Create(admin).Error; err != nil {
				return fmt.Errorf("failed to create admin: %w", translateError(err))
			}
			return nil
		}, opts...)
	})

	if err != nil && !isClientError(err) && !errors.Is(err, domainErrors.ErrAdminLimitReached) {
		r.logger.Error("Failed to create admin", zap.String("email", admin.Email), zap.Error(err))
	}
	return err
}

func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Admin{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count admins: %w", err)
	}
	return count, nil
}

func (r *adminRepository) GetByID(ctx context.Context, id uint) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).First(&admin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &admin, nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", model.NormalizeKey(email)).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}
	return &admin, nil
}

func (r *adminRepository) Update(ctx context.Context, admin *model.Admin) error {
	if err := r.db.WithContext(ctx).Save(admin).Error; err != nil {
		return fmt.Errorf("failed to update admin: %w", translateError(err))
	}
	return nil
}

func (r *adminRepository) List(ctx context.Context) ([]model.Admin, error) {
	var admins []model.Admin
	if err := r.db.WithContext(ctx).Order("id").Find(&admins).Error; err != nil {
		r.logger.Error("Failed to list admins", zap.Error(err))
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}
