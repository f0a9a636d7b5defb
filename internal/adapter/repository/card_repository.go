package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
	domainRepo "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/repository"
)

// cardRepository implements the CardRepository interface
type cardRepository struct {
	crudRepository[model.ManagedCard]
}

// NewCardRepository creates a new managed card repository instance
func NewCardRepository(db *gorm.DB, logger *zap.Logger) domainRepo.CardRepository {
	return &cardRepository{
		crudRepository: newCRUDRepository[model.ManagedCard](db, logger, "card"),
	}
}

func (r *cardRepository) ListActive(ctx context.Context) ([]model.ManagedCard, error) {
	var cards []model.ManagedCard
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("sort_order, id").
		Find(&cards).Error
	if err != nil {
		r.logger.Error("Failed to list active cards", zap.Error(err))
		return nil, fmt.Errorf("failed to list active cards: %w", err)
	}
	return cards, nil
}
