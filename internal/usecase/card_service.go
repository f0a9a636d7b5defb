package usecase

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
	domainErrors "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/errors"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/provider"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/repository"
)

const cardNotFound = "Card not found"

// CardService manages the marketing cards of the customer portal
type CardService struct {
	cards  repository.CardRepository
	blobs  provider.BlobStore
	logger *zap.Logger
}

// NewCardService creates a new card service. blobs may be nil.
func NewCardService(cards repository.CardRepository, blobs provider.BlobStore, logger *zap.Logger) *CardService {
	return &CardService{
		cards:  cards,
		blobs:  blobs,
		logger: logger,
	}
}

func (s *CardService) List(ctx context.Context) ([]model.ManagedCard, error) {
	return s.cards.List(ctx)
}

func (s *CardService) ListActive(ctx context.Context) ([]model.ManagedCard, error) {
	return s.cards.ListActive(ctx)
}

func (s *CardService) Get(ctx context.Context, id uint) (*model.ManagedCard, error) {
	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, cardNotFound)
	}
	return card, nil
}

// Create stores a card. Cards are active unless the request says otherwise.
func (s *CardService) Create(ctx context.Context, req *dto.CardRequest) (*model.ManagedCard, error) {
	card := &model.ManagedCard{Active: true}
	applyCardRequest(card, req)

	if err := s.cards.Create(ctx, card); err != nil {
		return nil, err
	}
	s.logger.Info("Card created", zap.Uint("card_id", card.ID))
	return card, nil
}

func (s *CardService) Update(ctx context.Context, id uint, req *dto.CardRequest) (*model.ManagedCard, error) {
	card, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	applyCardRequest(card, req)

	if err := s.cards.Update(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *CardService) Delete(ctx context.Context, id uint) error {
	if err := s.cards.Delete(ctx, id); err != nil {
		return notFound(err, cardNotFound)
	}
	s.logger.Info("Card deleted", zap.Uint("card_id", id))
	return nil
}

// UploadImage stores an image and records its URL on the card.
func (s *CardService) UploadImage(ctx context.Context, id uint, filename, contentType string, body io.Reader) (*model.ManagedCard, error) {
	if s.blobs == nil {
		return nil, domainErrors.ErrBlobStoreDisabled
	}
	if err := validateImage(contentType); err != nil {
		return nil, err
	}

	card, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("cards/%d/%s%s", card.ID, uuid.NewString(), strings.ToLower(filepath.Ext(filename)))
	url, err := s.blobs.Put(ctx, key, contentType, body)
	if err != nil {
		return nil, err
	}

	card.ImageURL = url
	if err := s.cards.Update(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func applyCardRequest(card *model.ManagedCard, req *dto.CardRequest) {
	card.Title = strings.TrimSpace(req.Title)
	card.Subtitle = req.Subtitle
	card.LinkURL = req.LinkURL
	card.SortOrder = req.SortOrder
	if req.Active != nil {
		card.Active = *req.Active
	}
}
