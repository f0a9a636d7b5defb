package usecase

import (
	"context"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/repository"
)

// InterestService records which bank products customers are interested in
type InterestService struct {
	interests repository.InterestRepository
	customers repository.CustomerRepository
	banks     repository.BankRepository
	products  repository.ProductRepository
	logger    *zap.Logger
}

// NewInterestService creates a new interest service
func NewInterestService(
	interests repository.InterestRepository,
	customers repository.CustomerRepository,
	banks repository.BankRepository,
	products repository.ProductRepository,
	logger *zap.Logger,
) *InterestService {
	return &InterestService{
		interests: interests,
		customers: customers,
		banks:     banks,
		products:  products,
		logger:    logger,
	}
}

// Record stores an interest. The product, when given, must belong to the bank.
func (s *InterestService) Record(ctx context.Context, req *dto.InterestRequest) (*dto.InterestView, error) {
	customer, err := s.customers.GetByID(ctx, req.CustomerID)
	if err != nil {
		return nil, notFound(err, "Customer not found")
	}
	bank, err := s.banks.GetByID(ctx, req.BankID)
	if err != nil {
		return nil, notFound(err, bankNotFound)
	}

	interest := &model.CustomerInterest{
		CustomerID: customer.ID,
		BankID:     bank.ID,
		Customer:   customer,
		Bank:       bank,
	}
	if req.ProductID != nil {
		product, err := s.products.GetByID(ctx, *req.ProductID)
		if err != nil {
			return nil, notFound(err, productNotFound)
		}
		if product.BankID != bank.ID {
			return nil, fieldErrors{"product": "product does not belong to the selected bank"}.err()
		}
		interest.ProductID = &product.ID
		interest.Product = product
	}

	if err := s.interests.Create(ctx, interest); err != nil {
		return nil, writeError(err, "customer", "interest could not be recorded")
	}

	s.logger.Info("Customer interest recorded",
		zap.Uint("customer_id", interest.CustomerID),
		zap.Uint("bank_id", interest.BankID))
	view := newInterestView(*interest)
	return &view, nil
}

// List returns interests newest first, optionally for one customer.
func (s *InterestService) List(ctx context.Context, customerID *uint) (*dto.InterestListResponse, error) {
	interests, err := s.interests.List(ctx, customerID)
	if err != nil {
		return nil, err
	}
	data := lo.Map(interests, func(i model.CustomerInterest, _ int) dto.InterestView {
		return newInterestView(i)
	})
	return &dto.InterestListResponse{Count: len(data), Data: data}, nil
}

func newInterestView(i model.CustomerInterest) dto.InterestView {
	view := dto.InterestView{
		ID:         i.ID,
		CustomerID: i.CustomerID,
		BankID:     i.BankID,
		ProductID:  i.ProductID,
		CreatedAt:  i.CreatedAt,
	}
	if i.Customer != nil {
		view.CustomerName = i.Customer.FullName
	}
	if i.Bank != nil {
		view.BankName = i.Bank.Name
	}
	if i.Product != nil {
		view.ProductTitle = i.Product.Title
	}
	return view
}
