package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
	domainErrors "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/errors"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
	apperrors "github.com/wekeepgrowing/loan-eligibility-service/pkg/errors"
)

const productNotFound = "Product not found"

func (s *ReferenceService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.repos.Products.List(ctx)
}

func (s *ReferenceService) GetProduct(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.repos.Products.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, productNotFound)
	}
	return product, nil
}

// ListProductsByBank returns NOT_FOUND when the bank has no products.
func (s *ReferenceService) ListProductsByBank(ctx context.Context, bankID uint) ([]model.Product, error) {
	products, err := s.repos.Products.ListByBank(ctx, bankID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, apperrors.NotFound("No products found for this bank")
	}
	return products, nil
}

func (s *ReferenceService) CreateProduct(ctx context.Context, req *dto.ProductRequest) (*model.Product, error) {
	if err := s.validateProduct(ctx, req); err != nil {
		return nil, err
	}

	product := &model.Product{}
	req.ApplyTo(product)
	if err := s.repos.Products.Create(ctx, product); err != nil {
		return nil, writeError(err, "product_title", "product with this title already exists for this bank")
	}
	s.invalidate(ctx)

	s.logger.Info("Product created",
		zap.Uint("product_id", product.ID),
		zap.Uint("bank_id", product.BankID),
		zap.String("title", product.Title))
	return product, nil
}

func (s *ReferenceService) UpdateProduct(ctx context.Context, id uint, req *dto.ProductRequest) (*model.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validateProduct(ctx, req); err != nil {
		return nil, err
	}

	req.ApplyTo(product)
	if err := s.repos.Products.Update(ctx, product); err != nil {
		return nil, writeError(err, "product_title", "product with this title already exists for this bank")
	}
	s.invalidate(ctx)
	return product, nil
}

func (s *ReferenceService) DeleteProduct(ctx context.Context, id uint) error {
	if err := s.repos.Products.Delete(ctx, id); err != nil {
		return notFound(err, productNotFound)
	}
	s.invalidate(ctx)
	return nil
}

func (s *ReferenceService) validateProduct(ctx context.Context, req *dto.ProductRequest) error {
	errs := fieldErrors{}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		errs.add("product_title", "product title is required")
	}
	if req.MinAge != nil && req.MaxAge != nil && *req.MinAge > *req.MaxAge {
		errs.add("min_age", "min_age must not exceed max_age")
	}
	if req.MinTenure != nil && req.MaxTenure != nil && *req.MinTenure > *req.MaxTenure {
		errs.add("min_tenure", "min_tenure must not exceed max_tenure")
	}
	checkDecimalRange(errs, "min_loan_amount", req.MinLoanAmount, req.MaxLoanAmount)
	checkDecimalRange(errs, "min_rate_of_interest", req.MinRate, req.MaxRate)

	if _, err := s.repos.Banks.GetByID(ctx, req.BankID); err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return err
		}
		errs.add("bank", "bank does not exist")
	}
	return errs.err()
}

func checkDecimalRange(errs fieldErrors, field string, min, max decimal.NullDecimal) {
	if min.Valid && min.Decimal.IsNegative() {
		errs.add(field, field+" must not be negative")
	}
	if min.Valid && max.Valid && min.Decimal.GreaterThan(max.Decimal) {
		errs.add(field, field+" must not exceed the maximum")
	}
}
