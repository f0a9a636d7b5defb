package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
	domainErrors "github.com/wekeepgrowing/loan-eligibility-service/internal/domain/errors"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
)

const (
	categoryNotFound = "Company category not found"
	companyNotFound  = "Company not found"
	criteriaNotFound = "Salary criteria not found"
)

func (s *ReferenceService) ListCategories(ctx context.Context) ([]model.CompanyCategory, error) {
	return s.repos.Categories.List(ctx)
}

func (s *ReferenceService) GetCategory(ctx context.Context, id uint) (*model.CompanyCategory, error) {
	category, err := s.repos.Categories.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, categoryNotFound)
	}
	return category, nil
}

func (s *ReferenceService) CreateCategory(ctx context.Context, req *dto.NameRequest) (*model.CompanyCategory, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fieldErrors{"name": "name is required"}.err()
	}

	category := &model.CompanyCategory{Name: name}
	if err := s.repos.Categories.Create(ctx, category); err != nil {
		return nil, writeError(err, "name", "company category with this name already exists")
	}
	s.invalidate(ctx)
	return category, nil
}

func (s *ReferenceService) UpdateCategory(ctx context.Context, id uint, req *dto.NameRequest) (*model.CompanyCategory, error) {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fieldErrors{"name": "name is required"}.err()
	}
	if isUnlisted(category) && !strings.EqualFold(name, model.UnlistedCategoryName) {
		return nil, fieldErrors{"name": "the UNLISTED category cannot be renamed"}.err()
	}

	category.Name = name
	if err := s.repos.Categories.Update(ctx, category); err != nil {
		return nil, writeError(err, "name", "company category with this name already exists")
	}
	s.invalidate(ctx)
	return category, nil
}

// DeleteCategory removes a category with its companies and salary criteria.
// The UNLISTED fallback cannot be deleted.
func (s *ReferenceService) DeleteCategory(ctx context.Context, id uint) error {
	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return err
	}
	if isUnlisted(category) {
		return fieldErrors{"name": "the UNLISTED category cannot be deleted"}.err()
	}

	if err := s.repos.Categories.Delete(ctx, id); err != nil {
		return notFound(err, categoryNotFound)
	}
	s.invalidate(ctx)
	return nil
}

func isUnlisted(category *model.CompanyCategory) bool {
	return model.NormalizeKey(category.Name) == model.NormalizeKey(model.UnlistedCategoryName)
}

func (s *ReferenceService) ListCompanies(ctx context.Context) ([]model.Company, error) {
	return s.repos.Companies.List(ctx)
}

func (s *ReferenceService) GetCompany(ctx context.Context, id uint) (*model.Company, error) {
	company, err := s.repos.Companies.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, companyNotFound)
	}
	return company, nil
}

func (s *ReferenceService) CreateCompany(ctx context.Context, req *dto.CompanyRequest) (*model.Company, error) {
	company := &model.Company{}
	if err := s.applyCompanyRequest(ctx, company, req); err != nil {
		return nil, err
	}

	if err := s.repos.Companies.Create(ctx, company); err != nil {
		return nil, writeError(err, "name", "company with this name already exists")
	}
	return company, nil
}

func (s *ReferenceService) UpdateCompany(ctx context.Context, id uint, req *dto.CompanyRequest) (*model.Company, error) {
	company, err := s.GetCompany(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applyCompanyRequest(ctx, company, req); err != nil {
		return nil, err
	}

	if err := s.repos.Companies.Update(ctx, company); err != nil {
		return nil, writeError(err, "name", "company with this name already exists")
	}
	return company, nil
}

func (s *ReferenceService) DeleteCompany(ctx context.Context, id uint) error {
	if err := s.repos.Companies.Delete(ctx, id); err != nil {
		return notFound(err, companyNotFound)
	}
	return nil
}

func (s *ReferenceService) applyCompanyRequest(ctx context.Context, company *model.Company, req *dto.CompanyRequest) error {
	errs := fieldErrors{}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs.add("name", "name is required")
	}

	category, err := s.repos.Categories.GetByID(ctx, req.CategoryID)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return err
		}
		errs.add("category", "company category does not exist")
	}
	if err := errs.err(); err != nil {
		return err
	}

	company.Name = name
	company.CategoryID = category.ID
	company.Category = category
	return nil
}

// ListSalaryCriteria lists every criterion, or only those of productID.
func (s *ReferenceService) ListSalaryCriteria(ctx context.Context, productID *uint) ([]model.SalaryCriteria, error) {
	if productID != nil {
		return s.repos.SalaryCriteria.ListByProduct(ctx, *productID)
	}
	return s.repos.SalaryCriteria.List(ctx)
}

func (s *ReferenceService) GetSalaryCriteria(ctx context.Context, id uint) (*model.SalaryCriteria, error) {
	criteria, err := s.repos.SalaryCriteria.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, criteriaNotFound)
	}
	return criteria, nil
}

func (s *ReferenceService) CreateSalaryCriteria(ctx context.Context, req *dto.SalaryCriteriaRequest) (*model.SalaryCriteria, error) {
	criteria := &model.SalaryCriteria{}
	if err := s.applySalaryCriteriaRequest(ctx, criteria, req); err != nil {
		return nil, err
	}

	if err := s.repos.SalaryCriteria.Create(ctx, criteria); err != nil {
		return nil, writeError(err, "product", "salary criteria already exists")
	}
	s.invalidate(ctx)
	return criteria, nil
}

func (s *ReferenceService) UpdateSalaryCriteria(ctx context.Context, id uint, req *dto.SalaryCriteriaRequest) (*model.SalaryCriteria, error) {
	criteria, err := s.GetSalaryCriteria(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.applySalaryCriteriaRequest(ctx, criteria, req); err != nil {
		return nil, err
	}

	if err := s.repos.SalaryCriteria.Update(ctx, criteria); err != nil {
		return nil, writeError(err, "product", "salary criteria already exists")
	}
	s.invalidate(ctx)
	return criteria, nil
}

func (s *ReferenceService) DeleteSalaryCriteria(ctx context.Context, id uint) error {
	if err := s.repos.SalaryCriteria.Delete(ctx, id); err != nil {
		return notFound(err, criteriaNotFound)
	}
	s.invalidate(ctx)
	return nil
}

func (s *ReferenceService) applySalaryCriteriaRequest(ctx context.Context, criteria *model.SalaryCriteria, req *dto.SalaryCriteriaRequest) error {
	errs := fieldErrors{}
	if req.MinSalary.LessThan(decimal.Zero) {
		errs.add("min_salary", "min_salary must not be negative")
	}

	if _, err := s.repos.Products.GetByID(ctx, req.ProductID); err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return err
		}
		errs.add("product", "product does not exist")
	}
	category, err := s.repos.Categories.GetByID(ctx, req.CategoryID)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return err
		}
		errs.add("category", "company category does not exist")
	}
	if err := errs.err(); err != nil {
		return err
	}

	criteria.ProductID = req.ProductID
	criteria.CategoryID = req.CategoryID
	criteria.MinSalary = req.MinSalary
	criteria.Category = category
	return nil
}
