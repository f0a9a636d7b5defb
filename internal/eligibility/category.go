package eligibility

import (
	"context"
	"fmt"
	"strings"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
)

// CompanyFinder looks up an employer by name, returning nil when unknown.
type CompanyFinder interface {
	FindByName(ctx context.Context, name string) (*model.Company, error)
}

// CategoryEnsurer returns the category with the given name, creating it if needed.
type CategoryEnsurer interface {
	EnsureByName(ctx context.Context, name string) (*model.CompanyCategory, error)
}

// CategoryResolver maps an employer name to its company category. Unknown
// employers fall back to the UNLISTED category.
type CategoryResolver struct {
	companies  CompanyFinder
	categories CategoryEnsurer
}

func NewCategoryResolver(companies CompanyFinder, categories CategoryEnsurer) *CategoryResolver {
	return &CategoryResolver{
		companies:  companies,
		categories: categories,
	}
}

// Resolve returns the category of employerName.
func (r *CategoryResolver) Resolve(ctx context.Context, employerName string) (*model.CompanyCategory, error) {
	if name := strings.TrimSpace(employerName); name != "" {
		company, err := r.companies.FindByName(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("failed to look up company: %w", err)
		}
		if company != nil && company.Category != nil {
			return company.Category, nil
		}
	}

	category, err := r.categories.EnsureByName(ctx, model.UnlistedCategoryName)
	if err != nil {
		return nil, fmt.Errorf("failed to load fallback category: %w", err)
	}
	return category, nil
}
