package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/dto"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/usecase"
)

type seedFile struct {
	Categories []string      `yaml:"categories"`
	Companies  []seedCompany `yaml:"companies"`
	Banks      []seedBank    `yaml:"banks"`
}

type seedCompany struct {
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
}

type seedBank struct {
	Name      string         `yaml:"name"`
	State     string         `yaml:"state"`
	Pincodes  []string       `yaml:"pincodes"`
	Products  []seedProduct  `yaml:"products"`
	LoanRules []seedLoanRule `yaml:"loan_rules"`
}

type seedProduct struct {
	Title          string               `yaml:"title"`
	MinAge         *int                 `yaml:"min_age"`
	MaxAge         *int                 `yaml:"max_age"`
	MinTenure      *int                 `yaml:"min_tenure"`
	MaxTenure      *int                 `yaml:"max_tenure"`
	MinRate        string               `yaml:"min_rate"`
	MaxRate        string               `yaml:"max_rate"`
	MinLoanAmount  string               `yaml:"min_loan_amount"`
	MaxLoanAmount  string               `yaml:"max_loan_amount"`
	FOIR           string               `yaml:"foir"`
	SalaryCriteria []seedSalaryCriteria `yaml:"salary_criteria"`
}

type seedSalaryCriteria struct {
	Category  string `yaml:"category"`
	MinSalary string `yaml:"min_salary"`
}

type seedLoanRule struct {
	JobType   string `yaml:"job_type"`
	MinSalary string `yaml:"min_salary"`
	MinAge    int    `yaml:"min_age"`
	MaxAge    int    `yaml:"max_age"`
	Tenure    *int   `yaml:"tenure"`
	MinRate   string `yaml:"min_rate"`
	MaxRate   string `yaml:"max_rate"`
}

type seedStats struct {
	Categories     int
	Companies      int
	Banks          int
	Products       int
	SalaryCriteria int
	LoanRules      int
}

// seeder loads reference data through the reference service. Records that
// already exist by name are left untouched, so a seed file can be applied
// repeatedly.
type seeder struct {
	reference *usecase.ReferenceService
	logger    *zap.Logger

	categories map[string]uint
}

func (s *seeder) Run(ctx context.Context, file *seedFile) (*seedStats, error) {
	stats := &seedStats{}
	if err := s.seedCategories(ctx, file, stats); err != nil {
		return nil, err
	}
	if err := s.seedCompanies(ctx, file.Companies, stats); err != nil {
		return nil, err
	}
	if err := s.seedBanks(ctx, file.Banks, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

func (s *seeder) seedCategories(ctx context.Context, file *seedFile, stats *seedStats) error {
	existing, err := s.reference.ListCategories(ctx)
	if err != nil {
		return err
	}
	s.categories = make(map[string]uint, len(existing))
	for _, c := range existing {
		s.categories[model.NormalizeKey(c.Name)] = c.ID
	}

	names := append([]string{}, file.Categories...)
	for _, company := range file.Companies {
		names = append(names, company.Category)
	}
	for _, bank := range file.Banks {
		for _, product := range bank.Products {
			for _, criteria := range product.SalaryCriteria {
				names = append(names, criteria.Category)
			}
		}
	}

	for _, name := range names {
		if _, ok := s.categories[model.NormalizeKey(name)]; ok || strings.TrimSpace(name) == "" {
			continue
		}
		category, err := s.reference.CreateCategory(ctx, &dto.NameRequest{Name: strings.TrimSpace(name)})
		if err != nil {
			return fmt.Errorf("failed to create category %q: %w", name, err)
		}
		s.categories[model.NormalizeKey(category.Name)] = category.ID
		stats.Categories++
	}
	return nil
}

func (s *seeder) seedCompanies(ctx context.Context, companies []seedCompany, stats *seedStats) error {
	existing, err := s.reference.ListCompanies(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]struct{}, len(existing))
	for _, c := range existing {
		known[model.NormalizeKey(c.Name)] = struct{}{}
	}

	for _, company := range companies {
		if _, ok := known[model.NormalizeKey(company.Name)]; ok {
			continue
		}
		_, err := s.reference.CreateCompany(ctx, &dto.CompanyRequest{
			Name:       company.Name,
			CategoryID: s.categories[model.NormalizeKey(company.Category)],
		})
		if err != nil {
			return fmt.Errorf("failed to create company %q: %w", company.Name, err)
		}
		known[model.NormalizeKey(company.Name)] = struct{}{}
		stats.Companies++
	}
	return nil
}

func (s *seeder) seedBanks(ctx context.Context, banks []seedBank, stats *seedStats) error {
	existing, err := s.reference.ListBanks(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]struct{}, len(existing))
	for _, b := range existing {
		known[model.NormalizeKey(b.Name)] = struct{}{}
	}

	for _, seed := range banks {
		if _, ok := known[model.NormalizeKey(seed.Name)]; ok {
			s.logger.Info("Bank already present, skipping", zap.String("bank", seed.Name))
			continue
		}

		bank, err := s.reference.CreateBank(ctx, &dto.BankRequest{
			Name:     seed.Name,
			State:    seed.State,
			Pincodes: strings.Join(seed.Pincodes, ","),
		})
		if err != nil {
			return fmt.Errorf("failed to create bank %q: %w", seed.Name, err)
		}
		known[model.NormalizeKey(seed.Name)] = struct{}{}
		stats.Banks++

		for _, p := range seed.Products {
			if err := s.seedProduct(ctx, bank.ID, p, stats); err != nil {
				return fmt.Errorf("bank %q: %w", seed.Name, err)
			}
		}
		for _, r := range seed.LoanRules {
			if err := s.seedLoanRule(ctx, bank.ID, r, stats); err != nil {
				return fmt.Errorf("bank %q: %w", seed.Name, err)
			}
		}
	}
	return nil
}

func (s *seeder) seedProduct(ctx context.Context, bankID uint, seed seedProduct, stats *seedStats) error {
	req := &dto.ProductRequest{
		BankID:    bankID,
		Title:     seed.Title,
		MinAge:    seed.MinAge,
		MaxAge:    seed.MaxAge,
		MinTenure: seed.MinTenure,
		MaxTenure: seed.MaxTenure,
		FOIR:      seed.FOIR,
	}
	var err error
	if req.MinRate, err = parseNullDecimal(seed.MinRate); err != nil {
		return err
	}
	if req.MaxRate, err = parseNullDecimal(seed.MaxRate); err != nil {
		return err
	}
	if req.MinLoanAmount, err = parseNullDecimal(seed.MinLoanAmount); err != nil {
		return err
	}
	if req.MaxLoanAmount, err = parseNullDecimal(seed.MaxLoanAmount); err != nil {
		return err
	}

	product, err := s.reference.CreateProduct(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create product %q: %w", seed.Title, err)
	}
	stats.Products++

	for _, c := range seed.SalaryCriteria {
		minSalary, err := decimal.NewFromString(c.MinSalary)
		if err != nil {
			return fmt.Errorf("invalid min_salary %q: %w", c.MinSalary, err)
		}
		_, err = s.reference.CreateSalaryCriteria(ctx, &dto.SalaryCriteriaRequest{
			ProductID:  product.ID,
			CategoryID: s.categories[model.NormalizeKey(c.Category)],
			MinSalary:  minSalary,
		})
		if err != nil {
			return fmt.Errorf("failed to create salary criteria for %q: %w", seed.Title, err)
		}
		stats.SalaryCriteria++
	}
	return nil
}

func (s *seeder) seedLoanRule(ctx context.Context, bankID uint, seed seedLoanRule, stats *seedStats) error {
	minSalary, err := decimal.NewFromString(seed.MinSalary)
	if err != nil {
		return fmt.Errorf("invalid min_salary %q: %w", seed.MinSalary, err)
	}
	req := &dto.LoanRuleRequest{
		BankID:    bankID,
		JobType:   seed.JobType,
		MinSalary: minSalary,
		MinAge:    seed.MinAge,
		MaxAge:    seed.MaxAge,
		Tenure:    seed.Tenure,
	}
	if req.MinRate, err = parseNullDecimal(seed.MinRate); err != nil {
		return err
	}
	if req.MaxRate, err = parseNullDecimal(seed.MaxRate); err != nil {
		return err
	}

	if _, err := s.reference.CreateLoanRule(ctx, req); err != nil {
		return fmt.Errorf("failed to create loan rule %q: %w", seed.JobType, err)
	}
	stats.LoanRules++
	return nil
}

func parseNullDecimal(raw string) (decimal.NullDecimal, error) {
	if strings.TrimSpace(raw) == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("invalid decimal %q: %w", raw, err)
	}
	return decimal.NewNullDecimal(d), nil
}
