package eligibility

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/errors"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
)

// ProductStrategy matches against products and their salary criteria.
//
// For every bank serving the customer's pincode, each product passes through
// the age gate, the salary criteria existence gate and the salary
// sufficiency gate in that order. The first failing gate produces the
// product's rejection reason.
type ProductStrategy struct {
	opts Options
}

func NewProductStrategy(opts Options) *ProductStrategy {
	return &ProductStrategy{opts: opts}
}

func (s *ProductStrategy) Name() string {
	return StrategyProduct
}

func (s *ProductStrategy) Evaluate(profile Profile, snapshot *Snapshot) (*Report, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	report := newReport(s.Name())
	if snapshot == nil {
		return report, nil
	}

	for i := range snapshot.Banks {
		bank := &snapshot.Banks[i]
		if !bank.HasPincode(profile.Pincode) {
			report.Reasons = append(report.Reasons, Reason{
				Code:     ReasonBankNotServingArea,
				BankID:   bank.ID,
				BankName: bank.Name,
				Message:  fmt.Sprintf("%s does not serve pincode %s", bank.Name, profile.Pincode),
			})
			continue
		}

		for j := range bank.Products {
			offer, reason := s.evaluateProduct(profile, bank, &bank.Products[j])
			if reason != nil {
				report.Reasons = append(report.Reasons, *reason)
				continue
			}
			report.Offers = append(report.Offers, *offer)
		}
	}

	report.sortByBankProduct()
	return report, nil
}

func (s *ProductStrategy) evaluateProduct(profile Profile, bank *model.Bank, product *model.Product) (*Offer, *Reason) {
	reject := func(code, format string, args ...interface{}) (*Offer, *Reason) {
		return nil, &Reason{
			Code:         code,
			BankID:       bank.ID,
			BankName:     bank.Name,
			ProductID:    product.ID,
			ProductTitle: product.Title,
			Message:      fmt.Sprintf(format, args...),
		}
	}

	if profile.Age != nil && product.HasAgeRange() {
		age := *profile.Age
		if product.MinAge != nil && age < *product.MinAge {
			return reject(ReasonAgeOutOfRange, "age %d is below the minimum age %d", age, *product.MinAge)
		}
		if product.MaxAge != nil && age > *product.MaxAge {
			return reject(ReasonAgeOutOfRange, "age %d is above the maximum age %d", age, *product.MaxAge)
		}
	}

	criteria := product.CriteriaFor(profile.Category.ID)
	if len(criteria) == 0 {
		return reject(ReasonNoSalaryCriteria, "no salary criteria for category %s", profile.Category.Name)
	}
	slices.SortStableFunc(criteria, func(a, b model.SalaryCriteria) int {
		return cmp.Compare(a.ID, b.ID)
	})

	// First satisfied row wins, in insertion order. A rejection cites the
	// first row rather than the lowest threshold.
	var matched *model.SalaryCriteria
	for k := range criteria {
		if profile.MonthlySalary.GreaterThanOrEqual(criteria[k].MinSalary) {
			matched = &criteria[k]
			break
		}
	}
	if matched == nil {
		return reject(ReasonSalaryBelowMinimum, "salary %s is below the minimum %s",
			profile.MonthlySalary.String(), criteria[0].MinSalary.String())
	}

	estimate := profile.MonthlySalary.Mul(s.opts.multiplier())
	if product.MaxLoanAmount.Valid {
		estimate = product.MaxLoanAmount.Decimal
	}

	return &Offer{
		BankID:            bank.ID,
		BankName:          bank.Name,
		BankLogoURL:       bank.LogoURL,
		ProductID:         product.ID,
		ProductTitle:      product.Title,
		CompanyCategory:   profile.Category.Name,
		MinSalaryRequired: matched.MinSalary,
		ApplicantSalary:   profile.MonthlySalary,
		AgeLimit:          intRange(product.MinAge, product.MaxAge),
		Tenure:            intRange(product.MinTenure, product.MaxTenure),
		RateOfInterest:    decimalRange(product.MinRate, product.MaxRate),
		LoanAmount:        decimalRange(product.MinLoanAmount, product.MaxLoanAmount),
		FOIR:              product.FOIR,
		EstimatedMaxLoan:  estimate,
		MaxLoanAmount:     loanLabel(estimate),
	}, nil
}

func validateProfile(profile Profile) error {
	if profile.MonthlySalary.IsNegative() {
		return fmt.Errorf("%w: monthly salary is negative", errors.ErrInvalidProfile)
	}
	if profile.Age != nil && *profile.Age < 0 {
		return fmt.Errorf("%w: age is negative", errors.ErrInvalidProfile)
	}
	return nil
}
