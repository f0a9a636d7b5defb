package eligibility

import (
	"fmt"
	"strconv"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
)

// LegacyRuleStrategy matches against the flat per-bank loan rules. A rule
// matches on employment type, salary floor and an inclusive age range. The
// estimated loan is always salary times the multiplier.
//
// Deprecated: configure the product strategy for new deployments.
type LegacyRuleStrategy struct {
	opts Options
}

func NewLegacyRuleStrategy(opts Options) *LegacyRuleStrategy {
	return &LegacyRuleStrategy{opts: opts}
}

func (s *LegacyRuleStrategy) Name() string {
	return StrategyLegacyRule
}

func (s *LegacyRuleStrategy) Evaluate(profile Profile, snapshot *Snapshot) (*Report, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	report := newReport(s.Name())
	if snapshot == nil {
		return report, nil
	}

	employment := model.NormalizeKey(profile.EmploymentCategory)
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

		for j := range bank.LoanRules {
			rule := &bank.LoanRules[j]
			if reason := s.check(profile, employment, rule); reason != "" {
				report.Reasons = append(report.Reasons, Reason{
					Code:     reason,
					BankID:   bank.ID,
					BankName: bank.Name,
					Message:  s.message(reason, profile, rule),
				})
				continue
			}

			estimate := profile.MonthlySalary.Mul(s.opts.multiplier())
			tenure := notAvailable
			if rule.Tenure != nil {
				tenure = strconv.Itoa(*rule.Tenure)
			}
			report.Offers = append(report.Offers, Offer{
				BankID:            bank.ID,
				BankName:          bank.Name,
				BankLogoURL:       bank.LogoURL,
				JobType:           rule.JobType,
				CompanyCategory:   profile.Category.Name,
				MinSalaryRequired: rule.MinSalary,
				ApplicantSalary:   profile.MonthlySalary,
				AgeLimit:          intRange(&rule.MinAge, &rule.MaxAge),
				Tenure:            tenure,
				RateOfInterest:    decimalRange(rule.MinRate, rule.MaxRate),
				EstimatedMaxLoan:  estimate,
				MaxLoanAmount:     loanLabel(estimate),
			})
		}
	}

	report.sortByBankProduct()
	return report, nil
}

func (s *LegacyRuleStrategy) check(profile Profile, employment string, rule *model.LoanRule) string {
	switch {
	case employment == "" || employment != rule.JobTypeKeyOrNormalized():
		return ReasonEmploymentTypeMismatch
	case profile.MonthlySalary.LessThan(rule.MinSalary):
		return ReasonSalaryBelowMinimum
	case profile.Age == nil:
		return ReasonAgeUnknown
	case *profile.Age < rule.MinAge || *profile.Age > rule.MaxAge:
		return ReasonAgeOutOfRange
	}
	return ""
}

func (s *LegacyRuleStrategy) message(code string, profile Profile, rule *model.LoanRule) string {
	switch code {
	case ReasonEmploymentTypeMismatch:
		return fmt.Sprintf("rule requires employment type %s", rule.JobType)
	case ReasonSalaryBelowMinimum:
		return fmt.Sprintf("salary %s is below the minimum %s", profile.MonthlySalary.String(), rule.MinSalary.String())
	case ReasonAgeUnknown:
		return "date of birth is required for this rule"
	default:
		return fmt.Sprintf("age %d is outside %d-%d", *profile.Age, rule.MinAge, rule.MaxAge)
	}
}
