package eligibility

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
)

// Rejection reason codes.
const (
	ReasonBankNotServingArea     = "bank_not_serving_area"
	ReasonAgeOutOfRange          = "age_out_of_range"
	ReasonAgeUnknown             = "age_unknown"
	ReasonNoSalaryCriteria       = "no_salary_criteria"
	ReasonSalaryBelowMinimum     = "salary_below_minimum"
	ReasonEmploymentTypeMismatch = "employment_type_mismatch"
)

// Profile is the customer data the engine evaluates.
type Profile struct {
	EmploymentCategory string
	MonthlySalary      decimal.Decimal
	Pincode            string

	// Age is nil when the date of birth is unknown; age gates are skipped.
	Age *int

	// Category is the resolved company category of the employer.
	Category model.CompanyCategory
}

// Snapshot is the reference data a single evaluation runs against.
type Snapshot struct {
	Banks    []model.Bank `json:"banks"`
	LoadedAt time.Time    `json:"loaded_at"`
}

// Offer is one eligible bank product, or bank rule for the legacy strategy.
type Offer struct {
	BankID            uint            `json:"bank_id"`
	BankName          string          `json:"bank_name"`
	BankLogoURL       string          `json:"bank_image_url,omitempty"`
	ProductID         uint            `json:"product_id,omitempty"`
	ProductTitle      string          `json:"product_title,omitempty"`
	JobType           string          `json:"job_type,omitempty"`
	CompanyCategory   string          `json:"company_category,omitempty"`
	MinSalaryRequired decimal.Decimal `json:"min_salary_required"`
	ApplicantSalary   decimal.Decimal `json:"applicant_salary"`
	AgeLimit          string          `json:"age_limit"`
	Tenure            string          `json:"tenure"`
	RateOfInterest    string          `json:"rate_of_interest"`
	LoanAmount        string          `json:"loan_amount,omitempty"`
	FOIR              string          `json:"foir,omitempty"`
	EstimatedMaxLoan  decimal.Decimal `json:"estimated_max_loan"`
	MaxLoanAmount     string          `json:"max_loan_amount"`
}

// Reason explains why a bank or product was rejected.
type Reason struct {
	Code         string `json:"code"`
	BankID       uint   `json:"bank_id"`
	BankName     string `json:"bank_name"`
	ProductID    uint   `json:"product_id,omitempty"`
	ProductTitle string `json:"product_title,omitempty"`
	Message      string `json:"message"`
}

// Report is the outcome of one evaluation.
type Report struct {
	Strategy string   `json:"strategy"`
	Offers   []Offer  `json:"offers"`
	Reasons  []Reason `json:"reasons"`
}

// Eligible reports whether at least one offer matched.
func (r *Report) Eligible() bool {
	return len(r.Offers) > 0
}

// TopReasons returns at most n reasons. All reasons remain on the report.
func (r *Report) TopReasons(n int) []Reason {
	if n <= 0 || len(r.Reasons) <= n {
		return r.Reasons
	}
	return r.Reasons[:n]
}

// sortByBankProduct orders offers and reasons by bank id, then product id.
// The sort is stable so reasons of the same product keep their order.
func (r *Report) sortByBankProduct() {
	slices.SortStableFunc(r.Offers, func(a, b Offer) int {
		return cmp.Or(cmp.Compare(a.BankID, b.BankID), cmp.Compare(a.ProductID, b.ProductID))
	})
	slices.SortStableFunc(r.Reasons, func(a, b Reason) int {
		return cmp.Or(cmp.Compare(a.BankID, b.BankID), cmp.Compare(a.ProductID, b.ProductID))
	})
}

func newReport(strategy string) *Report {
	return &Report{
		Strategy: strategy,
		Offers:   []Offer{},
		Reasons:  []Reason{},
	}
}
