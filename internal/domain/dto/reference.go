package dto

import (
	"github.com/shopspring/decimal"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
)

// BankRequest creates or updates a bank.
type BankRequest struct {
	Name     string `json:"bank_name" validate:"required,max=100"`
	State    string `json:"state" validate:"max=50"`
	Pincodes string `json:"pincode"`
}

// BanksByPincodeResponse lists banks serving any of the requested pincodes.
type BanksByPincodeResponse struct {
	Banks                  []model.Bank `json:"banks"`
	IgnoredInvalidPincodes []string     `json:"ignored_invalid_pincodes,omitempty"`
}

// ProductRequest creates or updates a product.
type ProductRequest struct {
	BankID        uint                `json:"bank" validate:"required"`
	Title         string              `json:"product_title" validate:"required,max=150"`
	MinAge        *int                `json:"min_age" validate:"omitempty,min=0,max=120"`
	MaxAge        *int                `json:"max_age" validate:"omitempty,min=0,max=120"`
	MinTenure     *int                `json:"min_tenure" validate:"omitempty,min=0"`
	MaxTenure     *int                `json:"max_tenure" validate:"omitempty,min=0"`
	MinLoanAmount decimal.NullDecimal `json:"min_loan_amount"`
	MaxLoanAmount decimal.NullDecimal `json:"max_loan_amount"`
	MinRate       decimal.NullDecimal `json:"min_rate_of_interest"`
	MaxRate       decimal.NullDecimal `json:"max_rate_of_interest"`
	FOIR          string              `json:"foir" validate:"max=255"`
}

// ApplyTo copies the request onto p.
func (r *ProductRequest) ApplyTo(p *model.Product) {
	p.BankID = r.BankID
	p.Title = r.Title
	p.MinAge = r.MinAge
	p.MaxAge = r.MaxAge
	p.MinTenure = r.MinTenure
	p.MaxTenure = r.MaxTenure
	p.MinLoanAmount = r.MinLoanAmount
	p.MaxLoanAmount = r.MaxLoanAmount
	p.MinRate = r.MinRate
	p.MaxRate = r.MaxRate
	p.FOIR = r.FOIR
}

// NameRequest creates or updates a company category.
type NameRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// CompanyRequest creates or updates a company.
type CompanyRequest struct {
	Name       string `json:"name" validate:"required,max=150"`
	CategoryID uint   `json:"category" validate:"required"`
}

// SalaryCriteriaRequest creates or updates a salary criterion.
type SalaryCriteriaRequest struct {
	ProductID  uint            `json:"product" validate:"required"`
	CategoryID uint            `json:"category" validate:"required"`
	MinSalary  decimal.Decimal `json:"min_salary"`
}

// LoanRuleRequest creates or updates a loan rule.
type LoanRuleRequest struct {
	BankID    uint                `json:"bank" validate:"required"`
	JobType   string              `json:"job_type" validate:"required,max=50"`
	MinSalary decimal.Decimal     `json:"min_salary"`
	MinAge    int                 `json:"min_age" validate:"min=0,max=120"`
	MaxAge    int                 `json:"max_age" validate:"min=0,max=120"`
	Tenure    *int                `json:"tenure" validate:"omitempty,min=0"`
	MinRate   decimal.NullDecimal `json:"min_rate"`
	MaxRate   decimal.NullDecimal `json:"max_rate"`
}

// ApplyTo copies the request onto r.
func (req *LoanRuleRequest) ApplyTo(r *model.LoanRule) {
	r.BankID = req.BankID
	r.JobType = req.JobType
	r.MinSalary = req.MinSalary
	r.MinAge = req.MinAge
	r.MaxAge = req.MaxAge
	r.Tenure = req.Tenure
	r.MinRate = req.MinRate
	r.MaxRate = req.MaxRate
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
