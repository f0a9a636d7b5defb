package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/wekeepgrowing/loan-eligibility-service/internal/domain/model"
	"github.com/wekeepgrowing/loan-eligibility-service/internal/eligibility"
)

// CustomerIntakeRequest is the payload of the create-or-check endpoint.
type CustomerIntakeRequest struct {
	FullName           string          `json:"full_name" validate:"required,max=100"`
	Email              string          `json:"email" validate:"omitempty,email,max=100"`
	Phone              string          `json:"phone" validate:"omitempty,max=15"`
	TaxID              string          `json:"tax_id" validate:"omitempty,max=20"`
	DateOfBirth        Date            `json:"date_of_birth"`
	EmploymentCategory string          `json:"employment_category" validate:"required,max=50"`
	MonthlySalary      decimal.Decimal `json:"monthly_salary"`
	City               string          `json:"city" validate:"max=50"`
	Pincode            string          `json:"pincode" validate:"required,pincode"`
	ExistingLoan       bool            `json:"existing_loan"`
	EmployerName       string          `json:"employer_name" validate:"max=100"`
	Department         string          `json:"department" validate:"max=100"`
	Designation        string          `json:"designation" validate:"max=100"`
}

// Identity returns the identity fields of the request, normalised the same
// way ApplyTo stores them.
func (r *CustomerIntakeRequest) Identity() model.Identity {
	return model.Identity{
		Email: model.NormalizeKey(r.Email),
		Phone: strings.TrimSpace(r.Phone),
		TaxID: strings.TrimSpace(r.TaxID),
	}
}

// ApplyTo copies the submitted profile onto c.
func (r *CustomerIntakeRequest) ApplyTo(c *model.Customer) {
	c.FullName = r.FullName
	if email := model.StringPtr(model.NormalizeKey(r.Email)); email != nil {
		c.Email = email
	}
	if phone := model.StringPtr(r.Phone); phone != nil {
		c.Phone = phone
	}
	if taxID := model.StringPtr(r.TaxID); taxID != nil {
		c.TaxID = taxID
	}
	if dob := r.DateOfBirth.Ptr(); dob != nil {
		c.DateOfBirth = dob
	}
	c.EmploymentCategory = r.EmploymentCategory
	c.SetMonthlySalary(r.MonthlySalary)
	c.City = r.City
	c.Pincode = r.Pincode
	c.ExistingLoan = r.ExistingLoan
	c.EmployerName = r.EmployerName
	c.Department = r.Department
	c.Designation = r.Designation
}

// CustomerSummary is the customer block of an eligibility response. The
// employment specific fields depend on the employment category.
type CustomerSummary struct {
	ID                 uint             `json:"id"`
	FullName           string           `json:"full_name"`
	Email              *string          `json:"email"`
	Phone              *string          `json:"phone"`
	TaxID              *string          `json:"tax_id"`
	DateOfBirth        string           `json:"date_of_birth,omitempty"`
	Age                *int             `json:"age"`
	EmploymentCategory string           `json:"employment_category"`
	City               string           `json:"city"`
	Pincode            string           `json:"pincode"`
	ExistingLoan       bool             `json:"existing_loan"`
	NetMonthlySalary   *decimal.Decimal `json:"net_monthly_salary,omitempty"`
	NetAnnualIncome    *decimal.Decimal `json:"net_annual_income,omitempty"`
	Department         string           `json:"department,omitempty"`
	Designation        string           `json:"designation,omitempty"`
	CompanyName        string           `json:"company_name,omitempty"`
}

// NewCustomerSummary renders c for the response.
func NewCustomerSummary(c *model.Customer, age *int) CustomerSummary {
	s := CustomerSummary{
		ID:                 c.ID,
		FullName:           c.FullName,
		Email:              c.Email,
		Phone:              c.Phone,
		TaxID:              c.TaxID,
		DateOfBirth:        FormatDate(c.DateOfBirth),
		Age:                age,
		EmploymentCategory: c.EmploymentCategory,
		City:               c.City,
		Pincode:            c.Pincode,
		ExistingLoan:       c.ExistingLoan,
	}

	monthly := c.MonthlySalary
	annual := c.AnnualIncome
	switch c.EmploymentKind() {
	case model.EmploymentPrivate:
		s.NetMonthlySalary = &monthly
		s.Department = c.Department
		s.Designation = c.Designation
		s.CompanyName = c.EmployerName
	case model.EmploymentGovernment:
		s.NetMonthlySalary = &monthly
		s.Department = c.Department
		s.Designation = c.Designation
	case model.EmploymentSelfEmployed, model.EmploymentSelfEmployedProfessional:
		s.NetAnnualIncome = &annual
	default:
		s.NetMonthlySalary = &monthly
		s.CompanyName = c.EmployerName
	}
	return s
}

// EligibilityResponse is returned after a successful evaluation.
type EligibilityResponse struct {
	Status               string               `json:"status"`
	Message              string               `json:"message"`
	Reference            string               `json:"reference"`
	Strategy             string               `json:"strategy"`
	Customer             CustomerSummary      `json:"customer"`
	CompanyCategory      string               `json:"company_category,omitempty"`
	CheckedOn            string               `json:"checked_on"`
	EligibleProducts     []eligibility.Offer  `json:"eligible_banks"`
	IneligibilityReasons []eligibility.Reason `json:"ineligibility_reasons,omitempty"`
}

// RestrictedResponse is returned when a check is throttled.
type RestrictedResponse struct {
	Status         string `json:"status"`
	Message        string `json:"message"`
	LastCheckedOn  string `json:"last_checked_on"`
	NextEligibleOn string `json:"next_eligible_on"`
}
