package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Employment categories recognised in customer profiles. Other values are
// accepted as free text.
const (
	EmploymentPrivate                  = "private employee"
	EmploymentGovernment               = "government"
	EmploymentSelfEmployed             = "self employed"
	EmploymentSelfEmployedProfessional = "self employed professional"
)

// MonthsPerYear converts monthly salary into annual income.
var MonthsPerYear = decimal.NewFromInt(12)

// Customer is a loan applicant profile.
//
// Email, phone and tax id are each unique when present; any one of them
// resolves the customer's identity.
type Customer struct {
	ID                       uint            `gorm:"primaryKey" json:"id"`
	FullName                 string          `gorm:"size:100;not null" json:"full_name"`
	Email                    *string         `gorm:"size:100;uniqueIndex" json:"email"`
	Phone                    *string         `gorm:"size:15;uniqueIndex" json:"phone"`
	TaxID                    *string         `gorm:"column:tax_id;size:20;uniqueIndex" json:"tax_id"`
	DateOfBirth              *time.Time      `gorm:"type:date" json:"date_of_birth"`
	EmploymentCategory       string          `gorm:"size:50" json:"employment_category"`
	MonthlySalary            decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"monthly_salary"`
	AnnualIncome             decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"annual_income"`
	City                     string          `gorm:"size:50" json:"city"`
	Pincode                  string          `gorm:"size:6;index" json:"pincode"`
	ExistingLoan             bool            `gorm:"not null;default:false" json:"existing_loan"`
	EmployerName             string          `gorm:"size:100" json:"employer_name"`
	Department               string          `gorm:"size:100" json:"department"`
	Designation              string          `gorm:"size:100" json:"designation"`
	LastEligibilityCheckDate *time.Time      `gorm:"type:date" json:"last_eligibility_check_date"`
	CreatedAt                time.Time       `json:"created_at"`
	UpdatedAt                time.Time       `json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

// SetMonthlySalary updates the salary and the derived annual income.
func (c *Customer) SetMonthlySalary(salary decimal.Decimal) {
	c.MonthlySalary = salary
	c.AnnualIncome = salary.Mul(MonthsPerYear)
}

// EmploymentKind returns the normalised employment category.
func (c *Customer) EmploymentKind() string {
	return NormalizeKey(c.EmploymentCategory)
}

// Identity holds the fields that resolve a customer. Empty fields are ignored.
type Identity struct {
	Email string
	Phone string
	TaxID string
}

// IsEmpty reports whether no identity field is set.
func (i Identity) IsEmpty() bool {
	return i.Email == "" && i.Phone == "" && i.TaxID == ""
}

// NormalizeKey lowercases and trims s for case-insensitive comparisons.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// StringPtr returns nil for blank strings.
func StringPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
