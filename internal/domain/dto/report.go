package dto

import (
	"time"

	"gorm.io/datatypes"
)

// EligibilityCheckView is a customer's latest check.
type EligibilityCheckView struct {
	Reference       string         `json:"reference"`
	CustomerID      uint           `json:"customer"`
	CustomerName    string         `json:"customer_name"`
	Email           *string        `json:"email"`
	Phone           *string        `json:"phone"`
	Strategy        string         `json:"strategy"`
	CheckedOn       string         `json:"checked_on"`
	Age             *int           `json:"age"`
	CompanyCategory string         `json:"company_category"`
	EligibleCount   int            `json:"eligible_count"`
	Offers          datatypes.JSON `json:"eligible_banks"`
	Reasons         datatypes.JSON `json:"ineligibility_reasons"`
	CreatedAt       time.Time      `json:"created_at"`
}
