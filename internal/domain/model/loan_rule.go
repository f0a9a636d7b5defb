package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LoanRule is the flat, per-bank eligibility rule used by the legacy
// matching strategy.
type LoanRule struct {
	ID         uint                `gorm:"primaryKey" json:"id"`
	BankID     uint                `gorm:"not null;uniqueIndex:idx_loan_rules_bank_job" json:"bank"`
	JobType    string              `gorm:"size:50;not null" json:"job_type"`
	JobTypeKey string              `gorm:"size:50;not null;uniqueIndex:idx_loan_rules_bank_job" json:"-"`
	MinSalary  decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"min_salary"`
	MinAge     int                 `gorm:"not null" json:"min_age"`
	MaxAge     int                 `gorm:"not null" json:"max_age"`
	Tenure     *int                `json:"tenure"`
	MinRate    decimal.NullDecimal `gorm:"type:decimal(5,2)" json:"min_rate"`
	MaxRate    decimal.NullDecimal `gorm:"type:decimal(5,2)" json:"max_rate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LoanRule) TableName() string {
	return "loan_rules"
}

func (r *LoanRule) BeforeSave(tx *gorm.DB) error {
	r.JobTypeKey = NormalizeKey(r.JobType)
	return nil
}

// JobTypeKeyOrNormalized returns the stored key, normalising JobType when the
// key has not been populated yet.
func (r *LoanRule) JobTypeKeyOrNormalized() string {
	if r.JobTypeKey != "" {
		return r.JobTypeKey
	}
	return NormalizeKey(r.JobType)
}
