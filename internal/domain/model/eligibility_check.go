package model

import (
	"time"

	"gorm.io/datatypes"
)

// EligibilityCheck is the persisted outcome of one eligibility run.
type EligibilityCheck struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Reference     string         `gorm:"size:20;not null;uniqueIndex" json:"reference"`
	CustomerID    uint           `gorm:"not null;index:idx_eligibility_checks_customer_created" json:"customer"`
	Strategy      string         `gorm:"size:30;not null" json:"strategy"`
	CheckedOn     time.Time      `gorm:"type:date;not null" json:"checked_on"`
	Age           *int           `json:"age"`
	Category      string         `gorm:"size:100" json:"company_category"`
	EligibleCount int            `gorm:"not null;default:0" json:"eligible_count"`
	Offers        datatypes.JSON `json:"offers"`
	Reasons       datatypes.JSON `json:"reasons"`
	CreatedAt     time.Time      `gorm:"index:idx_eligibility_checks_customer_created" json:"created_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (EligibilityCheck) TableName() string {
	return "eligibility_checks"
}
