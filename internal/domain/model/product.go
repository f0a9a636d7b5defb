package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a loan product offered by a bank. Nil bounds are unrestricted.
type Product struct {
	ID            uint                `gorm:"primaryKey" json:"id"`
	BankID        uint                `gorm:"not null;uniqueIndex:idx_products_bank_title" json:"bank"`
	Title         string              `gorm:"size:150;not null" json:"product_title"`
	TitleKey      string              `gorm:"size:150;not null;uniqueIndex:idx_products_bank_title" json:"-"`
	MinAge        *int                `json:"min_age"`
	MaxAge        *int                `json:"max_age"`
	MinTenure     *int                `json:"min_tenure"`
	MaxTenure     *int                `json:"max_tenure"`
	MinLoanAmount decimal.NullDecimal `gorm:"type:decimal(14,2)" json:"min_loan_amount"`
	MaxLoanAmount decimal.NullDecimal `gorm:"type:decimal(14,2)" json:"max_loan_amount"`
	MinRate       decimal.NullDecimal `gorm:"type:decimal(5,2)" json:"min_rate_of_interest"`
	MaxRate       decimal.NullDecimal `gorm:"type:decimal(5,2)" json:"max_rate_of_interest"`
	FOIR          string              `gorm:"column:foir;size:255" json:"foir"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SalaryCriteria []SalaryCriteria `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"salary_criteria,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.TitleKey = NormalizeKey(p.Title)
	return nil
}

// HasAgeRange reports whether either age bound is declared.
func (p *Product) HasAgeRange() bool {
	return p.MinAge != nil || p.MaxAge != nil
}

// CriteriaFor returns the salary criteria for categoryID in insertion order.
func (p *Product) CriteriaFor(categoryID uint) []SalaryCriteria {
	var out []SalaryCriteria
	for _, c := range p.SalaryCriteria {
		if c.CategoryID == categoryID {
			out = append(out, c)
		}
	}
	return out
}
