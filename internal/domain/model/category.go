package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UnlistedCategoryName is the fallback category for unknown employers.
const UnlistedCategoryName = "UNLISTED"

// CompanyCategory groups employers that share salary thresholds.
type CompanyCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	NameKey   string    `gorm:"size:100;not null;uniqueIndex" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CompanyCategory) TableName() string {
	return "company_categories"
}

func (c *CompanyCategory) BeforeSave(tx *gorm.DB) error {
	c.NameKey = NormalizeKey(c.Name)
	return nil
}

// Company maps an employer name to its category.
type Company struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	Name       string           `gorm:"size:150;not null" json:"name"`
	NameKey    string           `gorm:"size:150;not null;uniqueIndex" json:"-"`
	CategoryID uint             `gorm:"not null;index" json:"category"`
	Category   *CompanyCategory `gorm:"foreignKey:CategoryID" json:"category_detail,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func (Company) TableName() string {
	return "companies"
}

func (c *Company) BeforeSave(tx *gorm.DB) error {
	c.NameKey = NormalizeKey(c.Name)
	return nil
}

// SalaryCriteria is the minimum monthly salary a product requires from
// employees of one category. A product may carry several rows for the same
// category; the lowest id is evaluated first.
type SalaryCriteria struct {
	ID         uint             `gorm:"primaryKey" json:"id"`
	ProductID  uint             `gorm:"not null;index" json:"product"`
	CategoryID uint             `gorm:"not null;index" json:"category"`
	MinSalary  decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"min_salary"`
	Category   *CompanyCategory `gorm:"foreignKey:CategoryID" json:"category_detail,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func (SalaryCriteria) TableName() string {
	return "salary_criteria"
}
