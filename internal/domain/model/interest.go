package model

import "time"

// CustomerInterest records that a customer asked about a bank or product.
type CustomerInterest struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CustomerID uint      `gorm:"not null;index" json:"customer"`
	BankID     uint      `gorm:"not null;index" json:"bank"`
	ProductID  *uint     `gorm:"index" json:"product"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`

	Customer *Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
	Bank     *Bank     `gorm:"foreignKey:BankID;constraint:OnDelete:CASCADE" json:"-"`
	Product  *Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"-"`
}

func (CustomerInterest) TableName() string {
	return "customer_interests"
}
