package dto

import "time"

// InterestRequest records a customer interest.
type InterestRequest struct {
	CustomerID uint  `json:"customer" validate:"required"`
	BankID     uint  `json:"bank" validate:"required"`
	ProductID  *uint `json:"product"`
}

// InterestView is one interest with display names resolved.
type InterestView struct {
	ID           uint      `json:"id"`
	CustomerID   uint      `json:"customer"`
	CustomerName string    `json:"customer_name"`
	BankID       uint      `json:"bank"`
	BankName     string    `json:"bank_name"`
	ProductID    *uint     `json:"product"`
	ProductTitle string    `json:"product_title,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// InterestListResponse wraps an interest listing.
type InterestListResponse struct {
	Count int            `json:"count"`
	Data  []InterestView `json:"data"`
}
