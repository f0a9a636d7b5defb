package model

import "time"

// ManagedCard is a marketing card shown on the customer portal.
type ManagedCard struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:150;not null" json:"title"`
	Subtitle  string    `gorm:"size:255" json:"subtitle"`
	LinkURL   string    `gorm:"size:500" json:"link_url"`
	ImageURL  string    `gorm:"size:500" json:"image_url"`
	Active    bool      `gorm:"not null;index" json:"active"`
	SortOrder int       `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (ManagedCard) TableName() string {
	return "managed_cards"
}
