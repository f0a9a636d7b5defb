package dto

// CardRequest creates or updates a managed card.
type CardRequest struct {
	Title     string `json:"title" validate:"required,max=150"`
	Subtitle  string `json:"subtitle" validate:"max=255"`
	LinkURL   string `json:"link_url" validate:"omitempty,url,max=500"`
	Active    *bool  `json:"active"`
	SortOrder int    `json:"sort_order"`
}
