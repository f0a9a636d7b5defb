package model

import (
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

var pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)

// IsValidPincode reports whether code is exactly six ASCII digits.
func IsValidPincode(code string) bool {
	return pincodePattern.MatchString(code)
}

// SplitPincodes splits a comma separated list, trimming each token and
// dropping empty ones. Order is preserved and duplicates are removed.
func SplitPincodes(raw string) []string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// PartitionPincodes separates valid and invalid entries of a comma separated list.
func PartitionPincodes(raw string) (valid, invalid []string) {
	for _, p := range SplitPincodes(raw) {
		if IsValidPincode(p) {
			valid = append(valid, p)
		} else {
			invalid = append(invalid, p)
		}
	}
	return valid, invalid
}

// Bank is a lender serving a set of pincodes.
type Bank struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"bank_name"`
	NameKey  string `gorm:"size:100;not null;uniqueIndex" json:"-"`
	State    string `gorm:"size:50" json:"state"`
	Pincodes string `gorm:"type:text;not null" json:"pincode"`
	LogoURL  string `gorm:"size:500" json:"bank_image_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Products  []Product  `gorm:"foreignKey:BankID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
	LoanRules []LoanRule `gorm:"foreignKey:BankID;constraint:OnDelete:CASCADE" json:"loan_rules,omitempty"`
}

func (Bank) TableName() string {
	return "banks"
}

// BeforeSave keeps the case-insensitive uniqueness key in sync.
func (b *Bank) BeforeSave(tx *gorm.DB) error {
	b.NameKey = NormalizeKey(b.Name)
	return nil
}

// PincodeList returns the served pincodes.
func (b *Bank) PincodeList() []string {
	return SplitPincodes(b.Pincodes)
}

// HasPincode reports whether the bank serves code.
func (b *Bank) HasPincode(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	for _, p := range b.PincodeList() {
		if p == code {
			return true
		}
	}
	return false
}

// SetPincodes stores codes in canonical "a,b,c" form.
func (b *Bank) SetPincodes(codes []string) {
	b.Pincodes = strings.Join(SplitPincodes(strings.Join(codes, ",")), ",")
}
