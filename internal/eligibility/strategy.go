package eligibility

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Strategy names.
const (
	StrategyProduct    = "product"
	StrategyLegacyRule = "legacy_rule"
)

// Strategy evaluates a profile against a snapshot.
type Strategy interface {
	Name() string
	Evaluate(profile Profile, snapshot *Snapshot) (*Report, error)
}

// Options tune both strategies.
type Options struct {
	// LoanMultiplier is applied to the monthly salary when a product has no
	// maximum loan amount. Zero selects DefaultLoanMultiplier.
	LoanMultiplier decimal.Decimal
}

func (o Options) multiplier() decimal.Decimal {
	if o.LoanMultiplier.IsPositive() {
		return o.LoanMultiplier
	}
	return DefaultLoanMultiplier
}

// NewStrategy returns the strategy registered under name.
func NewStrategy(name string, opts Options) (Strategy, error) {
	switch name {
	case "", StrategyProduct:
		return NewProductStrategy(opts), nil
	case StrategyLegacyRule:
		return NewLegacyRuleStrategy(opts), nil
	default:
		return nil, fmt.Errorf("unknown eligibility strategy %q", name)
	}
}
