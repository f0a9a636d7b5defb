package eligibility

import (
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const notAvailable = "N/A"

// DefaultLoanMultiplier sizes the estimated loan when no explicit cap exists.
var DefaultLoanMultiplier = decimal.NewFromInt(5)

var labelPrinter = message.NewPrinter(language.English)

// loanLabel renders amount as a rounded, grouped rupee figure.
func loanLabel(amount decimal.Decimal) string {
	return labelPrinter.Sprintf("Up to ₹%d", amount.Round(0).IntPart())
}

func intRange(min, max *int) string {
	if min == nil || max == nil {
		return notAvailable
	}
	return strconv.Itoa(*min) + "-" + strconv.Itoa(*max)
}

func decimalRange(min, max decimal.NullDecimal) string {
	if !min.Valid || !max.Valid {
		return notAvailable
	}
	return min.Decimal.String() + "-" + max.Decimal.String()
}
