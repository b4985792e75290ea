package domain

import "github.com/shopspring/decimal"

// Tax is the VAT rate included in every price.
const Tax = 0.21

// Billable is implemented by anything that renders a bill.
type Billable interface {
	Bill() string
	TaxValue(total float64) float64
}

// TaxValue returns the tax share already contained in a tax-inclusive total.
func TaxValue(total float64) float64 {
	return total - total/(1+Tax)
}

// formatFixed renders v with the given number of decimals, rounding half up on
// the shortest decimal representation of v. 0.25 renders as "0.3".
func formatFixed(v float64, places int32) string {
	return decimal.NewFromFloat(v).StringFixed(places)
}
