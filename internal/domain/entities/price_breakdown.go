package entities

// CurrencyINR is the only currency the storefront bills in.
const CurrencyINR = "INR"

// PriceBreakdown is the computed, immutable result of a price calculation.
//
// Monetary representation:
//   - All amounts are rounded to 2 decimal places (round half up on the cent).
//   - TaxRate is 0.18 (GST) on the checkout path and 0 on the quick-quote path.
type PriceBreakdown struct {
	Subtotal  float64 `json:"subtotal"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`
	TaxRate   float64 `json:"tax_rate"`
	Currency  string  `json:"currency"`
}
