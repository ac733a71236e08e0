package pricing

import (
	"errors"
	"fmt"
	"math"

	"printlite/internal/domain/entities"
)

var (
	ErrInvalidPageCount = errors.New("page count must be positive")
	ErrNegativePrice    = errors.New("computed price is negative")
)

// GSTRate is the flat Goods and Services Tax rate applied on the checkout path.
const GSTRate = 0.18

// Per-page tariff, in INR. The double-sided rates are per physical sheet
// (two logical pages) and are an independently specified tariff, not a
// discount on the single-sided rate.
const (
	rateSingleBlackAndWhite = 1.5
	rateSingleColor         = 4.0
	rateDoubleBlackAndWhite = 2.5
	rateDoubleColor         = 8.0
)

// Per-page paper surcharge, added on top of the base rate.
const (
	surchargePremium = 0.5
	surchargeGlossy  = 1.0
)

// Flat binding surcharge.
const (
	bindingSpiralCharge = 25.0
	bindingStapleCharge = 5.0
)

// Options tunes pricing policies that the tariff alone does not pin down.
type Options struct {
	// BindingPerCopy charges the binding surcharge once per copy instead of
	// once per order. The default (false) charges it once per order, applied
	// after the copies multiplication.
	BindingPerCopy bool
}

// Engine computes price breakdowns for a page selection and print settings.
// It is pure and deterministic: identical inputs always produce identical
// breakdowns.
type Engine struct {
	opts Options
}

func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

// ComputePrice maps a selected page count and print settings to a monetary
// breakdown.
//
// includeTax selects between the checkout path (18% GST added) and the
// quick-quote path (no tax, total equals subtotal).
func (e *Engine) ComputePrice(pageCount int, settings entities.PrintSettings, includeTax bool) (entities.PriceBreakdown, error) {
	if pageCount <= 0 {
		return entities.PriceBreakdown{}, fmt.Errorf("%w: got %d", ErrInvalidPageCount, pageCount)
	}
	if err := settings.Validate(); err != nil {
		return entities.PriceBreakdown{}, err
	}

	pageTotal := e.pageTotal(pageCount, settings)
	pageTotal += float64(pageCount) * paperSurcharge(settings.PaperType)

	subtotal := pageTotal * float64(settings.Copies)

	binding := bindingCharge(settings.Binding)
	if e.opts.BindingPerCopy {
		binding *= float64(settings.Copies)
	}
	subtotal = round2(subtotal + binding)

	if subtotal < 0 {
		return entities.PriceBreakdown{}, fmt.Errorf("%w: %f", ErrNegativePrice, subtotal)
	}

	breakdown := entities.PriceBreakdown{
		Subtotal: subtotal,
		Total:    subtotal,
		Currency: entities.CurrencyINR,
	}
	if includeTax {
		breakdown.TaxRate = GSTRate
		breakdown.TaxAmount = round2(subtotal * GSTRate)
		breakdown.Total = round2(subtotal + breakdown.TaxAmount)
	}
	return breakdown, nil
}

// pageTotal bills the selection at the base tariff, before paper surcharge
// and copies. For double-sided selections with an odd page count, the final
// unpaired page is billed at the single-sided rate for its color mode.
func (e *Engine) pageTotal(pageCount int, settings entities.PrintSettings) float64 {
	single := singleRate(settings.ColorMode)
	if settings.Sides != entities.SidesDouble {
		return float64(pageCount) * single
	}

	sheets := pageCount / 2
	total := float64(sheets) * doubleSheetRate(settings.ColorMode)
	if pageCount%2 == 1 {
		total += single
	}
	return total
}

func singleRate(mode entities.ColorMode) float64 {
	if mode == entities.ColorModeColor {
		return rateSingleColor
	}
	return rateSingleBlackAndWhite
}

func doubleSheetRate(mode entities.ColorMode) float64 {
	if mode == entities.ColorModeColor {
		return rateDoubleColor
	}
	return rateDoubleBlackAndWhite
}

func paperSurcharge(paper entities.PaperType) float64 {
	switch paper {
	case entities.PaperTypePremium:
		return surchargePremium
	case entities.PaperTypeGlossy:
		return surchargeGlossy
	}
	return 0
}

func bindingCharge(binding entities.Binding) float64 {
	switch binding {
	case entities.BindingSpiral:
		return bindingSpiralCharge
	case entities.BindingStaple:
		return bindingStapleCharge
	}
	return 0
}

// round2 rounds to 2 decimal places, half up on the cent value.
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
