// Package pricing holds the freight pricing rules: cargo weights, the margin
// engine, payout (repasse) split and CEP matching. Everything here is pure;
// callers bring the data and persist the results.
package pricing

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	moneyPlaces  = 2
	ratePlaces   = 4
	weightPlaces = 3
)

var (
	// CubingFactor converts m³ into kg of cubed (volumetric) weight.
	CubingFactor = decimal.NewFromInt(300)

	MinMarginPercent = decimal.Zero
	MaxMarginPercent = decimal.NewFromInt(200)

	hundred = decimal.NewFromInt(100)
)

var (
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrNegativeMeasure    = errors.New("weight and dimensions cannot be negative")
	ErrMarginOutOfRange   = errors.New("margin percent must be between 0 and 200")
	ErrInvalidCostPrice   = errors.New("cost price per kg must be positive")
	ErrInvalidMinPrice    = errors.New("minimum price cannot be negative")
	ErrInvalidPrice       = errors.New("price must be positive")
	ErrInvalidCarrierCost = errors.New("carrier cost must be between zero and the price")
	ErrInvalidPaymentTerm = errors.New("payment term must be 7, 21 or 28 days")
	ErrInvalidZipCode     = errors.New("invalid CEP")
	ErrInvalidZipRange    = errors.New("invalid CEP range")
)

// RoundMoney rounds currency values to cents, half away from zero.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

// RoundRate rounds per-kg rates to 4 decimal places.
func RoundRate(d decimal.Decimal) decimal.Decimal {
	return d.Round(ratePlaces)
}

// RoundWeight rounds kilograms to grams.
func RoundWeight(d decimal.Decimal) decimal.Decimal {
	return d.Round(weightPlaces)
}

func maxDecimal(a, b decimal.Decimal) decimal.Decimal {
	if a.GreaterThan(b) {
		return a
	}
	return b
}
