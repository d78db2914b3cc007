package pricing

import (
	"rotaclick/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// PublishedRate is a carrier cost rate with the platform margin applied.
type PublishedRate struct {
	CostPricePerKg      decimal.Decimal `json:"cost_price_per_kg"`
	CostMinPrice        decimal.Decimal `json:"cost_min_price"`
	MarginPercent       decimal.Decimal `json:"margin_percent"`
	PublishedPricePerKg decimal.Decimal `json:"published_price_per_kg"`
	PublishedMinPrice   decimal.Decimal `json:"published_min_price"`
}

// Quote is the price of a taxable weight under a PublishedRate.
//
// CostPrice goes to the carrier, MarginAmount to the platform, and
// CostPrice + MarginAmount == Price.
type Quote struct {
	TaxableWeight decimal.Decimal `json:"taxable_weight"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	Price         decimal.Decimal `json:"price"`
	MarginAmount  decimal.Decimal `json:"margin_amount"`
}

func ValidateMargin(marginPercent decimal.Decimal) error {
	if marginPercent.LessThan(MinMarginPercent) || marginPercent.GreaterThan(MaxMarginPercent) {
		return ErrMarginOutOfRange
	}
	return nil
}

func markupFactor(marginPercent decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(marginPercent.Div(hundred))
}

// ApplyMargin marks up both the per-kg cost and the minimum charge by the
// same percentage. Route creation, route update and bulk import all go
// through here.
func ApplyMargin(costPricePerKg, costMinPrice, marginPercent decimal.Decimal) (PublishedRate, error) {
	if err := ValidateMargin(marginPercent); err != nil {
		return PublishedRate{}, err
	}
	costPricePerKg = RoundRate(costPricePerKg)
	if !costPricePerKg.IsPositive() {
		return PublishedRate{}, ErrInvalidCostPrice
	}
	if costMinPrice.IsNegative() {
		return PublishedRate{}, ErrInvalidMinPrice
	}
	costMinPrice = RoundMoney(costMinPrice)

	factor := markupFactor(marginPercent)
	return PublishedRate{
		CostPricePerKg:      costPricePerKg,
		CostMinPrice:        costMinPrice,
		MarginPercent:       marginPercent,
		PublishedPricePerKg: RoundRate(costPricePerKg.Mul(factor)),
		PublishedMinPrice:   RoundMoney(costMinPrice.Mul(factor)),
	}, nil
}

// QuotePrice prices a taxable weight: weight times rate, never below the
// minimum charge. The cost side is computed the same way so the carrier
// share is exact.
func QuotePrice(taxableWeight decimal.Decimal, rate PublishedRate) Quote {
	price := RoundMoney(maxDecimal(taxableWeight.Mul(rate.PublishedPricePerKg), rate.PublishedMinPrice))
	cost := RoundMoney(maxDecimal(taxableWeight.Mul(rate.CostPricePerKg), rate.CostMinPrice))
	if cost.GreaterThan(price) {
		cost = price
	}
	return Quote{
		TaxableWeight: taxableWeight,
		CostPrice:     cost,
		Price:         price,
		MarginAmount:  price.Sub(cost),
	}
}

// RateOf reads the stored rate of a route.
func RateOf(route entities.FreightRoute) PublishedRate {
	return PublishedRate{
		CostPricePerKg:      route.CostPricePerKg,
		CostMinPrice:        route.CostMinPrice,
		MarginPercent:       route.MarginPercent,
		PublishedPricePerKg: route.PublishedPricePerKg,
		PublishedMinPrice:   route.PublishedMinPrice,
	}
}

// EstimateRate is the generic rate used when no carrier serves a route.
// It has no cost side.
func EstimateRate(pricePerKg, minPrice decimal.Decimal) PublishedRate {
	return PublishedRate{
		PublishedPricePerKg: RoundRate(pricePerKg),
		PublishedMinPrice:   RoundMoney(minPrice),
	}
}
