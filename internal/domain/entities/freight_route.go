package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// RouteStatus tells whether a route is offered in quotes.
//
// Routes referenced by historical freights are never removed; they move to
// inactive and stop being quoted.
type RouteStatus string

const (
	RouteStatusAtiva   RouteStatus = "ativa"
	RouteStatusInativa RouteStatus = "inativa"
)

// ZipRange is a CEP interval. With End empty the route matches CEPs equal to
// Start or starting with it (a CEP prefix such as "01310").
type ZipRange struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}

// FreightRoute is a carrier rate for an origin/destination pair.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (carrier_id-index): carrier_id
//
// Monetary representation:
//   - CostPricePerKg/CostMinPrice are what the carrier receives.
//   - PublishedPricePerKg/PublishedMinPrice are shown to customers and carry
//     the platform margin.
type FreightRoute struct {
	ID                  string          `json:"id"`
	CarrierID           string          `json:"carrier_id"`
	Origin              ZipRange        `json:"origin"`
	Destination         ZipRange        `json:"destination"`
	CostPricePerKg      decimal.Decimal `json:"cost_price_per_kg"`
	CostMinPrice        decimal.Decimal `json:"cost_min_price"`
	MarginPercent       decimal.Decimal `json:"margin_percent"`
	PublishedPricePerKg decimal.Decimal `json:"published_price_per_kg"`
	PublishedMinPrice   decimal.Decimal `json:"published_min_price"`
	DeadlineDays        int             `json:"deadline_days"`
	Status              RouteStatus     `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func (r FreightRoute) IsActive() bool {
	return r.Status == RouteStatusAtiva
}
