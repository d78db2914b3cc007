package usecase

import (
	"context"
	"errors"
	"rotaclick/internal/domain/entities"
	"rotaclick/internal/domain/pricing"
	"rotaclick/internal/usecase/interfaces"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrNoRouteAvailable  = errors.New("no route available")
	ErrZeroTaxableWeight = errors.New("taxable weight must be positive")
	ErrInvalidZipCode    = errors.New("invalid zip code")
	ErrRouteNotFound     = errors.New("freight route not found")
	ErrRouteInactive     = errors.New("freight route is inactive")
	ErrRouteMismatch     = errors.New("freight route does not serve the given zip codes")
)

var quotesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rotaclick_quotes_total",
		Help: "Freight quotes served, by outcome",
	},
	[]string{"outcome"},
)

type QuoteRequest struct {
	OriginZip string
	DestZip   string
	// CarrierID restricts the search to one carrier when set.
	CarrierID string
	Items     []entities.CargoItem
}

// QuoteOffer is one priced option for the customer.
type QuoteOffer struct {
	RouteID             string          `json:"route_id,omitempty"`
	CarrierID           string          `json:"carrier_id,omitempty"`
	CarrierName         string          `json:"carrier_name,omitempty"`
	PublishedPricePerKg decimal.Decimal `json:"published_price_per_kg"`
	Price               decimal.Decimal `json:"price"`
	CostPrice           decimal.Decimal `json:"-"`
	MarginPercent       decimal.Decimal `json:"-"`
	DeadlineDays        int             `json:"deadline_days"`
	// Estimated offers come from the fallback table and cannot be bought.
	Estimated bool `json:"estimated"`
}

type QuoteResult struct {
	OriginZip string               `json:"origin_zip"`
	DestZip   string               `json:"dest_zip"`
	Weights   pricing.CargoWeights `json:"weights"`
	Offers    []QuoteOffer         `json:"offers"`
}

// IQuoteUseCase resolves routes and prices cargo for customers.
type IQuoteUseCase interface {
	Quote(ctx context.Context, req QuoteRequest) (QuoteResult, error)
	ResolveRoutes(ctx context.Context, carrierID, originZip, destZip string) ([]entities.FreightRoute, error)
	QuoteRoute(ctx context.Context, routeID, originZip, destZip string, items []entities.CargoItem) (QuoteOffer, pricing.CargoWeights, error)
}

type QuoteUseCase struct {
	routes   interfaces.IFreightRouteRepository
	carriers interfaces.ICarrierRepository
	settings interfaces.IPlatformSettingsRepository
	logger   *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(routes interfaces.IFreightRouteRepository, carriers interfaces.ICarrierRepository, settings interfaces.IPlatformSettingsRepository, logger *zap.Logger) *QuoteUseCase {
	return &QuoteUseCase{routes: routes, carriers: carriers, settings: settings, logger: logger}
}

// ResolveRoutes returns the active routes of approved carriers whose origin
// and destination ranges contain the given CEPs.
func (u *QuoteUseCase) ResolveRoutes(ctx context.Context, carrierID, originZip, destZip string) ([]entities.FreightRoute, error) {
	origin, err := pricing.NormalizeCEP(originZip)
	if err != nil {
		return nil, ErrInvalidZipCode
	}
	dest, err := pricing.NormalizeCEP(destZip)
	if err != nil {
		return nil, ErrInvalidZipCode
	}

	carrierID = strings.TrimSpace(carrierID)
	var candidates []entities.FreightRoute
	if carrierID != "" {
		candidates, err = u.routes.ListByCarrier(ctx, carrierID)
	} else {
		candidates, err = u.routes.ListActive(ctx)
	}
	if err != nil {
		return nil, err
	}

	approved := map[string]bool{}
	var out []entities.FreightRoute
	for _, r := range candidates {
		if !r.IsActive() || !pricing.RouteMatches(r, origin, dest) {
			continue
		}
		ok, seen := approved[r.CarrierID]
		if !seen {
			c, err := u.carriers.GetByID(ctx, r.CarrierID)
			if err != nil {
				return nil, err
			}
			ok = c.IsApproved()
			approved[r.CarrierID] = ok
		}
		if ok {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoRouteAvailable
	}
	return out, nil
}

// Quote prices the cargo on every matching route, cheapest first. When no
// route serves the pair it answers with a single estimated offer built from
// the fallback settings.
func (u *QuoteUseCase) Quote(ctx context.Context, req QuoteRequest) (QuoteResult, error) {
	weights, err := pricing.AggregateCargo(req.Items)
	if err != nil {
		quotesTotal.WithLabelValues("invalid").Inc()
		return QuoteResult{}, err
	}
	if weights.IsZero() {
		quotesTotal.WithLabelValues("invalid").Inc()
		return QuoteResult{}, ErrZeroTaxableWeight
	}

	routes, err := u.ResolveRoutes(ctx, req.CarrierID, req.OriginZip, req.DestZip)
	if err != nil && !errors.Is(err, ErrNoRouteAvailable) {
		if errors.Is(err, ErrInvalidZipCode) {
			quotesTotal.WithLabelValues("invalid").Inc()
		}
		return QuoteResult{}, err
	}

	origin, _ := pricing.NormalizeCEP(req.OriginZip)
	dest, _ := pricing.NormalizeCEP(req.DestZip)
	result := QuoteResult{OriginZip: origin, DestZip: dest, Weights: weights}

	if errors.Is(err, ErrNoRouteAvailable) {
		settings, err := loadPlatformSettings(ctx, u.settings, u.logger)
		if err != nil {
			return QuoteResult{}, err
		}
		rate := pricing.EstimateRate(settings.FallbackPricePerKg, settings.FallbackMinPrice)
		q := pricing.QuotePrice(weights.TaxableWeight, rate)
		result.Offers = []QuoteOffer{{
			PublishedPricePerKg: rate.PublishedPricePerKg,
			Price:               q.Price,
			DeadlineDays:        settings.FallbackDeadlineDays,
			Estimated:           true,
		}}
		quotesTotal.WithLabelValues("fallback").Inc()
		u.logger.Info("[quote][usecase] fallback estimate",
			zap.String("origin", origin),
			zap.String("dest", dest),
			zap.String("price", q.Price.StringFixed(2)))
		return result, nil
	}

	names := map[string]string{}
	for _, r := range routes {
		if _, ok := names[r.CarrierID]; !ok {
			c, err := u.carriers.GetByID(ctx, r.CarrierID)
			if err != nil {
				return QuoteResult{}, err
			}
			names[r.CarrierID] = carrierDisplayName(c)
		}
		offer := offerFor(r, weights)
		offer.CarrierName = names[r.CarrierID]
		result.Offers = append(result.Offers, offer)
	}
	sort.SliceStable(result.Offers, func(i, j int) bool {
		a, b := result.Offers[i], result.Offers[j]
		if !a.Price.Equal(b.Price) {
			return a.Price.LessThan(b.Price)
		}
		return a.DeadlineDays < b.DeadlineDays
	})
	quotesTotal.WithLabelValues("offers").Inc()
	return result, nil
}

// QuoteRoute re-prices a single route, as done at checkout.
func (u *QuoteUseCase) QuoteRoute(ctx context.Context, routeID, originZip, destZip string, items []entities.CargoItem) (QuoteOffer, pricing.CargoWeights, error) {
	origin, err := pricing.NormalizeCEP(originZip)
	if err != nil {
		return QuoteOffer{}, pricing.CargoWeights{}, ErrInvalidZipCode
	}
	dest, err := pricing.NormalizeCEP(destZip)
	if err != nil {
		return QuoteOffer{}, pricing.CargoWeights{}, ErrInvalidZipCode
	}
	weights, err := pricing.AggregateCargo(items)
	if err != nil {
		return QuoteOffer{}, pricing.CargoWeights{}, err
	}
	if weights.IsZero() {
		return QuoteOffer{}, pricing.CargoWeights{}, ErrZeroTaxableWeight
	}

	route, err := u.routes.GetByID(ctx, strings.TrimSpace(routeID))
	if err != nil {
		return QuoteOffer{}, pricing.CargoWeights{}, err
	}
	if route.ID == "" {
		return QuoteOffer{}, pricing.CargoWeights{}, ErrRouteNotFound
	}
	if !route.IsActive() {
		return QuoteOffer{}, pricing.CargoWeights{}, ErrRouteInactive
	}
	if !pricing.RouteMatches(route, origin, dest) {
		return QuoteOffer{}, pricing.CargoWeights{}, ErrRouteMismatch
	}
	carrier, err := u.carriers.GetByID(ctx, route.CarrierID)
	if err != nil {
		return QuoteOffer{}, pricing.CargoWeights{}, err
	}
	if !carrier.IsApproved() {
		return QuoteOffer{}, pricing.CargoWeights{}, ErrNoRouteAvailable
	}

	offer := offerFor(route, weights)
	offer.CarrierName = carrierDisplayName(carrier)
	return offer, weights, nil
}

func offerFor(r entities.FreightRoute, weights pricing.CargoWeights) QuoteOffer {
	rate := pricing.RateOf(r)
	q := pricing.QuotePrice(weights.TaxableWeight, rate)
	return QuoteOffer{
		RouteID:             r.ID,
		CarrierID:           r.CarrierID,
		PublishedPricePerKg: rate.PublishedPricePerKg,
		Price:               q.Price,
		CostPrice:           q.CostPrice,
		MarginPercent:       rate.MarginPercent,
		DeadlineDays:        r.DeadlineDays,
	}
}

func carrierDisplayName(c entities.Carrier) string {
	if c.TradeName != "" {
		return c.TradeName
	}
	return c.CompanyName
}
