package response

import (
	"time"

	"rotaclick/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type FreightRouteResponse struct {
	ID                  string          `json:"id"`
	CarrierID           string          `json:"carrier_id"`
	OriginStart         string          `json:"origin_start"`
	OriginEnd           string          `json:"origin_end,omitempty"`
	DestStart           string          `json:"dest_start"`
	DestEnd             string          `json:"dest_end,omitempty"`
	CostPricePerKg      decimal.Decimal `json:"cost_price_per_kg"`
	CostMinPrice        decimal.Decimal `json:"cost_min_price"`
	MarginPercent       decimal.Decimal `json:"margin_percent"`
	PublishedPricePerKg decimal.Decimal `json:"published_price_per_kg"`
	PublishedMinPrice   decimal.Decimal `json:"published_min_price"`
	DeadlineDays        int             `json:"deadline_days"`
	Status              string          `json:"status"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

func FromFreightRoute(r entities.FreightRoute) FreightRouteResponse {
	return FreightRouteResponse{
		ID:                  r.ID,
		CarrierID:           r.CarrierID,
		OriginStart:         r.Origin.Start,
		OriginEnd:           r.Origin.End,
		DestStart:           r.Destination.Start,
		DestEnd:             r.Destination.End,
		CostPricePerKg:      r.CostPricePerKg,
		CostMinPrice:        r.CostMinPrice,
		MarginPercent:       r.MarginPercent,
		PublishedPricePerKg: r.PublishedPricePerKg,
		PublishedMinPrice:   r.PublishedMinPrice,
		DeadlineDays:        r.DeadlineDays,
		Status:              string(r.Status),
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
	}
}

func FromFreightRoutes(list []entities.FreightRoute) []FreightRouteResponse {
	out := make([]FreightRouteResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromFreightRoute(r))
	}
	return out
}

type RateImportResponse struct {
	ImportedCount int                    `json:"imported_count"`
	FailedCount   int                    `json:"failed_count"`
	Succeeded     []FreightRouteResponse `json:"succeeded"`
	Failed        []entities.RowError    `json:"failed"`
}

func FromBatchResult(b entities.BatchResult) RateImportResponse {
	failed := b.Failed
	if failed == nil {
		failed = []entities.RowError{}
	}
	return RateImportResponse{
		ImportedCount: b.ImportedCount(),
		FailedCount:   len(b.Failed),
		Succeeded:     FromFreightRoutes(b.Succeeded),
		Failed:        failed,
	}
}
