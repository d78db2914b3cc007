package request

import (
	"strings"

	"rotaclick/internal/domain/entities"
	"rotaclick/internal/usecase"

	"github.com/shopspring/decimal"
)

type RouteRequest struct {
	OriginStart    string           `json:"origin_start" binding:"required"`
	OriginEnd      string           `json:"origin_end"`
	DestStart      string           `json:"dest_start" binding:"required"`
	DestEnd        string           `json:"dest_end"`
	CostPricePerKg decimal.Decimal  `json:"cost_price_per_kg"`
	CostMinPrice   decimal.Decimal  `json:"cost_min_price"`
	MarginPercent  *decimal.Decimal `json:"margin_percent"`
	DeadlineDays   int              `json:"deadline_days" binding:"required,gte=1"`
}

func (r RouteRequest) ToRouteInput() usecase.RouteInput {
	return usecase.RouteInput{
		OriginStart:    strings.TrimSpace(r.OriginStart),
		OriginEnd:      strings.TrimSpace(r.OriginEnd),
		DestStart:      strings.TrimSpace(r.DestStart),
		DestEnd:        strings.TrimSpace(r.DestEnd),
		CostPricePerKg: r.CostPricePerKg,
		CostMinPrice:   r.CostMinPrice,
		MarginPercent:  r.MarginPercent,
		DeadlineDays:   r.DeadlineDays,
	}
}

type RateRowRequest struct {
	Origin         string `json:"origin"`
	OriginEnd      string `json:"origin_end"`
	Destination    string `json:"destination"`
	DestinationEnd string `json:"destination_end"`
	CostPerKg      string `json:"cost_per_kg"`
	MinPrice       string `json:"min_price"`
	DeadlineDays   string `json:"deadline_days"`
}

// RateImportRequest is the JSON alternative to a spreadsheet upload.
type RateImportRequest struct {
	MarginPercent *decimal.Decimal `json:"margin_percent"`
	Rows          []RateRowRequest `json:"rows" binding:"required,min=1"`
}

func (r RateImportRequest) ToImportCommand(carrierID string) usecase.ImportCommand {
	cmd := usecase.ImportCommand{CarrierID: carrierID, MarginPercent: r.MarginPercent}
	for i, row := range r.Rows {
		cmd.Rows = append(cmd.Rows, rateSheetRow(i+1, row))
	}
	return cmd
}

func rateSheetRow(line int, r RateRowRequest) entities.RateSheetRow {
	return entities.RateSheetRow{
		Line:           line,
		Origin:         strings.TrimSpace(r.Origin),
		OriginEnd:      strings.TrimSpace(r.OriginEnd),
		Destination:    strings.TrimSpace(r.Destination),
		DestinationEnd: strings.TrimSpace(r.DestinationEnd),
		CostPerKg:      strings.TrimSpace(r.CostPerKg),
		MinPrice:       strings.TrimSpace(r.MinPrice),
		DeadlineDays:   strings.TrimSpace(r.DeadlineDays),
	}
}
