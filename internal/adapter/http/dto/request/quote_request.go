package request

import (
	"strings"

	"rotaclick/internal/domain/entities"
	"rotaclick/internal/usecase"
)

type CargoItemRequest struct {
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	Weight   float64 `json:"weight" binding:"gte=0"`
	Height   float64 `json:"height" binding:"gte=0"`
	Width    float64 `json:"width" binding:"gte=0"`
	Depth    float64 `json:"depth" binding:"gte=0"`
}

type QuoteRequest struct {
	OriginZip string             `json:"origin_zip" binding:"required,cep"`
	DestZip   string             `json:"dest_zip" binding:"required,cep"`
	CarrierID string             `json:"carrier_id"`
	Items     []CargoItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r QuoteRequest) ToQuoteRequest() usecase.QuoteRequest {
	return usecase.QuoteRequest{
		OriginZip: strings.TrimSpace(r.OriginZip),
		DestZip:   strings.TrimSpace(r.DestZip),
		CarrierID: strings.TrimSpace(r.CarrierID),
		Items:     toCargoItems(r.Items),
	}
}

func toCargoItems(in []CargoItemRequest) []entities.CargoItem {
	out := make([]entities.CargoItem, 0, len(in))
	for _, it := range in {
		out = append(out, entities.CargoItem{
			Quantity: it.Quantity,
			Weight:   it.Weight,
			Height:   it.Height,
			Width:    it.Width,
			Depth:    it.Depth,
		})
	}
	return out
}
