package usecase

import (
	"rotaclick/internal/domain/entities"
	"rotaclick/internal/domain/pricing"
	"time"

	"github.com/shopspring/decimal"
)

var (
	adminActor    = entities.Actor{UserID: "admin-1", Role: entities.RoleAdmin}
	carrierActor  = entities.Actor{UserID: "user-c1", Role: entities.RoleCarrier, CarrierID: "c1"}
	customerActor = entities.Actor{UserID: "cust-1", Role: entities.RoleCustomer}
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func approvedCarrier(id string, term int) entities.Carrier {
	return entities.Carrier{
		ID:              id,
		CompanyName:     "Transportes " + id + " LTDA",
		ApprovalStatus:  entities.ApprovalStatusAprovado,
		PaymentTermDays: term,
	}
}

func testRoute(id, carrierID string, origin, dest entities.ZipRange, cost, min, margin string, deadline int) entities.FreightRoute {
	rate, err := pricing.ApplyMargin(dec(cost), dec(min), dec(margin))
	if err != nil {
		panic(err)
	}
	return entities.FreightRoute{
		ID:                  id,
		CarrierID:           carrierID,
		Origin:              origin,
		Destination:         dest,
		CostPricePerKg:      rate.CostPricePerKg,
		CostMinPrice:        rate.CostMinPrice,
		MarginPercent:       rate.MarginPercent,
		PublishedPricePerKg: rate.PublishedPricePerKg,
		PublishedMinPrice:   rate.PublishedMinPrice,
		DeadlineDays:        deadline,
		Status:              entities.RouteStatusAtiva,
	}
}

// hundredKilos is a single parcel with 100 kg real weight and a small volume.
var hundredKilos = []entities.CargoItem{{Quantity: 1, Weight: 100, Height: 0.5, Width: 0.5, Depth: 0.5}}
