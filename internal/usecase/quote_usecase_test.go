package usecase

import (
	"context"
	"errors"
	"testing"

	"rotaclick/internal/domain/entities"
	mock_interfaces "rotaclick/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newQuoteUseCase(ctrl *gomock.Controller) (*QuoteUseCase, *mock_interfaces.MockIFreightRouteRepository, *mock_interfaces.MockICarrierRepository, *mock_interfaces.MockIPlatformSettingsRepository) {
	routes := mock_interfaces.NewMockIFreightRouteRepository(ctrl)
	carriers := mock_interfaces.NewMockICarrierRepository(ctrl)
	settings := mock_interfaces.NewMockIPlatformSettingsRepository(ctrl)
	return NewQuoteUseCase(routes, carriers, settings, zap.NewNop()), routes, carriers, settings
}

func TestQuoteUseCase_Quote_SortsOffersByPrice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, routes, carriers, _ := newQuoteUseCase(ctrl)

	sp := entities.ZipRange{Start: "01"}
	rj := entities.ZipRange{Start: "20000000", End: "23799999"}
	expensive := testRoute("r1", "c1", sp, rj, "2.50", "0", "20", 5)
	cheap := testRoute("r2", "c2", sp, rj, "2.00", "50", "20", 3)
	inactive := testRoute("r3", "c1", sp, rj, "0.10", "0", "0", 1)
	inactive.Status = entities.RouteStatusInativa
	elsewhere := testRoute("r4", "c1", sp, entities.ZipRange{Start: "30"}, "0.10", "0", "0", 1)
	unapproved := testRoute("r5", "c3", sp, rj, "0.10", "0", "0", 1)

	routes.EXPECT().ListActive(gomock.Any()).Return([]entities.FreightRoute{expensive, cheap, inactive, elsewhere, unapproved}, nil)
	carriers.EXPECT().GetByID(gomock.Any(), "c1").Return(approvedCarrier("c1", 7), nil).Times(2)
	c2 := approvedCarrier("c2", 7)
	c2.TradeName = "Rapido Sul"
	carriers.EXPECT().GetByID(gomock.Any(), "c2").Return(c2, nil).Times(2)
	carriers.EXPECT().GetByID(gomock.Any(), "c3").Return(entities.Carrier{ID: "c3", ApprovalStatus: entities.ApprovalStatusPendente}, nil)

	res, err := uc.Quote(context.Background(), QuoteRequest{OriginZip: "01310-100", DestZip: "22041-001", Items: hundredKilos})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Offers) != 2 {
		t.Fatalf("expected 2 offers, got %d", len(res.Offers))
	}
	// 100 kg * 2.40 = 240 vs 100 kg * 3.00 = 300
	if res.Offers[0].RouteID != "r2" || !res.Offers[0].Price.Equal(dec("240")) {
		t.Fatalf("expected cheapest r2 at 240, got %+v", res.Offers[0])
	}
	if res.Offers[0].CarrierName != "Rapido Sul" {
		t.Fatalf("expected trade name, got %q", res.Offers[0].CarrierName)
	}
	if res.Offers[1].RouteID != "r1" || !res.Offers[1].Price.Equal(dec("300")) {
		t.Fatalf("expected r1 at 300, got %+v", res.Offers[1])
	}
	if res.OriginZip != "01310100" || res.DestZip != "22041001" {
		t.Fatalf("expected normalized zips, got %s %s", res.OriginZip, res.DestZip)
	}
	for _, o := range res.Offers {
		if o.Estimated {
			t.Fatalf("real offers must not be estimated")
		}
	}
}

func TestQuoteUseCase_Quote_FallbackEstimate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, routes, _, settings := newQuoteUseCase(ctrl)

	routes.EXPECT().ListActive(gomock.Any()).Return(nil, nil)
	settings.EXPECT().GetAll(gomock.Any()).Return([]entities.PlatformSetting{
		{Key: entities.SettingFallbackPricePerKg, Value: "4.00"},
		{Key: entities.SettingFallbackDeadlineDays, Value: "10"},
	}, nil)

	items := []entities.CargoItem{{Quantity: 1, Weight: 10}}
	res, err := uc.Quote(context.Background(), QuoteRequest{OriginZip: "69900000", DestZip: "01310100", Items: items})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Offers) != 1 || !res.Offers[0].Estimated {
		t.Fatalf("expected a single estimated offer, got %+v", res.Offers)
	}
	// 10 kg * 4.00 = 40 is below the default 80.00 minimum
	if !res.Offers[0].Price.Equal(dec("80")) || res.Offers[0].DeadlineDays != 10 {
		t.Fatalf("unexpected estimate: %+v", res.Offers[0])
	}
	if res.Offers[0].RouteID != "" {
		t.Fatalf("estimate must not reference a route")
	}
}

func TestQuoteUseCase_Quote_Validation(t *testing.T) {
	t.Run("zero taxable weight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newQuoteUseCase(ctrl)

		_, err := uc.Quote(context.Background(), QuoteRequest{OriginZip: "01310100", DestZip: "22041001", Items: nil})
		if !errors.Is(err, ErrZeroTaxableWeight) {
			t.Fatalf("expected ErrZeroTaxableWeight, got %v", err)
		}
	})

	t.Run("invalid zip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, _, _ := newQuoteUseCase(ctrl)

		_, err := uc.Quote(context.Background(), QuoteRequest{OriginZip: "0131", DestZip: "22041001", Items: hundredKilos})
		if !errors.Is(err, ErrInvalidZipCode) {
			t.Fatalf("expected ErrInvalidZipCode, got %v", err)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, routes, _, _ := newQuoteUseCase(ctrl)

		routes.EXPECT().ListByCarrier(gomock.Any(), "c1").Return(nil, errors.New("db"))

		_, err := uc.Quote(context.Background(), QuoteRequest{OriginZip: "01310100", DestZip: "22041001", CarrierID: "c1", Items: hundredKilos})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_ResolveRoutes_NoRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, routes, _, _ := newQuoteUseCase(ctrl)

	routes.EXPECT().ListByCarrier(gomock.Any(), "c1").Return([]entities.FreightRoute{
		testRoute("r1", "c1", entities.ZipRange{Start: "01"}, entities.ZipRange{Start: "30"}, "1", "0", "10", 2),
	}, nil)

	_, err := uc.ResolveRoutes(context.Background(), "c1", "01310100", "22041001")
	if !errors.Is(err, ErrNoRouteAvailable) {
		t.Fatalf("expected ErrNoRouteAvailable, got %v", err)
	}
}

func TestQuoteUseCase_QuoteRoute(t *testing.T) {
	sp := entities.ZipRange{Start: "01"}
	rj := entities.ZipRange{Start: "2"}

	t.Run("prices the route", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, routes, carriers, _ := newQuoteUseCase(ctrl)

		routes.EXPECT().GetByID(gomock.Any(), "r1").Return(testRoute("r1", "c1", sp, rj, "2.00", "50", "20", 4), nil)
		carriers.EXPECT().GetByID(gomock.Any(), "c1").Return(approvedCarrier("c1", 7), nil)

		offer, weights, err := uc.QuoteRoute(context.Background(), " r1 ", "01310100", "22041001", hundredKilos)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !offer.Price.Equal(dec("240")) || !offer.CostPrice.Equal(dec("200")) || !offer.MarginPercent.Equal(dec("20")) {
			t.Fatalf("unexpected offer: %+v", offer)
		}
		if !weights.TaxableWeight.Equal(dec("100")) {
			t.Fatalf("unexpected weights: %+v", weights)
		}
	})

	t.Run("inactive route", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, routes, _, _ := newQuoteUseCase(ctrl)

		r := testRoute("r1", "c1", sp, rj, "2.00", "50", "20", 4)
		r.Status = entities.RouteStatusInativa
		routes.EXPECT().GetByID(gomock.Any(), "r1").Return(r, nil)

		_, _, err := uc.QuoteRoute(context.Background(), "r1", "01310100", "22041001", hundredKilos)
		if !errors.Is(err, ErrRouteInactive) {
			t.Fatalf("expected ErrRouteInactive, got %v", err)
		}
	})

	t.Run("route does not serve zips", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, routes, _, _ := newQuoteUseCase(ctrl)

		routes.EXPECT().GetByID(gomock.Any(), "r1").Return(testRoute("r1", "c1", sp, rj, "2.00", "50", "20", 4), nil)

		_, _, err := uc.QuoteRoute(context.Background(), "r1", "01310100", "30140071", hundredKilos)
		if !errors.Is(err, ErrRouteMismatch) {
			t.Fatalf("expected ErrRouteMismatch, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, routes, _, _ := newQuoteUseCase(ctrl)

		routes.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.FreightRoute{}, nil)

		_, _, err := uc.QuoteRoute(context.Background(), "missing", "01310100", "22041001", hundredKilos)
		if !errors.Is(err, ErrRouteNotFound) {
			t.Fatalf("expected ErrRouteNotFound, got %v", err)
		}
	})
}
