package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rotaclick/internal/domain/entities"
	"rotaclick/internal/usecase/interfaces"
	mock_interfaces "rotaclick/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type freightMocks struct {
	freights *mock_interfaces.MockIFreightRepository
	routes   *mock_interfaces.MockIFreightRouteRepository
	carriers *mock_interfaces.MockICarrierRepository
	settings *mock_interfaces.MockIPlatformSettingsRepository
	gateway  *mock_interfaces.MockICheckoutGateway
	audit    *mock_interfaces.MockIAuditLogRepository
}

func newFreightUseCase(ctrl *gomock.Controller, now time.Time) (*FreightUseCase, freightMocks) {
	m := freightMocks{
		freights: mock_interfaces.NewMockIFreightRepository(ctrl),
		routes:   mock_interfaces.NewMockIFreightRouteRepository(ctrl),
		carriers: mock_interfaces.NewMockICarrierRepository(ctrl),
		settings: mock_interfaces.NewMockIPlatformSettingsRepository(ctrl),
		gateway:  mock_interfaces.NewMockICheckoutGateway(ctrl),
		audit:    mock_interfaces.NewMockIAuditLogRepository(ctrl),
	}
	quotes := NewQuoteUseCase(m.routes, m.carriers, m.settings, zap.NewNop())
	uc := NewFreightUseCase(m.freights, m.carriers, quotes, m.gateway, m.audit, zap.NewNop())
	uc.now = fixedClock(now)
	return uc, m
}

func pendingFreight() entities.Freight {
	return entities.Freight{
		ID:            "f1",
		CustomerID:    "cust-1",
		CarrierID:     "c1",
		RouteID:       "r1",
		TaxableWeight: dec("100"),
		CostPrice:     dec("200"),
		Price:         dec("240"),
		MarginPercent: dec("20"),
		PaymentStatus: entities.PaymentStatusPendente,
	}
}

func TestFreightUseCase_Checkout(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	route := testRoute("r1", "c1", entities.ZipRange{Start: "01"}, entities.ZipRange{Start: "2"}, "2.00", "50", "20", 4)
	in := CheckoutInput{RouteID: "r1", OriginZip: "01310-100", DestZip: "22041-001", PayerEmail: "cliente@example.com", Items: hundredKilos}

	t.Run("stores pending freight then opens checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCase(ctrl, now)

		var stored entities.Freight
		m.routes.EXPECT().GetByID(gomock.Any(), "r1").Return(route, nil)
		m.carriers.EXPECT().GetByID(gomock.Any(), "c1").Return(approvedCarrier("c1", 21), nil)
		create := m.freights.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f entities.Freight) (entities.Freight, error) {
			if f.ID == "" || f.CheckoutID != "" || f.PaymentStatus != entities.PaymentStatusPendente {
				t.Fatalf("unexpected freight to store: %+v", f)
			}
			stored = f
			return f, nil
		})
		open := m.gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
			if req.FreightID != stored.ID || !req.Amount.Equal(dec("240")) || req.PayerEmail != "cliente@example.com" {
				t.Fatalf("unexpected checkout request: %+v", req)
			}
			return interfaces.CheckoutSession{ID: "pref-1", URL: "https://mp.example/checkout/pref-1"}, nil
		}).After(create)
		m.freights.EXPECT().AttachCheckout(gomock.Any(), gomock.Any(), "pref-1", "https://mp.example/checkout/pref-1").
			DoAndReturn(func(_ context.Context, id, checkoutID, checkoutURL string) (entities.Freight, error) {
				f := stored
				f.CheckoutID = checkoutID
				f.CheckoutURL = checkoutURL
				return f, nil
			}).After(open)

		got, err := uc.Checkout(context.Background(), customerActor, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != stored.ID || got.CustomerID != "cust-1" || got.CarrierID != "c1" || got.RouteID != "r1" {
			t.Fatalf("unexpected ownership: %+v", got)
		}
		if !got.Price.Equal(dec("240")) || !got.CostPrice.Equal(dec("200")) || !got.MarginPercent.Equal(dec("20")) {
			t.Fatalf("unexpected pricing: %+v", got)
		}
		if got.PaymentStatus != entities.PaymentStatusPendente || got.CheckoutURL != "https://mp.example/checkout/pref-1" {
			t.Fatalf("unexpected checkout state: %+v", got)
		}
		if got.OriginZip != "01310100" || got.DestZip != "22041001" {
			t.Fatalf("expected normalized zips, got %s %s", got.OriginZip, got.DestZip)
		}
	})

	t.Run("gateway failure leaves freight without checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCase(ctrl, now)

		m.routes.EXPECT().GetByID(gomock.Any(), "r1").Return(route, nil)
		m.carriers.EXPECT().GetByID(gomock.Any(), "c1").Return(approvedCarrier("c1", 21), nil)
		m.freights.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f entities.Freight) (entities.Freight, error) {
			return f, nil
		})
		m.gateway.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).Return(interfaces.CheckoutSession{}, errors.New("mp down"))

		_, err := uc.Checkout(context.Background(), customerActor, in)
		if !errors.Is(err, ErrCheckoutUnavailable) {
			t.Fatalf("expected ErrCheckoutUnavailable, got %v", err)
		}
	})

	t.Run("store failure opens no checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCase(ctrl, now)

		m.routes.EXPECT().GetByID(gomock.Any(), "r1").Return(route, nil)
		m.carriers.EXPECT().GetByID(gomock.Any(), "c1").Return(approvedCarrier("c1", 21), nil)
		m.freights.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Freight{}, errors.New("dynamo down"))

		if _, err := uc.Checkout(context.Background(), customerActor, in); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("anonymous caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newFreightUseCase(ctrl, now)

		if _, err := uc.Checkout(context.Background(), entities.Actor{}, in); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestFreightUseCase_ConfirmPayment(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("freezes payout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCase(ctrl, now)

		m.freights.EXPECT().GetByID(gomock.Any(), "f1").Return(pendingFreight(), nil)
		m.carriers.EXPECT().GetByID(gomock.Any(), "c1").Return(approvedCarrier("c1", 7), nil)
		m.freights.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f entities.Freight) (entities.Freight, error) {
			return f, nil
		})
		m.audit.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l entities.AuditLog) error {
			if l.Action != entities.AuditActionFreightPaid || l.Details["carrier_amount"] != "200.00" {
				t.Fatalf("unexpected audit entry: %+v", l)
			}
			return nil
		})

		got, err := uc.ConfirmPayment(context.Background(), adminActor, "f1", "pay-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.IsPaid() || got.PaymentID != "pay-1" || got.PaidAt == nil || !got.PaidAt.Equal(now) {
			t.Fatalf("unexpected payment state: %+v", got)
		}
		if !got.CarrierAmount.Equal(dec("200")) || !got.RotaclickAmount.Equal(dec("40")) {
			t.Fatalf("unexpected split: %s / %s", got.CarrierAmount, got.RotaclickAmount)
		}
		if !got.CarrierAmount.Add(got.RotaclickAmount).Equal(got.Price) {
			t.Fatalf("carrier + platform must equal price")
		}
		if got.PaymentTermDays != 7 || got.RepasseDueDate == nil || got.RepasseDueDate.Format("2006-01-02") != "2024-01-08" {
			t.Fatalf("unexpected repasse schedule: %+v", got)
		}
		if got.RepasseStatus != entities.RepasseStatusPendente {
			t.Fatalf("expected pending repasse, got %s", got.RepasseStatus)
		}
	})

	t.Run("already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCase(ctrl, now)

		paid := pendingFreight()
		paid.PaymentStatus = entities.PaymentStatusPago
		m.freights.EXPECT().GetByID(gomock.Any(), "f1").Return(paid, nil)

		_, err := uc.ConfirmPayment(context.Background(), adminActor, "f1", "pay-1")
		if !errors.Is(err, ErrFreightAlreadyPaid) {
			t.Fatalf("expected ErrFreightAlreadyPaid, got %v", err)
		}
	})

	t.Run("lost race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCase(ctrl, now)

		m.freights.EXPECT().GetByID(gomock.Any(), "f1").Return(pendingFreight(), nil)
		m.carriers.EXPECT().GetByID(gomock.Any(), "c1").Return(approvedCarrier("c1", 7), nil)
		m.freights.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).Return(entities.Freight{}, nil)

		_, err := uc.ConfirmPayment(context.Background(), adminActor, "f1", "pay-1")
		if !errors.Is(err, ErrFreightAlreadyPaid) {
			t.Fatalf("expected ErrFreightAlreadyPaid, got %v", err)
		}
	})

	t.Run("carrier without term", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCase(ctrl, now)

		m.freights.EXPECT().GetByID(gomock.Any(), "f1").Return(pendingFreight(), nil)
		m.carriers.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Carrier{ID: "c1"}, nil)

		if _, err := uc.ConfirmPayment(context.Background(), adminActor, "f1", "pay-1"); err == nil {
			t.Fatalf("expected error for missing payment term")
		}
	})

	t.Run("customer cannot confirm", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newFreightUseCase(ctrl, now)

		if _, err := uc.ConfirmPayment(context.Background(), customerActor, "f1", "pay-1"); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestFreightUseCase_HandlePaymentNotification(t *testing.T) {
	now := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("approved payment confirms freight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCase(ctrl, now)

		m.gateway.EXPECT().GetPayment(gomock.Any(), "123").Return(interfaces.PaymentInfo{ID: "123", Status: "approved", ExternalReference: "f1", Amount: dec("240")}, nil)
		m.freights.EXPECT().GetByID(gomock.Any(), "f1").Return(pendingFreight(), nil).Times(2)
		m.carriers.EXPECT().GetByID(gomock.Any(), "c1").Return(approvedCarrier("c1", 28), nil)
		m.freights.EXPECT().ConfirmPayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f entities.Freight) (entities.Freight, error) {
			return f, nil
		})
		m.audit.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, l entities.AuditLog) error {
			if l.ActorRole != "system" {
				t.Fatalf("expected system actor, got %+v", l)
			}
			return nil
		})

		got, err := uc.HandlePaymentNotification(context.Background(), "123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PaymentID != "123" || got.RepasseDueDate.Format("2006-01-02") != "2024-04-07" {
			t.Fatalf("unexpected freight: %+v", got)
		}
	})

	for name, amount := range map[string]string{"amount mismatch": "1.00", "amount not reported": "0"} {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newFreightUseCase(ctrl, now)

			m.gateway.EXPECT().GetPayment(gomock.Any(), "123").Return(interfaces.PaymentInfo{ID: "123", Status: "approved", ExternalReference: "f1", Amount: dec(amount)}, nil)
			m.freights.EXPECT().GetByID(gomock.Any(), "f1").Return(pendingFreight(), nil)

			if _, err := uc.HandlePaymentNotification(context.Background(), "123"); !errors.Is(err, ErrPaymentAmountMismatch) {
				t.Fatalf("expected ErrPaymentAmountMismatch, got %v", err)
			}
		})
	}

	t.Run("rejected payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCase(ctrl, now)

		refused := pendingFreight()
		refused.PaymentStatus = entities.PaymentStatusRecusado
		m.gateway.EXPECT().GetPayment(gomock.Any(), "9").Return(interfaces.PaymentInfo{ID: "9", Status: "rejected", ExternalReference: "f1"}, nil)
		m.freights.EXPECT().MarkPaymentRefused(gomock.Any(), "f1", "9").Return(refused, nil)

		got, err := uc.HandlePaymentNotification(context.Background(), "9")
		if err != nil || got.PaymentStatus != entities.PaymentStatusRecusado {
			t.Fatalf("expected refused freight, got %+v err %v", got, err)
		}
	})

	t.Run("pending payment changes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCase(ctrl, now)

		m.gateway.EXPECT().GetPayment(gomock.Any(), "7").Return(interfaces.PaymentInfo{ID: "7", Status: "in_process", ExternalReference: "f1"}, nil)
		m.freights.EXPECT().GetByID(gomock.Any(), "f1").Return(pendingFreight(), nil)

		got, err := uc.HandlePaymentNotification(context.Background(), "7")
		if err != nil || got.IsPaid() {
			t.Fatalf("expected untouched freight, got %+v err %v", got, err)
		}
	})

	t.Run("payment without reference", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newFreightUseCase(ctrl, now)

		m.gateway.EXPECT().GetPayment(gomock.Any(), "5").Return(interfaces.PaymentInfo{ID: "5", Status: "approved"}, nil)

		if _, err := uc.HandlePaymentNotification(context.Background(), "5"); !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}

func TestFreightUseCase_GetByID_Visibility(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newFreightUseCase(ctrl, time.Now())

	m.freights.EXPECT().GetByID(gomock.Any(), "f1").Return(pendingFreight(), nil).Times(3)

	if _, err := uc.GetByID(context.Background(), customerActor, "f1"); err != nil {
		t.Fatalf("owner should see freight: %v", err)
	}
	if _, err := uc.GetByID(context.Background(), carrierActor, "f1"); err != nil {
		t.Fatalf("carrier should see freight: %v", err)
	}
	stranger := entities.Actor{UserID: "cust-2", Role: entities.RoleCustomer}
	if _, err := uc.GetByID(context.Background(), stranger, "f1"); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
