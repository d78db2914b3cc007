package payments

import (
	"context"
	"errors"
	"strings"
	"testing"

	"rotaclick/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type fakePreferences struct {
	got preference.Request
	err error
}

func (f *fakePreferences) Create(_ context.Context, req preference.Request) (*preference.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return &preference.Response{ID: "pref-1", InitPoint: "https://mp.test/checkout/pref-1"}, nil
}

type fakePayments struct {
	gotID int
	resp  *payment.Response
}

func (f *fakePayments) Get(_ context.Context, id int) (*payment.Response, error) {
	f.gotID = id
	return f.resp, nil
}

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	if _, err := NewMercadoPagoGateway("", false, CheckoutURLs{}, zap.NewNop()); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
	g, err := NewMercadoPagoGateway("", true, CheckoutURLs{}, zap.NewNop())
	if err != nil || !g.mockMode {
		t.Fatalf("expected mock gateway, got %+v err %v", g, err)
	}
}

func TestCreateCheckout(t *testing.T) {
	prefs := &fakePreferences{}
	g := &MercadoPagoGateway{
		preferences: prefs,
		urls:        CheckoutURLs{Success: "https://app.test/ok", Notification: "https://api.test/v1/webhooks/mercadopago"},
		logger:      zap.NewNop(),
	}

	session, err := g.CreateCheckout(context.Background(), interfaces.CheckoutRequest{
		FreightID:  "f-1",
		Title:      "Frete 01310100 -> 22041001",
		Amount:     decimal.RequireFromString("240.00"),
		PayerEmail: "cliente@example.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.ID != "pref-1" || session.URL != "https://mp.test/checkout/pref-1" {
		t.Fatalf("unexpected session: %+v", session)
	}
	if prefs.got.ExternalReference != "f-1" || prefs.got.NotificationURL == "" {
		t.Fatalf("unexpected preference request: %+v", prefs.got)
	}
	if len(prefs.got.Items) != 1 || prefs.got.Items[0].UnitPrice != 240 || prefs.got.Items[0].CurrencyID != "BRL" {
		t.Fatalf("unexpected items: %+v", prefs.got.Items)
	}
	if prefs.got.Payer == nil || prefs.got.Payer.Email != "cliente@example.com" || prefs.got.AutoReturn != "approved" {
		t.Fatalf("unexpected payer/back urls: %+v", prefs.got)
	}
}

func TestCreateCheckout_SDKError(t *testing.T) {
	sdkErr := errors.New("boom")
	g := &MercadoPagoGateway{preferences: &fakePreferences{err: sdkErr}, logger: zap.NewNop()}
	if _, err := g.CreateCheckout(context.Background(), interfaces.CheckoutRequest{FreightID: "f-1"}); !errors.Is(err, sdkErr) {
		t.Fatalf("expected sdk error, got %v", err)
	}
}

func TestGetPayment(t *testing.T) {
	pays := &fakePayments{resp: &payment.Response{ID: 123, Status: "approved", ExternalReference: "f-1", TransactionAmount: 240.0}}
	g := &MercadoPagoGateway{payments: pays, logger: zap.NewNop()}

	info, err := g.GetPayment(context.Background(), " 123 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pays.gotID != 123 || info.ID != "123" || info.ExternalReference != "f-1" || !info.Amount.Equal(decimal.NewFromInt(240)) {
		t.Fatalf("unexpected payment info: %+v", info)
	}

	if _, err := g.GetPayment(context.Background(), "abc"); !errors.Is(err, ErrInvalidProviderPaymentID) {
		t.Fatalf("expected ErrInvalidProviderPaymentID, got %v", err)
	}
}

func TestMockMode(t *testing.T) {
	g, _ := NewMercadoPagoGateway("", true, CheckoutURLs{Success: "https://app.test/ok"}, zap.NewNop())

	session, err := g.CreateCheckout(context.Background(), interfaces.CheckoutRequest{FreightID: "f-9"})
	if err != nil || !strings.HasPrefix(session.URL, "https://app.test/ok?external_reference=f-9") {
		t.Fatalf("unexpected mock session %+v err %v", session, err)
	}

	info, err := g.GetPayment(context.Background(), "f-9")
	if err != nil || info.Status != "approved" || info.ExternalReference != "f-9" || !info.Amount.IsZero() {
		t.Fatalf("unexpected mock payment %+v err %v", info, err)
	}
}

func TestNotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, err := g.CreateCheckout(context.Background(), interfaces.CheckoutRequest{}); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
	if _, err := g.GetPayment(context.Background(), "1"); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
