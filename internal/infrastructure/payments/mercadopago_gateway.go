package payments

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"rotaclick/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidProviderPaymentID = errors.New("invalid provider payment id")

const currencyBRL = "BRL"

// CheckoutURLs are the return pages and webhook target sent with every
// preference.
type CheckoutURLs struct {
	Success      string
	Failure      string
	Pending      string
	Notification string
}

type preferenceCreator interface {
	Create(ctx context.Context, request preference.Request) (*preference.Response, error)
}

type paymentGetter interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

type MercadoPagoGateway struct {
	preferences preferenceCreator
	payments    paymentGetter
	urls        CheckoutURLs
	mockMode    bool
	logger      *zap.Logger
}

var _ interfaces.ICheckoutGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string, mock bool, urls CheckoutURLs, logger *zap.Logger) (*MercadoPagoGateway, error) {
	if mock {
		logger.Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true, urls: urls, logger: logger}, nil
	}

	if accessToken == "" {
		logger.Error("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		logger.Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	logger.Info("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
		urls:        urls,
		logger:      logger,
	}, nil
}

// CreateCheckout registers a single-item preference and returns the hosted
// checkout link. The freight id travels as external reference so the
// webhook can find it again.
func (g *MercadoPagoGateway) CreateCheckout(ctx context.Context, req interfaces.CheckoutRequest) (interfaces.CheckoutSession, error) {
	if g != nil && g.mockMode {
		id := "mock-pref-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		url := g.urls.Success
		if url == "" {
			url = "http://localhost:3000/checkout/sucesso"
		}
		sep := "?"
		if strings.Contains(url, "?") {
			sep = "&"
		}
		g.logger.Info("[payment][gateway] mock checkout created", zap.String("freight_id", req.FreightID), zap.String("preference_id", id))
		return interfaces.CheckoutSession{
			ID:  id,
			URL: url + sep + "external_reference=" + req.FreightID + "&payment_id=" + req.FreightID,
		}, nil
	}

	if g == nil || g.preferences == nil {
		return interfaces.CheckoutSession{}, ErrMercadoPagoGatewayNotConfigured
	}
	g.logger.Info("[payment][gateway] create preference start", zap.String("freight_id", req.FreightID), zap.String("amount", req.Amount.StringFixed(2)))

	resp, err := g.preferences.Create(ctx, g.preferenceRequest(req))
	if err != nil {
		g.logger.Error("[payment][gateway] sdk preference create failed", zap.String("freight_id", req.FreightID), zap.Error(err))
		return interfaces.CheckoutSession{}, err
	}
	g.logger.Info("[payment][gateway] create preference success", zap.String("freight_id", req.FreightID), zap.String("preference_id", resp.ID))

	return interfaces.CheckoutSession{ID: resp.ID, URL: resp.InitPoint}, nil
}

func (g *MercadoPagoGateway) preferenceRequest(req interfaces.CheckoutRequest) preference.Request {
	amount, _ := req.Amount.Round(2).Float64()
	pr := preference.Request{
		ExternalReference: req.FreightID,
		NotificationURL:   g.urls.Notification,
		Items: []preference.ItemRequest{{
			ID:          req.FreightID,
			Title:       req.Title,
			Description: req.Description,
			Quantity:    1,
			UnitPrice:   amount,
			CurrencyID:  currencyBRL,
		}},
	}
	if g.urls.Success != "" || g.urls.Failure != "" || g.urls.Pending != "" {
		pr.BackURLs = &preference.BackURLsRequest{
			Success: g.urls.Success,
			Failure: g.urls.Failure,
			Pending: g.urls.Pending,
		}
		if g.urls.Success != "" {
			pr.AutoReturn = "approved"
		}
	}
	if req.PayerEmail != "" {
		pr.Payer = &preference.PayerRequest{Email: req.PayerEmail}
	}
	return pr
}

// GetPayment fetches the provider state of a payment. In mock mode every
// payment is approved and references the freight whose id was passed in.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, providerPaymentID string) (interfaces.PaymentInfo, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if g != nil && g.mockMode {
		g.logger.Info("[payment][gateway] mock payment lookup", zap.String("provider_payment_id", providerPaymentID))
		return interfaces.PaymentInfo{
			ID:                providerPaymentID,
			Status:            "approved",
			ExternalReference: providerPaymentID,
		}, nil
	}

	if g == nil || g.payments == nil {
		return interfaces.PaymentInfo{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerPaymentID)
	if err != nil {
		return interfaces.PaymentInfo{}, fmt.Errorf("%w: %q", ErrInvalidProviderPaymentID, providerPaymentID)
	}

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		g.logger.Error("[payment][gateway] sdk payment get failed", zap.Int("provider_payment_id", id), zap.Error(err))
		return interfaces.PaymentInfo{}, err
	}
	g.logger.Info("[payment][gateway] payment fetched",
		zap.Int("provider_payment_id", resp.ID),
		zap.String("provider_status", resp.Status),
		zap.String("external_reference", resp.ExternalReference),
	)

	return interfaces.PaymentInfo{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
		Amount:            decimal.NewFromFloat(resp.TransactionAmount).Round(2),
	}, nil
}
