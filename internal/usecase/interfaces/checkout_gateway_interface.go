package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// CheckoutRequest describes a single-item hosted checkout for one freight.
type CheckoutRequest struct {
	FreightID   string
	Title       string
	Description string
	Amount      decimal.Decimal
	PayerEmail  string
}

type CheckoutSession struct {
	ID  string
	URL string
}

// PaymentInfo is the provider view of a payment, fetched when a
// notification arrives.
type PaymentInfo struct {
	ID                string
	Status            string
	ExternalReference string
	Amount            decimal.Decimal
}

// ICheckoutGateway abstracts the hosted checkout provider (Mercado Pago).
type ICheckoutGateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutSession, error)
	GetPayment(ctx context.Context, providerPaymentID string) (PaymentInfo, error)
}
