package request

import (
	"strings"

	"rotaclick/internal/usecase"
)

type CheckoutRequest struct {
	RouteID    string             `json:"route_id" binding:"required"`
	OriginZip  string             `json:"origin_zip" binding:"required,cep"`
	DestZip    string             `json:"dest_zip" binding:"required,cep"`
	PayerEmail string             `json:"payer_email" binding:"omitempty,email"`
	Items      []CargoItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r CheckoutRequest) ToCheckoutInput() usecase.CheckoutInput {
	return usecase.CheckoutInput{
		RouteID:    strings.TrimSpace(r.RouteID),
		OriginZip:  strings.TrimSpace(r.OriginZip),
		DestZip:    strings.TrimSpace(r.DestZip),
		PayerEmail: strings.TrimSpace(r.PayerEmail),
		Items:      toCargoItems(r.Items),
	}
}

// ConfirmPaymentRequest is used by administrators to settle offline
// payments.
type ConfirmPaymentRequest struct {
	PaymentID string `json:"payment_id" binding:"required"`
}

// MercadoPagoNotification covers both webhook shapes Mercado Pago sends:
// JSON body {"type":"payment","data":{"id":"123"}} and the legacy IPN
// query string ?topic=payment&id=123.
type MercadoPagoNotification struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// ResolvePaymentID returns the payment id when the notification is about a
// payment, or "" for other topics (merchant orders, tests).
func (n MercadoPagoNotification) ResolvePaymentID(queryTopic, queryID, queryDataID string) string {
	topic := strings.TrimSpace(n.Type)
	if topic == "" {
		topic = strings.TrimSpace(queryTopic)
	}
	if topic != "" && topic != "payment" {
		return ""
	}
	for _, v := range []string{n.Data.ID, queryDataID, queryID} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
