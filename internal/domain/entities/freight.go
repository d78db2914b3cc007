package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the customer-side payment outcome of a freight.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusPago     PaymentStatus = "pago"
	PaymentStatusRecusado PaymentStatus = "recusado"
)

// RepasseStatus is the carrier payout state. The only transition is
// pendente -> pago, made by an administrator.
type RepasseStatus string

const (
	RepasseStatusPendente RepasseStatus = "pendente"
	RepasseStatusPago     RepasseStatus = "pago"
)

// Freight is a quote the customer took to checkout.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (carrier_id-index): carrier_id
//   - GSI2 (customer_id-index): customer_id
//   - GSI3 (repasse_status-repasse_due_date-index): repasse_status, repasse_due_date
//
// Price, CostPrice and the weights are frozen at checkout. Payout fields
// (CarrierAmount, RotaclickAmount, PaymentTermDays, RepasseDueDate) are
// filled once the payment is approved.
type Freight struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	CarrierID     string          `json:"carrier_id"`
	RouteID       string          `json:"route_id"`
	OriginZip     string          `json:"origin_zip"`
	DestZip       string          `json:"dest_zip"`
	RealWeight    decimal.Decimal `json:"real_weight"`
	CubedWeight   decimal.Decimal `json:"cubed_weight"`
	TaxableWeight decimal.Decimal `json:"taxable_weight"`
	CostPrice     decimal.Decimal `json:"cost_price"`
	Price         decimal.Decimal `json:"price"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
	DeadlineDays  int             `json:"deadline_days"`

	PaymentStatus PaymentStatus `json:"payment_status"`
	CheckoutID    string        `json:"checkout_id,omitempty"`
	CheckoutURL   string        `json:"checkout_url,omitempty"`
	PaymentID     string        `json:"payment_id,omitempty"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`

	CarrierAmount   decimal.Decimal `json:"carrier_amount"`
	RotaclickAmount decimal.Decimal `json:"rotaclick_amount"`
	PaymentTermDays int             `json:"payment_term_days"`
	RepasseDueDate  *time.Time      `json:"repasse_due_date,omitempty"`
	RepasseStatus   RepasseStatus   `json:"repasse_status,omitempty"`
	RepassePaidAt   *time.Time      `json:"repasse_paid_at,omitempty"`
	RepassePaidBy   string          `json:"repasse_paid_by,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (f Freight) IsPaid() bool {
	return f.PaymentStatus == PaymentStatusPago
}

// IsRepasseOverdue is derived, never stored: a pending payout whose due
// date has passed.
func (f Freight) IsRepasseOverdue(now time.Time) bool {
	if f.RepasseStatus != RepasseStatusPendente || f.RepasseDueDate == nil {
		return false
	}
	return now.After(*f.RepasseDueDate)
}
