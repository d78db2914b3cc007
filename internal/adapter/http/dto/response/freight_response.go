package response

import (
	"time"

	"rotaclick/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// FreightResponse hides the carrier cost and the payout split from
// customers; carriers and administrators see everything.
type FreightResponse struct {
	ID            string          `json:"id"`
	CustomerID    string          `json:"customer_id"`
	CarrierID     string          `json:"carrier_id"`
	RouteID       string          `json:"route_id"`
	OriginZip     string          `json:"origin_zip"`
	DestZip       string          `json:"dest_zip"`
	RealWeight    decimal.Decimal `json:"real_weight"`
	CubedWeight   decimal.Decimal `json:"cubed_weight"`
	TaxableWeight decimal.Decimal `json:"taxable_weight"`
	Price         decimal.Decimal `json:"price"`
	DeadlineDays  int             `json:"deadline_days"`
	PaymentStatus string          `json:"payment_status"`
	CheckoutURL   string          `json:"checkout_url,omitempty"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`

	CostPrice       *decimal.Decimal `json:"cost_price,omitempty"`
	MarginPercent   *decimal.Decimal `json:"margin_percent,omitempty"`
	CarrierAmount   *decimal.Decimal `json:"carrier_amount,omitempty"`
	RotaclickAmount *decimal.Decimal `json:"rotaclick_amount,omitempty"`
	PaymentID       string           `json:"payment_id,omitempty"`
	PaymentTermDays int              `json:"payment_term_days,omitempty"`
	RepasseDueDate  *time.Time       `json:"repasse_due_date,omitempty"`
	RepasseStatus   string           `json:"repasse_status,omitempty"`
	RepasseOverdue  bool             `json:"repasse_overdue,omitempty"`
	RepassePaidAt   *time.Time       `json:"repasse_paid_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromFreight(f entities.Freight, actor entities.Actor, now time.Time) FreightResponse {
	resp := FreightResponse{
		ID:            f.ID,
		CustomerID:    f.CustomerID,
		CarrierID:     f.CarrierID,
		RouteID:       f.RouteID,
		OriginZip:     f.OriginZip,
		DestZip:       f.DestZip,
		RealWeight:    f.RealWeight,
		CubedWeight:   f.CubedWeight,
		TaxableWeight: f.TaxableWeight,
		Price:         f.Price,
		DeadlineDays:  f.DeadlineDays,
		PaymentStatus: string(f.PaymentStatus),
		CheckoutURL:   f.CheckoutURL,
		PaidAt:        f.PaidAt,
		CreatedAt:     f.CreatedAt,
		UpdatedAt:     f.UpdatedAt,
	}
	if actor.Role == entities.RoleCustomer {
		return resp
	}

	cost, margin := f.CostPrice, f.MarginPercent
	resp.CostPrice = &cost
	resp.MarginPercent = &margin
	resp.PaymentID = f.PaymentID
	if f.IsPaid() {
		carrier, platform := f.CarrierAmount, f.RotaclickAmount
		resp.CarrierAmount = &carrier
		resp.RotaclickAmount = &platform
		resp.PaymentTermDays = f.PaymentTermDays
		resp.RepasseDueDate = f.RepasseDueDate
		resp.RepasseStatus = string(f.RepasseStatus)
		resp.RepasseOverdue = f.IsRepasseOverdue(now)
		resp.RepassePaidAt = f.RepassePaidAt
	}
	return resp
}

func FromFreights(list []entities.Freight, actor entities.Actor, now time.Time) []FreightResponse {
	out := make([]FreightResponse, 0, len(list))
	for _, f := range list {
		out = append(out, FromFreight(f, actor, now))
	}
	return out
}

// CheckoutResponse is returned after a freight is created; the client
// redirects the customer to CheckoutURL.
type CheckoutResponse struct {
	FreightID   string          `json:"freight_id"`
	Price       decimal.Decimal `json:"price"`
	CheckoutURL string          `json:"checkout_url"`
}

func FromCheckout(f entities.Freight) CheckoutResponse {
	return CheckoutResponse{FreightID: f.ID, Price: f.Price, CheckoutURL: f.CheckoutURL}
}
