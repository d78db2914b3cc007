package pricing

import (
	"time"

	"rotaclick/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// RepasseInput describes a paid freight. CarrierCost is the cost side frozen
// at checkout; when zero it is derived from Price and MarginPercent.
type RepasseInput struct {
	Price           decimal.Decimal
	CarrierCost     decimal.Decimal
	MarginPercent   decimal.Decimal
	PaidAt          time.Time
	PaymentTermDays int
}

// Repasse is the payout owed to the carrier for one freight.
type Repasse struct {
	CarrierAmount   decimal.Decimal `json:"carrier_amount"`
	RotaclickAmount decimal.Decimal `json:"rotaclick_amount"`
	DueDate         time.Time       `json:"due_date"`
}

// CalculateRepasse splits the paid price between carrier and platform and
// schedules the payout.
func CalculateRepasse(in RepasseInput) (Repasse, error) {
	price := RoundMoney(in.Price)
	if !price.IsPositive() {
		return Repasse{}, ErrInvalidPrice
	}
	if !entities.IsAllowedPaymentTerm(in.PaymentTermDays) {
		return Repasse{}, ErrInvalidPaymentTerm
	}

	var rotaclick decimal.Decimal
	if in.CarrierCost.IsZero() {
		if err := ValidateMargin(in.MarginPercent); err != nil {
			return Repasse{}, err
		}
		rotaclick = price.Sub(RoundMoney(price.Div(markupFactor(in.MarginPercent))))
	} else {
		cost := RoundMoney(in.CarrierCost)
		if cost.IsNegative() || cost.GreaterThan(price) {
			return Repasse{}, ErrInvalidCarrierCost
		}
		rotaclick = price.Sub(cost)
	}

	carrier, err := SplitPayout(price, rotaclick)
	if err != nil {
		return Repasse{}, err
	}
	return Repasse{
		CarrierAmount:   carrier,
		RotaclickAmount: rotaclick,
		DueDate:         RepasseDueDate(in.PaidAt, in.PaymentTermDays),
	}, nil
}

// SplitPayout returns the carrier share of price once the platform margin
// is taken out.
func SplitPayout(price, rotaclickAmount decimal.Decimal) (decimal.Decimal, error) {
	price = RoundMoney(price)
	rotaclickAmount = RoundMoney(rotaclickAmount)
	if rotaclickAmount.IsNegative() || rotaclickAmount.GreaterThan(price) {
		return decimal.Zero, ErrInvalidCarrierCost
	}
	return price.Sub(rotaclickAmount), nil
}

// RepasseDueDate adds calendar days to the payment date (UTC).
func RepasseDueDate(paidAt time.Time, paymentTermDays int) time.Time {
	return paidAt.UTC().AddDate(0, 0, paymentTermDays)
}
