package interfaces

import (
	"context"
	"rotaclick/internal/domain/entities"
	"time"
)

// IFreightRepository abstracts DynamoDB persistence for Freight.
//
// The conditional writes return an empty freight (ID == "") when the
// precondition no longer holds, e.g. the freight was already paid.
type IFreightRepository interface {
	Create(ctx context.Context, f entities.Freight) (entities.Freight, error)
	GetByID(ctx context.Context, id string) (entities.Freight, error)
	ListByCarrier(ctx context.Context, carrierID string) ([]entities.Freight, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Freight, error)
	ListByRepasseStatus(ctx context.Context, status entities.RepasseStatus) ([]entities.Freight, error)
	// AttachCheckout stores the hosted checkout of a still pending freight.
	AttachCheckout(ctx context.Context, id, checkoutID, checkoutURL string) (entities.Freight, error)
	// ConfirmPayment persists the payment and repasse fields of f while the
	// stored payment status is still pending.
	ConfirmPayment(ctx context.Context, f entities.Freight) (entities.Freight, error)
	MarkPaymentRefused(ctx context.Context, id string, providerPaymentID string) (entities.Freight, error)
	// MarkRepassePaid flips repasse_status from pendente to pago.
	MarkRepassePaid(ctx context.Context, id string, paidAt time.Time, paidBy string) (entities.Freight, error)
}
