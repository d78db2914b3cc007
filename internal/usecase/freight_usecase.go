package usecase

import (
	"context"
	"errors"
	"fmt"
	"rotaclick/internal/domain/entities"
	"rotaclick/internal/domain/pricing"
	"rotaclick/internal/usecase/interfaces"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrFreightNotFound       = errors.New("freight not found")
	ErrFreightAlreadyPaid    = errors.New("freight already paid")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrPaymentAmountMismatch = errors.New("payment amount does not match freight price")
	ErrInvalidPaymentID      = errors.New("invalid payment id")
	ErrCheckoutUnavailable   = errors.New("checkout provider unavailable")
)

// Mercado Pago payment statuses the service reacts to.
const (
	providerStatusApproved  = "approved"
	providerStatusRejected  = "rejected"
	providerStatusCancelled = "cancelled"
)

// systemActor signs audit entries written on behalf of the payment provider.
var systemActor = entities.Actor{UserID: "mercadopago", Role: "system"}

type CheckoutInput struct {
	RouteID    string
	OriginZip  string
	DestZip    string
	PayerEmail string
	Items      []entities.CargoItem
}

// IFreightUseCase covers checkout and customer payment confirmation.
type IFreightUseCase interface {
	Checkout(ctx context.Context, actor entities.Actor, in CheckoutInput) (entities.Freight, error)
	GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Freight, error)
	List(ctx context.Context, actor entities.Actor) ([]entities.Freight, error)
	ConfirmPayment(ctx context.Context, actor entities.Actor, freightID, providerPaymentID string) (entities.Freight, error)
	HandlePaymentNotification(ctx context.Context, providerPaymentID string) (entities.Freight, error)
}

type FreightUseCase struct {
	repo     interfaces.IFreightRepository
	carriers interfaces.ICarrierRepository
	quotes   *QuoteUseCase
	gateway  interfaces.ICheckoutGateway
	audit    *auditTrail
	logger   *zap.Logger
	now      func() time.Time
}

var _ IFreightUseCase = (*FreightUseCase)(nil)

func NewFreightUseCase(
	repo interfaces.IFreightRepository,
	carriers interfaces.ICarrierRepository,
	quotes *QuoteUseCase,
	gateway interfaces.ICheckoutGateway,
	auditRepo interfaces.IAuditLogRepository,
	logger *zap.Logger,
) *FreightUseCase {
	return &FreightUseCase{
		repo:     repo,
		carriers: carriers,
		quotes:   quotes,
		gateway:  gateway,
		audit:    newAuditTrail(auditRepo, logger),
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Checkout re-prices the chosen route, stores the freight as pending and
// opens a hosted checkout for it. Client-side prices are never trusted.
func (u *FreightUseCase) Checkout(ctx context.Context, actor entities.Actor, in CheckoutInput) (entities.Freight, error) {
	if strings.TrimSpace(actor.UserID) == "" {
		return entities.Freight{}, ErrForbidden
	}
	offer, weights, err := u.quotes.QuoteRoute(ctx, in.RouteID, in.OriginZip, in.DestZip, in.Items)
	if err != nil {
		return entities.Freight{}, err
	}
	origin, _ := pricing.NormalizeCEP(in.OriginZip)
	dest, _ := pricing.NormalizeCEP(in.DestZip)

	freight := entities.Freight{
		ID:            uuid.NewString(),
		CustomerID:    actor.UserID,
		CarrierID:     offer.CarrierID,
		RouteID:       offer.RouteID,
		OriginZip:     origin,
		DestZip:       dest,
		RealWeight:    weights.RealWeight,
		CubedWeight:   weights.CubedWeight,
		TaxableWeight: weights.TaxableWeight,
		CostPrice:     offer.CostPrice,
		Price:         offer.Price,
		MarginPercent: offer.MarginPercent,
		DeadlineDays:  offer.DeadlineDays,
		PaymentStatus: entities.PaymentStatusPendente,
	}

	if u.gateway == nil {
		return entities.Freight{}, ErrCheckoutUnavailable
	}
	// Stored before the preference exists so a paid checkout always has a
	// freight behind its external reference.
	created, err := u.repo.Create(ctx, freight)
	if err != nil {
		return entities.Freight{}, err
	}

	session, err := u.gateway.CreateCheckout(ctx, interfaces.CheckoutRequest{
		FreightID:   created.ID,
		Title:       fmt.Sprintf("Frete %s -> %s (%s)", origin, dest, offer.CarrierName),
		Description: fmt.Sprintf("%s kg taxados, prazo %d dias", weights.TaxableWeight.String(), offer.DeadlineDays),
		Amount:      created.Price,
		PayerEmail:  strings.TrimSpace(in.PayerEmail),
	})
	if err != nil {
		u.logger.Error("[freight][usecase] checkout failed", zap.String("freight_id", created.ID), zap.Error(err))
		return entities.Freight{}, fmt.Errorf("%w: %v", ErrCheckoutUnavailable, err)
	}

	opened, err := u.repo.AttachCheckout(ctx, created.ID, session.ID, session.URL)
	if err != nil {
		return entities.Freight{}, err
	}
	if opened.ID == "" {
		return entities.Freight{}, ErrFreightAlreadyPaid
	}
	u.logger.Info("[freight][usecase] checkout opened",
		zap.String("freight_id", opened.ID),
		zap.String("route_id", opened.RouteID),
		zap.String("price", opened.Price.StringFixed(2)),
		zap.String("checkout_id", opened.CheckoutID))
	return opened, nil
}

func (u *FreightUseCase) GetByID(ctx context.Context, actor entities.Actor, id string) (entities.Freight, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Freight{}, ErrFreightNotFound
	}
	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Freight{}, err
	}
	if f.ID == "" {
		return entities.Freight{}, ErrFreightNotFound
	}
	if !canViewFreight(actor, f) {
		return entities.Freight{}, ErrForbidden
	}
	return f, nil
}

// List returns the caller's own freights: by customer for customers, by
// carrier for carrier users.
func (u *FreightUseCase) List(ctx context.Context, actor entities.Actor) ([]entities.Freight, error) {
	switch actor.Role {
	case entities.RoleCarrier:
		if actor.CarrierID == "" {
			return nil, ErrForbidden
		}
		return u.repo.ListByCarrier(ctx, actor.CarrierID)
	case entities.RoleCustomer:
		return u.repo.ListByCustomer(ctx, actor.UserID)
	default:
		return nil, ErrForbidden
	}
}

// ConfirmPayment marks a pending freight as paid and freezes the payout:
// carrier and platform shares plus the repasse due date from the carrier's
// payment term.
func (u *FreightUseCase) ConfirmPayment(ctx context.Context, actor entities.Actor, freightID, providerPaymentID string) (entities.Freight, error) {
	if !actor.IsAdmin() && actor != systemActor {
		return entities.Freight{}, ErrForbidden
	}
	freightID = strings.TrimSpace(freightID)
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if providerPaymentID == "" {
		return entities.Freight{}, ErrInvalidPaymentID
	}
	f, err := u.repo.GetByID(ctx, freightID)
	if err != nil {
		return entities.Freight{}, err
	}
	if f.ID == "" {
		return entities.Freight{}, ErrFreightNotFound
	}
	if f.IsPaid() {
		return f, ErrFreightAlreadyPaid
	}

	carrier, err := u.carriers.GetByID(ctx, f.CarrierID)
	if err != nil {
		return entities.Freight{}, err
	}
	if carrier.ID == "" {
		return entities.Freight{}, ErrCarrierNotFound
	}

	paidAt := u.now()
	rep, err := pricing.CalculateRepasse(pricing.RepasseInput{
		Price:           f.Price,
		CarrierCost:     f.CostPrice,
		MarginPercent:   f.MarginPercent,
		PaidAt:          paidAt,
		PaymentTermDays: carrier.PaymentTermDays,
	})
	if err != nil {
		u.logger.Error("[freight][usecase] repasse calculation failed",
			zap.String("freight_id", f.ID),
			zap.Int("term_days", carrier.PaymentTermDays),
			zap.Error(err))
		return entities.Freight{}, err
	}

	f.PaymentStatus = entities.PaymentStatusPago
	f.PaymentID = providerPaymentID
	f.PaidAt = &paidAt
	f.CarrierAmount = rep.CarrierAmount
	f.RotaclickAmount = rep.RotaclickAmount
	f.PaymentTermDays = carrier.PaymentTermDays
	due := rep.DueDate
	f.RepasseDueDate = &due
	f.RepasseStatus = entities.RepasseStatusPendente

	updated, err := u.repo.ConfirmPayment(ctx, f)
	if err != nil {
		return entities.Freight{}, err
	}
	if updated.ID == "" {
		return entities.Freight{}, ErrFreightAlreadyPaid
	}

	u.audit.record(ctx, actor, entities.AuditActionFreightPaid, "freight", updated.ID, map[string]string{
		"payment_id":        providerPaymentID,
		"price":             updated.Price.StringFixed(2),
		"carrier_amount":    updated.CarrierAmount.StringFixed(2),
		"rotaclick_amount":  updated.RotaclickAmount.StringFixed(2),
		"payment_term_days": strconv.Itoa(updated.PaymentTermDays),
	})
	u.logger.Info("[freight][usecase] payment confirmed",
		zap.String("freight_id", updated.ID),
		zap.String("payment_id", providerPaymentID),
		zap.Time("repasse_due", due))
	return updated, nil
}

// HandlePaymentNotification reacts to a provider webhook. The notification
// body is not trusted: the payment is fetched from the provider and its
// external reference identifies the freight.
func (u *FreightUseCase) HandlePaymentNotification(ctx context.Context, providerPaymentID string) (entities.Freight, error) {
	providerPaymentID = strings.TrimSpace(providerPaymentID)
	if providerPaymentID == "" {
		return entities.Freight{}, ErrInvalidPaymentID
	}
	if u.gateway == nil {
		return entities.Freight{}, ErrCheckoutUnavailable
	}
	info, err := u.gateway.GetPayment(ctx, providerPaymentID)
	if err != nil {
		return entities.Freight{}, err
	}
	if info.ExternalReference == "" {
		return entities.Freight{}, ErrPaymentNotFound
	}

	u.logger.Info("[freight][usecase] payment notification",
		zap.String("payment_id", info.ID),
		zap.String("status", info.Status),
		zap.String("freight_id", info.ExternalReference))

	switch info.Status {
	case providerStatusApproved:
		f, err := u.repo.GetByID(ctx, info.ExternalReference)
		if err != nil {
			return entities.Freight{}, err
		}
		if f.ID == "" {
			return entities.Freight{}, ErrFreightNotFound
		}
		if !f.IsPaid() && !info.Amount.Equal(f.Price) {
			u.logger.Warn("[freight][usecase] payment amount mismatch",
				zap.String("freight_id", f.ID),
				zap.String("expected", f.Price.StringFixed(2)),
				zap.String("received", info.Amount.StringFixed(2)))
			return entities.Freight{}, ErrPaymentAmountMismatch
		}
		return u.ConfirmPayment(ctx, systemActor, info.ExternalReference, info.ID)
	case providerStatusRejected, providerStatusCancelled:
		f, err := u.repo.MarkPaymentRefused(ctx, info.ExternalReference, info.ID)
		if err != nil {
			return entities.Freight{}, err
		}
		if f.ID == "" {
			return u.GetByID(ctx, entities.Actor{Role: entities.RoleAdmin}, info.ExternalReference)
		}
		return f, nil
	default:
		return u.GetByID(ctx, entities.Actor{Role: entities.RoleAdmin}, info.ExternalReference)
	}
}

func canViewFreight(actor entities.Actor, f entities.Freight) bool {
	switch {
	case actor.IsAdmin():
		return true
	case actor.Role == entities.RoleCarrier:
		return actor.CarrierID != "" && actor.CarrierID == f.CarrierID
	default:
		return actor.UserID != "" && actor.UserID == f.CustomerID
	}
}
