package usecase

import (
	"context"
	"errors"
	"rotaclick/internal/domain/entities"
	"rotaclick/internal/usecase/interfaces"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrRepasseAlreadyPaid   = errors.New("repasse already paid")
	ErrFreightNotPaid       = errors.New("freight not paid yet")
	ErrInvalidRepasseFilter = errors.New("invalid repasse status")
)

var repassesPaid = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "rotaclick_repasses_paid_total",
		Help: "Carrier payouts marked as paid",
	},
)

type RepasseFilter struct {
	Status      entities.RepasseStatus
	CarrierID   string
	OverdueOnly bool
}

type RepasseSummary struct {
	PendingCount    int             `json:"pending_count"`
	PendingAmount   decimal.Decimal `json:"pending_amount"`
	OverdueCount    int             `json:"overdue_count"`
	OverdueAmount   decimal.Decimal `json:"overdue_amount"`
	PaidCount       int             `json:"paid_count"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	RotaclickAmount decimal.Decimal `json:"rotaclick_amount"`
}

// IRepasseUseCase is the admin payout desk.
type IRepasseUseCase interface {
	List(ctx context.Context, actor entities.Actor, filter RepasseFilter) ([]entities.Freight, error)
	Summary(ctx context.Context, actor entities.Actor, carrierID string) (RepasseSummary, error)
	MarkPaid(ctx context.Context, actor entities.Actor, freightID string) (entities.Freight, error)
}

type RepasseUseCase struct {
	repo   interfaces.IFreightRepository
	audit  *auditTrail
	logger *zap.Logger
	now    func() time.Time
}

var _ IRepasseUseCase = (*RepasseUseCase)(nil)

func NewRepasseUseCase(repo interfaces.IFreightRepository, auditRepo interfaces.IAuditLogRepository, logger *zap.Logger) *RepasseUseCase {
	return &RepasseUseCase{
		repo:   repo,
		audit:  newAuditTrail(auditRepo, logger),
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// List returns paid freights with their payout state, soonest due first.
// Carrier users only ever see their own payouts.
func (u *RepasseUseCase) List(ctx context.Context, actor entities.Actor, filter RepasseFilter) ([]entities.Freight, error) {
	filter.CarrierID = strings.TrimSpace(filter.CarrierID)
	if !actor.IsAdmin() {
		if actor.Role != entities.RoleCarrier || actor.CarrierID == "" {
			return nil, ErrForbidden
		}
		if filter.CarrierID != "" && filter.CarrierID != actor.CarrierID {
			return nil, ErrForbidden
		}
		filter.CarrierID = actor.CarrierID
	}
	switch filter.Status {
	case "", entities.RepasseStatusPendente, entities.RepasseStatusPago:
	default:
		return nil, ErrInvalidRepasseFilter
	}
	if filter.OverdueOnly {
		filter.Status = entities.RepasseStatusPendente
	}

	freights, err := u.load(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := u.now()
	out := make([]entities.Freight, 0, len(freights))
	for _, f := range freights {
		if !f.IsPaid() || f.RepasseStatus == "" {
			continue
		}
		if filter.Status != "" && f.RepasseStatus != filter.Status {
			continue
		}
		if filter.OverdueOnly && !f.IsRepasseOverdue(now) {
			continue
		}
		out = append(out, f)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return dueOf(out[i]).Before(dueOf(out[j]))
	})
	return out, nil
}

func (u *RepasseUseCase) Summary(ctx context.Context, actor entities.Actor, carrierID string) (RepasseSummary, error) {
	freights, err := u.List(ctx, actor, RepasseFilter{CarrierID: carrierID})
	if err != nil {
		return RepasseSummary{}, err
	}
	now := u.now()
	s := RepasseSummary{
		PendingAmount:   decimal.Zero,
		OverdueAmount:   decimal.Zero,
		PaidAmount:      decimal.Zero,
		RotaclickAmount: decimal.Zero,
	}
	for _, f := range freights {
		s.RotaclickAmount = s.RotaclickAmount.Add(f.RotaclickAmount)
		switch f.RepasseStatus {
		case entities.RepasseStatusPago:
			s.PaidCount++
			s.PaidAmount = s.PaidAmount.Add(f.CarrierAmount)
		case entities.RepasseStatusPendente:
			s.PendingCount++
			s.PendingAmount = s.PendingAmount.Add(f.CarrierAmount)
			if f.IsRepasseOverdue(now) {
				s.OverdueCount++
				s.OverdueAmount = s.OverdueAmount.Add(f.CarrierAmount)
			}
		}
	}
	return s, nil
}

// MarkPaid records that the carrier was paid. The transition is one-way;
// a second call returns ErrRepasseAlreadyPaid and writes nothing.
func (u *RepasseUseCase) MarkPaid(ctx context.Context, actor entities.Actor, freightID string) (entities.Freight, error) {
	if !actor.IsAdmin() {
		return entities.Freight{}, ErrForbidden
	}
	freightID = strings.TrimSpace(freightID)
	if freightID == "" {
		return entities.Freight{}, ErrFreightNotFound
	}
	f, err := u.repo.GetByID(ctx, freightID)
	if err != nil {
		return entities.Freight{}, err
	}
	if f.ID == "" {
		return entities.Freight{}, ErrFreightNotFound
	}
	if !f.IsPaid() {
		return entities.Freight{}, ErrFreightNotPaid
	}
	if f.RepasseStatus == entities.RepasseStatusPago {
		return f, ErrRepasseAlreadyPaid
	}

	paidAt := u.now()
	updated, err := u.repo.MarkRepassePaid(ctx, f.ID, paidAt, actor.UserID)
	if err != nil {
		return entities.Freight{}, err
	}
	if updated.ID == "" {
		// Lost the race against a concurrent mark-paid.
		return f, ErrRepasseAlreadyPaid
	}

	repassesPaid.Inc()
	u.audit.record(ctx, actor, entities.AuditActionRepassePaid, "freight", updated.ID, map[string]string{
		"carrier_id":     updated.CarrierID,
		"carrier_amount": updated.CarrierAmount.StringFixed(2),
		"overdue":        strconv.FormatBool(f.IsRepasseOverdue(paidAt)),
	})
	u.logger.Info("[repasse][usecase] marked paid",
		zap.String("freight_id", updated.ID),
		zap.String("carrier_id", updated.CarrierID),
		zap.String("amount", updated.CarrierAmount.StringFixed(2)),
		zap.String("by", actor.UserID))
	return updated, nil
}

func (u *RepasseUseCase) load(ctx context.Context, filter RepasseFilter) ([]entities.Freight, error) {
	if filter.CarrierID != "" {
		return u.repo.ListByCarrier(ctx, filter.CarrierID)
	}
	if filter.Status != "" {
		return u.repo.ListByRepasseStatus(ctx, filter.Status)
	}
	pending, err := u.repo.ListByRepasseStatus(ctx, entities.RepasseStatusPendente)
	if err != nil {
		return nil, err
	}
	paid, err := u.repo.ListByRepasseStatus(ctx, entities.RepasseStatusPago)
	if err != nil {
		return nil, err
	}
	return append(pending, paid...), nil
}

func dueOf(f entities.Freight) time.Time {
	if f.RepasseDueDate == nil {
		return time.Time{}
	}
	return *f.RepasseDueDate
}
