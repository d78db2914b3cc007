package usecase

import (
	"context"
	"errors"
	"rotaclick/internal/domain/entities"
	"rotaclick/internal/domain/pricing"
	"rotaclick/internal/usecase/interfaces"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrCarrierNotFound     = errors.New("carrier not found")
	ErrCarrierRejected     = errors.New("carrier was rejected")
	ErrInvalidDeadline     = errors.New("deadline days must be positive")
	ErrInvalidRouteCarrier = errors.New("invalid carrier_id")
	ErrRouteAlreadyExists  = errors.New("carrier already has a route for these ranges")
)

// RouteInput is what a carrier (or an admin on its behalf) submits for a
// route. MarginPercent is honoured only for administrators; carriers always
// get the platform default.
type RouteInput struct {
	OriginStart    string
	OriginEnd      string
	DestStart      string
	DestEnd        string
	CostPricePerKg decimal.Decimal
	CostMinPrice   decimal.Decimal
	MarginPercent  *decimal.Decimal
	DeadlineDays   int
}

type IFreightRouteUseCase interface {
	Create(ctx context.Context, actor entities.Actor, carrierID string, in RouteInput) (entities.FreightRoute, error)
	Update(ctx context.Context, actor entities.Actor, routeID string, in RouteInput) (entities.FreightRoute, error)
	Activate(ctx context.Context, actor entities.Actor, routeID string) (entities.FreightRoute, error)
	Deactivate(ctx context.Context, actor entities.Actor, routeID string) (entities.FreightRoute, error)
	GetByID(ctx context.Context, actor entities.Actor, routeID string) (entities.FreightRoute, error)
	ListByCarrier(ctx context.Context, actor entities.Actor, carrierID string) ([]entities.FreightRoute, error)
}

type FreightRouteUseCase struct {
	repo     interfaces.IFreightRouteRepository
	carriers interfaces.ICarrierRepository
	settings interfaces.IPlatformSettingsRepository
	audit    *auditTrail
	logger   *zap.Logger
}

var _ IFreightRouteUseCase = (*FreightRouteUseCase)(nil)

func NewFreightRouteUseCase(
	repo interfaces.IFreightRouteRepository,
	carriers interfaces.ICarrierRepository,
	settings interfaces.IPlatformSettingsRepository,
	auditRepo interfaces.IAuditLogRepository,
	logger *zap.Logger,
) *FreightRouteUseCase {
	return &FreightRouteUseCase{
		repo:     repo,
		carriers: carriers,
		settings: settings,
		audit:    newAuditTrail(auditRepo, logger),
		logger:   logger,
	}
}

func (u *FreightRouteUseCase) Create(ctx context.Context, actor entities.Actor, carrierID string, in RouteInput) (entities.FreightRoute, error) {
	carrierID = strings.TrimSpace(carrierID)
	if carrierID == "" {
		return entities.FreightRoute{}, ErrInvalidRouteCarrier
	}
	if !actor.CanManageCarrier(carrierID) {
		return entities.FreightRoute{}, ErrForbidden
	}
	carrier, err := u.carriers.GetByID(ctx, carrierID)
	if err != nil {
		return entities.FreightRoute{}, err
	}
	if carrier.ID == "" {
		return entities.FreightRoute{}, ErrCarrierNotFound
	}
	if carrier.ApprovalStatus == entities.ApprovalStatusRejeitado {
		return entities.FreightRoute{}, ErrCarrierRejected
	}

	route, err := u.build(ctx, actor, in, nil)
	if err != nil {
		return entities.FreightRoute{}, err
	}
	// Same identity as a rate sheet row, so re-importing updates this route.
	route.ID = RouteKey(carrierID, route.Origin, route.Destination)
	route.CarrierID = carrierID
	route.Status = entities.RouteStatusAtiva

	created, err := u.repo.Create(ctx, route)
	if err != nil {
		return entities.FreightRoute{}, err
	}
	if created.ID == "" {
		return entities.FreightRoute{}, ErrRouteAlreadyExists
	}
	u.audit.record(ctx, actor, entities.AuditActionRouteCreated, "freight_route", created.ID, routeDetails(created))
	u.logger.Info("[route][usecase] created",
		zap.String("route_id", created.ID),
		zap.String("carrier_id", carrierID),
		zap.String("published_per_kg", created.PublishedPricePerKg.String()))
	return created, nil
}

func (u *FreightRouteUseCase) Update(ctx context.Context, actor entities.Actor, routeID string, in RouteInput) (entities.FreightRoute, error) {
	existing, err := u.owned(ctx, actor, routeID)
	if err != nil {
		return entities.FreightRoute{}, err
	}

	route, err := u.build(ctx, actor, in, &existing)
	if err != nil {
		return entities.FreightRoute{}, err
	}
	route.ID = existing.ID
	route.CarrierID = existing.CarrierID
	route.Status = existing.Status
	route.CreatedAt = existing.CreatedAt

	updated, err := u.repo.Update(ctx, route)
	if err != nil {
		return entities.FreightRoute{}, err
	}
	if updated.ID == "" {
		return entities.FreightRoute{}, ErrRouteNotFound
	}
	u.audit.record(ctx, actor, entities.AuditActionRouteUpdated, "freight_route", updated.ID, routeDetails(updated))
	return updated, nil
}

func (u *FreightRouteUseCase) Activate(ctx context.Context, actor entities.Actor, routeID string) (entities.FreightRoute, error) {
	return u.setStatus(ctx, actor, routeID, entities.RouteStatusAtiva, entities.AuditActionRouteActivated)
}

// Deactivate hides the route from quotes. Routes are never deleted so past
// freights keep their reference.
func (u *FreightRouteUseCase) Deactivate(ctx context.Context, actor entities.Actor, routeID string) (entities.FreightRoute, error) {
	return u.setStatus(ctx, actor, routeID, entities.RouteStatusInativa, entities.AuditActionRouteDeactivated)
}

func (u *FreightRouteUseCase) GetByID(ctx context.Context, actor entities.Actor, routeID string) (entities.FreightRoute, error) {
	return u.owned(ctx, actor, routeID)
}

func (u *FreightRouteUseCase) ListByCarrier(ctx context.Context, actor entities.Actor, carrierID string) ([]entities.FreightRoute, error) {
	carrierID = strings.TrimSpace(carrierID)
	if carrierID == "" {
		return nil, ErrInvalidRouteCarrier
	}
	if !actor.CanManageCarrier(carrierID) {
		return nil, ErrForbidden
	}
	return u.repo.ListByCarrier(ctx, carrierID)
}

func (u *FreightRouteUseCase) setStatus(ctx context.Context, actor entities.Actor, routeID string, status entities.RouteStatus, action string) (entities.FreightRoute, error) {
	existing, err := u.owned(ctx, actor, routeID)
	if err != nil {
		return entities.FreightRoute{}, err
	}
	if existing.Status == status {
		return existing, nil
	}
	updated, err := u.repo.UpdateStatus(ctx, existing.ID, status)
	if err != nil {
		return entities.FreightRoute{}, err
	}
	if updated.ID == "" {
		return entities.FreightRoute{}, ErrRouteNotFound
	}
	u.audit.record(ctx, actor, action, "freight_route", updated.ID, map[string]string{"status": string(status)})
	u.logger.Info("[route][usecase] status changed", zap.String("route_id", updated.ID), zap.String("status", string(status)))
	return updated, nil
}

func (u *FreightRouteUseCase) owned(ctx context.Context, actor entities.Actor, routeID string) (entities.FreightRoute, error) {
	routeID = strings.TrimSpace(routeID)
	if routeID == "" {
		return entities.FreightRoute{}, ErrRouteNotFound
	}
	route, err := u.repo.GetByID(ctx, routeID)
	if err != nil {
		return entities.FreightRoute{}, err
	}
	if route.ID == "" {
		return entities.FreightRoute{}, ErrRouteNotFound
	}
	if !actor.CanManageCarrier(route.CarrierID) {
		return entities.FreightRoute{}, ErrForbidden
	}
	return route, nil
}

// build validates the input and derives the published rate. On update a
// carrier keeps the margin already stored on the route.
func (u *FreightRouteUseCase) build(ctx context.Context, actor entities.Actor, in RouteInput, existing *entities.FreightRoute) (entities.FreightRoute, error) {
	origin, err := pricing.ParseZipRange(in.OriginStart, in.OriginEnd)
	if err != nil {
		return entities.FreightRoute{}, err
	}
	dest, err := pricing.ParseZipRange(in.DestStart, in.DestEnd)
	if err != nil {
		return entities.FreightRoute{}, err
	}
	if in.DeadlineDays <= 0 {
		return entities.FreightRoute{}, ErrInvalidDeadline
	}

	var margin decimal.Decimal
	switch {
	case actor.IsAdmin() && in.MarginPercent != nil:
		margin = *in.MarginPercent
	case existing != nil:
		margin = existing.MarginPercent
	default:
		settings, err := loadPlatformSettings(ctx, u.settings, u.logger)
		if err != nil {
			return entities.FreightRoute{}, err
		}
		margin = settings.DefaultMarginPercent
	}

	rate, err := pricing.ApplyMargin(in.CostPricePerKg, in.CostMinPrice, margin)
	if err != nil {
		return entities.FreightRoute{}, err
	}
	return entities.FreightRoute{
		Origin:              origin,
		Destination:         dest,
		CostPricePerKg:      rate.CostPricePerKg,
		CostMinPrice:        rate.CostMinPrice,
		MarginPercent:       rate.MarginPercent,
		PublishedPricePerKg: rate.PublishedPricePerKg,
		PublishedMinPrice:   rate.PublishedMinPrice,
		DeadlineDays:        in.DeadlineDays,
	}, nil
}

func routeDetails(r entities.FreightRoute) map[string]string {
	return map[string]string{
		"carrier_id":       r.CarrierID,
		"origin":           pricing.ZipRangeKey(r.Origin),
		"destination":      pricing.ZipRangeKey(r.Destination),
		"cost_per_kg":      r.CostPricePerKg.String(),
		"margin_percent":   r.MarginPercent.String(),
		"published_per_kg": r.PublishedPricePerKg.String(),
		"deadline_days":    strconv.Itoa(r.DeadlineDays),
	}
}
