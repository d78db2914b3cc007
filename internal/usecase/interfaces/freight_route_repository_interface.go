package interfaces

import (
	"context"
	"rotaclick/internal/domain/entities"
)

// IFreightRouteRepository abstracts DynamoDB persistence for FreightRoute.
//
// Lookups return an empty route (ID == "") when nothing matches.
type IFreightRouteRepository interface {
	Create(ctx context.Context, r entities.FreightRoute) (entities.FreightRoute, error)
	// Upsert writes the route under its ID, keeping the original created_at.
	Upsert(ctx context.Context, r entities.FreightRoute) (entities.FreightRoute, error)
	Update(ctx context.Context, r entities.FreightRoute) (entities.FreightRoute, error)
	UpdateStatus(ctx context.Context, id string, status entities.RouteStatus) (entities.FreightRoute, error)
	GetByID(ctx context.Context, id string) (entities.FreightRoute, error)
	ListByCarrier(ctx context.Context, carrierID string) ([]entities.FreightRoute, error)
	ListActive(ctx context.Context) ([]entities.FreightRoute, error)
}
