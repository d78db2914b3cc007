package interfaces

import (
	"context"
	"rotaclick/internal/domain/entities"
)

// ICarrierRepository abstracts DynamoDB persistence for Carrier.
type ICarrierRepository interface {
	Create(ctx context.Context, c entities.Carrier) (entities.Carrier, error)
	GetByID(ctx context.Context, id string) (entities.Carrier, error)
	GetByCNPJ(ctx context.Context, cnpj string) (entities.Carrier, error)
	GetByOwnerUserID(ctx context.Context, userID string) (entities.Carrier, error)
	ListByStatus(ctx context.Context, status entities.ApprovalStatus) ([]entities.Carrier, error)
	UpdateApproval(ctx context.Context, c entities.Carrier) (entities.Carrier, error)
}
