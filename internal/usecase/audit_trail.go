package usecase

import (
	"context"
	"errors"
	"rotaclick/internal/domain/entities"
	"rotaclick/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ErrForbidden is returned when the actor may not perform the operation.
var ErrForbidden = errors.New("forbidden")

// auditTrail appends audit entries after a mutation succeeded. A failed
// write is logged and does not undo the mutation.
type auditTrail struct {
	repo   interfaces.IAuditLogRepository
	logger *zap.Logger
}

func newAuditTrail(repo interfaces.IAuditLogRepository, logger *zap.Logger) *auditTrail {
	return &auditTrail{repo: repo, logger: logger}
}

func (a *auditTrail) record(ctx context.Context, actor entities.Actor, action, entityType, entityID string, details map[string]string) {
	if a == nil || a.repo == nil {
		return
	}
	entry := entities.AuditLog{
		ActorID:    actor.UserID,
		ActorRole:  actor.Role,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	}
	if err := a.repo.Create(ctx, entry); err != nil {
		a.logger.Error("[audit][usecase] write failed",
			zap.String("action", action),
			zap.String("entity_id", entityID),
			zap.Error(err))
	}
}
