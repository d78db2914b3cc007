package interfaces

import (
	"context"
	"rotaclick/internal/domain/entities"
	"time"
)

// IAuditLogRepository is append-only: entries are never updated or deleted.
type IAuditLogRepository interface {
	Create(ctx context.Context, l entities.AuditLog) error
	ListByPeriod(ctx context.Context, from, to time.Time) ([]entities.AuditLog, error)
}
