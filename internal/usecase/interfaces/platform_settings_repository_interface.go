package interfaces

import (
	"context"
	"rotaclick/internal/domain/entities"
)

type IPlatformSettingsRepository interface {
	GetAll(ctx context.Context) ([]entities.PlatformSetting, error)
	PutMany(ctx context.Context, settings []entities.PlatformSetting) error
}
