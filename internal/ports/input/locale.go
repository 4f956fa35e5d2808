package input

import (
	"context"

	"demolocales/internal/domain/entities"
)

type LocaleUseCase interface {
	Update(ctx context.Context, target entities.LocaleTarget) error
	UpdateAll(ctx context.Context, targets []entities.LocaleTarget) []entities.UpdateResult
}
