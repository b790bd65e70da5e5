package usecases_port

import (
	"context"

	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
)

type GetSavedPropertiesUseCasePort interface {
	Execute(ctx context.Context) (*domain.SavedList, error)
}
