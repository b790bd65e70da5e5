package usecases_port

import (
	"context"

	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
)

type GetFilterOptionsUseCasePort interface {
	Execute(ctx context.Context) (*domain.FilterOptions, error)
}
