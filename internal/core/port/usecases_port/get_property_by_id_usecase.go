package usecases_port

import (
	"context"

	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
)

type GetPropertyByIDUseCasePort interface {
	Execute(ctx context.Context, id string) (*domain.Property, error)
}
