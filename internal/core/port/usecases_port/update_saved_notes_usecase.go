package usecases_port

import (
	"context"

	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
)

type UpdateSavedNotesUseCasePort interface {
	Execute(ctx context.Context, propertyID, notes string) (*domain.SavedProperty, error)
}
