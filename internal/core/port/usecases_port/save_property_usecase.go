package usecases_port

import (
	"context"

	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
)

// SavePropertyUseCasePort возвращает запись и признак того, что она создана этим вызовом.
type SavePropertyUseCasePort interface {
	Execute(ctx context.Context, propertyID, notes string) (*domain.SavedProperty, bool, error)
}
