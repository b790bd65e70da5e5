package port

import (
	"context"

	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
)

// PropertySourcePort - источник базовой коллекции объектов.
type PropertySourcePort interface {
	GetAll(ctx context.Context) ([]domain.Property, error)
	// GetByID возвращает ошибку, оборачивающую domain.ErrPropertyNotFound, если объекта нет.
	GetByID(ctx context.Context, id string) (*domain.Property, error)
}
