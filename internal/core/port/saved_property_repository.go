package port

import (
	"context"

	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
)

// SavedPropertyRepositoryPort - контракт для хранилища закладок.
type SavedPropertyRepositoryPort interface {
	GetAll(ctx context.Context) ([]domain.SavedProperty, error)
	GetByPropertyID(ctx context.Context, propertyID string) (*domain.SavedProperty, error)
	// Create идемпотентен: для уже сохранённого объекта возвращается существующая запись.
	Create(ctx context.Context, saved domain.SavedProperty) (*domain.SavedProperty, error)
	UpdateNotes(ctx context.Context, propertyID, notes string) (*domain.SavedProperty, error)
	Delete(ctx context.Context, propertyID string) error
	DeleteAll(ctx context.Context) ([]domain.SavedProperty, error)
}
