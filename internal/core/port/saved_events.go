package port

import (
	"context"

	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
)

// SavedEventsPort публикует события об изменении списка сохранённого.
type SavedEventsPort interface {
	PublishSaved(ctx context.Context, saved domain.SavedProperty) error
	PublishRemoved(ctx context.Context, propertyID string) error
}

// NoopSavedEvents используется, когда брокер сообщений отключён.
type NoopSavedEvents struct{}

func (NoopSavedEvents) PublishSaved(ctx context.Context, saved domain.SavedProperty) error {
	return nil
}

func (NoopSavedEvents) PublishRemoved(ctx context.Context, propertyID string) error {
	return nil
}
