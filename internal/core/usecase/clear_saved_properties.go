package usecase

import (
	"context"
	"fmt"

	"github.com/apper-canvas/estate-view-connect/internal/contextkeys"
	"github.com/apper-canvas/estate-view-connect/internal/core/port"
)

type ClearSavedPropertiesUseCase struct {
	repo   port.SavedPropertyRepositoryPort
	events port.SavedEventsPort
}

func NewClearSavedPropertiesUseCase(repo port.SavedPropertyRepositoryPort, events port.SavedEventsPort) *ClearSavedPropertiesUseCase {
	return &ClearSavedPropertiesUseCase{repo: repo, events: events}
}

// Execute очищает список и возвращает число удалённых закладок.
func (uc *ClearSavedPropertiesUseCase) Execute(ctx context.Context) (int, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "ClearSavedProperties",
	})
	ucLogger.Info("Use case started", nil)

	removed, err := uc.repo.DeleteAll(ctx)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return 0, fmt.Errorf("failed to clear saved properties: %w", err)
	}

	failed := 0
	for _, s := range removed {
		if err := uc.events.PublishRemoved(ctx, s.PropertyID); err != nil {
			failed++
			ucLogger.Error("Failed to publish removed event", err, port.Fields{"property_id": s.PropertyID})
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"removed":       len(removed),
		"events_failed": failed,
	})
	return len(removed), nil
}
