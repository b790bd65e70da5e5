package usecase

import (
	"context"

	"github.com/apper-canvas/estate-view-connect/internal/contextkeys"
	"github.com/apper-canvas/estate-view-connect/internal/core/port"
)

type RemoveSavedPropertyUseCase struct {
	repo   port.SavedPropertyRepositoryPort
	events port.SavedEventsPort
}

func NewRemoveSavedPropertyUseCase(repo port.SavedPropertyRepositoryPort, events port.SavedEventsPort) *RemoveSavedPropertyUseCase {
	return &RemoveSavedPropertyUseCase{repo: repo, events: events}
}

func (uc *RemoveSavedPropertyUseCase) Execute(ctx context.Context, propertyID string) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "RemoveSavedProperty",
		"property_id": propertyID,
	})
	ucLogger.Info("Use case started", nil)

	if err := uc.repo.Delete(ctx, propertyID); err != nil {
		ucLogger.Warn("Repository returned an error", port.Fields{"error": err.Error()})
		return err
	}

	if err := uc.events.PublishRemoved(ctx, propertyID); err != nil {
		ucLogger.Error("Failed to publish removed event", err, nil)
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
