package usecase

import (
	"context"

	"github.com/apper-canvas/estate-view-connect/internal/contextkeys"
	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
	"github.com/apper-canvas/estate-view-connect/internal/core/port"
)

type UpdateSavedNotesUseCase struct {
	repo port.SavedPropertyRepositoryPort
}

func NewUpdateSavedNotesUseCase(repo port.SavedPropertyRepositoryPort) *UpdateSavedNotesUseCase {
	return &UpdateSavedNotesUseCase{repo: repo}
}

func (uc *UpdateSavedNotesUseCase) Execute(ctx context.Context, propertyID, notes string) (*domain.SavedProperty, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "UpdateSavedNotes",
		"property_id": propertyID,
	})
	ucLogger.Info("Use case started", nil)

	updated, err := uc.repo.UpdateNotes(ctx, propertyID, notes)
	if err != nil {
		ucLogger.Warn("Repository returned an error", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return updated, nil
}
