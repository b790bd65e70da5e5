package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/apper-canvas/estate-view-connect/internal/contextkeys"
	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
	"github.com/apper-canvas/estate-view-connect/internal/core/port"
	"github.com/apper-canvas/estate-view-connect/internal/core/port/usecases_port"
)

type ToggleSavedPropertyUseCase struct {
	repo   port.SavedPropertyRepositoryPort
	save   usecases_port.SavePropertyUseCasePort
	remove usecases_port.RemoveSavedPropertyUseCasePort
}

func NewToggleSavedPropertyUseCase(
	repo port.SavedPropertyRepositoryPort,
	save usecases_port.SavePropertyUseCasePort,
	remove usecases_port.RemoveSavedPropertyUseCasePort,
) *ToggleSavedPropertyUseCase {
	return &ToggleSavedPropertyUseCase{repo: repo, save: save, remove: remove}
}

// Execute возвращает состояние после переключения: true - объект теперь сохранён.
func (uc *ToggleSavedPropertyUseCase) Execute(ctx context.Context, propertyID string) (bool, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "ToggleSavedProperty",
		"property_id": propertyID,
	})
	ucLogger.Info("Use case started", nil)

	_, err := uc.repo.GetByPropertyID(ctx, propertyID)
	switch {
	case err == nil:
		if err := uc.remove.Execute(ctx, propertyID); err != nil {
			return false, err
		}
		ucLogger.Info("Use case finished successfully", port.Fields{"saved": false})
		return false, nil
	case errors.Is(err, domain.ErrSavedPropertyNotFound):
		if _, _, err := uc.save.Execute(ctx, propertyID, ""); err != nil {
			return false, err
		}
		ucLogger.Info("Use case finished successfully", port.Fields{"saved": true})
		return true, nil
	default:
		ucLogger.Error("Repository returned an error", err, nil)
		return false, fmt.Errorf("failed to check saved state: %w", err)
	}
}
