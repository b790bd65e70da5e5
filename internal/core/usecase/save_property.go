package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/apper-canvas/estate-view-connect/internal/contextkeys"
	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
	"github.com/apper-canvas/estate-view-connect/internal/core/port"
)

type SavePropertyUseCase struct {
	source port.PropertySourcePort
	repo   port.SavedPropertyRepositoryPort
	events port.SavedEventsPort
	now    func() time.Time
	newID  func() string
}

func NewSavePropertyUseCase(
	source port.PropertySourcePort,
	repo port.SavedPropertyRepositoryPort,
	events port.SavedEventsPort,
) *SavePropertyUseCase {
	return &SavePropertyUseCase{
		source: source,
		repo:   repo,
		events: events,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Execute идемпотентен: повторное сохранение возвращает существующую запись без нового события.
func (uc *SavePropertyUseCase) Execute(ctx context.Context, propertyID, notes string) (*domain.SavedProperty, bool, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "SaveProperty",
		"property_id": propertyID,
	})
	ucLogger.Info("Use case started", nil)

	if propertyID == "" {
		return nil, false, fmt.Errorf("property id is required: %w", domain.ErrInvalidInput)
	}

	if _, err := uc.source.GetByID(ctx, propertyID); err != nil {
		ucLogger.Warn("Cannot save unknown property", port.Fields{"error": err.Error()})
		return nil, false, err
	}

	id := uc.newID()
	saved, err := uc.repo.Create(ctx, domain.SavedProperty{
		ID:         id,
		PropertyID: propertyID,
		SavedDate:  uc.now().UTC(),
		Notes:      notes,
	})
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return nil, false, fmt.Errorf("failed to save property: %w", err)
	}

	if saved.ID != id {
		ucLogger.Info("Use case finished successfully", port.Fields{
			"saved_property_id": saved.ID,
			"already_saved":     true,
		})
		return saved, false, nil
	}

	// событие вторично, ошибка публикации не отменяет сохранение
	if err := uc.events.PublishSaved(ctx, *saved); err != nil {
		ucLogger.Error("Failed to publish saved event", err, nil)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"saved_property_id": saved.ID})
	return saved, true, nil
}
