package usecase

import (
	"context"

	"github.com/apper-canvas/estate-view-connect/internal/contextkeys"
	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
	"github.com/apper-canvas/estate-view-connect/internal/core/port"
)

type GetPropertyByIDUseCase struct {
	source port.PropertySourcePort
}

func NewGetPropertyByIDUseCase(source port.PropertySourcePort) *GetPropertyByIDUseCase {
	return &GetPropertyByIDUseCase{source: source}
}

func (uc *GetPropertyByIDUseCase) Execute(ctx context.Context, id string) (*domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case":    "GetPropertyByID",
		"property_id": id,
	})
	ucLogger.Info("Use case started", nil)

	p, err := uc.source.GetByID(ctx, id)
	if err != nil {
		ucLogger.Warn("Property lookup failed", port.Fields{"error": err.Error()})
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return p, nil
}
