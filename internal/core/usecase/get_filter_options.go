package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/apper-canvas/estate-view-connect/internal/contextkeys"
	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
	"github.com/apper-canvas/estate-view-connect/internal/core/port"
)

type GetFilterOptionsUseCase struct {
	source port.PropertySourcePort
}

func NewGetFilterOptionsUseCase(source port.PropertySourcePort) *GetFilterOptionsUseCase {
	return &GetFilterOptionsUseCase{source: source}
}

func (uc *GetFilterOptionsUseCase) Execute(ctx context.Context) (*domain.FilterOptions, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetFilterOptions",
	})
	ucLogger.Info("Use case started", nil)

	all, err := uc.source.GetAll(ctx)
	if err != nil {
		ucLogger.Error("Failed to load properties from source", err, nil)
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}

	options := buildFilterOptions(all)

	ucLogger.Info("Use case finished successfully", port.Fields{"count": options.Count})
	return options, nil
}

// buildFilterOptions: сначала известные типы в каноническом порядке, затем прочие в порядке появления.
func buildFilterOptions(properties []domain.Property) *domain.FilterOptions {
	options := &domain.FilterOptions{
		PropertyTypes: []string{},
		Bedrooms:      []int{},
		Count:         len(properties),
	}

	present := make(map[string]bool)
	var others []string
	bedrooms := make(map[int]bool)

	for i, p := range properties {
		if !present[p.PropertyType] {
			present[p.PropertyType] = true
			if !slices.Contains(domain.KnownPropertyTypes, p.PropertyType) {
				others = append(others, p.PropertyType)
			}
		}
		if !bedrooms[p.Bedrooms] {
			bedrooms[p.Bedrooms] = true
			options.Bedrooms = append(options.Bedrooms, p.Bedrooms)
		}

		if i == 0 || p.Price < options.MinPrice {
			options.MinPrice = p.Price
		}
		if i == 0 || p.Price > options.MaxPrice {
			options.MaxPrice = p.Price
		}
	}

	for _, t := range domain.KnownPropertyTypes {
		if present[t] {
			options.PropertyTypes = append(options.PropertyTypes, t)
		}
	}
	options.PropertyTypes = append(options.PropertyTypes, others...)
	slices.Sort(options.Bedrooms)

	return options
}
