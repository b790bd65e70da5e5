package usecase

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/apper-canvas/estate-view-connect/internal/contextkeys"
	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
	"github.com/apper-canvas/estate-view-connect/internal/core/port"
)

type GetSavedPropertiesUseCase struct {
	repo   port.SavedPropertyRepositoryPort
	source port.PropertySourcePort
}

func NewGetSavedPropertiesUseCase(repo port.SavedPropertyRepositoryPort, source port.PropertySourcePort) *GetSavedPropertiesUseCase {
	return &GetSavedPropertiesUseCase{repo: repo, source: source}
}

// Execute сопоставляет закладки с коллекцией по идентификатору объекта.
// Закладки на исчезнувшие объекты пропускаются.
func (uc *GetSavedPropertiesUseCase) Execute(ctx context.Context) (*domain.SavedList, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetSavedProperties",
	})
	ucLogger.Info("Use case started", nil)

	saved, err := uc.repo.GetAll(ctx)
	if err != nil {
		ucLogger.Error("Failed to get saved properties from repository", err, nil)
		return nil, fmt.Errorf("failed to get saved properties: %w", err)
	}

	all, err := uc.source.GetAll(ctx)
	if err != nil {
		ucLogger.Error("Failed to load properties from source", err, nil)
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}

	byID := make(map[string]domain.Property, len(all))
	for _, p := range all {
		byID[p.ID] = p
	}

	items := make([]domain.SavedPropertyView, 0, len(saved))
	dangling := 0
	for _, s := range saved {
		p, ok := byID[s.PropertyID]
		if !ok {
			dangling++
			continue
		}
		items = append(items, domain.SavedPropertyView{Property: p, SavedDate: s.SavedDate, Notes: s.Notes})
	}
	if dangling > 0 {
		ucLogger.Warn("Saved entries reference missing properties", port.Fields{"skipped": dangling})
	}

	slices.SortStableFunc(items, func(a, b domain.SavedPropertyView) int {
		return b.SavedDate.Compare(a.SavedDate)
	})

	list := &domain.SavedList{Items: items, Summary: summarize(items)}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": list.Summary.Count})
	return list, nil
}

func summarize(items []domain.SavedPropertyView) domain.SavedSummary {
	n := len(items)
	if n == 0 {
		return domain.SavedSummary{}
	}

	var price, bedrooms, area int64
	for _, it := range items {
		price += it.Property.Price
		bedrooms += int64(it.Property.Bedrooms)
		area += int64(it.Property.SquareFeet)
	}

	return domain.SavedSummary{
		Count:             n,
		AveragePrice:      int64(math.Round(float64(price) / float64(n))),
		AverageBedrooms:   math.Round(float64(bedrooms)/float64(n)*10) / 10,
		AverageSquareFeet: int64(math.Round(float64(area) / float64(n))),
	}
}
