package usecase

import (
	"context"
	"fmt"

	"github.com/apper-canvas/estate-view-connect/internal/contextkeys"
	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
	"github.com/apper-canvas/estate-view-connect/internal/core/port"
	"github.com/apper-canvas/estate-view-connect/internal/core/port/usecases_port"
	"github.com/apper-canvas/estate-view-connect/internal/core/query"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
)

type FindPropertiesUseCase struct {
	source port.PropertySourcePort
}

func NewFindPropertiesUseCase(source port.PropertySourcePort) *FindPropertiesUseCase {
	return &FindPropertiesUseCase{source: source}
}

// Execute применяет поиск, фильтры и сортировку ко всей коллекции, затем режет страницу.
func (uc *FindPropertiesUseCase) Execute(ctx context.Context, q usecases_port.FindPropertiesQuery) (*domain.PaginatedResult, error) {
	page, perPage := normalizePage(q.Page, q.PerPage)
	criteria := domain.ParseFilterCriteria(q.Raw)

	sortKey := domain.DefaultSortKey
	if q.Sort != "" {
		sortKey = domain.ParseSortKey(q.Sort)
	}

	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "FindProperties",
		"search":   q.Search,
		"sort":     sortKey.String(),
		"page":     page,
		"per_page": perPage,
	})
	ucLogger.Info("Use case started", nil)

	all, err := uc.source.GetAll(ctx)
	if err != nil {
		ucLogger.Error("Failed to load properties from source", err, nil)
		return nil, fmt.Errorf("failed to load properties: %w", err)
	}

	matched := query.Apply(all, q.Search, criteria, sortKey)

	start, end := pageBounds(page, perPage, len(matched))

	result := &domain.PaginatedResult{
		Properties:   matched[start:end:end],
		TotalCount:   len(matched),
		CurrentPage:  page,
		ItemsPerPage: perPage,
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_count":   result.TotalCount,
		"found_on_page": len(result.Properties),
		"filters_used":  !criteria.IsEmpty(),
	})
	return result, nil
}

// pageBounds считает границы среза без переполнения int при огромном номере страницы.
func pageBounds(page, perPage, total int) (int, int) {
	if page-1 >= (total+perPage-1)/perPage {
		return total, total
	}
	start := (page - 1) * perPage
	return start, min(start+perPage, total)
}

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > maxPerPage {
		perPage = defaultPerPage
	}
	return page, perPage
}
