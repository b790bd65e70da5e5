package usecases_port

import (
	"context"

	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
)

// FindPropertiesQuery - параметры поиска в том виде, в котором они пришли от клиента.
type FindPropertiesQuery struct {
	Search  string
	Raw     domain.RawFilters
	Sort    string
	Page    int
	PerPage int
}

type FindPropertiesUseCasePort interface {
	Execute(ctx context.Context, query FindPropertiesQuery) (*domain.PaginatedResult, error)
}
