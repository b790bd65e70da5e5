package usecase

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
	"github.com/apper-canvas/estate-view-connect/internal/core/port/usecases_port"
)

func TestFindProperties_Pagination(t *testing.T) {
	uc := NewFindPropertiesUseCase(&fakeSource{properties: manyProperties(45)})

	testCases := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
		wantLen     int
		wantFirstID string
	}{
		{"defaults", 0, 0, 1, 20, 20, "1"},
		{"second page", 2, 20, 2, 20, 20, "21"},
		{"partial last page", 3, 20, 3, 20, 5, "41"},
		{"page past the end", 10, 20, 10, 20, 0, ""},
		{"per page over limit", 1, 500, 1, 20, 20, "1"},
		{"negative page", -3, 10, 1, 10, 10, "1"},
		{"max per page", 1, 100, 1, 100, 45, "1"},
		{"huge page", math.MaxInt, 20, math.MaxInt, 20, 0, ""},
		{"huge page with max per page", math.MaxInt, 100, math.MaxInt, 100, 0, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := uc.Execute(context.Background(), usecases_port.FindPropertiesQuery{Page: tc.page, PerPage: tc.perPage})
			require.NoError(t, err)
			assert.Equal(t, 45, res.TotalCount)
			assert.Equal(t, tc.wantPage, res.CurrentPage)
			assert.Equal(t, tc.wantPerPage, res.ItemsPerPage)
			require.Len(t, res.Properties, tc.wantLen)
			assert.NotNil(t, res.Properties)
			if tc.wantLen > 0 {
				assert.Equal(t, tc.wantFirstID, res.Properties[0].ID)
			}
		})
	}
}

func TestPageBounds(t *testing.T) {
	testCases := []struct {
		name                 string
		page, perPage, total int
		wantStart, wantEnd   int
	}{
		{"first page", 1, 20, 45, 0, 20},
		{"last partial page", 3, 20, 45, 40, 45},
		{"exactly full last page", 2, 10, 20, 10, 20},
		{"first page past the end", 3, 10, 20, 20, 20},
		{"empty collection", 1, 20, 0, 0, 0},
		{"max int page", math.MaxInt, 100, 45, 45, 45},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var start, end int
			require.NotPanics(t, func() { start, end = pageBounds(tc.page, tc.perPage, tc.total) })
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantEnd, end)
		})
	}
}

func TestFindProperties_SearchFilterSort(t *testing.T) {
	source := &fakeSource{properties: []domain.Property{
		{ID: "A", Title: "Maple House", Address: "1 Maple St", Price: 500000, PropertyType: "House", Bedrooms: 3},
		{ID: "B", Title: "Oak Apartment", Address: "2 Oak Ave", Price: 300000, PropertyType: "Apartment", Bedrooms: 1},
		{ID: "C", Title: "Maple Condo", Address: "3 Maple Ct", Price: 400000, PropertyType: "Condo", Bedrooms: 2},
	}}
	uc := NewFindPropertiesUseCase(source)

	res, err := uc.Execute(context.Background(), usecases_port.FindPropertiesQuery{
		Search: "maple",
		Raw:    domain.RawFilters{MinBedrooms: "2"},
		Sort:   "price-desc",
	})
	require.NoError(t, err)
	require.Len(t, res.Properties, 2)
	assert.Equal(t, "A", res.Properties[0].ID)
	assert.Equal(t, "C", res.Properties[1].ID)
	assert.Equal(t, 2, res.TotalCount)
}

func TestFindProperties_DefaultAndUnknownSort(t *testing.T) {
	source := &fakeSource{properties: []domain.Property{
		{ID: "A", Price: 500000},
		{ID: "B", Price: 300000},
	}}
	uc := NewFindPropertiesUseCase(source)

	res, err := uc.Execute(context.Background(), usecases_port.FindPropertiesQuery{})
	require.NoError(t, err)
	assert.Equal(t, "B", res.Properties[0].ID, "empty sort falls back to price ascending")

	res, err = uc.Execute(context.Background(), usecases_port.FindPropertiesQuery{Sort: "popularity"})
	require.NoError(t, err)
	assert.Equal(t, "A", res.Properties[0].ID, "unknown sort keeps source order")
}

func TestFindProperties_SourceError(t *testing.T) {
	uc := NewFindPropertiesUseCase(&fakeSource{err: errBoom})
	_, err := uc.Execute(context.Background(), usecases_port.FindPropertiesQuery{})
	assert.ErrorIs(t, err, errBoom)
}
