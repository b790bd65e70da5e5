package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
)

func TestGetPropertyByID(t *testing.T) {
	uc := NewGetPropertyByIDUseCase(&fakeSource{properties: manyProperties(3)})

	p, err := uc.Execute(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "2", p.ID)

	_, err = uc.Execute(context.Background(), "99")
	assert.ErrorIs(t, err, domain.ErrPropertyNotFound)
}

func TestGetFilterOptions(t *testing.T) {
	source := &fakeSource{properties: []domain.Property{
		prop("1", "Loft", 700000, 2, 900),
		prop("2", "Condo", 250000, 1, 700),
		prop("3", "House", 900000, 4, 2400),
		prop("4", "Barn", 150000, 2, 3000),
		prop("5", "House", 400000, 0, 1200),
		prop("6", "Loft", 300000, 1, 800),
	}}
	uc := NewGetFilterOptionsUseCase(source)

	opts, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"House", "Condo", "Loft", "Barn"}, opts.PropertyTypes)
	assert.Equal(t, int64(150000), opts.MinPrice)
	assert.Equal(t, int64(900000), opts.MaxPrice)
	assert.Equal(t, []int{0, 1, 2, 4}, opts.Bedrooms)
	assert.Equal(t, 6, opts.Count)
}

func TestGetFilterOptions_Empty(t *testing.T) {
	uc := NewGetFilterOptionsUseCase(&fakeSource{})

	opts, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, opts.PropertyTypes)
	assert.NotNil(t, opts.PropertyTypes)
	assert.Empty(t, opts.Bedrooms)
	assert.Zero(t, opts.MinPrice)
	assert.Zero(t, opts.MaxPrice)
	assert.Zero(t, opts.Count)
}

func TestGetFilterOptions_SourceError(t *testing.T) {
	_, err := NewGetFilterOptionsUseCase(&fakeSource{err: errBoom}).Execute(context.Background())
	assert.ErrorIs(t, err, errBoom)
}
