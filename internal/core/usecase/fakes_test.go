package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
)

type fakeSource struct {
	properties []domain.Property
	err        error
}

func (f *fakeSource) GetAll(ctx context.Context) ([]domain.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Property, len(f.properties))
	copy(out, f.properties)
	return out, nil
}

func (f *fakeSource) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.properties {
		if p.ID == id {
			c := p
			return &c, nil
		}
	}
	return nil, fmt.Errorf("fake: %q: %w", id, domain.ErrPropertyNotFound)
}

type fakeRepo struct {
	items []domain.SavedProperty
	err   error
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]domain.SavedProperty, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.SavedProperty(nil), f.items...), nil
}

func (f *fakeRepo) GetByPropertyID(ctx context.Context, propertyID string) (*domain.SavedProperty, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.items {
		if s.PropertyID == propertyID {
			c := s
			return &c, nil
		}
	}
	return nil, domain.ErrSavedPropertyNotFound
}

func (f *fakeRepo) Create(ctx context.Context, saved domain.SavedProperty) (*domain.SavedProperty, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.items {
		if s.PropertyID == saved.PropertyID {
			c := s
			return &c, nil
		}
	}
	f.items = append(f.items, saved)
	return &saved, nil
}

func (f *fakeRepo) UpdateNotes(ctx context.Context, propertyID, notes string) (*domain.SavedProperty, error) {
	for i := range f.items {
		if f.items[i].PropertyID == propertyID {
			f.items[i].Notes = notes
			c := f.items[i]
			return &c, nil
		}
	}
	return nil, domain.ErrSavedPropertyNotFound
}

func (f *fakeRepo) Delete(ctx context.Context, propertyID string) error {
	if f.err != nil {
		return f.err
	}
	for i, s := range f.items {
		if s.PropertyID == propertyID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrSavedPropertyNotFound
}

func (f *fakeRepo) DeleteAll(ctx context.Context) ([]domain.SavedProperty, error) {
	if f.err != nil {
		return nil, f.err
	}
	removed := f.items
	f.items = nil
	if removed == nil {
		removed = []domain.SavedProperty{}
	}
	return removed, nil
}

type fakeEvents struct {
	saved   []domain.SavedProperty
	removed []string
	err     error
}

func (f *fakeEvents) PublishSaved(ctx context.Context, saved domain.SavedProperty) error {
	f.saved = append(f.saved, saved)
	return f.err
}

func (f *fakeEvents) PublishRemoved(ctx context.Context, propertyID string) error {
	f.removed = append(f.removed, propertyID)
	return f.err
}

var errBoom = errors.New("boom")

func prop(id, typ string, price int64, bedrooms, sqft int) domain.Property {
	return domain.Property{
		ID:           id,
		Title:        "Property " + id,
		Address:      id + " Main Street",
		Price:        price,
		PropertyType: typ,
		Bedrooms:     bedrooms,
		SquareFeet:   sqft,
		ListingDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func manyProperties(n int) []domain.Property {
	out := make([]domain.Property, n)
	for i := range out {
		out[i] = prop(strconv.Itoa(i+1), "House", int64(100000+i*1000), i%5, 1000)
	}
	return out
}
