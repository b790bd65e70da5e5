// Package query фильтрует, ищет и сортирует коллекцию объектов в памяти.
// Функции пакета чистые: входной срез не изменяется, результат всегда новый срез.
package query

import (
	"slices"
	"strings"

	"github.com/apper-canvas/estate-view-connect/internal/core/domain"

	"golang.org/x/text/cases"
)

// Apply выполняет поиск, затем фильтры (логическое И), затем устойчивую сортировку.
func Apply(properties []domain.Property, searchTerm string, criteria domain.FilterCriteria, sortKey domain.SortKey) []domain.Property {
	m := newMatcher(searchTerm, criteria)

	filtered := make([]domain.Property, 0, len(properties))
	for _, p := range properties {
		if m.match(p) {
			filtered = append(filtered, p)
		}
	}

	sortInPlace(filtered, sortKey)
	return filtered
}

// Matches сообщает, проходит ли объект поиск и все фильтры.
func Matches(p domain.Property, searchTerm string, criteria domain.FilterCriteria) bool {
	return newMatcher(searchTerm, criteria).match(p)
}

// Sort возвращает отсортированную копию. При равных ключах сохраняется исходный порядок.
func Sort(properties []domain.Property, sortKey domain.SortKey) []domain.Property {
	sorted := make([]domain.Property, len(properties))
	copy(sorted, properties)
	sortInPlace(sorted, sortKey)
	return sorted
}

type matcher struct {
	caser    cases.Caser
	search   string
	criteria domain.FilterCriteria
	location string
	types    map[string]struct{}
}

func newMatcher(searchTerm string, criteria domain.FilterCriteria) *matcher {
	m := &matcher{
		caser:    cases.Fold(),
		criteria: criteria,
	}
	m.search = m.fold(searchTerm)
	m.location = m.fold(criteria.Location)

	if len(criteria.PropertyTypes) > 0 {
		m.types = make(map[string]struct{}, len(criteria.PropertyTypes))
		for _, t := range criteria.PropertyTypes {
			m.types[t] = struct{}{}
		}
	}
	return m
}

func (m *matcher) fold(s string) string {
	if s == "" {
		return ""
	}
	return m.caser.String(s)
}

func (m *matcher) contains(field, foldedNeedle string) bool {
	return strings.Contains(m.fold(field), foldedNeedle)
}

func (m *matcher) match(p domain.Property) bool {
	if m.search != "" &&
		!m.contains(p.Title, m.search) &&
		!m.contains(p.Address, m.search) &&
		!m.contains(p.PropertyType, m.search) {
		return false
	}

	c := m.criteria
	if c.MinPrice != nil && p.Price < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}
	if m.types != nil {
		if _, ok := m.types[p.PropertyType]; !ok {
			return false
		}
	}
	if c.MinBedrooms != nil && p.Bedrooms < *c.MinBedrooms {
		return false
	}
	if m.location != "" && !m.contains(p.Address, m.location) {
		return false
	}
	return true
}

func sortInPlace(properties []domain.Property, sortKey domain.SortKey) {
	cmp := comparator(sortKey)
	if cmp == nil {
		return
	}
	slices.SortStableFunc(properties, cmp)
}

func comparator(sortKey domain.SortKey) func(a, b domain.Property) int {
	switch sortKey {
	case domain.SortPriceAsc:
		return func(a, b domain.Property) int { return compareInt64(a.Price, b.Price) }
	case domain.SortPriceDesc:
		return func(a, b domain.Property) int { return compareInt64(b.Price, a.Price) }
	case domain.SortBedroomsDesc:
		return func(a, b domain.Property) int { return compareInt64(int64(b.Bedrooms), int64(a.Bedrooms)) }
	case domain.SortNewest:
		return func(a, b domain.Property) int { return b.ListingDate.Compare(a.ListingDate) }
	default:
		return nil
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
