package domain

import (
	"math"
	"strconv"
	"strings"
)

// FilterCriteria - разобранный набор фильтров. nil / пустое значение означает "без ограничения".
type FilterCriteria struct {
	MinPrice      *int64
	MaxPrice      *int64
	PropertyTypes []string
	MinBedrooms   *int
	Location      string
}

// RawFilters - фильтры в том виде, в каком их ввёл пользователь.
type RawFilters struct {
	MinPrice      string
	MaxPrice      string
	PropertyTypes []string
	MinBedrooms   string
	Location      string
}

// IsEmpty сообщает, что ни один фильтр не активен.
func (c FilterCriteria) IsEmpty() bool {
	return c.MinPrice == nil && c.MaxPrice == nil && len(c.PropertyTypes) == 0 &&
		c.MinBedrooms == nil && c.Location == ""
}

// ParseFilterCriteria разбирает сырые строки один раз на границе.
// Нечисловые значения считаются отсутствующим фильтром.
func ParseFilterCriteria(raw RawFilters) FilterCriteria {
	criteria := FilterCriteria{
		MinPrice: parseInt64(raw.MinPrice),
		MaxPrice: parseInt64(raw.MaxPrice),
		Location: raw.Location,
	}

	if v := parseInt64(raw.MinBedrooms); v != nil && *v >= math.MinInt32 && *v <= math.MaxInt32 {
		bedrooms := int(*v)
		criteria.MinBedrooms = &bedrooms
	}

	seen := make(map[string]struct{}, len(raw.PropertyTypes))
	for _, t := range raw.PropertyTypes {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		criteria.PropertyTypes = append(criteria.PropertyTypes, t)
	}

	return criteria
}

// parseInt64 принимает целое число или конечную десятичную дробь (отбрасывая дробную часть).
func parseInt64(s string) *int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return &v
	}

	if !isPlainDecimal(s) {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return nil
	}
	f = math.Trunc(f)
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return nil
	}
	v := int64(f)
	return &v
}

// isPlainDecimal пропускает только вид [+-]цифры[.цифры], прочие формы ParseFloat отсекаются.
func isPlainDecimal(s string) bool {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return false
	}
	for _, r := range intPart + fracPart {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
