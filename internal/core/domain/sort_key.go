package domain

import "strings"

// SortKey - выбранный порядок выдачи.
type SortKey string

const (
	SortNone         SortKey = ""
	SortPriceAsc     SortKey = "price-asc"
	SortPriceDesc    SortKey = "price-desc"
	SortBedroomsDesc SortKey = "bedrooms-desc"
	SortNewest       SortKey = "newest"
)

// DefaultSortKey совпадает со значением по умолчанию в выпадающем списке UI.
const DefaultSortKey = SortPriceAsc

var sortAliases = map[string]SortKey{
	"price-asc":           SortPriceAsc,
	"price-ascending":     SortPriceAsc,
	"price-desc":          SortPriceDesc,
	"price-descending":    SortPriceDesc,
	"bedrooms-desc":       SortBedroomsDesc,
	"bedrooms-descending": SortBedroomsDesc,
	"newest":              SortNewest,
	"newest-first":        SortNewest,
}

// ParseSortKey возвращает SortNone для неизвестных значений.
func ParseSortKey(s string) SortKey {
	if key, ok := sortAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return key
	}
	return SortNone
}

func (k SortKey) String() string {
	if k == SortNone {
		return "none"
	}
	return string(k)
}
