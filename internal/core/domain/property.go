package domain

import "time"

// Property - одна карточка объявления. Коллекция загружается один раз и дальше только читается.
type Property struct {
	ID           string
	Title        string
	Address      string
	Price        int64 // целые доллары
	PropertyType string
	Bedrooms     int
	Bathrooms    int
	SquareFeet   int
	ListingDate  time.Time
	Description  string
	Features     []string
	Images       []string
	Parking      int
	YearBuilt    int
}

// KnownPropertyTypes - типы, которые показываются в фильтрах в первую очередь.
var KnownPropertyTypes = []string{"House", "Apartment", "Condo", "Townhouse", "Villa"}

// Clone возвращает копию, не делящую срезы с оригиналом.
func (p Property) Clone() Property {
	c := p
	if p.Features != nil {
		c.Features = append([]string(nil), p.Features...)
	}
	if p.Images != nil {
		c.Images = append([]string(nil), p.Images...)
	}
	return c
}

// PaginatedResult - страница результатов поиска.
type PaginatedResult struct {
	Properties   []Property
	TotalCount   int
	CurrentPage  int
	ItemsPerPage int
}
