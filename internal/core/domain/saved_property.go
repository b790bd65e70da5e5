package domain

import "time"

// SavedProperty - закладка пользователя на объект.
type SavedProperty struct {
	ID         string
	PropertyID string
	SavedDate  time.Time
	Notes      string
}

// SavedPropertyView - сохранённая закладка вместе с данными объекта.
type SavedPropertyView struct {
	Property  Property
	SavedDate time.Time
	Notes     string
}

// SavedSummary - агрегаты, которые показываются под списком сохранённого.
type SavedSummary struct {
	Count             int
	AveragePrice      int64
	AverageBedrooms   float64
	AverageSquareFeet int64
}

type SavedList struct {
	Items   []SavedPropertyView
	Summary SavedSummary
}
