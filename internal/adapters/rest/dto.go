package rest

import (
	"time"

	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
)

// PropertyCardResponse - карточка в списке результатов.
type PropertyCardResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Address      string    `json:"address"`
	Price        int64     `json:"price"`
	PropertyType string    `json:"property_type"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    int       `json:"bathrooms"`
	SquareFeet   int       `json:"square_feet"`
	ListingDate  time.Time `json:"listing_date"`
	Image        string    `json:"image,omitempty"`
}

// PropertyDetailsResponse - страница объекта.
type PropertyDetailsResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Address      string    `json:"address"`
	Price        int64     `json:"price"`
	PropertyType string    `json:"property_type"`
	Bedrooms     int       `json:"bedrooms"`
	Bathrooms    int       `json:"bathrooms"`
	SquareFeet   int       `json:"square_feet"`
	ListingDate  time.Time `json:"listing_date"`
	Description  string    `json:"description"`
	Features     []string  `json:"features"`
	Images       []string  `json:"images"`
	Parking      int       `json:"parking"`
	YearBuilt    int       `json:"year_built"`
}

type PaginatedPropertiesResponse struct {
	Data    []PropertyCardResponse `json:"data"`
	Total   int                    `json:"total"`
	Page    int                    `json:"page"`
	PerPage int                    `json:"per_page"`
}

type FilterOptionsResponse struct {
	PropertyTypes []string `json:"property_types"`
	MinPrice      int64    `json:"min_price"`
	MaxPrice      int64    `json:"max_price"`
	Bedrooms      []int    `json:"bedrooms"`
	Count         int      `json:"count"`
}

type SavedCardResponse struct {
	Property  PropertyCardResponse `json:"property"`
	SavedDate time.Time            `json:"saved_date"`
	Notes     string               `json:"notes"`
}

type SavedSummaryResponse struct {
	Count             int     `json:"count"`
	AveragePrice      int64   `json:"average_price"`
	AverageBedrooms   float64 `json:"average_bedrooms"`
	AverageSquareFeet int64   `json:"average_square_feet"`
}

type SavedListResponse struct {
	Data    []SavedCardResponse  `json:"data"`
	Summary SavedSummaryResponse `json:"summary"`
}

type SavedPropertyResponse struct {
	ID         string    `json:"id"`
	PropertyID string    `json:"property_id"`
	SavedDate  time.Time `json:"saved_date"`
	Notes      string    `json:"notes"`
}

type SavePropertyRequest struct {
	PropertyID string `json:"property_id"`
	Notes      string `json:"notes"`
}

type UpdateNotesRequest struct {
	Notes *string `json:"notes"`
}

type ToggleSavedResponse struct {
	PropertyID string `json:"property_id"`
	Saved      bool   `json:"saved"`
}

type ClearSavedResponse struct {
	Removed int `json:"removed"`
}

func toPropertyCard(p domain.Property) PropertyCardResponse {
	card := PropertyCardResponse{
		ID:           p.ID,
		Title:        p.Title,
		Address:      p.Address,
		Price:        p.Price,
		PropertyType: p.PropertyType,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		SquareFeet:   p.SquareFeet,
		ListingDate:  p.ListingDate,
	}
	if len(p.Images) > 0 {
		card.Image = p.Images[0]
	}
	return card
}

func toPropertyDetails(p domain.Property) PropertyDetailsResponse {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	images := p.Images
	if images == nil {
		images = []string{}
	}
	return PropertyDetailsResponse{
		ID:           p.ID,
		Title:        p.Title,
		Address:      p.Address,
		Price:        p.Price,
		PropertyType: p.PropertyType,
		Bedrooms:     p.Bedrooms,
		Bathrooms:    p.Bathrooms,
		SquareFeet:   p.SquareFeet,
		ListingDate:  p.ListingDate,
		Description:  p.Description,
		Features:     features,
		Images:       images,
		Parking:      p.Parking,
		YearBuilt:    p.YearBuilt,
	}
}

func toSavedProperty(s domain.SavedProperty) SavedPropertyResponse {
	return SavedPropertyResponse{
		ID:         s.ID,
		PropertyID: s.PropertyID,
		SavedDate:  s.SavedDate,
		Notes:      s.Notes,
	}
}
