package fixture

import (
	"fmt"
	"time"

	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
)

type propertyDTO struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Address      string   `json:"address"`
	Price        int64    `json:"price"`
	PropertyType string   `json:"propertyType"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	SquareFeet   int      `json:"squareFeet"`
	ListingDate  string   `json:"listingDate"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Images       []string `json:"images"`
	Parking      int      `json:"parking"`
	YearBuilt    int      `json:"yearBuilt"`
}

type savedPropertyDTO struct {
	ID         string `json:"id"`
	PropertyID string `json:"propertyId"`
	SavedDate  string `json:"savedDate"`
	Notes      string `json:"notes"`
}

func (d propertyDTO) toDomain() (domain.Property, error) {
	listed, err := time.Parse(time.RFC3339, d.ListingDate)
	if err != nil {
		return domain.Property{}, fmt.Errorf("property %s: invalid listingDate %q: %w", d.ID, d.ListingDate, err)
	}
	return domain.Property{
		ID:           d.ID,
		Title:        d.Title,
		Address:      d.Address,
		Price:        d.Price,
		PropertyType: d.PropertyType,
		Bedrooms:     d.Bedrooms,
		Bathrooms:    d.Bathrooms,
		SquareFeet:   d.SquareFeet,
		ListingDate:  listed,
		Description:  d.Description,
		Features:     d.Features,
		Images:       d.Images,
		Parking:      d.Parking,
		YearBuilt:    d.YearBuilt,
	}, nil
}

func (d savedPropertyDTO) toDomain() (domain.SavedProperty, error) {
	savedAt, err := time.Parse(time.RFC3339, d.SavedDate)
	if err != nil {
		return domain.SavedProperty{}, fmt.Errorf("saved property %s: invalid savedDate %q: %w", d.ID, d.SavedDate, err)
	}
	return domain.SavedProperty{
		ID:         d.ID,
		PropertyID: d.PropertyID,
		SavedDate:  savedAt,
		Notes:      d.Notes,
	}, nil
}
