package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/apper-canvas/estate-view-connect/internal/contextkeys"
	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
	"github.com/apper-canvas/estate-view-connect/internal/core/port"
	"github.com/apper-canvas/estate-view-connect/internal/core/port/usecases_port"
)

type PropertyHandler struct {
	findPropertiesUC   usecases_port.FindPropertiesUseCasePort
	getPropertyUC      usecases_port.GetPropertyByIDUseCasePort
	getFilterOptionsUC usecases_port.GetFilterOptionsUseCasePort
}

func NewPropertyHandler(
	findPropertiesUC usecases_port.FindPropertiesUseCasePort,
	getPropertyUC usecases_port.GetPropertyByIDUseCasePort,
	getFilterOptionsUC usecases_port.GetFilterOptionsUseCasePort,
) *PropertyHandler {
	return &PropertyHandler{
		findPropertiesUC:   findPropertiesUC,
		getPropertyUC:      getPropertyUC,
		getFilterOptionsUC: getFilterOptionsUC,
	}
}

// FindProperties обрабатывает GET /api/v1/properties
func (h *PropertyHandler) FindProperties(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	q := usecases_port.FindPropertiesQuery{
		Search: query.Get("search"),
		Raw: domain.RawFilters{
			MinPrice:      query.Get("minPrice"),
			MaxPrice:      query.Get("maxPrice"),
			PropertyTypes: parseStringSlice(query, "propertyTypes"),
			MinBedrooms:   query.Get("minBedrooms"),
			Location:      query.Get("location"),
		},
		Sort:    query.Get("sort"),
		Page:    parseInt(query, "page"),
		PerPage: parseInt(query, "perPage"),
	}

	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "FindProperties",
	})
	handlerLogger.Debug("Processing request to find properties", port.Fields{"query": query.Encode()})

	result, err := h.findPropertiesUC.Execute(r.Context(), q)
	if err != nil {
		writeUseCaseError(w, handlerLogger, err, "Failed to retrieve properties")
		return
	}

	response := PaginatedPropertiesResponse{
		Data:    make([]PropertyCardResponse, len(result.Properties)),
		Total:   result.TotalCount,
		Page:    result.CurrentPage,
		PerPage: result.ItemsPerPage,
	}
	for i, p := range result.Properties {
		response.Data[i] = toPropertyCard(p)
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// GetPropertyDetails обрабатывает GET /api/v1/properties/{propertyID}
func (h *PropertyHandler) GetPropertyDetails(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     "GetPropertyDetails",
		"property_id": propertyID,
	})

	p, err := h.getPropertyUC.Execute(r.Context(), propertyID)
	if err != nil {
		writeUseCaseError(w, handlerLogger, err, "Failed to retrieve property")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyDetails(*p))
}

// GetFilterOptions обрабатывает GET /api/v1/filters/options
func (h *PropertyHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "GetFilterOptions",
	})

	options, err := h.getFilterOptionsUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, handlerLogger, err, "Failed to get filter options")
		return
	}

	RespondWithJSON(w, http.StatusOK, FilterOptionsResponse{
		PropertyTypes: options.PropertyTypes,
		MinPrice:      options.MinPrice,
		MaxPrice:      options.MaxPrice,
		Bedrooms:      options.Bedrooms,
		Count:         options.Count,
	})
}
