package rest

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/apper-canvas/estate-view-connect/internal/contextkeys"
	"github.com/apper-canvas/estate-view-connect/internal/core/port"
	"github.com/apper-canvas/estate-view-connect/internal/core/port/usecases_port"
)

type SavedHandler struct {
	getSavedUC    usecases_port.GetSavedPropertiesUseCasePort
	saveUC        usecases_port.SavePropertyUseCasePort
	removeUC      usecases_port.RemoveSavedPropertyUseCasePort
	clearUC       usecases_port.ClearSavedPropertiesUseCasePort
	toggleUC      usecases_port.ToggleSavedPropertyUseCasePort
	updateNotesUC usecases_port.UpdateSavedNotesUseCasePort
}

func NewSavedHandler(
	getSavedUC usecases_port.GetSavedPropertiesUseCasePort,
	saveUC usecases_port.SavePropertyUseCasePort,
	removeUC usecases_port.RemoveSavedPropertyUseCasePort,
	clearUC usecases_port.ClearSavedPropertiesUseCasePort,
	toggleUC usecases_port.ToggleSavedPropertyUseCasePort,
	updateNotesUC usecases_port.UpdateSavedNotesUseCasePort,
) *SavedHandler {
	return &SavedHandler{
		getSavedUC:    getSavedUC,
		saveUC:        saveUC,
		removeUC:      removeUC,
		clearUC:       clearUC,
		toggleUC:      toggleUC,
		updateNotesUC: updateNotesUC,
	}
}

// GetSaved обрабатывает GET /api/v1/saved
func (h *SavedHandler) GetSaved(w http.ResponseWriter, r *http.Request) {
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "GetSaved",
	})

	list, err := h.getSavedUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, handlerLogger, err, "Failed to retrieve saved properties")
		return
	}

	response := SavedListResponse{
		Data: make([]SavedCardResponse, len(list.Items)),
		Summary: SavedSummaryResponse{
			Count:             list.Summary.Count,
			AveragePrice:      list.Summary.AveragePrice,
			AverageBedrooms:   list.Summary.AverageBedrooms,
			AverageSquareFeet: list.Summary.AverageSquareFeet,
		},
	}
	for i, item := range list.Items {
		response.Data[i] = SavedCardResponse{
			Property:  toPropertyCard(item.Property),
			SavedDate: item.SavedDate,
			Notes:     item.Notes,
		}
	}

	RespondWithJSON(w, http.StatusOK, response)
}

// SaveProperty обрабатывает POST /api/v1/saved
func (h *SavedHandler) SaveProperty(w http.ResponseWriter, r *http.Request) {
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "SaveProperty",
	})

	var req SavePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlerLogger.Warn("Invalid request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.PropertyID = strings.TrimSpace(req.PropertyID)
	if req.PropertyID == "" {
		WriteJSONError(w, http.StatusBadRequest, "property_id is required")
		return
	}

	saved, created, err := h.saveUC.Execute(r.Context(), req.PropertyID, req.Notes)
	if err != nil {
		writeUseCaseError(w, handlerLogger, err, "Failed to save property")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	RespondWithJSON(w, status, toSavedProperty(*saved))
}

// UpdateNotes обрабатывает PUT /api/v1/saved/{propertyID}
func (h *SavedHandler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     "UpdateNotes",
		"property_id": propertyID,
	})

	var req UpdateNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Notes == nil {
		WriteJSONError(w, http.StatusBadRequest, "Request body must contain notes")
		return
	}

	updated, err := h.updateNotesUC.Execute(r.Context(), propertyID, *req.Notes)
	if err != nil {
		writeUseCaseError(w, handlerLogger, err, "Failed to update notes")
		return
	}

	RespondWithJSON(w, http.StatusOK, toSavedProperty(*updated))
}

// ToggleSaved обрабатывает POST /api/v1/saved/{propertyID}/toggle
func (h *SavedHandler) ToggleSaved(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     "ToggleSaved",
		"property_id": propertyID,
	})

	saved, err := h.toggleUC.Execute(r.Context(), propertyID)
	if err != nil {
		writeUseCaseError(w, handlerLogger, err, "Failed to toggle saved state")
		return
	}

	RespondWithJSON(w, http.StatusOK, ToggleSavedResponse{PropertyID: propertyID, Saved: saved})
}

// RemoveSaved обрабатывает DELETE /api/v1/saved/{propertyID}
func (h *SavedHandler) RemoveSaved(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     "RemoveSaved",
		"property_id": propertyID,
	})

	if err := h.removeUC.Execute(r.Context(), propertyID); err != nil {
		writeUseCaseError(w, handlerLogger, err, "Failed to remove saved property")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearSaved обрабатывает DELETE /api/v1/saved
func (h *SavedHandler) ClearSaved(w http.ResponseWriter, r *http.Request) {
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "ClearSaved",
	})

	removed, err := h.clearUC.Execute(r.Context())
	if err != nil {
		writeUseCaseError(w, handlerLogger, err, "Failed to clear saved properties")
		return
	}

	RespondWithJSON(w, http.StatusOK, ClearSavedResponse{Removed: removed})
}
