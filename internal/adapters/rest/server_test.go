package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/estate-view-connect/internal/adapters/fixture"
	memory_adapter "github.com/apper-canvas/estate-view-connect/internal/adapters/memory"
	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
	"github.com/apper-canvas/estate-view-connect/internal/core/port"
	"github.com/apper-canvas/estate-view-connect/internal/core/usecase"
)

type silentLogger struct{}

func (silentLogger) Info(string, port.Fields)                 {}
func (silentLogger) Warn(string, port.Fields)                 {}
func (silentLogger) Debug(string, port.Fields)                {}
func (silentLogger) Error(string, error, port.Fields)         {}
func (l silentLogger) WithFields(port.Fields) port.LoggerPort { return l }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	source, err := fixture.NewPropertySource(fixture.Options{})
	require.NoError(t, err)
	seed, err := fixture.LoadSavedSeed()
	require.NoError(t, err)
	repo := memory_adapter.NewSavedPropertyRepository(seed)
	events := port.NoopSavedEvents{}

	saveUC := usecase.NewSavePropertyUseCase(source, repo, events)
	removeUC := usecase.NewRemoveSavedPropertyUseCase(repo, events)

	propertyHandler := NewPropertyHandler(
		usecase.NewFindPropertiesUseCase(source),
		usecase.NewGetPropertyByIDUseCase(source),
		usecase.NewGetFilterOptionsUseCase(source),
	)
	savedHandler := NewSavedHandler(
		usecase.NewGetSavedPropertiesUseCase(repo, source),
		saveUC,
		removeUC,
		usecase.NewClearSavedPropertiesUseCase(repo, events),
		usecase.NewToggleSavedPropertyUseCase(repo, saveUC, removeUC),
		usecase.NewUpdateSavedNotesUseCase(repo),
	)

	return NewRouter([]string{"http://localhost:5173"}, propertyHandler, savedHandler, silentLogger{})
}

func do(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestFindProperties_DefaultSortAndPaging(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/api/v1/properties?perPage=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[PaginatedPropertiesResponse](t, rec)
	assert.Equal(t, 12, resp.Total)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 5, resp.PerPage)
	require.Len(t, resp.Data, 5)
	for i := 1; i < len(resp.Data); i++ {
		assert.LessOrEqual(t, resp.Data[i-1].Price, resp.Data[i].Price)
	}
}

func TestFindProperties_HugePageIsEmpty(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/api/v1/properties?page=9223372036854775807&perPage=100", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[PaginatedPropertiesResponse](t, rec)
	assert.Equal(t, 12, resp.Total)
	assert.Equal(t, math.MaxInt, resp.Page)
	assert.Empty(t, resp.Data)
}

func TestFindProperties_Filters(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/v1/properties?propertyTypes=House,Condo&minBedrooms=3&sort=price-desc&perPage=100", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[PaginatedPropertiesResponse](t, rec)
	for _, card := range resp.Data {
		assert.Contains(t, []string{"House", "Condo"}, card.PropertyType)
		assert.GreaterOrEqual(t, card.Bedrooms, 3)
	}
	for i := 1; i < len(resp.Data); i++ {
		assert.GreaterOrEqual(t, resp.Data[i-1].Price, resp.Data[i].Price)
	}

	// повторяющийся параметр равносилен списку через запятую
	rec2 := do(t, h, http.MethodGet, "/api/v1/properties?propertyTypes=House&propertyTypes=Condo&minBedrooms=3&sort=price-desc&perPage=100", nil)
	assert.JSONEq(t, rec.Body.String(), rec2.Body.String())
}

func TestFindProperties_MalformedNumbersIgnored(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/api/v1/properties?minPrice=cheap&perPage=100", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 12, decode[PaginatedPropertiesResponse](t, rec).Total)
}

func TestGetPropertyDetails(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/v1/properties/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	details := decode[PropertyDetailsResponse](t, rec)
	assert.Equal(t, "1", details.ID)
	assert.NotNil(t, details.Features)

	rec = do(t, h, http.MethodGet, "/api/v1/properties/404", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestGetFilterOptions(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/api/v1/filters/options", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	opts := decode[FilterOptionsResponse](t, rec)
	assert.Equal(t, 12, opts.Count)
	assert.NotEmpty(t, opts.PropertyTypes)
	assert.LessOrEqual(t, opts.MinPrice, opts.MaxPrice)
}

func TestSavedLifecycle(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/v1/saved", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[SavedListResponse](t, rec)
	require.Len(t, list.Data, 2)
	assert.Equal(t, "6", list.Data[0].Property.ID, "most recently saved first")
	assert.Equal(t, 2, list.Summary.Count)

	rec = do(t, h, http.MethodPost, "/api/v1/saved", SavePropertyRequest{PropertyID: "1", Notes: "open house sunday"})
	require.Equal(t, http.StatusCreated, rec.Code)
	saved := decode[SavedPropertyResponse](t, rec)
	assert.Equal(t, "1", saved.PropertyID)
	assert.NotEmpty(t, saved.ID)

	rec = do(t, h, http.MethodPost, "/api/v1/saved", SavePropertyRequest{PropertyID: "1"})
	require.Equal(t, http.StatusOK, rec.Code, "repeated save returns the existing entry")
	again := decode[SavedPropertyResponse](t, rec)
	assert.Equal(t, saved.ID, again.ID)
	assert.Equal(t, "open house sunday", again.Notes)

	rec = do(t, h, http.MethodPut, "/api/v1/saved/1", map[string]string{"notes": "offer sent"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "offer sent", decode[SavedPropertyResponse](t, rec).Notes)

	rec = do(t, h, http.MethodPost, "/api/v1/saved/1/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[ToggleSavedResponse](t, rec).Saved)

	rec = do(t, h, http.MethodPost, "/api/v1/saved/1/toggle", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[ToggleSavedResponse](t, rec).Saved)

	rec = do(t, h, http.MethodDelete, "/api/v1/saved/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/v1/saved/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodDelete, "/api/v1/saved", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decode[ClearSavedResponse](t, rec).Removed)

	rec = do(t, h, http.MethodGet, "/api/v1/saved", nil)
	list = decode[SavedListResponse](t, rec)
	assert.Empty(t, list.Data)
	assert.Zero(t, list.Summary.Count)
}

func TestSaveProperty_BadRequests(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/saved", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/saved", SavePropertyRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/saved", SavePropertyRequest{PropertyID: "404"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPut, "/api/v1/saved/3", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPut, "/api/v1/saved/404", map[string]string{"notes": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoggerMiddleware_KeepsValidTraceID(t *testing.T) {
	h := newTestRouter(t)
	traceID := "7d3c5a0e-8e8f-4b61-9a43-2f6f2b3c1d00"

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Trace-ID", traceID)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, traceID, rec.Header().Get("X-Trace-ID"))
}

func TestCORS_Preflight(t *testing.T) {
	h := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/properties", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestWriteUseCaseError(t *testing.T) {
	testCases := []struct {
		err  error
		code int
	}{
		{domain.ErrPropertyNotFound, http.StatusNotFound},
		{domain.ErrSavedPropertyNotFound, http.StatusNotFound},
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		rec := httptest.NewRecorder()
		writeUseCaseError(rec, silentLogger{}, tc.err, "failed")
		assert.Equal(t, tc.code, rec.Code, tc.err.Error())
	}
}
