package memory_adapter

import (
	"context"
	"fmt"
	"sync"

	"github.com/apper-canvas/estate-view-connect/internal/contextkeys"
	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
	"github.com/apper-canvas/estate-view-connect/internal/core/port"
)

// SavedPropertyRepository хранит закладки в памяти процесса. Порядок записей
// совпадает с порядком добавления.
type SavedPropertyRepository struct {
	mu    sync.RWMutex
	items []domain.SavedProperty
}

// NewSavedPropertyRepository - конструктор. seed копируется.
func NewSavedPropertyRepository(seed []domain.SavedProperty) *SavedPropertyRepository {
	items := make([]domain.SavedProperty, len(seed))
	copy(items, seed)
	return &SavedPropertyRepository{items: items}
}

func (r *SavedPropertyRepository) GetAll(ctx context.Context) ([]domain.SavedProperty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.SavedProperty, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *SavedPropertyRepository) GetByPropertyID(ctx context.Context, propertyID string) (*domain.SavedProperty, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(propertyID)
	if idx < 0 {
		return nil, fmt.Errorf("memory: property %q: %w", propertyID, domain.ErrSavedPropertyNotFound)
	}
	item := r.items[idx]
	return &item, nil
}

// Create добавляет закладку. Если объект уже сохранён, возвращается существующая запись.
func (r *SavedPropertyRepository) Create(ctx context.Context, saved domain.SavedProperty) (*domain.SavedProperty, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "MemorySavedPropertyRepository",
		"method":      "Create",
		"property_id": saved.PropertyID,
	})

	r.mu.Lock()
	defer r.mu.Unlock()

	if idx := r.indexOf(saved.PropertyID); idx >= 0 {
		repoLogger.Warn("Property already saved, returning existing entry.", nil)
		existing := r.items[idx]
		return &existing, nil
	}

	r.items = append(r.items, saved)
	repoLogger.Debug("Saved property added.", port.Fields{"saved_property_id": saved.ID})
	return &saved, nil
}

func (r *SavedPropertyRepository) UpdateNotes(ctx context.Context, propertyID, notes string) (*domain.SavedProperty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(propertyID)
	if idx < 0 {
		return nil, fmt.Errorf("memory: property %q: %w", propertyID, domain.ErrSavedPropertyNotFound)
	}
	r.items[idx].Notes = notes
	updated := r.items[idx]
	return &updated, nil
}

func (r *SavedPropertyRepository) Delete(ctx context.Context, propertyID string) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "MemorySavedPropertyRepository",
		"method":      "Delete",
		"property_id": propertyID,
	})

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(propertyID)
	if idx < 0 {
		repoLogger.Warn("Attempted to remove a saved property that did not exist.", nil)
		return fmt.Errorf("memory: property %q: %w", propertyID, domain.ErrSavedPropertyNotFound)
	}
	r.items = append(r.items[:idx:idx], r.items[idx+1:]...)
	return nil
}

// DeleteAll очищает хранилище и возвращает удалённые записи.
func (r *SavedPropertyRepository) DeleteAll(ctx context.Context) ([]domain.SavedProperty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := r.items
	r.items = nil
	if removed == nil {
		removed = []domain.SavedProperty{}
	}
	return removed, nil
}

// indexOf вызывается под блокировкой.
func (r *SavedPropertyRepository) indexOf(propertyID string) int {
	for i, item := range r.items {
		if item.PropertyID == propertyID {
			return i
		}
	}
	return -1
}
