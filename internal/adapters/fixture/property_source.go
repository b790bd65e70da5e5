package fixture

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"time"

	"github.com/apper-canvas/estate-view-connect/internal/contextkeys"
	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
	"github.com/apper-canvas/estate-view-connect/internal/core/port"
)

//go:embed data/*.json
var dataFS embed.FS

const (
	propertiesPath = "data/properties.json"
	savedPath      = "data/saved_properties.json"
)

// Options задают искусственную задержку ответа, имитирующую сеть.
type Options struct {
	Latency time.Duration
}

// PropertySource отдает неизменяемую коллекцию объектов, загруженную из JSON.
type PropertySource struct {
	properties []domain.Property
	byID       map[string]int
	latency    time.Duration
}

// NewPropertySource загружает встроенный набор данных.
func NewPropertySource(opts Options) (*PropertySource, error) {
	body, err := dataFS.ReadFile(propertiesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", propertiesPath, err)
	}
	return NewPropertySourceFromJSON(body, opts)
}

// NewPropertySourceFromJSON проверяет документ по схеме и строит источник.
func NewPropertySourceFromJSON(body []byte, opts Options) (*PropertySource, error) {
	schema, err := compileSchema(propertiesSchemaPath)
	if err != nil {
		return nil, err
	}
	if err := validateDocument(schema, body); err != nil {
		return nil, fmt.Errorf("invalid property fixture: %w", err)
	}

	var dtos []propertyDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return nil, fmt.Errorf("failed to decode property fixture: %w", err)
	}

	src := &PropertySource{
		properties: make([]domain.Property, 0, len(dtos)),
		byID:       make(map[string]int, len(dtos)),
		latency:    opts.Latency,
	}
	for _, dto := range dtos {
		p, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		if _, dup := src.byID[p.ID]; dup {
			return nil, fmt.Errorf("invalid property fixture: duplicate id %q", p.ID)
		}
		src.byID[p.ID] = len(src.properties)
		src.properties = append(src.properties, p)
	}

	return src, nil
}

// GetAll возвращает копию всей коллекции в исходном порядке.
func (s *PropertySource) GetAll(ctx context.Context) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "FixturePropertySource",
		"method":    "GetAll",
	})

	if err := s.wait(ctx); err != nil {
		logger.Warn("Request cancelled while waiting for fixture", port.Fields{"error": err.Error()})
		return nil, err
	}

	out := make([]domain.Property, len(s.properties))
	for i, p := range s.properties {
		out[i] = p.Clone()
	}

	logger.Debug("Properties loaded from fixture", port.Fields{"count": len(out)})
	return out, nil
}

// GetByID возвращает копию объекта или ошибку с domain.ErrPropertyNotFound.
func (s *PropertySource) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "FixturePropertySource",
		"method":      "GetByID",
		"property_id": id,
	})

	if err := s.wait(ctx); err != nil {
		logger.Warn("Request cancelled while waiting for fixture", port.Fields{"error": err.Error()})
		return nil, err
	}

	idx, ok := s.byID[id]
	if !ok {
		logger.Debug("Property not found in fixture", nil)
		return nil, fmt.Errorf("fixture: property %q: %w", id, domain.ErrPropertyNotFound)
	}

	p := s.properties[idx].Clone()
	return &p, nil
}

func (s *PropertySource) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.latency <= 0 {
		return nil
	}

	timer := time.NewTimer(s.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// LoadSavedSeed возвращает стартовый список сохранённого для in-memory хранилища.
func LoadSavedSeed() ([]domain.SavedProperty, error) {
	body, err := dataFS.ReadFile(savedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", savedPath, err)
	}
	return ParseSavedSeed(body)
}

// ParseSavedSeed проверяет и декодирует список сохранённого.
func ParseSavedSeed(body []byte) ([]domain.SavedProperty, error) {
	schema, err := compileSchema(savedSchemaPath)
	if err != nil {
		return nil, err
	}
	if err := validateDocument(schema, body); err != nil {
		return nil, fmt.Errorf("invalid saved property fixture: %w", err)
	}

	var dtos []savedPropertyDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return nil, fmt.Errorf("failed to decode saved property fixture: %w", err)
	}

	out := make([]domain.SavedProperty, 0, len(dtos))
	for _, dto := range dtos {
		saved, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, saved)
	}
	return out, nil
}
