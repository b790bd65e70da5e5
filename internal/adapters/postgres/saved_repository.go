package postgres_adapter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/apper-canvas/estate-view-connect/internal/contextkeys"
	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
	"github.com/apper-canvas/estate-view-connect/internal/core/port"
)

const createTableQuery = `
CREATE TABLE IF NOT EXISTS saved_properties (
	id          uuid PRIMARY KEY,
	property_id text NOT NULL UNIQUE,
	saved_date  timestamptz NOT NULL,
	notes       text NOT NULL DEFAULT ''
)`

const selectColumns = "id, property_id, saved_date, notes"

// PostgresSavedPropertyRepository - реализация порта для PostgreSQL.
type PostgresSavedPropertyRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSavedPropertyRepository - конструктор.
func NewPostgresSavedPropertyRepository(pool *pgxpool.Pool) (*PostgresSavedPropertyRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgxpool.Pool cannot be nil")
	}
	return &PostgresSavedPropertyRepository{pool: pool}, nil
}

// EnsureSchema создает таблицу saved_properties, если ее еще нет.
func (r *PostgresSavedPropertyRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, createTableQuery); err != nil {
		return fmt.Errorf("failed to create saved_properties table: %w", err)
	}
	return nil
}

func (r *PostgresSavedPropertyRepository) GetAll(ctx context.Context) ([]domain.SavedProperty, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresSavedPropertyRepository",
		"method":    "GetAll",
	})

	// порядок вставки: saved_date, затем id для детерминизма
	query := "SELECT " + selectColumns + " FROM saved_properties ORDER BY saved_date ASC, id ASC"
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query saved properties", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to query saved properties: %w", err)
	}
	defer rows.Close()

	items := make([]domain.SavedProperty, 0)
	for rows.Next() {
		item, err := scanSaved(rows)
		if err != nil {
			repoLogger.Error("Failed to scan saved property row", err, nil)
			return nil, fmt.Errorf("failed to scan saved property: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during saved properties iteration", err, nil)
		return nil, fmt.Errorf("error during saved properties iteration: %w", err)
	}

	repoLogger.Debug("Saved properties loaded.", port.Fields{"count": len(items)})
	return items, nil
}

func (r *PostgresSavedPropertyRepository) GetByPropertyID(ctx context.Context, propertyID string) (*domain.SavedProperty, error) {
	query := "SELECT " + selectColumns + " FROM saved_properties WHERE property_id = $1"
	item, err := scanSaved(r.pool.QueryRow(ctx, query, propertyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("postgres: property %q: %w", propertyID, domain.ErrSavedPropertyNotFound)
		}
		contextkeys.LoggerFromContext(ctx).Error("Failed to get saved property", err, port.Fields{
			"component":   "PostgresSavedPropertyRepository",
			"method":      "GetByPropertyID",
			"property_id": propertyID,
		})
		return nil, fmt.Errorf("failed to get saved property: %w", err)
	}
	return &item, nil
}

// Create добавляет закладку. Повторное сохранение не считается ошибкой.
func (r *PostgresSavedPropertyRepository) Create(ctx context.Context, saved domain.SavedProperty) (*domain.SavedProperty, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "PostgresSavedPropertyRepository",
		"method":      "Create",
		"property_id": saved.PropertyID,
	})

	id, err := uuid.Parse(saved.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid saved property id %q: %w", saved.ID, domain.ErrInvalidInput)
	}

	query := `INSERT INTO saved_properties (id, property_id, saved_date, notes) VALUES ($1, $2, $3, $4)
		RETURNING ` + selectColumns
	item, err := scanSaved(r.pool.QueryRow(ctx, query, id, saved.PropertyID, saved.SavedDate, saved.Notes))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // 23505 - unique_violation
			repoLogger.Warn("Property already saved, returning existing entry.", nil)
			return r.GetByPropertyID(ctx, saved.PropertyID)
		}
		repoLogger.Error("Failed to insert saved property", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to insert saved property: %w", err)
	}

	repoLogger.Debug("Saved property added.", port.Fields{"saved_property_id": item.ID})
	return &item, nil
}

func (r *PostgresSavedPropertyRepository) UpdateNotes(ctx context.Context, propertyID, notes string) (*domain.SavedProperty, error) {
	query := "UPDATE saved_properties SET notes = $2 WHERE property_id = $1 RETURNING " + selectColumns
	item, err := scanSaved(r.pool.QueryRow(ctx, query, propertyID, notes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("postgres: property %q: %w", propertyID, domain.ErrSavedPropertyNotFound)
		}
		contextkeys.LoggerFromContext(ctx).Error("Failed to update notes", err, port.Fields{
			"component":   "PostgresSavedPropertyRepository",
			"method":      "UpdateNotes",
			"property_id": propertyID,
		})
		return nil, fmt.Errorf("failed to update notes: %w", err)
	}
	return &item, nil
}

func (r *PostgresSavedPropertyRepository) Delete(ctx context.Context, propertyID string) error {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "PostgresSavedPropertyRepository",
		"method":      "Delete",
		"property_id": propertyID,
	})

	query := "DELETE FROM saved_properties WHERE property_id = $1"
	cmdTag, err := r.pool.Exec(ctx, query, propertyID)
	if err != nil {
		repoLogger.Error("Failed to remove saved property", err, port.Fields{"query": query})
		return fmt.Errorf("failed to remove saved property: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		repoLogger.Warn("Attempted to remove a saved property that did not exist.", nil)
		return fmt.Errorf("postgres: property %q: %w", propertyID, domain.ErrSavedPropertyNotFound)
	}
	repoLogger.Debug("Successfully removed saved property.", nil)
	return nil
}

// DeleteAll удаляет все закладки и возвращает удалённые строки.
func (r *PostgresSavedPropertyRepository) DeleteAll(ctx context.Context) ([]domain.SavedProperty, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresSavedPropertyRepository",
		"method":    "DeleteAll",
	})

	query := "DELETE FROM saved_properties RETURNING " + selectColumns
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to clear saved properties", err, port.Fields{"query": query})
		return nil, fmt.Errorf("failed to clear saved properties: %w", err)
	}
	defer rows.Close()

	removed := make([]domain.SavedProperty, 0)
	for rows.Next() {
		item, err := scanSaved(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan removed saved property: %w", err)
		}
		removed = append(removed, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during removed rows iteration: %w", err)
	}

	repoLogger.Info("Saved properties cleared.", port.Fields{"removed": len(removed)})
	return removed, nil
}

func scanSaved(row pgx.Row) (domain.SavedProperty, error) {
	var (
		id         uuid.UUID
		propertyID string
		savedDate  time.Time
		notes      string
	)
	if err := row.Scan(&id, &propertyID, &savedDate, &notes); err != nil {
		return domain.SavedProperty{}, err
	}
	return domain.SavedProperty{
		ID:         id.String(),
		PropertyID: propertyID,
		SavedDate:  savedDate.UTC(),
		Notes:      notes,
	}, nil
}
