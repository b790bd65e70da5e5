package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/apper-canvas/estate-view-connect/internal/constants"
	"github.com/apper-canvas/estate-view-connect/internal/contextkeys"
	"github.com/apper-canvas/estate-view-connect/internal/core/domain"
	"github.com/apper-canvas/estate-view-connect/internal/core/port"
)

const publishTimeout = 10 * time.Second

// Publisher - то, что адаптеру нужно от rabbitmq_producer.Publisher.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, msg amqp.Publishing) error
}

// SavedEventsAdapter публикует события сохранения и удаления закладок.
type SavedEventsAdapter struct {
	producer Publisher
	now      func() time.Time
}

func NewSavedEventsAdapter(producer Publisher) (*SavedEventsAdapter, error) {
	if producer == nil {
		return nil, fmt.Errorf("rabbitmq adapter: producer cannot be nil")
	}
	return &SavedEventsAdapter{producer: producer, now: time.Now}, nil
}

func (a *SavedEventsAdapter) PublishSaved(ctx context.Context, saved domain.SavedProperty) error {
	savedDate := saved.SavedDate.UTC()
	dto := SavedPropertyEventDTO{
		EventType:       constants.EventTypeSaved,
		PropertyID:      saved.PropertyID,
		SavedPropertyID: saved.ID,
		SavedDate:       &savedDate,
		OccurredAt:      a.now().UTC(),
	}
	return a.publish(ctx, constants.RoutingKeySavedPropertySaved, dto)
}

func (a *SavedEventsAdapter) PublishRemoved(ctx context.Context, propertyID string) error {
	dto := SavedPropertyEventDTO{
		EventType:  constants.EventTypeRemoved,
		PropertyID: propertyID,
		OccurredAt: a.now().UTC(),
	}
	return a.publish(ctx, constants.RoutingKeySavedPropertyRemoved, dto)
}

func (a *SavedEventsAdapter) publish(ctx context.Context, routingKey string, dto SavedPropertyEventDTO) error {
	adapterLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":   "SavedEventsAdapter",
		"routing_key": routingKey,
		"property_id": dto.PropertyID,
	})

	body, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("rabbitmq adapter: failed to marshal event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		DeliveryMode: amqp.Persistent,
		Timestamp:    dto.OccurredAt,
		Headers:      make(amqp.Table),
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		msg.Headers["x-trace-id"] = traceID
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	adapterLogger.Debug("Publishing saved property event", nil)
	if err := a.producer.Publish(publishCtx, routingKey, msg); err != nil {
		adapterLogger.Error("Failed to publish saved property event", err, nil)
		return fmt.Errorf("rabbitmq adapter: failed to publish %s event for property %s: %w", dto.EventType, dto.PropertyID, err)
	}

	adapterLogger.Info("Saved property event published", nil)
	return nil
}
