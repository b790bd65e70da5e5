package rabbitmq

import "time"

// SavedPropertyEventDTO - тело сообщения об изменении списка сохранённого.
type SavedPropertyEventDTO struct {
	EventType       string     `json:"event_type"`
	PropertyID      string     `json:"property_id"`
	SavedPropertyID string     `json:"saved_property_id,omitempty"`
	SavedDate       *time.Time `json:"saved_date,omitempty"`
	OccurredAt      time.Time  `json:"occurred_at"`
}
