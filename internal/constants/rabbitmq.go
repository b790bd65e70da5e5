package constants

const (
	EstateViewExchange     = "estate_view_exchange"
	EstateViewExchangeType = "topic"

	RoutingKeySavedPropertySaved   = "saved_property.saved"
	RoutingKeySavedPropertyRemoved = "saved_property.removed"
)

const (
	EventTypeSaved   = "saved"
	EventTypeRemoved = "removed"
)
