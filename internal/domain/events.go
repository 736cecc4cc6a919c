package domain

import "github.com/google/uuid"

// EventType identifies marketplace item lifecycle events this subsystem
// consumes.
type EventType string

const (
	// EventType_ITEM_CREATED is emitted by the marketplace backend when a
	// listing is created; it triggers initial embedding generation.
	EventType_ITEM_CREATED EventType = "ITEM.CREATED"
)

// ItemEvent represents one marketplace item lifecycle event.
type ItemEvent struct {
	Type   EventType
	ItemID uuid.UUID
}
