// Package events defines the notification emitted after an interaction has
// been dispatched, and the publishers that deliver it.
package events

import (
	"time"

	"github.com/google/uuid"
)

// InteractionDispatchedEvent is emitted once per dispatched interaction.
// Handled is false when no route matched and the unknown-interaction report
// was sent instead.
type InteractionDispatchedEvent struct {
	EventID       string `json:"eventId"`
	InteractionID string `json:"interactionId"`
	Route         string `json:"route"`
	EventType     string `json:"eventType"`
	GuildID       string `json:"guildId,omitempty"`
	UserID        string `json:"userId,omitempty"`
	Handled       bool   `json:"handled"`
	ResponseType  int    `json:"responseType"`
	Ephemeral     bool   `json:"ephemeral"`
	DurationMs    int64  `json:"durationMs"`
	Timestamp     string `json:"timestamp"`
}

// NewInteractionDispatchedEvent stamps a fresh event ID and the current time.
func NewInteractionDispatchedEvent(interactionID, route, eventType string) *InteractionDispatchedEvent {
	return &InteractionDispatchedEvent{
		EventID:       uuid.NewString(),
		InteractionID: interactionID,
		Route:         route,
		EventType:     eventType,
		Timestamp:     time.Now().UTC().Format(time.RFC3339Nano),
	}
}
