// Package queue publishes listing change events to RabbitMQ and consumes them
// into an audit log.
package queue

import "time"

// QueueName is the durable queue carrying ListingChangedEvent messages.
const QueueName = "listings.changed"

const (
	EntityVenue  = "venue"
	EntityArtist = "artist"
	EntityShow   = "show"

	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// ListingChangedEvent is published after a venue, artist or show was
// created, updated or deleted.
type ListingChangedEvent struct {
	Entity     string `json:"entity"`
	Action     string `json:"action"`
	ID         uint64 `json:"id"`
	Name       string `json:"name,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

// NewEvent stamps an event with the given time in RFC 3339 UTC.
func NewEvent(entity, action string, id uint64, name string, at time.Time) ListingChangedEvent {
	return ListingChangedEvent{
		Entity:     entity,
		Action:     action,
		ID:         id,
		Name:       name,
		OccurredAt: at.UTC().Format(time.RFC3339),
	}
}
