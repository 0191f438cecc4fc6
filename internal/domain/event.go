package domain

import (
	"context"
	"time"
)

// Event is the night being scheduled. Read-only here except for Date, which
// anchors slot timestamps; ownership lives with the events collaborator.
type Event struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Date      *time.Time `json:"date,omitempty"`
	VenueID   *string    `json:"venue_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// EventRepository defines the interface for event reads.
type EventRepository interface {
	GetByID(ctx context.Context, id string) (*Event, error)
}
