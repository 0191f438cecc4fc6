package domain

import (
	"context"
	"time"
)

// Stage is one performance area of an event, hosted by a physical venue.
// A stage belongs to exactly one event.
type Stage struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Name      string    `json:"name"`
	VenueID   string    `json:"venue_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewStage returns a new Stage with the given fields.
func NewStage(id, eventID, name, venueID string, createdAt, updatedAt time.Time) *Stage {
	return &Stage{
		ID:        id,
		EventID:   eventID,
		Name:      name,
		VenueID:   venueID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// StageRepository defines the interface for stage storage. Delete removes
// the stage's assignments with it.
type StageRepository interface {
	ListByEventID(ctx context.Context, eventID string) ([]*Stage, error)
	Create(ctx context.Context, stage *Stage) error
	Delete(ctx context.Context, id string) error
}
