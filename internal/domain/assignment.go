package domain

import (
	"context"
	"fmt"
	"time"
)

// Assignment is one performer's set on one stage. StartTime and EndTime are
// absolute timestamps anchored to the event night; wall-clock views derive
// from them, so a malformed record can never carry a wrong duration.
type Assignment struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	ArtistID  string    `json:"artist_id"`
	StageID   string    `json:"stage_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAssignment returns a new Assignment with the given fields.
func NewAssignment(id, eventID, artistID, stageID string, start, end, createdAt, updatedAt time.Time) *Assignment {
	return &Assignment{
		ID:        id,
		EventID:   eventID,
		ArtistID:  artistID,
		StageID:   stageID,
		StartTime: start,
		EndTime:   end,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// StartTimeOfDay is the wall-clock start of the set.
func (a *Assignment) StartTimeOfDay() TimeOfDay {
	return TimeOfDayFromTime(a.StartTime)
}

// EndTimeOfDay is the wall-clock end of the set.
func (a *Assignment) EndTimeOfDay() TimeOfDay {
	return TimeOfDayFromTime(a.EndTime)
}

// DurationMinutes is the set length derived from the absolute interval.
func (a *Assignment) DurationMinutes() int {
	return int(a.EndTime.Sub(a.StartTime) / time.Minute)
}

// Validate is the schema check applied at the persistence boundary. Records
// coming from the external store must not reach the conflict detector with
// empty references or a non-positive interval.
func (a *Assignment) Validate() error {
	if a.ID == "" || a.EventID == "" || a.ArtistID == "" || a.StageID == "" {
		return fmt.Errorf("assignment is missing a reference: %w", ErrInvalidInput)
	}
	if !a.EndTime.After(a.StartTime) {
		return fmt.Errorf("assignment %s: end %s is not after start %s: %w",
			a.ID, a.EndTime.Format(time.RFC3339), a.StartTime.Format(time.RFC3339), ErrInvalidInput)
	}
	if a.EndTime.Sub(a.StartTime) >= 24*time.Hour {
		return fmt.Errorf("assignment %s: set longer than one night: %w", a.ID, ErrInvalidInput)
	}
	return nil
}

// AssignmentRepository defines the interface for assignment storage. Listed
// assignments carry absolute timestamps and are already schema-checked.
type AssignmentRepository interface {
	ListByEventID(ctx context.Context, eventID string) ([]*Assignment, error)
	Create(ctx context.Context, a *Assignment) error
	Delete(ctx context.Context, id string) error
}
