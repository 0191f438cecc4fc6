package domain

import (
	"context"
	"time"
)

// ScheduledSet is the read-model projection of an Assignment, joined with
// its artist and carrying both wall-clock and absolute times.
type ScheduledSet struct {
	ID              string    `json:"id"`
	ArtistID        string    `json:"artist_id"`
	StageID         string    `json:"stage_id"`
	Artist          *Artist   `json:"artist,omitempty"`
	StartTimeOfDay  string    `json:"start_time_of_day"`
	EndTimeOfDay    string    `json:"end_time_of_day"`
	DurationMinutes int       `json:"duration_minutes"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
}

// LineupView is the surface the grid renders from. It is recomputed after
// every successful mutation.
type LineupView struct {
	Event              *Event                   `json:"event"`
	Stages             []*Stage                 `json:"stages"`
	TimeSlots          []TimeSlot               `json:"time_slots"`
	Sets               []*ScheduledSet          `json:"sets"`
	SetsByStageAndTime map[string]*ScheduledSet `json:"sets_by_stage_and_time"`
	UnassignedArtists  []*Artist                `json:"unassigned_artists"`
	ConflictArtistIDs  []string                 `json:"conflict_artist_ids"`
	Locked             bool                     `json:"locked"`
}

// StageTimeKey builds the lookup key for SetsByStageAndTime. One entry per
// grid slot a set covers, keyed the way the grid addresses its drop targets.
func StageTimeKey(stageID, timeOfDay string) string {
	return stageID + "__" + timeOfDay
}

// PlaceArtistInput is the "drop artist on the grid" command.
// DurationMinutes of 0 means the default set length.
type PlaceArtistInput struct {
	EventID         string
	ArtistID        string
	StageID         string
	StartTime       string
	DurationMinutes int
}

// MoveAssignmentInput re-slots an existing set onto a new stage and start
// time, keeping its duration.
type MoveAssignmentInput struct {
	EventID      string
	AssignmentID string
	StageID      string
	StartTime    string
}

// LineupService is the use-case layer for one event's lineup: it validates
// against the conflict detector, talks to the persistence collaborators, and
// only then mutates the in-memory board.
type LineupService interface {
	View(ctx context.Context, eventID string) (*LineupView, error)
	PlaceArtist(ctx context.Context, in PlaceArtistInput) (*Assignment, error)
	MoveAssignment(ctx context.Context, in MoveAssignmentInput) (*Assignment, error)
	RemoveAssignment(ctx context.Context, eventID, assignmentID string) error
	AddStage(ctx context.Context, eventID, name, venueID string) (*Stage, error)
	RemoveStage(ctx context.Context, eventID, stageID string) error
	SetLocked(ctx context.Context, eventID string, locked bool) (*LineupView, error)
	ShareLineup(ctx context.Context, eventID, recipient string) error
}
