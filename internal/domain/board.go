package domain

import (
	"fmt"
	"time"
)

// Board is the in-memory schedule for one event editing session: the
// ordered stage registry plus every scheduled set. It is not safe for
// concurrent use; the owning session serializes access.
type Board struct {
	eventDate time.Time
	grid      GridConfig
	stages    []*Stage
	stageIDs  map[string]struct{}
	order     []string
	byID      map[string]*Assignment
}

// NewBoard returns an empty board anchored to the event's calendar date.
func NewBoard(eventDate time.Time, grid GridConfig) *Board {
	return &Board{
		eventDate: eventDate,
		grid:      grid,
		stageIDs:  make(map[string]struct{}),
		byID:      make(map[string]*Assignment),
	}
}

// EventDate is the calendar date slot times anchor to.
func (b *Board) EventDate() time.Time {
	return b.eventDate
}

// Grid is the slot window the board renders against.
func (b *Board) Grid() GridConfig {
	return b.grid
}

// AddStage registers a stage. Stages keep creation order.
func (b *Board) AddStage(s *Stage) error {
	if _, ok := b.stageIDs[s.ID]; ok {
		return fmt.Errorf("stage %s: %w", s.ID, ErrDuplicateID)
	}
	b.stageIDs[s.ID] = struct{}{}
	b.stages = append(b.stages, s)
	return nil
}

// RemoveStage drops a stage and every set scheduled on it. Reports whether
// the stage was present.
func (b *Board) RemoveStage(id string) bool {
	if _, ok := b.stageIDs[id]; !ok {
		return false
	}
	delete(b.stageIDs, id)
	stages := b.stages[:0]
	for _, s := range b.stages {
		if s.ID != id {
			stages = append(stages, s)
		}
	}
	b.stages = stages
	order := b.order[:0]
	for _, aid := range b.order {
		if b.byID[aid].StageID == id {
			delete(b.byID, aid)
		} else {
			order = append(order, aid)
		}
	}
	b.order = order
	return true
}

// Stages returns the registered stages in creation order.
func (b *Board) Stages() []*Stage {
	out := make([]*Stage, len(b.stages))
	copy(out, b.stages)
	return out
}

// StageExists reports whether the stage is registered.
func (b *Board) StageExists(id string) bool {
	_, ok := b.stageIDs[id]
	return ok
}

// AddAssignment inserts a set. The id must be new and the stage must already
// be registered for this event.
func (b *Board) AddAssignment(a *Assignment) error {
	if _, ok := b.byID[a.ID]; ok {
		return fmt.Errorf("assignment %s: %w", a.ID, ErrDuplicateID)
	}
	if !b.StageExists(a.StageID) {
		return fmt.Errorf("stage %s is not part of this event: %w", a.StageID, ErrInvalidInput)
	}
	b.byID[a.ID] = a
	b.order = append(b.order, a.ID)
	return nil
}

// RemoveAssignment deletes a set by id. Removing an unknown id is a no-op;
// the return value reports whether anything was removed.
func (b *Board) RemoveAssignment(id string) bool {
	if _, ok := b.byID[id]; !ok {
		return false
	}
	delete(b.byID, id)
	for i, aid := range b.order {
		if aid == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// Assignment returns the set with the given id, or nil.
func (b *Board) Assignment(id string) *Assignment {
	return b.byID[id]
}

// Assignments returns every set in insertion order.
func (b *Board) Assignments() []*Assignment {
	out := make([]*Assignment, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.byID[id])
	}
	return out
}

// Size is the number of scheduled sets.
func (b *Board) Size() int {
	return len(b.byID)
}

// FindAt returns the set, if any, whose [start, end) interval contains the
// given time of day on that stage. Containment is tested on the absolute
// night axis so early-morning slots resolve after midnight.
func (b *Board) FindAt(stageID string, t TimeOfDay) *Assignment {
	ts := t.AtDate(b.eventDate, b.grid.RolloverHour())
	for _, id := range b.order {
		a := b.byID[id]
		if a.StageID != stageID {
			continue
		}
		if !ts.Before(a.StartTime) && ts.Before(a.EndTime) {
			return a
		}
	}
	return nil
}

// AssignmentsForArtist returns the artist's sets across all stages.
func (b *Board) AssignmentsForArtist(artistID string) []*Assignment {
	var out []*Assignment
	for _, id := range b.order {
		if a := b.byID[id]; a.ArtistID == artistID {
			out = append(out, a)
		}
	}
	return out
}

// AssignedArtistIDs is the set of artists scheduled anywhere in the event,
// used to compute the draggable pool of unassigned artists.
func (b *Board) AssignedArtistIDs() map[string]struct{} {
	out := make(map[string]struct{}, len(b.byID))
	for _, a := range b.byID {
		out[a.ArtistID] = struct{}{}
	}
	return out
}
