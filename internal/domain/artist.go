package domain

import "context"

// Artist is a performer from the event roster. The roster is owned by an
// external collaborator; the scheduler never mutates artists.
type Artist struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarRef *string `json:"avatar_ref,omitempty"`
	Genre     *string `json:"genre,omitempty"`
}

// ArtistRoster lists the performers available to schedule for an event.
type ArtistRoster interface {
	ListArtistsForEvent(ctx context.Context, eventID string) ([]*Artist, error)
}
