package postgres

import (
	"context"
	"database/sql"

	"lineupboard/internal/domain"
)

type artistRoster struct {
	DB *sql.DB
}

// NewArtistRoster returns the read-only roster of artists bookable for an
// event.
func NewArtistRoster(db *sql.DB) domain.ArtistRoster {
	return &artistRoster{
		DB: db,
	}
}

func (r *artistRoster) ListArtistsForEvent(ctx context.Context, eventID string) ([]*domain.Artist, error) {
	query := `
		SELECT a.id, a.name, a.avatar_ref, a.genre
		FROM artists a
		JOIN event_artists ea ON ea.artist_id = a.id
		WHERE ea.event_id = $1
		ORDER BY a.name, a.id
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	artists := make([]*domain.Artist, 0)
	for rows.Next() {
		a := &domain.Artist{}
		var avatarNull, genreNull sql.NullString
		if err := rows.Scan(&a.ID, &a.Name, &avatarNull, &genreNull); err != nil {
			return nil, err
		}
		if avatarNull.Valid {
			v := avatarNull.String
			a.AvatarRef = &v
		}
		if genreNull.Valid {
			g := genreNull.String
			a.Genre = &g
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}
