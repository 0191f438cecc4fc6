package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestArtistRoster_ListArtistsForEvent(t *testing.T) {
	ctx := context.Background()
	cols := []string{"id", "name", "avatar_ref", "genre"}

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT a.id, a.name, a.avatar_ref, a.genre`).
		WithArgs("ev-1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("ar-1", "Aurora Skye", "avatars/aurora.png", "techno").
			AddRow("ar-2", "Basement Pulse", nil, nil))

	roster := NewArtistRoster(db)
	artists, err := roster.ListArtistsForEvent(ctx, "ev-1")
	require.NoError(t, err)
	require.Len(t, artists, 2)

	require.Equal(t, "Aurora Skye", artists[0].Name)
	require.NotNil(t, artists[0].AvatarRef)
	require.Equal(t, "avatars/aurora.png", *artists[0].AvatarRef)
	require.NotNil(t, artists[0].Genre)

	require.Nil(t, artists[1].AvatarRef, "null columns stay nil")
	require.Nil(t, artists[1].Genre)
	require.NoError(t, mock.ExpectationsWereMet())
}
