package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nightTime anchors a wall-clock string to the test event night.
func nightTime(t *testing.T, b *Board, s string) time.Time {
	t.Helper()
	tod, err := ParseTimeOfDay(s)
	require.NoError(t, err)
	return tod.AtDate(b.EventDate(), b.Grid().RolloverHour())
}

func TestHasConflict(t *testing.T) {
	b := newTestBoard(t, "st-1", "st-2")
	require.NoError(t, b.AddAssignment(setAt(t, b, "as-1", "ar-1", "st-1", "22:00", 60)))

	tests := []struct {
		name    string
		start   string
		minutes int
		exclude string
		want    bool
	}{
		{name: "same slot", start: "22:00", minutes: 60, want: true},
		{name: "partial overlap from before", start: "21:30", minutes: 60, want: true},
		{name: "partial overlap into next", start: "22:30", minutes: 60, want: true},
		{name: "fully contained", start: "22:15", minutes: 15, want: true},
		{name: "back to back after is fine", start: "23:00", minutes: 60, want: false},
		{name: "back to back before is fine", start: "21:00", minutes: 60, want: false},
		{name: "excluded assignment is skipped", start: "22:00", minutes: 60, exclude: "as-1", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := nightTime(t, b, tt.start)
			end := start.Add(time.Duration(tt.minutes) * time.Minute)
			assert.Equal(t, tt.want, HasConflict(b, "ar-1", start, end, tt.exclude))
		})
	}
}

// Conflicts are detected per artist across stages, not per stage.
func TestHasConflict_AcrossStages(t *testing.T) {
	b := newTestBoard(t, "st-1", "st-2")
	require.NoError(t, b.AddAssignment(setAt(t, b, "as-1", "ar-1", "st-1", "22:00", 60)))

	start := nightTime(t, b, "22:30")
	end := start.Add(time.Hour)

	assert.True(t, HasConflict(b, "ar-1", start, end, ""),
		"same artist on another stage still conflicts")
	assert.False(t, HasConflict(b, "ar-2", start, end, ""),
		"a different artist is free to play opposite")
}

func TestHasConflict_AcrossMidnight(t *testing.T) {
	b := newTestBoard(t, "st-1")
	require.NoError(t, b.AddAssignment(setAt(t, b, "as-1", "ar-1", "st-1", "23:30", 60)))

	start := nightTime(t, b, "00:15")
	end := start.Add(45 * time.Minute)

	assert.True(t, HasConflict(b, "ar-1", start, end, ""),
		"a set reaching past midnight overlaps the early morning")
}

func TestConflictingArtistIDs(t *testing.T) {
	b := newTestBoard(t, "st-1", "st-2")
	require.NoError(t, b.AddAssignment(setAt(t, b, "as-1", "ar-1", "st-1", "22:00", 60)))
	require.NoError(t, b.AddAssignment(setAt(t, b, "as-2", "ar-2", "st-2", "22:00", 60)))
	require.NoError(t, b.AddAssignment(setAt(t, b, "as-3", "ar-1", "st-2", "22:30", 60)))
	require.NoError(t, b.AddAssignment(setAt(t, b, "as-4", "ar-3", "st-1", "23:30", 60)))
	require.NoError(t, b.AddAssignment(setAt(t, b, "as-5", "ar-3", "st-2", "00:00", 60)))

	got := ConflictingArtistIDs(b)
	assert.Equal(t, []string{"ar-1", "ar-3"}, got,
		"double-booked artists in first-seen order, others absent")
}

func TestConflictingArtistIDs_Empty(t *testing.T) {
	b := newTestBoard(t, "st-1")
	require.NoError(t, b.AddAssignment(setAt(t, b, "as-1", "ar-1", "st-1", "22:00", 60)))
	require.NoError(t, b.AddAssignment(setAt(t, b, "as-2", "ar-1", "st-1", "23:00", 60)))

	assert.Empty(t, ConflictingArtistIDs(b), "back-to-back sets are not a conflict")
}
