package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeOfDay
		wantErr bool
	}{
		{name: "evening", input: "22:00", want: TimeOfDay{Hour: 22, Minute: 0}},
		{name: "after midnight", input: "01:30", want: TimeOfDay{Hour: 1, Minute: 30}},
		{name: "midnight", input: "00:00", want: TimeOfDay{}},
		{name: "last minute", input: "23:59", want: TimeOfDay{Hour: 23, Minute: 59}},
		{name: "unpadded hour", input: "9:05", want: TimeOfDay{Hour: 9, Minute: 5}},
		{name: "no colon", input: "2200", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "negative hour", input: "-1:00", wantErr: true},
		{name: "letters", input: "ab:cd", wantErr: true},
		{name: "trailing garbage", input: "12:30pm", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				var malformed *MalformedTimeError
				require.True(t, errors.As(err, &malformed), "error must be a MalformedTimeError")
				assert.Equal(t, tt.input, malformed.Input)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDay_StringRoundTrip(t *testing.T) {
	for _, s := range []string{"18:00", "23:45", "00:00", "06:30"} {
		parsed, err := ParseTimeOfDay(s)
		require.NoError(t, err)
		assert.Equal(t, s, parsed.String())
	}
}

func TestTimeOfDay_AddMinutes(t *testing.T) {
	tests := []struct {
		name  string
		start TimeOfDay
		add   int
		want  TimeOfDay
	}{
		{name: "within hour", start: TimeOfDay{Hour: 22, Minute: 0}, add: 30, want: TimeOfDay{Hour: 22, Minute: 30}},
		{name: "across midnight", start: TimeOfDay{Hour: 23, Minute: 30}, add: 60, want: TimeOfDay{Hour: 0, Minute: 30}},
		{name: "full day is identity", start: TimeOfDay{Hour: 5, Minute: 15}, add: 1440, want: TimeOfDay{Hour: 5, Minute: 15}},
		{name: "negative wraps back", start: TimeOfDay{Hour: 0, Minute: 15}, add: -30, want: TimeOfDay{Hour: 23, Minute: 45}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.start.AddMinutes(tt.add))
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{name: "same evening", start: "10:00", end: "11:30", want: 90},
		{name: "across midnight", start: "23:30", end: "00:30", want: 60},
		{name: "zero", start: "22:00", end: "22:00", want: 0},
		{name: "almost full day", start: "22:00", end: "21:45", want: 1425},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := ParseTimeOfDay(tt.start)
			require.NoError(t, err)
			end, err := ParseTimeOfDay(tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Duration(start, end))
		})
	}
}

func TestTimeOfDay_AtDate(t *testing.T) {
	eventDate := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)
	const rollover = 7

	tests := []struct {
		name string
		tod  TimeOfDay
		want time.Time
	}{
		{
			name: "evening stays on event date",
			tod:  TimeOfDay{Hour: 22, Minute: 0},
			want: time.Date(2025, 7, 4, 22, 0, 0, 0, time.UTC),
		},
		{
			name: "after midnight lands next day",
			tod:  TimeOfDay{Hour: 1, Minute: 0},
			want: time.Date(2025, 7, 5, 1, 0, 0, 0, time.UTC),
		},
		{
			name: "rollover hour itself is event day",
			tod:  TimeOfDay{Hour: 7, Minute: 0},
			want: time.Date(2025, 7, 4, 7, 0, 0, 0, time.UTC),
		},
		{
			name: "just before rollover is next day",
			tod:  TimeOfDay{Hour: 6, Minute: 59},
			want: time.Date(2025, 7, 5, 6, 59, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.tod.AtDate(eventDate, rollover)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
			assert.Equal(t, tt.tod, TimeOfDayFromTime(got), "AtDate then FromTime must round-trip")
		})
	}
}

func TestTimeOfDay_AtDate_OrdersTheNight(t *testing.T) {
	eventDate := time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)
	evening := TimeOfDay{Hour: 23, Minute: 30}.AtDate(eventDate, 7)
	morning := TimeOfDay{Hour: 0, Minute: 30}.AtDate(eventDate, 7)
	assert.True(t, evening.Before(morning), "23:30 must precede 00:30 on the same night")
}
