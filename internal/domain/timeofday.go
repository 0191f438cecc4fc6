package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock point within a day, independent of any date.
type TimeOfDay struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

// ParseTimeOfDay parses a "HH:MM" string. A missing colon, non-numeric part,
// or out-of-range component yields a *MalformedTimeError.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	i := strings.IndexByte(s, ':')
	if i < 0 {
		return TimeOfDay{}, &MalformedTimeError{Input: s}
	}
	hour, err := strconv.Atoi(s[:i])
	if err != nil {
		return TimeOfDay{}, &MalformedTimeError{Input: s}
	}
	minute, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return TimeOfDay{}, &MalformedTimeError{Input: s}
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, &MalformedTimeError{Input: s}
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// String formats the time as zero-padded "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) minuteOfDay() int {
	return t.Hour*60 + t.Minute
}

// AddMinutes returns the time m minutes later, wrapping modulo 24 hours.
// Negative m moves backwards.
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	total := (t.minuteOfDay() + m) % minutesPerDay
	if total < 0 {
		total += minutesPerDay
	}
	return TimeOfDay{Hour: total / 60, Minute: total % 60}
}

// Duration returns the minutes from start to end. An end before start is read
// as an overnight wrap, never as a negative duration: the grid cannot
// schedule a set longer than 24 hours, so wraparound is always the right
// interpretation.
func Duration(start, end TimeOfDay) int {
	d := end.minuteOfDay() - start.minuteOfDay()
	if d < 0 {
		d += minutesPerDay
	}
	return d
}

// AtDate anchors t to the calendar date of the event night. Hours below
// rolloverHour belong to the morning after the show and land on the next
// calendar day.
func (t TimeOfDay) AtDate(date time.Time, rolloverHour int) time.Time {
	ts := time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
	if t.Hour < rolloverHour {
		ts = ts.AddDate(0, 0, 1)
	}
	return ts
}

// TimeOfDayFromTime strips the date from an absolute timestamp. Inverse of
// AtDate: TimeOfDayFromTime(t.AtDate(d, r)) == t for every valid t.
func TimeOfDayFromTime(ts time.Time) TimeOfDay {
	return TimeOfDay{Hour: ts.Hour(), Minute: ts.Minute()}
}
