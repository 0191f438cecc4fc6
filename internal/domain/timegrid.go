package domain

// GridConfig defines the selectable time window for one event night.
// The window runs from StartHour in the evening through EndHour (exclusive)
// the following morning. It is configuration, not user data.
type GridConfig struct {
	StartHour   int `json:"start_hour"`
	EndHour     int `json:"end_hour"`
	StepMinutes int `json:"step_minutes"`
}

// DefaultGrid is 18:00 through 07:00 next day at 15-minute granularity,
// matching typical event hours.
func DefaultGrid() GridConfig {
	return GridConfig{StartHour: 18, EndHour: 7, StepMinutes: 15}
}

// RolloverHour is the hour below which a time of day belongs to the morning
// after the event date. It coincides with the end of the grid window.
func (g GridConfig) RolloverHour() int {
	return g.EndHour
}

func (g GridConfig) step() int {
	if g.StepMinutes <= 0 {
		return 15
	}
	return g.StepMinutes
}

// TimeSlot is one selectable grid row. Offset is minutes since the window
// start and carries the event-night ordering: "18:00" sorts before "00:00"
// sorts before "06:00". Never order slots by the raw Time string, which is
// lexicographic and wrong across midnight.
type TimeSlot struct {
	Time   string `json:"time"`
	Hour   int    `json:"hour"`
	Minute int    `json:"minute"`
	Offset int    `json:"offset"`
}

// Slots generates the ordered slot sequence for the window. Pure function of
// the config; safe to regenerate on every render.
func (g GridConfig) Slots() []TimeSlot {
	step := g.step()
	var slots []TimeSlot
	offset := 0
	emitHour := func(hour int) {
		for minute := 0; minute < 60; minute += step {
			t := TimeOfDay{Hour: hour, Minute: minute}
			slots = append(slots, TimeSlot{Time: t.String(), Hour: hour, Minute: minute, Offset: offset})
			offset += step
		}
	}
	for hour := g.StartHour; hour < 24; hour++ {
		emitHour(hour)
	}
	for hour := 0; hour < g.EndHour; hour++ {
		emitHour(hour)
	}
	return slots
}
