package model

import (
	"fmt"
	"time"
)

// Timeline boundaries: the planner covers 6 AM through 10 PM.
const (
	DayStart = 6
	DayEnd   = 22
)

// DurationChoices is the fixed menu of task lengths in minutes.
var DurationChoices = []int{15, 30, 45, 60, 90, 120}

// Task represents a single item on the daily timeline
type Task struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Hour      int       `json:"time"`
	Duration  int       `json:"duration"`
	Completed bool      `json:"completed"`
	Created   time.Time `json:"created"`
}

// NewTask creates a task assigned to the given hour slot
func NewTask(id int64, text string, hour, duration int) Task {
	return Task{
		ID:       id,
		Text:     text,
		Hour:     hour,
		Duration: duration,
		Created:  time.Now(),
	}
}

// ValidHour reports whether hour falls on the daily timeline
func ValidHour(hour int) bool {
	return hour >= DayStart && hour <= DayEnd
}

// ValidDuration reports whether minutes is one of the allowed task lengths
func ValidDuration(minutes int) bool {
	for _, d := range DurationChoices {
		if minutes == d {
			return true
		}
	}
	return false
}

// FormatHour renders an hour slot in 12-hour form, e.g. "6 AM" or "10 PM"
func FormatHour(hour int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour
	if hour > 12 {
		display = hour - 12
	}
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d %s", display, period)
}
