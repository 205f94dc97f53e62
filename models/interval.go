package models

import "fmt"

// Interval represents a continuous time block within one day.
// Start and End are minutes from midnight; the interval is half-open [Start, End).
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Duration returns the interval length in minutes.
func (iv Interval) Duration() int {
	return iv.End - iv.Start
}

// Label renders the interval for display, e.g. "9:00 AM - 10:30 AM".
func (iv Interval) Label() string {
	return fmt.Sprintf("%s - %s", MinutesToClock(iv.Start), MinutesToClock(iv.End))
}

// MinutesToClock formats minutes from midnight as a 12-hour clock string.
func MinutesToClock(m int) string {
	h := (m / 60) % 24
	min := m % 60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	display := h % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, min, suffix)
}
