package todo

import "time"

// Urgency tags a task by how its due date compares with today.
type Urgency string

const (
	UrgencyInTime  Urgency = "I"
	UrgencyToday   Urgency = "T"
	UrgencyOverdue Urgency = "O"
)

// Letter returns the single-letter code used in plain tables.
func (u Urgency) Letter() string {
	return string(u)
}

// Color returns the table colour for the urgency.
func (u Urgency) Color() Color {
	switch u {
	case UrgencyToday:
		return ColorYellow
	case UrgencyOverdue:
		return ColorRed
	default:
		return ColorGreen
	}
}

// DaysUntil returns the number of calendar days from today to due. Only the
// year, month and day of each value are used; today is read in its own
// location so a local clock gives the local calendar day.
func DaysUntil(today, due time.Time) int {
	return int(dayNumber(due) - dayNumber(today))
}

// dayNumber counts days since the Unix epoch for the calendar day of t.
// Subtracting day numbers avoids the range limit of time.Duration.
func dayNumber(t time.Time) int64 {
	return dateOf(t).Unix() / secondsPerDay
}

const secondsPerDay = 24 * 60 * 60

// UrgencyOf classifies due relative to today.
func UrgencyOf(today, due time.Time) Urgency {
	switch days := DaysUntil(today, due); {
	case days == 0:
		return UrgencyToday
	case days > 0:
		return UrgencyInTime
	default:
		return UrgencyOverdue
	}
}

// dateOf truncates t to midnight UTC of its calendar day.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
