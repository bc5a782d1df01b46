package todo

import "strings"

// Color is a bright ANSI colour index (8-15). Renderers turn it into a
// background colour: 9 -> "\x1b[101m", 10 -> "\x1b[102m" and so on.
type Color int

const (
	ColorRed    Color = 9
	ColorGreen  Color = 10
	ColorYellow Color = 11
	ColorBlue   Color = 12
)

// Priority is the importance of a task.
type Priority string

const (
	PriorityCritical Priority = "C"
	PriorityHigh     Priority = "H"
	PriorityNormal   Priority = "N"
	PriorityLow      Priority = "L"
)

// Priorities lists every priority in display order.
func Priorities() []Priority {
	return []Priority{PriorityCritical, PriorityHigh, PriorityNormal, PriorityLow}
}

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityNormal, PriorityLow:
		return true
	}
	return false
}

// Letter returns the single-letter code used in prompts and plain tables.
func (p Priority) Letter() string {
	return string(p)
}

// Name returns the long name of the priority.
func (p Priority) Name() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityNormal:
		return "normal"
	case PriorityLow:
		return "low"
	}
	return "unknown"
}

// Color returns the table colour for the priority.
func (p Priority) Color() Color {
	switch p {
	case PriorityCritical:
		return ColorRed
	case PriorityHigh:
		return ColorYellow
	case PriorityNormal:
		return ColorGreen
	default:
		return ColorBlue
	}
}

// PriorityCodes is the "C, H, N, L" list shown in the priority prompt.
func PriorityCodes() string {
	codes := make([]string, 0, 4)
	for _, p := range Priorities() {
		codes = append(codes, p.Letter())
	}
	return strings.Join(codes, ", ")
}
