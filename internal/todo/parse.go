package todo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Sentinel errors wrapped by ValidationError.
var (
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidTime     = errors.New("invalid time")
	ErrInvalidIndex    = errors.New("invalid task number")
	ErrInvalidField    = errors.New("invalid field")
	ErrBlankTask       = errors.New("task is blank")
)

// ValidationError reports which input was rejected and why.
type ValidationError struct {
	Field string // priority, date, time, number, field or task
	Input string // raw user input, may be empty
	Err   error  // one of the Err* sentinels
}

func (e *ValidationError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s %q: %s", e.Field, e.Input, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(field, input string, err error) *ValidationError {
	return &ValidationError{Field: field, Input: input, Err: err}
}

// ParsePriority parses a priority letter, ignoring case and surrounding space.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", invalid("priority", s, ErrInvalidPriority)
	}
	return p, nil
}

// Due dates are limited to four-digit years.
const (
	MinYear = 1
	MaxYear = 9999
)

// ParseDate parses a YYYY-M-D date. Leading zeros are optional but the day
// must exist in that month, so 2023-02-29 is rejected and 2024-02-29 is not.
func ParseDate(s string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return time.Time{}, invalid("date", s, ErrInvalidDate)
	}
	nums, ok := atois(parts)
	if !ok {
		return time.Time{}, invalid("date", s, ErrInvalidDate)
	}
	year, month, day := nums[0], nums[1], nums[2]
	if year < MinYear || year > MaxYear || month < 1 || month > 12 {
		return time.Time{}, invalid("date", s, ErrInvalidDate)
	}
	if day < 1 || day > DaysIn(year, time.Month(month)) {
		return time.Time{}, invalid("date", s, ErrInvalidDate)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ParseTime parses an H:M time of day with optional leading zeros.
func ParseTime(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return Clock{}, invalid("time", s, ErrInvalidTime)
	}
	nums, ok := atois(parts)
	if !ok {
		return Clock{}, invalid("time", s, ErrInvalidTime)
	}
	c := Clock{Hour: nums[0], Minute: nums[1]}
	if !c.Valid() {
		return Clock{}, invalid("time", s, ErrInvalidTime)
	}
	return c, nil
}

// ParseIndex parses a 1-based task number for a list of n tasks and returns
// the 0-based position.
func ParseIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || i < 1 || i > n {
		return 0, invalid("number", s, ErrInvalidIndex)
	}
	return i - 1, nil
}

// Field names a task attribute that can be edited.
type Field string

const (
	FieldPriority Field = "priority"
	FieldDate     Field = "date"
	FieldTime     Field = "time"
	FieldText     Field = "task"
)

// Fields lists the editable fields in prompt order.
func Fields() []Field {
	return []Field{FieldPriority, FieldDate, FieldTime, FieldText}
}

// ParseField parses the name of an editable field.
func ParseField(s string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Fields() {
		if f == known {
			return f, nil
		}
	}
	return "", invalid("field", s, ErrInvalidField)
}

// atois converts every part with strconv.Atoi. Empty parts and signs are
// rejected.
func atois(parts []string) ([]int, bool) {
	nums := make([]int, len(parts))
	for i, p := range parts {
		if p == "" || p[0] == '+' || p[0] == '-' {
			return nil, false
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		nums[i] = n
	}
	return nums, true
}
