package todo

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// DateLayout and ClockLayout are the display formats for due dates and times.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// Valid reports whether the clock is within 00:00-23:59.
func (c Clock) Valid() bool {
	return c.Hour >= 0 && c.Hour <= 23 && c.Minute >= 0 && c.Minute <= 59
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Task is a single entry in the list.
type Task struct {
	Priority Priority
	Date     time.Time // midnight UTC of the due day
	Time     Clock
	Lines    []string
}

// Due returns the due date and time combined, in UTC.
func (t *Task) Due() time.Time {
	return t.Date.Add(time.Duration(t.Time.Hour)*time.Hour + time.Duration(t.Time.Minute)*time.Minute)
}

// Text returns the task lines joined by newlines.
func (t *Task) Text() string {
	return strings.Join(t.Lines, "\n")
}

// Validate checks the invariants every stored task must satisfy.
func (t *Task) Validate() error {
	if !t.Priority.Valid() {
		return invalid("priority", string(t.Priority), ErrInvalidPriority)
	}
	if !validDate(t.Date) {
		return invalid("date", t.Date.Format(DateLayout), ErrInvalidDate)
	}
	if !t.Time.Valid() {
		return invalid("time", t.Time.String(), ErrInvalidTime)
	}
	if len(t.Lines) == 0 {
		return invalid("task", "", ErrBlankTask)
	}
	for _, line := range t.Lines {
		if strings.TrimSpace(line) == "" {
			return invalid("task", "", ErrBlankTask)
		}
	}
	return nil
}

// validDate reports whether d is midnight UTC of a day in MinYear..MaxYear.
// The zero time.Time is 0001-01-01 and therefore valid.
func validDate(d time.Time) bool {
	y := d.Year()
	return y >= MinYear && y <= MaxYear && d.Equal(dateOf(d)) && d.Location() == time.UTC
}

// clone returns a copy of t that shares no slices with it.
func (t Task) clone() Task {
	t.Lines = slices.Clone(t.Lines)
	return t
}

// List is the ordered, in-memory task list. The zero value is ready to use.
type List struct {
	tasks []Task
}

// NewList returns an empty list.
func NewList() *List {
	return &List{}
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Tasks returns a copy of the tasks in display order.
func (l *List) Tasks() []Task {
	out := make([]Task, len(l.tasks))
	for i, t := range l.tasks {
		out[i] = t.clone()
	}
	return out
}

// Get returns the task at the 0-based position i.
func (l *List) Get(i int) (Task, error) {
	if err := l.checkIndex(i); err != nil {
		return Task{}, err
	}
	return l.tasks[i].clone(), nil
}

// Add validates task and appends it to the end of the list.
func (l *List) Add(task Task) error {
	if err := task.Validate(); err != nil {
		return err
	}
	l.tasks = append(l.tasks, task.clone())
	return nil
}

// Update applies updater to a copy of the task at position i and stores the
// result if it is still valid.
func (l *List) Update(i int, updater func(*Task)) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	task := l.tasks[i].clone()
	updater(&task)
	if err := task.Validate(); err != nil {
		return err
	}
	l.tasks[i] = task
	return nil
}

// Delete removes the task at position i; later tasks move up by one.
func (l *List) Delete(i int) error {
	if err := l.checkIndex(i); err != nil {
		return err
	}
	l.tasks = slices.Delete(l.tasks, i, i+1)
	return nil
}

func (l *List) checkIndex(i int) error {
	if i < 0 || i >= len(l.tasks) {
		return invalid("number", fmt.Sprint(i+1), ErrInvalidIndex)
	}
	return nil
}
