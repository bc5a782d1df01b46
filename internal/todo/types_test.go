package todo

import (
	"errors"
	"testing"
	"time"
)

func newTask(t *testing.T, priority Priority, date, clock string, lines ...string) Task {
	t.Helper()
	d, err := ParseDate(date)
	if err != nil {
		t.Fatalf("ParseDate(%q): %v", date, err)
	}
	c, err := ParseTime(clock)
	if err != nil {
		t.Fatalf("ParseTime(%q): %v", clock, err)
	}
	return Task{Priority: priority, Date: d, Time: c, Lines: lines}
}

func TestListAdd(t *testing.T) {
	l := NewList()
	if l.Len() != 0 {
		t.Fatalf("Len: got %d, want 0", l.Len())
	}

	if err := l.Add(newTask(t, PriorityHigh, "2023-03-01", "12:00", "first")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := l.Add(newTask(t, PriorityLow, "2023-03-02", "13:00", "second", "more")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	tasks := l.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("Tasks count: got %d, want 2", len(tasks))
	}
	if tasks[0].Text() != "first" || tasks[1].Text() != "second\nmore" {
		t.Errorf("insertion order not kept: %q, %q", tasks[0].Text(), tasks[1].Text())
	}
}

func TestListAddRejectsInvalid(t *testing.T) {
	valid := newTask(t, PriorityNormal, "2023-03-01", "12:00", "text")

	tests := []struct {
		name    string
		mutate  func(*Task)
		wantErr error
	}{
		{"blank text", func(task *Task) { task.Lines = nil }, ErrBlankTask},
		{"blank line", func(task *Task) { task.Lines = []string{"ok", "  "} }, ErrBlankTask},
		{"bad priority", func(task *Task) { task.Priority = "X" }, ErrInvalidPriority},
		{"year past range", func(task *Task) { task.Date = time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC) }, ErrInvalidDate},
		{"date with time of day", func(task *Task) { task.Date = task.Date.Add(time.Hour) }, ErrInvalidDate},
		{"bad hour", func(task *Task) { task.Time.Hour = 24 }, ErrInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := valid
			task.Lines = []string{"text"}
			tt.mutate(&task)
			l := NewList()
			err := l.Add(task)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Add error = %v, want %v", err, tt.wantErr)
			}
			if l.Len() != 0 {
				t.Errorf("invalid task was stored")
			}
		})
	}
}

func TestListUpdateChangesOnlyOneField(t *testing.T) {
	l := NewList()
	original := newTask(t, PriorityHigh, "2023-03-01", "12:00", "text")
	if err := l.Add(original); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	newDate, _ := ParseDate("2024-01-15")
	if err := l.Update(0, func(task *Task) { task.Date = newDate }); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := l.Get(0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !got.Date.Equal(newDate) {
		t.Errorf("Date: got %v, want %v", got.Date, newDate)
	}
	if got.Priority != original.Priority || got.Time != original.Time || got.Text() != original.Text() {
		t.Errorf("other fields changed: %+v", got)
	}
}

func TestListUpdateKeepsTaskOnInvalidResult(t *testing.T) {
	l := NewList()
	if err := l.Add(newTask(t, PriorityHigh, "2023-03-01", "12:00", "text")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	err := l.Update(0, func(task *Task) { task.Lines = nil })
	if !errors.Is(err, ErrBlankTask) {
		t.Fatalf("Update error = %v, want ErrBlankTask", err)
	}
	got, _ := l.Get(0)
	if got.Text() != "text" {
		t.Errorf("task changed after rejected update: %q", got.Text())
	}
}

func TestListDelete(t *testing.T) {
	l := NewList()
	for _, text := range []string{"a", "b", "c"} {
		if err := l.Add(newTask(t, PriorityLow, "2023-03-01", "12:00", text)); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	if err := l.Delete(1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	tasks := l.Tasks()
	if len(tasks) != 2 || tasks[0].Text() != "a" || tasks[1].Text() != "c" {
		t.Errorf("after delete: %+v", tasks)
	}

	if err := l.Delete(5); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("Delete out of range error = %v, want ErrInvalidIndex", err)
	}
	if err := l.Delete(-1); !errors.Is(err, ErrInvalidIndex) {
		t.Errorf("Delete negative error = %v, want ErrInvalidIndex", err)
	}
}

func TestListReturnsCopies(t *testing.T) {
	l := NewList()
	if err := l.Add(newTask(t, PriorityLow, "2023-03-01", "12:00", "keep")); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	tasks := l.Tasks()
	tasks[0].Lines[0] = "mutated"

	got, _ := l.Get(0)
	if got.Text() != "keep" {
		t.Errorf("list shares memory with caller: %q", got.Text())
	}
}

func TestTaskDue(t *testing.T) {
	task := newTask(t, PriorityLow, "2023-03-01", "9:05", "x")
	want := time.Date(2023, time.March, 1, 9, 5, 0, 0, time.UTC)
	if !task.Due().Equal(want) {
		t.Errorf("Due: got %v, want %v", task.Due(), want)
	}
}

func TestListAddAcceptsParsedBoundaryDates(t *testing.T) {
	for _, date := range []string{"1-1-1", "0001-01-01", "9999-12-31"} {
		t.Run(date, func(t *testing.T) {
			l := NewList()
			if err := l.Add(newTask(t, PriorityLow, date, "10:00", "text")); err != nil {
				t.Fatalf("Add(%s) failed: %v", date, err)
			}
		})
	}
}
