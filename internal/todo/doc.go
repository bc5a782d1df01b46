// Package todo holds the in-memory task list and the parsers that validate
// user input for it.
//
// A task carries four fields:
//
//	priority  C (critical), H (high), N (normal), L (low)
//	date      YYYY-M-D, checked against the real length of the month
//	time      H:M, 0-23 hours and 0-59 minutes
//	lines     one or more non-blank lines of text
//
// # Ordering
//
// List keeps tasks in insertion order. The number shown next to a task is its
// 1-based position in that order and is not stored on the task, so deleting a
// task renumbers every task after it.
//
// # Urgency
//
// Urgency is derived from the due date at render time:
//
//   - "I" (in time): due after today
//   - "T" (today): due today
//   - "O" (overdue): due before today
package todo
