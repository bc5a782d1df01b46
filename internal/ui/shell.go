package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tasklist/internal/logging"
	"github.com/nibzard/tasklist/internal/todo"
)

// Messages printed by the shell.
const (
	promptAction   = "Input an action (add, print, edit, delete, end):"
	promptDate     = "Input the date (yyyy-mm-dd):"
	promptTime     = "Input the time (hh:mm):"
	promptText     = "Input a new task (enter a blank line to end):"
	promptField    = "Input a field to edit (priority, date, time, task):"
	msgBadAction   = "The input action is invalid"
	msgBadDate     = "The input date is invalid"
	msgBadTime     = "The input time is invalid"
	msgBadIndex    = "Invalid task number"
	msgBadField    = "Invalid field"
	msgBlankTask   = "The task is blank"
	msgTaskChanged = "The task is changed"
	msgTaskDeleted = "The task is deleted"
	msgExiting     = "Tasklist exiting!"
)

// ViewFunc shows rendered table content interactively.
type ViewFunc func(ctx context.Context, content string) error

// ShellOption configures a Shell.
type ShellOption func(*Shell)

// WithLogger sets the logger for task lifecycle events.
func WithLogger(logger *log.Logger) ShellOption {
	return func(s *Shell) {
		s.logger = logger
	}
}

// WithTable sets the table renderer.
func WithTable(t *Table) ShellOption {
	return func(s *Shell) {
		s.table = t
	}
}

// WithViewer enables the "view" command. Without a viewer "view" prints the
// table like "print".
func WithViewer(view ViewFunc) ShellOption {
	return func(s *Shell) {
		s.view = view
	}
}

// Shell is the interactive command loop over a task list.
type Shell struct {
	in     *bufio.Reader
	out    io.Writer
	list   *todo.List
	table  *Table
	logger *log.Logger
	view   ViewFunc

	// pending holds the result of a read still in flight after its caller
	// gave up on a cancelled context.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

// NewShell creates a shell that reads commands from in and writes prompts and
// tables to out.
func NewShell(in io.Reader, out io.Writer, list *todo.List, opts ...ShellOption) *Shell {
	s := &Shell{
		in:   bufio.NewReader(in),
		out:  out,
		list: list,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.table == nil {
		s.table = NewTable()
	}
	if s.logger == nil {
		s.logger = logging.Discard()
	}
	return s
}

// Run reads and executes commands until "end" or end of input. It returns
// ctx.Err() if the context is cancelled between prompts.
func (s *Shell) Run(ctx context.Context) error {
	for {
		s.println(promptAction)
		line, err := s.readLine(ctx)
		if err != nil {
			return s.finish(err)
		}

		action := strings.ToLower(strings.TrimSpace(line))
		switch action {
		case "add":
			err = s.add(ctx)
		case "print":
			s.printTasks()
		case "edit":
			err = s.edit(ctx)
		case "delete":
			err = s.delete(ctx)
		case "view":
			err = s.viewTasks(ctx)
		case "end":
			s.println(msgExiting)
			return nil
		default:
			s.logger.Debug("invalid input", "field", "action", "input", line)
			s.println(msgBadAction)
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

// finish maps end of input to a clean exit.
func (s *Shell) finish(err error) error {
	if errors.Is(err, io.EOF) {
		s.logger.Debug("end of input")
		return nil
	}
	return err
}

func (s *Shell) add(ctx context.Context) error {
	priority, err := s.askPriority(ctx)
	if err != nil {
		return err
	}
	date, err := s.askDate(ctx)
	if err != nil {
		return err
	}
	clock, err := s.askTime(ctx)
	if err != nil {
		return err
	}
	lines, err := s.askText(ctx)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		s.println(msgBlankTask)
		return nil
	}

	task := todo.Task{Priority: priority, Date: date, Time: clock, Lines: lines}
	if err := s.list.Add(task); err != nil {
		return fmt.Errorf("add task: %w", err)
	}
	s.logger.Debug("task added",
		"number", s.list.Len(),
		"priority", priority.Name(),
		"due", task.Due().Format(todo.DateLayout+" "+todo.ClockLayout),
	)
	return nil
}

func (s *Shell) edit(ctx context.Context) error {
	if !s.printTasks() {
		return nil
	}
	i, err := s.askIndex(ctx)
	if err != nil {
		return err
	}
	field, err := s.askField(ctx)
	if err != nil {
		return err
	}

	var update func(*todo.Task)
	switch field {
	case todo.FieldPriority:
		p, err := s.askPriority(ctx)
		if err != nil {
			return err
		}
		update = func(t *todo.Task) { t.Priority = p }
	case todo.FieldDate:
		d, err := s.askDate(ctx)
		if err != nil {
			return err
		}
		update = func(t *todo.Task) { t.Date = d }
	case todo.FieldTime:
		c, err := s.askTime(ctx)
		if err != nil {
			return err
		}
		update = func(t *todo.Task) { t.Time = c }
	case todo.FieldText:
		lines, err := s.askText(ctx)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			s.println(msgBlankTask)
			return nil
		}
		update = func(t *todo.Task) { t.Lines = lines }
	}

	if err := s.list.Update(i, update); err != nil {
		return fmt.Errorf("edit task %d: %w", i+1, err)
	}
	s.logger.Debug("task changed", "number", i+1, "field", string(field))
	s.println(msgTaskChanged)
	return nil
}

func (s *Shell) delete(ctx context.Context) error {
	if !s.printTasks() {
		return nil
	}
	i, err := s.askIndex(ctx)
	if err != nil {
		return err
	}
	if err := s.list.Delete(i); err != nil {
		return fmt.Errorf("delete task %d: %w", i+1, err)
	}
	s.logger.Debug("task deleted", "number", i+1, "remaining", s.list.Len())
	s.println(msgTaskDeleted)
	return nil
}

// printTasks prints the table and reports whether there was anything in it.
func (s *Shell) printTasks() bool {
	tasks := s.list.Tasks()
	if err := s.table.Write(s.out, tasks); err != nil {
		s.logger.Error("write table", "err", err)
	}
	return len(tasks) > 0
}

func (s *Shell) viewTasks(ctx context.Context) error {
	tasks := s.list.Tasks()
	if s.view == nil || len(tasks) == 0 {
		s.printTasks()
		return nil
	}
	if err := s.view(ctx, s.table.Render(tasks)); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.logger.Warn("viewer failed, printing instead", "err", err)
		s.printTasks()
	}
	return nil
}

func (s *Shell) askPriority(ctx context.Context) (todo.Priority, error) {
	for {
		s.println(fmt.Sprintf("Input the task priority (%s):", todo.PriorityCodes()))
		line, err := s.readLine(ctx)
		if err != nil {
			return "", err
		}
		p, err := todo.ParsePriority(line)
		if err == nil {
			return p, nil
		}
		s.logger.Debug("invalid input", "err", err)
	}
}

func (s *Shell) askDate(ctx context.Context) (time.Time, error) {
	for {
		s.println(promptDate)
		line, err := s.readLine(ctx)
		if err != nil {
			return time.Time{}, err
		}
		d, err := todo.ParseDate(line)
		if err == nil {
			return d, nil
		}
		s.logger.Debug("invalid input", "err", err)
		s.println(msgBadDate)
	}
}

func (s *Shell) askTime(ctx context.Context) (todo.Clock, error) {
	for {
		s.println(promptTime)
		line, err := s.readLine(ctx)
		if err != nil {
			return todo.Clock{}, err
		}
		c, err := todo.ParseTime(line)
		if err == nil {
			return c, nil
		}
		s.logger.Debug("invalid input", "err", err)
		s.println(msgBadTime)
	}
}

// askText reads lines until a blank one. It returns no lines when the first
// line is blank.
func (s *Shell) askText(ctx context.Context) ([]string, error) {
	s.println(promptText)
	var lines []string
	for {
		line, err := s.readLine(ctx)
		if err != nil {
			return nil, err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return lines, nil
		}
		lines = append(lines, line)
	}
}

func (s *Shell) askIndex(ctx context.Context) (int, error) {
	n := s.list.Len()
	for {
		s.println(fmt.Sprintf("Input the task number (1-%d):", n))
		line, err := s.readLine(ctx)
		if err != nil {
			return 0, err
		}
		i, err := todo.ParseIndex(line, n)
		if err == nil {
			return i, nil
		}
		s.logger.Debug("invalid input", "err", err)
		s.println(msgBadIndex)
	}
}

func (s *Shell) askField(ctx context.Context) (todo.Field, error) {
	for {
		s.println(promptField)
		line, err := s.readLine(ctx)
		if err != nil {
			return "", err
		}
		f, err := todo.ParseField(line)
		if err == nil {
			return f, nil
		}
		s.logger.Debug("invalid input", "err", err)
		s.println(msgBadField)
	}
}

// readLine returns the next input line without its line ending, io.EOF at
// end of input, or ctx.Err() once the context is done. Lines have no length
// limit. The read runs in its own goroutine so cancellation does not wait
// for the user to press Enter.
func (s *Shell) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			line, err := s.in.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()
		s.pending = ch
	}

	var res readResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-s.pending:
		s.pending = nil
	}

	switch {
	case res.err == nil:
	case errors.Is(res.err, io.EOF):
		// A final line without a newline is returned; the next read
		// reports io.EOF.
		if res.line == "" {
			return "", io.EOF
		}
	default:
		return "", fmt.Errorf("read input: %w", res.err)
	}
	line := strings.TrimSuffix(res.line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (s *Shell) println(msg string) {
	fmt.Fprintln(s.out, msg)
}
