package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/nibzard/tasklist/internal/config"
	"github.com/nibzard/tasklist/internal/todo"
)

// TextWidth is the display width of the task column.
const TextWidth = 44

// NoTasksMessage is printed instead of an empty table.
const NoTasksMessage = "No tasks have been input"

const (
	tableBorder = "+----+------------+-------+---+---+--------------------------------------------+"
	tableHeader = "| N  |    Date    | Time  | P | D |                   Task                     |"
	blankMeta   = "|    |            |       |   |   |"
	numberWidth = 4
)

// TableOption configures a Table.
type TableOption func(*Table)

// WithRenderer sets the lipgloss renderer used for coloured cells. Its colour
// profile decides between coloured cells and letters.
func WithRenderer(r *lipgloss.Renderer) TableOption {
	return func(t *Table) {
		t.renderer = r
	}
}

// WithClock sets the clock used to compute urgency.
func WithClock(now func() time.Time) TableOption {
	return func(t *Table) {
		t.now = now
	}
}

// Table renders tasks as a fixed-width bordered table.
type Table struct {
	renderer *lipgloss.Renderer
	now      func() time.Time
}

// NewTable returns a Table that draws letters instead of colours unless a
// renderer with a colour profile is supplied.
func NewTable(opts ...TableOption) *Table {
	t := &Table{now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	if t.renderer == nil {
		t.renderer = NewRenderer(io.Discard, config.ColorNever)
	}
	return t
}

// NewRenderer returns a lipgloss renderer for w honouring the colour mode.
// In auto mode the profile is detected from w and the environment.
func NewRenderer(w io.Writer, mode config.ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// Render returns the table for tasks, or NoTasksMessage when there are none.
// Every line, including the last, ends with a newline.
func (t *Table) Render(tasks []todo.Task) string {
	var b strings.Builder
	if len(tasks) == 0 {
		b.WriteString(NoTasksMessage + "\n")
		return b.String()
	}

	today := t.now()
	b.WriteString(tableBorder + "\n")
	b.WriteString(tableHeader + "\n")
	b.WriteString(tableBorder + "\n")
	for i := range tasks {
		t.writeTask(&b, i+1, &tasks[i], today)
		b.WriteString(tableBorder + "\n")
	}
	return b.String()
}

// Write renders tasks to w.
func (t *Table) Write(w io.Writer, tasks []todo.Task) error {
	_, err := io.WriteString(w, t.Render(tasks))
	return err
}

func (t *Table) writeTask(b *strings.Builder, n int, task *todo.Task, today time.Time) {
	urgency := todo.UrgencyOf(today, task.Date)
	first := true
	for _, line := range task.Lines {
		for _, chunk := range Wrap(line, TextWidth) {
			if first {
				fmt.Fprintf(b, "|%s| %s | %s | %s | %s |",
					numberCell(n),
					task.Date.Format(todo.DateLayout),
					task.Time.String(),
					t.cell(task.Priority.Letter(), task.Priority.Color()),
					t.cell(urgency.Letter(), urgency.Color()),
				)
				first = false
			} else {
				b.WriteString(blankMeta)
			}
			b.WriteString(pad(chunk, TextWidth))
			b.WriteString("|\n")
		}
	}
}

// numberCell formats n for the four-column N cell: " 7  ", " 42 ", " 100",
// "1000". Numbers above 9999 widen the cell.
func numberCell(n int) string {
	s := strconv.Itoa(n)
	if len(s) >= numberWidth {
		return s
	}
	return " " + s + strings.Repeat(" ", numberWidth-1-len(s))
}

// cell draws a one-column tag: a coloured blank when the renderer supports
// colour, otherwise the letter.
func (t *Table) cell(letter string, color todo.Color) string {
	if !t.colored() {
		return letter
	}
	return t.renderer.NewStyle().
		Background(lipgloss.ANSIColor(uint(color))).
		Render(" ")
}

func (t *Table) colored() bool {
	return t.renderer.ColorProfile() != termenv.Ascii
}

// Wrap splits s into chunks of at most width display columns. Wide runes
// count as two columns and are never split. Tabs become single spaces and
// other control characters are dropped. An empty s yields one empty chunk.
func Wrap(s string, width int) []string {
	s = printable(s)
	if width <= 0 {
		return []string{s}
	}
	var chunks []string
	var cur strings.Builder
	curWidth := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if curWidth+w > width && curWidth > 0 {
			chunks = append(chunks, cur.String())
			cur.Reset()
			curWidth = 0
		}
		cur.WriteRune(r)
		curWidth += w
	}
	chunks = append(chunks, cur.String())
	return chunks
}

func printable(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, s)
}

// pad right-pads s with spaces to width display columns.
func pad(s string, width int) string {
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
