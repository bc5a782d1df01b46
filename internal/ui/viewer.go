package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewerOption configures the table viewer.
type ViewerOption func(*viewerConfig)

type viewerConfig struct {
	in  io.Reader
	out io.Writer
}

// WithViewerIO sets the terminal streams of the viewer.
func WithViewerIO(in io.Reader, out io.Writer) ViewerOption {
	return func(c *viewerConfig) {
		c.in = in
		c.out = out
	}
}

// NewViewer returns a ViewFunc that shows content in a full-screen,
// scrollable bubbletea program.
func NewViewer(opts ...ViewerOption) ViewFunc {
	c := &viewerConfig{}
	for _, opt := range opts {
		opt(c)
	}
	return func(ctx context.Context, content string) error {
		programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
		if c.in != nil {
			programOpts = append(programOpts, tea.WithInput(c.in))
		}
		if c.out != nil {
			programOpts = append(programOpts, tea.WithOutput(c.out))
		}
		_, err := tea.NewProgram(newViewerModel(content), programOpts...).Run()
		return err
	}
}

var (
	viewerTitleStyle  = lipgloss.NewStyle().Bold(true)
	viewerFooterStyle = lipgloss.NewStyle().Faint(true)
)

type viewerModel struct {
	lines  []string
	offset int
	height int // rows available for table lines
}

func newViewerModel(content string) *viewerModel {
	return &viewerModel{
		lines:  strings.Split(strings.TrimRight(content, "\n"), "\n"),
		height: 20,
	}
}

func (m *viewerModel) Init() tea.Cmd {
	return nil
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// title, blank line and footer
		m.height = max(msg.Height-3, 1)
		m.clamp()
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			m.offset--
		case "down", "j", "enter":
			m.offset++
		case "pgup", "b":
			m.offset -= m.height
		case "pgdown", "f", " ":
			m.offset += m.height
		case "home", "g":
			m.offset = 0
		case "end", "G":
			m.offset = len(m.lines)
		}
		m.clamp()
	}
	return m, nil
}

func (m *viewerModel) View() string {
	var b strings.Builder
	b.WriteString(viewerTitleStyle.Render("Tasks") + "\n\n")

	end := min(m.offset+m.height, len(m.lines))
	for _, line := range m.lines[m.offset:end] {
		b.WriteString(line + "\n")
	}

	footer := fmt.Sprintf("lines %d-%d of %d | j/k scroll | q quit", m.offset+1, end, len(m.lines))
	b.WriteString(viewerFooterStyle.Render(footer))
	return b.String()
}

// clamp keeps the offset within the scrollable range.
func (m *viewerModel) clamp() {
	maxOffset := max(len(m.lines)-m.height, 0)
	m.offset = min(max(m.offset, 0), maxOffset)
}
