// Package preview is the live terminal preview behind `layoutlint preview`.
package preview

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/markolybrx/layout"
	"github.com/markolybrx/layout/internal/render"
	"github.com/markolybrx/layout/internal/watch"
)

// headerHeight and footerHeight are the rows reserved around the viewport.
const (
	headerHeight = 1
	footerHeight = 1
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
	mutedStyle = lipgloss.NewStyle().Faint(true)
)

type resultMsg watch.Result

type closedMsg struct{}

// Model shows the most recent successful interpretation of a layout file
// together with the status of the latest attempt.
type Model struct {
	path     string
	results  <-chan watch.Result
	opts     render.Options
	logger   *zap.Logger
	viewport viewport.Model
	node     *layout.VisualNode
	err      error
	updated  time.Time
	closed   bool
	width    int
}

// New creates a preview model fed by results.
func New(path string, results <-chan watch.Result, opts render.Options, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := Model{
		path:     path,
		results:  results,
		opts:     opts,
		logger:   logger,
		viewport: viewport.New(opts.Width, 20),
		width:    opts.Width,
	}
	m.refresh()
	return m
}

// Init waits for the first result.
func (m Model) Init() tea.Cmd {
	return waitForResult(m.results)
}

func waitForResult(results <-chan watch.Result) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-results
		if !ok {
			return closedMsg{}
		}
		return resultMsg(r)
	}
}

// Update handles key, resize and watcher messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-headerHeight-footerHeight, 1)
		m.refresh()
		return m, nil

	case resultMsg:
		m.updated = msg.At
		if msg.Err != nil {
			m.err = msg.Err
			m.logger.Debug("preview keeps last good layout", zap.Error(msg.Err))
		} else {
			m.err = nil
			m.node = msg.Node
			m.refresh()
		}
		return m, waitForResult(m.results)

	case closedMsg:
		m.closed = true
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) refresh() {
	if m.node == nil {
		m.viewport.SetContent(mutedStyle.Render("waiting for layout..."))
		return
	}
	opts := m.opts
	if m.width > 0 {
		opts.Width = m.width
	}
	m.viewport.SetContent(render.Render(m.node, opts))
}

// View renders the title, the painted layout and the status line.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("layout preview: " + filepath.Base(m.path)))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.status())
	return b.String()
}

func (m Model) status() string {
	switch {
	case m.closed:
		return mutedStyle.Render("watcher stopped - press q to quit")
	case m.err != nil:
		return errStyle.Render(m.err.Error())
	case m.node != nil:
		return okStyle.Render(fmt.Sprintf("%d nodes, updated %s", m.node.Count(), m.updated.Format(time.TimeOnly))) +
			mutedStyle.Render("  q quit")
	default:
		return mutedStyle.Render("interpreting...")
	}
}
