// Package tui is the interactive review mode: scan results in a table, a
// preview pane for the selected file, and apply-in-place from the keyboard.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nejtool/nej/internal/types"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	paneBorderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("7"))

	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7")).
			Bold(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
)

// Scanner recomputes reports for the paths under review (a dry run).
type Scanner func() ([]types.FileReport, error)

// Applier rewrites the given files in place and returns their new reports.
type Applier func(paths []string) ([]types.FileReport, error)

type (
	scanDoneMsg struct {
		reports []types.FileReport
		err     error
	}
	applyDoneMsg struct {
		reports []types.FileReport
		err     error
	}
	previewMsg struct {
		path    string
		content string
		err     error
	}
	statusMsg string
)

// Model holds the TUI state.
type Model struct {
	table    table.Model
	viewport viewport.Model
	spinner  spinner.Model

	reports  []types.FileReport
	visible  []int // indices into reports after the hide-clean filter
	scan     Scanner
	apply    Applier
	prefs    Prefs
	status   string
	scanning bool
	applying bool
	ready    bool
	quitting bool
	width    int
	height   int
}

// NewModel builds the initial model from an already-completed dry run.
func NewModel(reports []types.FileReport, scan Scanner, apply Applier) Model {
	columns := []table.Column{
		{Title: "File", Width: 48},
		{Title: "Emojis", Width: 8},
		{Title: "Status", Width: 16},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	s := table.DefaultStyles()
	s.Header = lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("15")).
		Bold(true).
		Padding(0, 1)
	s.Selected = lipgloss.NewStyle().
		Foreground(lipgloss.Color("232")).
		Background(lipgloss.Color("208")).
		Bold(true).
		Padding(0, 1)
	s.Cell = lipgloss.NewStyle().Padding(0, 1)
	t.SetStyles(s)

	// Line spinner avoids Braille characters that render poorly on some terminals
	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	m := Model{
		table:   t,
		spinner: sp,
		reports: reports,
		scan:    scan,
		apply:   apply,
		prefs:   LoadPrefs(),
	}
	m.refreshRows()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "r":
			if m.scanning || m.applying {
				return m, nil
			}
			m.scanning = true
			m.status = "Rescanning..."
			return m, tea.Batch(m.spinner.Tick, m.rescan())
		case "a":
			if r, ok := m.selected(); ok && !m.applying && r.Removed > 0 {
				m.applying = true
				m.status = fmt.Sprintf("Cleaning %s...", r.Path)
				return m, tea.Batch(m.spinner.Tick, m.applyPaths([]string{r.Path}))
			}
			return m, nil
		case "A":
			paths := m.dirtyPaths()
			if len(paths) == 0 || m.applying {
				return m, nil
			}
			m.applying = true
			m.status = fmt.Sprintf("Cleaning %d files...", len(paths))
			return m, tea.Batch(m.spinner.Tick, m.applyPaths(paths))
		case "c":
			return m, m.copyPathToClipboard()
		case "h":
			m.prefs.HideClean = !m.prefs.HideClean
			_ = SavePrefs(m.prefs)
			m.refreshRows()
			return m, nil
		case "enter":
			if r, ok := m.selected(); ok {
				return m, loadPreview(r.Path)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := msg.Height - m.table.Height() - 6
		if vpHeight < 3 {
			vpHeight = 3
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width-2, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 2
			m.viewport.Height = vpHeight
		}
		return m, nil

	case scanDoneMsg:
		m.scanning = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Scan failed: %v", msg.err)
			return m, nil
		}
		m.reports = msg.reports
		m.refreshRows()
		m.status = fmt.Sprintf("Scanned %d files", len(msg.reports))
		return m, nil

	case applyDoneMsg:
		m.applying = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Clean failed: %v", msg.err)
			return m, nil
		}
		m.mergeReports(msg.reports)
		m.refreshRows()
		m.status = fmt.Sprintf("Cleaned %d files", len(msg.reports))
		return m, nil

	case previewMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Preview failed: %v", msg.err)
			return m, nil
		}
		if m.ready {
			m.viewport.SetContent(highlightCode(msg.content, msg.path))
			m.viewport.GotoTop()
		}
		m.status = "Previewing " + msg.path
		return m, nil

	case statusMsg:
		m.status = string(msg)
		return m, nil

	case spinner.TickMsg:
		if m.scanning || m.applying {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	cmds = append(cmds, cmd)
	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	header := titleStyle.Render("nej — emoji review")
	if m.scanning || m.applying {
		header += " " + m.spinner.View()
	}
	total := 0
	for _, r := range m.reports {
		total += r.Removed
	}
	header += "  " + countStyle.Render(fmt.Sprintf("%d emoji in %d files", total, len(m.visible)))

	body := paneBorderStyle.Render(m.table.View())
	if m.ready {
		body += "\n" + paneBorderStyle.Render(m.viewport.View())
	}

	help := keyStyle.Render("enter") + " preview  " +
		keyStyle.Render("a") + " clean  " +
		keyStyle.Render("A") + " clean all  " +
		keyStyle.Render("r") + " rescan  " +
		keyStyle.Render("c") + " copy path  " +
		keyStyle.Render("h") + " hide clean  " +
		keyStyle.Render("q") + " quit"

	out := header + "\n" + body + "\n" + help
	if m.status != "" {
		out += "\n" + statusStyle.Render(" "+m.status+" ")
	}
	return out
}

func (m *Model) refreshRows() {
	m.visible = m.visible[:0]
	var rows []table.Row
	for i, r := range m.reports {
		if m.prefs.HideClean && r.Removed == 0 && r.Outcome != types.OutcomeFailed {
			continue
		}
		m.visible = append(m.visible, i)
		rows = append(rows, table.Row{
			r.Path,
			fmt.Sprintf("%d", r.Removed),
			outcomeText(r),
		})
	}
	m.table.SetRows(rows)
}

func (m Model) selected() (types.FileReport, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.visible) {
		return types.FileReport{}, false
	}
	return m.reports[m.visible[i]], true
}

func (m Model) dirtyPaths() []string {
	var out []string
	for _, r := range m.reports {
		if r.Removed > 0 && r.Outcome == types.OutcomeReported {
			out = append(out, r.Path)
		}
	}
	return out
}

func (m *Model) mergeReports(applied []types.FileReport) {
	byPath := make(map[string]types.FileReport, len(applied))
	for _, r := range applied {
		byPath[r.Path] = r
	}
	for i, r := range m.reports {
		if nr, ok := byPath[r.Path]; ok {
			m.reports[i] = nr
		}
	}
}

func outcomeText(r types.FileReport) string {
	switch r.Outcome {
	case types.OutcomeReported:
		if r.Removed > 0 {
			return "pending"
		}
		return "clean"
	case types.OutcomeWritten:
		return "cleaned"
	case types.OutcomeUnchanged:
		return "clean"
	case types.OutcomeSkippedBinary:
		return "binary"
	case types.OutcomeFailed:
		return "error"
	default:
		return string(r.Outcome)
	}
}
