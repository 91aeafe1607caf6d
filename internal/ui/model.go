package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitnag/internal/domain"
	"gitnag/internal/logging"
	"gitnag/internal/ports"
	"gitnag/internal/services"
	"gitnag/internal/theme"
)

// Reconciler forces an immediate refresh
type Reconciler interface {
	Reconcile(ctx context.Context) bool
}

// Model is the bubbletea model of the watch view
type Model struct {
	ctx        context.Context
	dispatcher ports.CommandDispatcher
	err        error
	keys       KeyMap
	lastUpdate time.Time
	notice     string
	now        func() time.Time
	reconciler Reconciler
	refreshing bool
	statuses   []domain.RepositoryStatus
	table      table.Model
	thresholds domain.Thresholds
	width      int
}

// NewModel creates the watch view. dispatcher may be nil.
func NewModel(ctx context.Context, reconciler Reconciler, dispatcher ports.CommandDispatcher, thresholds domain.Thresholds) *Model {
	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(theme.TableStyles())

	return &Model{
		ctx:        ctx,
		dispatcher: dispatcher,
		keys:       DefaultKeyMap(),
		now:        time.Now,
		reconciler: reconciler,
		table:      t,
		thresholds: thresholds,
		width:      80,
	}
}

// Init starts the elapsed-time ticker
func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.table.SetColumns(columns(msg.Width))
		m.table.SetHeight(max(msg.Height-8, 3))
		return m, nil

	case SnapshotMsg:
		m.statuses = msg.Statuses
		m.lastUpdate = m.now()
		m.refreshRows()
		return m, nil

	case tickMsg:
		m.refreshRows()
		return m, tickCmd()

	case reconciledMsg:
		m.refreshing = false
		if !msg.emitted {
			m.notice = "refresh skipped, a check is already running"
		}
		return m, nil

	case dispatchedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.notice = "opened " + msg.root
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			if m.refreshing {
				return m, nil
			}
			m.refreshing = true
			m.notice = ""
			return m, m.reconcileCmd()
		case key.Matches(msg, m.keys.Open):
			root := m.SelectedRoot()
			if root == "" || m.dispatcher == nil {
				return m, nil
			}
			return m, m.openCmd(root)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the watch view
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("gitnag"))
	b.WriteString(theme.MutedStyle.Render(fmt.Sprintf("  watching %d repositories", len(m.statuses))))
	b.WriteString("\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")
	b.WriteString(m.summaryLine())

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(theme.ErrorStyle.Render("Error: " + m.err.Error()))
	} else if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(theme.MutedStyle.Render(m.notice))
	}

	b.WriteString("\n")
	b.WriteString(m.helpLine())
	return b.String()
}

// SelectedRoot returns the repository under the cursor
func (m *Model) SelectedRoot() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.statuses) {
		return ""
	}
	return m.statuses[i].RootID
}

func (m *Model) reconcileCmd() tea.Cmd {
	ctx := m.ctx
	r := m.reconciler
	return func() tea.Msg {
		return reconciledMsg{emitted: r.Reconcile(ctx)}
	}
}

func (m *Model) openCmd(root string) tea.Cmd {
	ctx := m.ctx
	d := m.dispatcher
	return func() tea.Msg {
		err := d.Dispatch(ctx, domain.CommandOpenGitView, root)
		if err != nil {
			logging.Logger.Warn("Failed to open git view", "error", err, "root", root)
		}
		return dispatchedMsg{err: err, root: root}
	}
}

func (m *Model) refreshRows() {
	now := m.now()
	rows := make([]table.Row, 0, len(m.statuses))
	for _, s := range m.statuses {
		rows = append(rows, m.row(s, now))
	}
	m.table.SetRows(rows)
}

func (m *Model) row(s domain.RepositoryStatus, now time.Time) table.Row {
	unpushed := "-"
	if s.UnpushedCommitsCount != nil {
		unpushed = strconv.Itoa(*s.UnpushedCommitsCount)
	}
	return table.Row{
		s.RootID,
		strconv.Itoa(s.UncommittedChangesCount),
		age(s.UncommittedChangesSince, now),
		unpushed,
		age(s.UnpushedCommitsSince, now),
		services.StateOf(s, now, m.thresholds),
	}
}

func (m *Model) summaryLine() string {
	if m.lastUpdate.IsZero() {
		return theme.MutedStyle.Render("waiting for the first check...")
	}

	now := m.now()
	summary := services.Evaluate(m.statuses, now, m.thresholds)
	updated := theme.MutedStyle.Render(fmt.Sprintf("updated %s ago", services.FormatAge(now.Sub(m.lastUpdate))))

	message, ok := services.SelectMessage(summary)
	if ok {
		return stateStyle(services.StateOverdue).Render(message+" ") + updated
	}

	for _, s := range m.statuses {
		if services.StateOf(s, now, m.thresholds) == services.StateDirty {
			return stateStyle(services.StateDirty).Render("Work in progress, nothing overdue yet. ") + updated
		}
	}
	return stateStyle(services.StateClean).Render("All caught up. ") + updated
}

func (m *Model) helpLine() string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, theme.HelpShortcutStyle.Render(h.Key)+" "+theme.HelpLabelStyle.Render(h.Desc))
	}
	return theme.HelpStyle.Render(strings.Join(parts, "  "))
}

func age(since *time.Time, now time.Time) string {
	if since == nil {
		return ""
	}
	d := now.Sub(*since)
	if d < 0 {
		d = -d
	}
	return services.FormatAge(d)
}

func columns(width int) []table.Column {
	const fixed = 11 + 8 + 9 + 8 + 8 + 12
	repoWidth := max(width-fixed, 20)
	return []table.Column{
		{Title: "Repository", Width: repoWidth},
		{Title: "Uncommitted", Width: 11},
		{Title: "For", Width: 8},
		{Title: "Unpushed", Width: 9},
		{Title: "For", Width: 8},
		{Title: "State", Width: 8},
	}
}

// stateStyle returns the style for a repository state label
func stateStyle(state string) lipgloss.Style {
	switch state {
	case services.StateOverdue:
		return theme.OverdueStyle
	case services.StateDirty:
		return theme.DirtyStyle
	default:
		return theme.CleanStyle
	}
}
