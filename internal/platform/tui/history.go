package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cyclist-collector/internal/storage"
)

// maxHistoryRuns is the number of runs listed in the history table.
const maxHistoryRuns = 10

// HistoryView shows the best runs of the session as a table.
type HistoryView struct {
	store  *storage.Store
	runs   []storage.RunRecord
	last   *storage.RunRecord // Most recent run, nil before the first
	stats  storage.SessionStats
	table  table.Model
	width  int
	height int
}

// NewHistoryView creates a history view over the given store.
// A nil store shows an empty history.
func NewHistoryView(store *storage.Store, width, height int) *HistoryView {
	h := &HistoryView{store: store, width: width, height: height}
	h.table = h.createTable()
	return h
}

// createTable creates a new table with columns sized to the view.
func (h *HistoryView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Coins", Width: 6},
		{Title: "League", Width: 20},
		{Title: "Skills", Width: 6},
		{Title: "Ended", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, h.height-8)), // Leave room for title, stats and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads runs and stats from the store.
func (h *HistoryView) Refresh() error {
	if h.store == nil {
		h.runs = nil
		h.last = nil
		h.stats = storage.SessionStats{}
		h.updateTableRows()
		return nil
	}

	runs, err := h.store.TopRuns(maxHistoryRuns)
	if err != nil {
		return err
	}
	recent, err := h.store.RecentRuns(1)
	if err != nil {
		return err
	}
	stats, err := h.store.SessionStats()
	if err != nil {
		return err
	}

	h.runs = runs
	h.last = nil
	if len(recent) > 0 {
		h.last = &recent[0]
	}
	h.stats = stats
	h.updateTableRows()
	return nil
}

// updateTableRows updates the table with current runs.
func (h *HistoryView) updateTableRows() {
	rows := make([]table.Row, len(h.runs))
	for i, r := range h.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Coins),
			r.League,
			fmt.Sprintf("%d", r.Skills),
			r.EndedAt.Local().Format("15:04:05"),
		}
	}
	h.table.SetRows(rows)
	h.table.GotoTop()
}

// SetSize resizes the view.
func (h *HistoryView) SetSize(width, height int) {
	h.width = width
	h.height = height
	h.table = h.createTable()
	h.updateTableRows()
}

// Update passes scrolling keys to the table.
func (h *HistoryView) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.table, cmd = h.table.Update(msg)
	return cmd
}

// Runs returns the runs currently listed.
func (h *HistoryView) Runs() []storage.RunRecord {
	return h.runs
}

// View renders the history screen.
func (h *HistoryView) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render("SESSION HISTORY"))
	b.WriteString("\n\n")

	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(statsStyle.Render(fmt.Sprintf(
		"Runs: %d  Best: %d  Average: %.1f  Coins: %d",
		h.stats.Runs, h.stats.Best, h.stats.Average, h.stats.TotalCoins,
	)))
	if h.last != nil {
		b.WriteString("\n")
		b.WriteString(statsStyle.Render(fmt.Sprintf(
			"Last run: %d points, %d coins, %s",
			h.last.Score, h.last.Coins, h.last.League,
		)))
	}
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(h.runs) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No runs recorded yet.")))
	} else {
		b.WriteString(tableStyle.Render(h.table.View()))
	}

	return b.String()
}
