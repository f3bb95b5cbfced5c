package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-reversi/internal/match"
	"github.com/vovakirdan/tui-reversi/internal/storage"
)

// maxResults is the number of games loaded into the results table.
const maxResults = 100

// ResultsSource provides stored games for the results screen.
type ResultsSource interface {
	RecentResults(limit int) ([]storage.GameRecord, error)
	Stats() (*storage.Stats, error)
}

// resultsView is the table of past games shown over the board.
type resultsView struct {
	source  ResultsSource
	records []storage.GameRecord
	stats   *storage.Stats
	err     error
	table   table.Model
	width   int
	height  int
}

func newResultsView(source ResultsSource, width, height int) resultsView {
	v := resultsView{source: source, width: width, height: height}
	v.table = v.createTable()
	return v
}

// createTable creates a new table with appropriate columns.
func (v *resultsView) createTable() table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Black", Width: 12},
		{Title: "White", Width: 12},
		{Title: "Score", Width: 7},
		{Title: "Result", Width: 14},
	}

	height := v.height - 10 // Leave room for title, stats and help
	if height < 5 {
		height = 5
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	// Table styles
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

// load refreshes records and stats from the source.
func (v *resultsView) load() {
	v.records, v.stats, v.err = nil, nil, nil
	if v.source != nil {
		v.records, v.err = v.source.RecentResults(maxResults)
		if v.err == nil {
			v.stats, v.err = v.source.Stats()
		}
	}
	v.updateTableRows()
}

// updateTableRows updates the table with current records.
func (v *resultsView) updateTableRows() {
	rows := make([]table.Row, len(v.records))
	for i, r := range v.records {
		rows[i] = table.Row{
			r.CreatedAt.Format("Jan 02 15:04"),
			r.BlackName,
			r.WhiteName,
			fmt.Sprintf("%d-%d", r.BlackCount, r.WhiteCount),
			resultLabel(r),
		}
	}
	v.table.SetRows(rows)
	v.table.GotoTop()
}

// resultLabel describes how a stored game ended.
func resultLabel(r storage.GameRecord) string {
	if r.EndReason != match.ReasonCompleted {
		return r.EndReason
	}
	if name := r.WinnerName(); name != "" {
		return name + " won"
	}
	return "draw"
}

func (v resultsView) resize(width, height int) resultsView {
	v.width, v.height = width, height
	v.table = v.createTable()
	v.updateTableRows()
	return v
}

func (v resultsView) update(msg tea.Msg) (resultsView, tea.Cmd) {
	var cmd tea.Cmd
	v.table, cmd = v.table.Update(msg)
	return v, cmd
}

func (v resultsView) view(st Styles) string {
	var b strings.Builder

	b.WriteString(st.Title.Render(centerText("RESULTS", v.width)))
	b.WriteString("\n\n")

	if v.stats != nil && v.stats.Games > 0 {
		line := fmt.Sprintf("%d games  Black %d  White %d  Draws %d  Abandoned %d  Avg margin %.1f",
			v.stats.Games, v.stats.BlackWins, v.stats.WhiteWins, v.stats.Draws, v.stats.Abandoned, v.stats.AvgMargin)
		b.WriteString(centerText(st.Status.Render(line), v.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(lipgloss.PlaceHorizontal(v.width, lipgloss.Center, tableStyle.Render(v.tableContent())))
	return b.String()
}

// tableContent renders the table or an explanatory message.
func (v resultsView) tableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case v.source == nil:
		return emptyStyle.Render("Results storage is disabled.")
	case v.err != nil:
		return emptyStyle.Render("Could not load results:\n" + v.err.Error())
	case len(v.records) == 0:
		return emptyStyle.Render("No games recorded yet.\nFinish a game to see it here!")
	}
	return v.table.View()
}
