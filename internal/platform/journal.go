package platform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappyball/internal/storage"
)

// maxJournalRows caps how many runs the best-first view lists.
const maxJournalRows = 10

// JournalOrder selects how RenderJournal lists runs.
type JournalOrder int

const (
	JournalBest     JournalOrder = iota // Highest score first, top runs only
	JournalSessions                     // Every run in the order it finished
)

// ParseJournalOrder maps a flag value ("best" or "sessions") to an order.
func ParseJournalOrder(s string) (JournalOrder, error) {
	switch s {
	case "best", "":
		return JournalBest, nil
	case "sessions":
		return JournalSessions, nil
	}
	return JournalBest, fmt.Errorf("platform: unknown journal order %q (use best or sessions)", s)
}

var (
	journalTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	journalDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// RenderJournal formats the runs of this process as a table followed by
// totals. An empty journal renders a single line.
func RenderJournal(store *storage.Store, order JournalOrder) (string, error) {
	if store == nil {
		return "", nil
	}

	sum, err := store.Summary()
	if err != nil {
		return "", fmt.Errorf("platform: cannot summarise journal: %w", err)
	}
	if sum.Runs == 0 {
		return journalDimStyle.Render("No sessions finished."), nil
	}

	var runs []storage.RunRecord
	first := "Rank"
	if order == JournalSessions {
		runs, err = store.Runs()
		first = "#"
	} else {
		runs, err = store.TopRuns(maxJournalRows)
	}
	if err != nil {
		return "", fmt.Errorf("platform: cannot load journal: %w", err)
	}

	columns := []table.Column{
		{Title: first, Width: 5},
		{Title: "Session", Width: 8},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 7},
		{Title: "Jumps", Width: 7},
		{Title: "Bounces", Width: 8},
		{Title: "Time", Width: 8},
	}

	rows := make([]table.Row, 0, len(runs))
	for i, r := range runs {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(r.Session),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Ticks),
			strconv.Itoa(r.Jumps),
			strconv.Itoa(r.Bounces),
			fmt.Sprintf("%.1fs", float64(r.DurationMs)/1000),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	var sb strings.Builder
	sb.WriteString(journalTitleStyle.Render("Run journal"))
	sb.WriteString("\n")
	sb.WriteString(t.View())
	sb.WriteString("\n")
	sb.WriteString(journalDimStyle.Render(fmt.Sprintf(
		"%d sessions, best %d, average %.1f, %d jumps",
		sum.Runs, sum.BestScore, sum.AverageScore(), sum.TotalJumps,
	)))
	return sb.String(), nil
}
