package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/invaders/internal/storage"
)

// Leaderboard layout constants
const (
	maxScores      = 50 // Max scores to load
	leaderboardPad = 9  // Rows reserved for title, totals, borders and help
)

var (
	boardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			MarginBottom(1)

	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	boardStatsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	boardEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
)

// Leaderboard renders the finished games of the current process as a table.
type Leaderboard struct {
	store  *storage.Store
	scores []storage.ScoreEntry
	stats  storage.Stats
	table  table.Model
	width  int
	height int
	err    error
}

// NewLeaderboard creates a leaderboard view sized for the terminal.
func NewLeaderboard(store *storage.Store, width, height int) Leaderboard {
	l := Leaderboard{store: store, width: width, height: height}
	l.table = l.createTable()
	return l
}

// createTable creates a new table with columns fitted to the width.
func (l *Leaderboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 14},
		{Title: "Score", Width: 8},
		{Title: "Result", Width: 7},
		{Title: "Time", Width: 8},
	}

	// Give spare width to the player column
	if spare := l.width - 4 - 6 - 14 - 8 - 7 - 8 - 10; spare > 0 {
		columns[1].Width += min(spare, 16)
	}

	height := l.height - leaderboardPad
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
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

// Refresh reloads scores and totals from the store.
func (l *Leaderboard) Refresh() {
	l.scores, l.stats, l.err = nil, storage.Stats{}, nil
	if l.store != nil {
		var statsErr error
		l.scores, l.err = l.store.TopScores(maxScores)
		l.stats, statsErr = l.store.Stats()
		l.err = errors.Join(l.err, statsErr)
	}

	rows := make([]table.Row, len(l.scores))
	for i, s := range l.scores {
		result := "lost"
		if s.Won {
			result = "won"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			s.Player,
			fmt.Sprintf("%d", s.Score),
			result,
			s.CreatedAt.Format("15:04:05"),
		}
	}
	l.table.SetRows(rows)
	l.table.GotoTop()
}

// Resize refits the table to new terminal dimensions.
func (l *Leaderboard) Resize(width, height int) {
	l.width, l.height = width, height
	rows := l.table.Rows()
	l.table = l.createTable()
	l.table.SetRows(rows)
}

// Scores returns the loaded entries.
func (l Leaderboard) Scores() []storage.ScoreEntry {
	return l.scores
}

// Stats returns the totals loaded by the last Refresh.
func (l Leaderboard) Stats() storage.Stats {
	return l.stats
}

// statsLine summarizes every recorded game.
func (l Leaderboard) statsLine() string {
	st := l.stats
	return fmt.Sprintf("%d games · %d won · best %d · avg %.0f",
		st.Games, st.Wins, st.HighScore, st.AvgScore)
}

// View renders the leaderboard.
func (l Leaderboard) View() string {
	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText("HIGH SCORES", l.width)))
	b.WriteString("\n")
	if l.err == nil && l.stats.Games > 0 {
		b.WriteString(boardStatsStyle.Render(centerText(l.statsLine(), l.width)))
	}
	b.WriteString("\n")

	var body string
	switch {
	case l.err != nil:
		body = boardEmptyStyle.Render("Scores unavailable:\n" + l.err.Error())
	case len(l.scores) == 0:
		body = boardEmptyStyle.Render("No scores recorded yet.\nFinish a game to set a high score!")
	default:
		body = l.table.View()
	}
	b.WriteString(centerText(boardFrameStyle.Render(body), l.width))
	return b.String()
}

// centerText pads every line of text to center it within width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
