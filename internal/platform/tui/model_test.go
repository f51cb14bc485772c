package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/invaders/internal/config"
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/games/invaders"
	"github.com/vovakirdan/invaders/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	game := invaders.New(invaders.WithConfig(config.DefaultInvadersConfig()))
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 7}
	return NewModel(game, cfg, WithStore(store), WithPlayer("tester"))
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return send(t, m, TickMsg(time.Now()))
}

func TestModelStartsInactive(t *testing.T) {
	m := newTestModel(t, nil)
	if m.State().Phase != "inactive" {
		t.Errorf("Phase = %q, expected inactive", m.State().Phase)
	}
	if m.screen.Height() != 24 {
		t.Errorf("playfield height = %d, expected 24 (one row for help)", m.screen.Height())
	}
}

func TestModelEnterStartsRound(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m) // Inactive -> NewRound
	m = tick(t, m) // NewRound -> Active

	if m.State().Phase != "active" {
		t.Errorf("Phase = %q, expected active", m.State().Phase)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelViewShowsGameAndHelp(t *testing.T) {
	m := newTestModel(t, nil)
	view := m.View()

	if !strings.Contains(view, "Press enter to start") {
		t.Error("view should contain the start prompt")
	}
	if !strings.Contains(view, "fire") {
		t.Error("view should contain the help footer")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	m = tick(t, m)

	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 100x39", m.screen.Width(), m.screen.Height())
	}
	if m.State().Phase != "active" {
		t.Error("resize should not reset the game")
	}
}

func TestModelLeaderboardFreezesGame(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = tick(t, m)

	if m.State().Phase != "inactive" {
		t.Error("game should not advance while the leaderboard is shown")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("leaderboard view should be shown")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.showBoard {
		t.Error("tab should toggle the leaderboard off")
	}
}

// lostGameModel returns a model whose first active frame ends the game.
func lostGameModel(t *testing.T, store *storage.Store, opts ...ModelOption) Model {
	t.Helper()
	cfg := config.DefaultInvadersConfig()
	cfg.Ship.Lives = 1
	// Aliens start below the defense line.
	cfg.World.DefenseLine = cfg.World.Height - 1
	game := invaders.New(invaders.WithConfig(cfg))
	opts = append([]ModelOption{WithStore(store), WithPlayer("tester")}, opts...)
	return NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}, opts...)
}

func playToGameOver(t *testing.T, m Model) Model {
	t.Helper()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	for range 10 {
		m = tick(t, m)
	}
	if !m.State().GameOver {
		t.Fatalf("game should be over, phase %q", m.State().Phase)
	}
	return m
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	playToGameOver(t, lostGameModel(t, store))

	st, err := store.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Games != 1 {
		t.Errorf("saved games = %d, expected 1", st.Games)
	}

	scores, _ := store.TopScores(1)
	if scores[0].Player != "tester" || scores[0].Won {
		t.Errorf("unexpected entry %+v", scores[0])
	}
}

func TestModelShowsRankOfSavedGame(t *testing.T) {
	store := openStore(t)
	store.SaveScore("ann", 5000, true)
	store.SaveScore("bob", 3000, false)

	m := playToGameOver(t, lostGameModel(t, store))

	if m.rank != 3 {
		t.Errorf("rank = %d, expected 3 behind two better games", m.rank)
	}
	if m.newBest {
		t.Error("a losing score should not be a new high score")
	}
	if view := m.View(); !strings.Contains(view, "rank #3") || strings.Contains(view, "new high score") {
		t.Errorf("footer should show the rank only:\n%s", view)
	}
}

func TestModelFlagsNewHighScore(t *testing.T) {
	store := openStore(t)
	m := lostGameModel(t, store)
	m = playToGameOver(t, m)

	// With no earlier games any positive score is the best one.
	best := m.State().Score > 0
	if m.newBest != best {
		t.Errorf("newBest = %v for score %d on an empty board", m.newBest, m.State().Score)
	}
	if m.rank != 1 {
		t.Errorf("rank = %d, expected 1", m.rank)
	}
	if !strings.Contains(m.View(), "rank #1") {
		t.Error("footer should show the rank")
	}
	if got := strings.Count(m.View(), "\n"); got != m.screen.Height() {
		t.Errorf("view has %d line breaks, expected the footer on one row", got)
	}

	// Starting over clears the result.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = tick(t, m)
	if m.rank != 0 || strings.Contains(m.View(), "rank #") {
		t.Error("restart should drop the result from the footer")
	}
}

func TestModelClearScores(t *testing.T) {
	store := openStore(t)
	store.SaveScore("ann", 120, false)

	m := lostGameModel(t, store, WithScoreClearing())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if len(m.board.Scores()) != 1 {
		t.Fatalf("board should list the saved game")
	}
	if !strings.Contains(m.View(), "clear scores") {
		t.Error("help should offer clearing while the board is shown")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if st, _ := store.Stats(); st.Games != 0 {
		t.Errorf("games = %d after clearing, expected 0", st.Games)
	}
	if len(m.board.Scores()) != 0 || !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("board should be refreshed after clearing")
	}

	// Back on the game screen the key does nothing.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	store.SaveScore("bob", 10, false)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if st, _ := store.Stats(); st.Games != 1 {
		t.Error("clearing should only work while the board is shown")
	}
}

func TestModelClearScoresNeedsOption(t *testing.T) {
	store := openStore(t)
	store.SaveScore("ann", 120, false)

	m := lostGameModel(t, store)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})

	if st, _ := store.Stats(); st.Games != 1 {
		t.Error("scores should survive without WithScoreClearing")
	}
	if strings.Contains(m.View(), "clear scores") {
		t.Error("help should not offer clearing")
	}
}
