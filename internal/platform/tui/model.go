package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/storage"
)

// footerHeight is the number of rows reserved below the playfield.
const footerHeight = 1

var (
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
)

// Model is the Bubble Tea model that hosts one game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	keys       KeyMap
	help       help.Model
	keyState   *KeyState
	board      Leaderboard
	gameState  core.GameState
	showBoard  bool
	quitting   bool
	allowClear bool
	scoreSaved bool // Whether the score of the finished game has been saved
	rank       int  // Leaderboard position of the saved game, 0 if none
	newBest    bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithStore records finished games in store.
func WithStore(store *storage.Store) ModelOption {
	return func(m *Model) { m.store = store }
}

// WithPlayer sets the name finished games are recorded under.
func WithPlayer(name string) ModelOption {
	return func(m *Model) { m.player = name }
}

// WithModelLogger sets the logger for host events.
func WithModelLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// WithScoreClearing lets the player wipe the leaderboard from its screen.
func WithScoreClearing() ModelOption {
	return func(m *Model) { m.allowClear = true }
}

// WithHoldWindows overrides DefaultInitialHold and DefaultRepeatHold.
func WithHoldWindows(initial, repeat time.Duration) ModelOption {
	return func(m *Model) { m.keyState = NewKeyState(initial, repeat) }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:     game,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		keyState: NewKeyState(DefaultInitialHold, DefaultRepeatHold),
		player:   "player",
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.logger == nil {
		m.logger = log.New(io.Discard)
	}

	m.screen = core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH))
	m.board = NewLeaderboard(m.store, cfg.ScreenW, cfg.ScreenH)
	m.help.Width = cfg.ScreenW

	// Reset here rather than in Init: Init has a value receiver.
	m.config.ScreenH = m.screen.Height()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Leaderboard) {
		m.showBoard = !m.showBoard
		if m.showBoard {
			m.board.Refresh()
		}
		m.keys.Clear.SetEnabled(m.showBoard && m.allowClear && m.store != nil)
		m.keyState.Reset()
		return m, nil
	}

	if key.Matches(msg, m.keys.Clear) {
		m.clearScores()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showBoard {
		var cmd tea.Cmd
		m.board.table, cmd = m.board.table.Update(msg)
		return m, cmd
	}

	m.keyState.Observe(action, time.Now())
	return m, nil
}

// handleResize processes window resize events.
// The game keeps running; the next Render reprojects the world.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = playfieldHeight(msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.board.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.showBoard {
		// The simulation is frozen while the leaderboard is open.
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.keyState.Frame(now))
	prev := m.gameState
	m.gameState = result.State

	if prev.Phase != m.gameState.Phase {
		m.logger.Debug("phase", "from", prev.Phase, "to", m.gameState.Phase)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
		m.rank, m.newBest = 0, false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScore records the finished game.
func (m *Model) saveScore() {
	if m.store == nil {
		return
	}
	score := m.gameState.Score
	best, bestErr := m.store.HighScore()
	if bestErr != nil {
		m.logger.Warn("could not read high score", "error", bestErr)
	}
	if _, err := m.store.SaveScore(m.player, score, m.gameState.Won); err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.newBest = bestErr == nil && score > best
	var err error
	if m.rank, err = m.store.Rank(score); err != nil {
		m.logger.Warn("could not rank score", "error", err)
		m.rank = 0
	}
	m.logger.Info("game over", "player", m.player, "score", score,
		"won", m.gameState.Won, "rank", m.rank, "best", m.newBest)
}

// clearScores wipes the leaderboard and reloads it.
func (m *Model) clearScores() {
	if err := m.store.ClearScores(); err != nil {
		m.logger.Warn("could not clear scores", "error", err)
	} else {
		m.logger.Info("scores cleared", "player", m.player)
		m.rank, m.newBest = 0, false
	}
	m.board.Refresh()
}

// footer renders the help line, prefixed by the result of a saved game.
// The leaderboard gets its own bindings.
func (m Model) footer() string {
	if m.showBoard {
		return helpStyle.Render(m.help.ShortHelpView(m.keys.BoardHelp()))
	}
	if m.rank == 0 {
		return helpStyle.Render(m.help.View(m.keys))
	}
	result := fmt.Sprintf("rank #%d", m.rank)
	if m.newBest {
		result = "new high score! " + result
	}
	result = resultStyle.Render(result) + "  "

	// The help line shrinks so the footer stays on one row.
	h := m.help
	h.Width = max(m.help.Width-lipgloss.Width(result), 1)
	return result + helpStyle.Render(h.View(m.keys))
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showBoard {
		return m.board.View() + "\n" + m.footer()
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// playfieldHeight returns the screen rows left for the game.
func playfieldHeight(h int) int {
	return max(h-footerHeight, 1)
}

// Run starts the Bubble Tea program with the given model.
func Run(game core.Game, cfg core.RuntimeConfig, opts ...ModelOption) error {
	model := NewModel(game, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
