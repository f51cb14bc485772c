package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/invaders/internal/audio"
	"github.com/vovakirdan/invaders/internal/core"
	"github.com/vovakirdan/invaders/internal/games/invaders"
	"github.com/vovakirdan/invaders/internal/platform/tui"
	"github.com/vovakirdan/invaders/internal/storage"
)

var (
	flagSound     bool
	flagVolume    float64
	flagKeyDelay  time.Duration
	flagKeyRepeat time.Duration
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A, Right/D  - Move the ship
  Space            - Fire
  Enter            - Start / continue after losing a life
  R                - Play again after the game ends
  Tab              - Show the scores of this run
  C                - Clear the scores (while they are shown)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, slower march, fewer alien shots
  normal - Default tuning
  hard   - Fewer lives, faster march, more alien shots
  fixed  - March speed never increases

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --sound --volume 0.5
  invaders play --key-delay 700ms
  invaders play --config ./my-invaders.yaml --log-file invaders.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable synthesized sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.8, "Sound volume between 0 and 1")
	playCmd.Flags().DurationVar(&flagKeyDelay, "key-delay", tui.DefaultInitialHold, "How long a key stays down before the terminal repeats it")
	playCmd.Flags().DurationVar(&flagKeyRepeat, "key-repeat", tui.DefaultRepeatHold, "How long a repeating key stays down between repeats")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// Logs would corrupt the alternate screen, so they are dropped unless
	// --log-file is given.
	logger, closeLog, err := newLogger("invaders", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var sound core.Audio = core.NopAudio{}
	if flagSound {
		sm := audio.NewSoundManager(flagVolume)
		if initErr := sm.Initialize(); initErr != nil {
			logger.Warn("sound disabled", "error", initErr)
		} else {
			defer sm.Cleanup()
			sound = sm
		}
	}

	game := invaders.New(
		invaders.WithConfig(cfg),
		invaders.WithGameAudio(sound),
		invaders.WithGameLogger(logger),
	)

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open leaderboard", "error", err)
	} else {
		defer store.Close()
	}

	if err := tui.Run(game, runtime,
		tui.WithStore(store),
		tui.WithPlayer(playerName()),
		tui.WithModelLogger(logger),
		tui.WithHoldWindows(flagKeyDelay, flagKeyRepeat),
		tui.WithScoreClearing(),
	); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// playerName returns the name local games are recorded under.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}
