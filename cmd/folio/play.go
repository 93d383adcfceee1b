package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/folio-arcade/internal/games/flappy"
	"github.com/vovakirdan/folio-arcade/internal/games/snake"
	"github.com/vovakirdan/folio-arcade/internal/games/t2048"
	"github.com/vovakirdan/folio-arcade/internal/platform/tui"
	"github.com/vovakirdan/folio-arcade/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move (Snake, 2048) / Up flaps (Flappy Bird)
  Space        - Flap
  P            - Pause (Snake, Flappy Bird)
  R            - Restart at any time
  B/Esc        - Leave the game
  Q/Ctrl+C     - Quit

Examples:
  folio play 2048
  folio play snake --seed 42
  folio play flappy --fps 30
  folio play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'folio list' to see available games.")
		os.Exit(1)
	}

	switch gameID {
	case "snake":
		snake.SetConfigPath(flagConfig)
	case "2048":
		t2048.SetConfigPath(flagConfig)
	case "flappy":
		flappy.SetConfigPath(flagConfig)
	}

	logger, closer := newLogger("folio", true)
	store := openStore(logger)

	app, err := tui.NewGameApp(deps(store, logger), runtimeConfig(), gameID)
	if err == nil {
		err = tui.Run(app)
	}

	// Close before a potential exit
	if store != nil {
		store.Close()
	}
	closer.Close()

	if err != nil {
		fail("running game: %v", err)
	}
}
