// folio is a terminal portfolio arcade: 2048, Snake and Flappy Bird, a cat
// fact of the day and a contact form, playable locally, over SSH or in a
// browser.
//
// Usage:
//
//	folio list              - List available games
//	folio play <game>       - Play a game
//	folio menu              - Start the interactive menu
//	folio scores <game>     - Show high scores for a game
//	folio serve             - Serve over SSH and/or HTTP
//	folio fact              - Print a cat fact
//	folio contact           - Send a message through the contact form
//
// Global flags:
//
//	--fps <rate>          - Set frame rate for Flappy Bird (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.folio/scores.db)
//	--log-file <path>     - Write logs to a rotating file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/folio-arcade/internal/catfact"
	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/contact"
	"github.com/vovakirdan/folio-arcade/internal/core"
	_ "github.com/vovakirdan/folio-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/folio-arcade/internal/games/snake"
	_ "github.com/vovakirdan/folio-arcade/internal/games/t2048"
	"github.com/vovakirdan/folio-arcade/internal/logging"
	"github.com/vovakirdan/folio-arcade/internal/platform/tui"
	"github.com/vovakirdan/folio-arcade/internal/storage"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Folio Arcade - a portfolio you can play in your terminal",
	Long: `Folio Arcade bundles three small games (2048, Snake, Flappy Bird),
a cat fact of the day and a contact form into one terminal program.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive menu with games, scores, cat facts and contact
  scores   - View high scores
  serve    - Serve the arcade over SSH and/or WebSocket
  fact     - Print a cat fact
  contact  - Send a message

Examples:
  folio list
  folio play snake
  folio menu
  folio serve --ssh :2222 --http :8080
  folio scores 2048`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate for frame-driven games")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.folio/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(factCmd)
	rootCmd.AddCommand(contactCmd)
}

// fail prints an error in the command style used throughout and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// runtimeConfig sizes the screen from the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// newLogger builds the application logger. Interactive commands own the
// terminal, so without --log-file their logs are dropped.
func newLogger(prefix string, interactive bool) (*log.Logger, io.Closer) {
	if interactive && flagLogFile == "" {
		return logging.Discard(), nopCloser{}
	}
	logger, closer, err := logging.New(logging.Options{
		File:   flagLogFile,
		Level:  flagLogLevel,
		Prefix: prefix,
	})
	if err != nil {
		fail("%v", err)
	}
	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openStore opens the score database. Failure is not fatal: games run
// without saving scores.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// newContact loads the relay config from contact.yaml and the environment.
func newContact(logger *log.Logger) *contact.Client {
	cfg, err := config.LoadContact("")
	if err != nil {
		logger.Warn("contact config", "error", err)
	}
	return contact.New(cfg, contact.WithLogger(logger))
}

// deps assembles the collaborators shared by every terminal screen.
func deps(store *storage.Store, logger *log.Logger) tui.Deps {
	player := os.Getenv("USER")
	return tui.Deps{
		Store:   store,
		Facts:   catfact.New(catfact.WithLogger(logger)),
		Contact: newContact(logger),
		Logger:  logger,
		Player:  player,
	}
}
