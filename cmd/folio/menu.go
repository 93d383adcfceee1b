package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/folio-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with the interactive menu",
	Long: `Start the arcade in interactive menu mode.

The menu lists every game followed by High Scores, Cat Fact and Contact.
Leaving a game (B/Esc) returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Contact form:
  Tab/Shift+Tab - Move between fields
  Ctrl+S        - Send
  Esc           - Back

Examples:
  folio menu
  folio menu --db ./scores.db --log-file ./folio.log`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closer := newLogger("folio", true)
	store := openStore(logger)

	err := tui.Run(tui.NewApp(deps(store, logger), runtimeConfig()))

	if store != nil {
		store.Close()
	}
	closer.Close()

	if err != nil {
		fail("%v", err)
	}
}
