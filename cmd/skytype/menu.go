package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skytype/internal/platform/tui"
	"github.com/vovakirdan/skytype/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a pilot and a mode interactively",
	Long: `Start skytype in interactive menu mode.

First pick a pilot (or create one), then a mode. After a session you
return to the menu with the pilot's saved progress.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  N            - New pilot
  X            - Delete pilot
  /            - Filter pilots
  B/Esc        - Back to the pilot list
  Tab          - Leaderboard
  Q            - Quit

Examples:
  skytype menu
  skytype menu --player ace
  skytype menu --fps 30 --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Keep size changes and the chosen pilot
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed per session unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		logger.Debug("starting session", "mode", menuResult.GameID, "pilot", cfg.PlayerName, "level", cfg.PlayerLevel)

		final, err := tui.Run(game, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if final.IsQuitting() {
			break
		}
		// Loop back to menu; it reloads the pilot's saved progress
	}
}
