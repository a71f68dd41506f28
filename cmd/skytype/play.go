package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skytype/internal/core"
	"github.com/vovakirdan/skytype/internal/platform/tui"
	"github.com/vovakirdan/skytype/internal/registry"
	"github.com/vovakirdan/skytype/internal/storage"
)

// defaultPilot is used by 'play' when --player is not given.
const defaultPilot = "player"

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Fly a mode directly",
	Long: `Start flying the specified mode as the pilot given by --player
(default "player"). The pilot's level and score are restored and saved
as you play.

Controls:
  Letters, digits, symbols - Fire at units showing that character
  Space                    - Pause / resume
  Esc                      - Ask to leave (Enter confirms, Esc cancels)
  Enter                    - Skip the intro, continue after a level up
  R                        - Fly again after a checkpoint or defeat
  Q/B                      - Leave after a checkpoint or defeat
  Ctrl+S                   - Save a screenshot to ~/.skytype/screenshots
  Ctrl+C                   - Quit

Difficulty options:
  easy   - Level speeds as configured
  normal - Units 15% faster, spawning 15% more often
  hard   - Units 30% faster, spawning 30% more often

Examples:
  skytype play skytype
  skytype play skytype --player ace --difficulty normal
  skytype play skytype_drill
  skytype play skytype --config ./my-levels.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'skytype list' to see available modes.")
		os.Exit(1)
	}

	cfg := runtimeConfig()
	if cfg.PlayerName == "" {
		cfg.PlayerName = defaultPilot
	}

	// Open score storage
	store := openStore()

	cfg, err := restoreProfile(store, cfg)
	if err != nil {
		closeStore(store)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		closeStore(store)
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("starting session", "mode", gameID, "pilot", cfg.PlayerName, "level", cfg.PlayerLevel)

	// Run the game
	_, runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	closeStore(store)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// restoreProfile loads the pilot's saved level and score into cfg.
func restoreProfile(store *storage.Store, cfg core.RuntimeConfig) (core.RuntimeConfig, error) {
	name, err := storage.NormalizeName(cfg.PlayerName)
	if err != nil {
		return cfg, err
	}
	cfg.PlayerName = name
	if store == nil {
		return cfg, nil
	}
	p, err := store.LoadOrCreatePlayer(name)
	if err != nil {
		return cfg, err
	}
	cfg.PlayerLevel = p.Level
	cfg.PlayerScore = p.Score
	return cfg, nil
}

func closeStore(store *storage.Store) {
	if store != nil {
		store.Close()
	}
}
