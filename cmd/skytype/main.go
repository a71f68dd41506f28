// skytype is a terminal typing shooter: type the letters painted on enemy
// aircraft to shoot them down before they cross your line.
//
// Usage:
//
//	skytype menu             - Pick a pilot and a mode interactively
//	skytype play <mode>      - Fly a mode directly (skytype, skytype_drill)
//	skytype list             - List available modes
//	skytype scores <mode>    - Show the leaderboard for a mode
//	skytype players          - List, show or delete pilot profiles
//	skytype serve            - Start SSH server for remote play
//	skytype config init      - Write the default level table for editing
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.skytype/scores.db)
//	--config <path>       - Use a custom level table YAML
//	--difficulty <preset> - easy, normal or hard
//	--player <name>       - Fly as this pilot without the picker
//	--debug               - Write debug logs to ~/.skytype/skytype.log
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skytype/internal/config"
	"github.com/vovakirdan/skytype/internal/core"
	"github.com/vovakirdan/skytype/internal/games/skytype"
	"github.com/vovakirdan/skytype/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
	flagDebug      bool
)

// logger is the CLI logger; debug output goes to a file so the TUI stays clean.
var logger = log.New(io.Discard)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skytype",
	Short: "Skytype - a typing shooter in your terminal",
	Long: `Skytype is a terminal typing game. Enemy aircraft fly in carrying
letters; type a letter to launch a missile at every aircraft showing it.
Clear a wave and a warship arrives: type its sentence, one letter at a
time, before it reaches your line.

Available commands:
  menu     - Interactive pilot and mode picker
  play     - Fly a specific mode directly
  list     - Show all available modes
  scores   - View the leaderboard
  players  - Manage pilot profiles
  serve    - Start SSH server for remote play
  config   - Inspect or write the level table

Examples:
  skytype menu
  skytype play skytype --player ace
  skytype play skytype_drill --difficulty hard
  skytype serve --ssh :2222
  skytype scores skytype`,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skytype/scores.db", "Path to scores and profiles database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom level table YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Pilot name (skips the pilot picker)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug logs to ~/.skytype/skytype.log")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(configCmd)
}

// setup applies the global flags shared by every command.
func setup(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	if flagDebug {
		l, err := openDebugLog()
		if err != nil {
			return err
		}
		logger = l
	}

	skytype.SetConfigPath(flagConfig)
	skytype.SetDifficultyPreset(preset)
	skytype.SetLogger(logger)
	return nil
}

// openDebugLog creates the debug log file next to the database.
func openDebugLog() (*log.Logger, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".skytype")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "skytype.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open debug log: %w", err)
	}
	return log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "skytype",
	}), nil
}

// runtimeConfig builds the runtime config from the flags and terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.PlayerName = flagPlayer
	return cfg
}

// openStore opens the database, continuing without one on failure.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("storage unavailable", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
