package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skytype/internal/config"
	"github.com/vovakirdan/skytype/internal/storage"
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List pilot profiles",
	Long: `List every pilot profile with its level, cumulative score and
progress towards the next level.

Examples:
  skytype players
  skytype players show ace
  skytype players delete ace`,
	Args: cobra.NoArgs,
	Run:  runPlayers,
}

var playersShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show one pilot profile",
	Args:  cobra.ExactArgs(1),
	Run:   runPlayersShow,
}

var playersDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a pilot profile (its session history is kept)",
	Args:  cobra.ExactArgs(1),
	Run:   runPlayersDelete,
}

func init() {
	playersCmd.AddCommand(playersShowCmd)
	playersCmd.AddCommand(playersDeleteCmd)
}

// mustOpenStore opens the database or exits.
func mustOpenStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

// levelTable returns the level table in effect for progress figures.
func levelTable() config.LevelTable {
	table, err := config.LoadLevels(flagConfig)
	if err != nil {
		logger.Warn("level table unusable, using built-in defaults", "error", err)
		return config.DefaultLevelTable()
	}
	return table
}

func runPlayers(_ *cobra.Command, _ []string) {
	store := mustOpenStore()
	defer store.Close()

	players, err := store.ListPlayers()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing pilots: %v\n", err)
		os.Exit(1)
	}

	if len(players) == 0 {
		fmt.Println("No pilots yet. Run 'skytype menu' to create one.")
		return
	}

	table := levelTable()

	fmt.Printf("  %-*s  %-3s  %-8s  %-8s  %s\n", storage.MaxNameLen/2, "Pilot", "Lv", "Score", "Progress", "Last flown")
	fmt.Printf("  %-*s  %-3s  %-8s  %-8s  %s\n", storage.MaxNameLen/2, "-----", "--", "-----", "--------", "----------")
	for _, p := range players {
		progress := table.UpgradePercent(table.ClampLevel(p.Level), p.Score)
		fmt.Printf("  %-*s  %-3d  %-8d  %7.0f%%  %s\n",
			storage.MaxNameLen/2, p.Name, p.Level, p.Score, progress, p.UpdatedAt.Format("2006-01-02 15:04"))
	}
}

func runPlayersShow(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	p, ok, err := store.LoadPlayer(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no pilot named %q\n", args[0])
		os.Exit(1)
	}

	table := levelTable()
	level := table.ClampLevel(p.Level)

	fmt.Printf("Pilot:      %s\n", p.Name)
	fmt.Printf("Level:      %d of %d\n", p.Level, table.MaxLevel())
	fmt.Printf("Score:      %d\n", p.Score)
	if level < table.MaxLevel() {
		fmt.Printf("Next level: %d (%.0f%%)\n", table.UpgradeThreshold(level), table.UpgradePercent(level, p.Score))
	}
	fmt.Printf("Last flown: %s\n", p.UpdatedAt.Format("2006-01-02 15:04"))
}

func runPlayersDelete(_ *cobra.Command, args []string) {
	store := mustOpenStore()
	defer store.Close()

	if err := store.DeletePlayer(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted pilot %s.\n", args[0])
}
