package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/skytype/internal/config"
)

var flagConfigForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or write the level table",
	Long: `The level table sets each level's letters, sentences, speeds, spawn
intervals, aircraft quota and upgrade score, plus player, projectile,
lane and warship tuning.

Lookup order when --config is not given:
  1. ~/.skytype/configs/levels.yaml
  2. ./configs/levels.yaml
  3. Built-in defaults

Examples:
  skytype config path
  skytype config init
  skytype config show --difficulty hard
  skytype config check ./my-levels.yaml`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the per-user level table location",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(config.UserConfigPath())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default level table to the per-user location",
	Args:  cobra.NoArgs,
	Run:   runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the level table in effect, with --difficulty applied",
	Args:  cobra.NoArgs,
	Run:   runConfigShow,
}

var configCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a level table file",
	Args:  cobra.ExactArgs(1),
	Run:   runConfigCheck,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configCheckCmd)
}

func runConfigInit(_ *cobra.Command, _ []string) {
	path := flagConfig
	if path == "" {
		path = config.UserConfigPath()
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot determine home directory; pass --config")
		os.Exit(1)
	}
	if flagConfigForce {
		//nolint:errcheck // Missing file is fine
		os.Remove(path)
	}
	if err := config.WriteDefault(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote default level table to %s\n", path)
}

func runConfigShow(_ *cobra.Command, _ []string) {
	table := levelTable()
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&table, preset)

	out, err := yaml.Marshal(&table)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if table.AircraftSpeedFactor > 0 {
		fmt.Printf("# difficulty %s: aircraft speed x%.2f\n", preset, table.AircraftSpeedFactor)
	}
	os.Stdout.Write(out)
}

func runConfigCheck(_ *cobra.Command, args []string) {
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	table, err := config.ParseLevels(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: %d levels, %d sentences at level 1\n", table.MaxLevel(), len(table.Level(1).Sentences))
}
