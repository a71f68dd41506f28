// Package skytype adapts the typing-shooter combat core to the terminal
// platform. It converts between play-area units and screen cells, feeds the
// core one input frame per tick and draws the field, HUD and overlays.
package skytype

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skytype/internal/config"
	"github.com/vovakirdan/skytype/internal/core"
	"github.com/vovakirdan/skytype/internal/games/skytype/sim"
	"github.com/vovakirdan/skytype/internal/registry"
)

// GameMode selects the campaign or the letter drill.
type GameMode int

const (
	ModeCampaign GameMode = iota // aircraft waves end in a warship encounter
	ModeDrill                    // endless aircraft, no warship
)

// configPath stores the custom level table path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives core debug output; discarded unless set via CLI
var logger = log.New(io.Discard)

// SetConfigPath sets the custom level table path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(p config.DifficultyPreset) {
	difficultyPreset = p
}

// SetLogger routes core debug logging to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game on top of sim.World.
type Game struct {
	mode GameMode

	world   *sim.World
	table   *config.LevelTable
	markers []marker

	runtime        core.RuntimeConfig
	layout         layout
	screenTooSmall bool
}

// New creates a campaign game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewDrill creates a drill game without the warship encounter.
func NewDrill() *Game {
	return &Game{mode: ModeDrill}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeDrill {
		return "skytype_drill"
	}
	return "skytype"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeDrill {
		return "Skytype (Drill)"
	}
	return "Skytype"
}

// Reset loads the level table and starts a fresh world for the profile in
// runtime.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	table, err := config.LoadLevels(configPath)
	if err != nil {
		logger.Warn("level table unusable, using built-in defaults", "err", err)
		table = config.DefaultLevelTable()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&table, difficultyPreset)
	}
	g.table = &table

	g.layout = newLayout(runtime.ScreenW, runtime.ScreenH)
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	w, h := g.layout.units()
	g.world = sim.New(sim.Options{
		Table:     g.table,
		Width:     w,
		Height:    h,
		Seed:      runtime.Seed,
		Level:     runtime.PlayerLevel,
		Score:     runtime.PlayerScore,
		NoWarship: g.mode == ModeDrill,
		Logger:    logger,
	})
	g.markers = g.markers[:0]
}

// Resize adapts the play field to a new screen size without losing the
// session.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.layout = newLayout(screenW, screenH)
	g.screenTooSmall = screenW < minScreenW || screenH < minScreenH
	if g.world != nil {
		g.world.Resize(g.layout.units())
	}
}

// Step advances the world by one input frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		// Hold the session until the window is usable again.
		in.Chars = nil
		in.Elapsed = 0
	}

	changed := g.world.Step(in)
	g.absorb(g.world.Events())
	if g.world.Phase() == sim.PhasePlaying {
		g.ageMarkers(in.Seconds())
	}

	return core.StepResult{
		State:        g.State(),
		PhaseChanged: changed,
	}
}

// SaveInterval returns how often the profile is saved during play.
func (g *Game) SaveInterval() time.Duration {
	if g.table == nil || g.table.Timing.SaveSeconds <= 0 {
		return 0
	}
	return time.Duration(g.table.Timing.SaveSeconds * float64(time.Second))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	p := g.world.Player()
	phase := g.world.Phase()
	return core.GameState{
		Score:    p.Score,
		Earned:   g.world.SessionScore(),
		Level:    p.Level,
		Phase:    phase.String(),
		GameOver: phase.Ended(),
		Paused:   phase == sim.PhasePaused,
		Exit:     g.world.Exit(),
	}
}

// World exposes the core for inspection.
func (g *Game) World() *sim.World {
	return g.world
}

// Register the games with the registry
func init() {
	registry.Register("skytype", func() registry.Game {
		return New()
	})
	registry.Register("skytype_drill", func() registry.Game {
		return NewDrill()
	})
}
