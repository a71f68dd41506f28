// Package sim is the combat core of skytype: lanes and letters, wave
// spawning, unit and projectile motion, hit effects, the warship encounter
// and the play-phase state machine.
//
// The core is single-threaded and frame-stepped. The caller supplies the
// elapsed time, typed characters and control actions for each tick through
// Step, then reads positions, counters and drained events for display.
// Nothing here blocks, and no timer depends on the wall clock, so pausing
// the tick stream suspends every timer exactly.
//
// Coordinates are play-area units with the origin at the top-left corner;
// x grows to the right and y grows downward. Units spawn at x = width and
// travel left toward the player.
package sim

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skytype/internal/config"
	"github.com/vovakirdan/skytype/internal/core"
)

// Options configures a new World.
type Options struct {
	// Table is the parsed level table. Nil uses config.DefaultLevelTable.
	Table *config.LevelTable

	// Width and Height are the play-area size in units.
	Width, Height float64

	Seed int64

	// Level and Score restore a saved player profile. Level is clamped to
	// the table's range.
	Level int
	Score int

	// NoWarship disables the boss encounter: aircraft keep coming past the
	// quota. Used for letter drills.
	NoWarship bool

	// Logger receives debug output. Nil discards it.
	Logger *log.Logger
}

// Player is the state of the player's jet and profile.
type Player struct {
	Health    int
	MaxHealth int
	Score     int
	Level     int

	Shielded    bool
	ShieldSince float64 // game clock at activation

	Pos core.Vec2
}

// Counters tallies what happened to units this session.
type Counters struct {
	Destroyed  int
	Missed     int
	Bomb       int
	Shield     int
	HealthPack int
}

// World owns all mutable game state and advances it one tick at a time.
type World struct {
	table  *config.LevelTable
	rng    *rand.Rand
	log    *log.Logger
	noBoss bool

	width    float64
	height   float64
	boundary float64

	phase     Phase
	setupDone bool
	splash    float64
	exit      bool
	clock     float64

	player     Player
	counters   Counters
	enemyBar   int
	waveLevel  int // level the session's aircraft wave was set up on
	startScore int

	lanes    *LanePool
	letters  *LetterPool
	units    Arena[Unit]
	shots    Arena[Projectile]
	spawners [len(spawnKinds)]SpawnState
	boss     bossState
	events   EventQueue

	// Set during a tick, consumed by the phase checks at its end.
	scoreChanged bool
	escaped      bool
	cleared      bool
}

// New creates a world in the Splash phase.
func New(opts Options) *World {
	table := opts.Table
	if table == nil {
		t := config.DefaultLevelTable()
		table = &t
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := &World{
		table:   table,
		rng:     rand.New(rand.NewSource(opts.Seed)),
		log:     logger,
		noBoss:  opts.NoWarship,
		width:   opts.Width,
		height:  opts.Height,
		lanes:   NewLanePool(0),
		letters: NewLetterPool(nil),
	}
	w.player.Level = table.ClampLevel(opts.Level)
	w.player.Score = max(opts.Score, 0)
	w.player.MaxHealth = table.Player.MaxHealth
	w.settleLevel()
	w.newSession()
	return w
}

// newSession resets everything but the profile and returns to Splash.
// Lanes, letters and the jet are set up on the first entry into Playing.
func (w *World) newSession() {
	w.units.Clear()
	w.shots.Clear()
	w.lanes.Reset()
	w.boss = bossState{}
	w.counters = Counters{}
	w.startScore = w.player.Score
	w.waveLevel = 0
	w.enemyBar = 100
	w.clock = 0
	w.splash = 0
	w.exit = false
	w.setupDone = false
	w.scoreChanged, w.escaped, w.cleared = false, false, false
	for i, k := range spawnKinds {
		w.spawners[i] = SpawnState{Kind: k}
	}
	w.player.Health = w.player.MaxHealth
	w.player.Shielded = false
	w.player.ShieldSince = 0
	w.setPhase(PhaseSplash)
}

// setup runs on the first entry into Playing of a session.
func (w *World) setup() {
	w.lanes = NewLanePool(w.table.Lanes.Count(w.height))
	w.letters.Reset(w.table.Alphabet(w.player.Level))
	w.waveLevel = w.player.Level
	w.placePlayer()
	w.setupDone = true
	w.log.Debug("session setup", "lanes", w.lanes.Count(), "level", w.player.Level)
}

func (w *World) placePlayer() {
	p := w.table.Player
	w.player.Pos = core.V(p.Margin+p.Size/2, w.height/2)
	w.boundary = p.SafetyBoundary()
}

// Resize updates the play area. Lanes are added when the area grows and
// never removed; units in flight keep their positions.
func (w *World) Resize(width, height float64) {
	w.width = width
	w.height = height
	if !w.setupDone {
		return
	}
	w.lanes.Grow(w.table.Lanes.Count(height))
	w.placePlayer()
}

// Restart begins a new session keeping the player's level and score.
func (w *World) Restart() {
	w.log.Debug("restart", "level", w.player.Level, "score", w.player.Score)
	w.newSession()
}

func (w *World) level() *config.LevelConfig {
	return w.table.Level(w.player.Level)
}

// wave is the level the session's wave was set up on. A level-up during
// the wave moves neither its quota nor its warship.
func (w *World) wave() *config.LevelConfig {
	if w.waveLevel == 0 {
		return w.level()
	}
	return w.table.Level(w.waveLevel)
}

func (w *World) quota() int {
	return w.wave().AircraftQuota
}

func (w *World) addScore(n int) {
	w.player.Score += n
	w.scoreChanged = true
}

// missileOrigin is the nose of the player's jet.
func (w *World) missileOrigin() core.Vec2 {
	return core.V(w.table.Player.Margin+w.table.Player.Size, w.player.Pos.Y)
}

// despawnUnit removes a non-boss unit, releasing its lane and optionally
// returning its letter to the pool.
func (w *World) despawnUnit(h Handle, u *Unit, returnLetter bool) {
	if u.Lane >= 0 {
		w.lanes.Release(u.Lane, h)
	}
	if returnLetter && u.Kind != Warship {
		w.letters.Return(u.Letter)
	}
	w.units.Remove(h)
}

// Phase returns the active phase.
func (w *World) Phase() Phase { return w.phase }

// Exit reports whether the player asked to leave to the outer menu.
func (w *World) Exit() bool { return w.exit }

// Player returns a copy of the player state.
func (w *World) Player() Player { return w.player }

// Counters returns the session counters.
func (w *World) Counters() Counters { return w.counters }

// SessionScore returns the score earned since the session began.
func (w *World) SessionScore() int { return w.player.Score - w.startScore }

// Clock returns seconds of Playing time this session.
func (w *World) Clock() float64 { return w.clock }

// EnemyBar returns the enemy health bar value in [0, 100].
func (w *World) EnemyBar() int { return w.enemyBar }

// Size returns the play-area size in units.
func (w *World) Size() (float64, float64) { return w.width, w.height }

// Boundary returns the x position left of which units despawn.
func (w *World) Boundary() float64 { return w.boundary }

// Table returns the level table the world runs on.
func (w *World) Table() *config.LevelTable { return w.table }

// Lanes returns the lane pool for inspection.
func (w *World) Lanes() *LanePool { return w.lanes }

// Letters returns the letter pool for inspection.
func (w *World) Letters() *LetterPool { return w.letters }

// UpgradePercent returns progress toward the next level in [0, 100].
func (w *World) UpgradePercent() float64 {
	return w.table.UpgradePercent(w.player.Level, w.player.Score)
}

// Units returns copies of all live flying units in storage order.
func (w *World) Units() []Unit {
	out := make([]Unit, 0, w.units.Len())
	for _, h := range w.units.Handles() {
		u, _ := w.units.Get(h)
		out = append(out, *u)
	}
	return out
}

// Projectiles returns copies of all live projectiles in storage order.
func (w *World) Projectiles() []Projectile {
	out := make([]Projectile, 0, w.shots.Len())
	for _, h := range w.shots.Handles() {
		p, _ := w.shots.Get(h)
		out = append(out, *p)
	}
	return out
}

// Events drains the events produced since the last call.
func (w *World) Events() []Event {
	return w.events.Drain()
}
