// Package config provides YAML-based level table loading and difficulty
// presets for skytype.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors returned by LevelTable.Validate.
var (
	ErrNoLevels    = errors.New("config: level table has no levels")
	ErrBadRange    = errors.New("config: invalid range")
	ErrNoSentences = errors.New("config: level has no warship sentences")
	ErrNoLetters   = errors.New("config: level has no letters")
)

// LevelTable is the complete, already-parsed game configuration: global
// tuning plus one entry per player level.
type LevelTable struct {
	Player      PlayerConfig     `yaml:"player"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
	Lanes       LaneConfig       `yaml:"lanes"`
	Warship     WarshipConfig    `yaml:"warship"`
	Timing      TimingConfig     `yaml:"timing"`
	Levels      []LevelConfig    `yaml:"levels"`

	// AircraftSpeedFactor scales aircraft speeds only. Set by ApplyPreset;
	// zero means 1.
	AircraftSpeedFactor float64 `yaml:"-"`
}

// Range is an inclusive [Min, Max] interval sampled uniformly.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Valid reports whether the range is non-negative and ordered.
func (r Range) Valid() bool {
	return r.Min >= 0 && r.Min <= r.Max
}

// Scale multiplies both ends of the range.
func (r Range) Scale(f float64) Range {
	return Range{Min: r.Min * f, Max: r.Max * f}
}

// PlayerConfig describes the player's jet. Distances are play-area units.
type PlayerConfig struct {
	MaxHealth         int     `yaml:"max_health"`
	HealAmount        int     `yaml:"heal_amount"`
	ShieldSeconds     float64 `yaml:"shield_seconds"`
	HitRadius         float64 `yaml:"hit_radius"`
	ShieldedHitRadius float64 `yaml:"shielded_hit_radius"`
	Margin            float64 `yaml:"margin"`     // jet distance from the left edge
	Size              float64 `yaml:"size"`       // jet sprite width
	SafetyGap         float64 `yaml:"safety_gap"` // extra room before units despawn
}

// SafetyBoundary returns the x position left of which flying units despawn.
func (p PlayerConfig) SafetyBoundary() float64 {
	return p.Margin + p.Size + p.SafetyGap
}

// ProjectileConfig holds projectile speeds (units per second) and damages.
type ProjectileConfig struct {
	MissileSpeed float64 `yaml:"missile_speed"`
	FlameSpeed   float64 `yaml:"flame_speed"`
	FlameDamage  int     `yaml:"flame_damage"`
	CannonSpeed  float64 `yaml:"cannon_speed"`
	CannonDamage int     `yaml:"cannon_damage"`
}

// LaneConfig describes the horizontal tracks flying units travel along.
type LaneConfig struct {
	Height    float64 `yaml:"height"`
	TopOffset float64 `yaml:"top_offset"`
	MaxCount  int     `yaml:"max_count"`
}

// Count returns how many lanes fit in a play area of the given height.
func (l LaneConfig) Count(areaHeight float64) int {
	if l.Height <= 0 {
		return 0
	}
	n := int((areaHeight - l.TopOffset) / l.Height)
	if n < 0 {
		return 0
	}
	if l.MaxCount > 0 && n > l.MaxCount {
		return l.MaxCount
	}
	return n
}

// Position returns the vertical center of a lane.
func (l LaneConfig) Position(id int) float64 {
	return l.TopOffset + float64(id)*l.Height + l.Height/2
}

// Point is a sprite-local coordinate, measured from the sprite's top-left.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// WarshipConfig describes the boss ship and its weapons.
type WarshipConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// EntryVisible is how much of the ship is on screen when it spawns.
	EntryVisible float64 `yaml:"entry_visible"`
	SpeedFactor  float64 `yaml:"speed_factor"` // times the level's minimum unit speed

	Guns []Point `yaml:"guns"`

	// GunReveal lists the visible widths at which the active gun count
	// steps up to the matching entry of GunSteps.
	GunReveal []float64 `yaml:"gun_reveal"`
	GunSteps  []int     `yaml:"gun_steps"`

	Cannon       Point   `yaml:"cannon"`
	CannonReveal float64 `yaml:"cannon_reveal"`

	VolleySize     int     `yaml:"volley_size"`
	BonusScore     int     `yaml:"bonus_score"`
	SpawnDelay     float64 `yaml:"spawn_delay"`
	CheckpointWait float64 `yaml:"checkpoint_wait"`
}

// GunOffset returns gun i's offset from the ship center.
func (w WarshipConfig) GunOffset(i int) Point {
	g := w.Guns[i]
	return Point{X: g.X - w.Width/2, Y: g.Y - w.Height/2}
}

// CannonOffset returns the cannon's offset from the ship center.
func (w WarshipConfig) CannonOffset() Point {
	return Point{X: w.Cannon.X - w.Width/2, Y: w.Cannon.Y - w.Height/2}
}

// GunCount returns the number of guns active once visible units of the
// ship are on screen.
func (w WarshipConfig) GunCount(visible float64) int {
	count := 0
	for i, threshold := range w.GunReveal {
		if visible < threshold || i >= len(w.GunSteps) {
			break
		}
		count = w.GunSteps[i]
	}
	if count > len(w.Guns) {
		count = len(w.Guns)
	}
	return count
}

// TimingConfig holds phase durations in seconds.
type TimingConfig struct {
	SplashSeconds float64 `yaml:"splash_seconds"`
	SaveSeconds   float64 `yaml:"save_seconds"`
}

// LevelConfig holds the tuning for one player level.
type LevelConfig struct {
	// Letters are added to the alphabet of every level before them.
	Letters   string   `yaml:"letters"`
	Sentences []string `yaml:"sentences"`

	Speed              Range `yaml:"speed"`
	AircraftInterval   Range `yaml:"aircraft_interval"`
	BombInterval       Range `yaml:"bomb_interval"`
	ShieldInterval     Range `yaml:"shield_interval"`
	HealthPackInterval Range `yaml:"health_pack_interval"`

	AircraftQuota int `yaml:"aircraft_quota"`

	// UpgradeScore is the score earned on this level that promotes the
	// player to the next. Ignored for the last level.
	UpgradeScore int `yaml:"upgrade_score"`

	WarshipReload float64 `yaml:"warship_reload"` // seconds between volleys
	WarshipVolley float64 `yaml:"warship_volley"` // seconds between guns within a volley
}

// MaxLevel returns the highest player level.
func (t *LevelTable) MaxLevel() int {
	return len(t.Levels)
}

// Level returns the configuration for a 1-based player level.
// An out-of-range level is a programming error and panics.
func (t *LevelTable) Level(n int) *LevelConfig {
	if n < 1 || n > len(t.Levels) {
		panic(fmt.Sprintf("config: level %d out of range [1, %d]", n, len(t.Levels)))
	}
	return &t.Levels[n-1]
}

// AircraftSpeed returns the aircraft speed range of level n after the
// difficulty factor.
func (t *LevelTable) AircraftSpeed(n int) Range {
	speed := t.Level(n).Speed
	if t.AircraftSpeedFactor > 0 {
		speed = speed.Scale(t.AircraftSpeedFactor)
	}
	return speed
}

// ClampLevel restricts n to the valid level range.
func (t *LevelTable) ClampLevel(n int) int {
	if n < 1 {
		return 1
	}
	if n > len(t.Levels) {
		return len(t.Levels)
	}
	return n
}

// Alphabet returns the cumulative letter set for a level, uppercased.
// A letter may appear more than once, which weights it during issuance.
func (t *LevelTable) Alphabet(n int) []rune {
	var sb strings.Builder
	for i := 1; i <= n; i++ {
		sb.WriteString(t.Level(i).Letters)
	}
	return []rune(strings.ToUpper(sb.String()))
}

// UpgradeThreshold returns the cumulative score that promotes a player
// from level n to n+1.
func (t *LevelTable) UpgradeThreshold(n int) int {
	total := 0
	for i := 1; i <= n; i++ {
		total += t.Level(i).UpgradeScore
	}
	return total
}

// UpgradePercent returns how much of the current level's upgrade score the
// player has already earned, in [0, 100]. The last level always reports 100.
func (t *LevelTable) UpgradePercent(level, score int) float64 {
	level = t.ClampLevel(level)
	if level == t.MaxLevel() {
		return 100
	}
	remaining := score
	for i := 1; i < level; i++ {
		need := t.Level(i).UpgradeScore
		if remaining < need {
			break
		}
		remaining -= need
	}
	need := t.Level(level).UpgradeScore
	if need <= 0 {
		return 100
	}
	pct := 100 * float64(remaining) / float64(need)
	if pct > 100 {
		return 100
	}
	return pct
}

// Validate checks the table for values the simulation cannot run with.
func (t *LevelTable) Validate() error {
	if len(t.Levels) == 0 {
		return ErrNoLevels
	}
	if t.Lanes.Height <= 0 {
		return fmt.Errorf("config: lanes.height must be positive: %w", ErrBadRange)
	}
	if t.Player.MaxHealth <= 0 {
		return fmt.Errorf("config: player.max_health must be positive: %w", ErrBadRange)
	}
	if len(t.Warship.GunReveal) != len(t.Warship.GunSteps) {
		return fmt.Errorf("config: warship.gun_reveal and gun_steps differ in length: %w", ErrBadRange)
	}
	for i := range t.Levels {
		lvl := &t.Levels[i]
		n := i + 1
		if len(t.Alphabet(n)) == 0 {
			return fmt.Errorf("config: level %d: %w", n, ErrNoLetters)
		}
		if len(lvl.Sentences) == 0 {
			return fmt.Errorf("config: level %d: %w", n, ErrNoSentences)
		}
		for _, s := range lvl.Sentences {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("config: level %d: blank sentence: %w", n, ErrNoSentences)
			}
		}
		ranges := map[string]Range{
			"speed":                lvl.Speed,
			"aircraft_interval":    lvl.AircraftInterval,
			"bomb_interval":        lvl.BombInterval,
			"shield_interval":      lvl.ShieldInterval,
			"health_pack_interval": lvl.HealthPackInterval,
		}
		for name, r := range ranges {
			if !r.Valid() {
				return fmt.Errorf("config: level %d: %s [%v, %v]: %w", n, name, r.Min, r.Max, ErrBadRange)
			}
		}
		if lvl.AircraftQuota <= 0 {
			return fmt.Errorf("config: level %d: aircraft_quota must be positive: %w", n, ErrBadRange)
		}
	}
	return nil
}
