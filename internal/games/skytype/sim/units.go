package sim

import "github.com/vovakirdan/skytype/internal/core"

// UnitKind is the closed set of flying unit variants.
type UnitKind int

const (
	Aircraft UnitKind = iota
	Bomb
	Shield
	HealthPack
	Warship
)

// String returns the kind name used in logs and events.
func (k UnitKind) String() string {
	switch k {
	case Aircraft:
		return "aircraft"
	case Bomb:
		return "bomb"
	case Shield:
		return "shield"
	case HealthPack:
		return "health-pack"
	case Warship:
		return "warship"
	default:
		return "unknown"
	}
}

// spawnKinds are the kinds produced by wave spawners, in spawn order.
var spawnKinds = [...]UnitKind{Aircraft, Bomb, Shield, HealthPack}

// Unit is a flying unit travelling right to left.
type Unit struct {
	Kind   UnitKind
	Lane   int // -1 for the warship, which does not use the lane pool
	Letter rune
	Speed  float64
	Pos    core.Vec2

	// Aircraft attack state.
	Primed bool
	FireX  float64
	Fired  bool
	Flame  Handle
}

// ProjectileKind distinguishes player missiles from enemy fire.
type ProjectileKind int

const (
	Missile ProjectileKind = iota
	Flame
	CannonShell
)

// String returns the projectile kind name.
func (k ProjectileKind) String() string {
	switch k {
	case Missile:
		return "missile"
	case Flame:
		return "flame"
	case CannonShell:
		return "cannon"
	default:
		return "unknown"
	}
}

// Projectile is a homing missile or an enemy shot aimed at the player.
type Projectile struct {
	Kind   ProjectileKind
	Pos    core.Vec2
	Speed  float64
	Damage int

	// Target is the unit a missile homes on. Enemy fire homes on the player.
	Target Handle

	// Tag is the character typed to launch a warship missile.
	Tag rune
}

// Hostile reports whether the projectile is aimed at the player.
func (p Projectile) Hostile() bool {
	return p.Kind != Missile
}
