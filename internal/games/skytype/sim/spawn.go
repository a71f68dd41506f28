package sim

import (
	"github.com/vovakirdan/skytype/internal/config"
	"github.com/vovakirdan/skytype/internal/core"
)

// SpawnState is the timer-driven spawn rule for one unit kind.
// Armed starts false, so the first expiry only primes the spawner.
type SpawnState struct {
	Kind  UnitKind
	Timer float64
	Count int
	Armed bool
}

// kindRanges returns the speed and interval ranges for a spawnable kind.
// Only aircraft take the difficulty speed factor.
func (w *World) kindRanges(k UnitKind) (speed, interval config.Range) {
	lvl := w.level()
	switch k {
	case Bomb:
		return lvl.Speed, lvl.BombInterval
	case Shield:
		return lvl.Speed, lvl.ShieldInterval
	case HealthPack:
		return lvl.Speed, lvl.HealthPackInterval
	default:
		return w.table.AircraftSpeed(w.player.Level), lvl.AircraftInterval
	}
}

// suspended reports whether a spawner is held back this tick.
func (w *World) suspended(s *SpawnState) bool {
	if s.Kind == Aircraft {
		if w.noBoss {
			return false
		}
		return w.boss.triggered || s.Count >= w.quota()
	}
	return w.boss.encounter != nil
}

// stepSpawner counts the timer down and spawns on expiry. A held-back
// spawner keeps its timer, so it resumes where it left off.
func (w *World) stepSpawner(s *SpawnState, dt float64) {
	if w.suspended(s) {
		return
	}
	s.Timer -= dt
	if s.Timer > 0 {
		return
	}
	if s.Armed {
		if w.spawnUnit(s.Kind) {
			s.Count++
		}
	}
	s.Armed = true

	_, interval := w.kindRanges(s.Kind)
	s.Timer = w.uniform(interval.Min, interval.Max)
}

// spawnUnit creates one unit of kind k at the right edge of a lane.
func (w *World) spawnUnit(k UnitKind) bool {
	letter, ok := w.letters.Issue(w.rng)
	if !ok {
		return false
	}
	speed, _ := w.kindRanges(k)

	h := w.units.Insert(Unit{
		Kind:   k,
		Letter: letter,
		Speed:  w.uniform(speed.Min, speed.Max),
	})
	lane, ok := w.lanes.Allocate(w.rng, h)
	if !ok {
		w.units.Remove(h)
		w.letters.Return(letter)
		return false
	}
	u, _ := w.units.Get(h)
	u.Lane = lane
	u.Pos = core.V(w.width, w.table.Lanes.Position(lane))
	return true
}

// uniform draws from [lo, hi].
func (w *World) uniform(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + w.rng.Float64()*(hi-lo)
}
