package sim

import (
	"github.com/vovakirdan/skytype/internal/core"
)

// moveUnits advances every unit left, despawns those past the safety
// boundary and runs the aircraft attack behavior.
func (w *World) moveUnits(dt float64) {
	for _, h := range w.units.Handles() {
		u, ok := w.units.Get(h)
		if !ok {
			continue
		}
		u.Pos.X -= u.Speed * dt

		if u.Pos.X < w.boundary {
			w.unitEscaped(h, u)
			continue
		}
		if u.Kind == Aircraft {
			w.aircraftAttack(u)
		}
	}
}

// unitEscaped handles a unit crossing the safety boundary.
func (w *World) unitEscaped(h Handle, u *Unit) {
	if u.Kind == Warship {
		pos := u.Pos
		w.units.Remove(h)
		w.boss.ship = Handle{}
		if w.player.Health > 0 {
			w.escaped = true
			w.events.Push(Event{Kind: EventBossEscaped, Unit: Warship, Pos: pos})
			w.log.Debug("warship escaped")
		}
		return
	}

	kind, pos, letter := u.Kind, u.Pos, u.Letter
	w.despawnUnit(h, u, true)
	if kind == Aircraft {
		w.counters.Missed++
		w.events.Push(Event{Kind: EventUnitMissed, Unit: kind, Pos: pos, Letter: letter})
	}
}

// aircraftAttack primes an aircraft past the screen midpoint and fires its
// single flame once it reaches its firing point.
func (w *World) aircraftAttack(u *Unit) {
	if !u.Primed && u.Pos.X <= w.width/2 {
		u.Primed = true
		u.FireX = u.Pos.X - w.uniform(5, max(5, w.width/4))
	}
	if u.Primed && !u.Fired && u.Pos.X < u.FireX {
		u.Fired = true
		u.Flame = w.fire(Flame, u.Pos)
	}
}

// fire launches enemy fire from pos toward the player.
func (w *World) fire(kind ProjectileKind, pos core.Vec2) Handle {
	pc := w.table.Projectiles
	p := Projectile{Kind: kind, Pos: pos, Speed: pc.FlameSpeed, Damage: pc.FlameDamage}
	if kind == CannonShell {
		p.Speed, p.Damage = pc.CannonSpeed, pc.CannonDamage
	}
	return w.shots.Insert(p)
}

// homeTowards moves pos up to step units toward target without passing it.
func homeTowards(pos, target core.Vec2, step float64) core.Vec2 {
	d := target.Sub(pos)
	dist := d.Len()
	if dist == 0 || step >= dist {
		return target
	}
	return pos.Add(d.Normalize().Scale(step))
}
