package sim

import (
	"unicode"

	"github.com/vovakirdan/skytype/internal/core"
)

// sameLetter compares characters case-insensitively.
func sameLetter(a, b rune) bool {
	return unicode.ToUpper(a) == unicode.ToUpper(b)
}

// launchMissiles fires one missile per matching unit for every typed
// character. During a warship encounter every character launches a missile
// at the warship, tagged with the character for checking on impact.
func (w *World) launchMissiles(chars []rune) {
	if len(chars) == 0 {
		return
	}
	origin := w.missileOrigin()
	speed := w.table.Projectiles.MissileSpeed

	for _, c := range chars {
		if w.boss.encounter != nil {
			if w.units.Has(w.boss.ship) {
				w.shots.Insert(Projectile{Kind: Missile, Pos: origin, Speed: speed, Target: w.boss.ship, Tag: c})
			}
			continue
		}
		for _, h := range w.units.Handles() {
			u, _ := w.units.Get(h)
			if u.Kind != Warship && sameLetter(u.Letter, c) {
				w.shots.Insert(Projectile{Kind: Missile, Pos: origin, Speed: speed, Target: h, Tag: c})
			}
		}
	}
}

// missileAt launches a missile at unit h without a typed character.
func (w *World) missileAt(h Handle) {
	w.shots.Insert(Projectile{
		Kind:   Missile,
		Pos:    w.missileOrigin(),
		Speed:  w.table.Projectiles.MissileSpeed,
		Target: h,
	})
}

func (w *World) hitRadius(p *Projectile) float64 {
	if p.Hostile() && w.player.Shielded {
		return w.table.Player.ShieldedHitRadius
	}
	return w.table.Player.HitRadius
}

// moveProjectiles homes every projectile on its target and resolves hits.
// A missile whose target is already gone despawns without effect.
func (w *World) moveProjectiles(dt float64) {
	for _, h := range w.shots.Handles() {
		p, ok := w.shots.Get(h)
		if !ok {
			continue
		}

		var target core.Vec2
		if p.Hostile() {
			target = w.player.Pos
		} else {
			u, ok := w.units.Get(p.Target)
			if !ok {
				w.shots.Remove(h)
				continue
			}
			target = u.Pos
		}

		p.Pos = homeTowards(p.Pos, target, p.Speed*dt)
		if p.Pos.Dist(target) > w.hitRadius(p) {
			continue
		}

		shot := *p
		w.shots.Remove(h)
		if shot.Hostile() {
			w.hitPlayer(shot)
		} else {
			w.hitUnit(shot)
		}
	}
}
