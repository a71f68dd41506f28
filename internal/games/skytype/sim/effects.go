package sim

import "math"

// hitUnit resolves a missile reaching its target.
func (w *World) hitUnit(shot Projectile) {
	u, ok := w.units.Get(shot.Target)
	if !ok {
		return
	}
	if u.Kind == Warship {
		w.hitWarship(shot.Target, u, shot.Tag)
		return
	}

	unit := *u
	w.despawnUnit(shot.Target, u, false)
	w.events.Push(Event{Kind: EventUnitDestroyed, Unit: unit.Kind, Pos: unit.Pos, Letter: unit.Letter})
	w.applyEffect(unit)
}

// applyEffect dispatches the consequence of destroying a unit by kind.
func (w *World) applyEffect(u Unit) {
	switch u.Kind {
	case Aircraft:
		w.counters.Destroyed++
		w.addScore(1)
		if u.Flame.Valid() {
			w.shots.Remove(u.Flame)
		}
		quota := w.quota()
		w.setEnemyBar(quota-w.counters.Destroyed, quota)
	case Bomb:
		w.counters.Bomb++
		w.areaClear()
	case Shield:
		w.counters.Shield++
		w.activateShield()
	case HealthPack:
		w.counters.HealthPack++
		w.heal()
	}
}

// setEnemyBar sets the enemy bar to ceil(remaining/total*100), floored at 0.
func (w *World) setEnemyBar(remaining, total int) {
	bar := 0
	if total > 0 && remaining > 0 {
		bar = int(math.Ceil(float64(remaining) / float64(total) * 100))
	}
	w.enemyBar = bar
	w.events.Push(Event{Kind: EventHealthBar, Value: bar})
}

// areaClear launches a guaranteed-kill missile at every live aircraft.
func (w *World) areaClear() {
	w.events.Push(Event{Kind: EventAreaClear, Pos: w.player.Pos})
	for _, h := range w.units.Handles() {
		if u, _ := w.units.Get(h); u.Kind == Aircraft {
			w.missileAt(h)
		}
	}
}

// activateShield shields the player from now for the configured duration.
func (w *World) activateShield() {
	w.player.Shielded = true
	w.player.ShieldSince = w.clock
	w.events.Push(Event{Kind: EventShieldActivated, Pos: w.player.Pos})
}

// expireShield drops the shield once the game clock has run past its
// duration since activation.
func (w *World) expireShield() {
	if !w.player.Shielded {
		return
	}
	if w.clock-w.player.ShieldSince > w.table.Player.ShieldSeconds {
		w.player.Shielded = false
		w.events.Push(Event{Kind: EventShieldExpired})
	}
}

func (w *World) heal() {
	p := &w.player
	p.Health = min(p.Health+w.table.Player.HealAmount, p.MaxHealth)
	w.events.Push(Event{Kind: EventHealApplied, Value: p.Health, Pos: p.Pos})
}

// hitPlayer applies enemy fire. The shield blocks all damage.
func (w *World) hitPlayer(shot Projectile) {
	if w.player.Shielded {
		return
	}
	w.player.Health = max(w.player.Health-shot.Damage, 0)
	w.events.Push(Event{Kind: EventPlayerHit, Value: w.player.Health, Pos: w.player.Pos})
}
