package sim

import (
	"slices"
	"unicode"

	"github.com/vovakirdan/skytype/internal/core"
)

// maxGunPicks bounds the random search for an unfired gun.
const maxGunPicks = 100

// GlyphState is how one sentence letter is shown during an encounter.
type GlyphState int

const (
	GlyphWaiting GlyphState = iota
	GlyphTarget
	GlyphDestroyed
)

// Glyph is one letter of the warship sentence.
type Glyph struct {
	Letter rune
	State  GlyphState
}

// Encounter is the sentence the player must type to sink the warship.
type Encounter struct {
	Sentence string
	Letters  []rune // sentence with spaces stripped
	Index    int    // position of the current target letter
}

// Target returns the letter the next missile must carry.
func (e *Encounter) Target() rune {
	if e.Index >= len(e.Letters) {
		return 0
	}
	return e.Letters[e.Index]
}

// Glyphs returns the sentence letters with their display state.
func (e *Encounter) Glyphs() []Glyph {
	out := make([]Glyph, len(e.Letters))
	for i, r := range e.Letters {
		state := GlyphWaiting
		switch {
		case i < e.Index:
			state = GlyphDestroyed
		case i == e.Index:
			state = GlyphTarget
		}
		out[i] = Glyph{Letter: r, State: state}
	}
	return out
}

// GunRig is the warship's firing pattern. The timer alternates between
// the short volley interval while firing and the reload interval while idle.
type GunRig struct {
	Timer          float64
	Firing         bool
	GunCount       int
	FiredThisCycle int
	GunFired       []bool
	CannonArmed    bool
}

// bossState groups everything that exists only around an encounter.
type bossState struct {
	triggered bool // quota reached this session
	pending   bool // waiting out the spawn delay
	delay     float64
	clearing  bool // warship sunk, waiting to enter Checkpoint
	wait      float64

	encounter *Encounter
	ship      Handle
	rig       GunRig
}

// stripSpaces returns the sentence letters without whitespace.
func stripSpaces(s string) []rune {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			out = append(out, r)
		}
	}
	return out
}

// checkBossTrigger arms the encounter once destroyed + missed reaches the
// wave's aircraft quota.
func (w *World) checkBossTrigger() {
	if w.noBoss || w.boss.triggered {
		return
	}
	if w.counters.Destroyed+w.counters.Missed < w.quota() {
		return
	}
	w.boss.triggered = true
	w.boss.pending = true
	w.boss.delay = w.table.Warship.SpawnDelay
	w.log.Debug("warship triggered", "destroyed", w.counters.Destroyed, "missed", w.counters.Missed)
}

// advanceBossTimers runs the spawn delay and the checkpoint delay.
func (w *World) advanceBossTimers(dt float64) {
	b := &w.boss
	if b.pending {
		b.delay -= dt
		if b.delay <= 0 {
			b.pending = false
			w.startEncounter()
		}
	}
	if b.clearing {
		b.wait -= dt
		if b.wait <= 0 {
			b.clearing = false
			w.cleared = true
		}
	}
}

// startEncounter clears the sky, picks a sentence and spawns the warship.
func (w *World) startEncounter() {
	for _, h := range w.units.Handles() {
		if u, _ := w.units.Get(h); u.Kind != Warship {
			w.despawnUnit(h, u, true)
		}
	}

	lvl := w.wave()
	sentence := lvl.Sentences[w.rng.Intn(len(lvl.Sentences))]
	letters := stripSpaces(sentence)
	if len(letters) == 0 {
		w.cleared = true
		return
	}

	wc := w.table.Warship
	w.boss.encounter = &Encounter{Sentence: sentence, Letters: letters}
	w.boss.ship = w.units.Insert(Unit{
		Kind:   Warship,
		Lane:   -1,
		Letter: unicode.ToUpper(letters[0]),
		Speed:  lvl.Speed.Min * wc.SpeedFactor,
		Pos:    core.V(w.width+wc.Width/2-wc.EntryVisible, w.height/2),
	})
	w.boss.rig = GunRig{
		Timer:    lvl.WarshipReload,
		GunFired: make([]bool, len(wc.Guns)),
	}
	w.enemyBar = 100
	w.events.Push(Event{Kind: EventBossSpawned, Unit: Warship, Value: len(letters)})
	w.log.Debug("warship spawned", "sentence", sentence)
}

// hitWarship checks a missile's tag against the current target letter.
// A wrong tag is ignored; the missile is spent either way.
func (w *World) hitWarship(h Handle, ship *Unit, tag rune) {
	enc := w.boss.encounter
	if enc == nil || enc.Index >= len(enc.Letters) {
		return
	}
	if !sameLetter(tag, enc.Target()) {
		return
	}

	enc.Index++
	w.events.Push(Event{Kind: EventBossLetterAdvanced, Value: enc.Index, Letter: tag, Pos: ship.Pos})

	if enc.Index < len(enc.Letters) {
		ship.Letter = unicode.ToUpper(enc.Target())
		w.setEnemyBar(len(enc.Letters)-enc.Index, len(enc.Letters))
		return
	}

	pos := ship.Pos
	bonus := w.table.Warship.BonusScore
	w.units.Remove(h)
	w.boss.encounter = nil
	w.boss.ship = Handle{}
	w.boss.rig = GunRig{}
	w.boss.clearing = true
	w.boss.wait = w.table.Warship.CheckpointWait
	w.addScore(bonus)
	w.setEnemyBar(0, len(enc.Letters))
	w.events.Push(Event{Kind: EventBossDefeated, Unit: Warship, Pos: pos, Value: bonus})
	w.log.Debug("warship defeated", "bonus", bonus)
}

// stepGunRig runs the warship's firing pattern while it is alive.
func (w *World) stepGunRig(dt float64) {
	ship, ok := w.units.Get(w.boss.ship)
	if !ok {
		return
	}
	wc := w.table.Warship
	rig := &w.boss.rig

	visible := w.width + wc.Width/2 - ship.Pos.X
	rig.GunCount = wc.GunCount(visible)
	if !rig.CannonArmed && visible >= wc.CannonReveal {
		rig.CannonArmed = true
	}

	rig.Timer -= dt
	if rig.Timer > 0 {
		return
	}

	lvl := w.wave()
	if !rig.Firing {
		rig.Firing = true
		rig.FiredThisCycle = 0
		clear(rig.GunFired)
	}

	if w.fireGun(ship.Pos, rig) {
		rig.Timer = lvl.WarshipVolley
		return
	}

	if rig.CannonArmed {
		off := wc.CannonOffset()
		w.fire(CannonShell, ship.Pos.Add(core.V(off.X, off.Y)))
	}
	rig.Firing = false
	rig.Timer = lvl.WarshipReload
}

// fireGun fires one random unfired gun among the active ones, if the
// volley still has room.
func (w *World) fireGun(shipPos core.Vec2, rig *GunRig) bool {
	if rig.FiredThisCycle >= w.table.Warship.VolleySize || rig.GunCount <= 0 {
		return false
	}
	n := min(rig.GunCount, len(rig.GunFired))
	for range maxGunPicks {
		i := w.rng.Intn(n)
		if rig.GunFired[i] {
			continue
		}
		rig.GunFired[i] = true
		rig.FiredThisCycle++
		off := w.table.Warship.GunOffset(i)
		w.fire(Flame, shipPos.Add(core.V(off.X, off.Y)))
		return true
	}
	return false
}

// teardownBoss removes the encounter, the warship, its timers and all
// enemy fire so nothing leaks into the next session.
func (w *World) teardownBoss() {
	b := &w.boss
	if b.ship.Valid() {
		w.units.Remove(b.ship)
	}
	b.encounter = nil
	b.ship = Handle{}
	b.rig = GunRig{}
	b.pending = false
	b.clearing = false

	for _, h := range w.shots.Handles() {
		if p, _ := w.shots.Get(h); p.Hostile() {
			w.shots.Remove(h)
		}
	}
}

// Encounter returns a copy of the active encounter.
func (w *World) Encounter() (Encounter, bool) {
	if w.boss.encounter == nil {
		return Encounter{}, false
	}
	e := *w.boss.encounter
	e.Letters = slices.Clone(e.Letters)
	return e, true
}

// Warship returns the live warship unit.
func (w *World) Warship() (Unit, bool) {
	u, ok := w.units.Get(w.boss.ship)
	if !ok {
		return Unit{}, false
	}
	return *u, true
}

// GunRig returns a copy of the warship gun rig.
func (w *World) GunRig() GunRig {
	r := w.boss.rig
	r.GunFired = slices.Clone(r.GunFired)
	return r
}
