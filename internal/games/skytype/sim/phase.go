package sim

import "github.com/vovakirdan/skytype/internal/core"

// Phase is the active play phase. Exactly one is active at a time.
type Phase int

const (
	PhaseSplash Phase = iota
	PhasePlaying
	PhasePaused
	PhaseExiting
	PhaseCheckpoint
	PhaseUpgrading
	PhaseFailed
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSplash:
		return "splash"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseExiting:
		return "exiting"
	case PhaseCheckpoint:
		return "checkpoint"
	case PhaseUpgrading:
		return "upgrading"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Ended reports whether the phase closes the session.
func (p Phase) Ended() bool {
	return p == PhaseCheckpoint || p == PhaseFailed
}

// Step advances the world by one frame and reports whether the phase
// changed.
//
// Control actions are handled per phase:
//
//	Splash      Confirm skips the intro; it ends on its own after the splash time
//	Playing     Pause -> Paused, Cancel -> Exiting, otherwise simulate
//	Paused      Pause -> Playing
//	Exiting     Confirm leaves the game, Cancel -> Playing
//	Upgrading   Confirm -> Playing
//	Checkpoint  Restart or Confirm starts a new session, Back leaves
//	Failed      same as Checkpoint
func (w *World) Step(frame core.InputFrame) bool {
	before := w.phase
	dt := frame.Seconds()
	if dt < 0 {
		dt = 0
	}

	switch w.phase {
	case PhaseSplash:
		w.splash += dt
		if w.splash >= w.table.Timing.SplashSeconds || frame.Has(core.ActionConfirm) {
			w.enterPlaying()
		}
	case PhasePlaying:
		switch {
		case frame.Has(core.ActionPause):
			w.setPhase(PhasePaused)
		case frame.Has(core.ActionCancel):
			w.setPhase(PhaseExiting)
		default:
			w.tick(dt, frame.Chars)
		}
	case PhasePaused:
		if frame.Has(core.ActionPause) {
			w.enterPlaying()
		}
	case PhaseExiting:
		switch {
		case frame.Has(core.ActionConfirm):
			w.leave()
		case frame.Has(core.ActionCancel):
			w.enterPlaying()
		}
	case PhaseUpgrading:
		if frame.Has(core.ActionConfirm) {
			w.enterPlaying()
		}
	case PhaseCheckpoint, PhaseFailed:
		switch {
		case frame.Has(core.ActionRestart), frame.Has(core.ActionConfirm):
			w.Restart()
		case frame.Has(core.ActionBack):
			w.leave()
		}
	}

	return w.phase != before
}

// enterPlaying moves to Playing, running setup only on the first entry of
// the session.
func (w *World) enterPlaying() {
	if !w.setupDone {
		w.setup()
	}
	w.setPhase(PhasePlaying)
}

// leave tears down the encounter and flags the outer exit.
func (w *World) leave() {
	w.teardownBoss()
	w.exit = true
	w.log.Debug("exit requested", "phase", w.phase)
}

func (w *World) setPhase(p Phase) {
	if p == w.phase {
		return
	}
	w.log.Debug("phase", "from", w.phase, "to", p)
	w.phase = p
	w.events.Push(Event{Kind: EventPhaseChanged, Phase: p})
}

// tick runs one Playing frame. The order matters: motion and boundary
// despawn run before projectile hits, which run before the phase checks,
// so a unit is never both destroyed and missed and the checks see the
// tick's final counters.
func (w *World) tick(dt float64, chars []rune) {
	w.clock += dt
	w.expireShield()
	w.launchMissiles(chars)
	w.advanceBossTimers(dt)
	for i := range w.spawners {
		w.stepSpawner(&w.spawners[i], dt)
	}
	w.moveUnits(dt)
	w.stepGunRig(dt)
	w.moveProjectiles(dt)
	w.checkPhase()
}

// checkPhase applies end-of-tick transitions. Defeat wins over a clear,
// which wins over a level-up; the level itself still rises whenever the
// score crosses its threshold. The warship trigger is independent of the
// level-up and is checked against the wave's own quota.
func (w *World) checkPhase() {
	leveled := false
	if w.scoreChanged {
		w.scoreChanged = false
		leveled = w.checkLevelUp()
	}

	switch {
	case w.player.Health <= 0:
		w.teardownBoss()
		w.setPhase(PhaseFailed)
	case w.escaped || w.cleared:
		w.teardownBoss()
		w.setPhase(PhaseCheckpoint)
	default:
		w.checkBossTrigger()
		if leveled {
			w.setPhase(PhaseUpgrading)
		}
	}
	w.escaped, w.cleared = false, false
}

// checkLevelUp promotes the player past every cumulative threshold the
// score has reached and reports whether the level rose.
func (w *World) checkLevelUp() bool {
	if !w.settleLevel() {
		return false
	}
	w.letters.Reset(w.table.Alphabet(w.player.Level))
	w.events.Push(Event{Kind: EventLevelUp, Value: w.player.Level})
	w.log.Debug("level up", "level", w.player.Level, "score", w.player.Score)
	return true
}

// settleLevel raises the level until the score is below the next
// threshold or the last level is reached.
func (w *World) settleLevel() bool {
	p := &w.player
	start := p.Level
	for p.Level < w.table.MaxLevel() && p.Score >= w.table.UpgradeThreshold(p.Level) {
		p.Level++
	}
	return p.Level != start
}
