package sim

import (
	"slices"
	"testing"

	"github.com/vovakirdan/skytype/internal/core"
)

func TestHomeTowards(t *testing.T) {
	tests := []struct {
		name   string
		pos    core.Vec2
		target core.Vec2
		step   float64
		want   core.Vec2
	}{
		{"partial step", core.V(0, 0), core.V(10, 0), 4, core.V(4, 0)},
		{"exact reach", core.V(0, 0), core.V(0, 5), 5, core.V(0, 5)},
		{"no overshoot", core.V(0, 0), core.V(3, 4), 100, core.V(3, 4)},
		{"already there", core.V(2, 2), core.V(2, 2), 1, core.V(2, 2)},
		{"diagonal", core.V(0, 0), core.V(6, 8), 5, core.V(3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := homeTowards(tt.pos, tt.target, tt.step)
			if got.Dist(tt.want) > 1e-9 {
				t.Errorf("homeTowards(%v, %v, %v) = %v, expected %v", tt.pos, tt.target, tt.step, got, tt.want)
			}
		})
	}
}

func TestAircraftPastBoundaryIsMissed(t *testing.T) {
	w := newPlaying(t, testTable())
	quiet(w)
	w.letters.Reset([]rune("QZ"))
	w.letters.Issue(w.rng)
	w.letters.Issue(w.rng)

	h := addUnit(w, Aircraft, 'Q', w.Boundary()+1)
	u, _ := w.units.Get(h)
	u.Speed = 100
	lane := u.Lane

	w.Step(frame(0.1))

	if w.units.Has(h) {
		t.Fatal("aircraft past the boundary should be despawned")
	}
	if c := w.Counters(); c.Missed != 1 || c.Destroyed != 0 {
		t.Errorf("counters = %+v, expected missed 1 destroyed 0", c)
	}
	if !w.lanes.IsFree(lane) {
		t.Errorf("lane %d should be free again", lane)
	}
	if !slices.Contains(w.letters.Candidates(), 'Q') {
		t.Errorf("letter Q should be back in candidates, got %q", w.letters.Candidates())
	}
	if !hasEvent(w.Events(), EventUnitMissed) {
		t.Error("expected a unit-missed event")
	}
}

func TestEquipmentPastBoundaryIsNotMissed(t *testing.T) {
	w := newPlaying(t, testTable())
	quiet(w)

	for _, k := range []UnitKind{Bomb, Shield, HealthPack} {
		h := addUnit(w, k, 'A', w.Boundary()+1)
		u, _ := w.units.Get(h)
		u.Speed = 100
	}
	w.Step(frame(0.1))

	if n := len(w.Units()); n != 0 {
		t.Errorf("units left = %d, expected 0", n)
	}
	if c := w.Counters(); c.Missed != 0 {
		t.Errorf("missed = %d, expected equipment not to count", c.Missed)
	}
}

func TestAircraftPrimesAndFiresOnce(t *testing.T) {
	w := newPlaying(t, testTable())
	quiet(w)

	h := addUnit(w, Aircraft, 'A', testWidth/2+1)
	u, _ := w.units.Get(h)
	u.Speed = 10

	w.Step(frame(0.2))
	u, _ = w.units.Get(h)
	if !u.Primed {
		t.Fatal("aircraft past the midpoint should be primed")
	}
	if u.FireX > u.Pos.X-5 || u.FireX < u.Pos.X-testWidth/4 {
		t.Errorf("FireX = %v, expected within [x-%v, x-5] of x=%v", u.FireX, testWidth/4, u.Pos.X)
	}
	if u.Fired {
		t.Error("aircraft should not fire before reaching its firing point")
	}

	u.Pos.X = u.FireX + 0.5
	w.Step(frame(0.1))
	u, _ = w.units.Get(h)
	if !u.Fired || !w.shots.Has(u.Flame) {
		t.Fatal("aircraft should fire a flame after passing its firing point")
	}
	if n := countShots(w, Flame); n != 1 {
		t.Errorf("flames = %d, expected 1", n)
	}

	w.Step(frame(0.1))
	if n := countShots(w, Flame); n > 1 {
		t.Errorf("flames = %d, an aircraft fires only once", n)
	}
}

func TestDestroyingAircraftRemovesItsFlame(t *testing.T) {
	w := newPlaying(t, testTable())
	quiet(w)

	h := addUnit(w, Aircraft, 'A', 300)
	u, _ := w.units.Get(h)
	u.Flame = w.fire(Flame, u.Pos)

	w.hitUnit(Projectile{Kind: Missile, Target: h})

	if n := countShots(w, Flame); n != 0 {
		t.Errorf("flames after kill = %d, expected 0", n)
	}
}

func TestConcurrentBoundaryAndHit(t *testing.T) {
	w := newPlaying(t, testTable())
	quiet(w)

	h := addUnit(w, Aircraft, 'A', w.Boundary()+1)
	u, _ := w.units.Get(h)
	u.Speed = 100
	w.shots.Insert(Projectile{Kind: Missile, Pos: u.Pos, Speed: 1000, Target: h})

	w.Step(frame(0.1))

	c := w.Counters()
	if c.Destroyed+c.Missed != 1 {
		t.Errorf("destroyed+missed = %d, expected the unit counted once", c.Destroyed+c.Missed)
	}
	if c.Missed != 1 {
		t.Errorf("missed = %d, expected boundary despawn to win", c.Missed)
	}
	if n := len(w.Projectiles()); n != 0 {
		t.Errorf("projectiles = %d, expected the stale missile gone", n)
	}
}

func TestTypingLaunchesOneMissilePerMatch(t *testing.T) {
	w := newPlaying(t, testTable())
	quiet(w)

	addUnit(w, Aircraft, 'K', 700)
	addUnit(w, Bomb, 'K', 700)
	addUnit(w, Aircraft, 'L', 700)

	w.launchMissiles([]rune{'k'})
	if n := countShots(w, Missile); n != 2 {
		t.Errorf("missiles for 'k' = %d, expected 2", n)
	}

	w.launchMissiles([]rune{'x'})
	if n := countShots(w, Missile); n != 2 {
		t.Errorf("a character matching nothing must launch nothing, missiles = %d", n)
	}
}
