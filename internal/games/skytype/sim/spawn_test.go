package sim

import (
	"testing"

	"github.com/vovakirdan/skytype/internal/config"
)

func TestSpawnerFirstExpiryOnlyPrimes(t *testing.T) {
	w := newPlaying(t, testTable())
	w.Step(frame(1.0 / 60))

	if n := len(w.Units()); n != 0 {
		t.Errorf("units after first tick = %d, expected 0", n)
	}
	for _, s := range w.spawners {
		if !s.Armed {
			t.Errorf("%v spawner not armed after first tick", s.Kind)
		}
		if s.Count != 0 {
			t.Errorf("%v spawner count = %d, expected 0", s.Kind, s.Count)
		}
	}

	air := w.spawners[0]
	lvl := w.table.Level(1)
	if air.Timer < lvl.AircraftInterval.Min || air.Timer > lvl.AircraftInterval.Max {
		t.Errorf("aircraft timer = %v, expected within %v", air.Timer, lvl.AircraftInterval)
	}
}

func TestSpawnerSpawnsOnArmedExpiry(t *testing.T) {
	w := newPlaying(t, testTable())
	w.Step(frame(1.0 / 60))

	w.spawners[0].Timer = 0.01
	w.Step(frame(0.02))

	if w.spawners[0].Count != 1 {
		t.Fatalf("aircraft count = %d, expected 1", w.spawners[0].Count)
	}
	units := w.Units()
	if len(units) != 1 || units[0].Kind != Aircraft {
		t.Fatalf("units = %+v, expected one aircraft", units)
	}
	u := units[0]
	if u.Lane < 0 || !w.lanes.IsOccupied(u.Lane) {
		t.Errorf("aircraft lane %d should be occupied", u.Lane)
	}
	if u.Pos.Y != w.table.Lanes.Position(u.Lane) {
		t.Errorf("aircraft y = %v, expected lane center %v", u.Pos.Y, w.table.Lanes.Position(u.Lane))
	}
	lvl := w.table.Level(1)
	if u.Speed < lvl.Speed.Min || u.Speed > lvl.Speed.Max {
		t.Errorf("aircraft speed = %v, expected within %v", u.Speed, lvl.Speed)
	}
	if len(w.letters.Issued()) != 1 {
		t.Errorf("issued letters = %q, expected one", w.letters.Issued())
	}
}

func TestAircraftQuotaStopsSpawning(t *testing.T) {
	table := testTable()
	table.Levels[0].AircraftQuota = 2
	w := newPlaying(t, table)

	for i := 0; i < 120 && w.Phase() == PhasePlaying; i++ {
		w.Step(frame(0.5))
		c := w.Counters()
		if c.Destroyed+c.Missed > 2 {
			t.Fatalf("tick %d: destroyed+missed = %d exceeds quota", i, c.Destroyed+c.Missed)
		}
		if w.spawners[0].Count > 2 {
			t.Fatalf("tick %d: aircraft spawned = %d exceeds quota", i, w.spawners[0].Count)
		}
	}
	if w.spawners[0].Count != 2 {
		t.Errorf("aircraft spawned = %d, expected 2", w.spawners[0].Count)
	}
	if !w.boss.triggered {
		t.Error("warship should be triggered once both aircraft are gone")
	}
}

func TestDrillIgnoresQuota(t *testing.T) {
	table := testTable()
	table.Levels[0].AircraftQuota = 1
	w := New(Options{Table: table, Width: testWidth, Height: testHeight, Seed: 3, NoWarship: true})
	w.Step(frame(table.Timing.SplashSeconds))

	for range 40 {
		w.Step(frame(0.5))
	}
	if w.spawners[0].Count <= 1 {
		t.Errorf("drill aircraft spawned = %d, expected more than the quota", w.spawners[0].Count)
	}
	if w.boss.triggered {
		t.Error("drill mode must never trigger the warship")
	}
}

func TestEquipmentHeldDuringEncounter(t *testing.T) {
	w := newPlaying(t, testTable())
	quiet(w)
	w.boss.encounter = &Encounter{Letters: []rune("AB")}
	w.spawners[1].Timer = 0.001

	w.Step(frame(0.1))

	if w.spawners[1].Timer != 0.001 {
		t.Errorf("bomb timer = %v, expected held at 0.001", w.spawners[1].Timer)
	}
	if w.spawners[1].Count != 0 {
		t.Errorf("bomb spawned during encounter")
	}

	w.boss.encounter = nil
	w.Step(frame(0.1))
	if w.spawners[1].Count != 1 {
		t.Errorf("bomb count after encounter = %d, expected 1", w.spawners[1].Count)
	}
}

func TestSpawnFailsWithoutLanes(t *testing.T) {
	w := New(Options{Width: testWidth, Height: 10, Seed: 1})
	w.enterPlaying()

	if w.lanes.Count() != 0 {
		t.Fatalf("lanes = %d, expected 0 for a tiny area", w.lanes.Count())
	}
	if w.spawnUnit(Aircraft) {
		t.Error("spawn should fail with no lanes")
	}
	if n := len(w.letters.Candidates()); n != 26 {
		t.Errorf("candidates after failed spawn = %d, expected the letter returned (26)", n)
	}
	if w.units.Len() != 0 {
		t.Error("failed spawn must not leave a unit behind")
	}
}

func TestPresetSpeedsUpAircraftOnly(t *testing.T) {
	table := testTable()
	config.ApplyPreset(table, config.DifficultyHard)
	w := newPlaying(t, table)
	quiet(w)

	base := w.table.Level(1).Speed
	fast := w.table.AircraftSpeed(1)
	for range 20 {
		w.spawnUnit(Aircraft)
		w.spawnUnit(Bomb)
	}
	for _, u := range w.Units() {
		speed := base
		if u.Kind == Aircraft {
			speed = fast
		}
		if u.Speed < speed.Min || u.Speed > speed.Max {
			t.Errorf("%v speed = %v, expected within %v", u.Kind, u.Speed, speed)
		}
	}
	if fast != base.Scale(config.NewSpeedFactor(config.DifficultyHard).Multiplier()) {
		t.Errorf("aircraft range = %v, expected the base range %v scaled", fast, base)
	}
}
