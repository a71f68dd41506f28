package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/skytype/internal/config"
	"github.com/vovakirdan/skytype/internal/core"
)

const (
	testWidth  = 800
	testHeight = 440
)

func testTable() *config.LevelTable {
	t := config.DefaultLevelTable()
	return &t
}

// frame builds an input frame covering dt seconds with typed characters.
func frame(dt float64, chars ...rune) core.InputFrame {
	f := core.NewInputFrame()
	f.Elapsed = time.Duration(dt * float64(time.Second))
	f.Chars = chars
	return f
}

// action builds a zero-length frame carrying one control action.
func action(a core.Action) core.InputFrame {
	f := core.NewInputFrame()
	f.Set(a)
	return f
}

// newPlaying returns a world that has skipped the intro and drained its
// events.
func newPlaying(t *testing.T, table *config.LevelTable) *World {
	t.Helper()
	w := New(Options{Table: table, Width: testWidth, Height: testHeight, Seed: 1})
	w.Step(action(core.ActionConfirm))
	if w.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, expected playing", w.Phase())
	}
	w.Events()
	return w
}

// quiet parks every spawner so tests control which units exist.
func quiet(w *World) {
	for i := range w.spawners {
		w.spawners[i].Armed = true
		w.spawners[i].Timer = 1e9
	}
}

// addUnit places a stationary unit of kind k at x on a pooled lane.
func addUnit(w *World, k UnitKind, letter rune, x float64) Handle {
	h := w.units.Insert(Unit{Kind: k, Letter: letter})
	lane, _ := w.lanes.Allocate(w.rng, h)
	u, _ := w.units.Get(h)
	u.Lane = lane
	u.Pos = core.V(x, w.table.Lanes.Position(lane))
	return h
}

// hasEvent reports whether events contains one of kind k.
func hasEvent(events []Event, k EventKind) bool {
	for _, e := range events {
		if e.Kind == k {
			return true
		}
	}
	return false
}

func countShots(w *World, k ProjectileKind) int {
	n := 0
	for _, p := range w.Projectiles() {
		if p.Kind == k {
			n++
		}
	}
	return n
}
