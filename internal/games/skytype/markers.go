package skytype

import (
	"github.com/vovakirdan/skytype/internal/core"
	"github.com/vovakirdan/skytype/internal/games/skytype/sim"
)

// Marker lifetimes in seconds of play.
const (
	missSeconds      = 1.0
	explosionSeconds = 0.3
	noticeSeconds    = 1.5
)

// marker is a short-lived text drawn at a play-area position.
type marker struct {
	text  string
	pos   core.Vec2
	ttl   float64
	color core.Color
}

// absorb turns core events into on-screen markers.
func (g *Game) absorb(events []sim.Event) {
	for _, e := range events {
		switch e.Kind {
		case sim.EventUnitMissed:
			g.markers = append(g.markers, marker{"MISS", e.Pos, missSeconds, core.ColorYellow})
		case sim.EventUnitDestroyed:
			g.markers = append(g.markers, marker{"*", e.Pos, explosionSeconds, core.ColorBrightYellow})
		case sim.EventBossDefeated:
			g.markers = append(g.markers, marker{"*** BOOM ***", e.Pos, noticeSeconds, core.ColorBrightRed})
		case sim.EventHealApplied:
			g.markers = append(g.markers, marker{"+HP", e.Pos.Add(core.V(0, -UnitsPerRow)), noticeSeconds, core.ColorBrightGreen})
		case sim.EventAreaClear:
			g.markers = append(g.markers, marker{"CLEAR!", e.Pos.Add(core.V(0, UnitsPerRow)), noticeSeconds, core.ColorBrightMagenta})
		case sim.EventPhaseChanged:
			if e.Phase == sim.PhaseSplash {
				g.markers = g.markers[:0]
			}
		}
	}
}

// ageMarkers counts marker lifetimes down and drops the expired ones.
func (g *Game) ageMarkers(dt float64) {
	kept := g.markers[:0]
	for _, m := range g.markers {
		m.ttl -= dt
		if m.ttl > 0 {
			kept = append(kept, m)
		}
	}
	g.markers = kept
}
