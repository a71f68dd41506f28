package sim

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a copy of the world state used by determinism tests.
type Snapshot struct {
	Phase      Phase
	Clock      float64
	Player     Player
	Counters   Counters
	EnemyBar   int
	Units      []Unit
	Shots      []Projectile
	Encounter  *Encounter
	Rig        GunRig
	Candidates []rune
	Issued     []rune
	FreeLanes  int
	UsedLanes  int
}

// Snapshot captures the current world state.
func (w *World) Snapshot() Snapshot {
	s := Snapshot{
		Phase:      w.phase,
		Clock:      w.clock,
		Player:     w.player,
		Counters:   w.counters,
		EnemyBar:   w.enemyBar,
		Units:      w.Units(),
		Shots:      w.Projectiles(),
		Rig:        w.GunRig(),
		Candidates: w.letters.Candidates(),
		Issued:     w.letters.Issued(),
		FreeLanes:  w.lanes.FreeCount(),
		UsedLanes:  w.lanes.OccupiedCount(),
	}
	if e, ok := w.Encounter(); ok {
		s.Encounter = &e
	}
	return s
}

// Hash returns a digest of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	putI := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hash computation
		h.Write(buf[:])
	}
	putF := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}

	putI(int(s.Phase))
	putF(s.Clock)
	putI(s.Player.Health)
	putI(s.Player.Score)
	putI(s.Player.Level)
	putI(s.Counters.Destroyed)
	putI(s.Counters.Missed)
	putI(s.Counters.Bomb)
	putI(s.Counters.Shield)
	putI(s.Counters.HealthPack)
	putI(s.EnemyBar)

	for _, u := range s.Units {
		putI(int(u.Kind))
		putI(u.Lane)
		putI(int(u.Letter))
		putF(u.Pos.X)
		putF(u.Pos.Y)
		putF(u.Speed)
	}
	for _, p := range s.Shots {
		putI(int(p.Kind))
		putF(p.Pos.X)
		putF(p.Pos.Y)
	}
	if s.Encounter != nil {
		putI(s.Encounter.Index)
		for _, r := range s.Encounter.Letters {
			putI(int(r))
		}
	}
	for _, r := range s.Candidates {
		putI(int(r))
	}
	for _, r := range s.Issued {
		putI(int(r))
	}
	putI(s.FreeLanes)
	putI(s.UsedLanes)
	return h.Sum64()
}
