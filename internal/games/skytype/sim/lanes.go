package sim

import "math/rand"

// Lane is a horizontal track. It sits in the free pool while it has no
// occupants and in the occupied pool otherwise.
type Lane struct {
	ID        int
	Occupants []Handle
}

// LanePool hands out lanes to spawning units.
type LanePool struct {
	free     []Lane
	occupied []Lane
}

// NewLanePool creates a pool of n free lanes with ids 0..n-1.
func NewLanePool(n int) *LanePool {
	p := &LanePool{}
	p.Grow(n)
	return p
}

// Count returns the total number of lanes.
func (p *LanePool) Count() int {
	return len(p.free) + len(p.occupied)
}

// FreeCount returns the number of lanes without occupants.
func (p *LanePool) FreeCount() int {
	return len(p.free)
}

// OccupiedCount returns the number of lanes with at least one occupant.
func (p *LanePool) OccupiedCount() int {
	return len(p.occupied)
}

// Grow appends free lanes until the pool holds n lanes. Lanes are never
// removed.
func (p *LanePool) Grow(n int) {
	for id := p.Count(); id < n; id++ {
		p.free = append(p.free, Lane{ID: id})
	}
}

// Allocate assigns unit h to a lane and returns the lane id. A free lane is
// preferred; when every lane is occupied a random occupied lane is shared.
// Returns false only if the pool has no lanes at all.
func (p *LanePool) Allocate(rng *rand.Rand, h Handle) (int, bool) {
	if len(p.free) > 0 {
		i := rng.Intn(len(p.free))
		lane := p.free[i]
		p.free[i] = p.free[len(p.free)-1]
		p.free = p.free[:len(p.free)-1]

		lane.Occupants = append(lane.Occupants[:0], h)
		p.occupied = append(p.occupied, lane)
		return lane.ID, true
	}
	if len(p.occupied) == 0 {
		return 0, false
	}
	i := rng.Intn(len(p.occupied))
	p.occupied[i].Occupants = append(p.occupied[i].Occupants, h)
	return p.occupied[i].ID, true
}

// Release removes unit h from a lane. The lane returns to the free pool
// only when its occupant list becomes empty. Reports whether that happened.
func (p *LanePool) Release(id int, h Handle) bool {
	i := p.findOccupied(id)
	if i < 0 {
		return false
	}
	lane := &p.occupied[i]
	for j, o := range lane.Occupants {
		if o == h {
			lane.Occupants = append(lane.Occupants[:j], lane.Occupants[j+1:]...)
			break
		}
	}
	if len(lane.Occupants) > 0 {
		return false
	}

	freed := Lane{ID: lane.ID}
	p.occupied[i] = p.occupied[len(p.occupied)-1]
	p.occupied = p.occupied[:len(p.occupied)-1]
	p.free = append(p.free, freed)
	return true
}

// IsFree reports whether lane id is in the free pool.
func (p *LanePool) IsFree(id int) bool {
	for _, l := range p.free {
		if l.ID == id {
			return true
		}
	}
	return false
}

// IsOccupied reports whether lane id is in the occupied pool.
func (p *LanePool) IsOccupied(id int) bool {
	return p.findOccupied(id) >= 0
}

// Occupants returns a copy of the units on lane id.
func (p *LanePool) Occupants(id int) []Handle {
	i := p.findOccupied(id)
	if i < 0 {
		return nil
	}
	return append([]Handle(nil), p.occupied[i].Occupants...)
}

// Reset moves every lane back to the free pool, keeping the lane count.
func (p *LanePool) Reset() {
	n := p.Count()
	p.free = p.free[:0]
	p.occupied = p.occupied[:0]
	p.Grow(n)
}

func (p *LanePool) findOccupied(id int) int {
	for i := range p.occupied {
		if p.occupied[i].ID == id {
			return i
		}
	}
	return -1
}
