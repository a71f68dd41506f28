package sim

// Handle refers to an entity stored in an Arena. A handle whose entity has
// been removed goes stale: lookups through it fail even after the slot is
// reused. The zero Handle never refers to anything.
type Handle struct {
	idx uint32
	gen uint32
}

// Valid reports whether h was ever issued by an arena.
func (h Handle) Valid() bool {
	return h.gen != 0
}

type slot[T any] struct {
	gen   uint32
	alive bool
	val   T
}

// Arena is flat generational storage for entities created and destroyed
// every tick. Iteration is in slot order, so it is deterministic.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, slot[T]{})
	}
	s := &a.slots[idx]
	s.gen++
	s.alive = true
	s.val = v
	a.live++
	return Handle{idx: idx, gen: s.gen}
}

// Get returns a pointer to the entity behind h, or false if h is stale.
// The pointer is valid until the next Insert.
func (a *Arena[T]) Get(h Handle) (*T, bool) {
	if !h.Valid() || int(h.idx) >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[h.idx]
	if !s.alive || s.gen != h.gen {
		return nil, false
	}
	return &s.val, true
}

// Has reports whether h refers to a live entity.
func (a *Arena[T]) Has(h Handle) bool {
	_, ok := a.Get(h)
	return ok
}

// Remove deletes the entity behind h. Removing a stale handle is a no-op
// and returns false.
func (a *Arena[T]) Remove(h Handle) bool {
	if !a.Has(h) {
		return false
	}
	s := &a.slots[h.idx]
	s.alive = false
	var zero T
	s.val = zero
	a.free = append(a.free, h.idx)
	a.live--
	return true
}

// Len returns the number of live entities.
func (a *Arena[T]) Len() int {
	return a.live
}

// Handles returns the handles of all live entities in slot order.
// The slice is a snapshot; removing entities while ranging over it is safe.
func (a *Arena[T]) Handles() []Handle {
	out := make([]Handle, 0, a.live)
	for i := range a.slots {
		if a.slots[i].alive {
			out = append(out, Handle{idx: uint32(i), gen: a.slots[i].gen})
		}
	}
	return out
}

// Clear removes every entity. Outstanding handles go stale.
func (a *Arena[T]) Clear() {
	for _, h := range a.Handles() {
		a.Remove(h)
	}
}
