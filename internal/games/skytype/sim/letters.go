package sim

import (
	"math/rand"
	"slices"
)

// LetterPool assigns target letters to spawning units.
//
// Letters are drawn from candidates while any remain; each draw removes the
// letter from candidates and records it once in issued. When candidates run
// out, letters are drawn from issued without removal, so repeats appear.
type LetterPool struct {
	candidates []rune
	issued     []rune
}

// NewLetterPool creates a pool seeded with the given alphabet.
func NewLetterPool(alphabet []rune) *LetterPool {
	p := &LetterPool{}
	p.Reset(alphabet)
	return p
}

// Reset replaces the candidates with alphabet and forgets issued letters.
func (p *LetterPool) Reset(alphabet []rune) {
	p.candidates = append(p.candidates[:0], alphabet...)
	p.issued = p.issued[:0]
}

// Issue draws a letter. Returns false if the pool has never held any.
func (p *LetterPool) Issue(rng *rand.Rand) (rune, bool) {
	if n := len(p.candidates); n > 0 {
		i := rng.Intn(n)
		r := p.candidates[i]
		p.candidates[i] = p.candidates[n-1]
		p.candidates = p.candidates[:n-1]
		if !slices.Contains(p.issued, r) {
			p.issued = append(p.issued, r)
		}
		return r, true
	}
	if len(p.issued) == 0 {
		return 0, false
	}
	return p.issued[rng.Intn(len(p.issued))], true
}

// Return puts a letter back into candidates unless it is already there.
func (p *LetterPool) Return(r rune) {
	if !slices.Contains(p.candidates, r) {
		p.candidates = append(p.candidates, r)
	}
}

// Candidates returns a copy of the letters not yet issued.
func (p *LetterPool) Candidates() []rune {
	return slices.Clone(p.candidates)
}

// Issued returns a copy of the letters issued at least once.
func (p *LetterPool) Issued() []rune {
	return slices.Clone(p.issued)
}
