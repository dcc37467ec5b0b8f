package solver

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/jspall/wordlet/wordle"
)

// remainingSet is the copy-on-write view of the candidates still
// consistent with the game's history. It aliases the dictionary's
// shared entry slice until the first filter, then owns an independent
// buffer it can retain in place. A bitset over dictionary indices
// mirrors the slice so membership checks are O(1); easy mode needs one
// per scored word (p_word is zero for words already ruled out), and the
// cutoff counts only members.
type remainingSet struct {
	entries []wordle.Entry
	owned   bool
	members *bitset.BitSet
}

func newRemainingSet(base []wordle.Entry) remainingSet {
	members := bitset.New(uint(len(base)))
	for _, e := range base {
		members.Set(uint(e.Index))
	}
	return remainingSet{entries: base, members: members}
}

func (r *remainingSet) len() int { return len(r.entries) }

func (r *remainingSet) contains(idx int) bool { return r.members.Test(uint(idx)) }

// filter keeps only the entries keep accepts. Entry order, and with it
// the descending-weight / ascending-index invariant, is preserved.
func (r *remainingSet) filter(keep func(e wordle.Entry) bool) {
	var kept []wordle.Entry
	if r.owned {
		kept = r.entries[:0]
	} else {
		kept = make([]wordle.Entry, 0, len(r.entries))
	}
	for _, e := range r.entries {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	r.entries = kept
	r.owned = true

	r.members.ClearAll()
	for _, e := range r.entries {
		r.members.Set(uint(e.Index))
	}
}

// totalWeight is the probability mass still in play.
func (r *remainingSet) totalWeight() float64 {
	var sum float64
	for _, e := range r.entries {
		sum += e.Weight
	}
	return sum
}
