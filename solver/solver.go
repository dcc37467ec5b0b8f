package solver

import (
	"fmt"

	"github.com/jspall/wordlet/wordle"
)

// Solver is the stateful per-game guesser: it narrows the remaining
// candidate set by each observed feedback and ranks the next guess by
// the configured strategy. One Solver drives one game; calls to Guess
// must not overlap. Independent Solvers may share a Dictionary and a
// SharedCache, never a remaining set.
type Solver struct {
	dict      *wordle.Dictionary
	opts      Options
	cache     Cache
	full      []wordle.Entry
	remaining remainingSet
}

// New builds a Solver for one game. With opts.Cache it owns an
// unsynchronized pattern cache; use NewWithCache to share one table
// across many games.
func New(dict *wordle.Dictionary, opts Options) (*Solver, error) {
	var cache Cache
	if opts.Cache {
		cache = NewExclusiveCache(dict)
	}
	return NewWithCache(dict, opts, cache)
}

// NewWithCache builds a Solver that uses the supplied cache, which may
// be nil to disable memoization. A SharedCache may serve any number of
// concurrent Solvers.
func NewWithCache(dict *wordle.Dictionary, opts Options, cache Cache) (*Solver, error) {
	if _, ok := dict.Index(opts.Opener); !ok {
		return nil, fmt.Errorf("%w: opener %q is not in the dictionary", wordle.ErrInvalidWord, opts.Opener)
	}
	full := dict.Entries(opts.Sigmoid)
	return &Solver{
		dict:      dict,
		opts:      opts,
		cache:     cache,
		full:      full,
		remaining: newRemainingSet(full),
	}, nil
}

// Guess returns the next word to play given the game's history so far.
//
// The last history element narrows the remaining set; earlier elements
// were consumed by earlier calls. An empty history returns the fixed
// opener. If filtering empties the remaining set the caller supplied
// contradictory feedback, which is fatal for the game.
func (s *Solver) Guess(history []wordle.Guess) (string, error) {
	if len(history) > 0 {
		if err := s.narrow(history[len(history)-1]); err != nil {
			return "", err
		}
	}

	if len(history) == 0 {
		return s.opts.Opener, nil
	}
	if s.opts.RankBy == First || s.remaining.len() == 1 {
		return s.remaining.entries[0].Word, nil
	}

	best := s.rank(float64(len(history)))
	return best.word, nil
}

// narrow drops every candidate inconsistent with the observed guess.
func (s *Solver) narrow(last wordle.Guess) error {
	guessIdx, known := s.dict.Index(last.Word)
	if s.cache != nil && known {
		want := last.Mask.Pack()
		s.remaining.filter(func(e wordle.Entry) bool {
			return s.cache.Pattern(guessIdx, e.Index) == want
		})
	} else {
		s.remaining.filter(func(e wordle.Entry) bool {
			return last.Matches(e.Word)
		})
	}
	if s.remaining.len() == 0 {
		return fmt.Errorf("%w: %q -> %s", wordle.ErrContradictoryHistory, last.Word, last.Mask)
	}
	return nil
}

// Remaining returns the words still consistent with the history, in
// descending weight order.
func (s *Solver) Remaining() []string {
	words := make([]string, s.remaining.len())
	for i, e := range s.remaining.entries {
		words[i] = e.Word
	}
	return words
}
