package solver

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/jspall/wordlet/wordle"
)

// cutoffFloor is the minimum number of candidates the cutoff scores per
// turn; below that, pruning saves nothing worth the optimality loss.
const cutoffFloor = 20

// parallelThreshold is the consideration-set size below which pool
// dispatch overhead beats any parallel speedup.
const parallelThreshold = 64

type candidate struct {
	word     string
	idx      int
	goodness float64
}

// better applies the deterministic tie-break: higher goodness wins, and
// equal goodness prefers the lower dictionary index, so parallel and
// sequential scans agree bit for bit.
func better(a, b candidate) candidate {
	if b.goodness > a.goodness || (b.goodness == a.goodness && b.idx < a.idx) {
		return b
	}
	return a
}

// rank scores the consideration set and returns the best candidate.
// turn is the number of guesses already made.
func (s *Solver) rank(turn float64) candidate {
	remainingP := s.remaining.totalWeight()

	// Entropy still unresolved; ExpectedScore spends it against each
	// candidate's expected information gain.
	var remainingH float64
	for _, e := range s.remaining.entries {
		p := e.Weight / remainingP
		remainingH -= p * math.Log2(p)
	}

	consider := s.consider()

	workers := s.opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || len(consider) < parallelThreshold {
		return s.scan(consider, remainingP, remainingH, turn)
	}
	if workers > len(consider) {
		workers = len(consider)
	}

	// Parallel map over chunks, then reduce to the best. Each chunk
	// keeps the slice order, so in-chunk ties already fall to the lower
	// index and the cross-chunk reduce applies the same rule.
	bests := make([]candidate, workers)
	chunk := (len(consider) + workers - 1) / workers
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := min(lo+chunk, len(consider))
		if lo >= hi {
			bests[w] = candidate{idx: -1, goodness: math.Inf(-1)}
			continue
		}
		g.Go(func() error {
			bests[w] = s.scan(consider[lo:hi], remainingP, remainingH, turn)
			return nil
		})
	}
	g.Wait() //nolint:errcheck // workers never return errors

	best := bests[0]
	for _, b := range bests[1:] {
		if b.idx < 0 {
			continue
		}
		best = better(best, b)
	}
	return best
}

// consider returns the slice of candidates to score this turn. Hard
// mode draws from the remaining set only; easy mode from the whole
// dictionary, where a ruled-out word may still carry more information.
// The cutoff keeps the heaviest max(n/3, 20) remaining candidates,
// capped at n; in easy mode ruled-out words encountered before the
// cutoff point still get scored, they just don't count toward it.
func (s *Solver) consider() []wordle.Entry {
	pool := s.remaining.entries
	if !s.opts.HardMode {
		pool = s.full
	}
	if !s.opts.Cutoff {
		return pool
	}
	stop := s.remaining.len() / 3
	if stop < cutoffFloor {
		stop = cutoffFloor
	}
	if stop >= s.remaining.len() {
		stop = s.remaining.len()
	}
	if s.opts.HardMode {
		return pool[:stop]
	}
	members := 0
	for i, e := range pool {
		if s.remaining.contains(e.Index) {
			members++
			if members >= stop {
				return pool[:i+1]
			}
		}
	}
	return pool
}

// scan sequentially scores every entry in consider, keeping the best.
func (s *Solver) scan(consider []wordle.Entry, remainingP, remainingH, turn float64) candidate {
	best := candidate{idx: -1, goodness: math.Inf(-1)}
	for _, e := range consider {
		g := s.score(e, remainingP, remainingH, turn)
		best = better(best, candidate{word: e.Word, idx: e.Index, goodness: g})
	}
	return best
}

// score computes the goodness of guessing e under the configured
// strategy.
func (s *Solver) score(e wordle.Entry, remainingP, remainingH, turn float64) float64 {
	var totals [wordle.NumPatterns]float64
	s.patternTotals(e, &totals)

	var info float64
	for _, t := range totals {
		if t == 0 {
			continue
		}
		p := t / remainingP
		info -= p * math.Log2(p)
	}

	var pWord float64
	if s.remaining.contains(e.Index) {
		pWord = e.Weight / remainingP
	}

	switch s.opts.RankBy {
	case ExpectedScore:
		// Expected total guesses; negated so higher is better.
		return -(pWord*(turn+1) +
			(1-pWord)*(turn+s.opts.estSteps(remainingH-info)))
	case WeightedInformation:
		return pWord * info
	case InfoPlusProbability:
		return pWord + info
	default: // ExpectedInformation
		return info
	}
}

// patternTotals accumulates, per feedback pattern, the weight of the
// remaining candidates that would produce it if e were guessed. Each
// (candidate, guess) pair lands in exactly one of the 243 buckets, so
// the bucket sum is exactly the remaining weight.
func (s *Solver) patternTotals(e wordle.Entry, totals *[wordle.NumPatterns]float64) {
	if s.cache != nil {
		for _, c := range s.remaining.entries {
			totals[s.cache.Pattern(e.Index, c.Index)] += c.Weight
		}
		return
	}
	for _, c := range s.remaining.entries {
		totals[wordle.Compute(c.Word, e.Word).Pack()] += c.Weight
	}
}

// Ranked is one scored opening candidate.
type Ranked struct {
	Word     string
	Goodness float64
}

// Opening scores every dictionary word as a first guess under opts and
// returns the top n by goodness. This is the scan the fixed opener
// short-circuits during play; it exists so the opener can be
// recalibrated when the corpus changes.
func Opening(dict *wordle.Dictionary, opts Options, n int) ([]Ranked, error) {
	opts.Cutoff = false
	s, err := New(dict, opts)
	if err != nil {
		return nil, err
	}

	remainingP := s.remaining.totalWeight()
	var remainingH float64
	for _, e := range s.remaining.entries {
		p := e.Weight / remainingP
		remainingH -= p * math.Log2(p)
	}

	scores := make([]float64, dict.Len())
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for _, e := range s.full {
		e := e
		g.Go(func() error {
			scores[e.Index] = s.score(e, remainingP, remainingH, 0)
			return nil
		})
	}
	g.Wait() //nolint:errcheck // workers never return errors

	if n > dict.Len() {
		n = dict.Len()
	}
	// Selection by repeated scan keeps the lower-index tie-break
	// explicit; n is small.
	taken := make([]bool, dict.Len())
	top := make([]Ranked, 0, n)
	for len(top) < n {
		best := -1
		for i, sc := range scores {
			if taken[i] {
				continue
			}
			if best < 0 || sc > scores[best] {
				best = i
			}
		}
		taken[best] = true
		top = append(top, Ranked{Word: dict.Word(best), Goodness: scores[best]})
	}
	return top, nil
}
