package solver

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jspall/wordlet/wordle"
)

// smallDict is a handful of words with descending counts; "tares" is
// the heaviest so it can stay the default opener.
func smallDict(t *testing.T, words ...string) *wordle.Dictionary {
	t.Helper()
	if len(words) == 0 {
		words = []string{"tares", "slate", "crane", "raise", "stare", "arise", "crate", "trace"}
	}
	pairs := make([]wordle.WordCount, len(words))
	for i, w := range words {
		pairs[i] = wordle.WordCount{Word: w, Count: uint64(1 + 1000*(len(words)-i))}
	}
	d, err := wordle.NewDictionary(pairs)
	require.NoError(t, err)
	return d
}

// genDict builds a 125-word dictionary from letter pools, big enough to
// push the ranking scan over the parallel threshold.
func genDict(t *testing.T) *wordle.Dictionary {
	t.Helper()
	var pairs []wordle.WordCount
	count := uint64(90000)
	for _, a := range []byte("bcdfg") {
		for _, v := range []byte("aeiou") {
			for _, z := range []byte("lmnpr") {
				w := string([]byte{a, v, z, v, a})
				pairs = append(pairs, wordle.WordCount{Word: w, Count: count})
				count -= 7
			}
		}
	}
	d, err := wordle.NewDictionary(pairs)
	require.NoError(t, err)
	return d
}

func testOptions(opener string) Options {
	opts := DefaultOptions()
	opts.Opener = opener
	return opts
}

func TestFixedOpening(t *testing.T) {
	d := smallDict(t)
	for _, rankBy := range []Strategy{First, ExpectedScore, WeightedInformation, InfoPlusProbability, ExpectedInformation} {
		for _, sigmoid := range []bool{true, false} {
			for _, cache := range []bool{true, false} {
				for _, cutoff := range []bool{true, false} {
					for _, hard := range []bool{true, false} {
						opts := Options{
							Sigmoid: sigmoid, RankBy: rankBy, Cache: cache,
							Cutoff: cutoff, HardMode: hard,
							Opener: "tares", EstA: 3.870, EstB: 3.679,
						}
						s, err := New(d, opts)
						require.NoError(t, err)
						first, err := s.Guess(nil)
						require.NoError(t, err)
						assert.Equal(t, "tares", first, "%+v", opts)
					}
				}
			}
		}
	}
}

func TestOpenerMustBeInDictionary(t *testing.T) {
	_, err := New(smallDict(t), testOptions("zzzzz"))
	assert.ErrorIs(t, err, wordle.ErrInvalidWord)
}

func TestSingleCandidateFastPath(t *testing.T) {
	d := smallDict(t, "aaaaa", "aaaab", "bbbbb")
	s, err := New(d, testOptions("aaaaa"))
	require.NoError(t, err)

	history := []wordle.Guess{{Word: "aaaaa", Mask: wordle.Compute("aaaab", "aaaaa")}}
	next, err := s.Guess(history)
	require.NoError(t, err)
	assert.Equal(t, "aaaab", next)
	assert.Equal(t, []string{"aaaab"}, s.Remaining())
}

func TestContradictoryHistory(t *testing.T) {
	d := smallDict(t, "aaaaa", "bbbbb")
	s, err := New(d, testOptions("aaaaa"))
	require.NoError(t, err)

	mask, err := wordle.ParsePattern("CCCCW")
	require.NoError(t, err)
	_, err = s.Guess([]wordle.Guess{{Word: "aaaaa", Mask: mask}})
	assert.ErrorIs(t, err, wordle.ErrContradictoryHistory)
}

func TestFirstStrategyPicksHeaviestRemaining(t *testing.T) {
	d := smallDict(t)
	opts := testOptions("tares")
	opts.RankBy = First
	s, err := New(d, opts)
	require.NoError(t, err)

	answer := "crate"
	history := []wordle.Guess{{Word: "tares", Mask: wordle.Compute(answer, "tares")}}
	next, err := s.Guess(history)
	require.NoError(t, err)
	assert.Equal(t, s.Remaining()[0], next)
}

func TestMonotonicShrink(t *testing.T) {
	d := smallDict(t)
	for _, answer := range []string{"crate", "arise", "tares"} {
		s, err := New(d, testOptions("tares"))
		require.NoError(t, err)

		prev := d.Len()
		var history []wordle.Guess
		for turn := 0; turn < 10; turn++ {
			word, err := s.Guess(history)
			require.NoError(t, err)
			n := len(s.Remaining())
			assert.LessOrEqual(t, n, prev)
			prev = n
			if word == answer {
				break
			}
			history = append(history, wordle.Guess{Word: word, Mask: wordle.Compute(answer, word)})
		}
	}
}

// Every candidate-word pair lands in exactly one pattern bucket, so the
// bucket weights must add up to the remaining weight exactly.
func TestConservation(t *testing.T) {
	for _, sigmoid := range []bool{true, false} {
		d := smallDict(t)
		opts := testOptions("tares")
		opts.Sigmoid = sigmoid
		s, err := New(d, opts)
		require.NoError(t, err)

		check := func() {
			want := s.remaining.totalWeight()
			for _, e := range s.full {
				var totals [wordle.NumPatterns]float64
				s.patternTotals(e, &totals)
				var sum float64
				for _, w := range totals {
					sum += w
				}
				assert.InDelta(t, want, sum, 1e-9, "guess %q", e.Word)
			}
		}
		check()
		s.narrow(wordle.Guess{Word: "tares", Mask: wordle.Compute("crate", "tares")})
		check()
	}
}

func playout(t *testing.T, d *wordle.Dictionary, opts Options, cache Cache, answer string) []string {
	t.Helper()
	s, err := NewWithCache(d, opts, cache)
	require.NoError(t, err)

	var guesses []string
	var history []wordle.Guess
	for turn := 0; turn < 32; turn++ {
		word, err := s.Guess(history)
		require.NoError(t, err)
		guesses = append(guesses, word)
		if word == answer {
			return guesses
		}
		history = append(history, wordle.Guess{Word: word, Mask: wordle.Compute(answer, word)})
	}
	t.Fatalf("did not reach %q: %v", answer, guesses)
	return nil
}

// Identical history, dictionary and options must give an identical
// guess sequence no matter the worker-pool size or cache discipline.
func TestDeterminism(t *testing.T) {
	d := genDict(t)
	opener := d.Word(0)
	answers := []string{d.Word(7), d.Word(60), d.Word(124)}

	for _, hard := range []bool{true, false} {
		for _, cutoff := range []bool{true, false} {
			opts := testOptions(opener)
			opts.HardMode = hard
			opts.Cutoff = cutoff
			opts.Cache = false

			for _, answer := range answers {
				base := playout(t, d, opts, nil, answer)

				variants := map[string]func() []string{
					"workers=4": func() []string {
						par := opts
						par.Workers = 4
						return playout(t, d, par, nil, answer)
					},
					"exclusive cache": func() []string {
						return playout(t, d, opts, NewExclusiveCache(d), answer)
					},
					"shared cache, workers=3": func() []string {
						par := opts
						par.Workers = 3
						return playout(t, d, par, NewSharedCache(d), answer)
					},
				}
				for name, run := range variants {
					assert.Equal(t, base, run(), "%s diverged (hard=%v cutoff=%v answer=%q)", name, hard, cutoff, answer)
				}
			}
		}
	}
}

func TestCutoffBounds(t *testing.T) {
	d := genDict(t)
	opts := testOptions(d.Word(0))
	s, err := New(d, opts)
	require.NoError(t, err)

	// full remaining set: 125/3 = 41 candidates survive the cutoff
	assert.Len(t, s.consider(), 125/3)

	// shrink below 3*cutoffFloor and the floor takes over
	s.remaining.filter(func(e wordle.Entry) bool { return e.Index < 30 })
	assert.Len(t, s.consider(), cutoffFloor)

	// never more than what remains
	s.remaining.filter(func(e wordle.Entry) bool { return e.Index < 7 })
	assert.Len(t, s.consider(), 7)
}

func TestEasyModeConsidersWholeDictionary(t *testing.T) {
	d := genDict(t)
	opts := testOptions(d.Word(0))
	opts.HardMode = false
	opts.Cutoff = false
	s, err := New(d, opts)
	require.NoError(t, err)

	s.remaining.filter(func(e wordle.Entry) bool { return e.Index%2 == 0 })
	assert.Len(t, s.consider(), d.Len())

	// ruled-out words carry no probability of being the answer, so
	// weighted information collapses to zero for them
	s.opts.RankBy = WeightedInformation
	assert.False(t, s.remaining.contains(1))
	remainingP := s.remaining.totalWeight()
	assert.Greater(t, s.score(s.full[0], remainingP, 1, 1), 0.0)
	assert.Zero(t, s.score(s.full[1], remainingP, 1, 1))
}

func TestEasyModeCutoffCountsOnlyRemaining(t *testing.T) {
	d := genDict(t)
	opts := testOptions(d.Word(0))
	opts.HardMode = false
	s, err := New(d, opts)
	require.NoError(t, err)

	// keep every other word: 63 members, so the cutoff wants 63/3 = 21
	// of them. They sit at the even indices, so the pool prefix runs
	// through index 40 and the odd ruled-out words before it ride along.
	s.remaining.filter(func(e wordle.Entry) bool { return e.Index%2 == 0 })
	consider := s.consider()
	assert.Len(t, consider, 41)
	members := 0
	for _, e := range consider {
		if s.remaining.contains(e.Index) {
			members++
		}
	}
	assert.Equal(t, 21, members)
}

func TestAllStrategiesSolve(t *testing.T) {
	d := smallDict(t)
	for _, rankBy := range []Strategy{First, ExpectedScore, WeightedInformation, InfoPlusProbability, ExpectedInformation} {
		for i := 0; i < d.Len(); i++ {
			answer := d.Word(i)
			opts := testOptions("tares")
			opts.RankBy = rankBy
			s, err := New(d, opts)
			require.NoError(t, err)
			turns, err := d.Play(answer, s, d.Len()+1)
			require.NoError(t, err, "strategy %v answer %q", rankBy, answer)
			assert.LessOrEqual(t, turns, d.Len())
		}
	}
}

func TestSolverImplementsGuesser(t *testing.T) {
	var _ wordle.Guesser = (*Solver)(nil)
}

func TestOpening(t *testing.T) {
	d := smallDict(t)
	opts := testOptions("tares")
	opts.RankBy = ExpectedInformation

	top, err := Opening(d, opts, 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.GreaterOrEqual(t, top[0].Goodness, top[1].Goodness)
	assert.GreaterOrEqual(t, top[1].Goodness, top[2].Goodness)

	// asking for more than the dictionary holds returns everything
	all, err := Opening(d, opts, 100)
	require.NoError(t, err)
	assert.Len(t, all, d.Len())
}

func TestStrategyParse(t *testing.T) {
	for _, s := range []Strategy{First, ExpectedScore, WeightedInformation, InfoPlusProbability, ExpectedInformation} {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseStrategy("minimax")
	assert.Error(t, err)
	assert.Equal(t, "strategy(9)", Strategy(9).String())
}

func ExampleSolver() {
	d := wordle.Builtin()
	s, err := New(d, DefaultOptions())
	if err != nil {
		panic(err)
	}
	first, _ := s.Guess(nil)
	fmt.Println(first)
	// Output: tares
}
