package solver

import (
	"fmt"
	"math"
)

// Strategy selects the goodness formula used to rank candidate guesses.
type Strategy uint8

const (
	// First skips ranking entirely and guesses the heaviest remaining
	// candidate.
	First Strategy = iota

	// ExpectedScore minimizes the expected total number of guesses:
	// p(word)*(turn+1) + (1-p(word))*(turn + estSteps(entropy left)).
	ExpectedScore

	// WeightedInformation maximizes p(word) * E[information].
	WeightedInformation

	// InfoPlusProbability maximizes p(word) + E[information].
	InfoPlusProbability

	// ExpectedInformation maximizes E[information] alone.
	ExpectedInformation
)

var strategyNames = map[Strategy]string{
	First:               "first",
	ExpectedScore:       "escore",
	WeightedInformation: "weighted",
	InfoPlusProbability: "infoprob",
	ExpectedInformation: "entropy",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("strategy(%d)", uint8(s))
}

// ParseStrategy maps a CLI name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for s, n := range strategyNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown strategy %q", name)
}

// Options is an immutable snapshot of solver toggles, consumed once per
// Solver construction.
type Options struct {
	// Sigmoid replaces raw frequency weights with their logistic
	// transform, compressing the corpus skew.
	Sigmoid bool

	// RankBy selects the candidate ranking strategy.
	RankBy Strategy

	// Cache memoizes pattern computation per (guess, answer) index pair.
	Cache bool

	// Cutoff scores only the heaviest max(n/3, 20) remaining candidates
	// each turn.
	Cutoff bool

	// HardMode restricts guesses to words that could still be the
	// answer. Easy mode considers the whole dictionary: a known-wrong
	// word can still split the remaining set better.
	HardMode bool

	// Opener is returned on the first guess of every game without
	// scoring; the turn-one scan is identical every game, so there is
	// no point repeating it. Must be a dictionary member.
	Opener string

	// Workers bounds the worker pool for the ranking scan. Zero or one
	// scans sequentially. The result is identical for any value.
	Workers int

	// EstA and EstB are the regression coefficients of the
	// guesses-remaining estimator used by ExpectedScore,
	// estSteps(e) = ln(e*EstA + EstB). They are empirical and corpus
	// specific; recalibrate when swapping dictionaries.
	EstA, EstB float64
}

// DefaultOptions is the configuration that benchmarks best on the
// builtin corpus.
func DefaultOptions() Options {
	return Options{
		Sigmoid:  true,
		RankBy:   ExpectedScore,
		Cache:    true,
		Cutoff:   true,
		HardMode: true,
		Opener:   "tares",
		Workers:  1,
		EstA:     3.870,
		EstB:     3.679,
	}
}

// estSteps estimates how many more guesses are needed when entropy bits
// of uncertainty remain.
func (o Options) estSteps(entropy float64) float64 {
	return math.Log(entropy*o.EstA + o.EstB)
}
