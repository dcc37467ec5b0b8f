package wordle

import (
	"fmt"
	"strconv"
)

// Mark is the feedback for a single letter of a guess.
type Mark uint8

const (
	Correct   Mark = iota // green: right letter, right spot
	Misplaced             // yellow: right letter, wrong spot
	Wrong                 // gray: letter not available
)

const (
	// WordLen is the fixed word length of the game.
	WordLen = 5

	// NumPatterns is the number of distinct feedback patterns, 3^WordLen.
	NumPatterns = 243
)

// Pattern is the full feedback for one guess against one answer.
type Pattern [WordLen]Mark

// Packed is a Pattern encoded as a base-3 integer in [0, NumPatterns).
// The leftmost mark is the most significant digit, so the all-Correct
// pattern packs to 0. A single byte per pair is what makes the NxN
// correctness cache affordable.
type Packed uint8

// Compute returns the feedback pattern for guessing guess when the
// hidden word is answer.
//
// Pass one marks exact matches and counts each unmatched answer letter.
// Pass two spends those counts on the remaining guess letters, so a
// letter is only Misplaced while the answer still has an unused
// occurrence of it. compute("aabbb", "aaccc") is CCWWW, not CCMWW: the
// surplus 'a' has nothing left to match.
func Compute(answer, guess string) Pattern {
	if len(answer) != WordLen || len(guess) != WordLen {
		panic("Compute: words must be " + strconv.Itoa(WordLen) + " letters")
	}
	var p Pattern
	var unused [26]uint8
	for i := 0; i < WordLen; i++ {
		if answer[i] == guess[i] {
			p[i] = Correct
		} else {
			p[i] = Wrong
			unused[answer[i]-'a']++
		}
	}
	for i := 0; i < WordLen; i++ {
		if p[i] == Wrong && unused[guess[i]-'a'] > 0 {
			p[i] = Misplaced
			unused[guess[i]-'a']--
		}
	}
	return p
}

// Pack encodes p as a base-3 integer.
func (p Pattern) Pack() Packed {
	var acc uint8
	for _, m := range p {
		acc = acc*3 + uint8(m)
	}
	return Packed(acc)
}

// Unpack is the inverse of Pattern.Pack.
func Unpack(v Packed) Pattern {
	var p Pattern
	for i := WordLen - 1; i >= 0; i-- {
		p[i] = Mark(v % 3)
		v /= 3
	}
	return p
}

// Patterns yields all NumPatterns feedback patterns in packed order.
// The sequence is restartable; use it with range-over-func:
//
//	for p := range wordle.Patterns { ... }
func Patterns(yield func(Pattern) bool) {
	for v := 0; v < NumPatterns; v++ {
		if !yield(Unpack(Packed(v))) {
			return
		}
	}
}

// AllCorrect reports whether every mark in p is Correct, i.e. the guess
// that produced p was the answer.
func (p Pattern) AllCorrect() bool {
	return p == Pattern{}
}

func (p Pattern) String() string {
	var b [WordLen]byte
	for i, m := range p {
		switch m {
		case Correct:
			b[i] = 'C'
		case Misplaced:
			b[i] = 'M'
		default:
			b[i] = 'W'
		}
	}
	return string(b[:])
}

// ParsePattern converts a human transcription of feedback, one of
// C/M/W per position (case insensitive), into a Pattern.
func ParsePattern(s string) (Pattern, error) {
	var p Pattern
	if len(s) != WordLen {
		return p, fmt.Errorf("%w: %q is not %d symbols", ErrMalformedMask, s, WordLen)
	}
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case 'C', 'c':
			p[i] = Correct
		case 'M', 'm':
			p[i] = Misplaced
		case 'W', 'w':
			p[i] = Wrong
		default:
			return Pattern{}, fmt.Errorf("%w: %q at position %d", ErrMalformedMask, string(s[i]), i+1)
		}
	}
	return p, nil
}
