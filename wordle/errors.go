package wordle

import "errors"

var (
	// ErrContradictoryHistory means filtering by the supplied feedback
	// eliminated every dictionary word. The caller fed inconsistent
	// feedback; there is no principled way to keep guessing.
	ErrContradictoryHistory = errors.New("history is consistent with no dictionary word")

	// ErrInvalidWord means a word is not five lowercase ASCII letters,
	// or is not a member of the dictionary in use.
	ErrInvalidWord = errors.New("invalid word")

	// ErrMalformedMask means an externally supplied feedback
	// transcription is not exactly five recognized symbols.
	ErrMalformedMask = errors.New("malformed mask")

	// ErrUnsolved means a game ran out of its turn budget.
	ErrUnsolved = errors.New("turn budget exhausted")
)
