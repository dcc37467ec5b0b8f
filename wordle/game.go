package wordle

import "fmt"

// Guesser produces the next guess for a game given everything observed
// so far. History is append-only and scoped to one game; implementations
// may keep per-game state keyed off its length.
type Guesser interface {
	Guess(history []Guess) (string, error)
}

// Finisher is optionally implemented by Guessers that want to know how
// many guesses a solved game took, e.g. to dump diagnostics.
type Finisher interface {
	Finish(guesses int)
}

// GuesserFunc adapts a plain function to the Guesser interface.
type GuesserFunc func(history []Guess) (string, error)

func (f GuesserFunc) Guess(history []Guess) (string, error) {
	return f(history)
}

// Play drives guesser against the hidden answer until it guesses it or
// maxTurns guesses have been spent, returning the number of guesses
// used. Every produced guess must be a dictionary member. The real game
// allows six turns; benchmarks pass a larger budget so the score
// distribution isn't chopped off.
func (d *Dictionary) Play(answer string, guesser Guesser, maxTurns int) (int, error) {
	if _, ok := d.Index(answer); !ok {
		return 0, fmt.Errorf("%w: answer %q is not in the dictionary", ErrInvalidWord, answer)
	}
	var history []Guess
	for turn := 1; turn <= maxTurns; turn++ {
		word, err := guesser.Guess(history)
		if err != nil {
			return 0, err
		}
		if word == answer {
			if f, ok := guesser.(Finisher); ok {
				f.Finish(turn)
			}
			return turn, nil
		}
		if _, ok := d.Index(word); !ok {
			return 0, fmt.Errorf("%w: guess %q is not in the dictionary", ErrInvalidWord, word)
		}
		history = append(history, Guess{Word: word, Mask: Compute(answer, word)})
	}
	return 0, fmt.Errorf("%w: %q not guessed in %d turns", ErrUnsolved, answer, maxTurns)
}
