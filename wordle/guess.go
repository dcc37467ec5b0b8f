package wordle

// Guess is one observed (word, feedback) pair from a game's history.
type Guess struct {
	Word string
	Mask Pattern
}

// Matches reports whether candidate could still be the hidden answer
// given that guessing g.Word produced g.Mask. It is equivalent to
//
//	Compute(candidate, g.Word) == g.Mask
//
// but bails out on the first contradiction instead of materializing the
// full pattern.
func (g Guess) Matches(candidate string) bool {
	var used [WordLen]bool

	for i := 0; i < WordLen; i++ {
		if candidate[i] == g.Word[i] {
			if g.Mask[i] != Correct {
				return false
			}
			used[i] = true
		} else if g.Mask[i] == Correct {
			return false
		}
	}

	for i := 0; i < WordLen; i++ {
		if g.Mask[i] == Correct {
			continue
		}
		if misplacedIn(g.Word[i], candidate, &used) != (g.Mask[i] == Misplaced) {
			return false
		}
	}

	// everything left is a correctly Wrong letter
	return true
}

// misplacedIn consumes an unused occurrence of letter in answer,
// reporting whether one was available.
func misplacedIn(letter byte, answer string, used *[WordLen]bool) bool {
	for i := 0; i < WordLen; i++ {
		if answer[i] == letter && !used[i] {
			used[i] = true
			return true
		}
	}
	return false
}
