package main

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
)

type game struct {
	answer string
	turns  int
	solved bool
}

// printHistogram groups games by guess count, worst last.
func printHistogram(games []game) {
	byTurns := make(map[int][]string)
	for _, g := range games {
		if !g.solved {
			continue
		}
		byTurns[g.turns] = append(byTurns[g.turns], g.answer)
	}
	keys := make([]int, 0, len(byTurns))
	for k := range byTurns {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, turns := range keys {
		words := byTurns[turns]
		fmt.Printf("%d: %d", turns, len(words))
		if len(words) <= 10 {
			fmt.Printf(" (%s)", strings.Join(words, " "))
		}
		fmt.Println()
	}
}

type metric interface {
	summarize(games []game) string
}

type metricImpl[T constraints.Ordered] struct {
	name string
	f    func(games []game) (T, []string)
}

func (m *metricImpl[T]) summarize(games []game) string {
	v, words := m.f(games)
	if len(words) == 0 {
		return fmt.Sprintf("%s: %v", m.name, v)
	}
	sort.Strings(words)
	return fmt.Sprintf("%s: %v (%s)", m.name, v, strings.Join(words, " "))
}

var metrics = []metric{
	&metricImpl[int]{"worst", func(games []game) (int, []string) {
		worst := 0
		var words []string
		for _, g := range games {
			if !g.solved {
				continue
			}
			switch {
			case g.turns > worst:
				worst = g.turns
				words = []string{g.answer}
			case g.turns == worst:
				words = append(words, g.answer)
			}
		}
		return worst, words
	}},
	&metricImpl[float64]{"average", func(games []game) (float64, []string) {
		sum, n := 0, 0
		for _, g := range games {
			if !g.solved {
				continue
			}
			sum += g.turns
			n++
		}
		if n == 0 {
			return 0, nil
		}
		return float64(sum) / float64(n), nil
	}},
	&metricImpl[float64]{"not-in-6 %", func(games []game) (float64, []string) {
		loss := 0
		for _, g := range games {
			if !g.solved || g.turns > 6 {
				loss++
			}
		}
		return 100 * float64(loss) / float64(len(games)), nil
	}},
}
