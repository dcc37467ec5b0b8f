package solver

import (
	"sync"

	"github.com/jspall/wordlet/wordle"
)

// A Cache memoizes packed feedback patterns per (guess index, answer
// index) pair. The underlying function is pure and total, so entries
// never change once written and racing writers all store the same byte;
// any (guess, answer) lookup returns the same value no matter which
// caller computed it first.
//
// Storage is an N x N table of single bytes (N = dictionary size); at
// N ~ 10^4 that is ~10^8 cells, which is why the packed representation
// matters. Rows are allocated on first touch so short runs don't pay
// for the whole table.
type Cache interface {
	Pattern(guessIdx, answerIdx int) wordle.Packed
}

// A cell holds packed+1 so the zero value means "not computed yet".
type row []byte

func fill(r row, d *wordle.Dictionary, guessIdx, answerIdx int) wordle.Packed {
	if v := r[answerIdx]; v != 0 {
		return wordle.Packed(v - 1)
	}
	p := wordle.Compute(d.Word(answerIdx), d.Word(guessIdx)).Pack()
	r[answerIdx] = byte(p) + 1
	return p
}

// ExclusiveCache is the unsynchronized variant: it must be owned by a
// single Solver. Within one ranking scan that is still safe with many
// workers, because candidates are partitioned across workers and each
// candidate touches only its own row.
type ExclusiveCache struct {
	dict *wordle.Dictionary
	rows []row
}

func NewExclusiveCache(d *wordle.Dictionary) *ExclusiveCache {
	return &ExclusiveCache{dict: d, rows: make([]row, d.Len())}
}

func (c *ExclusiveCache) Pattern(guessIdx, answerIdx int) wordle.Packed {
	r := c.rows[guessIdx]
	if r == nil {
		r = make(row, c.dict.Len())
		c.rows[guessIdx] = r
	}
	return fill(r, c.dict, guessIdx, answerIdx)
}

// SharedCache is the locked variant: one table shared by any number of
// Solvers (batch benchmarking runs thousands of games against one
// table). Mutual exclusion is per row, which is where all the contention
// is; per-cell locking would cost more than recomputing the pattern.
type SharedCache struct {
	dict *wordle.Dictionary
	mu   []sync.Mutex
	rows []row
}

func NewSharedCache(d *wordle.Dictionary) *SharedCache {
	return &SharedCache{
		dict: d,
		mu:   make([]sync.Mutex, d.Len()),
		rows: make([]row, d.Len()),
	}
}

func (c *SharedCache) Pattern(guessIdx, answerIdx int) wordle.Packed {
	c.mu[guessIdx].Lock()
	r := c.rows[guessIdx]
	if r == nil {
		r = make(row, c.dict.Len())
		c.rows[guessIdx] = r
	}
	p := fill(r, c.dict, guessIdx, answerIdx)
	c.mu[guessIdx].Unlock()
	return p
}
