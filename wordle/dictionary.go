package wordle

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	mapset "github.com/deckarep/golang-set"
)

// WordCount is one dictionary input line: a word and its raw
// occurrence count in some corpus.
type WordCount struct {
	Word  string
	Count uint64
}

// Entry is one dictionary word as the solver sees it: the word, its
// probability weight under the selected smoothing, and its stable index
// into the dictionary's descending-weight order.
type Entry struct {
	Word   string
	Weight float64
	Index  int
}

// Dictionary is the immutable word list shared by every game. Words are
// ordered by descending raw count, and a word's position in that order
// is its index for the lifetime of the process.
type Dictionary struct {
	words  []string
	counts []uint64
	byWord map[string]int

	rawOnce     sync.Once
	raw         []Entry
	sigmoidOnce sync.Once
	sigmoid     []Entry
}

// ValidWord reports whether w is exactly WordLen lowercase ASCII
// letters.
func ValidWord(w string) bool {
	if len(w) != WordLen {
		return false
	}
	for i := 0; i < WordLen; i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}

// NewDictionary builds a Dictionary from word/count pairs. Words must
// be unique and valid; counts may be zero. Ties in count keep their
// input order, so index assignment is deterministic.
func NewDictionary(pairs []WordCount) (*Dictionary, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: empty dictionary", ErrInvalidWord)
	}
	sorted := make([]WordCount, len(pairs))
	copy(sorted, pairs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})

	d := &Dictionary{
		words:  make([]string, len(sorted)),
		counts: make([]uint64, len(sorted)),
		byWord: make(map[string]int, len(sorted)),
	}
	seen := mapset.NewThreadUnsafeSet()
	for i, wc := range sorted {
		if !ValidWord(wc.Word) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, wc.Word)
		}
		if !seen.Add(wc.Word) {
			return nil, fmt.Errorf("%w: duplicate %q", ErrInvalidWord, wc.Word)
		}
		d.words[i] = wc.Word
		d.counts[i] = wc.Count
		d.byWord[wc.Word] = i
	}
	return d, nil
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// Word returns the word at index i.
func (d *Dictionary) Word(i int) string {
	return d.words[i]
}

// Index returns the index of word, if it is a dictionary member.
func (d *Dictionary) Index(word string) (int, bool) {
	i, ok := d.byWord[word]
	return i, ok
}

// Sigmoid smoothing constants. Raw corpus counts are so skewed that a
// handful of ultra-frequent words swallow all the probability mass; the
// logistic curve saturates common words near 1 and floors rare ones.
// The steepness and midpoint are corpus specific, tuned for word lists
// in the tens of thousands with counts summing around 10^9.
const (
	sigmoidSteepness = 30000000.0
	sigmoidMidpoint  = 0.00000497
)

func sigmoidWeight(p float64) float64 {
	return 1.0 / (1.0 + math.Exp(-sigmoidSteepness*(p-sigmoidMidpoint)))
}

// Entries returns the full dictionary as weighted entries in index
// order. With smoothing, weights are the sigmoid of each word's share
// of the total count; without, they are the raw counts. Every strategy
// starts from one of these two slices, so each is built once and then
// shared read-only; callers must treat the result as immutable.
func (d *Dictionary) Entries(smoothed bool) []Entry {
	if smoothed {
		d.sigmoidOnce.Do(func() {
			var total uint64
			for _, c := range d.counts {
				total += c
			}
			d.sigmoid = make([]Entry, len(d.words))
			for i, w := range d.words {
				p := float64(d.counts[i]) / float64(total)
				d.sigmoid[i] = Entry{Word: w, Weight: sigmoidWeight(p), Index: i}
			}
		})
		return d.sigmoid
	}
	d.rawOnce.Do(func() {
		d.raw = make([]Entry, len(d.words))
		for i, w := range d.words {
			d.raw[i] = Entry{Word: w, Weight: float64(d.counts[i]), Index: i}
		}
	})
	return d.raw
}

// Parse reads "word count" lines, one pair per line. Words that are not
// five lowercase ASCII letters are skipped (frequency corpora carry
// plenty of other tokens); malformed counts are an error.
func Parse(r io.Reader) ([]WordCount, error) {
	var pairs []WordCount
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: want \"word count\", got %q", line, text)
		}
		if !ValidWord(fields[0]) {
			continue
		}
		count, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad count %q: %w", line, fields[1], err)
		}
		pairs = append(pairs, WordCount{Word: fields[0], Count: count})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// Load reads a word-frequency file and builds a Dictionary from it.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	pairs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewDictionary(pairs)
}
