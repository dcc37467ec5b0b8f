package wordle

import (
	"bytes"
	_ "embed"
	"sync"
)

//go:embed dictionary.txt
var builtinData []byte

var (
	builtinOnce sync.Once
	builtin     *Dictionary
)

// Builtin returns the embedded word-frequency dictionary. It is built
// once and shared; like every Dictionary it is immutable.
func Builtin() *Dictionary {
	builtinOnce.Do(func() {
		var err error
		builtin, err = NewDictionary(BuiltinPairs())
		if err != nil {
			panic("embedded dictionary: " + err.Error())
		}
	})
	return builtin
}

// BuiltinPairs returns the embedded word list as raw word/count pairs,
// for callers that want to truncate or rebuild it.
func BuiltinPairs() []WordCount {
	pairs, err := Parse(bytes.NewReader(builtinData))
	if err != nil {
		panic("embedded dictionary: " + err.Error())
	}
	return pairs
}
