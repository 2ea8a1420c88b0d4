package lexical

import (
	"strings"
	"unicode"

	"github.com/hupe1980/sparsevec"
)

// Tokenizer splits text into terms.
type Tokenizer func(text string) []string

// DefaultTokenizer lowercases text and splits it on every rune that is
// neither a letter nor a digit.
func DefaultTokenizer(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// TermFrequencies returns the bag-of-words vector of tokens: each term maps
// to the number of times it occurs.
func TermFrequencies(tokens []string) sparsevec.Vector[string, int] {
	tf := make(map[string]int, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}
	return sparsevec.New(tf)
}
