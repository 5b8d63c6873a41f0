package approval

import (
	"github.com/viant/parsly"
)

// Token codes
const (
	negationCode = iota
)

// Token definitions
var (
	negationToken = parsly.NewToken(negationCode, "Negation", newNegationMatcher("not", "isn't", "isnt", "hasn't", "hasnt"))
)

func newNegationMatcher(words ...string) parsly.Matcher {
	return &negationMatcher{words: words}
}

// negationMatcher matches one of the negating words as a plain prefix, so
// "nothing" and "notapproved" match "not". The input is expected to be
// lower-cased already.
type negationMatcher struct {
	words []string
}

func (m *negationMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	for _, word := range m.words {
		end := pos + len(word)
		if end > size {
			continue
		}
		if string(input[pos:end]) == word {
			return len(word)
		}
	}
	return 0
}
