package vectorize

import (
	"strings"
	"unicode"
)

// stopwords is the fixed set of tokens dropped before hashing. Single-char
// tokens are dropped separately in Tokenize.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "after": {}, "all": {}, "also": {}, "an": {},
	"and": {}, "any": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"because": {}, "been": {}, "but": {}, "by": {}, "can": {}, "could": {},
	"did": {}, "do": {}, "does": {}, "for": {}, "from": {}, "get": {},
	"had": {}, "has": {}, "have": {}, "he": {}, "her": {}, "him": {},
	"his": {}, "how": {}, "if": {}, "in": {}, "into": {}, "is": {},
	"it": {}, "its": {}, "just": {}, "me": {}, "more": {}, "most": {},
	"my": {}, "no": {}, "not": {}, "of": {}, "on": {}, "only": {},
	"or": {}, "other": {}, "our": {}, "out": {}, "she": {}, "so": {},
	"some": {}, "than": {}, "that": {}, "the": {}, "their": {}, "them": {},
	"then": {}, "there": {}, "these": {}, "they": {}, "this": {}, "to": {},
	"up": {}, "was": {}, "we": {}, "were": {}, "what": {}, "when": {},
	"which": {}, "who": {}, "will": {}, "with": {}, "would": {}, "you": {},
	"your": {},
}

// Tokenize lowercases the input and extracts maximal runs of letters and
// digits, discarding stopwords and single-character tokens. It is pure and
// total: empty or stopword-only input yields an empty slice.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)

	var tokens []string
	start := -1
	for idx, r := range lowered {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start == -1 {
				start = idx
			}
			continue
		}
		if start != -1 {
			appendToken(&tokens, lowered[start:idx])
			start = -1
		}
	}
	if start != -1 {
		appendToken(&tokens, lowered[start:])
	}
	return tokens
}

func appendToken(tokens *[]string, token string) {
	if len(token) <= 1 {
		return
	}
	if _, skip := stopwords[token]; skip {
		return
	}
	*tokens = append(*tokens, token)
}
