package analysis

import (
	"regexp"
	"strings"
)

// wordPattern extracts maximal runs of ASCII letters. Digits,
// punctuation and non-ASCII characters split tokens.
var wordPattern = regexp.MustCompile(`[a-zA-Z]+`)

// Tokens splits text into lowercase ASCII-letter tokens.
func Tokens(text string) []string {
	words := wordPattern.FindAllString(text, -1)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words
}
