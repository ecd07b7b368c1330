// Package heuristics holds the pure lexical rules shared by the
// deterministic extractors and the compilers.
package heuristics

import (
	"strings"
	"unicode/utf8"
)

// CleanPlace trims trailing noise from a place candidate. It returns "" when
// nothing usable remains.
func CleanPlace(s string) string {
	s = collapse(s)
	if loc := sentenceBreakRe.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}

	words := strings.Fields(s)
	for i := range words {
		if endsPlace(words, i) {
			words = words[:i]
			break
		}
	}
	s = strings.Join(words, " ")

	s = strings.Trim(s, quoteChars+" ")
	s = strings.TrimRight(s, trailingPunct+quoteChars+" ")
	s = collapse(s)

	if utf8.RuneCountInString(s) > MaxPlaceLen {
		s = strings.TrimSpace(string([]rune(s)[:MaxPlaceLen]))
	}

	if !letterRe.MatchString(s) || leadingClockRe.MatchString(s) {
		return ""
	}
	return s
}

// endsPlace reports whether words[i] starts the noise after a place: a stop
// word, a date token, or a lead word such as "op" followed by either.
func endsPlace(words []string, i int) bool {
	w := bareWord(words[i])
	if stopWords[w] || dateTokenRe.MatchString(w) {
		return true
	}
	if dateLeadWords[w] && i+1 < len(words) {
		next := bareWord(words[i+1])
		return stopWords[next] || dateTokenRe.MatchString(next)
	}
	return false
}

func bareWord(w string) string {
	return strings.ToLower(strings.Trim(w, quoteChars+trailingPunct))
}

func collapse(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}
