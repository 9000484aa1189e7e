package pipeline

import (
	"unicode"
	"unicode/utf8"

	"clipstruct/internal/config"
)

// emphaticPunctuation marks exclamations and questions, ASCII and full-width.
var emphaticPunctuation = map[rune]struct{}{
	'!': {}, '?': {},
	'！': {}, '？': {}, // ！？
}

// hasEmphaticPunctuation reports whether text contains an exclamation or
// question mark.
func hasEmphaticPunctuation(text string) bool {
	for _, r := range text {
		if _, ok := emphaticPunctuation[r]; ok {
			return true
		}
	}
	return false
}

// isSpacedWordRune reports whether r belongs to a script that separates words
// with spaces. Only such runes take part in word-boundary checks; CJK text is
// unspaced, so CJK runes never need a boundary.
func isSpacedWordRune(r rune) bool {
	if config.IsCJKRune(r) {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || unicode.Is(unicode.Mn, r)
}

// isWordBounded reports whether text[start:end] is a whole word or phrase:
// when a match edge is a spaced-script word rune, the rune just outside that
// edge must not be one.
func isWordBounded(text string, start, end int) bool {
	if start >= end {
		return false
	}

	first, _ := utf8.DecodeRuneInString(text[start:])
	if isSpacedWordRune(first) && start > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:start])
		if isSpacedWordRune(prev) {
			return false
		}
	}

	last, _ := utf8.DecodeLastRuneInString(text[:end])
	if isSpacedWordRune(last) && end < len(text) {
		next, _ := utf8.DecodeRuneInString(text[end:])
		if isSpacedWordRune(next) {
			return false
		}
	}

	return true
}
