package pipeline

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// span is a byte range [start, end) within a text.
type span struct {
	start, end int
}

func (s span) len() int { return s.end - s.start }

// keywordMatcher finds whole-word, case-insensitive occurrences of any word
// or phrase from a fixed list. The patterns are compiled once.
type keywordMatcher struct {
	re *regexp.Regexp
	// anchored holds one prefix-anchored pattern per word, longest first.
	anchored []*regexp.Regexp
}

// newKeywordMatcher compiles words into a single alternation. Longer words
// come first so that "so yeah" wins over "so" at the same position.
func newKeywordMatcher(words []string) *keywordMatcher {
	seen := make(map[string]struct{}, len(words))
	var cleaned []string
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		cleaned = append(cleaned, w)
	}
	if len(cleaned) == 0 {
		return &keywordMatcher{}
	}

	sort.SliceStable(cleaned, func(i, j int) bool {
		return utf8.RuneCountInString(cleaned[i]) > utf8.RuneCountInString(cleaned[j])
	})

	quoted := make([]string, len(cleaned))
	anchored := make([]*regexp.Regexp, len(cleaned))
	for i, w := range cleaned {
		quoted[i] = regexp.QuoteMeta(w)
		anchored[i] = regexp.MustCompile(`^(?i:` + quoted[i] + `)`)
	}
	return &keywordMatcher{
		re:       regexp.MustCompile(`(?i)(?:` + strings.Join(quoted, "|") + `)`),
		anchored: anchored,
	}
}

// find returns the non-overlapping word-bounded matches in text, left to right.
func (m *keywordMatcher) find(text string) []span {
	return m.scan(text, -1)
}

// matches reports whether text contains at least one word-bounded match.
func (m *keywordMatcher) matches(text string) bool {
	return len(m.scan(text, 1)) > 0
}

func (m *keywordMatcher) scan(text string, limit int) []span {
	if m == nil || m.re == nil || text == "" {
		return nil
	}

	var found []span
	for pos := 0; pos < len(text); {
		loc := m.re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		if s, ok := m.boundedAt(text, start); ok {
			found = append(found, s)
			if limit > 0 && len(found) >= limit {
				break
			}
			pos = s.end
			continue
		}
		// Retry one rune further on so "um" can still match in "drum um".
		_, size := utf8.DecodeRuneInString(text[start:])
		pos = start + max(size, 1)
	}
	return found
}

// boundedAt returns the longest word starting at start that is word-bounded,
// so "check" still matches in "check outside" next to "check out".
func (m *keywordMatcher) boundedAt(text string, start int) (span, bool) {
	for _, re := range m.anchored {
		loc := re.FindStringIndex(text[start:])
		if loc == nil {
			continue
		}
		s := span{start: start, end: start + loc[1]}
		if isWordBounded(text, s.start, s.end) {
			return s, true
		}
	}
	return span{}, false
}
