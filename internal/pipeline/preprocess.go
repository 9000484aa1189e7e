package pipeline

import (
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalizer strips filler words from caption text. Filler and protected
// word patterns are compiled once at construction.
type Normalizer struct {
	fillers   *keywordMatcher
	protected *keywordMatcher
}

// NewNormalizer builds a normalizer for the given filler words. A filler
// occurrence that sits inside a longer protected word (a structural signal
// word) is left alone.
func NewNormalizer(fillers, protected []string) *Normalizer {
	return &Normalizer{
		fillers:   newKeywordMatcher(fillers),
		protected: newKeywordMatcher(protected),
	}
}

// Normalize cleans every event and drops the ones left without text. Each
// surviving event keeps its position in events as Index. Invalid timings are
// coerced to zero.
func (n *Normalizer) Normalize(events []CaptionEvent) []CaptionEvent {
	cleaned := make([]CaptionEvent, 0, len(events))
	for i, ev := range events {
		text := n.Clean(ev.Text)
		if text == "" {
			continue
		}
		cleaned = append(cleaned, CaptionEvent{
			Text:     text,
			Start:    sanitizeSeconds(ev.Start),
			Duration: sanitizeSeconds(ev.Duration),
			Index:    i,
		})
	}
	return cleaned
}

// Clean removes filler words from a single caption text, collapses
// whitespace runs and trims the result.
func (n *Normalizer) Clean(text string) string {
	text = norm.NFC.String(text)

	fillers := n.fillers.find(text)
	if len(fillers) == 0 {
		return collapseSpaces(text)
	}
	guards := n.protected.find(text)

	var b strings.Builder
	last := 0
	for _, f := range fillers {
		if insideLongerSpan(f, guards) {
			continue
		}
		b.WriteString(text[last:f.start])
		last = f.end
	}
	b.WriteString(text[last:])

	return collapseSpaces(b.String())
}

// insideLongerSpan reports whether s lies within one of spans that is
// strictly longer than s.
func insideLongerSpan(s span, spans []span) bool {
	for _, g := range spans {
		if g.start <= s.start && s.end <= g.end && g.len() > s.len() {
			return true
		}
	}
	return false
}

func collapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// sanitizeSeconds turns NaN, infinite and negative timings into zero.
func sanitizeSeconds(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
