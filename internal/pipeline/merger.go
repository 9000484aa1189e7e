package pipeline

import (
	"strings"
	"unicode/utf8"

	"clipstruct/internal/config"
)

// ShortMerger joins adjacent short captions into merged units.
type ShortMerger struct {
	GapThreshold float64
	LengthLimit  int
}

// NewShortMerger creates a merger from segment settings.
func NewShortMerger(settings *config.SegmentSettings) *ShortMerger {
	return &ShortMerger{
		GapThreshold: settings.MergeGapThreshold,
		LengthLimit:  settings.MergeLengthLimit,
	}
}

// unitFromEvent wraps a single event as a merged unit.
func unitFromEvent(ev CaptionEvent) MergedUnit {
	return MergedUnit{
		Text:          ev.Text,
		Start:         ev.Start,
		End:           ev.End(),
		SourceIndices: []int{ev.Index},
	}
}

func (m *ShortMerger) canMerge(current, next MergedUnit) (bool, string) {
	gap := next.Start - current.End
	if gap >= m.GapThreshold {
		return false, "gap too large"
	}

	mergedLen := utf8.RuneCountInString(current.Text) + 1 + utf8.RuneCountInString(next.Text)
	if mergedLen >= m.LengthLimit {
		return false, "text too long"
	}

	return true, ""
}

func mergeTwoUnits(current, next MergedUnit) MergedUnit {
	indices := make([]int, 0, len(current.SourceIndices)+len(next.SourceIndices))
	indices = append(indices, current.SourceIndices...)
	indices = append(indices, next.SourceIndices...)

	return MergedUnit{
		Text:          current.Text + " " + next.Text,
		Start:         current.Start,
		End:           next.End,
		SourceIndices: indices,
	}
}

// MergeShort merges runs of caption events whose gap is below GapThreshold
// while the joined text stays under LengthLimit runes. Single events are never
// split, so one that is already too long becomes a unit of its own.
//
// SourceIndices come from CaptionEvent.Index as set by the Normalizer. When
// the indices are not strictly increasing (events built without it), the
// position in events is used instead.
func (m *ShortMerger) MergeShort(events []CaptionEvent) []MergedUnit {
	positional := !indicesIncreasing(events)
	units := make([]MergedUnit, len(events))
	for i, ev := range events {
		if positional {
			ev.Index = i
		}
		units[i] = unitFromEvent(ev)
	}
	return m.MergeUnits(units)
}

func indicesIncreasing(events []CaptionEvent) bool {
	for i := 1; i < len(events); i++ {
		if events[i].Index <= events[i-1].Index {
			return false
		}
	}
	return true
}

// MergeUnits applies the merge rule to already merged units. Running it on
// its own output returns the same units.
func (m *ShortMerger) MergeUnits(units []MergedUnit) []MergedUnit {
	if len(units) == 0 {
		return nil
	}

	var merged []MergedUnit
	current := cloneUnit(units[0])

	for _, next := range units[1:] {
		if ok, _ := m.canMerge(current, next); ok {
			current = mergeTwoUnits(current, next)
			continue
		}
		merged = append(merged, current)
		current = cloneUnit(next)
	}

	return append(merged, current)
}

func cloneUnit(u MergedUnit) MergedUnit {
	u.SourceIndices = append([]int(nil), u.SourceIndices...)
	return u
}

// unitsText joins unit texts with a single space.
func unitsText(units []MergedUnit) string {
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = u.Text
	}
	return strings.Join(parts, " ")
}
