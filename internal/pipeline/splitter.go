package pipeline

import "clipstruct/internal/config"

// Segmenter groups merged units into natural segments at long pauses and
// splits segments that run too long.
type Segmenter struct {
	SegmentGap         float64
	MaxSegmentDuration float64
}

// NewSegmenter creates a segmenter from segment settings.
func NewSegmenter(settings *config.SegmentSettings) *Segmenter {
	return &Segmenter{
		SegmentGap:         settings.SegmentGap,
		MaxSegmentDuration: settings.MaxSegmentDuration,
	}
}

// newNaturalSegment bounds units by their earliest start and latest end.
func newNaturalSegment(units []MergedUnit) NaturalSegment {
	seg := NaturalSegment{
		Units: units,
		Start: units[0].Start,
		End:   units[0].End,
	}
	for _, u := range units[1:] {
		seg.Start = min(seg.Start, u.Start)
		seg.End = max(seg.End, u.End)
	}
	return seg
}

// Segment walks units in order and closes a segment whenever the pause to the
// next unit is at least SegmentGap. Overlong segments are then re-split.
func (s *Segmenter) Segment(units []MergedUnit) []NaturalSegment {
	if len(units) == 0 {
		return nil
	}

	var segments []NaturalSegment
	var current []MergedUnit

	for i, u := range units {
		current = append(current, u)

		isLast := i == len(units)-1
		if isLast || units[i+1].Start-u.End >= s.SegmentGap {
			segments = append(segments, newNaturalSegment(current))
			current = nil
		}
	}

	return s.splitOverlong(segments)
}

func (s *Segmenter) splitOverlong(segments []NaturalSegment) []NaturalSegment {
	out := make([]NaturalSegment, 0, len(segments))
	for _, seg := range segments {
		if seg.Duration() <= s.MaxSegmentDuration || len(seg.Units) <= 1 {
			out = append(out, seg)
			continue
		}
		out = append(out, s.splitSegment(seg)...)
	}
	return out
}

// splitSegment cuts seg into sub-segments of at most MaxSegmentDuration. A
// unit that would push the running sub-segment past the limit opens a new
// one, and a sub-segment that reaches the limit is closed. Only a single unit
// longer than the limit on its own can exceed it.
func (s *Segmenter) splitSegment(seg NaturalSegment) []NaturalSegment {
	var parts []NaturalSegment
	var current []MergedUnit

	for _, u := range seg.Units {
		if len(current) > 0 {
			grown := newNaturalSegment(append(current[:len(current):len(current)], u))
			if grown.Duration() > s.MaxSegmentDuration {
				parts = append(parts, newNaturalSegment(current))
				current = nil
			}
		}

		current = append(current, u)

		if newNaturalSegment(current).Duration() >= s.MaxSegmentDuration {
			parts = append(parts, newNaturalSegment(current))
			current = nil
		}
	}

	if len(current) > 0 {
		parts = append(parts, newNaturalSegment(current))
	}
	return parts
}
