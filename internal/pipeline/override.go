package pipeline

import (
	"fmt"
	"math"
)

// Override is a manual edit of a classified segment. Nil fields keep the
// current value.
type Override struct {
	Type   *SegmentType `json:"type,omitempty"`
	Intent *string      `json:"intent,omitempty"`
	Start  *float64     `json:"start,omitempty"`
	End    *float64     `json:"end,omitempty"`
}

// Override returns a copy of s with the edit applied and UserModified set.
// Applying the same edit twice gives the same segment. Post-processing is
// never re-run on an edited segment.
func (s StructureSegment) Override(o Override) (StructureSegment, error) {
	out := s

	if o.Type != nil {
		if !o.Type.Valid() {
			return s, fmt.Errorf("%w: unknown type %d", ErrInvalidOverride, int(*o.Type))
		}
		out.Type = *o.Type
	}
	if o.Intent != nil {
		out.Intent = *o.Intent
	}
	if o.Start != nil {
		out.Start = *o.Start
	}
	if o.End != nil {
		out.End = *o.End
	}

	for _, v := range []float64{out.Start, out.End} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return s, fmt.Errorf("%w: bad time %v", ErrInvalidOverride, v)
		}
	}
	if out.End < out.Start {
		return s, fmt.Errorf("%w: end %.2f before start %.2f", ErrInvalidOverride, out.End, out.Start)
	}

	out.Duration = out.End - out.Start
	out.UserModified = true
	return out, nil
}
