package pipeline

import (
	"fmt"
	"log/slog"
	"math"

	"clipstruct/internal/config"
)

// segmentFacts is everything a structure rule may look at.
type segmentFacts struct {
	text          string
	start         float64
	end           float64
	duration      float64
	index         int
	total         int
	videoDuration float64 // <= 0 when unknown
}

func (f segmentFacts) isFirst() bool { return f.index == 0 }
func (f segmentFacts) isLast() bool  { return f.index == f.total-1 }

// rule assigns typ to a segment when match holds.
type rule struct {
	name  string
	typ   SegmentType
	match func(f segmentFacts) bool
}

// Classifier assigns a structure type and an intent to natural segments.
type Classifier struct {
	settings config.ClassifySettings
	keywords map[SegmentType]*keywordMatcher
	intents  *intentTable
	rules    []rule
}

// NewClassifier compiles the keyword and intent tables of cfg. Unknown type
// names in the tables are rejected.
func NewClassifier(cfg *config.Config) (*Classifier, error) {
	keywords := make(map[SegmentType]*keywordMatcher, len(SegmentTypes))
	for name, words := range cfg.Keywords {
		t, err := ParseSegmentType(name)
		if err != nil {
			return nil, fmt.Errorf("keywords: %w", err)
		}
		keywords[t] = newKeywordMatcher(words)
	}

	intents, err := newIntentTable(cfg.IntentTable())
	if err != nil {
		return nil, fmt.Errorf("intents: %w", err)
	}

	c := &Classifier{
		settings: cfg.Classify,
		keywords: keywords,
		intents:  intents,
	}
	c.rules = c.buildRules()
	return c, nil
}

// buildRules returns the structure rules in priority order. The first rule
// that matches decides the type.
func (c *Classifier) buildRules() []rule {
	s := c.settings
	return []rule{
		{"closing call to action", CallToAction, func(f segmentFacts) bool {
			return f.videoDuration > 0 &&
				f.end >= f.videoDuration-s.CallToActionWindow &&
				c.has(CallToAction, f.text)
		}},
		{"opening hook", Hook, func(f segmentFacts) bool {
			return f.start < s.HookUnconditionalWindow ||
				(f.start < s.HookKeywordWindow && c.has(Hook, f.text))
		}},
		{"short transition", Transition, func(f segmentFacts) bool {
			return f.duration < s.TransitionMaxDuration && c.has(Transition, f.text)
		}},
		{"emphatic emotion", Emotional, func(f segmentFacts) bool {
			return c.has(Emotional, f.text) && hasEmphaticPunctuation(f.text)
		}},
		{"example", Example, func(f segmentFacts) bool {
			return !f.isFirst() && c.has(Example, f.text)
		}},
		{"early background", Background, func(f segmentFacts) bool {
			return !f.isFirst() && f.start < s.BackgroundMaxStart && c.has(Background, f.text)
		}},
		{"long core point", CorePoint, func(f segmentFacts) bool {
			return f.duration > s.CorePointMinDuration && c.has(CorePoint, f.text)
		}},
	}
}

// has reports whether text contains a keyword of type t.
func (c *Classifier) has(t SegmentType, text string) bool {
	return c.keywords[t].matches(text)
}

// identify runs the rule table and falls back to position and length.
func (c *Classifier) identify(f segmentFacts) (SegmentType, string) {
	for _, r := range c.rules {
		if r.match(f) {
			return r.typ, r.name
		}
	}

	switch {
	case f.isFirst():
		return Hook, "first segment"
	case f.isLast():
		return CallToAction, "last segment"
	case f.duration > c.settings.CorePointMinDuration:
		return CorePoint, "long segment"
	case f.duration < c.settings.TransitionMaxDuration:
		return Transition, "short segment"
	default:
		return Background, "default"
	}
}

// Classify types every segment, attaches an intent and runs the
// post-processing pass once. videoDuration <= 0 means the length of the video
// is unknown, which disables the closing call-to-action rule.
func (c *Classifier) Classify(segments []NaturalSegment, videoDuration float64) ([]StructureSegment, error) {
	if len(segments) == 0 {
		return nil, fmt.Errorf("classify: %w", ErrEmptyInput)
	}
	if math.IsNaN(videoDuration) || math.IsInf(videoDuration, 0) {
		videoDuration = 0
	}

	out := make([]StructureSegment, 0, len(segments))
	for i, seg := range segments {
		f := segmentFacts{
			text:          unitsText(seg.Units),
			start:         seg.Start,
			end:           seg.End,
			duration:      seg.Duration(),
			index:         i,
			total:         len(segments),
			videoDuration: videoDuration,
		}

		typ, reason := c.identify(f)
		out = append(out, StructureSegment{
			Type:     typ,
			Start:    f.start,
			End:      f.end,
			Duration: f.duration,
			Text:     f.text,
			Intent:   c.intents.describe(typ, f.text),
		})

		slog.Debug("classified segment",
			"index", i+1,
			"type", typ.String(),
			"rule", reason,
			"start", fmt.Sprintf("%.1f", f.start),
			"end", fmt.Sprintf("%.1f", f.end))
	}

	c.postProcess(out)
	return out, nil
}

// postProcess fixes obvious ordering errors in place.
func (c *Classifier) postProcess(segs []StructureSegment) {
	if len(segs) == 0 {
		return
	}

	// Long backgrounds between two backgrounds become core points. Earlier
	// promotions affect later checks.
	for i := 1; i < len(segs)-1; i++ {
		prev, curr, next := segs[i-1], &segs[i], segs[i+1]
		if prev.Type == Background && curr.Type == Background && next.Type == Background &&
			curr.Duration > c.settings.PromoteMinDuration {
			c.retype(curr, CorePoint)
		}
	}

	if first := &segs[0]; first.Start < c.settings.FirstHookWindow && first.Type != Hook {
		c.retype(first, Hook)
	}

	if last := &segs[len(segs)-1]; last.Type != CallToAction && c.has(CallToAction, last.Text) {
		c.retype(last, CallToAction)
	}
}

func (c *Classifier) retype(seg *StructureSegment, t SegmentType) {
	slog.Debug("post-process retype", "from", seg.Type.String(), "to", t.String(),
		"start", fmt.Sprintf("%.1f", seg.Start))
	seg.Type = t
	seg.Intent = c.intents.describe(t, seg.Text)
}
