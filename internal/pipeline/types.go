package pipeline

import "fmt"

// CaptionEvent is a single timestamped caption line.
type CaptionEvent struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	// Index is the position of the event in the raw caption stream. It is
	// assigned by the normalizer.
	Index int `json:"index"`
}

// End returns the end time of the event in seconds.
func (e CaptionEvent) End() float64 {
	return e.Start + e.Duration
}

// MergedUnit is a run of adjacent caption events joined into one text block.
type MergedUnit struct {
	Text          string  `json:"text"`
	Start         float64 `json:"start"`
	End           float64 `json:"end"`
	SourceIndices []int   `json:"sourceIndices"`
}

// NaturalSegment is a run of merged units grouped by timing proximity. It is
// the unit of structural classification.
type NaturalSegment struct {
	Units []MergedUnit `json:"captions"`
	Start float64      `json:"start"`
	End   float64      `json:"end"`
}

// Duration returns End - Start.
func (s NaturalSegment) Duration() float64 {
	return s.End - s.Start
}

// SegmentType is one of the seven rhetorical structure categories.
type SegmentType int

const (
	Hook SegmentType = iota
	Background
	CorePoint
	Example
	Transition
	Emotional
	CallToAction
)

// SegmentTypes lists every structure type in display order.
var SegmentTypes = []SegmentType{Hook, Background, CorePoint, Example, Transition, Emotional, CallToAction}

var segmentTypeNames = [...]string{
	Hook:         "hook",
	Background:   "background",
	CorePoint:    "corePoint",
	Example:      "example",
	Transition:   "transition",
	Emotional:    "emotional",
	CallToAction: "callToAction",
}

var segmentTypeLabels = [...]string{
	Hook:         "Hook (grab attention)",
	Background:   "Background (set up context)",
	CorePoint:    "Core Point (main argument)",
	Example:      "Example (illustrate)",
	Transition:   "Transition (pivot)",
	Emotional:    "Emotional (amplify)",
	CallToAction: "Call To Action (prompt action)",
}

var segmentTypeShortLabels = [...]string{
	Hook:         "Hook",
	Background:   "Background",
	CorePoint:    "Core Point",
	Example:      "Example",
	Transition:   "Transition",
	Emotional:    "Emotional Amplification",
	CallToAction: "Call To Action",
}

// Valid reports whether t is one of the seven known types.
func (t SegmentType) Valid() bool {
	return t >= Hook && t <= CallToAction
}

func (t SegmentType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("SegmentType(%d)", int(t))
	}
	return segmentTypeNames[t]
}

// Label returns the descriptive display name of the type.
func (t SegmentType) Label() string {
	if !t.Valid() {
		return t.String()
	}
	return segmentTypeLabels[t]
}

// ShortLabel returns the compact display name used in timelines.
func (t SegmentType) ShortLabel() string {
	if !t.Valid() {
		return t.String()
	}
	return segmentTypeShortLabels[t]
}

// ParseSegmentType converts a type name such as "corePoint" into a SegmentType.
func ParseSegmentType(name string) (SegmentType, error) {
	for i, n := range segmentTypeNames {
		if n == name {
			return SegmentType(i), nil
		}
	}
	return 0, fmt.Errorf("unknown segment type %q", name)
}

func (t SegmentType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid segment type %d", int(t))
	}
	return []byte(segmentTypeNames[t]), nil
}

func (t *SegmentType) UnmarshalText(b []byte) error {
	parsed, err := ParseSegmentType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// StructureSegment is a classified natural segment.
type StructureSegment struct {
	Type         SegmentType `json:"type"`
	Start        float64     `json:"start"`
	End          float64     `json:"end"`
	Duration     float64     `json:"duration"`
	Text         string      `json:"text"`
	Intent       string      `json:"intent"`
	UserModified bool        `json:"userModified"`
}
