package pipeline

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"clipstruct/internal/config"
)

func defaultMerger() *ShortMerger {
	return NewShortMerger(&config.Default().Segment)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewShortMerger(t *testing.T) {
	m := defaultMerger()
	if m.GapThreshold != 0.5 {
		t.Errorf("GapThreshold = %f, want 0.5", m.GapThreshold)
	}
	if m.LengthLimit != 200 {
		t.Errorf("LengthLimit = %d, want 200", m.LengthLimit)
	}
}

func TestMergeShort_Empty(t *testing.T) {
	m := defaultMerger()
	if got := m.MergeShort(nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}

func TestMergeShort_SmallGapMerges(t *testing.T) {
	m := defaultMerger()

	units := m.MergeShort([]CaptionEvent{
		{Text: "hello", Start: 0, Duration: 1, Index: 0},
		{Text: "world", Start: 1.2, Duration: 1, Index: 1},
	})
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	u := units[0]
	if u.Text != "hello world" {
		t.Errorf("Text = %q, want 'hello world'", u.Text)
	}
	if u.Start != 0 || !approxEqual(u.End, 2.2) {
		t.Errorf("timing = [%f, %f], want [0, 2.2]", u.Start, u.End)
	}
	if !reflect.DeepEqual(u.SourceIndices, []int{0, 1}) {
		t.Errorf("SourceIndices = %v, want [0 1]", u.SourceIndices)
	}
}

func TestMergeShort_SourceIndices(t *testing.T) {
	m := defaultMerger()

	tests := []struct {
		name    string
		indices []int
		want    []int
	}{
		{"normalized events keep their index", []int{0, 2, 5}, []int{0, 2, 5}},
		{"unset indices fall back to position", []int{0, 0, 0}, []int{0, 1, 2}},
		{"decreasing indices fall back to position", []int{3, 1, 2}, []int{0, 1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := make([]CaptionEvent, len(tt.indices))
			for i, idx := range tt.indices {
				events[i] = CaptionEvent{Text: "word", Start: float64(i), Duration: 1, Index: idx}
			}
			units := m.MergeShort(events)
			if len(units) != 1 {
				t.Fatalf("expected 1 unit, got %d", len(units))
			}
			if !reflect.DeepEqual(units[0].SourceIndices, tt.want) {
				t.Errorf("SourceIndices = %v, want %v", units[0].SourceIndices, tt.want)
			}
		})
	}
}

func TestMergeShort_GapAtThresholdSplits(t *testing.T) {
	m := defaultMerger()

	units := m.MergeShort([]CaptionEvent{
		{Text: "first", Start: 0, Duration: 1},
		{Text: "second", Start: 1.5, Duration: 1},
	})
	if len(units) != 2 {
		t.Fatalf("expected 2 units (gap == threshold), got %d", len(units))
	}
}

func TestMergeShort_LengthLimit(t *testing.T) {
	m := &ShortMerger{GapThreshold: 0.5, LengthLimit: 10}

	units := m.MergeShort([]CaptionEvent{
		{Text: "abcd", Start: 0, Duration: 1, Index: 0},
		{Text: "efgh", Start: 1, Duration: 1, Index: 1},
		{Text: "ij", Start: 2, Duration: 1, Index: 2},
	})
	if len(units) != 2 {
		t.Fatalf("expected 2 units, got %d", len(units))
	}
	if units[0].Text != "abcd efgh" {
		t.Errorf("units[0].Text = %q, want 'abcd efgh'", units[0].Text)
	}
	if !reflect.DeepEqual(units[1].SourceIndices, []int{2}) {
		t.Errorf("units[1].SourceIndices = %v, want [2]", units[1].SourceIndices)
	}
}

func TestMergeShort_LengthCountsRunes(t *testing.T) {
	m := &ShortMerger{GapThreshold: 0.5, LengthLimit: 6}

	// 2 + 1 + 2 = 5 runes even though the bytes are far more.
	units := m.MergeShort([]CaptionEvent{
		{Text: "你好", Start: 0, Duration: 1},
		{Text: "世界", Start: 1, Duration: 1},
	})
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
}

func TestMergeShort_OverlongEventKeptWhole(t *testing.T) {
	m := &ShortMerger{GapThreshold: 0.5, LengthLimit: 10}
	long := strings.Repeat("x", 25)

	units := m.MergeShort([]CaptionEvent{
		{Text: "hi", Start: 0, Duration: 1},
		{Text: long, Start: 1, Duration: 1},
		{Text: "yo", Start: 2, Duration: 1},
	})
	if len(units) != 3 {
		t.Fatalf("expected 3 units, got %d", len(units))
	}
	if units[1].Text != long {
		t.Errorf("long event should stay intact, got %q", units[1].Text)
	}
}

func TestMergeShort_OverlappingCaptionsMerge(t *testing.T) {
	m := defaultMerger()

	// Auto-generated captions often overlap: a negative gap still merges.
	units := m.MergeShort([]CaptionEvent{
		{Text: "rolling", Start: 0, Duration: 3},
		{Text: "captions", Start: 2, Duration: 3},
	})
	if len(units) != 1 {
		t.Fatalf("expected 1 unit, got %d", len(units))
	}
	if units[0].End != 5 {
		t.Errorf("End = %f, want 5", units[0].End)
	}
}

func mergeFixture() []CaptionEvent {
	return []CaptionEvent{
		{Text: "so this is", Start: 0, Duration: 1, Index: 0},
		{Text: "a short run", Start: 1.1, Duration: 1, Index: 1},
		{Text: "of captions", Start: 2.3, Duration: 1, Index: 2},
		{Text: "after a pause", Start: 5, Duration: 2, Index: 3},
		{Text: "that keeps going", Start: 7.2, Duration: 2, Index: 4},
		{Text: strings.Repeat("long ", 40), Start: 9.3, Duration: 4, Index: 5},
		{Text: "tail", Start: 13.4, Duration: 1, Index: 6},
	}
}

func TestMergeUnits_Idempotent(t *testing.T) {
	m := defaultMerger()

	once := m.MergeShort(mergeFixture())
	twice := m.MergeUnits(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merging twice changed the result:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestMergeShort_TextRoundTrip(t *testing.T) {
	m := defaultMerger()
	events := mergeFixture()

	units := m.MergeShort(events)

	var want []string
	for _, ev := range events {
		want = append(want, ev.Text)
	}
	if got := unitsText(units); got != strings.Join(want, " ") {
		t.Errorf("unit texts do not round-trip:\ngot:  %q\nwant: %q", got, strings.Join(want, " "))
	}
}

func TestMergeShort_CoversEveryEventOnce(t *testing.T) {
	m := defaultMerger()
	events := mergeFixture()

	var seen []int
	for _, u := range m.MergeShort(events) {
		seen = append(seen, u.SourceIndices...)
	}
	if len(seen) != len(events) {
		t.Fatalf("expected %d indices, got %d", len(events), len(seen))
	}
	for i, idx := range seen {
		if idx != i {
			t.Errorf("seen[%d] = %d, want %d", i, idx, i)
		}
	}
}

func TestMergeUnits_DoesNotAliasInput(t *testing.T) {
	m := defaultMerger()
	in := []MergedUnit{{Text: "a", Start: 0, End: 1, SourceIndices: []int{0}}}

	out := m.MergeUnits(in)
	out[0].SourceIndices[0] = 99
	if in[0].SourceIndices[0] != 0 {
		t.Error("MergeUnits output shares SourceIndices with its input")
	}
}
