package pipeline

import (
	"math"
	"testing"

	"clipstruct/internal/config"
)

func defaultNormalizer() *Normalizer {
	cfg := config.Default()
	return NewNormalizer(cfg.AllFillers(), cfg.AllKeywords())
}

func TestNormalize_Empty(t *testing.T) {
	n := defaultNormalizer()
	if got := n.Normalize(nil); len(got) != 0 {
		t.Errorf("expected 0 events, got %d", len(got))
	}
}

func TestNormalize_RemovesFiller(t *testing.T) {
	n := NewNormalizer([]string{"um"}, nil)

	got := n.Normalize([]CaptionEvent{{Text: "um hello", Start: 0, Duration: 1}})
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got[0].Text != "hello" {
		t.Errorf("Text = %q, want 'hello'", got[0].Text)
	}
	if got[0].Start != 0 || got[0].Duration != 1 {
		t.Errorf("timing = [%f, %f], want [0, 1]", got[0].Start, got[0].Duration)
	}
}

func TestNormalize_DropsEmptyEventsAndKeepsIndex(t *testing.T) {
	n := NewNormalizer([]string{"um", "uh"}, nil)

	got := n.Normalize([]CaptionEvent{
		{Text: "um uh", Start: 0, Duration: 1},
		{Text: "   ", Start: 1, Duration: 1},
		{Text: "hello there", Start: 2, Duration: 1},
	})
	if len(got) != 1 {
		t.Fatalf("expected 1 event, got %d", len(got))
	}
	if got[0].Index != 2 {
		t.Errorf("Index = %d, want 2", got[0].Index)
	}
}

func TestNormalize_SanitizesTimings(t *testing.T) {
	n := NewNormalizer(nil, nil)

	got := n.Normalize([]CaptionEvent{
		{Text: "a", Start: math.NaN(), Duration: -3},
		{Text: "b", Start: math.Inf(1), Duration: 2},
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	if got[0].Start != 0 || got[0].Duration != 0 {
		t.Errorf("event 0 timing = [%f, %f], want [0, 0]", got[0].Start, got[0].Duration)
	}
	if got[1].Start != 0 || got[1].Duration != 2 {
		t.Errorf("event 1 timing = [%f, %f], want [0, 2]", got[1].Start, got[1].Duration)
	}
}

func TestClean(t *testing.T) {
	n := defaultNormalizer()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"case insensitive", "Um so here we go", "so here we go"},
		{"multi word filler", "you know it works", "it works"},
		{"filler inside word kept", "drum um beats", "drum beats"},
		{"prefix of longer word kept", "she likes it", "she likes it"},
		{"collapses whitespace", "  hello \t  world ", "hello world"},
		{"several fillers", "uh I mean it is basically done", "it is done"},
		{"cjk filler", "呃我们开始吧", "我们开始吧"},
		{"cjk filler mid text", "这个嗯很好", "这个很好"},
		{"only fillers", "um uh yeah", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.Clean(tt.text); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClean_ProtectsLongerSignalWords(t *testing.T) {
	tests := []struct {
		fillers   []string
		protected []string
		text      string
		want      string
	}{
		{[]string{"好"}, []string{"好奇"}, "好，这很好奇", "，这很好奇"},
		{[]string{"kind"}, []string{"kind of"}, "a kind of magic", "a kind of magic"},
		// Equal length is not protection: the filler wins.
		{[]string{"like"}, []string{"like"}, "please like this", "please this"},
	}
	for _, tt := range tests {
		n := NewNormalizer(tt.fillers, tt.protected)
		if got := n.Clean(tt.text); got != tt.want {
			t.Errorf("Clean(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestClean_NormalizesToNFC(t *testing.T) {
	n := NewNormalizer(nil, nil)
	if got := n.Clean("cafe\u0301"); got != "caf\u00e9" {
		t.Errorf("Clean = %q, want precomposed é", got)
	}
}
