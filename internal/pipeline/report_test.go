package pipeline

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/google/uuid"
)

func TestNewReport(t *testing.T) {
	a := defaultAnalyzer(t)
	analysis, err := a.Analyze(sampleCaptions(), 70)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	r := NewReport("talk.srt", 70, analysis)
	if _, err := uuid.Parse(r.ID); err != nil {
		t.Errorf("ID %q is not a UUID: %v", r.ID, err)
	}
	if r.AnalyzedAt.IsZero() {
		t.Error("AnalyzedAt should be set")
	}

	other := NewReport("talk.srt", 70, analysis)
	if other.ID == r.ID {
		t.Error("reports should get distinct IDs")
	}
}

func TestReport_WriteJSON(t *testing.T) {
	a := defaultAnalyzer(t)
	analysis, err := a.Analyze(sampleCaptions(), 70)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	var buf bytes.Buffer
	if err := NewReport("talk.srt", math.NaN(), analysis).WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded struct {
		ID            string             `json:"id"`
		Source        string             `json:"source"`
		VideoDuration float64            `json:"videoDuration"`
		Structure     []StructureSegment `json:"structure"`
		Segments      []struct {
			Captions []MergedUnit `json:"captions"`
		} `json:"segments"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Unmarshal: %v\n%s", err, buf.String())
	}
	if decoded.Source != "talk.srt" {
		t.Errorf("Source = %q", decoded.Source)
	}
	if decoded.VideoDuration != 0 {
		t.Errorf("NaN duration should be written as 0, got %v", decoded.VideoDuration)
	}
	if len(decoded.Structure) != 4 || decoded.Structure[0].Type != Hook {
		t.Errorf("structure not embedded: %+v", decoded.Structure)
	}
	if len(decoded.Segments) != 4 || len(decoded.Segments[1].Captions) != 1 {
		t.Errorf("segments not embedded: %+v", decoded.Segments)
	}
}
