package captions

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"clipstruct/internal/pipeline"
)

// rawCaption is one entry of a plain caption array. Some exporters write the
// duration as "dur". Timings are read with parseNumber.
type rawCaption struct {
	Text     string          `json:"text"`
	Start    json.RawMessage `json:"start"`
	Duration json.RawMessage `json:"duration"`
	Dur      json.RawMessage `json:"dur,omitempty"`
}

// rawJSON3 is the timedtext json3 document as served by YouTube.
type rawJSON3 struct {
	WireMagic string     `json:"wireMagic,omitempty"`
	Events    []rawEvent `json:"events"`
}

type rawEvent struct {
	TStartMs    json.RawMessage `json:"tStartMs,omitempty"`
	DDurationMs json.RawMessage `json:"dDurationMs,omitempty"`
	Segs        []rawSeg        `json:"segs,omitempty"`
}

type rawSeg struct {
	Utf8 string `json:"utf8"`
}

// text joins the segment texts of the event.
func (e rawEvent) text() string {
	var b strings.Builder
	for _, s := range e.Segs {
		b.WriteString(s.Utf8)
	}
	return strings.TrimSpace(b.String())
}

func decodeJSON(data []byte) ([]pipeline.CaptionEvent, error) {
	var raw []rawCaption
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode caption array: %w", err)
	}

	events := make([]pipeline.CaptionEvent, 0, len(raw))
	for _, c := range raw {
		dur, ok := parseNumber(c.Duration)
		if !ok {
			dur, _ = parseNumber(c.Dur)
		}
		start, _ := parseNumber(c.Start)
		events = append(events, pipeline.CaptionEvent{
			Text:     c.Text,
			Start:    start,
			Duration: dur,
		})
	}
	return events, nil
}

func decodeJSON3(data []byte) ([]pipeline.CaptionEvent, error) {
	var raw rawJSON3
	if err := json.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode json3: %w", err)
	}

	var events []pipeline.CaptionEvent
	for _, ev := range raw.Events {
		// Window and newline-only events carry no text.
		text := ev.text()
		if text == "" {
			continue
		}
		events = append(events, pipeline.CaptionEvent{
			Text:     text,
			Start:    msToSeconds(ev.TStartMs),
			Duration: msToSeconds(ev.DDurationMs),
		})
	}
	return events, nil
}

// parseNumber reads a JSON number or numeric string. Missing, null,
// non-numeric and non-finite values give 0 and false.
func parseNumber(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}

	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		var str string
		if err := json.Unmarshal(raw, &str); err != nil {
			return 0, false
		}
		if v, err = strconv.ParseFloat(strings.TrimSpace(str), 64); err != nil {
			return 0, false
		}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func msToSeconds(raw json.RawMessage) float64 {
	ms, _ := parseNumber(raw)
	return ms / 1000
}
