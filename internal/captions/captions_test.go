package captions

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clipstruct/internal/pipeline"
)

func assertEvents(t *testing.T, got, want []pipeline.CaptionEvent) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d events, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDecode_JSONArray(t *testing.T) {
	data := `[
		{"text": "hello", "start": 0.5, "duration": 1.5},
		{"text": "no timing"},
		{"text": "legacy", "start": 3, "dur": 2},
		{"text": "null start", "start": null, "duration": 1}
	]`

	got, err := Decode(strings.NewReader(data), FormatJSON)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	assertEvents(t, got, []pipeline.CaptionEvent{
		{Text: "hello", Start: 0.5, Duration: 1.5},
		{Text: "no timing"},
		{Text: "legacy", Start: 3, Duration: 2},
		{Text: "null start", Duration: 1},
	})
}

const sampleJSON3 = `{
	"wireMagic": "pb3",
	"events": [
		{"tStartMs": 0, "dDurationMs": 200000, "id": 1, "wpWinPosId": 1},
		{"tStartMs": 1200, "dDurationMs": 2500, "segs": [{"utf8": "have you "}, {"utf8": "ever", "tOffsetMs": 400}]},
		{"tStartMs": 3700, "dDurationMs": 10, "aAppend": 1, "segs": [{"utf8": "\n"}]},
		{"tStartMs": 4000, "segs": [{"utf8": "no duration"}]}
	]
}`

func TestDecode_JSON3(t *testing.T) {
	want := []pipeline.CaptionEvent{
		{Text: "have you ever", Start: 1.2, Duration: 2.5},
		{Text: "no duration", Start: 4},
	}

	got, err := Decode(strings.NewReader(sampleJSON3), FormatJSON3)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	assertEvents(t, got, want)

	// A .json file holding a json3 object is sniffed.
	got, err = DecodeBytes([]byte(sampleJSON3), FormatJSON)
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	assertEvents(t, got, want)
}

func TestDecode_SRV1(t *testing.T) {
	data := `<?xml version="1.0" encoding="utf-8" ?>
<transcript>
	<text start="0.5" dur="2.1">it&amp;#39;s here</text>
	<text start="2.6" dur="1">   </text>
	<text start="3.6" dur="1.4">next line</text>
</transcript>`

	got, err := Decode(strings.NewReader(data), FormatSRV1)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	assertEvents(t, got, []pipeline.CaptionEvent{
		{Text: "it's here", Start: 0.5, Duration: 2.1},
		{Text: "next line", Start: 3.6, Duration: 1.4},
	})
}

func TestDecode_SRT(t *testing.T) {
	data := "1\r\n00:00:00,000 --> 00:00:01,500\r\nI'm happy to\r\nhave <i>you</i> here.\r\n\r\n" +
		"2\r\n00:01:02,250 --> 00:01:04,000\r\nSecond cue\r\n\r\n" +
		"3\r\n00:01:05,000 --> 00:01:06,000\r\n\r\n"

	got, err := Decode(strings.NewReader(data), FormatSRT)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	assertEvents(t, got, []pipeline.CaptionEvent{
		{Text: "I'm happy to have you here.", Start: 0, Duration: 1.5},
		{Text: "Second cue", Start: 62.25, Duration: 1.75},
	})
}

func TestDecode_VTT(t *testing.T) {
	data := `WEBVTT
Kind: captions

NOTE a comment

intro
00:01.000 --> 00:04.000 align:start position:0%
<c.colorE5E5E5>welcome</c><00:00:02.000><c> back</c>

01:00:00.000 --> 01:00:02.500
late cue
`

	got, err := Decode(strings.NewReader(data), FormatVTT)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	assertEvents(t, got, []pipeline.CaptionEvent{
		{Text: "welcome back", Start: 1, Duration: 3},
		{Text: "late cue", Start: 3600, Duration: 2.5},
	})
}

func TestDecode_MalformedTimingsBecomeZero(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
		want   []pipeline.CaptionEvent
	}{
		{
			name: "srt",
			data: "1\n00:00:01,000 --> 00:00:02,000\nfirst\n\n" +
				"2\n00:00:0x,000 --> 00:00:04,000\nsecond\n\n" +
				"3\n00:00:05,000 -->\nthird\n",
			format: FormatSRT,
			want: []pipeline.CaptionEvent{
				{Text: "first", Start: 1, Duration: 1},
				{Text: "second"},
				{Text: "third"},
			},
		},
		{
			name: "json",
			data: `[
				{"text": "a", "start": "oops", "duration": 1},
				{"text": "b", "start": "2.5", "duration": "x", "dur": 3},
				{"text": "c", "start": {}, "duration": true}
			]`,
			format: FormatJSON,
			want: []pipeline.CaptionEvent{
				{Text: "a", Duration: 1},
				{Text: "b", Start: 2.5, Duration: 3},
				{Text: "c"},
			},
		},
		{
			name:   "json3",
			data:   `{"events": [{"tStartMs": "1500", "dDurationMs": "n/a", "segs": [{"utf8": "x"}]}]}`,
			format: FormatJSON3,
			want:   []pipeline.CaptionEvent{{Text: "x", Start: 1.5}},
		},
		{
			name:   "srv1",
			data:   `<transcript><text start="abc" dur="2">x</text><text start="3" dur="">y</text></transcript>`,
			format: FormatSRV1,
			want: []pipeline.CaptionEvent{
				{Text: "x", Duration: 2},
				{Text: "y", Start: 3},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(tt.data), tt.format)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			assertEvents(t, got, tt.want)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"bad json", `[{"text": 1}]`, FormatJSON},
		{"bad json3", `{"events": 3}`, FormatJSON3},
		{"bad xml", `<transcript><text`, FormatSRV1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(tt.data), tt.format); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := DecodeBytes(nil, Format("ass")); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"00:00:01,830", 1.83},
		{"01:02:03.500", 3723.5},
		{"02:03.250", 123.25},
	}
	for _, tt := range tests {
		got, err := parseTimestamp(tt.in)
		if err != nil {
			t.Errorf("parseTimestamp(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseTimestamp(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "12", "1:2:3:4", "aa:00", "00:-1.0"} {
		if _, err := parseTimestamp(bad); err == nil {
			t.Errorf("parseTimestamp(%q) should fail", bad)
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"video.json", FormatJSON},
		{"video.en.JSON3", FormatJSON3},
		{"dir/video.srt", FormatSRT},
		{"video.vtt", FormatVTT},
		{"video.xml", FormatSRV1},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %q, %v; want %q", tt.path, got, err, tt.want)
		}
	}

	if _, err := FormatFromPath("video.mp4"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat(" SRT "); err != nil || f != FormatSRT {
		t.Errorf("ParseFormat(SRT) = %q, %v", f, err)
	}
	if _, err := ParseFormat("ass"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talk.srt")
	if err := os.WriteFile(path, []byte("1\n00:00:00,000 --> 00:00:02,000\nhello\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	assertEvents(t, got, []pipeline.CaptionEvent{{Text: "hello", Duration: 2}})

	if _, err := Load(filepath.Join(dir, "missing.srt")); err == nil {
		t.Error("expected error for missing file")
	}
}
