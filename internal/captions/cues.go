package captions

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"clipstruct/internal/pipeline"
)

// markupTag matches inline cue markup such as <i>, </b>, <c.color> and
// WebVTT karaoke timestamps like <00:00:01.500>.
var markupTag = regexp.MustCompile(`<[^>]*>`)

// decodeCues parses SRT and WebVTT documents. Both are blocks separated by
// blank lines:
//
//	1
//	00:00:00,000 --> 00:00:01,830
//	I'm happy to
//	have you here today.
//
// Blocks without a timing line (sequence-only, WEBVTT header, NOTE, STYLE)
// are skipped. Multi-line cue text is joined with a space. A cue whose timing
// cannot be parsed keeps its text with zero start and duration.
func decodeCues(data []byte) ([]pipeline.CaptionEvent, error) {
	text := strings.TrimPrefix(string(data), "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var events []pipeline.CaptionEvent
	for n, block := range splitBlocks(text) {
		timing := -1
		for i, line := range block {
			if strings.Contains(line, "-->") {
				timing = i
				break
			}
		}
		if timing < 0 {
			continue
		}

		start, end, err := parseTiming(block[timing])
		if err != nil {
			slog.Warn("invalid cue timing, using 0", "block", n+1, "err", err)
			start, end = 0, 0
		}

		var parts []string
		for _, line := range block[timing+1:] {
			line = strings.TrimSpace(markupTag.ReplaceAllString(line, ""))
			if line != "" {
				parts = append(parts, line)
			}
		}
		if len(parts) == 0 {
			continue
		}

		events = append(events, pipeline.CaptionEvent{
			Text:     strings.Join(parts, " "),
			Start:    start,
			Duration: max(end-start, 0),
		})
	}
	return events, nil
}

// splitBlocks groups non-blank lines into blank-line separated blocks.
func splitBlocks(text string) [][]string {
	var blocks [][]string
	var current []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

// parseTiming parses "start --> end [cue settings]".
func parseTiming(line string) (float64, float64, error) {
	left, right, _ := strings.Cut(line, "-->")
	fields := strings.Fields(right)
	if len(fields) == 0 {
		return 0, 0, fmt.Errorf("timing line %q has no end time", line)
	}

	start, err := parseTimestamp(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, err
	}
	end, err := parseTimestamp(fields[0])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// parseTimestamp accepts HH:MM:SS,mmm (SRT) and [HH:]MM:SS.mmm (WebVTT).
func parseTimestamp(s string) (float64, error) {
	parts := strings.Split(strings.Replace(s, ",", ".", 1), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid timestamp %q", s)
	}

	secs, err := strconv.ParseFloat(parts[len(parts)-1], 64)
	if err != nil || secs < 0 {
		return 0, fmt.Errorf("invalid timestamp %q", s)
	}

	total := secs
	mult := 60.0
	for i := len(parts) - 2; i >= 0; i-- {
		v, err := strconv.Atoi(parts[i])
		if err != nil || v < 0 {
			return 0, fmt.Errorf("invalid timestamp %q", s)
		}
		total += float64(v) * mult
		mult *= 60
	}
	return total, nil
}
