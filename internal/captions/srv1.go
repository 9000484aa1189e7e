package captions

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"clipstruct/internal/pipeline"
)

// rawTranscript is the timedtext srv1 document:
//
//	<transcript><text start="1.2" dur="3.4">Hello</text></transcript>
type rawTranscript struct {
	XMLName xml.Name  `xml:"transcript"`
	Texts   []rawText `xml:"text"`
}

type rawText struct {
	Start string `xml:"start,attr"`
	Dur   string `xml:"dur,attr"`
	Body  string `xml:",chardata"`
}

func decodeSRV1(data []byte) ([]pipeline.CaptionEvent, error) {
	var raw rawTranscript
	if err := xml.NewDecoder(bytes.NewReader(data)).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode srv1: %w", err)
	}

	var events []pipeline.CaptionEvent
	for _, t := range raw.Texts {
		// srv1 bodies are HTML-escaped a second time inside the XML.
		text := strings.TrimSpace(html.UnescapeString(t.Body))
		if text == "" {
			continue
		}
		events = append(events, pipeline.CaptionEvent{
			Text:     text,
			Start:    parseAttrSeconds(t.Start),
			Duration: parseAttrSeconds(t.Dur),
		})
	}
	return events, nil
}

// parseAttrSeconds parses a seconds attribute, giving 0 when it is missing or
// malformed.
func parseAttrSeconds(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
