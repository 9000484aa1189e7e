package pipeline

import "math"

// TypeStats aggregates the segments of one structure type.
type TypeStats struct {
	Count      int     `json:"count"`
	Duration   float64 `json:"duration"`
	Percentage float64 `json:"percentage"`
}

// StructureStats summarizes a classified sequence.
type StructureStats struct {
	Total         int                       `json:"total"`
	TotalDuration float64                   `json:"totalDuration"`
	PerType       map[SegmentType]TypeStats `json:"perType"`
}

// PreprocessStats summarizes how much preprocessing condensed the captions.
type PreprocessStats struct {
	TotalOriginalCaptions int     `json:"totalOriginalCaptions"`
	TotalSegments         int     `json:"totalSegments"`
	TotalCaptions         int     `json:"totalCaptions"`
	AvgCaptionsPerSegment float64 `json:"avgCaptionsPerSegment"`
	CompressionRatio      float64 `json:"compressionRatio"`
}

// StructureStatsOf counts segments and durations per type. Percentages are
// shares of the total duration rounded to one decimal. Empty input yields a
// zeroed result.
func StructureStatsOf(segments []StructureSegment) StructureStats {
	stats := StructureStats{PerType: make(map[SegmentType]TypeStats)}

	for _, seg := range segments {
		ts := stats.PerType[seg.Type]
		ts.Count++
		ts.Duration += seg.Duration
		stats.PerType[seg.Type] = ts

		stats.Total++
		stats.TotalDuration += seg.Duration
	}

	for t, ts := range stats.PerType {
		ts.Percentage = percentage(ts.Duration, stats.TotalDuration)
		stats.PerType[t] = ts
	}
	return stats
}

// PreprocessStatsOf compares the raw caption count with the merged units in
// segments. CompressionRatio is the percentage of raw captions absorbed by
// filler removal and merging.
func PreprocessStatsOf(raw []CaptionEvent, segments []NaturalSegment) PreprocessStats {
	stats := PreprocessStats{
		TotalOriginalCaptions: len(raw),
		TotalSegments:         len(segments),
	}
	for _, seg := range segments {
		stats.TotalCaptions += len(seg.Units)
	}

	if stats.TotalSegments > 0 {
		stats.AvgCaptionsPerSegment = round1(float64(stats.TotalCaptions) / float64(stats.TotalSegments))
	}
	stats.CompressionRatio = percentage(float64(stats.TotalOriginalCaptions-stats.TotalCaptions), float64(stats.TotalOriginalCaptions))
	return stats
}

func percentage(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return round1(part / whole * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
