package pipeline

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// FormatClock converts seconds to m:ss. Invalid or negative values print as 0:00.
func FormatClock(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return "0:00"
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// WriteTimeline writes a plain-text timeline of segments followed by the
// per-type overview in stats.
func WriteTimeline(w io.Writer, segments []StructureSegment, stats StructureStats) error {
	var sb strings.Builder

	sb.WriteString("Structure timeline\n")
	for _, seg := range segments {
		marker := ""
		if seg.UserModified {
			marker = " (edited)"
		}
		fmt.Fprintf(&sb, "%s-%s | %s | %s%s\n",
			FormatClock(seg.Start), FormatClock(seg.End), seg.Type.ShortLabel(), seg.Intent, marker)
	}

	fmt.Fprintf(&sb, "\nOverview: %d segments, %s total\n", stats.Total, FormatClock(stats.TotalDuration))
	for _, t := range SegmentTypes {
		ts, ok := stats.PerType[t]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "- %s: %d segments, %s (%.1f%%)\n",
			t.ShortLabel(), ts.Count, FormatClock(ts.Duration), ts.Percentage)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
