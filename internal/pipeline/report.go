package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Report wraps an analysis with the metadata needed to store or serve it.
type Report struct {
	ID            string    `json:"id"`
	Source        string    `json:"source,omitempty"`
	AnalyzedAt    time.Time `json:"analyzedAt"`
	VideoDuration float64   `json:"videoDuration,omitempty"`
	*Analysis
}

// NewReport stamps a with a fresh ID and the current time.
func NewReport(source string, videoDuration float64, a *Analysis) *Report {
	return &Report{
		ID:            uuid.NewString(),
		Source:        source,
		AnalyzedAt:    time.Now().UTC(),
		VideoDuration: sanitizeSeconds(videoDuration),
		Analysis:      a,
	}
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
