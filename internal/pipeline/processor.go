package pipeline

import (
	"fmt"
	"log/slog"

	"clipstruct/internal/config"
)

// Analysis is the full result of analyzing one video's captions.
type Analysis struct {
	Segments        []NaturalSegment   `json:"segments"`
	Structure       []StructureSegment `json:"structure"`
	PreprocessStats PreprocessStats    `json:"preprocessStats"`
	StructureStats  StructureStats     `json:"structureStats"`
}

// Analyzer runs the caption pipeline: normalize, merge, segment, classify.
// It holds only immutable configuration and is safe for concurrent use.
type Analyzer struct {
	normalizer *Normalizer
	merger     *ShortMerger
	segmenter  *Segmenter
	classifier *Classifier
}

// NewAnalyzer compiles all word tables of cfg once.
func NewAnalyzer(cfg *config.Config) (*Analyzer, error) {
	classifier, err := NewClassifier(cfg)
	if err != nil {
		return nil, fmt.Errorf("build classifier: %w", err)
	}

	return &Analyzer{
		normalizer: NewNormalizer(cfg.AllFillers(), cfg.AllKeywords()),
		merger:     NewShortMerger(&cfg.Segment),
		segmenter:  NewSegmenter(&cfg.Segment),
		classifier: classifier,
	}, nil
}

// Preprocess cleans raw caption events and groups them into natural segments.
// It fails with ErrEmptyInput when raw is empty. Input made only of filler
// words yields no segments.
func (a *Analyzer) Preprocess(raw []CaptionEvent) ([]NaturalSegment, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("preprocess: %w", ErrEmptyInput)
	}

	slog.Debug("preprocessing captions", "captions", len(raw))

	cleaned := a.normalizer.Normalize(raw)
	slog.Debug("filler words removed", "captions", len(cleaned), "dropped", len(raw)-len(cleaned))

	units := a.merger.MergeShort(cleaned)
	slog.Debug("short captions merged", "units", len(units))

	segments := a.segmenter.Segment(units)
	slog.Debug("natural segments detected", "segments", len(segments))

	return segments, nil
}

// Classify assigns structure types to segments. videoDuration <= 0 means unknown.
func (a *Analyzer) Classify(segments []NaturalSegment, videoDuration float64) ([]StructureSegment, error) {
	return a.classifier.Classify(segments, videoDuration)
}

// Analyze runs the full pipeline and collects statistics for both stages.
func (a *Analyzer) Analyze(raw []CaptionEvent, videoDuration float64) (*Analysis, error) {
	segments, err := a.Preprocess(raw)
	if err != nil {
		return nil, err
	}

	structure, err := a.Classify(segments, videoDuration)
	if err != nil {
		return nil, err
	}

	return &Analysis{
		Segments:        segments,
		Structure:       structure,
		PreprocessStats: PreprocessStatsOf(raw, segments),
		StructureStats:  StructureStatsOf(structure),
	}, nil
}
