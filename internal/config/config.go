package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SegmentSettings holds the caption merging and natural segmentation parameters.
type SegmentSettings struct {
	MergeGapThreshold  float64 `yaml:"merge_gap_threshold"`
	MergeLengthLimit   int     `yaml:"merge_length_limit"`
	SegmentGap         float64 `yaml:"segment_gap"`
	MaxSegmentDuration float64 `yaml:"max_segment_duration"`
}

// ClassifySettings holds the time windows used by the structure rules.
// All values are in seconds.
type ClassifySettings struct {
	CallToActionWindow      float64 `yaml:"call_to_action_window"`
	HookKeywordWindow       float64 `yaml:"hook_keyword_window"`
	HookUnconditionalWindow float64 `yaml:"hook_unconditional_window"`
	TransitionMaxDuration   float64 `yaml:"transition_max_duration"`
	BackgroundMaxStart      float64 `yaml:"background_max_start"`
	CorePointMinDuration    float64 `yaml:"core_point_min_duration"`
	PromoteMinDuration      float64 `yaml:"promote_min_duration"`
	FirstHookWindow         float64 `yaml:"first_hook_window"`
}

// IntentRule maps high-signal trigger words to a more specific intent sentence.
type IntentRule struct {
	Triggers []string `yaml:"triggers"`
	Intent   string   `yaml:"intent"`
}

// IntentTemplate is the intent configuration of one structure type.
type IntentTemplate struct {
	Default string       `yaml:"default"`
	Rules   []IntentRule `yaml:"rules"`
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	Addr            string `yaml:"addr"`
	RateLimitPerMin int    `yaml:"rate_limit_per_min"`
	MaxBodyBytes    int64  `yaml:"max_body_bytes"`
}

// Config holds the full application configuration.
type Config struct {
	Segment  SegmentSettings  `yaml:"segment"`
	Classify ClassifySettings `yaml:"classify"`

	// FillerWords is keyed by language ("en", "zh").
	FillerWords map[string][]string `yaml:"filler_words"`
	// Keywords is keyed by structure type name ("hook", "corePoint", ...).
	Keywords map[string][]string `yaml:"keywords"`

	IntentLanguage string                               `yaml:"intent_language"`
	Intents        map[string]map[string]IntentTemplate `yaml:"intents"`

	Server ServerSettings `yaml:"server"`

	MaxConcurrent int `yaml:"max_concurrent"`
}

// Default returns a Config with the built-in thresholds and word tables.
func Default() *Config {
	return &Config{
		Segment: SegmentSettings{
			MergeGapThreshold:  0.5,
			MergeLengthLimit:   200,
			SegmentGap:         5,
			MaxSegmentDuration: 90,
		},
		Classify: ClassifySettings{
			CallToActionWindow:      60,
			HookKeywordWindow:       30,
			HookUnconditionalWindow: 15,
			TransitionMaxDuration:   20,
			BackgroundMaxStart:      120,
			CorePointMinDuration:    45,
			PromoteMinDuration:      40,
			FirstHookWindow:         30,
		},
		FillerWords:    defaultFillerWords(),
		Keywords:       defaultKeywords(),
		IntentLanguage: "en",
		Intents: map[string]map[string]IntentTemplate{
			"en": defaultIntentsEN(),
			"zh": defaultIntentsZH(),
		},
		Server: ServerSettings{
			Addr:            ":8090",
			RateLimitPerMin: 120,
			MaxBodyBytes:    10 << 20,
		},
		MaxConcurrent: 4,
	}
}

// Load reads a YAML file on top of the defaults. Fields absent from the file
// keep their default values. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

// AllFillers returns every filler word across languages, English first.
func (c *Config) AllFillers() []string {
	var out []string
	out = append(out, c.FillerWords["en"]...)
	for lang, words := range c.FillerWords {
		if lang == "en" {
			continue
		}
		out = append(out, words...)
	}
	return out
}

// AllKeywords returns the union of all structure keyword lists.
func (c *Config) AllKeywords() []string {
	var out []string
	for _, words := range c.Keywords {
		out = append(out, words...)
	}
	return out
}

// IntentTable returns the intent templates for the configured language. CJK
// language codes without their own table fall back to "zh", anything else
// to "en".
func (c *Config) IntentTable() map[string]IntentTemplate {
	lang := strings.ToLower(strings.TrimSpace(c.IntentLanguage))
	if t, ok := c.Intents[lang]; ok {
		return t
	}
	if IsCJK(lang) {
		if t, ok := c.Intents["zh"]; ok {
			return t
		}
	}
	return c.Intents["en"]
}

// normalize repairs non-positive thresholds and missing tables after a YAML overlay.
func (c *Config) normalize() {
	d := Default()

	if c.Segment.MergeGapThreshold <= 0 {
		c.Segment.MergeGapThreshold = d.Segment.MergeGapThreshold
	}
	if c.Segment.MergeLengthLimit <= 0 {
		c.Segment.MergeLengthLimit = d.Segment.MergeLengthLimit
	}
	if c.Segment.SegmentGap <= 0 {
		c.Segment.SegmentGap = d.Segment.SegmentGap
	}
	if c.Segment.MaxSegmentDuration <= 0 {
		c.Segment.MaxSegmentDuration = d.Segment.MaxSegmentDuration
	}

	for _, p := range []struct {
		v   *float64
		def float64
	}{
		{&c.Classify.CallToActionWindow, d.Classify.CallToActionWindow},
		{&c.Classify.HookKeywordWindow, d.Classify.HookKeywordWindow},
		{&c.Classify.HookUnconditionalWindow, d.Classify.HookUnconditionalWindow},
		{&c.Classify.TransitionMaxDuration, d.Classify.TransitionMaxDuration},
		{&c.Classify.BackgroundMaxStart, d.Classify.BackgroundMaxStart},
		{&c.Classify.CorePointMinDuration, d.Classify.CorePointMinDuration},
		{&c.Classify.PromoteMinDuration, d.Classify.PromoteMinDuration},
		{&c.Classify.FirstHookWindow, d.Classify.FirstHookWindow},
	} {
		if *p.v <= 0 {
			*p.v = p.def
		}
	}

	if c.FillerWords == nil {
		c.FillerWords = d.FillerWords
	}
	if c.Keywords == nil {
		c.Keywords = d.Keywords
	}
	if c.Intents == nil {
		c.Intents = d.Intents
	}
	c.IntentLanguage = strings.ToLower(strings.TrimSpace(c.IntentLanguage))
	if c.IntentLanguage == "" {
		c.IntentLanguage = "en"
	}

	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Server.RateLimitPerMin <= 0 {
		c.Server.RateLimitPerMin = d.Server.RateLimitPerMin
	}
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = d.Server.MaxBodyBytes
	}
	if c.MaxConcurrent <= 0 {
		c.MaxConcurrent = d.MaxConcurrent
	}
}
