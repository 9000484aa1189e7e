package pipeline

import (
	"fmt"

	"clipstruct/internal/config"
)

// fallbackIntent is used for a type that has no configured template.
const fallbackIntent = "Purpose not yet analyzed"

type intentRule struct {
	triggers *keywordMatcher
	intent   string
}

type intentTemplate struct {
	def   string
	rules []intentRule
}

// intentTable produces the human-readable rationale of a structure type.
type intentTable struct {
	templates map[SegmentType]intentTemplate
}

func newIntentTable(cfg map[string]config.IntentTemplate) (*intentTable, error) {
	t := &intentTable{templates: make(map[SegmentType]intentTemplate, len(cfg))}
	for name, tmpl := range cfg {
		typ, err := ParseSegmentType(name)
		if err != nil {
			return nil, err
		}
		compiled := intentTemplate{def: tmpl.Default}
		for i, r := range tmpl.Rules {
			if r.Intent == "" {
				return nil, fmt.Errorf("%s rule %d has no intent", name, i+1)
			}
			compiled.rules = append(compiled.rules, intentRule{
				triggers: newKeywordMatcher(r.Triggers),
				intent:   r.Intent,
			})
		}
		t.templates[typ] = compiled
	}
	return t, nil
}

// describe returns the first rule intent whose trigger appears in text, or
// the default template of typ.
func (t *intentTable) describe(typ SegmentType, text string) string {
	tmpl, ok := t.templates[typ]
	if !ok {
		return fallbackIntent
	}
	for _, r := range tmpl.rules {
		if r.triggers.matches(text) {
			return r.intent
		}
	}
	if tmpl.def == "" {
		return fallbackIntent
	}
	return tmpl.def
}
