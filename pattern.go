package grok

import (
	"grok/internal/capture"
	"grok/pkg/engine"
)

// Pattern is a compiled template: an assembled regex plus the capture table
// needed to project raw engine captures back onto display keys.
type Pattern struct {
	source string
	regex  engine.Regex
	table  []*capture.Entry
	byKey  map[string]*capture.Entry
}

func newPattern(source string, regex engine.Regex, table []*capture.Entry) *Pattern {
	byKey := make(map[string]*capture.Entry, len(table))
	for _, e := range table {
		if !e.Superseded {
			byKey[e.DisplayKey] = e
		}
	}
	return &Pattern{source: source, regex: regex, table: table, byKey: byKey}
}

// Source returns the regex source the template was compiled to, in the
// selected engine's own syntax.
func (p *Pattern) Source() string {
	return p.source
}

// CaptureNames returns the display keys a successful match can be queried
// for, in capture-table order. A key shared by several aliased occurrences
// appears once, at the position of its last occurrence.
func (p *Pattern) CaptureNames() []string {
	names := make([]string, 0, len(p.byKey))
	for _, e := range p.table {
		if e.Superseded {
			continue
		}
		names = append(names, e.DisplayKey)
	}
	return names
}

// MatchAgainst runs the pattern against subject. The second return value is
// false when subject does not match at all.
func (p *Pattern) MatchAgainst(subject string) (*Matches, bool) {
	raw, ok := p.regex.Match(subject)
	if !ok {
		return nil, false
	}
	return &Matches{pattern: p, raw: raw}, true
}
