package grok

import "grok/pkg/engine"

// Matches is the result of one successful Pattern.MatchAgainst call.
type Matches struct {
	pattern *Pattern
	raw     engine.Captures
}

// Pattern returns the pattern this result was produced from.
func (m *Matches) Pattern() *Pattern {
	return m.pattern
}

// Get returns the substring captured under displayKey. ok is false when the
// key is unknown to the pattern, when the underlying group did not
// participate in the match (its alternative branch was not taken), or when
// it matched the empty string — an absent and an empty capture are
// indistinguishable to a caller of Get, by design. Iter skips both cases
// alike, so it does not tell them apart either.
func (m *Matches) Get(displayKey string) (string, bool) {
	entry, ok := m.pattern.byKey[displayKey]
	if !ok {
		return "", false
	}
	value, ok := m.raw.ByName(entry.InternalID)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// Field is one entry yielded by Iter.
type Field struct {
	Key   string
	Value string
}

// Iter returns every display key that actually captured a non-empty
// substring in this match, in capture-table order. Superseded entries (an
// earlier occurrence of an alias that a later occurrence has since claimed)
// are never yielded, and neither are keys whose group did not participate in
// the match or matched the empty string.
func (m *Matches) Iter() []Field {
	var fields []Field
	for _, e := range m.pattern.table {
		if e.Superseded {
			continue
		}
		value, ok := m.raw.ByName(e.InternalID)
		if !ok || value == "" {
			continue
		}
		fields = append(fields, Field{Key: e.DisplayKey, Value: value})
	}
	return fields
}
