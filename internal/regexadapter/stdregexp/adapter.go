// Package stdregexp is the default engine back-end, wrapping the standard
// library's RE2-based regexp package. It is always available and requires no
// build tag, unlike internal/regexadapter/pcreengine.
package stdregexp

import (
	"regexp"

	"grok/pkg/engine"
)

// Adapter implements pkg/engine.Compiler using regexp.Compile.
type Adapter struct{}

// New returns a stdlib-backed engine adapter.
func New() Adapter {
	return Adapter{}
}

// Compile implements engine.Compiler.
func (Adapter) Compile(source string) (engine.Regex, error) {
	re, err := regexp.Compile(source)
	if err != nil {
		return nil, err
	}
	return &Regex{re: re}, nil
}

// Regex implements pkg/engine.Regex over a *regexp.Regexp.
type Regex struct {
	re *regexp.Regexp
}

// Source implements engine.Regex.
func (r *Regex) Source() string {
	return r.re.String()
}

// CaptureNames implements engine.Regex.
func (r *Regex) CaptureNames() []string {
	names := r.re.SubexpNames()
	if len(names) == 0 {
		return nil
	}
	return names[1:]
}

// Match implements engine.Regex.
func (r *Regex) Match(subject string) (engine.Captures, bool) {
	idx := r.re.FindStringSubmatchIndex(subject)
	if idx == nil {
		return nil, false
	}
	return &Captures{re: r.re, subject: subject, idx: idx}, true
}

// Captures implements pkg/engine.Captures over one FindStringSubmatchIndex
// result.
type Captures struct {
	re      *regexp.Regexp
	subject string
	idx     []int
}

// ByName implements engine.Captures.
func (c *Captures) ByName(name string) (string, bool) {
	for i, n := range c.re.SubexpNames() {
		if n != name || i == 0 {
			continue
		}
		start, end := c.idx[2*i], c.idx[2*i+1]
		if start < 0 || end < 0 {
			return "", false
		}
		return c.subject[start:end], true
	}
	return "", false
}
