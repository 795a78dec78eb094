//go:build pcre

// Package pcreengine is an optional engine back-end built on the cgo PCRE
// binding. It is only compiled in with the "pcre" build tag, since it
// requires a system libpcre and a C toolchain; the default build uses
// internal/regexadapter/stdregexp instead.
package pcreengine

import (
	"regexp"

	"github.com/elmeyer/go-pcre"

	"grok/pkg/engine"
)

// namedGroup extracts the names bound by PCRE/RE2-compatible "(?P<name>"
// subpatterns, in the order they appear in the source. The PCRE binding
// exposes group names only through name-to-index lookups on a successful
// match (Matcher.name2index is unexported), never as a complete list, so
// CaptureNames recovers the list from the source text the compiler itself
// assembled.
var namedGroup = regexp.MustCompile(`\(\?P<([A-Za-z_][A-Za-z0-9_]*)>`)

// Adapter implements pkg/engine.Compiler using PCRE named subpatterns
// ("(?P<name>...)" is accepted by PCRE with the same syntax the rest of this
// module assembles).
type Adapter struct{}

// New returns a PCRE-backed engine adapter.
func New() Adapter {
	return Adapter{}
}

// Compile implements engine.Compiler.
func (Adapter) Compile(source string) (engine.Regex, error) {
	re, err := pcre.Compile(source, 0)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, m := range namedGroup.FindAllStringSubmatch(source, -1) {
		names = append(names, m[1])
	}

	return &Regex{re: re, source: source, names: names}, nil
}

// Regex implements pkg/engine.Regex over a PCRE *pcre.Regexp.
type Regex struct {
	re     *pcre.Regexp
	source string
	names  []string
}

// Source implements engine.Regex.
func (r *Regex) Source() string {
	return r.source
}

// CaptureNames implements engine.Regex. It lists only the named groups, in
// the order their "(?P<name>" openers appear in the source; unnamed groups
// are not listed, so positions in the result do not follow group numbers
// when the source also has unnamed groups.
func (r *Regex) CaptureNames() []string {
	return r.names
}

// Match implements engine.Regex.
func (r *Regex) Match(subject string) (engine.Captures, bool) {
	matcher := r.re.MatcherString(subject, 0)
	if !matcher.Matches() {
		return nil, false
	}
	return &Captures{matcher: matcher}, true
}

// Captures implements pkg/engine.Captures over one PCRE Matcher result.
type Captures struct {
	matcher *pcre.Matcher
}

// ByName implements engine.Captures.
func (c *Captures) ByName(name string) (string, bool) {
	present, err := c.matcher.NamedPresent(name)
	if err != nil || !present {
		return "", false
	}
	value, err := c.matcher.NamedString(name)
	if err != nil {
		return "", false
	}
	return value, true
}
