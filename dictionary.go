// Package grok implements a library for matching semi-structured text
// against named, composable regex fragments. A Dictionary holds named
// pattern definitions; compiling a template against it expands every
// %{NAME:alias:extract=definition} placeholder recursively and produces a
// Pattern that can be matched against arbitrary input.
package grok

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"grok/internal/compiler"
	"grok/internal/grokconfig"
	"grok/internal/patterndefs"
	"grok/internal/regexadapter/stdregexp"
	"grok/pkg/engine"
	"grok/pkg/grokerr"
)

// Dictionary is a named pattern store. It is safe for concurrent use: reads
// (Compile, Patterns) may run concurrently with each other and with writes
// (AddPattern).
type Dictionary struct {
	mu       sync.RWMutex
	patterns map[string]string

	config grokconfig.CompilerConfig
	engine engine.Compiler
}

// NewDictionary returns an empty dictionary using the default compiler
// configuration and the stdlib regexp engine.
func NewDictionary() *Dictionary {
	return newDictionary(grokconfig.Default())
}

// NewDictionaryWithDefaults returns a dictionary seeded with the bundled
// corpus of common named patterns (WORD, NUMBER, IPV4, TIMESTAMP_ISO8601,
// and similar).
func NewDictionaryWithDefaults() *Dictionary {
	d := NewDictionary()
	for name, def := range patterndefs.Defaults {
		d.AddPattern(name, def)
	}
	return d
}

// NewDictionaryFromConfig returns a dictionary configured per cfg, seeding
// the default corpus when cfg.LoadDefaultPatterns is set.
func NewDictionaryFromConfig(cfg grokconfig.CompilerConfig) *Dictionary {
	d := newDictionary(cfg)
	if cfg.LoadDefaultPatterns {
		for name, def := range patterndefs.Defaults {
			d.AddPattern(name, def)
		}
	}
	return d
}

func newDictionary(cfg grokconfig.CompilerConfig) *Dictionary {
	return &Dictionary{
		patterns: make(map[string]string),
		config:   cfg,
		engine:   selectEngine(cfg.Engine),
	}
}

func selectEngine(name string) engine.Compiler {
	switch name {
	case "", "stdregexp":
		return stdregexp.New()
	default:
		// Every other name, "pcre" included, falls back to the
		// always-available backend rather than
		// panicking at construction time; a back-end that cannot actually
		// compile a template still surfaces that at Compile time.
		return stdregexp.New()
	}
}

// AddPattern registers or replaces the named pattern's definition. It does
// not itself validate that definition resolves; unresolved or cyclic
// references are only detected when a template that reaches them is
// compiled.
func (d *Dictionary) AddPattern(name, definition string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.patterns[name] = definition
}

// Patterns returns a snapshot of the dictionary's named definitions.
func (d *Dictionary) Patterns() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[string]string, len(d.patterns))
	for k, v := range d.patterns {
		out[k] = v
	}
	return out
}

func (d *Dictionary) lookup(name string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	def, ok := d.patterns[name]
	return def, ok
}

// CompileOption customizes a single Compile call.
type CompileOption func(*compileSettings)

type compileSettings struct {
	opts   compiler.Options
	engine engine.Compiler
}

// WithNamedCapturesOnly suppresses capturing for placeholders that carry no
// alias, so only explicitly aliased occurrences appear in a match's results.
func WithNamedCapturesOnly() CompileOption {
	return func(s *compileSettings) {
		s.opts.NamedCapturesOnly = true
	}
}

// WithMaxRecursionDepth overrides the dictionary's configured recursion
// depth limit for one Compile call.
func WithMaxRecursionDepth(depth int) CompileOption {
	return func(s *compileSettings) {
		s.opts.MaxDepth = depth
	}
}

// WithEngine overrides the regex back-end used for one Compile call.
func WithEngine(e engine.Compiler) CompileOption {
	return func(s *compileSettings) {
		s.engine = e
	}
}

// Compile expands template against the dictionary and compiles the result
// into a Pattern, ready to match subjects.
func (d *Dictionary) Compile(template string, options ...CompileOption) (*Pattern, error) {
	settings := compileSettings{
		opts: compiler.Options{
			MaxDepth: d.config.MaxRecursionDepth,
		},
		engine: d.engine,
	}
	settings.opts.NamedCapturesOnly = d.config.NamedCapturesOnly

	for _, opt := range options {
		opt(&settings)
	}

	result, err := compiler.Compile(template, d.lookup, settings.opts)
	if err != nil {
		return nil, err
	}

	traceID := uuid.New().String()

	regex, err := settings.engine.Compile(result.Source)
	if err != nil {
		return nil, grokerr.NewRegexCompilation(result.Source, traceID, err)
	}

	if err := validateCaptureNames(result, regex, traceID); err != nil {
		return nil, err
	}

	return newPattern(result.Source, regex, result.Table), nil
}

// validateCaptureNames checks that every internal capture name the compiler
// allocated is actually reported by the compiled engine regex, catching a
// back-end that silently drops or renames groups.
func validateCaptureNames(result *compiler.Result, regex engine.Regex, traceID string) error {
	reported := make(map[string]bool, len(regex.CaptureNames()))
	for _, name := range regex.CaptureNames() {
		reported[name] = true
	}
	for _, entry := range result.Table {
		if !reported[entry.InternalID] {
			return grokerr.NewRegexCompilation(result.Source, traceID,
				fmt.Errorf("engine did not report capture group %q", entry.InternalID))
		}
	}
	return nil
}
