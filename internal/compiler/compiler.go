// Package compiler recursively expands a grok template against a pattern
// dictionary into a single flat regex source string with uniquely named
// capture groups, enforcing the depth/cycle limits from the pattern-expression
// grammar.
package compiler

import (
	"strings"

	"grok/internal/capture"
	"grok/internal/token"
	"grok/pkg/grokerr"
)

// DefaultMaxDepth is used when Options.MaxDepth is zero.
const DefaultMaxDepth = 128

// Lookup resolves a dictionary name to its definition string.
type Lookup func(name string) (string, bool)

// Options controls one Compile call.
type Options struct {
	// NamedCapturesOnly suppresses capturing for placeholders that carry no
	// alias: only aliased occurrences (and bare occurrences when this is
	// false) produce named groups.
	NamedCapturesOnly bool

	// MaxDepth bounds recursive expansion. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Result is the output of a successful Compile: the assembled regex source
// and the ordered capture table describing every occurrence that produced a
// named group.
type Result struct {
	Source string
	Table  []*capture.Entry
}

// Compile expands template against lookup and returns the assembled regex
// source plus capture metadata, or a *grokerr.Error.
func Compile(template string, lookup Lookup, opts Options) (*Result, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	c := &state{
		lookup:            lookup,
		alloc:             capture.New(),
		namedCapturesOnly: opts.NamedCapturesOnly,
		maxDepth:          maxDepth,
		visiting:          make(map[string]bool),
	}

	var buf strings.Builder
	if err := c.expand(template, 0, &buf); err != nil {
		return nil, err
	}

	return &Result{Source: buf.String(), Table: c.alloc.Table()}, nil
}

type state struct {
	lookup            Lookup
	alloc             *capture.Allocator
	namedCapturesOnly bool
	maxDepth          int

	// visiting is the set of (name, resolved-definition) pairs currently on
	// the expansion call stack, used to detect self- or mutually-recursive
	// definitions. It is a stack-shaped set: entries are removed again once
	// their expansion returns, so a name may legally recur in sibling
	// branches that are not nested inside one another.
	visiting map[string]bool
}

// expand compiles one template body (either the original template or a
// resolved definition) into buf, recursing into placeholders it contains.
func (c *state) expand(template string, depth int, buf *strings.Builder) error {
	spans, err := token.Scan(template)
	if err != nil {
		return err
	}

	for _, span := range spans {
		if span.Kind == token.Literal {
			buf.WriteString(span.Literal)
			continue
		}

		p := span.Placeholder
		def, err := c.resolve(p.Name, p.InlineDefinition, p.Pos)
		if err != nil {
			return err
		}

		captures := p.Alias != "" || !c.namedCapturesOnly
		var entry *capture.Entry
		if captures {
			entry = c.alloc.Allocate(p.Name, p.Alias, p.Extract)
			buf.WriteString("(?P<")
			buf.WriteString(entry.InternalID)
			buf.WriteString(">")
		} else {
			buf.WriteString("(?:")
		}

		if depth+1 > c.maxDepth {
			return grokerr.NewRecursionLimit(p.Name, c.maxDepth)
		}

		key := p.Name + "\x00" + def
		if c.visiting[key] {
			return grokerr.NewCycle(p.Name)
		}
		c.visiting[key] = true

		err = c.expand(def, depth+1, buf)
		delete(c.visiting, key)
		if err != nil {
			return err
		}

		buf.WriteString(")")
	}

	return nil
}

// resolve determines the definition string for a placeholder occurrence:
// its own inline definition if it carries one, else the dictionary. An
// inline definition's scope is just its own occurrence: the tokenizer
// forbids '{' inside a definition body, so the body can never itself
// contain a placeholder for the definition to shadow.
func (c *state) resolve(name string, inline *string, pos int) (string, error) {
	if inline != nil {
		return *inline, nil
	}
	if def, ok := c.lookup(name); ok {
		return def, nil
	}
	return "", grokerr.NewDefinitionNotFound(name, pos)
}
