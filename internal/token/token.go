// Package token implements the placeholder tokenizer described in the
// pattern-expression grammar: it streams a template left to right and emits
// literal spans and placeholder descriptors. It never builds or evaluates a
// regular expression itself — recognizing "%{...}" is a small hand-rolled
// scanner, not a regex.
package token

import (
	"strings"

	"grok/pkg/grokerr"
)

// nameChars is the character set allowed in a placeholder name; the alias and
// extract fields additionally allow aliasExtraChars. A definition may hold
// any character except '{' and '}'. The grammar is:
//
//	%{ name (:alias)? (:extract)? (=definition)? }
const (
	nameChars       = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"
	aliasExtraChars = "-[]."
)

// Kind distinguishes the two span shapes a template tokenizes into.
type Kind int

const (
	Literal Kind = iota
	Placeholder
)

// Descriptor holds the parsed fields of a single %{...} occurrence.
type Descriptor struct {
	Name  string
	Alias string

	// Extract carries opaque user metadata through to matches; the
	// tokenizer does not interpret it.
	Extract string

	// InlineDefinition is nil when the occurrence has no "=definition"
	// suffix, and non-nil (possibly pointing at an empty string) when it
	// does — this distinguishes "no inline override" from "inline override
	// to the empty pattern".
	InlineDefinition *string

	// Pos is the byte offset of the opening "%{" in the template.
	Pos int
}

// Span is one literal run or one placeholder occurrence, in template order.
type Span struct {
	Kind        Kind
	Literal     string // valid when Kind == Literal
	Placeholder Descriptor
}

// Scan tokenizes template into an ordered sequence of spans. It returns a
// *grokerr.Error with Code == grokerr.PatternSyntax on any malformed
// placeholder.
func Scan(template string) ([]Span, error) {
	var spans []Span
	var literal strings.Builder
	flushLiteral := func() {
		if literal.Len() > 0 {
			spans = append(spans, Span{Kind: Literal, Literal: literal.String()})
			literal.Reset()
		}
	}

	i := 0
	n := len(template)
	for i < n {
		if template[i] == '%' && i+1 < n && template[i+1] == '{' {
			start := i
			desc, next, err := parsePlaceholder(template, i+2)
			if err != nil {
				return nil, err
			}
			desc.Pos = start
			flushLiteral()
			spans = append(spans, Span{Kind: Placeholder, Placeholder: desc})
			i = next
			continue
		}
		literal.WriteByte(template[i])
		i++
	}
	flushLiteral()
	return spans, nil
}

// parsePlaceholder parses the body of "%{...}" starting right after the
// opening "%{" (at byte offset start), returning the descriptor and the
// offset of the byte immediately following the closing "}".
func parsePlaceholder(template string, start int) (Descriptor, int, error) {
	n := len(template)
	pos := start

	name, pos, err := scanField(template, pos, nameChars, "name")
	if err != nil {
		return Descriptor{}, 0, err
	}
	if name == "" {
		return Descriptor{}, 0, grokerr.NewPatternSyntax("placeholder name is empty", start-2)
	}

	desc := Descriptor{Name: name}

	if pos < n && template[pos] == ':' {
		pos++
		alias, next, err := scanField(template, pos, nameChars+aliasExtraChars, "alias")
		if err != nil {
			return Descriptor{}, 0, err
		}
		desc.Alias = alias
		pos = next

		if pos < n && template[pos] == ':' {
			pos++
			extract, next, err := scanField(template, pos, nameChars+aliasExtraChars, "extract")
			if err != nil {
				return Descriptor{}, 0, err
			}
			desc.Extract = extract
			pos = next
		}
	}

	if pos < n && template[pos] == '=' {
		pos++
		defStart := pos
		for pos < n && template[pos] != '}' {
			if template[pos] == '{' {
				return Descriptor{}, 0, grokerr.NewPatternSyntax("inline definition may not contain '{'", pos)
			}
			pos++
		}
		if pos >= n {
			return Descriptor{}, 0, grokerr.NewPatternSyntax("unterminated placeholder: missing '}'", start-2)
		}
		def := template[defStart:pos]
		desc.InlineDefinition = &def
	}

	if pos >= n || template[pos] != '}' {
		return Descriptor{}, 0, grokerr.NewPatternSyntax("unterminated placeholder: missing '}'", start-2)
	}
	return desc, pos + 1, nil
}

// scanField consumes characters of template starting at pos as long as they
// belong to allowed, stopping at the first ':', '=', or '}'. Any other
// character is a syntax error naming the field it occurred in.
func scanField(template string, pos int, allowed string, field string) (string, int, error) {
	start := pos
	n := len(template)
	for pos < n {
		c := template[pos]
		if c == ':' || c == '=' || c == '}' {
			break
		}
		if !strings.ContainsRune(allowed, rune(c)) {
			return "", 0, grokerr.NewPatternSyntax("placeholder "+field+" contains an illegal character", pos)
		}
		pos++
	}
	if pos >= n {
		return "", 0, grokerr.NewPatternSyntax("unterminated placeholder: missing '}'", start)
	}
	return template[start:pos], pos, nil
}
