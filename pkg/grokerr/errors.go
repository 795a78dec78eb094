// Package grokerr defines the closed error taxonomy surfaced by pattern
// compilation. Matching never fails: a non-match is an absent result, not an
// error, so this package only has to model the compile-time failure modes.
package grokerr

import (
	"fmt"
	"time"
)

// Code identifies one of the closed set of compile-time failure reasons.
type Code string

const (
	// PatternSyntax marks a malformed %{...} placeholder: unmatched brace,
	// empty or illegal name, or a "{" appearing inside an inline definition.
	PatternSyntax Code = "pattern_syntax"

	// DefinitionNotFound marks a placeholder whose name has neither an
	// inline definition nor an entry in the dictionary.
	DefinitionNotFound Code = "definition_not_found"

	// RecursionLimit marks a definition graph whose expansion exceeded the
	// configured depth without the cycle detector catching a tighter loop.
	RecursionLimit Code = "recursion_limit"

	// Cycle marks a definition that recursively expands into itself.
	Cycle Code = "cycle"

	// RegexCompilation marks a source string the selected engine refused to
	// compile. Diagnostics carries whatever message the engine produced.
	RegexCompilation Code = "regex_compilation"

	// DuplicateInternalName marks an invariant violation in the compiler's
	// own capture-name allocation; it should never be observable from
	// correct compiler logic.
	DuplicateInternalName Code = "duplicate_internal_name"
)

// Error is the single error type returned by Dictionary.Compile.
type Error struct {
	Code Code

	// Message is a human-readable description of the failure.
	Message string

	// Name is the pattern or placeholder name implicated, when applicable.
	Name string

	// Position is a byte offset into the template where the failure was
	// detected, or -1 when not applicable.
	Position int

	// Diagnostics carries engine-specific detail for RegexCompilation.
	Diagnostics string

	// Source is the assembled regex source that RegexCompilation was
	// raised against.
	Source string

	// TraceID is a random identifier of the Compile call that raised a
	// RegexCompilation error. The compiler does no logging.
	TraceID string

	Timestamp time.Time
}

func (e *Error) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("grok: %s at position %d: %s", e.Code, e.Position, e.Message)
	}
	return fmt.Sprintf("grok: %s: %s", e.Code, e.Message)
}

func newError(code Code, message string) *Error {
	return &Error{Code: code, Message: message, Position: -1, Timestamp: time.Now()}
}

// NewPatternSyntax builds a PatternSyntax error at the given byte position.
func NewPatternSyntax(message string, position int) *Error {
	e := newError(PatternSyntax, message)
	e.Position = position
	return e
}

// NewDefinitionNotFound builds a DefinitionNotFound error for name.
func NewDefinitionNotFound(name string, position int) *Error {
	e := newError(DefinitionNotFound, fmt.Sprintf("pattern %q is not defined", name))
	e.Name = name
	e.Position = position
	return e
}

// NewRecursionLimit builds a RecursionLimit error for name at the given depth.
func NewRecursionLimit(name string, depth int) *Error {
	e := newError(RecursionLimit, fmt.Sprintf("expansion of %q exceeded the maximum recursion depth (%d)", name, depth))
	e.Name = name
	return e
}

// NewCycle builds a Cycle error identifying the name whose expansion
// re-entered itself.
func NewCycle(name string) *Error {
	e := newError(Cycle, fmt.Sprintf("pattern %q recursively references itself", name))
	e.Name = name
	return e
}

// NewRegexCompilation builds a RegexCompilation error wrapping the engine's
// own diagnostic message and the trace id of the Compile call.
func NewRegexCompilation(source string, traceID string, diagnostics error) *Error {
	e := newError(RegexCompilation, "the selected regex engine rejected the assembled pattern source")
	e.TraceID = traceID
	e.Source = source
	if diagnostics != nil {
		e.Diagnostics = diagnostics.Error()
	}
	return e
}

// NewDuplicateInternalName builds a DuplicateInternalName error. Reaching
// this indicates a bug in the capture-name allocator, not bad user input.
func NewDuplicateInternalName(name string) *Error {
	e := newError(DuplicateInternalName, fmt.Sprintf("internal capture name %q was allocated twice", name))
	e.Name = name
	return e
}
