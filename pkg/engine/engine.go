// Package engine declares the narrow capability set the compiler and the
// match projection layer consume from a regex back-end. Back-ends are
// interchangeable at build-time configuration (see internal/regexadapter);
// the core never depends on engine-specific syntax and never attempts to
// translate a template between engines.
package engine

// Compiler turns an assembled regex source string into a Regex, or reports
// that the back-end rejected it. A rejection is surfaced to the caller as
// grokerr.RegexCompilation; this package does not know about that taxonomy,
// it just returns the engine's own error.
type Compiler interface {
	Compile(source string) (Regex, error)
}

// Regex is a compiled pattern, immutable and safe for concurrent use by
// multiple goroutines once returned from Compile.
type Regex interface {
	// Source returns the regex text this Regex was compiled from.
	Source() string

	// CaptureNames returns the name bound to each capturing group, in group
	// order (group 0, the whole match, is never included). An unnamed
	// group, such as a plain "(...)" in a template's literal text, is
	// represented by an empty string.
	CaptureNames() []string

	// Match runs the regex against subject and returns its captures. The
	// second return value is false when subject does not match at all.
	Match(subject string) (Captures, bool)
}

// Captures is the result of a single successful match.
type Captures interface {
	// ByName returns the substring captured under name and whether that
	// group actually participated in the match. A group that did not
	// participate (its alternative was not taken) reports ok == false,
	// which is indistinguishable here from the group not existing at all;
	// the compiler guarantees every name it asks for does exist.
	ByName(name string) (string, bool)
}
