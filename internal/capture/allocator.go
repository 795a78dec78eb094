// Package capture assigns unique internal regex capture names to placeholder
// occurrences and computes the user-visible display key each occurrence is
// reachable under, implementing the duplicate-name and duplicate-alias
// policies: bare-name duplicates fan out as "NAME", "NAME[1]", "NAME[2]", ...
// in textual order, while duplicate aliases are last-write-wins.
package capture

import "fmt"

// Entry is one row of the capture table: metadata for a single placeholder
// occurrence that participates in output (non-capturing occurrences never
// reach the allocator).
type Entry struct {
	InternalID string
	DisplayKey string
	Name       string
	Alias      string
	Extract    string

	// Superseded is true once a later occurrence has claimed this entry's
	// DisplayKey via alias last-wins. A superseded entry keeps its own
	// internal capture (the regex group still exists and still matches),
	// it is simply unreachable through the display key and skipped by
	// Matches.Iter.
	Superseded bool
}

// Allocator builds a pattern's capture table incrementally as the compiler
// walks placeholder occurrences in template order.
type Allocator struct {
	counter int

	// table is the ordered capture table, indexed the same way it will be
	// exposed on the compiled pattern.
	table []*Entry

	// bareNameCounts tracks how many bare (alias-less) occurrences of a
	// given name have been seen so far, to compute "[1]", "[2]", ...
	bareNameCounts map[string]int

	// active maps a live display key to the table entry currently
	// reachable under it. Bare-name occurrences each get a distinct key
	// (so they never collide here); alias occurrences share a key across
	// repeats, which is exactly what triggers last-wins supersession.
	active map[string]*Entry
}

// New returns an empty Allocator.
func New() *Allocator {
	return &Allocator{
		bareNameCounts: make(map[string]int),
		active:         make(map[string]*Entry),
	}
}

// Allocate records one capturing placeholder occurrence and returns its
// capture-table entry, whose InternalID is the name the compiler should use
// for its regex group.
func (a *Allocator) Allocate(name, alias, extract string) *Entry {
	internalID := fmt.Sprintf("_k%d", a.counter)
	a.counter++

	displayKey := alias
	if displayKey == "" {
		displayKey = a.nextBareKey(name)
	}

	entry := &Entry{
		InternalID: internalID,
		DisplayKey: displayKey,
		Name:       name,
		Alias:      alias,
		Extract:    extract,
	}
	a.table = append(a.table, entry)

	if prior, ok := a.active[displayKey]; ok && alias != "" {
		prior.Superseded = true
	}
	a.active[displayKey] = entry

	return entry
}

// nextBareKey returns "name" for the first alias-less occurrence of name and
// "name[1]", "name[2]", ... for each subsequent one, skipping any key an
// earlier alias already holds.
func (a *Allocator) nextBareKey(name string) string {
	for {
		n := a.bareNameCounts[name]
		a.bareNameCounts[name] = n + 1
		key := name
		if n > 0 {
			key = fmt.Sprintf("%s[%d]", name, n)
		}
		if _, taken := a.active[key]; !taken {
			return key
		}
	}
}

// Table returns the ordered capture table built so far.
func (a *Allocator) Table() []*Entry {
	return a.table
}

// Lookup returns the table entry currently reachable under displayKey, i.e.
// the last occurrence registered under that key that has not since been
// superseded by a later alias collision.
func (a *Allocator) Lookup(displayKey string) (*Entry, bool) {
	e, ok := a.active[displayKey]
	return e, ok
}
