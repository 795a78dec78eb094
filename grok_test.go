package grok

import (
	"testing"

	"grok/pkg/grokerr"
)

func TestCompileAndMatchUsername(t *testing.T) {
	d := NewDictionary()
	d.AddPattern("USERNAME", `[a-zA-Z0-9._-]+`)

	p, err := d.Compile("%{USERNAME}")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}

	m, ok := p.MatchAgainst("jdoe")
	if !ok {
		t.Fatalf("expected a match")
	}
	if v, ok := m.Get("USERNAME"); !ok || v != "jdoe" {
		t.Errorf("Get(USERNAME) = %q, %v", v, ok)
	}
}

func TestCompileAndMatchAliased(t *testing.T) {
	d := NewDictionary()
	d.AddPattern("USERNAME", `[a-zA-Z0-9._-]+`)

	p, err := d.Compile("user=%{USERNAME:user}")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}

	m, ok := p.MatchAgainst("user=jdoe")
	if !ok {
		t.Fatalf("expected a match")
	}
	if v, ok := m.Get("user"); !ok || v != "jdoe" {
		t.Errorf("Get(user) = %q, %v", v, ok)
	}
	if _, ok := m.Get("USERNAME"); ok {
		t.Errorf("bare name should not be reachable once aliased")
	}
}

func TestDuplicateBareNamesFanOut(t *testing.T) {
	d := NewDictionary()
	d.AddPattern("WORD", `\w+`)

	p, err := d.Compile("%{WORD} %{WORD} %{WORD}")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}

	m, ok := p.MatchAgainst("alpha beta gamma")
	if !ok {
		t.Fatalf("expected a match")
	}
	cases := map[string]string{"WORD": "alpha", "WORD[1]": "beta", "WORD[2]": "gamma"}
	for key, want := range cases {
		if v, ok := m.Get(key); !ok || v != want {
			t.Errorf("Get(%q) = %q, %v; want %q", key, v, ok, want)
		}
	}
}

func TestDuplicateAliasLastOccurrenceWins(t *testing.T) {
	d := NewDictionary()
	d.AddPattern("WORD", `\w+`)
	d.AddPattern("NUMBER", `\d+`)

	p, err := d.Compile("%{WORD:val} %{NUMBER:val}")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}

	m, ok := p.MatchAgainst("abc 123")
	if !ok {
		t.Fatalf("expected a match")
	}
	if v, ok := m.Get("val"); !ok || v != "123" {
		t.Errorf("Get(val) = %q, %v; want the last occurrence's capture", v, ok)
	}

	fields := m.Iter()
	for _, f := range fields {
		if f.Key == "val" && f.Value != "123" {
			t.Errorf("Iter yielded superseded value %q for val", f.Value)
		}
	}
	count := 0
	for _, f := range fields {
		if f.Key == "val" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Iter should yield %q exactly once, got %d times", "val", count)
	}
}

func TestLogLine(t *testing.T) {
	d := NewDictionaryWithDefaults()

	p, err := d.Compile("%{SYSLOGTIMESTAMP:timestamp} %{SYSLOGHOST:host} %{WORD:program}: %{GREEDYDATA:message}")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}

	m, ok := p.MatchAgainst("Jul 31 10:15:00 web01 sshd: Accepted publickey for jdoe")
	if !ok {
		t.Fatalf("expected a match")
	}
	if v, _ := m.Get("host"); v != "web01" {
		t.Errorf("host = %q, want web01", v)
	}
	if v, _ := m.Get("program"); v != "sshd" {
		t.Errorf("program = %q, want sshd", v)
	}
	if v, _ := m.Get("message"); v != "Accepted publickey for jdoe" {
		t.Errorf("message = %q, want %q", v, "Accepted publickey for jdoe")
	}
}

func TestLogLineWithBracketedIPAndEnvironment(t *testing.T) {
	d := NewDictionaryWithDefaults()

	p, err := d.Compile(`%{TIMESTAMP_ISO8601:timestamp} \[%{IPV4:ip}:%{WORD:environment}\] %{LOGLEVEL:log_level} %{GREEDYDATA:message}`)
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}

	m, ok := p.MatchAgainst("2016-09-19T18:19:00 [8.8.8.8:prd] DEBUG this is an example log message")
	if !ok {
		t.Fatalf("expected a match")
	}
	cases := map[string]string{
		"timestamp":   "2016-09-19T18:19:00",
		"ip":          "8.8.8.8",
		"environment": "prd",
		"log_level":   "DEBUG",
		"message":     "this is an example log message",
	}
	for key, want := range cases {
		if v, ok := m.Get(key); !ok || v != want {
			t.Errorf("Get(%q) = %q, %v; want %q", key, v, ok, want)
		}
	}
}

func TestLiteralPercentImmunity(t *testing.T) {
	d := NewDictionary()
	d.AddPattern("WORD", `[a-z]+`)

	for _, template := range []string{`100(%){WORD}`, `100(?:%){WORD}`} {
		p, err := d.Compile(template)
		if err != nil {
			t.Fatalf("Compile(%q) returned error: %v", template, err)
		}
		if len(p.CaptureNames()) != 0 {
			t.Errorf("Compile(%q) produced captures %v, want none", template, p.CaptureNames())
		}
	}
}

func TestInlineDefinitionScopeIsNotVisibleOutsideItsOccurrence(t *testing.T) {
	d := NewDictionary()

	if _, err := d.Compile("%{CODE=[0-9][0-9][0-9]}"); err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}

	_, err := d.Compile("%{CODE}")
	gerr, ok := err.(*grokerr.Error)
	if !ok || gerr.Code != grokerr.DefinitionNotFound {
		t.Fatalf("expected DefinitionNotFound for unresolved CODE, got %v", err)
	}
}

func TestLiteralPercentBraceIsNotAPlaceholder(t *testing.T) {
	d := NewDictionary()
	p, err := d.Compile("100%% (%){complete}")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	if len(p.CaptureNames()) != 0 {
		t.Fatalf("expected zero captures, got %v", p.CaptureNames())
	}
	// Literal spans are appended to the regex source as-is (§4.2 step 3), so
	// the parens around "%" are live regex grouping syntax, not matched
	// bytes, and "{complete}" is an invalid quantifier RE2 treats as literal.
	if _, ok := p.MatchAgainst("100%% %{complete}"); !ok {
		t.Fatalf("expected the assembled regex to match its literal expansion")
	}
}

func TestMissingDefinitionIsCompileError(t *testing.T) {
	d := NewDictionary()
	_, err := d.Compile("%{NOPE}")
	gerr, ok := err.(*grokerr.Error)
	if !ok || gerr.Code != grokerr.DefinitionNotFound {
		t.Fatalf("expected DefinitionNotFound, got %v", err)
	}
}

func TestNonMatchIsNotAnError(t *testing.T) {
	d := NewDictionary()
	d.AddPattern("DIGIT", `\d`)
	p, err := d.Compile("%{DIGIT}")
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	_, ok := p.MatchAgainst("x")
	if ok {
		t.Fatalf("expected no match")
	}
}

func TestWithNamedCapturesOnly(t *testing.T) {
	d := NewDictionary()
	d.AddPattern("WORD", `\w+`)

	p, err := d.Compile("%{WORD} %{WORD:alias}", WithNamedCapturesOnly())
	if err != nil {
		t.Fatalf("Compile returned error: %v", err)
	}
	names := p.CaptureNames()
	if len(names) != 1 || names[0] != "alias" {
		t.Fatalf("expected only the aliased capture, got %v", names)
	}

	m, ok := p.MatchAgainst("first second")
	if !ok {
		t.Fatalf("expected a match")
	}
	if v, ok := m.Get("alias"); !ok || v != "second" {
		t.Errorf("Get(alias) = %q, %v", v, ok)
	}
}

func TestWithMaxRecursionDepth(t *testing.T) {
	d := NewDictionary()
	d.AddPattern("A", "%{B}")
	d.AddPattern("B", "x")

	_, err := d.Compile("%{A}", WithMaxRecursionDepth(1))
	gerr, ok := err.(*grokerr.Error)
	if !ok || gerr.Code != grokerr.RecursionLimit {
		t.Fatalf("expected RecursionLimit, got %v", err)
	}
}

func TestPatternsSnapshotIsIndependent(t *testing.T) {
	d := NewDictionary()
	d.AddPattern("A", "a")
	snapshot := d.Patterns()
	snapshot["A"] = "mutated"
	if def, _ := d.lookup("A"); def != "a" {
		t.Errorf("mutating the snapshot should not affect the dictionary, got %q", def)
	}
}
