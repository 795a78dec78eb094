// Package grokconfig loads the compiler's tunables from a YAML file, with
// environment variable overrides layered on top, following the same
// load-then-override shape the rest of this module's configuration loading
// has always used.
package grokconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CompilerConfig holds the settings a Dictionary.Compile call needs that are
// ordinarily fixed for a whole process rather than passed per call.
type CompilerConfig struct {
	// Engine names the regex back-end. Only "stdregexp" (the default) is
	// recognized; any other name, "pcre" included, also selects stdregexp.
	// The PCRE adapter is reachable only through the WithEngine compile
	// option.
	Engine string `yaml:"engine"`

	// MaxRecursionDepth bounds placeholder expansion depth. Zero means the
	// compiler's own default.
	MaxRecursionDepth int `yaml:"max_recursion_depth"`

	// NamedCapturesOnly suppresses capturing for alias-less placeholders.
	NamedCapturesOnly bool `yaml:"named_captures_only"`

	// LoadDefaultPatterns makes NewDictionaryFromConfig seed the new
	// Dictionary from the bundled pattern corpus. Defaults to true.
	// NewDictionary ignores it and always starts empty.
	LoadDefaultPatterns bool `yaml:"load_default_patterns"`
}

// Default returns the configuration used when no file or overrides are
// present.
func Default() CompilerConfig {
	return CompilerConfig{
		Engine:              "stdregexp",
		MaxRecursionDepth:   0,
		NamedCapturesOnly:   false,
		LoadDefaultPatterns: true,
	}
}

// Load reads path as YAML into a CompilerConfig seeded from Default, then
// applies environment variable overrides. A missing file is not an error:
// Load falls back to Default with overrides applied.
func Load(path string) (CompilerConfig, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return CompilerConfig{}, fmt.Errorf("grokconfig: read %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return CompilerConfig{}, fmt.Errorf("grokconfig: parse %s: %w", path, err)
		}
	}

	applyEnvironmentOverrides(&cfg)
	return cfg, nil
}

// applyEnvironmentOverrides mirrors the teacher's environment-override style:
// each recognized variable, if set, replaces the corresponding field.
func applyEnvironmentOverrides(cfg *CompilerConfig) {
	if engine := os.Getenv("GROK_ENGINE"); engine != "" {
		cfg.Engine = engine
	}
	if depth := os.Getenv("GROK_MAX_RECURSION_DEPTH"); depth != "" {
		if n, err := parseInt(depth); err == nil {
			cfg.MaxRecursionDepth = n
		}
	}
	if named := os.Getenv("GROK_NAMED_CAPTURES_ONLY"); named != "" {
		cfg.NamedCapturesOnly = named == "true" || named == "1"
	}
	if defaults := os.Getenv("GROK_LOAD_DEFAULT_PATTERNS"); defaults != "" {
		cfg.LoadDefaultPatterns = defaults == "true" || defaults == "1"
	}
}

func parseInt(s string) (int, error) {
	var i int
	_, err := fmt.Sscanf(s, "%d", &i)
	return i, err
}
