// Package aliases lists the shell aliases that are currently defined.
package aliases

import (
	"context"
	"strings"
)

// Alias is a shell-level name substitution.
type Alias struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Listing is the result of asking an alias source for its aliases. Valid is
// false when the source could not produce a list at all, which is distinct
// from a source that has no aliases defined.
type Listing struct {
	Aliases []Alias
	Valid   bool
}

// Available wraps a successfully obtained alias list.
func Available(aliases []Alias) Listing {
	if aliases == nil {
		aliases = []Alias{}
	}
	return Listing{Aliases: aliases, Valid: true}
}

// Lister produces the aliases known to some source. Failures are reported
// as an invalid Listing rather than an error.
type Lister interface {
	List(ctx context.Context) Listing
}

// Parse reads `key=value` lines as printed by the shell's `alias` builtin.
// The delimiter is the first "=" and a single pair of surrounding single
// quotes is stripped from the value. Lines without a key are skipped.
func Parse(output string) []Alias {
	var aliases []Alias
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		alias, ok := ParseLine(line)
		if !ok {
			continue
		}
		aliases = append(aliases, alias)
	}
	return aliases
}

// ParseLine parses a single `key=value` definition.
func ParseLine(line string) (Alias, bool) {
	key, value, found := strings.Cut(line, "=")
	if !found || key == "" {
		return Alias{}, false
	}

	value = strings.TrimPrefix(value, "'")
	value = strings.TrimSuffix(value, "'")
	return Alias{Key: key, Value: value}, true
}
