// Package report renders alias usage for the terminal and for other tools.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/lttr/shell-aliases/internal/usage"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	Plain Format = "plain"
	Table Format = "table"
	JSON  Format = "json"
	YAML  Format = "yaml"
)

// Formats lists every supported format name.
var Formats = []Format{Plain, Table, JSON, YAML}

// dateLayout matches the first ten characters of an ISO-8601 timestamp.
const dateLayout = "2006-01-02"

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(name)))
	if !lo.Contains(Formats, format) {
		return "", fmt.Errorf("unknown format %q (expected one of %s)", name, strings.Join(lo.Map(Formats, func(f Format, _ int) string {
			return string(f)
		}), ", "))
	}
	return format, nil
}

// entry is the serialized form of an AliasUsage.
type entry struct {
	Alias    string     `json:"alias" yaml:"alias"`
	LastUsed *time.Time `json:"last_used" yaml:"last_used"`
}

func entries(usages []usage.AliasUsage) []entry {
	return lo.Map(usages, func(u usage.AliasUsage, _ int) entry {
		e := entry{Alias: u.Alias}
		if u.LastUsed.Valid {
			lastUsed := u.LastUsed.Time.UTC()
			e.LastUsed = &lastUsed
		}
		return e
	})
}

// Render writes usages to w in the given format. now is the reference point
// for relative times in the table format.
func Render(w io.Writer, format Format, usages []usage.AliasUsage, now time.Time) error {
	switch format {
	case Plain:
		return renderPlain(w, usages)
	case Table:
		return renderTable(w, usages, now)
	case JSON:
		return renderJSON(w, usages)
	case YAML:
		return renderYAML(w, usages)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// renderPlain prints one "YYYY-MM-DD alias" line per entry. Never-used
// aliases get an empty date but keep the separating space.
func renderPlain(w io.Writer, usages []usage.AliasUsage) error {
	for _, u := range usages {
		date := ""
		if u.LastUsed.Valid {
			date = u.LastUsed.Time.UTC().Format(dateLayout)
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", date, u.Alias); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, usages []usage.AliasUsage) error {
	data, err := sonic.ConfigStd.MarshalIndent(entries(usages), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func renderYAML(w io.Writer, usages []usage.AliasUsage) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(entries(usages)); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return encoder.Close()
}
