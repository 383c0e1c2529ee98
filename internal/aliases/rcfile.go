package aliases

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// RCFileLister reads alias definitions straight out of a shell startup file
// without running a shell. Only literal `alias name=value` statements are
// found; aliases created dynamically at startup are not.
type RCFileLister struct {
	Path   string
	Logger *zap.Logger
}

// NewRCFileLister creates a lister for the rc file at path.
func NewRCFileLister(path string, logger *zap.Logger) *RCFileLister {
	return &RCFileLister{
		Path:   path,
		Logger: logger,
	}
}

// List parses the rc file. An unreadable file yields an invalid Listing.
func (l *RCFileLister) List(ctx context.Context) Listing {
	content, err := os.ReadFile(l.Path)
	if err != nil {
		l.Logger.Warn("alias source unavailable",
			zap.String("file", l.Path),
			zap.Error(err),
		)
		return Listing{}
	}

	aliases, err := ParseScript(strings.NewReader(string(content)), l.Path)
	if err != nil {
		// zsh-only syntax trips the bash parser; fall back to scanning
		// the individual alias statements.
		l.Logger.Debug("rc file is not valid bash, scanning alias lines",
			zap.String("file", l.Path),
			zap.Error(err),
		)
		aliases = scanAliasLines(string(content), l.Path)
	}

	l.Logger.Debug("listed aliases from rc file",
		zap.String("file", l.Path),
		zap.Int("count", len(aliases)),
	)
	return Available(aliases)
}

// ParseScript collects the aliases defined by `alias` calls anywhere in a
// shell script, including inside functions and conditionals.
func ParseScript(reader io.Reader, name string) ([]Alias, error) {
	file, err := syntax.NewParser(syntax.Variant(syntax.LangBash)).Parse(reader, name)
	if err != nil {
		return nil, err
	}
	return collectAliases(file), nil
}

func collectAliases(node syntax.Node) []Alias {
	var aliases []Alias
	syntax.Walk(node, func(node syntax.Node) bool {
		call, ok := node.(*syntax.CallExpr)
		if !ok || len(call.Args) < 2 || call.Args[0].Lit() != "alias" {
			return true
		}

		for _, word := range call.Args[1:] {
			definition, err := expand.Literal(nil, word)
			if err != nil || strings.HasPrefix(definition, "-") {
				continue
			}
			key, value, found := strings.Cut(definition, "=")
			if !found || key == "" {
				continue
			}
			aliases = append(aliases, Alias{Key: key, Value: value})
		}
		return true
	})
	return aliases
}

func scanAliasLines(content string, name string) []Alias {
	var aliases []Alias
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "alias ") {
			continue
		}
		found, err := ParseScript(strings.NewReader(line), name)
		if err != nil {
			continue
		}
		aliases = append(aliases, found...)
	}
	return aliases
}
