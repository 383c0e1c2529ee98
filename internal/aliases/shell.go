package aliases

import (
	"context"
	"os/exec"

	"go.uber.org/zap"
)

// DefaultShell is the shell queried for aliases when none is configured.
const DefaultShell = "zsh"

// ShellLister asks a shell for its aliases by running the `alias` builtin in
// an interactive, non-login session so the user's rc files are loaded.
type ShellLister struct {
	Shell  string
	Logger *zap.Logger
}

// NewShellLister creates a ShellLister for the given shell binary.
func NewShellLister(shell string, logger *zap.Logger) *ShellLister {
	if shell == "" {
		shell = DefaultShell
	}
	return &ShellLister{
		Shell:  shell,
		Logger: logger,
	}
}

// List runs the shell and parses its output. A shell that cannot be started
// or exits with a non-zero status yields an invalid Listing.
func (l *ShellLister) List(ctx context.Context) Listing {
	cmd := exec.CommandContext(ctx, l.Shell, "--interactive", "-c", "alias")
	output, err := cmd.Output()
	if err != nil {
		l.Logger.Warn("alias source unavailable",
			zap.String("shell", l.Shell),
			zap.Error(err),
		)
		return Listing{}
	}

	aliases := Parse(string(output))
	l.Logger.Debug("listed aliases from shell",
		zap.String("shell", l.Shell),
		zap.Int("count", len(aliases)),
	)
	return Available(aliases)
}
