package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lttr/shell-aliases/internal/config"
	"github.com/lttr/shell-aliases/internal/core"
	"github.com/lttr/shell-aliases/internal/logging"
	"github.com/lttr/shell-aliases/internal/report"
	"github.com/lttr/shell-aliases/internal/styles"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

type options struct {
	configFile  string
	shell       string
	aliasesFile string
	format      string
	match       string
	logLevel    string
	watch       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "aliasusage [history-file]",
		Short: "Show when each shell alias was last used",
		Long: `aliasusage reads the zsh history file and the aliases defined in your shell,
then lists every alias with the date it was last run, most recent first.
Aliases that never appear in the history are listed last with an empty date.

Examples:
  aliasusage                              # Read ~/.zsh_history and ask zsh for aliases
  aliasusage /path/to/.zsh_history        # Read a specific history file
  aliasusage --aliases-file ~/.zshrc      # Take aliases from an rc file instead of zsh
  aliasusage -o table --match git         # Table of aliases fuzzy-matching "git"
  aliasusage --watch                      # Refresh whenever the history file changes`,
		Args:          cobra.MaximumNArgs(1),
		Version:       BUILD_VERSION,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configFile, "config", "",
		"Config file path (default ~/.aliasusage/config.yaml)")
	cmd.Flags().StringVar(&opts.shell, "shell", "",
		"Shell queried for aliases (default zsh)")
	cmd.Flags().StringVar(&opts.aliasesFile, "aliases-file", "",
		"Read aliases from this rc file instead of running the shell")
	cmd.Flags().StringVarP(&opts.format, "output", "o", "",
		"Output format (auto, "+strings.Join(formatNames(), ", ")+")")
	cmd.Flags().StringVar(&opts.match, "match", "",
		"Only show aliases fuzzy-matching this pattern")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "",
		"Log level (debug, info, warn, error)")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false,
		"Re-render the report whenever the history file changes")

	return cmd
}

func formatNames() []string {
	names := make([]string, 0, len(report.Formats))
	for _, f := range report.Formats {
		names = append(names, string(f))
	}
	return names
}

// loadConfig merges the config file, environment and flags.
func loadConfig(cmd *cobra.Command, args []string, opts *options) (*config.Config, []error) {
	configFile := opts.configFile
	if configFile == "" {
		configFile = core.ConfigFile()
	}

	result := config.Load(core.ExpandPath(configFile))
	cfg := result.Config

	flags := cmd.Flags()
	if flags.Changed("shell") {
		cfg.Shell = opts.shell
	}
	if flags.Changed("aliases-file") {
		cfg.AliasesFile = opts.aliasesFile
	}
	if flags.Changed("output") {
		cfg.Format = opts.format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if len(args) > 0 {
		cfg.HistoryFile = args[0]
	}
	cfg.Normalize()

	return cfg, result.Errors
}

func initializeLogger(cfg *config.Config, console io.Writer) (*zap.Logger, error) {
	logFile := core.LogFile()
	if err := core.EnsureDataDir(); err != nil {
		fmt.Fprintln(console, styles.WARNING(fmt.Sprintf("failed to create %s, logging to console only: %v", core.DataDir(), err)))
		logFile = ""
	}

	logger, _, err := logging.New(cfg.LogLevel, logFile, console)
	return logger, err
}

// resolveFormat turns "auto" into a table on a terminal and plain text
// everywhere else, so piped output stays line-oriented.
func resolveFormat(name string, out io.Writer) (report.Format, error) {
	if name != config.FormatAuto {
		return report.ParseFormat(name)
	}
	if isTerminal(out) {
		return report.Table, nil
	}
	return report.Plain, nil
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func runReport(cmd *cobra.Command, args []string, opts *options) error {
	cfg, configErrors := loadConfig(cmd, args, opts)

	logger, err := initializeLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	for _, configErr := range configErrors {
		logger.Warn("ignoring configuration problem", zap.Error(configErr))
	}

	format, err := resolveFormat(cfg.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	logger.Info("-------- new aliasusage run --------",
		zap.String("history_file", cfg.HistoryFile),
		zap.String("shell", cfg.Shell),
		zap.String("aliases_file", cfg.AliasesFile),
		zap.String("format", string(format)),
	)

	r := &reporter{
		cfg:    cfg,
		logger: logger,
		out:    cmd.OutOrStdout(),
		format: format,
		match:  opts.match,
		now:    time.Now,
	}

	if opts.watch {
		return watchHistory(cmd.Context(), cfg.HistoryFile, logger, r.refresh)
	}
	return r.render(cmd.Context())
}
