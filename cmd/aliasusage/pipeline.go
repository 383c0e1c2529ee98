package main

import (
	"context"
	"io"
	"time"

	"github.com/lttr/shell-aliases/internal/aliases"
	"github.com/lttr/shell-aliases/internal/config"
	"github.com/lttr/shell-aliases/internal/history"
	"github.com/lttr/shell-aliases/internal/report"
	"github.com/lttr/shell-aliases/internal/usage"
	"github.com/muesli/termenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type reporter struct {
	cfg    *config.Config
	logger *zap.Logger
	out    io.Writer
	format report.Format
	match  string
	now    func() time.Time
}

// newLister picks the alias source: an rc file when one is configured,
// otherwise the shell itself.
func newLister(cfg *config.Config, logger *zap.Logger) aliases.Lister {
	if cfg.AliasesFile != "" {
		return aliases.NewRCFileLister(cfg.AliasesFile, logger)
	}
	return aliases.NewShellLister(cfg.Shell, logger)
}

// collect reads the history file and lists aliases concurrently, then
// correlates them. Only a history read failure is returned as an error.
func collect(ctx context.Context, cfg *config.Config, logger *zap.Logger) ([]usage.AliasUsage, error) {
	var (
		records []history.Record
		listing aliases.Listing
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = history.Load(cfg.HistoryFile)
		return err
	})
	g.Go(func() error {
		listing = newLister(cfg, logger).List(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug("collected inputs",
		zap.Int("records", len(records)),
		zap.Int("aliases", len(listing.Aliases)),
		zap.Bool("aliases_available", listing.Valid),
	)
	return usage.NewCorrelator(logger).Correlate(listing, records), nil
}

func (r *reporter) render(ctx context.Context) error {
	usages, err := collect(ctx, r.cfg, r.logger)
	if err != nil {
		return err
	}
	return report.Render(r.out, r.format, report.Filter(usages, r.match), r.now())
}

// refresh redraws the report in place when writing to a terminal.
func (r *reporter) refresh(ctx context.Context) error {
	if isTerminal(r.out) {
		output := termenv.NewOutput(r.out)
		output.ClearScreen()
	}
	return r.render(ctx)
}
