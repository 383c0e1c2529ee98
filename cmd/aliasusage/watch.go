package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watchHistory calls render once and then again every time the history file
// is written, until ctx is done. zsh may replace the file instead of
// appending to it, so the parent directory is watched.
func watchHistory(ctx context.Context, path string, logger *zap.Logger, render func(context.Context) error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	if err := render(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			logger.Debug("history file changed", zap.String("op", event.Op.String()))
			if err := render(ctx); err != nil {
				// The file can be missing for a moment while zsh rewrites it.
				logger.Warn("failed to refresh report", zap.Error(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("history watcher error", zap.Error(err))
		}
	}
}
