package config

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	domainconfig "github.com/felixgeelhaar/pdftool/domain/config"
	"github.com/felixgeelhaar/pdftool/infrastructure/logging"
)

// Watch reloads the configuration file at path whenever it changes and
// passes each successfully loaded config to onChange. Invalid revisions are
// logged and skipped. Watch blocks until ctx is cancelled.
func (l *Loader) Watch(ctx context.Context, path string, onChange func(*domainconfig.Config)) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("invalid config path: %w", err)
	}
	if _, err := FormatFromPath(absPath); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Editors often replace the file, so watch the directory and filter.
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch config: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != absPath || !event.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			cfg, err := l.LoadFile(absPath)
			if err != nil {
				logging.Warn().
					Add(logging.Component("config")).
					Add(logging.Path(absPath)).
					Add(logging.ErrorField(err)).
					Msg("config reload failed, keeping previous settings")
				continue
			}
			logging.Info().
				Add(logging.Component("config")).
				Add(logging.Path(absPath)).
				Msg("config reloaded")
			onChange(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Warn().
				Add(logging.Component("config")).
				Add(logging.ErrorField(err)).
				Msg("config watcher error")
		}
	}
}
