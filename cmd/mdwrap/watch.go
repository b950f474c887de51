package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/jcorbin/mdwrap/internal/cliconfig"
)

// watch translates input once, then again after every change to it, until
// ctx is done. Failed passes are logged and do not stop watching.
// Passes never overlap: they all run on the calling goroutine.
func watch(ctx context.Context, log zerolog.Logger, cfg cliconfig.Config, input, output string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// watch the directory, since editors often replace files by renaming
	if err := watcher.Add(filepath.Dir(input)); err != nil {
		return fmt.Errorf("watch %v: %w", input, err)
	}
	target := filepath.Clean(input)

	if _, err := translateFile(log, cfg, input, output); err != nil {
		log.Error().Err(err).Msg("translation failed")
	}

	var (
		debounce *time.Timer
		changed  = make(chan struct{}, 1)
	)
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	log.Info().Str("input", input).Dur("debounce", cfg.Debounce).Msg("watching")
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("watch stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Debug().Stringer("op", event.Op).Msg("input changed")
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(cfg.Debounce, func() {
				select {
				case changed <- struct{}{}:
				default:
				}
			})

		case <-changed:
			if _, err := translateFile(log, cfg, input, output); err != nil {
				log.Error().Err(err).Msg("translation failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watcher error")
		}
	}
}
