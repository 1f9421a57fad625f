package main

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const watchDebounce = 100 * time.Millisecond

// watchDirectory calls relist after every burst of changes in dir until ctx
// is done or relist fails.
func watchDirectory(ctx context.Context, dir string, log logrus.FieldLogger, relist func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	log.WithField("dir", dir).Debug("watching directory")

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			log.WithField("event", event.String()).Debug("directory changed")
			pending = time.After(watchDebounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watch error")
		case <-pending:
			pending = nil
			if err := relist(); err != nil {
				return err
			}
		}
	}
}
