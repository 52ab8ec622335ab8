package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchCmd implements the 'watch' command: it re-runs sync whenever the
// business profile changes on disk.
type WatchCmd struct {
	Debounce time.Duration `help:"Delay after a config change before resyncing" default:"500ms"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initial sync so the pages match the profile before we start waiting.
	if err := RunSync(root.Config, root.Root); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Resolve absolute path for consistent watching, and watch the directory
	// containing the config file (more reliable than watching the file
	// directly; editors replace files on save).
	absPath, err := filepath.Abs(root.Config)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		return fmt.Errorf("failed to watch config directory: %w", err)
	}

	slog.Info("Watching business profile for changes", "config", absPath, "debounce", w.Debounce)
	fmt.Println("Watching for profile changes (Ctrl-C to stop)")

	debounce := time.NewTimer(w.Debounce)
	if !debounce.Stop() {
		<-debounce.C
	}

	for {
		select {
		case <-ctx.Done():
			fmt.Println("Stopping watcher")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(absPath) {
				continue
			}
			if !event.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
				continue
			}
			slog.Debug("Profile change detected", "op", event.Op.String())
			debounce.Reset(w.Debounce)

		case <-debounce.C:
			if err := RunSync(root.Config, root.Root); err != nil {
				// Keep watching; a half-saved profile fails validation and
				// the next save gets another chance.
				slog.Error("Sync failed", "error", err)
			}

		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", "error", watchErr)
		}
	}
}
