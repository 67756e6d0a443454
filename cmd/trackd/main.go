package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"trackd/internal/poller"
	"trackd/internal/progress"
	"trackd/internal/storage"
	"trackd/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "trackd failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	dbPath, err := resolveDBPath(cfg.DBPath)
	if err != nil {
		return err
	}
	store, err := storage.OpenSQLite(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	engine := progress.NewEngine(store)

	pol := poller.New(time.Duration(cfg.ReminderPollSeconds)*time.Second, cfg.PollerBuffer)
	pol.Start()
	defer pol.Stop()

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}

	model := update.NewModelWithConfig(engine, pol, notifier, cfg)
	program := tea.NewProgram(model)

	watcher, err := storage.NewWatcher(dbPath, time.Duration(cfg.WatchPollSeconds)*time.Second, func() {
		program.Send(update.StoreChangedMsg{})
	})
	if err != nil {
		return err
	}
	watcher.Start()
	defer watcher.Stop()

	// Catch reminders already due instead of waiting a full interval.
	pol.Kick()

	_, err = program.Run()
	return err
}

func resolveDBPath(configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	dir := filepath.Join(home, ".trackd")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return filepath.Join(dir, "trackd.db"), nil
}
