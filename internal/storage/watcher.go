package storage

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Watcher polls SQLite's data_version pragma on its own connection
// and invokes the callback whenever another connection has written to
// the database file. The signal is advisory: the host reloads the
// full state and re-derives its views, there is no merge.
type Watcher struct {
	db       *sql.DB
	interval time.Duration
	onChange func()

	mu      sync.Mutex
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
}

// NewWatcher opens a dedicated connection to the database file.
// data_version only moves for writes made through other connections,
// so the watcher must not share the store's handle.
func NewWatcher(path string, interval time.Duration, onChange func()) (*Watcher, error) {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("storage: open watch connection: %w", err)
	}
	// A pool would rotate connections and reset the version baseline.
	db.SetMaxOpenConns(1)
	return &Watcher{
		db:       db,
		interval: interval,
		onChange: onChange,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return
	}
	w.started = true
	go w.loop()
}

func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.started || w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	close(w.stopCh)
	w.mu.Unlock()
	<-w.doneCh
	_ = w.db.Close()
}

func (w *Watcher) loop() {
	defer close(w.doneCh)

	last, _ := w.dataVersion()
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			current, err := w.dataVersion()
			if err != nil {
				continue
			}
			if current != last {
				last = current
				if w.onChange != nil {
					w.onChange()
				}
			}
		case <-w.stopCh:
			return
		}
	}
}

func (w *Watcher) dataVersion() (int64, error) {
	var version int64
	if err := w.db.QueryRow("PRAGMA data_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("storage: read data_version: %w", err)
	}
	return version, nil
}
