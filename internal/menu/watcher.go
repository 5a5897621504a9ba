package menu

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Holder shares the current tree between request handlers and the watcher.
type Holder struct {
	mu   sync.RWMutex
	tree *Tree
}

// NewHolder wraps an initial tree.
func NewHolder(t *Tree) *Holder {
	return &Holder{tree: t}
}

// Tree returns the current tree.
func (h *Holder) Tree() *Tree {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.tree
}

// Set swaps in a new tree.
func (h *Holder) Set(t *Tree) {
	h.mu.Lock()
	h.tree = t
	h.mu.Unlock()
}

// Watcher reloads a menu file into a Holder whenever it changes on disk.
// Invalid documents are logged and the previous tree is kept.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	holder      *Holder
	path        string
	logger      *zap.Logger
	debounceDur time.Duration
	pending     time.Time
	running     bool
	stopCh      chan struct{}
	doneCh      chan struct{}

	// OnReload, when set, runs after every successful reload.
	OnReload func(*Tree)
}

// NewWatcher prepares a watcher for path. Call Start to begin watching.
func NewWatcher(path string, holder *Holder, logger *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}
	return &Watcher{
		watcher:     fw,
		holder:      holder,
		path:        abs,
		logger:      logger,
		debounceDur: 200 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start watches the directory holding the menu file. Editors often replace
// files by rename, so the file itself is not watched directly.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	w.logger.Info("watching menu file", zap.String("path", w.path))
	go w.run(ctx)
	return nil
}

// Stop ends the event loop and releases the fsnotify handle.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		w.watcher.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("close menu watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("menu watcher error", zap.Error(err))
		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
		return
	}
	w.mu.Lock()
	w.pending = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) flush() {
	w.mu.Lock()
	if w.pending.IsZero() || time.Since(w.pending) < w.debounceDur {
		w.mu.Unlock()
		return
	}
	w.pending = time.Time{}
	w.mu.Unlock()

	t, err := Load(w.path)
	if err != nil {
		w.logger.Warn("menu reload rejected, keeping previous tree", zap.Error(err))
		return
	}
	w.holder.Set(t)
	w.logger.Info("menu reloaded", zap.String("path", w.path), zap.Int("items", len(t.Items)))
	if w.OnReload != nil {
		w.OnReload(t)
	}
}
