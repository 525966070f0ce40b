package nta

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/TALS/errors"
	"github.com/teranos/TALS/logger"
	"github.com/teranos/TALS/nta/model"
	"github.com/teranos/TALS/nta/parser"
)

// Repository holds the active model document and swaps it atomically when
// the backing file changes. Readers borrow the document for the duration of
// one request; the resolver never mutates it, so concurrent reads are safe.
type Repository struct {
	mu   sync.RWMutex
	doc  *model.Document
	path string

	watcher       *fsnotify.Watcher
	debounceTimer *time.Timer
	watchMu       sync.Mutex
}

// NewRepository creates an empty repository
func NewRepository() *Repository {
	return &Repository{}
}

// Document returns the active document, or nil when none is loaded
func (r *Repository) Document() *model.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.doc
}

// SetDocument replaces the active document (used by tests and the CLI)
func (r *Repository) SetDocument(doc *model.Document) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doc = doc
}

// Load reads the model file at path and makes it the active document.
// Parse diagnostics are returned alongside; they do not fail the load.
func (r *Repository) Load(path string) ([]parser.Diagnostic, error) {
	doc, diags, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.doc = doc
	r.path = path
	r.mu.Unlock()

	logger.Infow("Model document loaded",
		"path", path,
		"templates", len(doc.Templates),
		"diagnostics", len(diags))
	return diags, nil
}

// Watch starts reloading the document whenever the backing file changes.
// Rapid successive writes are debounced.
func (r *Repository) Watch() error {
	r.mu.RLock()
	path := r.path
	r.mu.RUnlock()
	if path == "" {
		return errors.New("no model file loaded")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return errors.Wrapf(err, "failed to watch model file %s", path)
	}
	if r.watcher != nil {
		r.watcher.Close()
	}
	r.watcher = watcher

	go r.watchLoop(path)
	return nil
}

func (r *Repository) watchLoop(path string) {
	for {
		select {
		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logger.Debugw("Model file changed",
					"file", event.Name,
					"op", event.Op.String())
				r.scheduleReload(path)
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("Model watcher error", "error", err)
		}
	}
}

func (r *Repository) scheduleReload(path string) {
	r.watchMu.Lock()
	defer r.watchMu.Unlock()

	if r.debounceTimer != nil {
		r.debounceTimer.Stop()
	}
	r.debounceTimer = time.AfterFunc(500*time.Millisecond, func() {
		if _, err := r.Load(path); err != nil {
			logger.Errorw("Model reload failed",
				"path", path,
				"error", err)
		}
	})
}

// Close stops the file watcher if one is running
func (r *Repository) Close() error {
	if r.watcher != nil {
		return r.watcher.Close()
	}
	return nil
}
