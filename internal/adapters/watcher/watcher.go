package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/kin/internal/core/domain"
	"go.trai.ch/kin/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 16

// Watcher follows a single file. The parent directory is watched so that
// editors replacing the file through a rename are still noticed.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	logger    ports.Logger
	window    time.Duration
	target    string
	events    chan ports.WatchEvent
	closeOnce sync.Once
}

// NewWatcher creates a watcher that debounces events over window.
func NewWatcher(logger ports.Logger, window time.Duration) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatcherFailed.Error())
	}
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Watcher{
		fsWatcher: w,
		logger:    logger,
		window:    window,
		events:    make(chan ports.WatchEvent, eventChannelBuffer),
	}, nil
}

// Start begins watching path until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", path)
	}
	w.target = abs

	if err := w.fsWatcher.Add(filepath.Dir(abs)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "path", abs)
	}

	go w.processEvents(ctx)
	return nil
}

// Stop releases the underlying file system watcher.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events yields debounced changes to the watched file. It ends once the watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	var (
		mu   sync.Mutex
		last ports.WatchOp
		done bool
	)
	debouncer := NewDebouncer(w.window, func(paths []string) {
		mu.Lock()
		defer mu.Unlock()
		if done {
			return
		}
		for _, p := range paths {
			select {
			case w.events <- ports.WatchEvent{Path: p, Operation: last}:
			default:
				// A reload is already queued.
			}
		}
	})

	defer func() {
		mu.Lock()
		done = true
		close(w.events)
		mu.Unlock()
	}()
	// Changes still inside the window are delivered before the channel closes.
	defer debouncer.Flush()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.target {
				continue
			}
			op, ok := convertOp(event.Op)
			if !ok {
				continue
			}
			mu.Lock()
			last = op
			mu.Unlock()
			debouncer.Add(w.target)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher: file system error: " + err.Error())
		}
	}
}

func convertOp(op fsnotify.Op) (ports.WatchOp, bool) {
	switch {
	case op.Has(fsnotify.Write):
		return ports.OpWrite, true
	case op.Has(fsnotify.Create):
		return ports.OpCreate, true
	case op.Has(fsnotify.Remove):
		return ports.OpRemove, true
	case op.Has(fsnotify.Rename):
		return ports.OpRename, true
	}
	return 0, false
}
