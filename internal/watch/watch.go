// Package watch re-interprets a layout file whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/markolybrx/layout"
)

const defaultDebounce = 300 * time.Millisecond

// Options configures a Watcher.
type Options struct {
	Debounce  time.Duration
	Interpret layout.Options
	Logger    *zap.Logger
}

// Result is the outcome of interpreting the watched file once.
type Result struct {
	Path string
	Node *layout.VisualNode
	Err  error
	At   time.Time
}

// Watcher watches a single layout file. Results carries the latest
// interpretation; a slow reader only ever misses superseded results.
type Watcher struct {
	mu      sync.Mutex
	path    string
	dir     string
	opts    Options
	logger  *zap.Logger
	fsw     *fsnotify.Watcher
	results chan Result
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
	stopped bool
}

// New creates a watcher for path. Call Start to begin watching.
func New(path string, opts Options) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if opts.Debounce <= 0 {
		opts.Debounce = defaultDebounce
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		path:    abs,
		dir:     filepath.Dir(abs),
		opts:    opts,
		logger:  logger.With(zap.String("path", abs)),
		fsw:     fsw,
		results: make(chan Result, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Results returns the channel of interpretation results. It is closed when
// the watcher stops.
func (w *Watcher) Results() <-chan Result {
	return w.results
}

// Start emits an initial result and then watches for changes in the background.
// The directory is watched rather than the file so editors that replace the
// file on save keep being followed.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return fmt.Errorf("watcher stopped")
	}
	if w.running {
		return nil
	}
	if err := w.fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.running = true
	w.logger.Debug("watching layout", zap.Duration("debounce", w.opts.Debounce))

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for its loop to exit. It is safe to call
// more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	running := w.running
	w.mu.Unlock()

	close(w.stopCh)
	if running {
		<-w.doneCh
	} else {
		close(w.results)
	}
	if err := w.fsw.Close(); err != nil {
		w.logger.Warn("close watcher", zap.Error(err))
	}
	w.logger.Debug("watcher stopped")
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)
	defer close(w.results)

	w.interpret()

	debounce := time.NewTimer(w.opts.Debounce)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("context cancelled")
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("layout changed", zap.Stringer("op", event.Op))
			debounce.Reset(w.opts.Debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", zap.Error(err))

		case <-debounce.C:
			w.interpret()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0
}

func (w *Watcher) interpret() {
	node, err := layout.InterpretFileWithOptions(w.path, w.opts.Interpret)
	if err != nil {
		w.logger.Warn("interpret layout", zap.Error(err))
	} else {
		w.logger.Info("interpreted layout", zap.Int("nodes", node.Count()))
	}
	w.emit(Result{Path: w.path, Node: node, Err: err, At: time.Now()})
}

// emit replaces any unread result with r. Only the run loop sends, so a
// drained buffer always has room.
func (w *Watcher) emit(r Result) {
	select {
	case w.results <- r:
		return
	default:
	}
	select {
	case <-w.results:
	default:
	}
	w.results <- r
}
