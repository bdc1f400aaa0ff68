package watch

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/agentx-labs/agents-manifest/internal/builder"
	"github.com/agentx-labs/agents-manifest/internal/registry"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event before a rebuild.
const DefaultDebounce = 200 * time.Millisecond

// Watcher monitors asset directories and triggers rebuilds.
type Watcher struct {
	Debounce time.Duration
	Logger   *log.Logger

	targets func() []string
	ignore  map[string]bool
	watcher *fsnotify.Watcher
}

// New creates a watcher over the directories returned by targets. targets is
// called again after every rebuild so new project directories get watched.
// Events on any path in ignore (e.g., the manifest itself) are dropped.
func New(targets func() []string, ignore ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		Debounce: DefaultDebounce,
		Logger:   log.New(io.Discard, "", 0),
		targets:  targets,
		ignore:   make(map[string]bool, len(ignore)),
		watcher:  fw,
	}
	for _, p := range ignore {
		w.ignore[filepath.Clean(p)] = true
	}
	return w, nil
}

// Run blocks until ctx is cancelled, calling rebuild after each debounced
// burst of relevant events. Rebuild errors are logged and watching continues.
func (w *Watcher) Run(ctx context.Context, rebuild func() error) error {
	defer w.watcher.Close()
	w.refresh()

	timer := time.NewTimer(w.Debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			timer.Reset(w.Debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.Logger.Printf("watch error: %v", err)

		case <-timer.C:
			if err := rebuild(); err != nil {
				w.Logger.Printf("rebuild failed: %v", err)
			}
			w.refresh()
		}
	}
}

// Watched returns the directories currently being watched.
func (w *Watcher) Watched() []string {
	return w.watcher.WatchList()
}

// refresh (re)adds every target directory. Adding a watched path again is a
// no-op; directories that disappeared are dropped by fsnotify on their own.
func (w *Watcher) refresh() {
	for _, dir := range w.targets() {
		if err := w.watcher.Add(filepath.Clean(dir)); err != nil {
			w.Logger.Printf("cannot watch %s: %v", dir, err)
		}
	}
}

// relevant filters out chmod-only events, hidden files, and ignored paths.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	if registry.IsHidden(filepath.Base(event.Name)) {
		return false
	}
	return !w.ignore[filepath.Clean(event.Name)]
}

// Targets returns the directories to watch for a build: each category
// directory (or its nearest existing parent when it does not exist yet) and
// every reference project directory.
func Targets(opts builder.Options) []string {
	src := opts.Sources()

	var dirs []string
	seen := make(map[string]bool)
	add := func(dir string) {
		if dir != "" && !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}

	for _, s := range src.All() {
		add(existingAncestor(s.BasePath))
	}
	for _, entry := range registry.TryListDir(src.Reference.BasePath) {
		project := filepath.Join(src.Reference.BasePath, entry.Name())
		if info, err := os.Stat(project); err == nil && info.IsDir() {
			add(project)
		}
	}
	return dirs
}

// existingAncestor returns dir if it is an existing directory, otherwise the
// closest parent that is. Returns "" if none exists.
func existingAncestor(dir string) string {
	for {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
