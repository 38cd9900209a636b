package shaders

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/jhenstridge/go-inotify"

	"github.com/pixelglue/quadview/lib/config"
)

// Watcher flags the shader pair as changed whenever one of the source
// files is written to. The render loop picks the flag up between
// frames and rebuilds the program there; GL work never happens on the
// watcher goroutine.
type Watcher struct {
	changed atomic.Bool
}

func WatchPair(cfg *config.ShaderCfg) *Watcher {
	w := &Watcher{}
	go w.watch([]string{cfg.Vertex, cfg.Fragment})
	return w
}

// TakeChange reports whether a change happened since the last call,
// clearing the flag.
func (w *Watcher) TakeChange() bool {
	return w.changed.Swap(false)
}

func (w *Watcher) watch(paths []string) {
	watcher, err := inotify.NewWatcher()
	if err != nil {
		w.warn("could not create inotify watcher: %s", err)
		return
	}
	defer func(watcher *inotify.Watcher) {
		err := watcher.Close()
		if err != nil {
			return
		}
	}(watcher)

	for _, p := range paths {
		_, err = watcher.Watch(p)
		if err != nil {
			w.warn("could not watch %s: %s", p, err)
			return
		}
	}

	for ev := range watcher.Event {
		if ev.Mask&inotify.IN_CLOSE_WRITE != 0 {
			// give editors doing write-then-rename a moment to settle
			time.Sleep(100 * time.Millisecond)
			w.changed.Store(true)
		}
	}
}

func (w *Watcher) warn(msg string, args ...interface{}) {
	slog.Warn(fmt.Sprintf(msg, args...), slog.String("module", "shaders"))
}
