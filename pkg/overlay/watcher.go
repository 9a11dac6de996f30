package overlay

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/jorge-trivilin/macOs-desktop-overlay/pkg/images"
	"github.com/jorge-trivilin/macOs-desktop-overlay/util"
	"github.com/jorge-trivilin/macOs-desktop-overlay/util/log"
)

// ScreenWatcher notices display configuration changes and calls onChange,
// at most once per interval.
type ScreenWatcher struct {
	source   DisplaySource
	dispatch images.Dispatcher
	interval time.Duration
	limiter  *rate.Limiter
	onChange func()
	running  *util.SafeFlag

	last   []Display
	primed bool
}

// NewScreenWatcher creates a watcher polling source every interval.
func NewScreenWatcher(source DisplaySource, dispatch images.Dispatcher, interval time.Duration, onChange func()) *ScreenWatcher {
	return &ScreenWatcher{
		source:   source,
		dispatch: dispatch,
		interval: interval,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		onChange: onChange,
		running:  util.NewSafeFlag(false),
	}
}

// Run polls until ctx is done. Sources that cache their list are refreshed
// here, off the UI loop; the comparison itself is dispatched to the UI loop
// since screen APIs are main-thread only on some platforms.
func (w *ScreenWatcher) Run(ctx context.Context) {
	if w.interval <= 0 {
		log.Debugf("ScreenWatcher: disabled")
		return
	}
	if !w.running.TrySet() {
		return
	}
	defer w.running.Set(false)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.poll()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.poll()
		}
	}
}

func (w *ScreenWatcher) poll() {
	if err := RefreshDisplays(w.source); err != nil {
		log.Debugf("ScreenWatcher: refresh failed: %v", err)
		return
	}
	w.dispatch(w.check)
}

// check compares the current displays with the last seen list. UI loop only.
func (w *ScreenWatcher) check() {
	displays, err := w.source.Displays()
	if err != nil {
		log.Debugf("ScreenWatcher: %v", err)
		return
	}
	if !w.primed {
		w.last, w.primed = displays, true
		return
	}
	if sameDisplays(w.last, displays) {
		return
	}
	if !w.limiter.Allow() {
		// Retried on the next tick since last is left untouched.
		return
	}

	log.Printf("ScreenWatcher: display layout changed (%d -> %d displays)", len(w.last), len(displays))
	w.last = displays
	w.onChange()
}
