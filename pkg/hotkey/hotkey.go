// Package hotkey registers the global shortcut that toggles the overlay.
//
// On Linux the underlying library talks to X11 as soon as it is linked in,
// so the binary only links this package there when built with -tags x11hotkey.
package hotkey

import (
	"sync"
	"time"

	"golang.design/x/hotkey"

	"github.com/jorge-trivilin/macOs-desktop-overlay/config"
	"github.com/jorge-trivilin/macOs-desktop-overlay/util/log"
)

// Listener owns a registered hotkey and its keydown goroutine.
type Listener struct {
	hk   *hotkey.Hotkey
	name string
	stop chan struct{}
	once sync.Once
}

// StartToggleListener registers the toggle shortcut and calls action on every press.
// action runs on the listener goroutine; callers dispatch to the UI loop themselves.
// A nil Listener is returned when the shortcut cannot be registered.
func StartToggleListener(action func()) *Listener {
	if !supported {
		log.Debugf("Hotkeys are not supported on this platform")
		return nil
	}
	return registerAndListen(hotkey.New([]hotkey.Modifier{modCtrl, modAlt}, keyO), "Toggle Overlay ("+config.ToggleHotkeyLabel+")", action)
}

func registerAndListen(hk *hotkey.Hotkey, name string, action func()) *Listener {
	if err := hk.Register(); err != nil {
		log.Printf("Failed to register hotkey %s: %v", name, err)
		return nil
	}
	log.Printf("Registered hotkey: %s", name)

	l := &Listener{hk: hk, name: name, stop: make(chan struct{})}
	go func() {
		for {
			select {
			case <-l.stop:
				return
			case _, ok := <-hk.Keydown():
				if !ok {
					return
				}
				log.Debugf("Hotkey pressed: %s", name)
				action()
				// Key repeat would otherwise flicker the overlay.
				time.Sleep(200 * time.Millisecond)
			}
		}
	}()
	return l
}

// Stop unregisters the hotkey. Safe on a nil Listener and safe to call twice.
func (l *Listener) Stop() {
	if l == nil {
		return
	}
	l.once.Do(func() {
		close(l.stop)
		if err := l.hk.Unregister(); err != nil {
			log.Printf("Failed to unregister hotkey %s: %v", l.name, err)
		}
	})
}
