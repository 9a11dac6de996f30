//go:build linux && !x11hotkey

package main

import (
	"github.com/jorge-trivilin/macOs-desktop-overlay/ui"
	"github.com/jorge-trivilin/macOs-desktop-overlay/util/log"
)

// startHotkey is a no-op: build with -tags x11hotkey to link the X11 shortcut.
func startHotkey(func()) ui.Stopper {
	log.Printf("Global hotkey not built in; rebuild with -tags x11hotkey to enable it")
	return nil
}
