//go:build !linux || x11hotkey

package main

import (
	"github.com/jorge-trivilin/macOs-desktop-overlay/pkg/hotkey"
	"github.com/jorge-trivilin/macOs-desktop-overlay/ui"
)

// startHotkey registers the global toggle shortcut.
func startHotkey(toggle func()) ui.Stopper {
	if l := hotkey.StartToggleListener(toggle); l != nil {
		return l
	}
	return nil
}
