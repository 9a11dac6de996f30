//go:build linux

package hotkey

import "golang.design/x/hotkey"

const (
	supported = true

	modCtrl = hotkey.ModCtrl
	modAlt  = hotkey.Mod1 // Alt on X11
	keyO    = hotkey.KeyO
)
