//go:build windows

package hotkey

import "golang.design/x/hotkey"

const (
	supported = true

	modCtrl = hotkey.ModCtrl
	modAlt  = hotkey.ModAlt
	keyO    = hotkey.KeyO
)
