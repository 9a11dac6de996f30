//go:build darwin

package config

// ToggleHotkeyLabel is the human readable form of the toggle shortcut.
const ToggleHotkeyLabel = "Cmd+Option+O"
