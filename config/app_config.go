package config

import (
	"image/color"
	"runtime"
	"time"

	"fyne.io/fyne/v2"
)

// DefaultWallpaperKey is the key for the wallpaper selected at startup
const DefaultWallpaperKey = "default_wallpaper"

// FitModeKey is the key for how a wallpaper is fitted to each display
const FitModeKey = "fit_mode"

// PlaceholderColorKey is the key for the fill colour shown when no image resolves
const PlaceholderColorKey = "placeholder_color"

// HotkeyEnabledKey is the key for the global toggle hotkey
const HotkeyEnabledKey = "hotkey_enabled"

// ScreenPollIntervalKey is the key for the display change poll interval in seconds
const ScreenPollIntervalKey = "screen_poll_interval"

// PreloadWallpapersKey is the key for warming the image cache with bundled wallpapers
const PreloadWallpapersKey = "preload_wallpapers"

// Fit mode values stored under FitModeKey.
const (
	FitStretch = "stretch"
	FitFill    = "fill"
	FitSmart   = "smart"
)

// defaultPlaceholder is a dark slate, close to the macOS login background.
var defaultPlaceholder = color.NRGBA{R: 0x1e, G: 0x22, B: 0x2a, A: 0xff}

// AppConfig is a read-mostly view of the application preferences.
// The overlay selection itself is never stored here.
type AppConfig struct {
	prefs fyne.Preferences
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	return &AppConfig{prefs: p}
}

// GetDefaultWallpaper returns the bundled wallpaper name shown at startup
func (c *AppConfig) GetDefaultWallpaper() string {
	return c.prefs.StringWithFallback(DefaultWallpaperKey, defaultWallpaperForOS())
}

// SetDefaultWallpaper sets the bundled wallpaper name shown at startup
func (c *AppConfig) SetDefaultWallpaper(name string) {
	c.prefs.SetString(DefaultWallpaperKey, name)
}

// GetFitMode returns the fit mode, falling back to stretch for unknown values
func (c *AppConfig) GetFitMode() string {
	switch m := c.prefs.StringWithFallback(FitModeKey, FitFill); m {
	case FitStretch, FitFill, FitSmart:
		return m
	default:
		return FitStretch
	}
}

// SetFitMode sets the fit mode
func (c *AppConfig) SetFitMode(mode string) {
	c.prefs.SetString(FitModeKey, mode)
}

// GetPlaceholderColor returns the placeholder fill colour.
// The preference holds a packed 0xRRGGBB value.
func (c *AppConfig) GetPlaceholderColor() color.Color {
	v := c.prefs.IntWithFallback(PlaceholderColorKey, -1)
	if v < 0 || v > 0xffffff {
		return defaultPlaceholder
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// SetPlaceholderColor sets the placeholder fill colour as 0xRRGGBB
func (c *AppConfig) SetPlaceholderColor(rgb int) {
	c.prefs.SetInt(PlaceholderColorKey, rgb)
}

// GetHotkeyEnabled returns whether the global toggle hotkey is registered
func (c *AppConfig) GetHotkeyEnabled() bool {
	return c.prefs.BoolWithFallback(HotkeyEnabledKey, true)
}

// SetHotkeyEnabled sets whether the global toggle hotkey is registered
func (c *AppConfig) SetHotkeyEnabled(enabled bool) {
	c.prefs.SetBool(HotkeyEnabledKey, enabled)
}

// GetScreenPollInterval returns how often the display list is checked. Zero disables the check.
func (c *AppConfig) GetScreenPollInterval() time.Duration {
	secs := c.prefs.IntWithFallback(ScreenPollIntervalKey, 3)
	if secs < 0 {
		secs = 0
	}
	return time.Duration(secs) * time.Second
}

// SetScreenPollInterval sets the display poll interval in seconds
func (c *AppConfig) SetScreenPollInterval(secs int) {
	c.prefs.SetInt(ScreenPollIntervalKey, secs)
}

// GetPreloadWallpapers returns whether bundled wallpapers are decoded at startup
func (c *AppConfig) GetPreloadWallpapers() bool {
	return c.prefs.BoolWithFallback(PreloadWallpapersKey, false)
}

// SetPreloadWallpapers sets whether bundled wallpapers are decoded at startup
func (c *AppConfig) SetPreloadWallpapers(enabled bool) {
	c.prefs.SetBool(PreloadWallpapersKey, enabled)
}

func defaultWallpaperForOS() string {
	switch runtime.GOOS {
	case "darwin":
		return "Mojave"
	case "windows":
		return "Windows"
	default:
		return "Default"
	}
}
