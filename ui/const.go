package ui

import (
	"time"

	"github.com/jorge-trivilin/macOs-desktop-overlay/config"
)

// aboutSplashTime is how long the about screen is shown
const aboutSplashTime = 3 * time.Second

// preloadLimit is the number of bundled wallpapers decoded in parallel at startup
const preloadLimit = 2

// Tray menu copy
const (
	hideOverlayLabel = "Hide Overlay"
	showOverlayLabel = "Show Overlay"
	wallpaperLabel   = "Wallpaper"
	noWallpaperLabel = "No Bundled Wallpapers"
	customImageLabel = "Choose Custom Image…"
	aboutLabel       = "About " + config.AppName
	quitLabel        = "Quit"
)
