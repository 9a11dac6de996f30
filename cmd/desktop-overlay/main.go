package main

import (
	"fyne.io/fyne/v2/app"

	"github.com/jorge-trivilin/macOs-desktop-overlay/config"
	"github.com/jorge-trivilin/macOs-desktop-overlay/ui"
	"github.com/jorge-trivilin/macOs-desktop-overlay/util/log"
)

func main() {
	acquired, err := acquireLock()
	if err != nil {
		log.Fatalf("Failed to acquire single-instance lock: %v", err)
	}
	if !acquired {
		log.Printf("Another instance of %s is already running.", config.AppName)
		return
	}
	defer releaseLock()

	oa, err := ui.NewOverlayApp(app.NewWithID(config.AppID), startHotkey)
	if err != nil {
		releaseLock()
		log.Fatalf("Failed to start %s: %v", config.AppName, err)
	}
	oa.Run()
}
