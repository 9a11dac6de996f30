// Package ui wires the overlay into a fyne tray application.
package ui

import (
	"context"
	"errors"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/jorge-trivilin/macOs-desktop-overlay/asset"
	"github.com/jorge-trivilin/macOs-desktop-overlay/config"
	"github.com/jorge-trivilin/macOs-desktop-overlay/pkg/catalog"
	"github.com/jorge-trivilin/macOs-desktop-overlay/pkg/images"
	"github.com/jorge-trivilin/macOs-desktop-overlay/pkg/overlay"
	"github.com/jorge-trivilin/macOs-desktop-overlay/util/log"
)

// ErrTrayUnsupported is returned when the fyne driver has no system tray.
var ErrTrayUnsupported = errors.New("tray icon not supported on this platform")

// OS abstracts the per-platform application behaviour.
type OS interface {
	// TransformToBackground hides the app from the Dock or task switcher.
	TransformToBackground()
}

// Stopper releases a running background listener.
type Stopper interface {
	Stop()
}

// HotkeyStarter registers the global toggle shortcut and calls toggle on every
// press, from any goroutine. It returns nil when nothing was registered.
type HotkeyStarter func(toggle func()) Stopper

// OverlayApp is the composition root: it owns the image cache, the overlay
// controller and the tray menu for the lifetime of the fyne app.
type OverlayApp struct {
	app      fyne.App
	assetMgr *asset.Manager
	cfg      *config.AppConfig
	catalog  *catalog.Catalog
	os       OS
	platform overlay.Platform

	startHotkey HotkeyStarter

	loader     *images.Loader
	controller *overlay.Controller
	menu       *MenuController
	watcher    *overlay.ScreenWatcher
	hotkey     Stopper
	cancel     context.CancelFunc
	background sync.WaitGroup
}

// NewOverlayApp builds the overlay app on top of a and installs the tray menu.
// startHotkey may be nil when the build has no global shortcut support.
func NewOverlayApp(a fyne.App, startHotkey HotkeyStarter) (*OverlayApp, error) {
	desk, ok := a.(desktop.App)
	if !ok {
		return nil, ErrTrayUnsupported
	}
	cfg := config.NewAppConfig(a.Preferences())
	oa := newOverlayApp(a, cfg, overlay.NewFynePlatform(a, cfg.GetPlaceholderColor()), startHotkey)
	oa.createTray(desk)
	return oa, nil
}

func newOverlayApp(a fyne.App, cfg *config.AppConfig, platform overlay.Platform, startHotkey HotkeyStarter) *OverlayApp {
	am := asset.NewManager()

	cat, err := catalog.Load(am)
	if err != nil {
		log.Printf("Failed to load wallpaper catalog: %v", err)
		cat = catalog.New(nil)
	}

	loader := images.NewLoader(images.NewImageStore(), nil, fyne.Do)
	ctrl := overlay.NewController(platform, loader, cat, overlay.Options{
		DefaultWallpaper: cfg.GetDefaultWallpaper(),
		FitMode:          images.ParseFitMode(cfg.GetFitMode()),
	})

	oa := &OverlayApp{
		app:        a,
		assetMgr:   am,
		cfg:        cfg,
		catalog:    cat,
		os:          getOS(),
		platform:    platform,
		startHotkey: startHotkey,
		loader:      loader,
		controller:  ctrl,
	}
	oa.menu = NewMenuController(ctrl, cat.Names(), am, MenuActions{
		PickImage: func(onChosen func(string)) { pickImage(a, onChosen) },
		About:     oa.showAbout,
		Quit:      a.Quit,
	})
	ctrl.SetOnChange(oa.menu.Refresh)
	oa.watcher = overlay.NewScreenWatcher(platform, fyne.Do, cfg.GetScreenPollInterval(), ctrl.Rebuild)

	a.Lifecycle().SetOnStarted(oa.start)
	a.Lifecycle().SetOnStopped(oa.stop)
	return oa
}

// createTray installs the tray icon and menu.
func (oa *OverlayApp) createTray(desk desktop.App) {
	desk.SetSystemTrayMenu(oa.menu.Menu())
	trayIcon, err := oa.assetMgr.GetIcon("tray.svg")
	if err != nil {
		log.Printf("Failed to load tray icon: %v", err)
		return
	}
	desk.SetSystemTrayIcon(trayIcon)
	oa.app.SetIcon(trayIcon)
}

// start runs once the fyne event loop is up. The first display query
// happens on a goroutine; the windows are built back on the UI loop.
func (oa *OverlayApp) start() {
	oa.os.TransformToBackground()

	ctx, cancel := context.WithCancel(context.Background())
	oa.cancel = cancel
	oa.background.Add(1)
	go func() {
		defer oa.background.Done()
		if err := overlay.RefreshDisplays(oa.platform); err != nil {
			log.Printf("Failed to list displays: %v", err)
		}
		fyne.Do(func() {
			if ctx.Err() == nil {
				oa.controller.Rebuild()
			}
		})
		oa.watcher.Run(ctx)
	}()

	if oa.cfg.GetHotkeyEnabled() && oa.startHotkey != nil {
		oa.hotkey = oa.startHotkey(func() {
			fyne.Do(oa.controller.Toggle)
		})
	}

	if oa.cfg.GetPreloadWallpapers() {
		go func() {
			n, err := oa.loader.Preload(ctx, oa.catalog.Paths(), preloadLimit)
			if err != nil {
				log.Debugf("Preload stopped: %v", err)
				return
			}
			log.Printf("Preloaded %d bundled wallpaper(s)", n)
		}()
	}
	log.Printf("%s %s started", config.AppName, config.AppVersion)
}

// stop tears the overlay down when the fyne app exits.
func (oa *OverlayApp) stop() {
	if oa.cancel != nil {
		oa.cancel()
	}
	oa.background.Wait()
	if oa.hotkey != nil {
		oa.hotkey.Stop()
		oa.hotkey = nil
	}
	oa.controller.Teardown()
	log.Printf("%s stopped", config.AppName)
}

// Run starts the fyne event loop and blocks until the app quits.
func (oa *OverlayApp) Run() {
	oa.app.Run()
}
