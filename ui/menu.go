package ui

import (
	"fyne.io/fyne/v2"

	"github.com/jorge-trivilin/macOs-desktop-overlay/asset"
	"github.com/jorge-trivilin/macOs-desktop-overlay/config"
	"github.com/jorge-trivilin/macOs-desktop-overlay/pkg/overlay"
	"github.com/jorge-trivilin/macOs-desktop-overlay/util/log"
)

// overlayController is the part of overlay.Controller driven by the menu.
type overlayController interface {
	Selection() overlay.Selection
	Visible() bool
	Toggle()
	SelectWallpaper(name string)
	SelectCustomImage(path string)
	Teardown()
}

// MenuActions are the menu entries handled outside the overlay controller.
type MenuActions struct {
	// PickImage shows an image picker and calls onChosen on the UI loop,
	// with an empty path when the user cancelled.
	PickImage func(onChosen func(path string))
	About     func()
	Quit      func()
}

// MenuController builds the tray menu. Every item maps to one controller
// transition; menu callbacks arrive on the UI loop.
type MenuController struct {
	ctrl     overlayController
	assetMgr *asset.Manager
	actions  MenuActions

	menu       *fyne.Menu
	toggle     *fyne.MenuItem
	custom     *fyne.MenuItem
	wallpapers []*fyne.MenuItem
	hideIcon   fyne.Resource
	showIcon   fyne.Resource
}

// NewMenuController creates the tray menu listing names in the Wallpaper submenu.
func NewMenuController(ctrl overlayController, names []string, am *asset.Manager, actions MenuActions) *MenuController {
	mc := &MenuController{ctrl: ctrl, assetMgr: am, actions: actions}
	mc.hideIcon = mc.loadIcon("hide.svg")
	mc.showIcon = mc.loadIcon("show.svg")

	mc.toggle = fyne.NewMenuItem(hideOverlayLabel, mc.ctrl.Toggle)

	submenu := fyne.NewMenu(wallpaperLabel)
	for _, name := range names {
		name := name
		item := fyne.NewMenuItem(name, func() {
			mc.ctrl.SelectWallpaper(name)
		})
		submenu.Items = append(submenu.Items, item)
		mc.wallpapers = append(mc.wallpapers, item)
	}
	if len(names) == 0 {
		empty := fyne.NewMenuItem(noWallpaperLabel, nil)
		empty.Disabled = true
		submenu.Items = append(submenu.Items, empty)
	}
	wallpaperItem := mc.createMenuItem(wallpaperLabel, nil, "wallpaper.svg")
	wallpaperItem.ChildMenu = submenu

	mc.custom = mc.createMenuItem(customImageLabel, mc.pickCustomImage, "custom.svg")

	mc.menu = fyne.NewMenu(
		config.AppName,
		mc.toggle,
		fyne.NewMenuItemSeparator(), // Divider line
		wallpaperItem,
		mc.custom,
		fyne.NewMenuItemSeparator(), // Divider line
		mc.createMenuItem(aboutLabel, mc.actions.About, "about.svg"),
		mc.createMenuItem(quitLabel, mc.quit, "quit.svg"),
	)
	mc.update()
	return mc
}

// Menu returns the tray menu.
func (mc *MenuController) Menu() *fyne.Menu {
	return mc.menu
}

// Refresh syncs the toggle label and check marks with the controller and redraws the menu.
func (mc *MenuController) Refresh() {
	mc.update()
	mc.menu.Refresh()
}

func (mc *MenuController) update() {
	if mc.ctrl.Visible() {
		mc.toggle.Label = hideOverlayLabel
		mc.toggle.Icon = mc.hideIcon
	} else {
		mc.toggle.Label = showOverlayLabel
		mc.toggle.Icon = mc.showIcon
	}

	sel := mc.ctrl.Selection()
	_, isCustom := overlay.CustomPath(sel)
	for _, item := range mc.wallpapers {
		item.Checked = !isCustom && item.Label == sel.Name()
	}
	mc.custom.Checked = isCustom
}

func (mc *MenuController) pickCustomImage() {
	if mc.actions.PickImage == nil {
		return
	}
	mc.actions.PickImage(func(path string) {
		if path == "" {
			log.Debugf("Menu: image picker cancelled")
			return
		}
		mc.ctrl.SelectCustomImage(path)
	})
}

func (mc *MenuController) quit() {
	mc.ctrl.Teardown()
	if mc.actions.Quit != nil {
		mc.actions.Quit()
	}
}

func (mc *MenuController) createMenuItem(label string, action func(), iconName string) *fyne.MenuItem {
	mi := fyne.NewMenuItem(label, action)
	mi.Icon = mc.loadIcon(iconName)
	return mi
}

func (mc *MenuController) loadIcon(name string) fyne.Resource {
	icon, err := mc.assetMgr.GetIcon(name)
	if err != nil {
		log.Printf("Failed to load icon: %v", err)
		return nil
	}
	return icon
}
