// Package overlay keeps one click-through wallpaper window per display
// and rebuilds them whenever the selection changes.
package overlay

import (
	"errors"

	"github.com/jorge-trivilin/macOs-desktop-overlay/pkg/catalog"
	"github.com/jorge-trivilin/macOs-desktop-overlay/pkg/images"
	"github.com/jorge-trivilin/macOs-desktop-overlay/util/log"
)

// Options configures a Controller.
type Options struct {
	DefaultWallpaper string
	FitMode          images.FitMode
}

// Controller owns the overlay windows and the current selection.
// All methods must be called from the UI loop.
type Controller struct {
	platform Platform
	loader   *images.Loader
	catalog  *catalog.Catalog
	fitter   *images.Fitter
	fitMode  images.FitMode

	selection  Selection
	windows    []Window
	generation uint64
	onChange   func()
}

// NewController creates a controller showing opts.DefaultWallpaper. No windows
// exist until the first Rebuild.
func NewController(p Platform, loader *images.Loader, cat *catalog.Catalog, opts Options) *Controller {
	return &Controller{
		platform:  p,
		loader:    loader,
		catalog:   cat,
		fitter:    images.NewFitter(),
		fitMode:   opts.FitMode,
		selection: SystemWallpaper{Wallpaper: opts.DefaultWallpaper},
	}
}

// SetOnChange registers fn to run after every transition.
func (c *Controller) SetOnChange(fn func()) {
	c.onChange = fn
}

// Selection returns the current selection.
func (c *Controller) Selection() Selection {
	return c.selection
}

// Windows returns the current overlay windows.
func (c *Controller) Windows() []Window {
	out := make([]Window, len(c.windows))
	copy(out, c.windows)
	return out
}

// Visible reports whether any overlay window is showing.
func (c *Controller) Visible() bool {
	for _, w := range c.windows {
		if w.Visible() {
			return true
		}
	}
	return false
}

// SelectWallpaper switches to a bundled wallpaper, dropping any custom image.
func (c *Controller) SelectWallpaper(name string) {
	log.Printf("Overlay: selecting wallpaper %q", name)
	c.selection = SystemWallpaper{Wallpaper: name}
	c.Rebuild()
}

// SelectCustomImage switches to the image at path.
func (c *Controller) SelectCustomImage(path string) {
	log.Printf("Overlay: selecting custom image %s", path)
	c.selection = CustomImage{Path: path}
	c.Rebuild()
}

// Toggle hides every window if any is visible, otherwise shows them all.
func (c *Controller) Toggle() {
	if c.Visible() {
		for _, w := range c.windows {
			w.Hide()
		}
		log.Debugf("Overlay: hidden")
	} else {
		for _, w := range c.windows {
			w.Show()
		}
		log.Debugf("Overlay: shown")
	}
	c.notify()
}

// Rebuild discards the current windows and creates one per attached display.
func (c *Controller) Rebuild() {
	c.generation++
	gen := c.generation
	c.closeAll()

	displays, err := c.platform.Displays()
	if err != nil {
		log.Printf("Overlay: cannot list displays: %v", err)
	}

	for _, d := range displays {
		w, err := c.platform.NewWindow(d)
		if errors.Is(err, ErrPlacementUnsupported) {
			log.Debugf("Overlay: skipping %s: %v", d, err)
			continue
		}
		if err != nil {
			log.Printf("Overlay: cannot create window for %s: %v", d, err)
			continue
		}
		w.ShowPlaceholder()
		w.Show()
		c.windows = append(c.windows, w)
		c.resolve(w, gen)
	}
	log.Printf("Overlay: rebuilt %d window(s) for %q", len(c.windows), c.selection.Name())
	c.notify()
}

// Teardown hides and closes every window. Pending loads are dropped.
func (c *Controller) Teardown() {
	c.generation++
	for _, w := range c.windows {
		w.Hide()
	}
	c.closeAll()
	log.Debugf("Overlay: torn down")
}

func (c *Controller) closeAll() {
	for _, w := range c.windows {
		w.Close()
	}
	c.windows = nil
}

func (c *Controller) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}
