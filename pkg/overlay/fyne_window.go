package overlay

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/jorge-trivilin/macOs-desktop-overlay/util"
	"github.com/jorge-trivilin/macOs-desktop-overlay/util/log"
)

// ErrPlacementUnsupported is returned where the OS gives no way to push a
// click-through window behind the desktop icons.
var ErrPlacementUnsupported = errors.New("overlay placement is not supported on this platform")

// errDisplaysNotLoaded is returned by Displays before the first Refresh.
var errDisplaysNotLoaded = errors.New("display list not loaded yet")

// FynePlatform creates borderless fyne windows and places them natively.
//
// Where listing displays blocks (xrandr, user32 enumeration), Refresh queries
// them off the UI loop and Displays returns the cached list. On macOS the
// AppKit query is a main-thread call, so Displays asks AppKit directly.
type FynePlatform struct {
	app         fyne.App
	placeholder color.Color
	warned      *util.SafeFlag

	mu       sync.Mutex
	displays []Display
	loaded   bool
}

// NewFynePlatform creates a platform backed by the fyne desktop driver.
func NewFynePlatform(a fyne.App, placeholder color.Color) *FynePlatform {
	return &FynePlatform{app: a, placeholder: placeholder, warned: util.NewSafeFlag(false)}
}

// Refresh reloads the display list. It may block; call it off the UI loop.
func (p *FynePlatform) Refresh() error {
	if liveDisplays {
		return nil
	}
	displays, err := listDisplays()
	if err != nil {
		return err
	}
	p.mu.Lock()
	p.displays, p.loaded = displays, true
	p.mu.Unlock()
	return nil
}

// Displays returns the attached displays without blocking.
func (p *FynePlatform) Displays() ([]Display, error) {
	if liveDisplays {
		return listDisplays()
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.loaded {
		return nil, errDisplaysNotLoaded
	}
	out := make([]Display, len(p.displays))
	copy(out, p.displays)
	return out, nil
}

// NewWindow creates a hidden borderless window sized to d. Where the window
// could not be kept behind the icons and out of the way of the mouse it
// returns ErrPlacementUnsupported instead of covering the desktop.
func (p *FynePlatform) NewWindow(d Display) (Window, error) {
	if !placementSupported {
		if p.warned.TrySet() {
			log.Printf("Overlay: %v; overlay windows are disabled, the tray stays available", ErrPlacementUnsupported)
		}
		return nil, ErrPlacementUnsupported
	}

	drv, ok := p.app.Driver().(desktop.Driver)
	if !ok {
		return nil, fmt.Errorf("desktop driver not available")
	}

	win := drv.CreateSplashWindow()
	win.SetTitle(fmt.Sprintf("Overlay %d", d.ID))
	win.SetPadded(false)

	bg := canvas.NewRectangle(p.placeholder)
	img := &canvas.Image{FillMode: canvas.ImageFillStretch, ScaleMode: canvas.ImageScaleSmooth}
	img.Hide()

	win.SetContent(container.NewStack(bg, img))
	win.Resize(fyne.NewSize(float32(d.Bounds.Dx()), float32(d.Bounds.Dy())))

	return &fyneWindow{win: win, display: d, image: img}, nil
}

// fyneWindow is an overlay Window backed by a fyne splash window.
type fyneWindow struct {
	win     fyne.Window
	display Display
	image   *canvas.Image
	visible bool
	placed  bool
	closed  bool
}

func (w *fyneWindow) Display() Display {
	return w.display
}

func (w *fyneWindow) SetImage(img image.Image) {
	if w.closed || img == nil {
		return
	}
	w.image.Image = img
	w.image.Show()
	w.image.Refresh()
}

func (w *fyneWindow) ShowPlaceholder() {
	if w.closed {
		return
	}
	w.image.Hide()
}

func (w *fyneWindow) Show() {
	if w.closed {
		return
	}
	w.win.Show()
	if !w.placed {
		if err := placeWindow(w.win, w.display); err != nil {
			log.Printf("Overlay: cannot place window on %s: %v", w.display, err)
		}
		w.placed = true
	}
	w.visible = true
}

func (w *fyneWindow) Hide() {
	if w.closed {
		return
	}
	w.win.Hide()
	w.visible = false
}

func (w *fyneWindow) Visible() bool {
	return w.visible && !w.closed
}

func (w *fyneWindow) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.visible = false
	w.win.Close()
}
