//go:build darwin

package overlay

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework CoreGraphics

#import <AppKit/AppKit.h>
#include <stdint.h>

int overlayScreenCount(void) {
    return (int)[[NSScreen screens] count];
}

void overlayScreenFrame(int i, double *x, double *y, double *w, double *h, double *scale) {
    NSArray<NSScreen *> *screens = [NSScreen screens];
    if (i < 0 || i >= (int)[screens count]) {
        *x = *y = *w = *h = 0;
        *scale = 1;
        return;
    }
    NSScreen *screen = [screens objectAtIndex:i];
    NSRect frame = [screen frame];
    *x = frame.origin.x;
    *y = frame.origin.y;
    *w = frame.size.width;
    *h = frame.size.height;
    *scale = [screen backingScaleFactor];
}

// overlayPlaceWindow puts the window just above the desktop picture and below
// the icons, on every space, ignoring the mouse.
void overlayPlaceWindow(uintptr_t ptr, double x, double y, double w, double h) {
    NSWindow *win = (__bridge NSWindow *)(void *)ptr;
    [win setLevel:CGWindowLevelForKey(kCGDesktopWindowLevelKey) + 1];
    [win setIgnoresMouseEvents:YES];
    [win setHasShadow:NO];
    [win setCollectionBehavior:NSWindowCollectionBehaviorCanJoinAllSpaces |
                               NSWindowCollectionBehaviorStationary |
                               NSWindowCollectionBehaviorIgnoresCycle];
    [win setFrame:NSMakeRect(x, y, w, h) display:YES];
}
*/
import "C"

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"

	"github.com/jorge-trivilin/macOs-desktop-overlay/util/log"
)

const (
	// liveDisplays is true: NSScreen is a cheap main-thread query.
	liveDisplays       = true
	placementSupported = true
)

// listDisplays returns every NSScreen. Must run on the main thread.
func listDisplays() ([]Display, error) {
	n := int(C.overlayScreenCount())
	if n == 0 {
		return nil, fmt.Errorf("no screens attached")
	}

	displays := make([]Display, 0, n)
	for i := 0; i < n; i++ {
		var x, y, w, h, scale C.double
		C.overlayScreenFrame(C.int(i), &x, &y, &w, &h, &scale)
		displays = append(displays, Display{
			ID:     i,
			Name:   fmt.Sprintf("Screen %d", i+1),
			Bounds: image.Rect(int(x), int(y), int(x)+int(w), int(y)+int(h)),
			Scale:  float64(scale),
		})
	}
	return displays, nil
}

// placeWindow configures the NSWindow behind w as a desktop overlay on d.
func placeWindow(w fyne.Window, d Display) error {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return fmt.Errorf("window does not expose a native handle")
	}

	b := d.Bounds
	nw.RunNative(func(ctx any) {
		mac, ok := ctx.(driver.MacWindowContext)
		if !ok || mac.NSWindow == 0 {
			log.Printf("Overlay: no NSWindow for %s", d)
			return
		}
		C.overlayPlaceWindow(C.uintptr_t(mac.NSWindow),
			C.double(b.Min.X), C.double(b.Min.Y), C.double(b.Dx()), C.double(b.Dy()))
	})
	return nil
}
