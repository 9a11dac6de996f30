//go:build windows

package overlay

import (
	"fmt"
	"image"
	"unsafe"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"

	"github.com/jorge-trivilin/macOs-desktop-overlay/util/log"
)

var (
	user32                         = windows.NewLazySystemDLL("user32.dll")
	shcore                         = windows.NewLazySystemDLL("shcore.dll")
	procGetDpiForMonitor           = shcore.NewProc("GetDpiForMonitor")
	procEnumDisplayMonitors        = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW            = user32.NewProc("GetMonitorInfoW")
	procGetWindowLongPtrW          = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW          = user32.NewProc("SetWindowLongPtrW")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
	procSetWindowPos               = user32.NewProc("SetWindowPos")
)

const (
	wsExTransparent = 0x00000020
	wsExToolWindow  = 0x00000080
	wsExLayered     = 0x00080000
	wsExNoActivate  = 0x08000000

	lwaAlpha = 0x2

	mdtEffectiveDpi = 0
	defaultDpi      = 96

	hwndBottom     = 1
	swpNoActivate  = 0x0010
	swpShowWindow  = 0x0040
	monitorPrimary = 0x1
)

const (
	// liveDisplays is false: monitors are enumerated by Refresh off the UI loop.
	liveDisplays       = false
	placementSupported = true
)

var gwlExStyle = -20

type monitorInfo struct {
	cbSize    uint32
	rcMonitor windows.Rect
	rcWork    windows.Rect
	dwFlags   uint32
}

// enumMonitorsCallback is created once; Windows callbacks are never released.
var enumMonitorsCallback = windows.NewCallback(enumMonitorProc)

func enumMonitorProc(hMonitor, hdc, rect, lparam uintptr) uintptr {
	displays := (*[]Display)(unsafe.Pointer(lparam))
	mi := monitorInfo{}
	mi.cbSize = uint32(unsafe.Sizeof(mi))
	ret, _, _ := procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&mi)))
	if ret == 0 {
		return 1
	}
	r := mi.rcMonitor
	name := fmt.Sprintf("Monitor %d", len(*displays)+1)
	if mi.dwFlags&monitorPrimary != 0 {
		name += " (primary)"
	}
	px := image.Rect(int(r.Left), int(r.Top), int(r.Right), int(r.Bottom))
	*displays = append(*displays, displayFromPixels(len(*displays), name, px, monitorScale(hMonitor)))
	return 1
}

// monitorScale returns the effective DPI of the monitor relative to 96 DPI.
// It falls back to 1 where shcore is unavailable (before Windows 8.1).
func monitorScale(hMonitor uintptr) float64 {
	if procGetDpiForMonitor.Find() != nil {
		return 1
	}
	var dpiX, dpiY uint32
	ret, _, _ := procGetDpiForMonitor.Call(hMonitor, mdtEffectiveDpi,
		uintptr(unsafe.Pointer(&dpiX)), uintptr(unsafe.Pointer(&dpiY)))
	if ret != 0 || dpiX == 0 {
		return 1
	}
	return float64(dpiX) / defaultDpi
}

// listDisplays enumerates monitors with EnumDisplayMonitors.
func listDisplays() ([]Display, error) {
	var displays []Display
	ret, _, err := procEnumDisplayMonitors.Call(0, 0, enumMonitorsCallback, uintptr(unsafe.Pointer(&displays)))
	if ret == 0 {
		return nil, fmt.Errorf("EnumDisplayMonitors: %w", err)
	}
	if len(displays) == 0 {
		return nil, fmt.Errorf("no monitors attached")
	}
	return displays, nil
}

// placeWindow makes the HWND behind w click-through and sends it to the bottom of the z-order.
func placeWindow(w fyne.Window, d Display) error {
	nw, ok := w.(driver.NativeWindow)
	if !ok {
		return fmt.Errorf("window does not expose a native handle")
	}

	b := d.PixelBounds()
	nw.RunNative(func(ctx any) {
		wc, ok := ctx.(driver.WindowsWindowContext)
		if !ok || wc.HWND == 0 {
			log.Printf("Overlay: no HWND for %s", d)
			return
		}
		hwnd := wc.HWND
		style, _, _ := procGetWindowLongPtrW.Call(hwnd, uintptr(gwlExStyle))
		style |= wsExTransparent | wsExToolWindow | wsExLayered | wsExNoActivate
		procSetWindowLongPtrW.Call(hwnd, uintptr(gwlExStyle), style)
		procSetLayeredWindowAttributes.Call(hwnd, 0, 255, lwaAlpha)
		procSetWindowPos.Call(hwnd, hwndBottom,
			uintptr(b.Min.X), uintptr(b.Min.Y), uintptr(b.Dx()), uintptr(b.Dy()),
			swpNoActivate|swpShowWindow)
	})
	return nil
}
