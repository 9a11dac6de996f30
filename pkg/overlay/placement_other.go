//go:build !darwin && !windows

package overlay

import (
	"image"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/jorge-trivilin/macOs-desktop-overlay/util/log"
)

const (
	// liveDisplays is false: xrandr is a subprocess, so the list is cached by Refresh.
	liveDisplays = false
	// placementSupported is false: there is no portable way to keep a window
	// below the desktop icons and let clicks through.
	placementSupported = false
)

// xrandrMonitor matches lines such as " 0: +*DP-1 2560/597x1440/336+0+0  DP-1".
var xrandrMonitor = regexp.MustCompile(`(\d+)/\d+x(\d+)/\d+([+-]\d+)([+-]\d+)\s+(\S+)\s*$`)

var fallbackDisplay = Display{ID: 0, Name: "Default", Bounds: image.Rect(0, 0, 1920, 1080), Scale: 1}

// listDisplays asks xrandr for the monitor layout, falling back to one 1080p display.
func listDisplays() ([]Display, error) {
	out, err := exec.Command("xrandr", "--listmonitors").Output()
	if err != nil {
		log.Debugf("Overlay: xrandr unavailable (%v), assuming a single display", err)
		return []Display{fallbackDisplay}, nil
	}
	displays := parseXrandrMonitors(string(out))
	if len(displays) == 0 {
		return []Display{fallbackDisplay}, nil
	}
	return displays, nil
}

func parseXrandrMonitors(out string) []Display {
	var displays []Display
	for _, line := range strings.Split(out, "\n") {
		m := xrandrMonitor.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		w, _ := strconv.Atoi(m[1])
		h, _ := strconv.Atoi(m[2])
		x, _ := strconv.Atoi(m[3])
		y, _ := strconv.Atoi(m[4])
		displays = append(displays, Display{
			ID:     len(displays),
			Name:   m[5],
			Bounds: image.Rect(x, y, x+w, y+h),
			Scale:  1,
		})
	}
	return displays
}

// placeWindow is never reached since NewWindow refuses to create windows here.
func placeWindow(w fyne.Window, d Display) error {
	return ErrPlacementUnsupported
}
