package overlay

import "image"

// Window is one overlay window. Implementations are only touched from the UI loop.
type Window interface {
	Display() Display
	SetImage(img image.Image)
	ShowPlaceholder()
	Show()
	Hide()
	Visible() bool
	Close()
}

// DisplaySource lists the attached displays.
type DisplaySource interface {
	Displays() ([]Display, error)
}

// Refresher is implemented by display sources whose query blocks. Refresh
// runs off the UI loop and Displays then answers from its result.
type Refresher interface {
	Refresh() error
}

// RefreshDisplays refreshes src when it caches its display list.
func RefreshDisplays(src DisplaySource) error {
	if r, ok := src.(Refresher); ok {
		return r.Refresh()
	}
	return nil
}

// Platform lists displays and creates overlay windows on them.
type Platform interface {
	DisplaySource
	NewWindow(d Display) (Window, error)
}
