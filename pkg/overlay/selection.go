package overlay

// CustomName is the menu label of a custom image selection.
const CustomName = "Custom"

// Selection is what the overlay windows display: either a bundled
// SystemWallpaper or a CustomImage, never both.
type Selection interface {
	// Name is the label shown in the menu.
	Name() string
	isSelection()
}

// SystemWallpaper selects a bundled wallpaper by catalog name.
type SystemWallpaper struct {
	Wallpaper string
}

// Name returns the wallpaper name.
func (s SystemWallpaper) Name() string { return s.Wallpaper }

func (SystemWallpaper) isSelection() {}

// CustomImage selects a user-picked image file.
type CustomImage struct {
	Path string
}

// Name returns CustomName.
func (CustomImage) Name() string { return CustomName }

func (CustomImage) isSelection() {}

// CustomPath returns the custom image path of sel, if it is a CustomImage.
func CustomPath(sel Selection) (string, bool) {
	if c, ok := sel.(CustomImage); ok {
		return c.Path, true
	}
	return "", false
}
