package overlay

import (
	"fmt"
	"image"
	"math"
)

// Display is one attached screen.
// Bounds are in the platform's global coordinate space, in points.
type Display struct {
	ID     int
	Name   string
	Bounds image.Rectangle
	Scale  float64

	// pixels is the device rectangle when the OS reports pixels, so that
	// converting to points and back never drifts by rounding.
	pixels image.Rectangle
}

// displayFromPixels builds a Display from a rectangle in device pixels.
func displayFromPixels(id int, name string, px image.Rectangle, scale float64) Display {
	if scale <= 0 {
		scale = 1
	}
	toPoints := func(v int) int { return int(math.Round(float64(v) / scale)) }
	return Display{
		ID:     id,
		Name:   name,
		Bounds: image.Rect(toPoints(px.Min.X), toPoints(px.Min.Y), toPoints(px.Max.X), toPoints(px.Max.Y)),
		Scale:  scale,
		pixels: px,
	}
}

func (d Display) scale() float64 {
	if d.Scale <= 0 {
		return 1
	}
	return d.Scale
}

// PixelSize returns the backing size of the display in pixels.
func (d Display) PixelSize() (int, int) {
	if !d.pixels.Empty() {
		return d.pixels.Dx(), d.pixels.Dy()
	}
	w := int(math.Round(float64(d.Bounds.Dx()) * d.scale()))
	h := int(math.Round(float64(d.Bounds.Dy()) * d.scale()))
	return w, h
}

// PixelBounds returns the display rectangle in device pixels.
func (d Display) PixelBounds() image.Rectangle {
	if !d.pixels.Empty() {
		return d.pixels
	}
	w, h := d.PixelSize()
	x := int(math.Round(float64(d.Bounds.Min.X) * d.scale()))
	y := int(math.Round(float64(d.Bounds.Min.Y) * d.scale()))
	return image.Rect(x, y, x+w, y+h)
}

func (d Display) String() string {
	return fmt.Sprintf("%s [%d] %dx%d@%.1fx", d.Name, d.ID, d.Bounds.Dx(), d.Bounds.Dy(), d.Scale)
}

func sameDisplays(a, b []Display) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
