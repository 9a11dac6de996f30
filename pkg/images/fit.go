package images

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/muesli/smartcrop"
)

// FitMode controls how a wallpaper is fitted to a display.
type FitMode int

const (
	// FitStretch leaves the image as is and lets the canvas stretch it.
	FitStretch FitMode = iota
	// FitFill scales to cover the display and crops around the centre.
	FitFill
	// FitSmart scales to cover the display and crops around the most interesting region.
	FitSmart
)

var fitModeNames = map[FitMode]string{
	FitStretch: "stretch",
	FitFill:    "fill",
	FitSmart:   "smart",
}

func (m FitMode) String() string {
	if s, ok := fitModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("FitMode(%d)", int(m))
}

// ParseFitMode maps a preference value to a FitMode, defaulting to FitStretch.
func ParseFitMode(s string) FitMode {
	for m, name := range fitModeNames {
		if name == s {
			return m
		}
	}
	return FitStretch
}

// FitKey is the store key for a fitted variant of path.
func FitKey(path string, width, height int, mode FitMode) string {
	return fmt.Sprintf("%s#%dx%d#%s", path, width, height, mode)
}

// Fitter produces display-sized images.
type Fitter struct {
	resampler imaging.ResampleFilter
}

// NewFitter creates a Fitter using Lanczos resampling.
func NewFitter() *Fitter {
	return &Fitter{resampler: imaging.Lanczos}
}

// Fit returns img fitted to width x height pixels.
func (f *Fitter) Fit(img image.Image, width, height int, mode FitMode) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("no image to fit")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid target size %dx%d", width, height)
	}
	b := img.Bounds()
	if mode == FitStretch || (b.Dx() == width && b.Dy() == height) {
		return img, nil
	}

	switch mode {
	case FitFill:
		return imaging.Fill(img, width, height, imaging.Center, f.resampler), nil
	case FitSmart:
		return f.smartFit(img, width, height)
	default:
		return nil, fmt.Errorf("unsupported fit mode %v", mode)
	}
}

func (f *Fitter) smartFit(img image.Image, width, height int) (image.Image, error) {
	analyzer := smartcrop.NewAnalyzer(&resizer{resampler: f.resampler})
	crop, err := analyzer.FindBestCrop(img, width, height)
	if err != nil {
		return nil, fmt.Errorf("finding best crop: %w", err)
	}
	cropped := imaging.Crop(img, crop)
	return imaging.Resize(cropped, width, height, f.resampler), nil
}

// resizer implements the smartcrop resizer on top of imaging.
type resizer struct {
	resampler imaging.ResampleFilter
}

func (r *resizer) Resize(img image.Image, width, height uint) image.Image {
	return imaging.Resize(img, int(width), int(height), r.resampler)
}
