package images

import (
	"fmt"
	"image"
	"path/filepath"
	"slices"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP decoder
)

// portableExtensions are decoded in Go on every platform: imaging registers
// JPEG, PNG, GIF, BMP and TIFF; WebP is added above.
var portableExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

// nativeExtensions are decoded by the OS image stack, keyed by GOOS.
var nativeExtensions = map[string][]string{
	"darwin": {".heic", ".heif"},
}

// SupportedExtensions lists the lower-case file extensions FileDecoder reads on goos.
func SupportedExtensions(goos string) []string {
	return append(slices.Clone(portableExtensions), nativeExtensions[goos]...)
}

// Decoder turns a file on disk into an image.
type Decoder interface {
	Decode(path string) (image.Image, error)
}

// DecoderFunc adapts a plain function to the Decoder interface.
type DecoderFunc func(path string) (image.Image, error)

// Decode calls f(path).
func (f DecoderFunc) Decode(path string) (image.Image, error) {
	return f(path)
}

// FileDecoder decodes any registered image format and applies EXIF orientation.
// Formats only the OS understands (HEIC on macOS) go through decodeNative.
type FileDecoder struct{}

// Decode opens and decodes the file at path.
func (FileDecoder) Decode(path string) (image.Image, error) {
	if slices.Contains(nativeExtensions[nativeOS], strings.ToLower(filepath.Ext(path))) {
		img, err := decodeNative(path)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
		return img, nil
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}
