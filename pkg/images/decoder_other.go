//go:build !darwin

package images

import (
	"errors"
	"image"
	"runtime"
)

var nativeOS = runtime.GOOS

func decodeNative(string) (image.Image, error) {
	return nil, errors.New("no native decoder on " + runtime.GOOS)
}
