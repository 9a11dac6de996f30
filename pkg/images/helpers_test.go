package images

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/jorge-trivilin/macOs-desktop-overlay/util"
	"github.com/stretchr/testify/require"
)

// uiLoop stands in for the fyne main loop: one goroutine runs dispatched funcs in order.
type uiLoop struct {
	funcs  chan func()
	done   chan struct{}
	inLoop *util.SafeFlag
	calls  *util.SafeCounter
}

func newUILoop(t *testing.T) *uiLoop {
	l := &uiLoop{
		funcs:  make(chan func(), 64),
		done:   make(chan struct{}),
		inLoop: util.NewSafeFlag(false),
		calls:  util.NewSafeCounter(),
	}
	go func() {
		for {
			select {
			case fn := <-l.funcs:
				l.inLoop.Set(true)
				fn()
				l.inLoop.Set(false)
			case <-l.done:
				return
			}
		}
	}()
	t.Cleanup(func() { close(l.done) })
	return l
}

// Dispatch queues fn. Work dispatched after the test ended is dropped.
func (l *uiLoop) Dispatch(fn func()) {
	l.calls.Increment()
	select {
	case l.funcs <- fn:
	case <-l.done:
	}
}

// countingDecoder wraps a decoder and counts calls.
type countingDecoder struct {
	next  Decoder
	calls *util.SafeCounter
}

func newCountingDecoder(next Decoder) *countingDecoder {
	return &countingDecoder{next: next, calls: util.NewSafeCounter()}
}

func (d *countingDecoder) Decode(path string) (image.Image, error) {
	d.calls.Increment()
	return d.next.Decode(path)
}

func testImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, dir, name string, w, h int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, testImage(w, h, color.NRGBA{R: 200, G: 40, B: 90, A: 255})))
	return path
}
