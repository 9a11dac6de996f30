package overlay

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jorge-trivilin/macOs-desktop-overlay/util"
)

// uiLoop stands in for the fyne main loop.
type uiLoop struct {
	funcs  chan func()
	done   chan struct{}
	inLoop *util.SafeFlag
}

func newUILoop(t *testing.T) *uiLoop {
	l := &uiLoop{funcs: make(chan func(), 256), done: make(chan struct{}), inLoop: util.NewSafeFlag(false)}
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
	select {
	case l.funcs <- fn:
	case <-l.done:
	}
}

// Run executes fn on the loop and waits for it.
func (l *uiLoop) Run(fn func()) {
	done := make(chan struct{})
	l.funcs <- func() {
		defer close(done)
		fn()
	}
	<-done
}

// fakeWindow records what the controller did to it.
type fakeWindow struct {
	mu          sync.Mutex
	display     Display
	img         image.Image
	history     []image.Image
	placeholder bool
	fallbacks   int
	visible     bool
	closed      bool
	shows       int
}

func (w *fakeWindow) Display() Display { return w.display }

func (w *fakeWindow) SetImage(img image.Image) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.img = img
	w.placeholder = false
	w.history = append(w.history, img)
}

func (w *fakeWindow) ShowPlaceholder() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.placeholder = true
	w.fallbacks++
}

func (w *fakeWindow) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.visible = true
	w.shows++
}

func (w *fakeWindow) Hide() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.visible = false
}

func (w *fakeWindow) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

func (w *fakeWindow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	w.visible = false
}

func (w *fakeWindow) Image() image.Image {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.img
}

func (w *fakeWindow) Placeholder() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.placeholder
}

// Fallbacks counts ShowPlaceholder calls.
func (w *fakeWindow) Fallbacks() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.fallbacks
}

func (w *fakeWindow) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

func (w *fakeWindow) History() []image.Image {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]image.Image, len(w.history))
	copy(out, w.history)
	return out
}

// fakePlatform hands out fakeWindows for a configurable display list.
type fakePlatform struct {
	mu          sync.Mutex
	displays    []Display
	err         error
	failFor     map[int]bool
	unsupported bool
	created     []*fakeWindow
}

func newFakePlatform(displays ...Display) *fakePlatform {
	return &fakePlatform{displays: displays, failFor: map[int]bool{}}
}

func (p *fakePlatform) Displays() ([]Display, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return nil, p.err
	}
	out := make([]Display, len(p.displays))
	copy(out, p.displays)
	return out, nil
}

func (p *fakePlatform) NewWindow(d Display) (Window, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.unsupported {
		return nil, ErrPlacementUnsupported
	}
	if p.failFor[d.ID] {
		return nil, errors.New("window creation failed")
	}
	w := &fakeWindow{display: d}
	p.created = append(p.created, w)
	return w, nil
}

func (p *fakePlatform) SetDisplays(displays ...Display) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.displays = displays
}

func (p *fakePlatform) Created() []*fakeWindow {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*fakeWindow, len(p.created))
	copy(out, p.created)
	return out
}

// refreshingSource only answers from what Refresh loaded, and records
// whether Refresh ever ran on the UI loop.
type refreshingSource struct {
	loop *uiLoop

	mu        sync.Mutex
	live      []Display
	cached    []Display
	refreshes int
	onLoop    int
}

func (s *refreshingSource) Refresh() error {
	onLoop := s.loop.inLoop.Value()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshes++
	if onLoop {
		s.onLoop++
	}
	s.cached = append([]Display(nil), s.live...)
	return nil
}

func (s *refreshingSource) Displays() ([]Display, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached == nil {
		return nil, errors.New("not refreshed")
	}
	return append([]Display(nil), s.cached...), nil
}

func (s *refreshingSource) SetLive(displays ...Display) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live = displays
}

func (s *refreshingSource) Counts() (refreshes, onLoop int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshes, s.onLoop
}

func display(id, w, h int) Display {
	return Display{ID: id, Name: "Test", Bounds: image.Rect(0, 0, w, h), Scale: 1}
}

func writePNG(t *testing.T, dir, name string, w, h int, c color.Color) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}
