package images

import (
	"errors"
	"image"
	"io/fs"
	"os"

	"github.com/jorge-trivilin/macOs-desktop-overlay/util"
	"github.com/jorge-trivilin/macOs-desktop-overlay/util/log"
)

// Dispatcher runs fn on the UI-owning loop. In the app this is fyne.Do.
type Dispatcher func(fn func())

// Callback receives a loaded image, or nil when nothing could be loaded.
type Callback func(img image.Image)

// DeriveFunc computes a derived image from src.
type DeriveFunc func(src image.Image) (image.Image, error)

// Loader resolves images through the store, decoding misses on a worker goroutine.
// Every callback is delivered exactly once, through the dispatcher, never inline.
type Loader struct {
	store    *ImageStore
	decoder  Decoder
	dispatch Dispatcher
	decodes  *util.SafeCounter
}

// NewLoader creates a loader. A nil decoder means FileDecoder.
func NewLoader(store *ImageStore, decoder Decoder, dispatch Dispatcher) *Loader {
	if decoder == nil {
		decoder = FileDecoder{}
	}
	return &Loader{
		store:    store,
		decoder:  decoder,
		dispatch: dispatch,
		decodes:  util.NewSafeCounter(),
	}
}

// Store returns the backing image store.
func (l *Loader) Store() *ImageStore {
	return l.store
}

// Decodes returns how many decode attempts have reached the decoder.
func (l *Loader) Decodes() int64 {
	return l.decodes.Value()
}

// Load delivers the image at path to cb on the UI loop.
// Missing, unreadable and undecodable files all deliver nil and are not cached.
// Concurrent loads of the same path are not merged and cannot be cancelled.
func (l *Loader) Load(path string, cb Callback) {
	if img, ok := l.store.Get(path); ok {
		log.Debugf("Loader: cache hit for %s", path)
		l.deliver(cb, img)
		return
	}

	go func() {
		img := l.decode(path)
		if img != nil {
			l.store.Set(path, img)
		}
		l.deliver(cb, img)
	}()
}

// Derive delivers fn(src) to cb on the UI loop, caching the result under key.
// A failed derivation delivers nil.
func (l *Loader) Derive(key string, src image.Image, fn DeriveFunc, cb Callback) {
	if img, ok := l.store.Get(key); ok {
		l.deliver(cb, img)
		return
	}

	go func() {
		img, err := fn(src)
		if err != nil {
			log.Printf("Loader: failed to derive %s: %v", key, err)
			img = nil
		}
		if img != nil {
			l.store.Set(key, img)
		}
		l.deliver(cb, img)
	}()
}

func (l *Loader) decode(path string) image.Image {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("Loader: image file does not exist: %s", path)
		} else {
			log.Printf("Loader: cannot stat %s: %v", path, err)
		}
		return nil
	}

	l.decodes.Increment()
	img, err := l.decoder.Decode(path)
	if err != nil {
		log.Printf("Loader: %v", err)
		return nil
	}
	return img
}

// deliver is the single point where results cross back to the UI loop.
func (l *Loader) deliver(cb Callback, img image.Image) {
	if cb == nil {
		return
	}
	l.dispatch(func() {
		cb(img)
	})
}
