package overlay

import (
	"image"

	"github.com/jorge-trivilin/macOs-desktop-overlay/pkg/images"
	"github.com/jorge-trivilin/macOs-desktop-overlay/util/log"
)

// candidates returns the paths to try, in order, for sel.
// A custom image is tried alone. A bundled wallpaper tries its own path first,
// then every other bundled path; an unknown name scans the whole catalog.
func (c *Controller) candidates(sel Selection) []string {
	if p, ok := CustomPath(sel); ok {
		return []string{p}
	}

	all := c.catalog.Paths()
	primary, ok := c.catalog.Path(sel.Name())
	if !ok {
		log.Printf("Overlay: unknown wallpaper %q, scanning bundled wallpapers", sel.Name())
		return all
	}

	paths := make([]string, 0, len(all))
	paths = append(paths, primary)
	for _, p := range all {
		if p != primary {
			paths = append(paths, p)
		}
	}
	return paths
}

// resolve loads the image for w, falling through the candidates until one loads.
func (c *Controller) resolve(w Window, gen uint64) {
	c.tryLoad(w, gen, c.candidates(c.selection), 0)
}

func (c *Controller) tryLoad(w Window, gen uint64, paths []string, i int) {
	if i >= len(paths) {
		log.Printf("Overlay: no wallpaper could be loaded for %s, showing placeholder", w.Display())
		w.ShowPlaceholder()
		return
	}

	path := paths[i]
	c.loader.Load(path, func(img image.Image) {
		if c.stale(gen) {
			log.Debugf("Overlay: dropping stale image %s", path)
			return
		}
		if img == nil {
			c.tryLoad(w, gen, paths, i+1)
			return
		}
		w.SetImage(img)
		c.fit(w, gen, path, img)
	})
}

// fit replaces the shown image with a display-sized variant when a fit mode is set.
func (c *Controller) fit(w Window, gen uint64, path string, img image.Image) {
	if c.fitMode == images.FitStretch {
		return
	}
	width, height := w.Display().PixelSize()
	if width <= 0 || height <= 0 {
		return
	}

	mode := c.fitMode
	key := images.FitKey(path, width, height, mode)
	c.loader.Derive(key, img, func(src image.Image) (image.Image, error) {
		return c.fitter.Fit(src, width, height, mode)
	}, func(fitted image.Image) {
		if fitted == nil || c.stale(gen) {
			return
		}
		w.SetImage(fitted)
	})
}

func (c *Controller) stale(gen uint64) bool {
	return gen != c.generation
}
