package images

import (
	"context"

	"github.com/jorge-trivilin/macOs-desktop-overlay/util"
	"github.com/jorge-trivilin/macOs-desktop-overlay/util/log"
	"golang.org/x/sync/errgroup"
)

// Preload decodes the given paths into the store with at most limit decodes in flight.
// Paths already cached are skipped. It returns how many images were added.
func (l *Loader) Preload(ctx context.Context, paths []string, limit int) (int, error) {
	if limit <= 0 {
		limit = 2
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	loaded := util.NewSafeCounter()

	for _, p := range paths {
		if _, ok := l.store.Get(p); ok {
			continue
		}
		p := p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if img := l.decode(p); img != nil {
				l.store.Set(p, img)
				loaded.Increment()
			}
			return nil
		})
	}

	err := g.Wait()
	log.Debugf("Preload: %d of %d images cached", loaded.Value(), len(paths))
	return int(loaded.Value()), err
}
