// Package catalog lists the bundled wallpapers known on each platform.
package catalog

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/jorge-trivilin/macOs-desktop-overlay/asset"
	"github.com/jorge-trivilin/macOs-desktop-overlay/util/log"
)

// CatalogAsset is the embedded text asset holding the per-OS wallpaper lists.
const CatalogAsset = "catalog.json"

// Wallpaper is a named bundled wallpaper with a fixed filesystem path.
type Wallpaper struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Catalog is an ordered, immutable list of bundled wallpapers.
type Catalog struct {
	wallpapers []Wallpaper
	byName     map[string]string
}

// New builds a catalog from the given wallpapers, keeping their order.
// Later duplicates of a name are ignored.
func New(wallpapers []Wallpaper) *Catalog {
	c := &Catalog{
		wallpapers: make([]Wallpaper, 0, len(wallpapers)),
		byName:     make(map[string]string, len(wallpapers)),
	}
	for _, w := range wallpapers {
		if _, dup := c.byName[w.Name]; dup {
			log.Printf("Catalog: ignoring duplicate wallpaper %q", w.Name)
			continue
		}
		c.byName[w.Name] = w.Path
		c.wallpapers = append(c.wallpapers, w)
	}
	return c
}

// Parse decodes the catalog JSON and returns the list for goos.
func Parse(data []byte, goos string) (*Catalog, error) {
	var all map[string][]Wallpaper
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	list, ok := all[goos]
	if !ok {
		return nil, fmt.Errorf("no bundled wallpapers for %s", goos)
	}
	for i, w := range list {
		if w.Name == "" || w.Path == "" {
			return nil, fmt.Errorf("catalog entry %d for %s is missing a name or path", i, goos)
		}
	}
	return New(list), nil
}

// Load reads the embedded catalog for the running OS.
func Load(am *asset.Manager) (*Catalog, error) {
	raw, err := am.GetRaw(CatalogAsset)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return Parse(raw, runtime.GOOS)
}

// Path returns the filesystem path of the named wallpaper.
func (c *Catalog) Path(name string) (string, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// Names returns the wallpaper names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.wallpapers))
	for i, w := range c.wallpapers {
		names[i] = w.Name
	}
	return names
}

// Paths returns every bundled path in catalog order.
func (c *Catalog) Paths() []string {
	paths := make([]string, len(c.wallpapers))
	for i, w := range c.wallpapers {
		paths[i] = w.Path
	}
	return paths
}

// Len returns the number of wallpapers.
func (c *Catalog) Len() int {
	return len(c.wallpapers)
}
