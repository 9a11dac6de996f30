// check_catalog decodes every bundled wallpaper listed for an OS and reports
// its dimensions against a target display, so broken catalog paths show up
// before a release.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/jorge-trivilin/macOs-desktop-overlay/asset"
	"github.com/jorge-trivilin/macOs-desktop-overlay/pkg/catalog"
	"github.com/jorge-trivilin/macOs-desktop-overlay/pkg/images"
)

func main() {
	goos := flag.String("goos", runtime.GOOS, "catalog section to check")
	width := flag.Int("width", 2880, "target display width in pixels")
	height := flag.Int("height", 1800, "target display height in pixels")
	mode := flag.String("fit", "fill", "fit mode to try: stretch, fill or smart")
	flag.Parse()

	data, err := asset.NewManager().GetRaw(catalog.CatalogAsset)
	if err != nil {
		fmt.Printf("Error reading catalog: %v\n", err)
		os.Exit(1)
	}
	cat, err := catalog.Parse(data, *goos)
	if err != nil {
		fmt.Printf("Error parsing catalog: %v\n", err)
		os.Exit(1)
	}

	fitMode := images.ParseFitMode(*mode)
	fitter := images.NewFitter()
	decoder := images.FileDecoder{}
	systemAspect := float64(*width) / float64(*height)

	failed := 0
	for _, name := range cat.Names() {
		path, _ := cat.Path(name)
		img, err := decoder.Decode(path)
		if err != nil {
			fmt.Printf("%-20s MISSING  %v\n", name, err)
			failed++
			continue
		}

		b := img.Bounds()
		imageAspect := float64(b.Dx()) / float64(b.Dy())
		fitted, err := fitter.Fit(img, *width, *height, fitMode)
		if err != nil {
			fmt.Printf("%-20s FIT FAIL %v\n", name, err)
			failed++
			continue
		}
		fmt.Printf("%-20s OK       %dx%d aspect %.3f (diff %.3f) -> %s %dx%d\n",
			name, b.Dx(), b.Dy(), imageAspect, math.Abs(systemAspect-imageAspect),
			fitMode, fitted.Bounds().Dx(), fitted.Bounds().Dy())
	}

	fmt.Printf("%d of %d wallpapers usable\n", cat.Len()-failed, cat.Len())
	if failed > 0 {
		os.Exit(1)
	}
}
