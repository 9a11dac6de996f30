//go:build windows

package ui

import (
	"errors"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/harry1453/go-common-file-dialog/cfd"
	"github.com/harry1453/go-common-file-dialog/cfdutil"

	"github.com/jorge-trivilin/macOs-desktop-overlay/config"
	"github.com/jorge-trivilin/macOs-desktop-overlay/util/log"
)

var imagePatterns = []string{"*.jpg", "*.jpeg", "*.png", "*.gif", "*.bmp", "*.tif", "*.tiff", "*.webp"}

// pickImage shows the Windows common file dialog. The dialog blocks its own
// goroutine; the result is handed back on the UI loop.
func pickImage(_ fyne.App, onChosen func(path string)) {
	pattern := strings.Join(imagePatterns, ";")
	go func() {
		path, err := cfdutil.ShowOpenFileDialog(cfd.DialogConfig{
			Title: "Choose Custom Image",
			Role:  config.ServiceName + "-image-picker",
			FileFilters: []cfd.FileFilter{
				{DisplayName: "Images (" + pattern + ")", Pattern: pattern},
			},
			SelectedFileFilterIndex: 0,
		})
		if err != nil {
			if !errors.Is(err, cfd.ErrorCancelled) {
				log.Printf("Image picker failed: %v", err)
			}
			path = ""
		}
		fyne.Do(func() { onChosen(path) })
	}()
}
