//go:build !darwin && !windows

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

// pickImage shows a fyne file dialog limited to image content types. The tray
// app has no window of its own, so the dialog gets a temporary host window.
func pickImage(a fyne.App, onChosen func(path string)) {
	host := a.NewWindow("Choose Custom Image")
	host.Resize(fyne.NewSize(900, 640))

	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		defer host.Close()
		if err != nil || reader == nil {
			onChosen("")
			return
		}
		path := reader.URI().Path()
		reader.Close()
		onChosen(path)
	}, host)

	fd.SetFilter(storage.NewMimeTypeFileFilter([]string{"image/*"}))
	fd.Resize(fyne.NewSize(900, 640))
	host.Show()
	fd.Show()
}
