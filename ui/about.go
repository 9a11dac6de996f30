package ui

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jorge-trivilin/macOs-desktop-overlay/config"
	"github.com/jorge-trivilin/macOs-desktop-overlay/util/log"
)

const (
	aboutWidth  = 300
	aboutHeight = 120
)

// showAbout shows a borderless about screen for aboutSplashTime.
func (oa *OverlayApp) showAbout() {
	drv, ok := oa.app.Driver().(desktop.Driver)
	if !ok {
		log.Println("About screen not supported")
		return
	}

	splash := drv.CreateSplashWindow()
	img := canvas.NewImageFromImage(renderAbout(aboutWidth, aboutHeight, oa.cfg.GetPlaceholderColor()))
	img.FillMode = canvas.ImageFillOriginal

	splash.SetContent(img)
	splash.Resize(fyne.NewSize(aboutWidth, aboutHeight))
	splash.CenterOnScreen()
	splash.Show()

	go func() {
		time.Sleep(aboutSplashTime)
		fyne.Do(splash.Close)
	}()
}

// renderAbout draws the app name, version and toggle shortcut on a solid background.
func renderAbout(width, height int, bg color.Color) image.Image {
	dst := imaging.New(width, height, bg)
	lines := []string{
		config.AppName,
		fmt.Sprintf("Version: %s", config.AppVersion),
		fmt.Sprintf("Toggle: %s", config.ToggleHotkeyLabel),
	}

	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil() + 6
	top := (height-lineHeight*len(lines))/2 + face.Metrics().Ascent.Ceil()

	for i, line := range lines {
		bounds, _ := font.BoundString(face, line)
		textWidth := bounds.Max.X.Ceil()
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(color.White),
			Face: face,
			Dot: fixed.Point26_6{
				X: fixed.I((width - textWidth) / 2),
				Y: fixed.I(top + i*lineHeight),
			},
		}
		d.DrawString(line)
	}
	return dst
}
