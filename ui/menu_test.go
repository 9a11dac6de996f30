package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jorge-trivilin/macOs-desktop-overlay/asset"
	"github.com/jorge-trivilin/macOs-desktop-overlay/pkg/overlay"
)

// MockController is a mock of the overlay controller.
type MockController struct {
	mock.Mock
}

func (m *MockController) Selection() overlay.Selection {
	args := m.Called()
	return args.Get(0).(overlay.Selection)
}

func (m *MockController) Visible() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockController) Toggle() {
	m.Called()
}

func (m *MockController) SelectWallpaper(name string) {
	m.Called(name)
}

func (m *MockController) SelectCustomImage(path string) {
	m.Called(path)
}

func (m *MockController) Teardown() {
	m.Called()
}

func findItem(t *testing.T, menu *fyne.Menu, label string) *fyne.MenuItem {
	t.Helper()
	for _, item := range menu.Items {
		if item.Label == label {
			return item
		}
	}
	require.Failf(t, "menu item not found", "label %q", label)
	return nil
}

func newMockController(sel overlay.Selection, visible bool) *MockController {
	ctrl := new(MockController)
	ctrl.On("Selection").Return(sel)
	ctrl.On("Visible").Return(visible)
	return ctrl
}

func TestMenuController_Structure(t *testing.T) {
	test.NewTempApp(t)
	ctrl := newMockController(overlay.SystemWallpaper{Wallpaper: "Catalina"}, true)

	mc := NewMenuController(ctrl, []string{"Mojave", "Catalina"}, asset.NewManager(), MenuActions{})
	menu := mc.Menu()

	labels := []string{}
	for _, item := range menu.Items {
		if !item.IsSeparator {
			labels = append(labels, item.Label)
		}
	}
	assert.Equal(t, []string{hideOverlayLabel, wallpaperLabel, customImageLabel, aboutLabel, quitLabel}, labels)

	wallpaper := findItem(t, menu, wallpaperLabel)
	require.NotNil(t, wallpaper.ChildMenu)
	require.Len(t, wallpaper.ChildMenu.Items, 2)
	assert.Equal(t, "Mojave", wallpaper.ChildMenu.Items[0].Label)
	assert.False(t, wallpaper.ChildMenu.Items[0].Checked)
	assert.True(t, wallpaper.ChildMenu.Items[1].Checked)
	assert.False(t, findItem(t, menu, customImageLabel).Checked)
	assert.NotNil(t, findItem(t, menu, quitLabel).Icon)
}

func TestMenuController_EmptyCatalog(t *testing.T) {
	test.NewTempApp(t)
	ctrl := newMockController(overlay.SystemWallpaper{Wallpaper: "Mojave"}, false)

	mc := NewMenuController(ctrl, nil, asset.NewManager(), MenuActions{})

	wallpaper := findItem(t, mc.Menu(), wallpaperLabel)
	require.Len(t, wallpaper.ChildMenu.Items, 1)
	assert.True(t, wallpaper.ChildMenu.Items[0].Disabled)
	assert.Equal(t, showOverlayLabel, findItem(t, mc.Menu(), showOverlayLabel).Label)
}

func TestMenuController_Toggle(t *testing.T) {
	test.NewTempApp(t)
	ctrl := new(MockController)
	ctrl.On("Selection").Return(overlay.Selection(overlay.SystemWallpaper{Wallpaper: "Mojave"}))
	ctrl.On("Visible").Return(true).Once()
	ctrl.On("Toggle").Return().Once()
	ctrl.On("Visible").Return(false)

	mc := NewMenuController(ctrl, []string{"Mojave"}, asset.NewManager(), MenuActions{})
	toggle := findItem(t, mc.Menu(), hideOverlayLabel)

	toggle.Action()
	mc.Refresh()

	ctrl.AssertCalled(t, "Toggle")
	assert.Equal(t, showOverlayLabel, toggle.Label)
}

func TestMenuController_SelectWallpaper(t *testing.T) {
	test.NewTempApp(t)
	ctrl := newMockController(overlay.SystemWallpaper{Wallpaper: "Mojave"}, true)
	ctrl.On("SelectWallpaper", "Catalina").Return()

	mc := NewMenuController(ctrl, []string{"Mojave", "Catalina"}, asset.NewManager(), MenuActions{})
	wallpaper := findItem(t, mc.Menu(), wallpaperLabel)
	wallpaper.ChildMenu.Items[1].Action()

	ctrl.AssertCalled(t, "SelectWallpaper", "Catalina")
	ctrl.AssertNotCalled(t, "SelectCustomImage", mock.Anything)
}

func TestMenuController_CustomImage(t *testing.T) {
	test.NewTempApp(t)
	ctrl := new(MockController)
	ctrl.On("Visible").Return(true)
	ctrl.On("Selection").Return(overlay.Selection(overlay.SystemWallpaper{Wallpaper: "Mojave"})).Once()
	ctrl.On("SelectCustomImage", "/pictures/beach.png").Return()
	ctrl.On("Selection").Return(overlay.Selection(overlay.CustomImage{Path: "/pictures/beach.png"}))

	picks := 0
	mc := NewMenuController(ctrl, []string{"Mojave"}, asset.NewManager(), MenuActions{
		PickImage: func(onChosen func(string)) {
			picks++
			onChosen("/pictures/beach.png")
		},
	})

	custom := findItem(t, mc.Menu(), customImageLabel)
	custom.Action()
	mc.Refresh()

	assert.Equal(t, 1, picks)
	ctrl.AssertCalled(t, "SelectCustomImage", "/pictures/beach.png")
	assert.True(t, custom.Checked)
	wallpaper := findItem(t, mc.Menu(), wallpaperLabel)
	assert.False(t, wallpaper.ChildMenu.Items[0].Checked, "no bundled wallpaper is checked while a custom image shows")
}

func TestMenuController_CustomImageCancelled(t *testing.T) {
	test.NewTempApp(t)
	ctrl := newMockController(overlay.SystemWallpaper{Wallpaper: "Mojave"}, true)

	mc := NewMenuController(ctrl, []string{"Mojave"}, asset.NewManager(), MenuActions{
		PickImage: func(onChosen func(string)) { onChosen("") },
	})
	findItem(t, mc.Menu(), customImageLabel).Action()

	ctrl.AssertNotCalled(t, "SelectCustomImage", mock.Anything)
}

func TestMenuController_Quit(t *testing.T) {
	test.NewTempApp(t)
	ctrl := newMockController(overlay.SystemWallpaper{Wallpaper: "Mojave"}, true)

	var order []string
	ctrl.On("Teardown").Run(func(mock.Arguments) { order = append(order, "teardown") }).Return()

	mc := NewMenuController(ctrl, []string{"Mojave"}, asset.NewManager(), MenuActions{
		Quit: func() { order = append(order, "quit") },
	})
	findItem(t, mc.Menu(), quitLabel).Action()

	assert.Equal(t, []string{"teardown", "quit"}, order)
	ctrl.AssertExpectations(t)
}
