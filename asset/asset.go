package asset

import (
	"embed"
	"fmt"

	"fyne.io/fyne/v2"

	"github.com/jorge-trivilin/macOs-desktop-overlay/util/log"
)

//go:embed icons/* text/*
var assets embed.FS

// Manager manages the loading of UI assets.
type Manager struct{}

// NewManager creates a new asset manager.
func NewManager() *Manager {
	return &Manager{}
}

// GetIcon loads and returns embedded icon asset by name.
func (am *Manager) GetIcon(name string) (fyne.Resource, error) {
	if name == "" {
		return nil, fmt.Errorf("icon name is empty")
	}

	iconData, err := assets.ReadFile("icons/" + name)
	if err != nil {
		log.Println("Error loading icon:", err)
		return nil, err
	}

	return fyne.NewStaticResource(name, iconData), nil
}

// GetText loads and returns embedded text asset by name.
func (am *Manager) GetText(name string) (string, error) {
	textBytes, err := am.GetRaw(name)
	if err != nil {
		return "", err
	}
	return string(textBytes), nil
}

// GetRaw loads and returns the raw bytes of an embedded text asset by name.
func (am *Manager) GetRaw(name string) ([]byte, error) {
	data, err := assets.ReadFile("text/" + name)
	if err != nil {
		log.Println("Error loading text:", err)
		return nil, err
	}
	return data, nil
}
