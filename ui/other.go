//go:build !darwin

package ui

// otherOS implements the OS interface for platforms without a Dock.
type otherOS struct{}

// TransformToBackground is a no-op; tray apps have no taskbar entry here.
func (o *otherOS) TransformToBackground() {}

// getOS returns a new instance of the otherOS struct.
func getOS() OS {
	return &otherOS{}
}
