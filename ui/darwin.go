//go:build darwin

package ui

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Foundation -framework AppKit

#import <AppKit/AppKit.h>

// NSApplicationActivationPolicyAccessory is a background application.
// It has no Dock icon and does not appear in the Force Quit window.
const NSApplicationActivationPolicy Accessory = 1;

void setActivationPolicy(long policy) {
    [NSApp setActivationPolicy:policy];
}
*/
import "C"

// darwinOS implements the OS interface for macOS.
type darwinOS struct{}

// TransformToBackground turns the app into a menu bar accessory without a Dock icon.
func (d *darwinOS) TransformToBackground() {
	C.setActivationPolicy(C.Accessory)
}

// getOS returns a new instance of the darwinOS struct.
func getOS() OS {
	return &darwinOS{}
}
