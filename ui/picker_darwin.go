//go:build darwin

package ui

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework UniformTypeIdentifiers

#import <AppKit/AppKit.h>
#import <UniformTypeIdentifiers/UniformTypeIdentifiers.h>
#include <stdlib.h>

// pickImagePath runs a modal NSOpenPanel limited to image files.
// Returns a malloc'd path or NULL when cancelled.
char *pickImagePath(void) {
    @autoreleasepool {
        NSOpenPanel *panel = [NSOpenPanel openPanel];
        panel.canChooseFiles = YES;
        panel.canChooseDirectories = NO;
        panel.allowsMultipleSelection = NO;
        panel.allowedContentTypes = @[UTTypeImage];

        // Accessory apps are not frontmost, so the panel would open behind other windows.
        [NSApp activateIgnoringOtherApps:YES];
        if ([panel runModal] != NSModalResponseOK) {
            return NULL;
        }
        NSURL *url = panel.URLs.firstObject;
        if (url == nil) {
            return NULL;
        }
        return strdup(url.path.fileSystemRepresentation);
    }
}
*/
import "C"

import (
	"unsafe"

	"fyne.io/fyne/v2"
)

// pickImage shows the native macOS open panel. Must be called on the main thread.
func pickImage(_ fyne.App, onChosen func(path string)) {
	p := C.pickImagePath()
	if p == nil {
		onChosen("")
		return
	}
	defer C.free(unsafe.Pointer(p))
	onChosen(C.GoString(p))
}
