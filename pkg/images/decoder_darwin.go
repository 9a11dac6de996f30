//go:build darwin

package images

/*
#cgo LDFLAGS: -framework ImageIO -framework CoreGraphics -framework CoreFoundation

#include <ImageIO/ImageIO.h>
#include <CoreGraphics/CoreGraphics.h>
#include <stdlib.h>

// decodeImageIO renders the first image of the file at path as premultiplied RGBA.
// Returns NULL on failure; the caller frees the buffer.
static unsigned char *decodeImageIO(const char *path, int *width, int *height) {
    CFStringRef str = CFStringCreateWithCString(NULL, path, kCFStringEncodingUTF8);
    if (str == NULL) {
        return NULL;
    }
    CFURLRef url = CFURLCreateWithFileSystemPath(NULL, str, kCFURLPOSIXPathStyle, false);
    CFRelease(str);
    if (url == NULL) {
        return NULL;
    }
    CGImageSourceRef src = CGImageSourceCreateWithURL(url, NULL);
    CFRelease(url);
    if (src == NULL) {
        return NULL;
    }
    CGImageRef img = CGImageSourceCreateImageAtIndex(src, 0, NULL);
    CFRelease(src);
    if (img == NULL) {
        return NULL;
    }

    size_t w = CGImageGetWidth(img);
    size_t h = CGImageGetHeight(img);
    unsigned char *buf = calloc(w * h * 4, 1);
    CGColorSpaceRef cs = CGColorSpaceCreateDeviceRGB();
    CGContextRef ctx = CGBitmapContextCreate(buf, w, h, 8, w * 4, cs,
        kCGImageAlphaPremultipliedLast | kCGBitmapByteOrder32Big);
    CGColorSpaceRelease(cs);
    if (ctx == NULL) {
        free(buf);
        CGImageRelease(img);
        return NULL;
    }
    CGContextDrawImage(ctx, CGRectMake(0, 0, w, h), img);
    CGContextRelease(ctx);
    CGImageRelease(img);

    *width = (int)w;
    *height = (int)h;
    return buf;
}
*/
import "C"

import (
	"errors"
	"image"
	"unsafe"
)

const nativeOS = "darwin"

// decodeNative decodes path with ImageIO, which handles HEIC.
func decodeNative(path string) (image.Image, error) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))

	var w, h C.int
	buf := C.decodeImageIO(cpath, &w, &h)
	if buf == nil {
		return nil, errors.New("ImageIO cannot decode file")
	}
	defer C.free(unsafe.Pointer(buf))

	img := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	copy(img.Pix, unsafe.Slice((*byte)(unsafe.Pointer(buf)), len(img.Pix)))
	return img, nil
}
