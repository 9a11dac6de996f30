package images

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedExtensions(t *testing.T) {
	assert.Contains(t, SupportedExtensions("darwin"), ".heic")
	assert.Contains(t, SupportedExtensions("darwin"), ".jpg")
	assert.NotContains(t, SupportedExtensions("linux"), ".heic")
	assert.Contains(t, SupportedExtensions("windows"), ".webp")

	// Callers get their own copy.
	exts := SupportedExtensions("linux")
	exts[0] = ".bogus"
	assert.Equal(t, ".jpg", SupportedExtensions("linux")[0])
}

func TestFileDecoder(t *testing.T) {
	dir := t.TempDir()

	img, err := FileDecoder{}.Decode(writePNG(t, dir, "ok.png", 3, 2))
	require.NoError(t, err)
	assert.Equal(t, 3, img.Bounds().Dx())

	bogus := filepath.Join(dir, "bogus.heic")
	require.NoError(t, os.WriteFile(bogus, []byte("\x00\x00\x00\x18ftypheic not really"), 0644))
	_, err = FileDecoder{}.Decode(bogus)
	assert.Error(t, err, "an unreadable HEIC file is an error on every platform")
}
