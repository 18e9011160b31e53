package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-blur/images"
)

func TestLoadDirectoryImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"frame-10.png", "frame-2.jpg", "b.webp", "a.TIFF", "notes.txt", "frame-x.bmp"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.png"), 0o755))

	files, err := LoadDirectoryImageFiles(dir)
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f.Path))
		assert.Equal(t, []byte(filepath.Base(f.Path)), f.Data)
	}
	assert.Equal(t, []string{"frame-2.jpg", "frame-10.png", "a.TIFF", "b.webp", "frame-x.bmp"}, names)
	assert.Equal(t, 2, files[0].Frame)
	assert.Equal(t, images.FormatJPEG, files[0].Format)
	assert.Equal(t, -1, files[4].Frame)
	assert.Equal(t, images.FormatBMP, files[4].Format)
}

func TestLoadDirectoryImages_Missing(t *testing.T) {
	_, err := LoadDirectoryImageFiles(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestFrameNumber(t *testing.T) {
	assert.Equal(t, 7, frameNumber("frame-7.png"))
	assert.Equal(t, 0, frameNumber("frame-000.jpg"))
	assert.Equal(t, -1, frameNumber("frame-.jpg"))
	assert.Equal(t, -1, frameNumber("clip-7.jpg"))
}
