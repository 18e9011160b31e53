package images

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: 128, A: 255})
		}
	}
	return img
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want ImageFormat
	}{
		{"a.jpg", FormatJPEG},
		{"dir/b.JPEG", FormatJPEG},
		{"c.png", FormatPNG},
		{"d.webp", FormatWebP},
		{"e.bmp", FormatBMP},
		{"f.tif", FormatTIFF},
		{"g.tiff", FormatTIFF},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := FormatFromPath("notes.txt")
	assert.Error(t, err)
	_, err = FormatFromPath("noext")
	assert.Error(t, err)
}

func TestEncodeDecode_Lossless(t *testing.T) {
	src := testImage(8, 6)
	for _, format := range []ImageFormat{FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, src, format, 0))

			img, got, err := Decode(buf.Bytes())
			require.NoError(t, err)
			assert.Equal(t, format, got)
			assert.Equal(t, src.Pix, ToPixelBuffer(img).Pix)
		})
	}
}

func TestEncodeDecode_Lossy(t *testing.T) {
	src := testImage(16, 16)
	for _, format := range []ImageFormat{FormatJPEG, FormatWebP} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, src, format, 95))

			img, got, err := Decode(buf.Bytes())
			require.NoError(t, err)
			assert.Equal(t, format, got)
			assert.Equal(t, src.Bounds(), img.Bounds())
		})
	}
}

func TestEncode_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Encode(&buf, testImage(1, 1), "gif", 0))
}

func TestDecode_Invalid(t *testing.T) {
	_, _, err := Decode(nil)
	assert.Error(t, err)

	_, _, err = Decode([]byte("definitely not an image"))
	assert.Error(t, err)

	// PNG signature with a truncated body.
	_, _, err = Decode([]byte("\x89PNG\r\n\x1a\n\x00\x00"))
	assert.Error(t, err)
}

func TestReadWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "frame-001.png")
	require.NoError(t, WriteFile(path, testImage(5, 4), 0))

	img, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, img.Format)
	assert.Equal(t, 5, img.Width)
	assert.Equal(t, 4, img.Height)

	decoded, err := img.Decode()
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 5, 4), decoded.Bounds())

	assert.Error(t, WriteFile(filepath.Join(dir, "out.txt"), testImage(1, 1), 0))

	_, err = ReadFile(filepath.Join(dir, "missing.png"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.png"), []byte("junk"), 0o644))
	_, err = ReadFile(filepath.Join(dir, "bad.png"))
	assert.Error(t, err)
}
