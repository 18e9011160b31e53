package images

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// DefaultQuality is the JPEG/WebP quality used when none is given.
const DefaultQuality = 90

// FormatFromPath returns the image format implied by a file extension.
//
// Arguments:
//   - path: A file name or path such as "frame-001.png".
//
// Returns:
//   - ImageFormat: The detected format.
//   - error: An error if the extension is not a supported image format.
func FormatFromPath(path string) (ImageFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".png":
		return FormatPNG, nil
	case ".webp":
		return FormatWebP, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return "", errors.Errorf("unsupported image extension %q", filepath.Ext(path))
	}
}

// sniffFormat inspects the magic bytes of an encoded image.
func sniffFormat(data []byte) (ImageFormat, bool) {
	switch {
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return FormatJPEG, true
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return FormatPNG, true
	case len(data) >= 12 && string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP":
		return FormatWebP, true
	case bytes.HasPrefix(data, []byte("BM")):
		return FormatBMP, true
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return FormatTIFF, true
	default:
		return "", false
	}
}

// Decode decodes an encoded image, detecting its format from the content.
//
// Arguments:
//   - data: The encoded image bytes.
//
// Returns:
//   - image.Image: The decoded image.
//   - ImageFormat: The detected format.
//   - error: An error if the data is empty, unrecognised or corrupt.
func Decode(data []byte) (image.Image, ImageFormat, error) {
	if len(data) == 0 {
		return nil, "", errors.New("empty image data")
	}
	format, ok := sniffFormat(data)
	if !ok {
		return nil, "", errors.New("unrecognised image format")
	}

	r := bytes.NewReader(data)
	var (
		img image.Image
		err error
	)
	switch format {
	case FormatJPEG:
		img, err = jpeg.Decode(r)
	case FormatPNG:
		img, err = png.Decode(r)
	case FormatWebP:
		img, err = webp.Decode(r)
	case FormatBMP:
		img, err = bmp.Decode(r)
	case FormatTIFF:
		img, err = tiff.Decode(r)
	}
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to decode %s", format)
	}
	return img, format, nil
}

// Encode writes img to w in the given format. quality applies to JPEG and
// lossy WebP; values outside 1..100 select DefaultQuality.
func Encode(w io.Writer, img image.Image, format ImageFormat, quality int) error {
	if quality < 1 || quality > 100 {
		quality = DefaultQuality
	}
	var err error
	switch format {
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: quality})
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatWebP:
		err = webp.Encode(w, img, &webp.Options{Quality: float32(quality), Exact: true})
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return errors.Errorf("unsupported image format: %q", format)
	}
	return errors.Wrapf(err, "failed to encode %s", format)
}

// ReadFile reads an encoded image from disk and records its dimensions.
func ReadFile(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read image")
	}
	img, format, err := Decode(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	b := img.Bounds()
	return &Image{Format: format, Data: data, Width: b.Dx(), Height: b.Dy()}, nil
}

// Decode decodes the image's data.
func (i *Image) Decode() (image.Image, error) {
	img, _, err := Decode(i.Data)
	return img, err
}

// WriteFile encodes img in the format implied by path's extension.
func WriteFile(path string, img image.Image, quality int) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, img, format, quality); err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(path, buf.Bytes(), 0o644), "failed to write image")
}
