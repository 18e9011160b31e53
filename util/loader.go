package util

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-blur/images"
)

// ImageFile represents an image file.
type ImageFile struct {
	// Path is the path to the image file.
	Path string
	// Data is the raw bytes of the image file.
	Data []byte
	// Format is the format implied by the file extension.
	Format images.ImageFormat
	// Frame is the number parsed from a "frame-N" file name, or -1.
	Frame int
}

// LoadDirectoryImageFiles reads all image files from a directory. Files
// named "frame-N.ext" are ordered by N; the rest follow, ordered by name.
//
// Arguments:
// - dir: Directory path containing image files.
//
// Returns:
// - []ImageFile: Slice of ImageFile, each containing the raw bytes of an image file.
// - error: Error if loading fails.
func LoadDirectoryImageFiles(dir string) ([]ImageFile, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read directory")
	}

	var out []ImageFile
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		format, err := images.FormatFromPath(file.Name())
		if err != nil {
			continue
		}
		imgPath := filepath.Join(dir, file.Name())
		data, err := os.ReadFile(imgPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", imgPath)
		}
		out = append(out, ImageFile{
			Path:   imgPath,
			Data:   data,
			Format: format,
			Frame:  frameNumber(file.Name()),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		fi, fj := out[i].Frame, out[j].Frame
		if (fi < 0) != (fj < 0) {
			return fi >= 0
		}
		if fi != fj {
			return fi < fj
		}
		return out[i].Path < out[j].Path
	})

	return out, nil
}

func frameNumber(name string) int {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if !strings.HasPrefix(base, "frame-") {
		return -1
	}
	n, err := strconv.Atoi(strings.TrimPrefix(base, "frame-"))
	if err != nil || n < 0 {
		return -1
	}
	return n
}
