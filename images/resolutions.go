package images

import (
	"fmt"
	"math"
	"sort"
)

// AspectRatio represents an aspect ratio by name (e.g., "16:9").
type AspectRatio string

// Common aspect ratios for camera frames.
const (
	AspectRatio169 AspectRatio = "16:9"
	AspectRatio43  AspectRatio = "4:3"
	AspectRatio54  AspectRatio = "5:4"
	AspectRatio11  AspectRatio = "1:1"
)

// ResolutionType is the common name of a frame size.
type ResolutionType string

// Frame sizes used as blur benchmark presets.
const (
	ResolutionTypeThumb    ResolutionType = "thumb"
	ResolutionTypeNHD      ResolutionType = "nHD"
	ResolutionTypeSquare   ResolutionType = "square 640"
	ResolutionTypeFWVGA    ResolutionType = "FWVGA"
	ResolutionTypeHD720p   ResolutionType = "HD 720p"
	ResolutionType1MP54    ResolutionType = "1MP (5:4)"
	ResolutionTypeFHD1080p ResolutionType = "Full HD 1080p"
	ResolutionType2MP43    ResolutionType = "2MP (4:3)"
	ResolutionTypeQHD1440p ResolutionType = "QHD 1440p"
	ResolutionType4KUHD    ResolutionType = "4K UHD"
	ResolutionType8KUHD    ResolutionType = "8K UHD"
)

// ResolutionPixels describes the exact dimensions of a resolution.
type ResolutionPixels struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Resolution describes a named frame size.
type Resolution struct {
	Name        ResolutionType   `json:"name" yaml:"name"`
	AspectRatio AspectRatio      `json:"aspectRatio" yaml:"aspectRatio"`
	Pixels      ResolutionPixels `json:"pixels" yaml:"pixels"`
	// Large flags sizes that take seconds per blur and are left out of quick runs.
	Large bool `json:"large" yaml:"large"`
}

// GetMegaPixels returns the megapixel count rounded to two decimal places
// (e.g., 2.07 for 1080p).
func (r Resolution) GetMegaPixels() float64 {
	if r.Pixels.Width <= 0 || r.Pixels.Height <= 0 {
		return 0.0
	}
	mp := float64(r.Pixels.Width*r.Pixels.Height) / 1_000_000.0
	return math.Round(mp*100) / 100
}

// String returns a human-readable summary of the resolution.
func (r Resolution) String() string {
	return fmt.Sprintf("%s (%dx%d, %.2fMP)", r.Name, r.Pixels.Width, r.Pixels.Height, r.GetMegaPixels())
}

var resolutions = map[ResolutionType]Resolution{
	ResolutionTypeThumb: {
		Name:        ResolutionTypeThumb,
		AspectRatio: AspectRatio43,
		Pixels:      ResolutionPixels{Width: 160, Height: 120},
	},
	ResolutionTypeNHD: {
		Name:        ResolutionTypeNHD,
		AspectRatio: AspectRatio169,
		Pixels:      ResolutionPixels{Width: 640, Height: 360},
	},
	ResolutionTypeSquare: {
		Name:        ResolutionTypeSquare,
		AspectRatio: AspectRatio11,
		Pixels:      ResolutionPixels{Width: 640, Height: 640},
	},
	ResolutionTypeFWVGA: {
		Name:        ResolutionTypeFWVGA,
		AspectRatio: AspectRatio169,
		Pixels:      ResolutionPixels{Width: 854, Height: 480},
	},
	ResolutionTypeHD720p: {
		Name:        ResolutionTypeHD720p,
		AspectRatio: AspectRatio169,
		Pixels:      ResolutionPixels{Width: 1280, Height: 720},
	},
	ResolutionType1MP54: {
		Name:        ResolutionType1MP54,
		AspectRatio: AspectRatio54,
		Pixels:      ResolutionPixels{Width: 1280, Height: 1024},
	},
	ResolutionTypeFHD1080p: {
		Name:        ResolutionTypeFHD1080p,
		AspectRatio: AspectRatio169,
		Pixels:      ResolutionPixels{Width: 1920, Height: 1080},
	},
	ResolutionType2MP43: {
		Name:        ResolutionType2MP43,
		AspectRatio: AspectRatio43,
		Pixels:      ResolutionPixels{Width: 1600, Height: 1200},
	},
	ResolutionTypeQHD1440p: {
		Name:        ResolutionTypeQHD1440p,
		AspectRatio: AspectRatio169,
		Pixels:      ResolutionPixels{Width: 2560, Height: 1440},
		Large:       true,
	},
	ResolutionType4KUHD: {
		Name:        ResolutionType4KUHD,
		AspectRatio: AspectRatio169,
		Pixels:      ResolutionPixels{Width: 3840, Height: 2160},
		Large:       true,
	},
	ResolutionType8KUHD: {
		Name:        ResolutionType8KUHD,
		AspectRatio: AspectRatio169,
		Pixels:      ResolutionPixels{Width: 7680, Height: 4320},
		Large:       true,
	},
}

// sortByPixels orders resolutions from smallest to largest, breaking ties by name.
func sortByPixels(rs []Resolution) {
	sort.Slice(rs, func(i, j int) bool {
		pi := rs[i].Pixels.Width * rs[i].Pixels.Height
		pj := rs[j].Pixels.Width * rs[j].Pixels.Height
		if pi != pj {
			return pi < pj
		}
		return rs[i].Name < rs[j].Name
	})
}

// GetAllResolutions returns every preset ordered by pixel count.
func GetAllResolutions() []Resolution {
	all := make([]Resolution, 0, len(resolutions))
	for _, res := range resolutions {
		all = append(all, res)
	}
	sortByPixels(all)
	return all
}

// GetSupportedResolutions returns the presets that are not flagged Large,
// ordered by pixel count.
func GetSupportedResolutions() []Resolution {
	supported := make([]Resolution, 0, len(resolutions))
	for _, res := range resolutions {
		if !res.Large {
			supported = append(supported, res)
		}
	}
	sortByPixels(supported)
	return supported
}

// GetResolutionByType retrieves a specific resolution by its type.
func GetResolutionByType(t ResolutionType) (Resolution, bool) {
	res, ok := resolutions[t]
	return res, ok
}

// GetHighestResolutionUnderDimensions retrieves the largest preset that fits
// inside width x height.
//
// Arguments:
//   - width: The maximum possible width of the frame.
//   - height: The maximum possible height of the frame.
//
// Returns:
//   - Resolution: The largest fitting preset.
//   - bool: True if a resolution was found, otherwise false.
func GetHighestResolutionUnderDimensions(width, height int) (Resolution, bool) {
	var highest Resolution
	var found bool

	for _, res := range GetAllResolutions() {
		if res.Pixels.Width <= width && res.Pixels.Height <= height {
			highest = res
			found = true
		}
	}
	return highest, found
}
