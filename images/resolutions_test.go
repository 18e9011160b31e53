package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolution_GetMegaPixels(t *testing.T) {
	testCases := []struct {
		name     string
		res      Resolution
		expected float64
	}{
		{"Full HD 1080p", resolutions[ResolutionTypeFHD1080p], 2.07},
		{"4K UHD", resolutions[ResolutionType4KUHD], 8.29},
		{"1MP (5:4)", resolutions[ResolutionType1MP54], 1.31},
		{"Zero Width", Resolution{Pixels: ResolutionPixels{Width: 0, Height: 1080}}, 0},
		{"Negative Width", Resolution{Pixels: ResolutionPixels{Width: -1920, Height: 1080}}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.res.GetMegaPixels())
		})
	}
}

func TestResolution_String(t *testing.T) {
	res, ok := GetResolutionByType(ResolutionTypeFHD1080p)
	require.True(t, ok)
	assert.Equal(t, "Full HD 1080p (1920x1080, 2.07MP)", res.String())
}

func TestGetResolutionByType(t *testing.T) {
	res, ok := GetResolutionByType(ResolutionTypeHD720p)
	require.True(t, ok)
	assert.Equal(t, 1280, res.Pixels.Width)

	_, ok = GetResolutionByType("InvalidType")
	assert.False(t, ok)
}

func TestGetAllResolutions_Ordered(t *testing.T) {
	all := GetAllResolutions()
	require.Len(t, all, len(resolutions))
	assert.Equal(t, ResolutionTypeThumb, all[0].Name)
	assert.Equal(t, ResolutionType8KUHD, all[len(all)-1].Name)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t,
			all[i-1].Pixels.Width*all[i-1].Pixels.Height,
			all[i].Pixels.Width*all[i].Pixels.Height)
	}
}

func TestGetSupportedResolutions(t *testing.T) {
	for _, res := range GetSupportedResolutions() {
		assert.False(t, res.Large, res.String())
	}
}

func TestGetHighestResolutionUnderDimensions(t *testing.T) {
	testCases := []struct {
		name          string
		width, height int
		expected      ResolutionType
		found         bool
	}{
		{"exact 1080p", 1920, 1080, ResolutionTypeFHD1080p, true},
		{"just under 1080p", 1919, 1080, ResolutionType1MP54, true},
		{"square frame", 700, 700, ResolutionTypeSquare, true},
		{"huge", 100000, 100000, ResolutionType8KUHD, true},
		{"too small", 100, 100, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, found := GetHighestResolutionUnderDimensions(tc.width, tc.height)
			assert.Equal(t, tc.found, found)
			if tc.found {
				assert.Equal(t, tc.expected, res.Name)
			}
		})
	}
}
