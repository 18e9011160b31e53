package kernels

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseChannels(t *testing.T) {
	tests := []struct {
		in   string
		want ChannelMask
	}{
		{"RGBA", AllChannels},
		{"rgba", AllChannels},
		{"R", ChannelR},
		{"AB", ChannelA | ChannelB},
		{"GG", ChannelG},
	}
	for _, tt := range tests {
		got, err := ParseChannels(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "RGBX", "  "} {
		_, err := ParseChannels(bad)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration), "%q should be rejected", bad)
	}
}

func TestChannelMaskString(t *testing.T) {
	assert.Equal(t, "RGBA", AllChannels.String())
	assert.Equal(t, "GA", (ChannelG | ChannelA).String())
	assert.True(t, AllChannels.All())
	assert.False(t, ChannelR.All())
	assert.Equal(t, []int{0, 3}, (ChannelR | ChannelA).indices())
}

func TestParseEdgeMode(t *testing.T) {
	tests := map[string]EdgeMode{
		"duplicate": EdgeDuplicate,
		"Clamp":     EdgeDuplicate,
		"none":      EdgeNone,
		"wrap":      EdgeTile,
		"TILE":      EdgeTile,
		"mirror":    EdgeMirror,
	}
	for in, want := range tests {
		got, err := ParseEdgeMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseEdgeMode("reflect101")
	assert.True(t, errors.Is(err, ErrInvalidConfiguration), "unknown names must not fall back to another mode")
}

func TestEdgeModeFromCode(t *testing.T) {
	want := []EdgeMode{EdgeNone, EdgeDuplicate, EdgeTile, EdgeMirror}
	for code, mode := range want {
		got, err := EdgeModeFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, mode, got)
	}
	for _, code := range []int{-1, 4, 99} {
		_, err := EdgeModeFromCode(code)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration), "code %d", code)
	}
	assert.Equal(t, "wrap", EdgeTile.String())
}

func TestParseRadiusMethod(t *testing.T) {
	m, err := ParseRadiusMethod("variance")
	require.NoError(t, err)
	assert.Equal(t, MethodVarianceMatching, m)

	m, err = ParseRadiusMethod("svg")
	require.NoError(t, err)
	assert.Equal(t, MethodSVG, m)

	_, err = ParseRadiusMethod("box")
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestOptionsPlanValidation(t *testing.T) {
	tests := []struct {
		name string
		opt  Options
	}{
		{"unknown edge mode", Options{XRadius: 1, Edge: EdgeMode(9)}},
		{"negative symmetric radius", Options{XRadius: -1}},
		{"nan radius", Options{YRadius: math.NaN()}},
		{"infinite directional radius", Options{XRadius: math.Inf(-1), Directional: Direction{X: true}}},
		{"unknown method", Options{XRadius: 1, Method: RadiusMethod(5)}},
		{"undefined channel bits", Options{XRadius: 1, Channels: ChannelMask(0x30)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.opt.Plan()
			assert.True(t, errors.Is(err, ErrInvalidConfiguration), "got %v", err)
		})
	}

	p, err := Options{XRadius: -3, Directional: Direction{X: true}, YRadius: 1}.Plan()
	require.NoError(t, err)
	assert.Equal(t, Directional(-3), p.X)
	assert.Equal(t, SVGRounding(1), p.Y)
}

func TestOptionsZeroChannelsMeansAll(t *testing.T) {
	assert.Equal(t, AllChannels, Options{}.channels())
	assert.Equal(t, ChannelB, Options{Channels: ChannelB}.channels())
}
