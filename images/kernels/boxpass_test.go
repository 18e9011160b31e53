package kernels

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// naiveBoxPass recomputes every window from scratch in O(size) per sample.
func naiveBoxPass(src []byte, width, height int, r BoxRadius, vertical bool, edge EdgeMode) []byte {
	dst := make([]byte, len(src))
	size := r.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for c := 0; c < Channels; c++ {
				sum := 0
				for d := -r.Left; d <= r.Right; d++ {
					i, n := x+d, width
					if vertical {
						i, n = y+d, height
					}
					j, ok := mapCoord(i, n, edge)
					if !ok {
						continue
					}
					sx, sy := j, y
					if vertical {
						sx, sy = x, j
					}
					sum += int(src[(sy*width+sx)*Channels+c])
				}
				dst[(y*width+x)*Channels+c] = uint8((sum + size/2) / size)
			}
		}
	}
	return dst
}

func randomPix(rng *rand.Rand, width, height int) []byte {
	pix := make([]byte, Channels*width*height)
	rng.Read(pix)
	return pix
}

var allEdgeModes = []EdgeMode{EdgeDuplicate, EdgeNone, EdgeTile, EdgeMirror}

func TestBoxPassMatchesNaiveReference(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	radii := []BoxRadius{{1, 0}, {0, 1}, {1, 1}, {2, 3}, {0, 5}, {7, 7}, {12, 2}}
	sizes := [][2]int{{1, 1}, {1, 7}, {5, 3}, {9, 6}, {16, 4}}

	for _, sz := range sizes {
		w, h := sz[0], sz[1]
		src := randomPix(rng, w, h)
		for _, r := range radii {
			for _, edge := range allEdgeModes {
				for _, vertical := range []bool{false, true} {
					dst := make([]byte, len(src))
					ran := boxPass(src, dst, w, h, r, vertical, edge, AllChannels, false)
					require.True(t, ran)
					want := naiveBoxPass(src, w, h, r, vertical, edge)
					require.Equal(t, want, dst, "size %dx%d radius %+v edge %s vertical %v", w, h, r, edge, vertical)
				}
			}
		}
	}
}

func TestBoxPassWindowLargerThanLine(t *testing.T) {
	// left+right+1 exceeds both dimensions; the pass must not read out of bounds.
	rng := rand.New(rand.NewSource(1))
	w, h := 3, 2
	src := randomPix(rng, w, h)
	r := BoxRadius{Left: 20, Right: 31}
	for _, edge := range allEdgeModes {
		dst := make([]byte, len(src))
		assert.NotPanics(t, func() {
			boxPass(src, dst, w, h, r, false, edge, AllChannels, false)
			boxPass(src, dst, w, h, r, true, edge, AllChannels, false)
		})
		assert.Equal(t, naiveBoxPass(src, w, h, r, true, edge), dst, "edge %s", edge)
	}
}

func TestBoxPassDegenerateIsIdentity(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	dst := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	assert.False(t, boxPass(src, dst, 2, 1, BoxRadius{}, false, EdgeDuplicate, AllChannels, false))
	assert.Equal(t, []byte{9, 9, 9, 9, 9, 9, 9, 9}, dst, "degenerate pass must not write")
}

func TestBoxPassLeavesMaskedChannelsUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w, h := 6, 5
	src := randomPix(rng, w, h)
	dst := make([]byte, len(src))
	for i := range dst {
		dst[i] = 0xAB
	}
	boxPass(src, dst, w, h, BoxRadius{2, 2}, false, EdgeMirror, ChannelR|ChannelB, false)

	want := naiveBoxPass(src, w, h, BoxRadius{2, 2}, false, EdgeMirror)
	for i := 0; i < len(dst); i += Channels {
		assert.Equal(t, want[i], dst[i])
		assert.Equal(t, byte(0xAB), dst[i+1])
		assert.Equal(t, want[i+2], dst[i+2])
		assert.Equal(t, byte(0xAB), dst[i+3])
	}
}

func TestBoxPassParallelMatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	w, h := 97, 131
	src := randomPix(rng, w, h)
	for _, vertical := range []bool{false, true} {
		serial := make([]byte, len(src))
		parallel := make([]byte, len(src))
		boxPass(src, serial, w, h, BoxRadius{4, 3}, vertical, EdgeTile, AllChannels, false)
		boxPass(src, parallel, w, h, BoxRadius{4, 3}, vertical, EdgeTile, AllChannels, true)
		assert.Equal(t, serial, parallel)
	}
}
