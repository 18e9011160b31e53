package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvr-ai/go-blur/images/kernels"
)

func TestChecksum(t *testing.T) {
	assert.Equal(t, "empty", Checksum(nil))
	assert.Equal(t, "empty", Checksum(&kernels.PixelBuffer{}))

	a := ToPixelBuffer(testImage(4, 4))
	b := a.Clone()
	assert.Equal(t, Checksum(a), Checksum(b))
	assert.Len(t, Checksum(a), 32)

	b.Set(0, 0, [4]uint8{1, 1, 1, 1})
	assert.NotEqual(t, Checksum(a), Checksum(b))

	// Same bytes, different shape.
	c, err := kernels.WrapPixelBuffer(2, 8, append([]byte(nil), a.Pix...))
	require.NoError(t, err)
	assert.NotEqual(t, Checksum(a), Checksum(c))
}

func TestChecksum_BlurIsDeterministic(t *testing.T) {
	src := ToPixelBuffer(testImage(16, 16))
	opt := kernels.Options{XRadius: 2, YRadius: 2}

	first, err := kernels.Blur(src.Clone(), opt)
	require.NoError(t, err)
	second, err := kernels.Blur(src.Clone(), opt)
	require.NoError(t, err)
	assert.Equal(t, Checksum(first), Checksum(second))
	assert.NotEqual(t, Checksum(src), Checksum(first))
}
