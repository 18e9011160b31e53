package kernels

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPixelBuffer(t *testing.T) {
	b, err := NewPixelBuffer(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Width)
	assert.Equal(t, 2, b.Height)
	assert.Len(t, b.Pix, 24)
	assert.NoError(t, b.Validate())

	_, err = NewPixelBuffer(-1, 2)
	assert.True(t, errors.Is(err, ErrInvalidBuffer), "negative width should be an invalid buffer")
}

func TestWrapPixelBufferRejectsLengthMismatch(t *testing.T) {
	_, err := WrapPixelBuffer(2, 2, make([]byte, 15))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidBuffer))

	_, err = WrapPixelBuffer(2, 2, make([]byte, 17))
	assert.True(t, errors.Is(err, ErrInvalidBuffer), "buffers are never silently truncated")

	b, err := WrapPixelBuffer(2, 2, make([]byte, 16))
	require.NoError(t, err)
	assert.Equal(t, 16, b.Len())
}

func TestPixelBufferAccessors(t *testing.T) {
	b, err := NewPixelBuffer(4, 3)
	require.NoError(t, err)

	b.Fill([4]uint8{1, 2, 3, 4})
	b.Set(2, 1, [4]uint8{9, 8, 7, 6})

	assert.Equal(t, (1*4+2)*4, b.PixOffset(2, 1))
	assert.Equal(t, [4]uint8{9, 8, 7, 6}, b.At(2, 1))
	assert.Equal(t, [4]uint8{1, 2, 3, 4}, b.At(0, 0))

	c := b.Clone()
	c.Set(0, 0, [4]uint8{})
	assert.Equal(t, [4]uint8{1, 2, 3, 4}, b.At(0, 0), "clone must not share pixels")
	assert.False(t, b.Empty())

	var nilBuf *PixelBuffer
	assert.True(t, errors.Is(nilBuf.Validate(), ErrInvalidBuffer))
}
