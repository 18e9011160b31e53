package kernels

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyChannels(t *testing.T) {
	dst := solidBuffer(t, 3, 2, [4]uint8{1, 1, 1, 1})
	src := solidBuffer(t, 3, 2, [4]uint8{9, 8, 7, 6})

	require.NoError(t, CopyChannels(dst, src, ChannelR|ChannelB))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, [4]uint8{1, 8, 1, 6}, dst.At(x, y))
		}
	}

	require.NoError(t, CopyChannels(dst, src, AllChannels))
	assert.Equal(t, [4]uint8{1, 8, 1, 6}, dst.At(0, 0), "nothing to copy when every channel is blurred")
}

func TestCopyChannelsShapeMismatch(t *testing.T) {
	err := CopyChannels(solidBuffer(t, 3, 2, [4]uint8{}), solidBuffer(t, 2, 3, [4]uint8{}), ChannelR)
	assert.True(t, errors.Is(err, ErrInvalidBuffer))
}
