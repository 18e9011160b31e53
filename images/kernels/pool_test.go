package kernels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoolGetShape(t *testing.T) {
	var nilPool *Pool
	b := nilPool.Get(3, 2)
	assert.Len(t, b.Pix, 24)
	nilPool.Put(b)

	p := &Pool{}
	p.Put(&PixelBuffer{Width: 10, Height: 10, Pix: make([]byte, 400)})
	got := p.Get(4, 5)
	assert.Equal(t, 4, got.Width)
	assert.Equal(t, 5, got.Height)
	assert.Len(t, got.Pix, 80)
	assert.NoError(t, got.Validate())

	small := &Pool{}
	small.Put(&PixelBuffer{Width: 1, Height: 1, Pix: make([]byte, 4)})
	assert.Len(t, small.Get(8, 8).Pix, 256, "undersized buffers are not reused")
}
