package kernels

import "sync"

// Pool lets callers reuse scratch buffers across blurs to reduce GC pressure
// at video frame rates. A nil *Pool allocates fresh buffers.
type Pool struct {
	bufs sync.Pool // *PixelBuffer
}

// Get returns a buffer of the given dimensions. Its contents are arbitrary;
// the blur pipeline never reads channels it has not written.
func (p *Pool) Get(width, height int) *PixelBuffer {
	if p != nil {
		if v := p.bufs.Get(); v != nil {
			b := v.(*PixelBuffer)
			if cap(b.Pix) >= Channels*width*height {
				b.Width, b.Height = width, height
				b.Pix = b.Pix[:Channels*width*height]
				return b
			}
		}
	}
	return &PixelBuffer{Width: width, Height: height, Pix: make([]byte, Channels*width*height)}
}

// Put hands b back for reuse. The caller must not touch b afterwards.
func (p *Pool) Put(b *PixelBuffer) {
	if p == nil || b == nil {
		return
	}
	p.bufs.Put(b)
}
