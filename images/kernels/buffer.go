// Package kernels implements the approximate separable Gaussian blur engine:
// a requested radius is decomposed into three box (moving-average) filters
// per axis, and each box is applied with an O(1)-per-pixel sliding window.
package kernels

// Channels is the number of interleaved channels per pixel (R, G, B, A).
const Channels = 4

// PixelBuffer is a fixed-size raster of Width*Height pixels with four
// interleaved 8-bit channels, stored row-major in Pix.
// len(Pix) == 4*Width*Height at all times; a buffer is never resized.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewPixelBuffer allocates a zeroed buffer of the given dimensions.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	if width < 0 || height < 0 {
		return nil, invalidBuffer("negative dimensions %dx%d", width, height)
	}
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, Channels*width*height),
	}, nil
}

// WrapPixelBuffer returns a buffer backed by pix without copying it.
// The slice length must be exactly 4*width*height.
func WrapPixelBuffer(width, height int, pix []byte) (*PixelBuffer, error) {
	b := &PixelBuffer{Width: width, Height: height, Pix: pix}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate reports ErrInvalidBuffer if the dimensions are negative or the
// pixel slice does not hold exactly 4*Width*Height bytes.
func (b *PixelBuffer) Validate() error {
	if b == nil {
		return invalidBuffer("nil buffer")
	}
	if b.Width < 0 || b.Height < 0 {
		return invalidBuffer("negative dimensions %dx%d", b.Width, b.Height)
	}
	if want := Channels * b.Width * b.Height; len(b.Pix) != want {
		return invalidBuffer("pixel length %d, want %d for %dx%d", len(b.Pix), want, b.Width, b.Height)
	}
	return nil
}

// Len returns the number of bytes in the buffer.
func (b *PixelBuffer) Len() int {
	return len(b.Pix)
}

// Empty reports whether the buffer has no pixels.
func (b *PixelBuffer) Empty() bool {
	return b.Width == 0 || b.Height == 0
}

// PixOffset returns the index of the first channel of pixel (x, y).
func (b *PixelBuffer) PixOffset(x, y int) int {
	return (y*b.Width + x) * Channels
}

// At returns the four channels of pixel (x, y).
func (b *PixelBuffer) At(x, y int) [Channels]uint8 {
	i := b.PixOffset(x, y)
	return [Channels]uint8{b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3]}
}

// Set writes the four channels of pixel (x, y).
func (b *PixelBuffer) Set(x, y int, c [Channels]uint8) {
	i := b.PixOffset(x, y)
	copy(b.Pix[i:i+Channels], c[:])
}

// Fill sets every pixel to c.
func (b *PixelBuffer) Fill(c [Channels]uint8) {
	for i := 0; i < len(b.Pix); i += Channels {
		copy(b.Pix[i:i+Channels], c[:])
	}
}

// Clone returns a deep copy of the buffer.
func (b *PixelBuffer) Clone() *PixelBuffer {
	out := &PixelBuffer{Width: b.Width, Height: b.Height, Pix: make([]byte, len(b.Pix))}
	copy(out.Pix, b.Pix)
	return out
}

// sameShape reports whether o can act as the ping-pong partner of b.
func (b *PixelBuffer) sameShape(o *PixelBuffer) bool {
	return b.Width == o.Width && b.Height == o.Height && len(b.Pix) == len(o.Pix)
}
