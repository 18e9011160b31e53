package images

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/nvr-ai/go-blur/images/kernels"
)

// ToPixelBuffer copies img into a new non-premultiplied RGBA pixel buffer.
// The buffer origin is img.Bounds().Min.
func ToPixelBuffer(img image.Image) *kernels.PixelBuffer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	buf := &kernels.PixelBuffer{Width: w, Height: h, Pix: make([]byte, kernels.Channels*w*h)}
	if w == 0 || h == 0 {
		return buf
	}

	if src, ok := img.(*image.NRGBA); ok {
		stride := kernels.Channels * w
		for y := 0; y < h; y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(buf.Pix[y*stride:(y+1)*stride], src.Pix[i:i+stride])
		}
		return buf
	}

	dst := FromPixelBuffer(buf)
	draw.Copy(dst, image.Point{}, img, b, draw.Src, nil)
	return buf
}

// FromPixelBuffer returns an *image.NRGBA view of buf. The image shares
// buf.Pix, so later writes to either are visible through both.
func FromPixelBuffer(buf *kernels.PixelBuffer) *image.NRGBA {
	return &image.NRGBA{
		Pix:    buf.Pix,
		Stride: kernels.Channels * buf.Width,
		Rect:   image.Rect(0, 0, buf.Width, buf.Height),
	}
}
