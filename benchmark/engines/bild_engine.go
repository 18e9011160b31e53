package engines

import (
	"context"
	"image"

	"github.com/anthonynsimon/bild/blur"

	"github.com/nvr-ai/go-blur/benchmark"
	"github.com/nvr-ai/go-blur/images/kernels"
)

// BildEngine blurs frames with bild's full Gaussian convolution.
type BildEngine struct{}

// NewBildEngine creates a new bild engine
func NewBildEngine() *BildEngine {
	return &BildEngine{}
}

// Type implements benchmark.Engine.
func (be *BildEngine) Type() benchmark.EngineType { return benchmark.EngineBild }

// Blur implements benchmark.Engine.
func (be *BildEngine) Blur(ctx context.Context, buf *kernels.PixelBuffer, opt kernels.Options) (*kernels.PixelBuffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sigma, err := isotropicSigma("bild", opt)
	if err != nil {
		return nil, err
	}
	return runImageBlur(buf, opt, sigma, func(img image.Image, s float64) image.Image {
		return blur.Gaussian(img, s)
	})
}

// Close implements benchmark.Engine.
func (be *BildEngine) Close() error { return nil }
