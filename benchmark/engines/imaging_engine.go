package engines

import (
	"context"
	"image"

	"github.com/disintegration/imaging"

	"github.com/nvr-ai/go-blur/benchmark"
	"github.com/nvr-ai/go-blur/images/kernels"
)

// ImagingEngine blurs frames with imaging's separable Gaussian.
type ImagingEngine struct{}

// NewImagingEngine creates a new imaging engine
func NewImagingEngine() *ImagingEngine {
	return &ImagingEngine{}
}

// Type implements benchmark.Engine.
func (ie *ImagingEngine) Type() benchmark.EngineType { return benchmark.EngineImaging }

// Blur implements benchmark.Engine.
func (ie *ImagingEngine) Blur(ctx context.Context, buf *kernels.PixelBuffer, opt kernels.Options) (*kernels.PixelBuffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sigma, err := isotropicSigma("imaging", opt)
	if err != nil {
		return nil, err
	}
	return runImageBlur(buf, opt, sigma, func(img image.Image, s float64) image.Image {
		return imaging.Blur(img, s)
	})
}

// Close implements benchmark.Engine.
func (ie *ImagingEngine) Close() error { return nil }
