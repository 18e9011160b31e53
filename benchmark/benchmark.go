// Package benchmark measures blur throughput across frame sizes, radii,
// edge modes and engines.
package benchmark

import (
	"context"
	"fmt"

	"github.com/nvr-ai/go-blur/config"
	"github.com/nvr-ai/go-blur/images/kernels"
)

// EngineType names a blur implementation under test.
type EngineType string

const (
	// EngineBox is the three-box sliding window engine.
	EngineBox EngineType = "box"
	// EngineOpenCV is OpenCV's true Gaussian, for comparison.
	EngineOpenCV EngineType = "opencv"
	// EngineBild is anthonynsimon/bild's Gaussian convolution.
	EngineBild EngineType = "bild"
	// EngineImaging is disintegration/imaging's separable Gaussian.
	EngineImaging EngineType = "imaging"
)

// Engine blurs one frame. Implementations may use buf as working storage,
// like kernels.Blur.
type Engine interface {
	Type() EngineType
	Blur(ctx context.Context, buf *kernels.PixelBuffer, opt kernels.Options) (*kernels.PixelBuffer, error)
	Close() error
}

// BoxEngine runs kernels.Blur with a shared scratch pool.
type BoxEngine struct {
	pool *kernels.Pool
}

// NewBoxEngine creates a box engine with its own scratch pool.
func NewBoxEngine() *BoxEngine {
	return &BoxEngine{pool: &kernels.Pool{}}
}

// Type implements Engine.
func (e *BoxEngine) Type() EngineType { return EngineBox }

// Blur implements Engine.
func (e *BoxEngine) Blur(ctx context.Context, buf *kernels.PixelBuffer, opt kernels.Options) (*kernels.PixelBuffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opt.Pool = e.pool
	return kernels.Blur(buf, opt)
}

// Recycle hands a result that is not the input frame back to the pool.
func (e *BoxEngine) Recycle(frame, out *kernels.PixelBuffer) {
	if out != nil && out != frame {
		e.pool.Put(out)
	}
}

// Close implements Engine.
func (e *BoxEngine) Close() error { return nil }

// Resolution represents frame dimensions for benchmarking
type Resolution struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Name   string `json:"name"`
}

// Megapixels returns Width*Height in millions of pixels.
func (r Resolution) Megapixels() float64 {
	return float64(r.Width*r.Height) / 1e6
}

// Common resolutions for benchmarking
var CommonResolutions = []Resolution{
	{Width: 320, Height: 240, Name: "320x240"},
	{Width: 640, Height: 360, Name: "640x360"},
	{Width: 640, Height: 640, Name: "640x640"},
	{Width: 1280, Height: 720, Name: "1280x720"},
	{Width: 1920, Height: 1080, Name: "1920x1080"},
}

// Scenario defines a specific test configuration
type Scenario struct {
	Name       string            `json:"name"`
	Engine     EngineType        `json:"engine"`
	Resolution Resolution        `json:"resolution"`
	Blur       config.BlurConfig `json:"blur"`
	Iterations int               `json:"iterations"`
	WarmupRuns int               `json:"warmup_runs"`
}

// Options returns the engine options the scenario describes.
func (s Scenario) Options() (kernels.Options, error) {
	opt, err := s.Blur.Options()
	if err != nil {
		return kernels.Options{}, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	return opt, nil
}

// Validate reports a scenario that cannot run.
func (s Scenario) Validate() error {
	if s.Resolution.Width <= 0 || s.Resolution.Height <= 0 {
		return fmt.Errorf("scenario %s: invalid resolution %dx%d", s.Name, s.Resolution.Width, s.Resolution.Height)
	}
	if s.Iterations <= 0 {
		return fmt.Errorf("scenario %s: iterations must be positive", s.Name)
	}
	_, err := s.Options()
	return err
}
