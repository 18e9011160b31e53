package engines

import (
	"fmt"
	"image"

	"github.com/nvr-ai/go-blur/benchmark"
	"github.com/nvr-ai/go-blur/images"
	"github.com/nvr-ai/go-blur/images/kernels"
)

// New creates the engine registered under t.
func New(t benchmark.EngineType) (benchmark.Engine, error) {
	switch t {
	case benchmark.EngineBox:
		return benchmark.NewBoxEngine(), nil
	case benchmark.EngineOpenCV:
		return NewOpenCVEngine(), nil
	case benchmark.EngineBild:
		return NewBildEngine(), nil
	case benchmark.EngineImaging:
		return NewImagingEngine(), nil
	default:
		return nil, fmt.Errorf("unknown engine: %s", t)
	}
}

// restoreChannels puts the channels outside mask back from src.
func restoreChannels(out, src *kernels.PixelBuffer, mask kernels.ChannelMask) (*kernels.PixelBuffer, error) {
	if mask == 0 || mask.All() {
		return out, nil
	}
	if err := kernels.CopyChannels(out, src, mask); err != nil {
		return nil, err
	}
	return out, nil
}

// isotropicSigma returns the single sigma used by libraries that blur both
// axes alike. They clamp at the border, so only EdgeDuplicate is accepted.
func isotropicSigma(name string, opt kernels.Options) (float64, error) {
	if opt.Directional.X || opt.Directional.Y {
		return 0, fmt.Errorf("%s engine: directional blur is not supported", name)
	}
	if opt.XRadius != opt.YRadius {
		return 0, fmt.Errorf("%s engine: axis radii must match, got %gx%g", name, opt.XRadius, opt.YRadius)
	}
	if opt.XRadius < 0 {
		return 0, fmt.Errorf("%s engine: negative radius %g", name, opt.XRadius)
	}
	if opt.Edge != kernels.EdgeDuplicate {
		return 0, fmt.Errorf("%s engine: edge mode %s is not supported", name, opt.Edge)
	}
	return opt.XRadius, nil
}

// runImageBlur adapts an image.Image blur function to the Engine contract.
func runImageBlur(buf *kernels.PixelBuffer, opt kernels.Options, sigma float64, fn func(image.Image, float64) image.Image) (*kernels.PixelBuffer, error) {
	if buf.Empty() || sigma == 0 {
		return buf, nil
	}
	out := images.ToPixelBuffer(fn(images.FromPixelBuffer(buf), sigma))
	return restoreChannels(out, buf, opt.Channels)
}
