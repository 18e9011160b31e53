// Package engines provides Engine implementations backed by external
// libraries for comparison with the box engine.
package engines

import (
	"context"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"github.com/nvr-ai/go-blur/benchmark"
	"github.com/nvr-ai/go-blur/images/cv"
	"github.com/nvr-ai/go-blur/images/kernels"
)

// OpenCVEngine blurs frames with OpenCV's exact Gaussian kernel. Its output
// is close to, but not bit-identical with, the box engine.
type OpenCVEngine struct{}

// NewOpenCVEngine creates a new OpenCV engine
func NewOpenCVEngine() *OpenCVEngine {
	return &OpenCVEngine{}
}

// Type implements benchmark.Engine.
func (oe *OpenCVEngine) Type() benchmark.EngineType { return benchmark.EngineOpenCV }

// BorderType maps an edge mode onto the closest OpenCV border. OpenCV's
// Gaussian filter has no wrap border, so EdgeTile reports false.
func BorderType(edge kernels.EdgeMode) (gocv.BorderType, bool) {
	switch edge {
	case kernels.EdgeNone:
		return gocv.BorderConstant, true
	case kernels.EdgeDuplicate:
		return gocv.BorderReplicate, true
	case kernels.EdgeMirror:
		return gocv.BorderReflect, true
	default:
		return gocv.BorderDefault, false
	}
}

// Blur implements benchmark.Engine.
func (oe *OpenCVEngine) Blur(ctx context.Context, buf *kernels.PixelBuffer, opt kernels.Options) (*kernels.PixelBuffer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opt.Directional.X || opt.Directional.Y {
		return nil, fmt.Errorf("opencv engine: directional blur is not supported")
	}
	if opt.XRadius < 0 || opt.YRadius < 0 {
		return nil, fmt.Errorf("opencv engine: negative radius %gx%g", opt.XRadius, opt.YRadius)
	}
	border, ok := BorderType(opt.Edge)
	if !ok {
		return nil, fmt.Errorf("opencv engine: edge mode %s is not supported", opt.Edge)
	}
	if buf.Empty() || (opt.XRadius == 0 && opt.YRadius == 0) {
		return buf, nil
	}

	src, err := cv.BufferToMat(buf)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()
	// A zero kernel size lets OpenCV derive it from sigma. A size of 1
	// disables an axis, since a zero sigma would otherwise copy the other one.
	ksize := image.Point{}
	if opt.XRadius == 0 {
		ksize.X = 1
	}
	if opt.YRadius == 0 {
		ksize.Y = 1
	}
	gocv.GaussianBlur(src, &dst, ksize, opt.XRadius, opt.YRadius, border)

	out, err := cv.MatToBuffer(dst)
	if err != nil {
		return nil, err
	}
	return restoreChannels(out, buf, opt.Channels)
}

// Close implements benchmark.Engine.
func (oe *OpenCVEngine) Close() error { return nil }
