// Package cv bridges gocv matrices and the blur engine's pixel buffers so
// frames captured through OpenCV can be blurred without an image.Image
// round trip.
package cv

import (
	"github.com/pkg/errors"
	"gocv.io/x/gocv"

	"github.com/nvr-ai/go-blur/images/kernels"
)

// MatToBuffer copies an 8-bit OpenCV frame into an RGBA pixel buffer.
// Single channel Mats are treated as gray, three channel Mats as BGR and
// four channel Mats as BGRA.
//
// Arguments:
//   - mat: The source frame.
//
// Returns:
//   - *kernels.PixelBuffer: A new buffer holding the frame's pixels.
//   - error: An error if the Mat is empty or not an 8-bit type this package handles.
func MatToBuffer(mat gocv.Mat) (*kernels.PixelBuffer, error) {
	if mat.Empty() {
		return nil, errors.New("empty mat")
	}

	var code gocv.ColorConversionCode
	switch mat.Type() {
	case gocv.MatTypeCV8UC1:
		code = gocv.ColorGrayToRGBA
	case gocv.MatTypeCV8UC3:
		code = gocv.ColorBGRToRGBA
	case gocv.MatTypeCV8UC4:
		code = gocv.ColorBGRAToRGBA
	default:
		return nil, errors.Errorf("unsupported mat type %v", mat.Type())
	}

	rgba := gocv.NewMat()
	defer rgba.Close()
	gocv.CvtColor(mat, &rgba, code)

	// ToBytes copies, so the buffer owns its pixels once rgba is closed.
	return kernels.WrapPixelBuffer(rgba.Cols(), rgba.Rows(), rgba.ToBytes())
}

// BufferToMat copies buf into a new BGRA Mat. The caller must Close it.
func BufferToMat(buf *kernels.PixelBuffer) (gocv.Mat, error) {
	if err := buf.Validate(); err != nil {
		return gocv.NewMat(), err
	}
	if buf.Empty() {
		return gocv.NewMat(), errors.New("empty buffer")
	}

	rgba, err := gocv.NewMatFromBytes(buf.Height, buf.Width, gocv.MatTypeCV8UC4, buf.Pix)
	if err != nil {
		return gocv.NewMat(), errors.Wrap(err, "failed to create mat")
	}
	defer rgba.Close()

	bgra := gocv.NewMat()
	gocv.CvtColor(rgba, &bgra, gocv.ColorRGBAToBGRA)
	return bgra, nil
}

// Blur blurs an OpenCV frame with the box-approximated Gaussian and returns
// a new BGRA Mat that the caller must Close.
func Blur(mat gocv.Mat, opt kernels.Options) (gocv.Mat, error) {
	buf, err := MatToBuffer(mat)
	if err != nil {
		return gocv.NewMat(), err
	}
	out, err := kernels.Blur(buf, opt)
	if err != nil {
		return gocv.NewMat(), err
	}
	return BufferToMat(out)
}
