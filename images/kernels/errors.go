package kernels

import "github.com/pkg/errors"

var (
	// ErrInvalidConfiguration is returned when a channel, edge-mode, radius or
	// method value cannot be mapped onto a defined blur configuration.
	ErrInvalidConfiguration = errors.New("kernels: invalid configuration")

	// ErrInvalidBuffer is returned when a pixel buffer's length does not match
	// 4*Width*Height or its dimensions are negative.
	ErrInvalidBuffer = errors.New("kernels: invalid buffer")
)

// invalidConfig wraps ErrInvalidConfiguration with a formatted reason.
func invalidConfig(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidConfiguration, format, args...)
}

func invalidBuffer(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidBuffer, format, args...)
}
