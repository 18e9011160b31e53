package images

import (
	"crypto/md5"
	"fmt"

	"github.com/nvr-ai/go-blur/images/kernels"
)

// Checksum generates a deterministic checksum of a buffer's pixels, used to
// confirm that repeated blurs of the same input are identical.
//
// Arguments:
//   - buf: The buffer to compute a checksum for.
//
// Returns:
//   - A hex-encoded MD5 checksum string, or "empty" for an empty buffer.
//
// Example:
//
// ```go
//
//	checksum := Checksum(frame)
//	fmt.Printf("Frame checksum: %s\n", checksum)
//
// ```
func Checksum(buf *kernels.PixelBuffer) string {
	if buf == nil || buf.Empty() {
		return "empty"
	}

	hash := md5.New()
	fmt.Fprintf(hash, "%dx%d:", buf.Width, buf.Height)
	hash.Write(buf.Pix)
	return fmt.Sprintf("%x", hash.Sum(nil))
}
