package kernels

// CopyChannels copies every channel NOT enabled in mask from src into dst,
// pixel by pixel. Both buffers must have the same shape.
func CopyChannels(dst, src *PixelBuffer, mask ChannelMask) error {
	if err := dst.Validate(); err != nil {
		return err
	}
	if err := src.Validate(); err != nil {
		return err
	}
	if !dst.sameShape(src) {
		return invalidBuffer("shape mismatch %dx%d vs %dx%d", dst.Width, dst.Height, src.Width, src.Height)
	}
	copyChannels(dst.Pix, src.Pix, mask)
	return nil
}

func copyChannels(dst, src []byte, mask ChannelMask) {
	for c := 0; c < Channels; c++ {
		if mask.Has(c) {
			continue
		}
		for i := c; i < len(dst); i += Channels {
			dst[i] = src[i]
		}
	}
}
