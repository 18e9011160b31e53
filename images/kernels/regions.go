package kernels

import "image"

// BlurRegions blurs only the given regions of src by compositing them from
// one full-frame blur onto a copy of the original. Regions are clipped to the
// buffer; overlaps are handled naturally. src is never modified.
func BlurRegions(src *PixelBuffer, regions []image.Rectangle, opt Options) (*PixelBuffer, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}

	blurred, err := Blur(src.Clone(), opt)
	if err != nil {
		return nil, err
	}

	out := src.Clone()
	bounds := image.Rect(0, 0, src.Width, src.Height)
	for _, r := range regions {
		r = r.Intersect(bounds)
		if r.Empty() {
			continue
		}
		n := r.Dx() * Channels
		for y := r.Min.Y; y < r.Max.Y; y++ {
			off := out.PixOffset(r.Min.X, y)
			copy(out.Pix[off:off+n], blurred.Pix[off:off+n])
		}
	}
	opt.Pool.Put(blurred)
	return out, nil
}
