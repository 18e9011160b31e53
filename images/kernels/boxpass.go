package kernels

// boxPass applies one moving-average window of r.Size() samples along one
// axis of a width x height buffer, reading src and writing dst. Only the
// channels in mask are written; other channels of dst are left untouched.
//
// Rows are filtered for the horizontal axis and columns for the vertical one.
// Both use the same loop: the pixel step and line step are swapped.
//
// It reports false without touching dst when the window is an identity.
func boxPass(src, dst []byte, width, height int, r BoxRadius, vertical bool, edge EdgeMode, mask ChannelMask, parallel bool) bool {
	size := r.Size()
	if size < 2 {
		return false
	}

	n, lines := width, height
	pixDelta, lineDelta := Channels, Channels*width
	if vertical {
		n, lines = height, width
		pixDelta, lineDelta = lineDelta, pixDelta
	}
	if n == 0 {
		return true
	}

	chans := mask.indices()
	half := size / 2

	forEachLine(lines, parallel, func(line int) {
		base := line * lineDelta
		sample := func(i, c int) int {
			j, ok := mapCoord(i, n, edge)
			if !ok {
				return 0
			}
			return int(src[base+j*pixDelta+c])
		}

		for _, c := range chans {
			// Seed the window for output 0: [-Left, Right].
			sum := 0
			for i := -r.Left; i <= r.Right; i++ {
				sum += sample(i, c)
			}

			o := base + c
			for x := 0; x < n; x++ {
				dst[o] = clampByte((sum + half) / size)
				sum += sample(x+r.Right+1, c) - sample(x-r.Left, c)
				o += pixDelta
			}
		}
	})
	return true
}

func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
