package kernels

import (
	"math"
	"strings"
)

// BoxRadius is the extent of one box window around the output pixel:
// output i averages input samples [i-Left, i+Right].
type BoxRadius struct {
	Left  int
	Right int
}

// Size returns the window length Left+Right+1.
func (r BoxRadius) Size() int {
	return r.Left + r.Right + 1
}

// Degenerate reports whether the box is an identity (window shorter than 2).
func (r BoxRadius) Degenerate() bool {
	return r.Size() < 2
}

// AxisRadius holds the three successive boxes applied along one axis.
type AxisRadius [3]BoxRadius

// Disabled reports whether all three boxes are identities.
func (a AxisRadius) Disabled() bool {
	return a[0].Degenerate() && a[1].Degenerate() && a[2].Degenerate()
}

// Planner decomposes a non-negative blur radius into three boxes.
type Planner func(radius float64) AxisRadius

// RadiusMethod selects the Planner used for a whole blur.
type RadiusMethod int

const (
	// MethodSVG derives a single box size d from the standard
	// deviation and uses three boxes of size d, offsetting two of them by
	// half a pixel when d is even.
	MethodSVG RadiusMethod = iota
	// MethodVarianceMatching picks box widths whose summed variance matches
	// the requested one.
	MethodVarianceMatching
)

func (m RadiusMethod) String() string {
	switch m {
	case MethodSVG:
		return "svg"
	case MethodVarianceMatching:
		return "variance"
	default:
		return "unknown"
	}
}

// Planner returns the decomposition function for m.
func (m RadiusMethod) Planner() (Planner, error) {
	switch m {
	case MethodSVG:
		return SVGRounding, nil
	case MethodVarianceMatching:
		return VarianceMatching, nil
	default:
		return nil, invalidConfig("unknown radius method %d", int(m))
	}
}

// ParseRadiusMethod maps "svg" or "variance" onto a RadiusMethod.
func ParseRadiusMethod(s string) (RadiusMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "svg", "svg-rounding", "":
		return MethodSVG, nil
	case "variance", "variance-matching", "kovesi":
		return MethodVarianceMatching, nil
	default:
		return 0, invalidConfig("unknown radius method %q", s)
	}
}

// SVGRounding computes d = floor(r*3*sqrt(2*pi)/4 + 0.5). An odd d gives
// three centered boxes of size d. An even d gives one box shifted half a
// pixel left, one shifted half a pixel right, and a centered box of size d+1.
func SVGRounding(radius float64) AxisRadius {
	var out AxisRadius
	if !(radius > 0) {
		return out
	}
	d := int(math.Floor(radius*3*math.Sqrt(2*math.Pi)/4 + 0.5))
	if d <= 0 {
		return out
	}
	if d&1 == 1 {
		r := (d - 1) / 2
		return AxisRadius{{r, r}, {r, r}, {r, r}}
	}
	r := d / 2
	return AxisRadius{{r, r - 1}, {r - 1, r}, {r, r}}
}

// VarianceMatching follows Kovesi's fast almost-Gaussian filtering: n=3
// boxes, the first m of width w and the rest of width w+2, with w the
// largest odd integer below the ideal width.
func VarianceMatching(radius float64) AxisRadius {
	var out AxisRadius
	if !(radius > 0) {
		return out
	}
	const n = 3
	v := 12 * radius * radius
	w := int(math.Floor(math.Sqrt(v/n + 1)))
	if w&1 == 0 {
		w--
	}
	m := int(math.Floor((v-float64(n*w*w)-float64(4*n*w)-3*n)/float64(-4*w-4) + 0.5))
	if m < 0 {
		m = 0
	} else if m > n {
		m = n
	}
	r := (w - 1) / 2
	for i := 0; i < n; i++ {
		if i < m {
			out[i] = BoxRadius{r, r}
		} else {
			out[i] = BoxRadius{r + 1, r + 1}
		}
	}
	return out
}

// Directional returns the same one-sided box for all three passes. The
// sign of radius is the direction the content streaks in: a negative radius
// spreads each pixel toward lower indices (left or up), so the window reaches
// toward higher indices. The magnitude is rounded to the nearest integer.
func Directional(radius float64) AxisRadius {
	n := int(math.Floor(math.Abs(radius) + 0.5))
	b := BoxRadius{Left: n}
	if radius < 0 {
		b = BoxRadius{Right: n}
	}
	return AxisRadius{b, b, b}
}

// PlanAxis validates radius and computes the boxes for one axis.
func PlanAxis(radius float64, planner Planner, directional bool) (AxisRadius, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) {
		return AxisRadius{}, invalidConfig("radius %v is not finite", radius)
	}
	if directional {
		return Directional(radius), nil
	}
	if radius < 0 {
		return AxisRadius{}, invalidConfig("negative radius %v on a symmetric axis", radius)
	}
	return planner(radius), nil
}
