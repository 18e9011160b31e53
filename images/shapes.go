package images

import (
	"image"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Rect is a lightweight bounding box.
type Rect struct {
	// X2,Y2 are exclusive (like image.Rectangle).
	X1, Y1, X2, Y2 int
}

// Rectangle converts r to an image.Rectangle.
func (r Rect) Rectangle() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// Area returns the number of pixels covered by r, or 0 when r is empty.
func (r Rect) Area() int {
	w, h := r.X2-r.X1, r.Y2-r.Y1
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// ParseRect parses a region written as "x1,y1,x2,y2".
//
// Arguments:
//   - s: The region text. Surrounding whitespace is ignored.
//
// Returns:
//   - Rect: The parsed region.
//   - error: An error if s does not hold four integers or the region is empty.
func ParseRect(s string) (Rect, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 4 {
		return Rect{}, errors.Errorf("region %q: want x1,y1,x2,y2", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Rect{}, errors.Wrapf(err, "region %q", s)
		}
		v[i] = n
	}
	r := Rect{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}
	if r.Area() == 0 {
		return Rect{}, errors.Errorf("region %q is empty", s)
	}
	return r, nil
}

// ParseRects parses a ';' separated list of regions. An empty string yields
// no regions.
func ParseRects(s string) ([]Rect, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var rects []Rect
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		r, err := ParseRect(part)
		if err != nil {
			return nil, err
		}
		rects = append(rects, r)
	}
	return rects, nil
}

// Rectangles converts rects to image.Rectangles.
func Rectangles(rects []Rect) []image.Rectangle {
	out := make([]image.Rectangle, len(rects))
	for i, r := range rects {
		out[i] = r.Rectangle()
	}
	return out
}
