package kernels

import "strings"

// EdgeMode defines which values a box window sees outside the line bounds.
// Exactly one mode applies to both axes of a blur.
type EdgeMode int

const (
	// EdgeDuplicate repeats the nearest edge pixel. It is the default.
	EdgeDuplicate EdgeMode = iota
	// EdgeNone treats every outside sample as 0.
	EdgeNone
	// EdgeTile wraps to the opposite end of the same line.
	EdgeTile
	// EdgeMirror reflects inward from the edge; index -1 maps to 0.
	EdgeMirror
)

func (e EdgeMode) String() string {
	switch e {
	case EdgeDuplicate:
		return "duplicate"
	case EdgeNone:
		return "none"
	case EdgeTile:
		return "wrap"
	case EdgeMirror:
		return "mirror"
	default:
		return "unknown"
	}
}

// Valid reports whether e is one of the defined modes.
func (e EdgeMode) Valid() bool {
	return e >= EdgeDuplicate && e <= EdgeMirror
}

// ParseEdgeMode maps a mode name onto an EdgeMode. Names are the SVG
// edgeMode keywords; "tile" and "clamp" are accepted aliases.
func ParseEdgeMode(s string) (EdgeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "duplicate", "clamp":
		return EdgeDuplicate, nil
	case "none":
		return EdgeNone, nil
	case "wrap", "tile":
		return EdgeTile, nil
	case "mirror":
		return EdgeMirror, nil
	default:
		return 0, invalidConfig("unknown edge mode %q", s)
	}
}

// EdgeModeFromCode maps the numeric codes used by filter collaborators:
// 0=none, 1=duplicate, 2=wrap, 3=mirror.
func EdgeModeFromCode(code int) (EdgeMode, error) {
	switch code {
	case 0:
		return EdgeNone, nil
	case 1:
		return EdgeDuplicate, nil
	case 2:
		return EdgeTile, nil
	case 3:
		return EdgeMirror, nil
	default:
		return 0, invalidConfig("unknown edge mode code %d", code)
	}
}

// mapCoord maps an index i on a line of n samples to [0, n).
// ok is false when the sample lies outside and the mode supplies zero.
func mapCoord(i, n int, mode EdgeMode) (int, bool) {
	if i >= 0 && i < n {
		return i, true
	}
	switch mode {
	case EdgeNone:
		return 0, false
	case EdgeTile:
		i %= n
		if i < 0 {
			i += n
		}
		return i, true
	case EdgeMirror:
		// Reflection without re-counting the edge has period 2n.
		p := 2 * n
		i %= p
		if i < 0 {
			i += p
		}
		if i >= n {
			i = p - 1 - i
		}
		return i, true
	default:
		if i < 0 {
			return 0, true
		}
		return n - 1, true
	}
}
