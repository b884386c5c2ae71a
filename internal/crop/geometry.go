package crop

import "math"

// ClampPoint limits p componentwise to [0, bounds.Width] x [0, bounds.Height].
func ClampPoint(p Point, bounds Size) Point {
	return Point{
		X: math.Max(0, math.Min(bounds.Width, p.X)),
		Y: math.Max(0, math.Min(bounds.Height, p.Y)),
	}
}

// RectFromDrag builds the rectangle spanned by an anchor and the current pointer.
// The top-left corner is min(anchor, p) per axis, so dragging in any direction
// yields a non-negative size.
func RectFromDrag(anchor, p Point) Rect {
	return Rect{
		X:      math.Min(anchor.X, p.X),
		Y:      math.Min(anchor.Y, p.Y),
		Width:  math.Abs(p.X - anchor.X),
		Height: math.Abs(p.Y - anchor.Y),
	}
}

// ScaleFactors returns natural/displayed per axis. The two factors are
// independent; layout is not assumed to preserve the aspect ratio.
func ScaleFactors(natural, displayed Size) (scaleX, scaleY float64) {
	return natural.Width / displayed.Width, natural.Height / displayed.Height
}

// ToNatural maps a displayed-space rectangle into natural-pixel space.
func ToNatural(r Rect, displayed, natural Size) Rect {
	sx, sy := ScaleFactors(natural, displayed)
	return Rect{
		X:      r.X * sx,
		Y:      r.Y * sy,
		Width:  r.Width * sx,
		Height: r.Height * sy,
	}
}

// Round rounds to the nearest integer with halves going towards +Inf,
// so -2.5 becomes -2 and 2.5 becomes 3.
func Round(v float64) int {
	return int(math.Floor(v + 0.5))
}

// ParseInt reads a leading base-10 integer from s: leading whitespace, an
// optional sign, then digits. Trailing garbage is ignored. Input without any
// leading digits yields 0 instead of an error.
func ParseInt(s string) float64 {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	var v float64
	digits := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		v = v*10 + float64(s[i]-'0')
		digits++
	}
	if digits == 0 || v == 0 {
		return 0
	}
	if neg {
		return -v
	}
	return v
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
