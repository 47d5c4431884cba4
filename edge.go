package mtsdf

import "math"

// EdgeType classifies edge segments by their geometric type.
type EdgeType int

const (
	// EdgeLinear is a straight line segment between two points.
	EdgeLinear EdgeType = iota

	// EdgeQuadratic is a quadratic Bezier curve (one control point).
	EdgeQuadratic

	// EdgeCubic is a cubic Bezier curve (two control points).
	EdgeCubic
)

// String returns a string representation of the edge type.
func (t EdgeType) String() string {
	switch t {
	case EdgeLinear:
		return "Linear"
	case EdgeQuadratic:
		return "Quadratic"
	case EdgeCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// EdgeColor determines which RGB channels an edge contributes to.
// Different colors at corners preserve sharpness in the decoded field.
type EdgeColor uint8

const (
	// ColorBlack means the edge contributes to no channels.
	ColorBlack EdgeColor = 0

	// ColorRed means the edge contributes to the red channel.
	ColorRed EdgeColor = 1 << iota

	// ColorGreen means the edge contributes to the green channel.
	ColorGreen

	// ColorBlue means the edge contributes to the blue channel.
	ColorBlue

	// ColorYellow combines red and green channels.
	ColorYellow = ColorRed | ColorGreen

	// ColorCyan combines green and blue channels.
	ColorCyan = ColorGreen | ColorBlue

	// ColorMagenta combines red and blue channels.
	ColorMagenta = ColorRed | ColorBlue

	// ColorWhite means the edge contributes to all channels.
	ColorWhite = ColorRed | ColorGreen | ColorBlue
)

// HasRed reports whether the color includes the red channel.
func (c EdgeColor) HasRed() bool { return c&ColorRed != 0 }

// HasGreen reports whether the color includes the green channel.
func (c EdgeColor) HasGreen() bool { return c&ColorGreen != 0 }

// HasBlue reports whether the color includes the blue channel.
func (c EdgeColor) HasBlue() bool { return c&ColorBlue != 0 }

// Edge is a single edge segment of a glyph contour.
type Edge struct {
	// Type is the geometric type of this edge.
	Type EdgeType

	// Points contains the control and end points for this edge.
	//   Linear:    P0 (start), P1 (end)
	//   Quadratic: P0 (start), P1 (control), P2 (end)
	//   Cubic:     P0 (start), P1 (control1), P2 (control2), P3 (end)
	Points [4]Point

	// Color determines which channels this edge affects.
	Color EdgeColor
}

// NewLinearEdge creates a new linear edge from start to end.
func NewLinearEdge(start, end Point) Edge {
	return Edge{
		Type:   EdgeLinear,
		Points: [4]Point{start, end, {}, {}},
		Color:  ColorWhite,
	}
}

// NewQuadraticEdge creates a new quadratic Bezier edge.
func NewQuadraticEdge(start, control, end Point) Edge {
	return Edge{
		Type:   EdgeQuadratic,
		Points: [4]Point{start, control, end, {}},
		Color:  ColorWhite,
	}
}

// NewCubicEdge creates a new cubic Bezier edge.
func NewCubicEdge(start, control1, control2, end Point) Edge {
	return Edge{
		Type:   EdgeCubic,
		Points: [4]Point{start, control1, control2, end},
		Color:  ColorWhite,
	}
}

// StartPoint returns the starting point of the edge.
func (e *Edge) StartPoint() Point {
	return e.Points[0]
}

// EndPoint returns the ending point of the edge.
func (e *Edge) EndPoint() Point {
	switch e.Type {
	case EdgeQuadratic:
		return e.Points[2]
	case EdgeCubic:
		return e.Points[3]
	default:
		return e.Points[1]
	}
}

// PointAt evaluates the edge at parameter t in [0, 1].
func (e *Edge) PointAt(t float64) Point {
	switch e.Type {
	case EdgeQuadratic:
		return evalQuadratic(e.Points[0], e.Points[1], e.Points[2], t)
	case EdgeCubic:
		return evalCubic(e.Points[0], e.Points[1], e.Points[2], e.Points[3], t)
	default:
		return e.Points[0].Lerp(e.Points[1], t)
	}
}

// DirectionAt returns the tangent direction at parameter t.
func (e *Edge) DirectionAt(t float64) Point {
	switch e.Type {
	case EdgeQuadratic:
		return quadraticDerivative(e.Points[0], e.Points[1], e.Points[2], t)
	case EdgeCubic:
		return cubicDerivative(e.Points[0], e.Points[1], e.Points[2], e.Points[3], t)
	default:
		return e.Points[1].Sub(e.Points[0])
	}
}

// SignedDistance calculates the signed distance from point p to this edge.
func (e *Edge) SignedDistance(p Point) SignedDistance {
	switch e.Type {
	case EdgeQuadratic:
		return quadraticSignedDistance(e.Points[0], e.Points[1], e.Points[2], p)
	case EdgeCubic:
		return cubicSignedDistance(e.Points[0], e.Points[1], e.Points[2], e.Points[3], p)
	default:
		return linearSignedDistance(e.Points[0], e.Points[1], p)
	}
}

// Bounds returns the bounding box of the edge.
func (e *Edge) Bounds() Rect {
	switch e.Type {
	case EdgeQuadratic:
		return quadraticBounds(e.Points[0], e.Points[1], e.Points[2])
	case EdgeCubic:
		return cubicBounds(e.Points[0], e.Points[1], e.Points[2], e.Points[3])
	default:
		return pointBounds(e.Points[0], e.Points[1])
	}
}

// crossing is an intersection of an edge with a horizontal scanline.
type crossing struct {
	x   float64 // X coordinate of the intersection
	dir int     // winding direction: +1 upward, -1 downward
}

// Crossings appends the intersections of the edge with the horizontal
// line at the given y to out. Tangent touches (zero vertical derivative)
// are skipped; they do not change the winding number.
//
// A vertex shared by two edges must contribute exactly one crossing, so
// ownership is half-open per direction: a rising edge owns its start
// point, a falling edge its end point. A line through a turning-point
// vertex then sees either no crossing (local maximum) or a cancelling
// pair (local minimum), leaving the winding intact.
func (e *Edge) Crossings(y float64, out []crossing) []crossing {
	switch e.Type {
	case EdgeQuadratic:
		p0, p1, p2 := e.Points[0], e.Points[1], e.Points[2]
		// Y(t) = at^2 + bt + c
		a := p0.Y - 2*p1.Y + p2.Y
		b := 2 * (p1.Y - p0.Y)
		c := p0.Y - y
		for _, t := range solveQuadratic(a, b, c) {
			out = e.appendCrossing(t, out)
		}
	case EdgeCubic:
		p0, p1, p2, p3 := e.Points[0], e.Points[1], e.Points[2], e.Points[3]
		// Y(t) = at^3 + bt^2 + ct + d
		a := -p0.Y + 3*p1.Y - 3*p2.Y + p3.Y
		b := 3*p0.Y - 6*p1.Y + 3*p2.Y
		c := -3*p0.Y + 3*p1.Y
		d := p0.Y - y
		for _, t := range solveCubic(a, b, c, d) {
			out = e.appendCrossing(t, out)
		}
	default:
		p0, p1 := e.Points[0], e.Points[1]
		dy := p1.Y - p0.Y
		if dy == 0 {
			return out
		}
		t := (y - p0.Y) / dy
		if dy > 0 {
			if t < 0 || t >= 1 {
				return out
			}
			out = append(out, crossing{x: p0.X + t*(p1.X-p0.X), dir: 1})
		} else {
			if t <= 0 || t > 1 {
				return out
			}
			out = append(out, crossing{x: p0.X + t*(p1.X-p0.X), dir: -1})
		}
	}
	return out
}

// appendCrossing records the curve point at t as a crossing, using the
// vertical derivative for the winding direction and the same per-direction
// vertex ownership as the linear case.
func (e *Edge) appendCrossing(t float64, out []crossing) []crossing {
	dy := e.DirectionAt(t).Y
	if dy == 0 {
		return out
	}
	if dy > 0 {
		if t >= 1 {
			return out
		}
		return append(out, crossing{x: e.PointAt(t).X, dir: 1})
	}
	if t <= 0 {
		return out
	}
	return append(out, crossing{x: e.PointAt(t).X, dir: -1})
}

// evalQuadratic evaluates a quadratic Bezier curve at parameter t.
func evalQuadratic(p0, p1, p2 Point, t float64) Point {
	u := 1 - t
	// B(t) = (1-t)^2*P0 + 2*(1-t)*t*P1 + t^2*P2
	return Point{
		u*u*p0.X + 2*u*t*p1.X + t*t*p2.X,
		u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y,
	}
}

// evalCubic evaluates a cubic Bezier curve at parameter t.
func evalCubic(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	u2 := u * u
	t2 := t * t
	// B(t) = (1-t)^3*P0 + 3*(1-t)^2*t*P1 + 3*(1-t)*t^2*P2 + t^3*P3
	return Point{
		u*u2*p0.X + 3*u2*t*p1.X + 3*u*t2*p2.X + t*t2*p3.X,
		u*u2*p0.Y + 3*u2*t*p1.Y + 3*u*t2*p2.Y + t*t2*p3.Y,
	}
}

// quadraticDerivative returns the derivative of a quadratic Bezier at t.
func quadraticDerivative(p0, p1, p2 Point, t float64) Point {
	u := 1 - t
	// B'(t) = 2*(1-t)*(P1-P0) + 2*t*(P2-P1)
	return Point{
		2*u*(p1.X-p0.X) + 2*t*(p2.X-p1.X),
		2*u*(p1.Y-p0.Y) + 2*t*(p2.Y-p1.Y),
	}
}

// cubicDerivative returns the derivative of a cubic Bezier at t.
func cubicDerivative(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	// B'(t) = 3*(1-t)^2*(P1-P0) + 6*(1-t)*t*(P2-P1) + 3*t^2*(P3-P2)
	return Point{
		3*u*u*(p1.X-p0.X) + 6*u*t*(p2.X-p1.X) + 3*t*t*(p3.X-p2.X),
		3*u*u*(p1.Y-p0.Y) + 6*u*t*(p2.Y-p1.Y) + 3*t*t*(p3.Y-p2.Y),
	}
}

// cubicSecondDerivative returns the second derivative of a cubic Bezier at t.
func cubicSecondDerivative(p0, p1, p2, p3 Point, t float64) Point {
	// B''(t) = 6*(1-t)*(P2-2*P1+P0) + 6*t*(P3-2*P2+P1)
	a := p2.Sub(p1.Mul(2)).Add(p0)
	b := p3.Sub(p2.Mul(2)).Add(p1)
	u := 1 - t
	return a.Mul(6 * u).Add(b.Mul(6 * t))
}

// linearSignedDistance calculates signed distance from point p to line segment a-b.
func linearSignedDistance(a, b, p Point) SignedDistance {
	ab := b.Sub(a)
	ap := p.Sub(a)

	abLenSq := ab.LengthSquared()
	if abLenSq == 0 {
		// Degenerate segment - both points are the same
		return SignedDistance{Distance: ap.Length()}
	}

	// Project p onto the segment
	t := ap.Dot(ab) / abLenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest := a.Add(ab.Mul(t))
	diff := p.Sub(closest)
	dist := diff.Length()

	// Sign from which side of the edge direction p lies on
	if ab.Cross(ap) < 0 {
		dist = -dist
	}

	// Orthogonality at endpoints for tie-breaking
	var dot float64
	if t == 0 || t == 1 {
		dot = math.Abs(ab.Normalized().Dot(diff.Normalized()))
	}

	return SignedDistance{Distance: dist, Dot: dot}
}

// quadraticSignedDistance calculates signed distance from point p to a
// quadratic Bezier by finding the roots of the distance derivative.
func quadraticSignedDistance(p0, p1, p2, p Point) SignedDistance {
	// Translate so p is at origin; B(t) = a*t^2 + b*t + c
	qa := p0.Sub(p)
	qb := p1.Sub(p)
	qc := p2.Sub(p)
	a := qa.Sub(qb.Mul(2)).Add(qc)
	b := qb.Sub(qa).Mul(2)
	c := qa

	// d(dist^2)/dt = 0 is a cubic in t
	c3 := 2 * a.Dot(a)
	c2 := 3 * a.Dot(b)
	c1 := 2*a.Dot(c) + b.Dot(b)
	c0 := b.Dot(c)

	minDist := Infinite()
	check := func(t float64) {
		if t < 0 || t > 1 {
			return
		}
		pt := evalQuadratic(p0, p1, p2, t)
		diff := p.Sub(pt)
		dist := diff.Length()

		tangent := quadraticDerivative(p0, p1, p2, t)
		if tangent.Cross(diff) < 0 {
			dist = -dist
		}

		var dot float64
		if t == 0 || t == 1 {
			dot = math.Abs(tangent.Normalized().Dot(diff.Normalized()))
		}

		sd := SignedDistance{Distance: dist, Dot: dot}
		if sd.IsCloserThan(minDist) {
			minDist = sd
		}
	}

	check(0)
	check(1)
	for _, t := range solveCubic(c3, c2, c1, c0) {
		check(t)
	}

	return minDist
}

// cubicSignedDistance calculates signed distance from point p to a cubic
// Bezier. The distance derivative is quintic, so sampled starting points
// are refined with Newton's method.
func cubicSignedDistance(p0, p1, p2, p3, p Point) SignedDistance {
	minDist := Infinite()
	check := func(t float64) {
		if t < 0 || t > 1 {
			return
		}
		pt := evalCubic(p0, p1, p2, p3, t)
		diff := p.Sub(pt)
		dist := diff.Length()

		tangent := cubicDerivative(p0, p1, p2, p3, t)
		if tangent.Cross(diff) < 0 {
			dist = -dist
		}

		var dot float64
		if t == 0 || t == 1 {
			dot = math.Abs(tangent.Normalized().Dot(diff.Normalized()))
		}

		sd := SignedDistance{Distance: dist, Dot: dot}
		if sd.IsCloserThan(minDist) {
			minDist = sd
		}
	}

	check(0)
	check(1)

	const numSamples = 8
	for i := 0; i <= numSamples; i++ {
		t := float64(i) / float64(numSamples)
		check(newtonRefineCubic(p0, p1, p2, p3, p, t))
	}

	return minDist
}

// newtonRefineCubic refines a closest-point parameter t using Newton's method.
func newtonRefineCubic(p0, p1, p2, p3, p Point, t float64) float64 {
	const maxIter = 8
	const epsilon = 1e-10

	for i := 0; i < maxIter; i++ {
		pt := evalCubic(p0, p1, p2, p3, t)
		diff := pt.Sub(p)

		d1 := cubicDerivative(p0, p1, p2, p3, t)
		d2 := cubicSecondDerivative(p0, p1, p2, p3, t)

		// f(t) = diff.Dot(d1) is the derivative of distance squared
		f := diff.Dot(d1)
		fp := d1.Dot(d1) + diff.Dot(d2)
		if math.Abs(fp) < epsilon {
			break
		}

		dt := -f / fp
		if math.Abs(dt) < epsilon {
			break
		}

		t += dt
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}

	return t
}

// solveCubic solves a*t^3 + b*t^2 + c*t + d = 0, returning real roots in [0, 1].
func solveCubic(a, b, c, d float64) []float64 {
	if math.Abs(a) < 1e-14 {
		return solveQuadratic(b, c, d)
	}

	// Normalize and depress the cubic (Cardano)
	b /= a
	c /= a
	d /= a
	p := c - b*b/3
	q := d - b*c/3 + 2*b*b*b/27
	discriminant := q*q/4 + p*p*p/27

	var roots []float64
	switch {
	case discriminant > 1e-14:
		// One real root
		sqrtD := math.Sqrt(discriminant)
		root := cbrt(-q/2+sqrtD) + cbrt(-q/2-sqrtD) - b/3
		if root >= 0 && root <= 1 {
			roots = append(roots, root)
		}
	case discriminant < -1e-14:
		// Three real roots
		r := math.Sqrt(-p * p * p / 27)
		phi := math.Acos(-q / (2 * r))
		cubeRootR := math.Pow(r, 1.0/3.0)
		for k := 0; k < 3; k++ {
			root := 2*cubeRootR*math.Cos((phi+float64(2*k)*math.Pi)/3) - b/3
			if root >= 0 && root <= 1 {
				roots = append(roots, root)
			}
		}
	default:
		// Repeated roots
		u := cbrt(-q / 2)
		root1 := 2*u - b/3
		root2 := -u - b/3
		if root1 >= 0 && root1 <= 1 {
			roots = append(roots, root1)
		}
		if root2 >= 0 && root2 <= 1 && math.Abs(root1-root2) > 1e-10 {
			roots = append(roots, root2)
		}
	}
	return roots
}

// solveQuadratic solves a*t^2 + b*t + c = 0, returning real roots in [0, 1].
func solveQuadratic(a, b, c float64) []float64 {
	if math.Abs(a) < 1e-14 {
		// Linear: b*t + c = 0
		if math.Abs(b) < 1e-14 {
			return nil
		}
		root := -c / b
		if root >= 0 && root <= 1 {
			return []float64{root}
		}
		return nil
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	root1 := (-b + sqrtD) / (2 * a)
	root2 := (-b - sqrtD) / (2 * a)

	var roots []float64
	if root1 >= 0 && root1 <= 1 {
		roots = append(roots, root1)
	}
	if root2 >= 0 && root2 <= 1 && math.Abs(root1-root2) > 1e-10 {
		roots = append(roots, root2)
	}
	return roots
}

// cbrt returns the cube root of x (handles negative values).
func cbrt(x float64) float64 {
	if x < 0 {
		return -math.Pow(-x, 1.0/3.0)
	}
	return math.Pow(x, 1.0/3.0)
}

// pointBounds returns the bounding box of two points.
func pointBounds(a, b Point) Rect {
	return Rect{
		MinX: min(a.X, b.X),
		MinY: min(a.Y, b.Y),
		MaxX: max(a.X, b.X),
		MaxY: max(a.Y, b.Y),
	}
}

// quadraticBounds returns the bounding box of a quadratic Bezier.
func quadraticBounds(p0, p1, p2 Point) Rect {
	bounds := pointBounds(p0, p2)

	// Extrema where B'(t) = 0: t = (p0-p1)/(p0-2*p1+p2)
	dx := p0.X - 2*p1.X + p2.X
	if math.Abs(dx) > 1e-10 {
		t := (p0.X - p1.X) / dx
		if t > 0 && t < 1 {
			x := evalQuadratic(p0, p1, p2, t).X
			bounds.MinX = min(bounds.MinX, x)
			bounds.MaxX = max(bounds.MaxX, x)
		}
	}
	dy := p0.Y - 2*p1.Y + p2.Y
	if math.Abs(dy) > 1e-10 {
		t := (p0.Y - p1.Y) / dy
		if t > 0 && t < 1 {
			y := evalQuadratic(p0, p1, p2, t).Y
			bounds.MinY = min(bounds.MinY, y)
			bounds.MaxY = max(bounds.MaxY, y)
		}
	}

	return bounds
}

// cubicBounds returns the bounding box of a cubic Bezier.
func cubicBounds(p0, p1, p2, p3 Point) Rect {
	bounds := pointBounds(p0, p3)

	// B'(t) = 0 is quadratic in t, per axis
	ax := -p0.X + 3*p1.X - 3*p2.X + p3.X
	bx := 2*p0.X - 4*p1.X + 2*p2.X
	cx := -p0.X + p1.X
	for _, t := range solveQuadratic(ax, bx, cx) {
		if t > 0 && t < 1 {
			x := evalCubic(p0, p1, p2, p3, t).X
			bounds.MinX = min(bounds.MinX, x)
			bounds.MaxX = max(bounds.MaxX, x)
		}
	}

	ay := -p0.Y + 3*p1.Y - 3*p2.Y + p3.Y
	by := 2*p0.Y - 4*p1.Y + 2*p2.Y
	cy := -p0.Y + p1.Y
	for _, t := range solveQuadratic(ay, by, cy) {
		if t > 0 && t < 1 {
			y := evalCubic(p0, p1, p2, p3, t).Y
			bounds.MinY = min(bounds.MinY, y)
			bounds.MaxY = max(bounds.MaxY, y)
		}
	}

	return bounds
}
