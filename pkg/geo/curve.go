package geo

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// endEpsilon keeps open-curve samples away from the exact parameter
// extremities, where the tangent of the end segment can degenerate.
const endEpsilon = 1e-4

// lengthSamplesPerSegment is the polyline resolution used for Length().
const lengthSamplesPerSegment = 32

// Curve is an immutable Catmull-Rom path through ordered control points,
// sampled by normalized parameter t in [0,1]. Open curves clamp t to
// [endEpsilon, 1-endEpsilon]; closed curves wrap it via modulo. Curves are
// shared by reference across agents and are safe for concurrent reads.
type Curve struct {
	ctrl    []mgl64.Vec3
	closed  bool
	tension float64
	length  float64
}

// NewCurve builds an open Catmull-Rom curve through the given control points
// with the standard 0.5 tension. Endpoint segments use reflected phantom
// points so the curve passes through the first and last control points.
func NewCurve(points []mgl64.Vec3) *Curve {
	return newCurve(points, false, 0.5)
}

// NewClosedCurve builds a closed-loop Catmull-Rom curve through the given
// control points. The parameter wraps, so t=0 and t=1 sample the same point.
func NewClosedCurve(points []mgl64.Vec3) *Curve {
	return newCurve(points, true, 0.5)
}

func newCurve(points []mgl64.Vec3, closed bool, tension float64) *Curve {
	c := &Curve{
		ctrl:    append([]mgl64.Vec3(nil), points...),
		closed:  closed,
		tension: tension,
	}
	c.length = c.measure()
	return c
}

// Closed reports whether the curve is a closed loop.
func (c *Curve) Closed() bool {
	return c.closed
}

// Points returns a copy of the control points.
func (c *Curve) Points() []mgl64.Vec3 {
	return append([]mgl64.Vec3(nil), c.ctrl...)
}

// Length returns the approximate arc length of the curve, measured once at
// construction over a fine polyline.
func (c *Curve) Length() float64 {
	return c.length
}

// segments returns the number of Catmull-Rom segments.
func (c *Curve) segments() int {
	n := len(c.ctrl)
	if n < 2 {
		return 0
	}
	if c.closed {
		return n
	}
	return n - 1
}

// param clamps (open) or wraps (closed) t and maps it to a segment index
// and a local parameter u in [0,1).
func (c *Curve) param(t float64) (int, float64) {
	segs := c.segments()
	if segs == 0 {
		return 0, 0
	}
	if math.IsNaN(t) || math.IsInf(t, 0) {
		// Degenerate control points poison arc length and, through it, every
		// derived parameter. Sample the start so callers see a plain bad
		// point instead of an index panic.
		t = 0
	}
	if c.closed {
		t = Mod1(t)
	} else {
		if t < endEpsilon {
			t = endEpsilon
		}
		if t > 1-endEpsilon {
			t = 1 - endEpsilon
		}
	}
	scaled := t * float64(segs)
	i := int(scaled)
	if i >= segs {
		i = segs - 1
	}
	return i, scaled - float64(i)
}

// segmentPoints returns the four control points governing segment i, using
// reflected phantoms at open ends and modular wrap on closed loops.
func (c *Curve) segmentPoints(i int) (p0, p1, p2, p3 mgl64.Vec3) {
	n := len(c.ctrl)
	if c.closed {
		p0 = c.ctrl[((i-1)+n)%n]
		p1 = c.ctrl[i%n]
		p2 = c.ctrl[(i+1)%n]
		p3 = c.ctrl[(i+2)%n]
		return
	}
	p1 = c.ctrl[i]
	p2 = c.ctrl[i+1]
	if i == 0 {
		// Phantom start: reflect first segment.
		p0 = p1.Add(p1.Sub(p2))
	} else {
		p0 = c.ctrl[i-1]
	}
	if i == n-2 {
		// Phantom end: reflect last segment.
		p3 = p2.Add(p2.Sub(p1))
	} else {
		p3 = c.ctrl[i+2]
	}
	return
}

// PointAt returns the position on the curve at parameter t.
func (c *Curve) PointAt(t float64) mgl64.Vec3 {
	n := len(c.ctrl)
	if n == 0 {
		return mgl64.Vec3{}
	}
	if n == 1 {
		return c.ctrl[0]
	}
	if n == 2 && !c.closed {
		// Degenerate: linear interpolation.
		return Lerp3(c.ctrl[0], c.ctrl[1], mgl64.Clamp(t, 0, 1))
	}
	i, u := c.param(t)
	p0, p1, p2, p3 := c.segmentPoints(i)
	return catmullRomPoint3(p0, p1, p2, p3, u, c.tension)
}

// TangentAt returns the normalized travel direction at parameter t, the
// analytic derivative of the Catmull-Rom basis. A degenerate derivative
// falls back to the chord toward a slightly advanced sample.
func (c *Curve) TangentAt(t float64) mgl64.Vec3 {
	n := len(c.ctrl)
	if n < 2 {
		return mgl64.Vec3{}
	}
	if n == 2 && !c.closed {
		d := c.ctrl[1].Sub(c.ctrl[0])
		if d.Len() < 1e-12 {
			return mgl64.Vec3{}
		}
		return d.Normalize()
	}
	i, u := c.param(t)
	p0, p1, p2, p3 := c.segmentPoints(i)
	d := catmullRomDerivative3(p0, p1, p2, p3, u, c.tension)
	if d.Len() < 1e-9 {
		// Fall back to a forward chord.
		ahead := c.PointAt(t + 1e-3)
		d = ahead.Sub(c.PointAt(t))
		if d.Len() < 1e-12 {
			return mgl64.Vec3{}
		}
	}
	return d.Normalize()
}

// measure walks a fine polyline over the curve to estimate arc length.
func (c *Curve) measure() float64 {
	segs := c.segments()
	if segs == 0 {
		return 0
	}
	steps := segs * lengthSamplesPerSegment
	total := 0.0
	prev := c.PointAt(0)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		pt := c.PointAt(t)
		total += pt.Sub(prev).Len()
		prev = pt
	}
	return total
}

// Mod1 wraps t into [0,1). Negative values wrap from the top, so closed-loop
// followers can step backwards through zero.
func Mod1(t float64) float64 {
	t = math.Mod(t, 1)
	if t < 0 {
		t += 1
	}
	return t
}

// catmullRomPoint3 evaluates a single point on a Catmull-Rom segment using
// the cardinal basis with tangent scale s. s=0.5 gives the standard CR
// spline; the segment interpolates p1 at t=0 and p2 at t=1.
func catmullRomPoint3(p0, p1, p2, p3 mgl64.Vec3, t, tension float64) mgl64.Vec3 {
	t2 := t * t
	t3 := t2 * t
	s := tension

	var out mgl64.Vec3
	for a := 0; a < 3; a++ {
		out[a] = (-s*p0[a]+(2-s)*p1[a]+(s-2)*p2[a]+s*p3[a])*t3 +
			(2*s*p0[a]+(s-3)*p1[a]+(3-2*s)*p2[a]-s*p3[a])*t2 +
			(-s*p0[a]+s*p2[a])*t +
			p1[a]
	}
	return out
}

// catmullRomDerivative3 evaluates d/dt of the segment basis at t.
func catmullRomDerivative3(p0, p1, p2, p3 mgl64.Vec3, t, tension float64) mgl64.Vec3 {
	t2 := t * t
	s := tension

	var out mgl64.Vec3
	for a := 0; a < 3; a++ {
		out[a] = 3*(-s*p0[a]+(2-s)*p1[a]+(s-2)*p2[a]+s*p3[a])*t2 +
			2*(2*s*p0[a]+(s-3)*p1[a]+(3-2*s)*p2[a]-s*p3[a])*t +
			(-s*p0[a] + s*p2[a])
	}
	return out
}
