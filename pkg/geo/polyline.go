package geo

import "math"

// Polyline is an ordered sequence of points forming a path in the ground
// plane. The ground builder works with polylines sampled from the 3D curves
// (road loop, monorail) to classify cells by distance from a centerline.
type Polyline struct {
	Points []Point2D
}

// NewPolyline creates a polyline from a list of points.
func NewPolyline(pts ...Point2D) Polyline {
	return Polyline{Points: pts}
}

// Length returns the total arc length of the polyline.
func (pl Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(pl.Points); i++ {
		total += pl.Points[i-1].Distance(pl.Points[i])
	}
	return total
}

// PointAt returns the point at fraction t in [0,1] along the polyline length.
func (pl Polyline) PointAt(t float64) Point2D {
	if len(pl.Points) == 0 {
		return Point2D{}
	}
	if len(pl.Points) == 1 || t <= 0 {
		return pl.Points[0]
	}
	if t >= 1 {
		return pl.Points[len(pl.Points)-1]
	}

	totalLen := pl.Length()
	targetLen := t * totalLen
	walked := 0.0

	for i := 1; i < len(pl.Points); i++ {
		segLen := pl.Points[i-1].Distance(pl.Points[i])
		if walked+segLen >= targetLen {
			frac := (targetLen - walked) / segLen
			return pl.Points[i-1].Lerp(pl.Points[i], frac)
		}
		walked += segLen
	}
	return pl.Points[len(pl.Points)-1]
}

// Project returns the closest point on the polyline to p, the distance to it,
// and the arc-length position of that point along the polyline. The arc
// position drives periodic features (lane dashes, planter spacing) that need
// an along-track coordinate, not just a lateral distance.
func (pl Polyline) Project(p Point2D) (Point2D, float64, float64) {
	if len(pl.Points) == 0 {
		return Point2D{}, math.MaxFloat64, 0
	}
	if len(pl.Points) == 1 {
		return pl.Points[0], p.Distance(pl.Points[0]), 0
	}

	bestPt := pl.Points[0]
	bestDist := p.Distance(pl.Points[0])
	bestArc := 0.0

	walked := 0.0
	for i := 1; i < len(pl.Points); i++ {
		a := pl.Points[i-1]
		b := pl.Points[i]
		pt, dist, along := nearestPointOnSegment(p, a, b)
		if dist < bestDist {
			bestDist = dist
			bestPt = pt
			bestArc = walked + along
		}
		walked += a.Distance(b)
	}
	return bestPt, bestDist, bestArc
}

// nearestPointOnSegment returns the closest point on segment ab to p, the
// distance to it, and the distance from a along the segment.
func nearestPointOnSegment(p, a, b Point2D) (Point2D, float64, float64) {
	ab := b.Sub(a)
	abLen2 := ab.Dot(ab)
	if abLen2 < 1e-12 {
		return a, p.Distance(a), 0
	}
	t := p.Sub(a).Dot(ab) / abLen2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	closest := a.Add(ab.Scale(t))
	return closest, p.Distance(closest), t * math.Sqrt(abLen2)
}

// Offset returns a polyline offset by distance to the left (positive = left
// when walking along the polyline direction).
func (pl Polyline) Offset(distance float64) Polyline {
	n := len(pl.Points)
	if n < 2 {
		return pl
	}

	result := make([]Point2D, n)
	for i := 0; i < n; i++ {
		var normal Point2D
		if i == 0 {
			dir := pl.Points[1].Sub(pl.Points[0]).Normalize()
			normal = dir.Perp()
		} else if i == n-1 {
			dir := pl.Points[n-1].Sub(pl.Points[n-2]).Normalize()
			normal = dir.Perp()
		} else {
			dir1 := pl.Points[i].Sub(pl.Points[i-1]).Normalize()
			dir2 := pl.Points[i+1].Sub(pl.Points[i]).Normalize()
			avgDir := dir1.Add(dir2).Normalize()
			normal = avgDir.Perp()
		}
		result[i] = pl.Points[i].Add(normal.Scale(distance))
	}
	return Polyline{Points: result}
}
