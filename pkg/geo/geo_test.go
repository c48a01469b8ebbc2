package geo

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPolylineLength(t *testing.T) {
	pl := NewPolyline(Pt(0, 0), Pt(100, 0), Pt(100, 100))
	expected := 200.0
	if math.Abs(pl.Length()-expected) > 0.01 {
		t.Errorf("expected length %.1f, got %.1f", expected, pl.Length())
	}
}

func TestPolylinePointAt(t *testing.T) {
	pl := NewPolyline(Pt(0, 0), Pt(100, 0))

	mid := pl.PointAt(0.5)
	if mid.Distance(Pt(50, 0)) > 0.01 {
		t.Errorf("expected midpoint (50,0), got %v", mid)
	}
	if pl.PointAt(0).Distance(Pt(0, 0)) > 0.01 {
		t.Errorf("expected start (0,0), got %v", pl.PointAt(0))
	}
	if pl.PointAt(1).Distance(Pt(100, 0)) > 0.01 {
		t.Errorf("expected end (100,0), got %v", pl.PointAt(1))
	}
}

func TestPolylineProject(t *testing.T) {
	pl := NewPolyline(Pt(0, 0), Pt(100, 0), Pt(100, 100))

	pt, dist, arc := pl.Project(Pt(50, 10))
	if pt.Distance(Pt(50, 0)) > 0.01 {
		t.Errorf("expected projection (50,0), got %v", pt)
	}
	if math.Abs(dist-10) > 0.01 {
		t.Errorf("expected distance 10, got %.2f", dist)
	}
	if math.Abs(arc-50) > 0.01 {
		t.Errorf("expected arc position 50, got %.2f", arc)
	}

	// Point nearest the second segment: arc includes the first segment length.
	_, _, arc2 := pl.Project(Pt(110, 50))
	if math.Abs(arc2-150) > 0.01 {
		t.Errorf("expected arc position 150, got %.2f", arc2)
	}
}

func TestPolylineOffset(t *testing.T) {
	pl := NewPolyline(Pt(0, 0), Pt(100, 0))
	off := pl.Offset(5)

	for i, p := range off.Points {
		if math.Abs(p.Z-5) > 0.01 {
			t.Errorf("offset point %d: expected Z=5, got %.2f", i, p.Z)
		}
	}
}

func TestPolygonContains(t *testing.T) {
	sq := NewPolygon(Pt(-10, -10), Pt(10, -10), Pt(10, 10), Pt(-10, 10))

	if !sq.Contains(Pt(0, 0)) {
		t.Error("center should be inside")
	}
	if sq.Contains(Pt(20, 0)) {
		t.Error("(20,0) should be outside")
	}
	if sq.Contains(Pt(0, -15)) {
		t.Error("(0,-15) should be outside")
	}
}

func TestPolygonAreaAndCentroid(t *testing.T) {
	sq := NewPolygon(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))

	if math.Abs(sq.Area()-100) > 0.01 {
		t.Errorf("expected area 100, got %.2f", sq.Area())
	}
	c := sq.Centroid()
	if c.Distance(Pt(5, 5)) > 0.01 {
		t.Errorf("expected centroid (5,5), got %v", c)
	}
}

func TestPolygonBoundingBox(t *testing.T) {
	p := NewPolygon(Pt(-3, 2), Pt(7, -1), Pt(4, 9))
	minP, maxP := p.BoundingBox()
	if minP.X != -3 || minP.Z != -1 || maxP.X != 7 || maxP.Z != 9 {
		t.Errorf("bbox min=%v max=%v", minP, maxP)
	}
}

func TestFinite(t *testing.T) {
	if !Finite(mgl64.Vec3{1, 2, 3}) {
		t.Error("finite vector reported non-finite")
	}
	if Finite(mgl64.Vec3{math.NaN(), 0, 0}) {
		t.Error("NaN component not detected")
	}
	if Finite(mgl64.Vec3{0, math.Inf(1), 0}) {
		t.Error("Inf component not detected")
	}
}
