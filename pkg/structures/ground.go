package structures

import (
	"math"
	"math/rand"
	"sort"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/geo"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/spec"
)

const (
	groundThickness = 0.5 // cell slab height, meters
	curbWidth       = 0.8 // meters beyond the road edge
	dashLength      = 3.2 // painted meters of an 8 m dash cycle
	dashCycle       = 8.0
	planterSpacing  = 9.0 // meters between sidewalk planters
)

var (
	asphaltColor  = scene.Hex(0x2d2e33)
	dashColor     = scene.Hex(0xcbc49a)
	curbColor     = scene.Hex(0x8d8d86)
	sidewalkColor = scene.Hex(0x9aa0a3)
	plazaLight    = scene.Hex(0xbdb4a5)
	plazaDark     = scene.Hex(0xa89f90)
	planterColor  = scene.Hex(0x3e6b33)
	lawnColor     = scene.Hex(0x4f7a3c)
)

var flowerColors = []scene.Color{
	scene.Hex(0xd96a9b),
	scene.Hex(0xe8d24c),
	scene.Hex(0xe0e4e8),
}

// roadRibbon is a 2D projection of the road loop with the vertical profile
// kept alongside, so a ground cell can find both its distance to the road
// and the roadway height at that arc position (the dip under the guideway).
type roadRibbon struct {
	poly   geo.Polyline
	cum    []float64 // cumulative arc length per sample point
	ys     []float64 // roadway height per sample point
	length float64
}

func newRoadRibbon(road *geo.Curve, samples int) *roadRibbon {
	if samples < 8 {
		samples = 8
	}
	pts := make([]geo.Point2D, samples+1)
	ys := make([]float64, samples+1)
	for i := 0; i <= samples; i++ {
		p := road.PointAt(float64(i) / float64(samples))
		pts[i] = geo.Pt(p.X(), p.Z())
		ys[i] = p.Y()
	}

	r := &roadRibbon{
		poly: geo.NewPolyline(pts...),
		ys:   ys,
	}
	r.cum = make([]float64, samples+1)
	for i := 1; i <= samples; i++ {
		r.cum[i] = r.cum[i-1] + pts[i-1].Distance(pts[i])
	}
	r.length = r.cum[samples]
	return r
}

// project returns the distance from p to the road centerline, and the
// roadway height at the closest arc position.
func (r *roadRibbon) project(p geo.Point2D) (dist, y float64) {
	_, dist, arc := r.poly.Project(p)
	if r.length <= 0 {
		return dist, 0
	}
	i := sort.SearchFloat64s(r.cum, arc)
	if i <= 0 {
		return dist, r.ys[0]
	}
	if i >= len(r.cum) {
		return dist, r.ys[len(r.ys)-1]
	}
	seg := r.cum[i] - r.cum[i-1]
	frac := 0.0
	if seg > 0 {
		frac = (arc - r.cum[i-1]) / seg
	}
	return dist, geo.Lerp(r.ys[i-1], r.ys[i], frac)
}

// arcAt returns the arc position of p along the loop, for periodic
// features like lane dashes and planter spacing.
func (r *roadRibbon) arcAt(p geo.Point2D) float64 {
	_, _, arc := r.poly.Project(p)
	return arc
}

// Ground builds the pavement field: one flat instanced voxel layer
// classified cell by cell into roadway, curb, sidewalk, plaza, and lawn.
// The roadway follows the road curve's vertical profile, so the depressed
// section under the guideway reads as a real trench, with curb cells
// stacked up its sides.
func Ground(def spec.GroundDef, road *geo.Curve, rng *rand.Rand) *scene.Node {
	root := scene.NewGroup("ground")

	ribbon := newRoadRibbon(road, 256)
	noise := perlin.NewPerlin(2, 2, 3, rng.Int63())
	plaza := plazaOctagon(def)
	plazaCenter := geo.Pt(def.PlazaCenter[0], def.PlazaCenter[1])

	mat := scene.NewMaterial("pavement", scene.RGB(1, 1, 1))
	cloud := newGroundField(def.CellM)

	half := def.HalfM()
	n := int(math.Round(def.SizeM / def.CellM))
	for i := 0; i < n; i++ {
		x := -half + (float64(i)+0.5)*def.CellM
		for k := 0; k < n; k++ {
			z := -half + (float64(k)+0.5)*def.CellM
			p := geo.Pt(x, z)

			dist, roadY := ribbon.project(p)
			switch {
			case dist <= def.RoadHalfWidthM:
				cloud.add(x, roadY, z, roadCellColor(dist, ribbon.arcAt(p)))

			case dist <= def.RoadHalfWidthM+curbWidth:
				// Curbs ride the roadway profile; in the dip they stack
				// into trench walls.
				cloud.add(x, roadY+0.15, z, curbColor)
				for y := roadY + def.CellM; y < 0; y += def.CellM {
					cloud.add(x, y+0.15, z, curbColor)
				}

			case dist <= def.RoadHalfWidthM+curbWidth+def.SidewalkWidthM:
				if math.Mod(ribbon.arcAt(p), planterSpacing) < def.CellM &&
					dist > def.RoadHalfWidthM+curbWidth+def.SidewalkWidthM-1.5*def.CellM {
					cloud.add(x, 0.3, z, planterColor)
				} else {
					cloud.add(x, 0, z, sidewalkColor)
				}

			case plaza.Contains(p):
				cloud.add(x, 0, z, plazaCellColor(i, k, plazaCenter, p, def))

			default:
				cloud.add(x, 0, z, lawnCellColor(x, z, noise, rng))
			}
		}
	}

	root.AddChild(cloud.pack("ground-field", mat))
	return root
}

func roadCellColor(dist, arc float64) scene.Color {
	if dist < 0.35 && math.Mod(arc, dashCycle) < dashLength {
		return dashColor
	}
	return asphaltColor
}

func plazaCellColor(i, k int, center, p geo.Point2D, def spec.GroundDef) scene.Color {
	// Planter ring just inside the plaza rim.
	d := p.Distance(center)
	if d > def.PlazaRadiusM-2.5 && d <= def.PlazaRadiusM-0.5 {
		return planterColor
	}
	if (i/3+k/3)%2 == 0 {
		return plazaLight
	}
	return plazaDark
}

func lawnCellColor(x, z float64, noise *perlin.Perlin, rng *rand.Rand) scene.Color {
	if rng.Float64() < 0.012 {
		return flowerColors[rng.Intn(len(flowerColors))]
	}
	tint := 0.88 + 0.24*(noise.Noise2D(x*0.05, z*0.05)+1)/2
	return lawnColor.Scale(tint)
}

// plazaOctagon builds the plaza boundary as a regular octagon.
func plazaOctagon(def spec.GroundDef) geo.Polygon {
	pts := make([]geo.Point2D, 8)
	for i := range pts {
		a := (float64(i)*45 + 22.5) * math.Pi / 180
		pts[i] = geo.Pt(
			def.PlazaCenter[0]+def.PlazaRadiusM*math.Cos(a),
			def.PlazaCenter[1]+def.PlazaRadiusM*math.Sin(a),
		)
	}
	return geo.NewPolygon(pts...)
}

// groundField accumulates flat cells and packs them into one instanced
// mesh. Unlike voxel.Cloud it keeps the cell's exact height, since ground
// slabs sit at sub-cell offsets (curb lips, planter boxes).
type groundField struct {
	cell      float64
	positions []mgl64.Vec3
	colors    []scene.Color
}

func newGroundField(cell float64) *groundField {
	return &groundField{cell: cell}
}

func (f *groundField) add(x, y, z float64, c scene.Color) {
	f.positions = append(f.positions, mgl64.Vec3{x, y, z})
	f.colors = append(f.colors, c)
}

func (f *groundField) pack(name string, mat *scene.Material) *scene.Node {
	template := scene.Mesh{
		Shape:         scene.ShapeBox,
		Size:          mgl64.Vec3{f.cell, groundThickness, f.cell},
		ReceiveShadow: true,
	}
	im := scene.NewInstancedMesh(template, mat, len(f.positions))
	for i, p := range f.positions {
		im.SetMatrixAt(i, mgl64.Translate3D(p[0], p[1]-groundThickness/2, p[2]))
		im.SetColorAt(i, f.colors[i])
	}
	node := scene.NewGroup(name)
	node.Instanced = im
	return node
}
