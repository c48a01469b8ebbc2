package structures

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/geo"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/spec"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/voxel"
)

const (
	beamGauge    = 0.75 // lateral offset of each beam from the centerline
	beamCell     = 0.55
	beamDrop     = 0.45 // beam centerline below the track height
	platformDrop = 1.25 // platform surface below the track height
	platformNear = 1.9  // platform edge offset from the centerline
	platformFar  = 4.6
	canopyRise   = 2.6 // roof above the track height
)

// MonorailResult bundles the static guideway with the train the motion
// agent drives. Cars are children of Train but are posed individually in
// world space, one per slot from nose to tail.
type MonorailResult struct {
	Root  *scene.Node
	Train *scene.Node
	Cars  [4]*scene.Node

	// StationGlow is the canopy light strip, toggled with the night scene.
	StationGlow *scene.Node
}

var (
	beamColor     = scene.Hex(0xb8b3a6)
	columnColor   = scene.Hex(0xa39e92)
	platformColor = scene.Hex(0x8e9398)
	canopyColor   = scene.Hex(0x3f4b55)
	trainWhite    = scene.Hex(0xeceae2)
	trainBlue     = scene.Hex(0x1f5c9e)
	trainGlassT   = scene.RGB(0.16, 0.2, 0.24)
)

// Monorail builds the elevated guideway, its support columns, the station
// platform, and a four car train. skipColumn vetoes column sites that would
// land inside another structure (the berm, the sunken roadway); pass nil to
// keep every column.
func Monorail(def spec.MonorailDef, track *geo.Curve, skipColumn func(x, z float64) bool) *MonorailResult {
	res := &MonorailResult{Root: scene.NewGroup("monorail")}

	structural := scene.NewMaterial("monorail-structure", scene.RGB(1, 1, 1))
	res.Root.AddChild(guideway(track, structural))
	res.Root.AddChild(columns(def, track, skipColumn))

	stationNode, glow := station(def, track, structural)
	res.Root.AddChild(stationNode)
	res.StationGlow = glow

	res.Train = scene.NewGroup("monorail-train")
	res.Root.AddChild(res.Train)
	for i := 0; i < 4; i++ {
		car := monorailCar(fmt.Sprintf("monorail-car-%d", i), def, i == 0 || i == 3)
		res.Train.AddChild(car)
		res.Cars[i] = car
	}

	return res
}

// guideway lays the twin beams as cell runs along the track.
func guideway(track *geo.Curve, mat *scene.Material) *scene.Node {
	cloud := voxel.NewCloud(beamCell)
	steps := int(track.Length() / (beamCell * 0.7))
	if steps < 64 {
		steps = 64
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := track.PointAt(t)
		tan := geo.Flat(track.TangentAt(t))
		perp := mgl64.Vec3{-tan.Z(), 0, tan.X()}

		for _, side := range []float64{-beamGauge, beamGauge} {
			c := p.Add(perp.Mul(side))
			cloud.Add(geo.V(c.X(), c.Y()-beamDrop, c.Z()), beamColor)
			cloud.Add(geo.V(c.X(), c.Y()-beamDrop-beamCell, c.Z()), beamColor.Scale(0.92))
		}
	}
	return cloud.Pack("monorail-guideway", mat)
}

func columns(def spec.MonorailDef, track *geo.Curve, skip func(x, z float64) bool) *scene.Node {
	group := scene.NewGroup("monorail-columns")
	mat := scene.NewMaterial("monorail-column", columnColor)

	i := 0
	for t := def.ColumnSpacingT / 2; t < 1; t += def.ColumnSpacingT {
		p := track.PointAt(t)
		if skip != nil && skip(p.X(), p.Z()) {
			continue
		}
		height := p.Y() - beamDrop - beamCell
		if height < 2 {
			continue
		}
		col := scene.Cylinder(fmt.Sprintf("monorail-column-%d", i), 0.55, 0.85, height, mat)
		col.SetPosition(p.X(), height/2, p.Z())
		group.AddChild(col)

		tan := geo.Flat(track.TangentAt(t))
		arm := scene.Box(fmt.Sprintf("monorail-crossarm-%d", i), 2.6, 0.5, 1.1, mat)
		arm.SetPosition(p.X(), height+0.25, p.Z())
		arm.SetRotationY(math.Atan2(tan.X(), tan.Z()))
		group.AddChild(arm)
		i++
	}
	return group
}

// station builds the platform and canopy alongside the track over the
// station span, plus the light strip that comes on at night.
func station(def spec.MonorailDef, track *geo.Curve, mat *scene.Material) (*scene.Node, *scene.Node) {
	group := scene.NewGroup("monorail-station")
	cloud := voxel.NewCloud(beamCell)

	span := def.StationTo - def.StationFrom
	steps := int(span * track.Length() / (beamCell * 0.8))
	if steps < 16 {
		steps = 16
	}

	mid := track.PointAt((def.StationFrom + def.StationTo) / 2)
	for i := 0; i <= steps; i++ {
		t := def.StationFrom + span*float64(i)/float64(steps)
		p := track.PointAt(t)
		tan := geo.Flat(track.TangentAt(t))
		perp := mgl64.Vec3{-tan.Z(), 0, tan.X()}

		for off := platformNear; off <= platformFar; off += beamCell * 0.8 {
			c := p.Add(perp.Mul(off))
			cloud.Add(geo.V(c.X(), p.Y()-platformDrop, c.Z()), platformColor)
		}
		for off := platformNear - 0.5; off <= platformFar+0.5; off += beamCell * 0.8 {
			c := p.Add(perp.Mul(off))
			cloud.Add(geo.V(c.X(), p.Y()+canopyRise, c.Z()), canopyColor)
		}
	}
	group.AddChild(cloud.Pack("monorail-platform", mat))

	// Canopy posts at the span's quarter points.
	postMat := scene.NewMaterial("station-post", columnColor)
	for i, t := range []float64{
		def.StationFrom + span*0.15,
		def.StationFrom + span*0.5,
		def.StationFrom + span*0.85,
	} {
		p := track.PointAt(t)
		tan := geo.Flat(track.TangentAt(t))
		perp := mgl64.Vec3{-tan.Z(), 0, tan.X()}
		c := p.Add(perp.Mul(platformFar - 0.4))
		post := scene.Cylinder(fmt.Sprintf("station-post-%d", i), 0.2, 0.2, canopyRise+platformDrop-0.3, postMat)
		post.SetPosition(c.X(), p.Y()-platformDrop+(canopyRise+platformDrop-0.3)/2, c.Z())
		group.AddChild(post)
	}

	glowMat := scene.Emissive("station-glow", scene.Hex(0xffe9b8), 0)
	tan := geo.Flat(track.TangentAt((def.StationFrom + def.StationTo) / 2))
	perp := mgl64.Vec3{-tan.Z(), 0, tan.X()}
	edge := mid.Add(perp.Mul((platformNear + platformFar) / 2))
	glow := scene.Box("station-light-strip", span*track.Length()*0.8, 0.18, 0.5, glowMat)
	glow.SetPosition(edge.X(), mid.Y()+canopyRise-0.35, edge.Z())
	glow.SetRotationY(math.Atan2(tan.X(), tan.Z()) + math.Pi/2)
	glow.SetTag(TagNightGlow)
	glow.Mesh.CastShadow = false
	group.AddChild(glow)

	return group, glow
}

// monorailCar assembles one car: white body, blue belt stripe, a dark
// window band, and rounded voxel nose caps on the end cars.
func monorailCar(name string, def spec.MonorailDef, endCar bool) *scene.Node {
	car := scene.NewGroup(name)
	length := def.CarLengthM

	bodyMat := scene.NewMaterial("train-body", trainWhite)
	body := scene.Box(name+"-body", 2.6, 2.0, length-1.0, bodyMat)
	body.SetPosition(0, 0.25, 0)
	car.AddChild(body)

	stripeMat := scene.NewMaterial("train-stripe", trainBlue)
	stripe := scene.Box(name+"-stripe", 2.64, 0.34, length-1.0, stripeMat)
	stripe.SetPosition(0, -0.35, 0)
	stripe.Mesh.CastShadow = false
	car.AddChild(stripe)

	glassMat := scene.Glass("train-glass", trainGlassT, 0.85)
	windows := scene.Box(name+"-windows", 2.66, 0.62, length-1.6, glassMat)
	windows.SetPosition(0, 0.62, 0)
	windows.Mesh.CastShadow = false
	car.AddChild(windows)

	skirtMat := scene.NewMaterial("train-skirt", scene.Hex(0x5a5e66))
	skirt := scene.Box(name+"-skirt", 1.9, 0.7, length-0.8, skirtMat)
	skirt.SetPosition(0, -0.95, 0)
	car.AddChild(skirt)

	if endCar {
		for _, dir := range []float64{1, -1} {
			nose := noseCap(name, bodyMat.Color)
			nose.SetPosition(0, 0.1, dir*(length/2-0.45))
			if dir < 0 {
				nose.SetRotationY(math.Pi)
			}
			car.AddChild(nose)
		}
	}
	return car
}

// noseCap sculpts the rounded cab front as a small voxel shell. Both ends
// of an end car get one; only the leading one reads as the nose.
func noseCap(name string, body scene.Color) *scene.Node {
	grid := voxel.Build(voxel.Options{
		Size: mgl64.Vec3{2.6, 2.4, 1.8},
		Cell: 0.3,
		Sample: func(nx, ny, nz float64) (scene.Color, bool) {
			// Front half of an ellipsoid, flattened below.
			if nz < -0.1 {
				return scene.Color{}, false
			}
			if nx*nx+ny*ny*0.8+nz*nz > 1 {
				return scene.Color{}, false
			}
			if ny > 0.1 && ny < 0.7 && nz > 0.2 {
				return trainGlassT, true
			}
			return body, true
		},
	})
	mat := scene.NewMaterial("train-nose", scene.RGB(1, 1, 1))
	node := voxel.Pack(name+"-nose", grid.Shell(), mat)
	if node == nil {
		node = scene.NewGroup(name + "-nose")
	}
	return node
}
