package structures

import (
	"math/rand"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
)

var carBodyColors = []scene.Color{
	scene.Hex(0x8e3b3b),
	scene.Hex(0x3b5a8e),
	scene.Hex(0x4f6e4a),
	scene.Hex(0xcac6bd),
	scene.Hex(0x54575e),
	scene.Hex(0x946a32),
}

// Car assembles a street car with the given body color. Local +Z is the
// direction of travel; the origin sits at road surface level.
func Car(name string, body scene.Color) *scene.Node {
	root := scene.NewGroup(name)

	bodyMat := scene.NewMaterial(name+"-body", body)
	hull := scene.Box(name+"-hull", 1.8, 0.55, 4.0, bodyMat)
	hull.SetPosition(0, 0.62, 0)
	root.AddChild(hull)

	glassMat := scene.Glass(name+"-glass", scene.RGB(0.25, 0.3, 0.36), 0.9)
	cabin := scene.Box(name+"-cabin", 1.6, 0.5, 2.0, glassMat)
	cabin.SetPosition(0, 1.12, -0.25)
	cabin.Mesh.CastShadow = false
	root.AddChild(cabin)

	wheelMat := scene.NewMaterial(name+"-wheel", scene.Hex(0x1c1d1f))
	for _, at := range [][2]float64{{-0.8, 1.25}, {0.8, 1.25}, {-0.8, -1.25}, {0.8, -1.25}} {
		w := scene.Box(name+"-wheel", 0.3, 0.4, 0.62, wheelMat)
		w.SetPosition(at[0], 0.2, at[1])
		w.Mesh.CastShadow = false
		root.AddChild(w)
	}

	return root
}

// RandomCar picks a body color from the street palette.
func RandomCar(name string, rng *rand.Rand) *scene.Node {
	return Car(name, carBodyColors[rng.Intn(len(carBodyColors))])
}

// Taxi builds the hero cab: yellow body, checker stripe, roof sign. The
// sign glows after dark so the followed car stays findable.
func Taxi(name string) *scene.Node {
	root := Car(name, scene.Hex(0xe8b61e))

	stripeMat := scene.NewMaterial(name+"-stripe", scene.Hex(0x22232a))
	stripe := scene.Box(name+"-stripe", 1.84, 0.14, 3.6, stripeMat)
	stripe.SetPosition(0, 0.74, 0)
	stripe.Mesh.CastShadow = false
	root.AddChild(stripe)

	signMat := scene.Emissive(name+"-sign", scene.Hex(0xfff2b8), 0)
	sign := scene.Box(name+"-sign", 0.8, 0.28, 0.34, signMat)
	sign.SetPosition(0, 1.5, -0.25)
	sign.SetTag(TagNightGlow)
	sign.Mesh.CastShadow = false
	root.AddChild(sign)

	return root
}
