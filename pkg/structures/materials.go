// Package structures contains the parametric builders for every fixed
// piece of the diorama: pavement, the observation tower, skyline towers,
// the museum lobes, the monorail superstructure, the tunnel berm, the mall,
// and the vehicle meshes the agents animate. Builders are pure: they return
// a subtree (plus handles to the nodes that move at runtime) and leave
// attachment to the caller.
package structures

import "github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"

// TagNightGlow marks nodes whose material emissive intensity follows the
// day/night toggle. The materials are created dark; the toggle raises
// intensity at night.
const TagNightGlow = "night-glow"

// towerPalette is one skyline color scheme.
type towerPalette struct {
	wall   scene.Color
	trim   scene.Color
	window scene.Color
	lit    scene.Color
}

var towerPalettes = map[string]towerPalette{
	"slate": {
		wall:   scene.Hex(0x4a4f5a),
		trim:   scene.Hex(0x3a3e47),
		window: scene.Hex(0x1d2735),
		lit:    scene.Hex(0xffd790),
	},
	"brick": {
		wall:   scene.Hex(0x7d4a38),
		trim:   scene.Hex(0x5e372a),
		window: scene.Hex(0x242a30),
		lit:    scene.Hex(0xffe3a8),
	},
	"glass": {
		wall:   scene.Hex(0x6b7f8c),
		trim:   scene.Hex(0x55656f),
		window: scene.Hex(0x274052),
		lit:    scene.Hex(0xc9e6ff),
	},
	"sand": {
		wall:   scene.Hex(0xb3a183),
		trim:   scene.Hex(0x94856c),
		window: scene.Hex(0x2b3138),
		lit:    scene.Hex(0xffd790),
	},
}

// paletteFor resolves a palette name, falling back to slate.
func paletteFor(name string) towerPalette {
	if p, ok := towerPalettes[name]; ok {
		return p
	}
	return towerPalettes["slate"]
}
