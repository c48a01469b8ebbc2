package spec

// DioramaSpec is the top-level specification for the diorama. Every numeric
// field is a visually tuned art parameter, not a surveyed dimension; the
// defaults produce the built-in scene and a project file overrides them.
type DioramaSpec struct {
	SpecVersion string        `yaml:"spec_version" json:"spec_version"`
	Name        string        `yaml:"name" json:"name"`
	Seed        int64         `yaml:"seed" json:"seed"`
	Ground      GroundDef     `yaml:"ground" json:"ground"`
	Monorail    MonorailDef   `yaml:"monorail" json:"monorail"`
	Road        RoadDef       `yaml:"road" json:"road"`
	Needle      NeedleDef     `yaml:"needle" json:"needle"`
	Skyline     SkylineDef    `yaml:"skyline" json:"skyline"`
	Museum      MuseumDef     `yaml:"museum" json:"museum"`
	Tunnel      TunnelDef     `yaml:"tunnel" json:"tunnel"`
	Mall        MallDef       `yaml:"mall" json:"mall"`
	Helicopter  HelicopterDef `yaml:"helicopter" json:"helicopter"`
	Elevators   ElevatorsDef  `yaml:"elevators" json:"elevators"`
}

// GroundDef parametrizes the pavement field.
type GroundDef struct {
	SizeM          float64    `yaml:"size_m" json:"size_m"` // square extent, centered on origin
	CellM          float64    `yaml:"cell_m" json:"cell_m"` // voxel cell edge
	RoadHalfWidthM float64    `yaml:"road_half_width_m" json:"road_half_width_m"`
	SidewalkWidthM float64    `yaml:"sidewalk_width_m" json:"sidewalk_width_m"`
	PlazaCenter    [2]float64 `yaml:"plaza_center" json:"plaza_center"` // [x, z]
	PlazaRadiusM   float64    `yaml:"plaza_radius_m" json:"plaza_radius_m"`
	DepressionM    float64    `yaml:"depression_m" json:"depression_m"` // max roadway dip under the guideway
}

// HalfM returns half the ground extent, the distance from origin to edge.
func (g GroundDef) HalfM() float64 {
	return g.SizeM / 2
}

// MonorailDef parametrizes the elevated track, its station, and the train.
type MonorailDef struct {
	Points         [][3]float64 `yaml:"points" json:"points"` // open curve, elevated
	Speed          float64      `yaml:"speed" json:"speed"`   // curve parameter per second
	DwellS         float64      `yaml:"dwell_s" json:"dwell_s"`
	DwellJitterS   float64      `yaml:"dwell_jitter_s" json:"dwell_jitter_s"`
	CarLengthM     float64      `yaml:"car_length_m" json:"car_length_m"`
	CarGapM        float64      `yaml:"car_gap_m" json:"car_gap_m"`
	BufferT        float64      `yaml:"buffer_t" json:"buffer_t"`         // end-of-track safety margin, parameter units
	StationFrom    float64      `yaml:"station_from" json:"station_from"` // platform parameter range
	StationTo      float64      `yaml:"station_to" json:"station_to"`
	ColumnSpacingT float64      `yaml:"column_spacing_t" json:"column_spacing_t"`
}

// RoadDef parametrizes the closed traffic loop.
type RoadDef struct {
	Points       [][3]float64 `yaml:"points" json:"points"` // closed loop; y dips where the road passes under the track
	Cars         int          `yaml:"cars" json:"cars"`
	CarSpeedMPS  float64      `yaml:"car_speed_mps" json:"car_speed_mps"`
	TaxiSpeedMPS float64      `yaml:"taxi_speed_mps" json:"taxi_speed_mps"`
}

// NeedleDef parametrizes the observation tower. Radii and heights drive the
// per-level profile functions in the needle builder.
type NeedleDef struct {
	Position     [3]float64 `yaml:"position" json:"position"`
	HeightM      float64    `yaml:"height_m" json:"height_m"`           // spire tip
	BaseRadiusM  float64    `yaml:"base_radius_m" json:"base_radius_m"` // leg spread at ground
	WaistRadiusM float64    `yaml:"waist_radius_m" json:"waist_radius_m"`
	CoreRadiusM  float64    `yaml:"core_radius_m" json:"core_radius_m"`
	DeckRadiusM  float64    `yaml:"deck_radius_m" json:"deck_radius_m"`
	DeckHeightM  float64    `yaml:"deck_height_m" json:"deck_height_m"` // deck underside
	DeckDepthM   float64    `yaml:"deck_depth_m" json:"deck_depth_m"`   // deck vertical extent
	CellM        float64    `yaml:"cell_m" json:"cell_m"`
	DeckRPM      float64    `yaml:"deck_rpm" json:"deck_rpm"`
}

// DeckTopM returns the height of the deck's upper surface, where the roof
// cone begins.
func (n NeedleDef) DeckTopM() float64 {
	return n.DeckHeightM + n.DeckDepthM
}

// SkylineDef is the placement table for the backdrop towers.
type SkylineDef struct {
	FloorM    float64    `yaml:"floor_m" json:"floor_m"`       // story height for window rows
	LitChance float64    `yaml:"lit_chance" json:"lit_chance"` // probability a window is lit at night
	Towers    []TowerDef `yaml:"towers" json:"towers"`
}

// TowerDef places one skyline tower.
type TowerDef struct {
	Position [3]float64 `yaml:"position" json:"position"`
	WidthM   float64    `yaml:"width_m" json:"width_m"`
	DepthM   float64    `yaml:"depth_m" json:"depth_m"`
	HeightM  float64    `yaml:"height_m" json:"height_m"`
	Palette  string     `yaml:"palette" json:"palette"` // slate, brick, glass, sand
}

// MuseumDef parametrizes the stepped voxel lobes and their keep-clear
// corridor around the monorail.
type MuseumDef struct {
	Position    [3]float64 `yaml:"position" json:"position"`
	RotationDeg float64    `yaml:"rotation_deg" json:"rotation_deg"`
	CellM       float64    `yaml:"cell_m" json:"cell_m"`
	ClearanceM  float64    `yaml:"clearance_m" json:"clearance_m"`
	Lobes       []LobeDef  `yaml:"lobes" json:"lobes"`
}

// LobeByKind returns the first lobe with the given kind, or nil if not found.
func (m MuseumDef) LobeByKind(kind string) *LobeDef {
	for i := range m.Lobes {
		if m.Lobes[i].Kind == kind {
			return &m.Lobes[i]
		}
	}
	return nil
}

// LobeDef is one implicit-surface lobe of the museum.
type LobeDef struct {
	Kind   string     `yaml:"kind" json:"kind"` // wavy_cylinder, drooping_sphere, sheared_cone
	Offset [3]float64 `yaml:"offset" json:"offset"`
	Size   [3]float64 `yaml:"size" json:"size"` // bounding box [w, h, d]
	Color  [3]float64 `yaml:"color" json:"color"`
}

// TunnelDef parametrizes the plaza berm the track bores through.
type TunnelDef struct {
	Center     [2]float64 `yaml:"center" json:"center"` // [x, z]
	RadiusM    float64    `yaml:"radius_m" json:"radius_m"`
	HeightM    float64    `yaml:"height_m" json:"height_m"`
	CellM      float64    `yaml:"cell_m" json:"cell_m"`
	ClearanceM float64    `yaml:"clearance_m" json:"clearance_m"`
}

// MallDef parametrizes the mall block and its kinetic gear sculpture.
type MallDef struct {
	Position    [3]float64 `yaml:"position" json:"position"`
	RotationDeg float64    `yaml:"rotation_deg" json:"rotation_deg"`
	WidthM      float64    `yaml:"width_m" json:"width_m"`
	DepthM      float64    `yaml:"depth_m" json:"depth_m"`
	HeightM     float64    `yaml:"height_m" json:"height_m"`
	GearRadiusM float64    `yaml:"gear_radius_m" json:"gear_radius_m"`
	GearRPM     float64    `yaml:"gear_rpm" json:"gear_rpm"`
}

// HelicopterDef parametrizes the news helicopter's rooftop pad.
type HelicopterDef struct {
	PadPosition   [3]float64 `yaml:"pad_position" json:"pad_position"`
	PadHeadingDeg float64    `yaml:"pad_heading_deg" json:"pad_heading_deg"`
	MinAltitudeM  float64    `yaml:"min_altitude_m" json:"min_altitude_m"`
}

// ElevatorsDef parametrizes the tower elevators.
type ElevatorsDef struct {
	Count        int     `yaml:"count" json:"count"`
	SpeedMPS     float64 `yaml:"speed_mps" json:"speed_mps"`
	AccelMPS2    float64 `yaml:"accel_mps2" json:"accel_mps2"`
	DwellS       float64 `yaml:"dwell_s" json:"dwell_s"`
	DwellJitterS float64 `yaml:"dwell_jitter_s" json:"dwell_jitter_s"`
}
