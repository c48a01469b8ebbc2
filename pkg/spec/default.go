package spec

// Default returns the built-in diorama spec. All commands fall back to it
// when no project directory is given, and the example project under
// examples/default-diorama mirrors it.
//
// The layout is a 360 m square centered on the origin: the tower and its
// plaza toward the southeast, the museum straddling the elevated track on
// the west side, the mall block to the northwest, and a perimeter road
// loop that dips below grade where the track crosses it.
func Default() *DioramaSpec {
	return &DioramaSpec{
		SpecVersion: "1.0.0",
		Name:        "seattle-center",
		Seed:        1962,
		Ground: GroundDef{
			SizeM:          360,
			CellM:          2.0,
			RoadHalfWidthM: 7,
			SidewalkWidthM: 4,
			PlazaCenter:    [2]float64{30, -40},
			PlazaRadiusM:   34,
			DepressionM:    3.5,
		},
		Monorail: MonorailDef{
			Points: [][3]float64{
				{-40, 9, -170},
				{-32, 9, -120},
				{-18, 9, -60},
				{-12, 9, 0},
				{-16, 9, 60},
				{-30, 9, 110},
				{-46, 9, 160},
			},
			Speed:          0.035,
			DwellS:         6,
			DwellJitterS:   4,
			CarLengthM:     11,
			CarGapM:        0.8,
			BufferT:        0.02,
			StationFrom:    0.46,
			StationTo:      0.56,
			ColumnSpacingT: 0.045,
		},
		Road: RoadDef{
			Points: [][3]float64{
				{150, 0, 150},
				{0, 0, 160},
				{-150, 0, 150},
				{-160, 0, 40},
				{-158, 0, -80},
				{-110, 0, -152},
				{-38, -3.5, -158},
				{60, 0, -160},
				{150, 0, -150},
				{162, 0, 0},
			},
			Cars:         10,
			CarSpeedMPS:  9,
			TaxiSpeedMPS: 11,
		},
		Needle: NeedleDef{
			Position:     [3]float64{90, 0, -60},
			HeightM:      184,
			BaseRadiusM:  20,
			WaistRadiusM: 5,
			CoreRadiusM:  4,
			DeckRadiusM:  16,
			DeckHeightM:  152,
			DeckDepthM:   10,
			CellM:        1.2,
			DeckRPM:      0.75,
		},
		Skyline: SkylineDef{
			FloorM:    4,
			LitChance: 0.55,
			Towers: []TowerDef{
				{Position: [3]float64{-132, 0, 64}, WidthM: 24, DepthM: 20, HeightM: 88, Palette: "slate"},
				{Position: [3]float64{-114, 0, 112}, WidthM: 20, DepthM: 20, HeightM: 64, Palette: "brick"},
				{Position: [3]float64{-92, 0, -132}, WidthM: 26, DepthM: 22, HeightM: 110, Palette: "glass"},
				{Position: [3]float64{134, 0, 84}, WidthM: 22, DepthM: 22, HeightM: 72, Palette: "sand"},
				{Position: [3]float64{112, 0, 134}, WidthM: 28, DepthM: 20, HeightM: 96, Palette: "slate"},
				{Position: [3]float64{-136, 0, -56}, WidthM: 18, DepthM: 18, HeightM: 52, Palette: "brick"},
				{Position: [3]float64{58, 0, 140}, WidthM: 24, DepthM: 24, HeightM: 80, Palette: "glass"},
			},
		},
		Museum: MuseumDef{
			Position:    [3]float64{-4, 0, 38},
			RotationDeg: 14,
			CellM:       1.5,
			ClearanceM:  5.5,
			Lobes: []LobeDef{
				{
					Kind:   "wavy_cylinder",
					Offset: [3]float64{-12, 0, -6},
					Size:   [3]float64{26, 17, 26},
					Color:  [3]float64{0.45, 0.18, 0.55},
				},
				{
					Kind:   "drooping_sphere",
					Offset: [3]float64{10, 0, 4},
					Size:   [3]float64{30, 20, 28},
					Color:  [3]float64{0.72, 0.12, 0.16},
				},
				{
					Kind:   "sheared_cone",
					Offset: [3]float64{-2, 0, 16},
					Size:   [3]float64{22, 23, 22},
					Color:  [3]float64{0.75, 0.72, 0.68},
				},
			},
		},
		Tunnel: TunnelDef{
			Center:     [2]float64{-33, -121},
			RadiusM:    26,
			HeightM:    13,
			CellM:      1.5,
			ClearanceM: 4.5,
		},
		Mall: MallDef{
			Position:    [3]float64{-76, 0, 28},
			RotationDeg: -8,
			WidthM:      46,
			DepthM:      26,
			HeightM:     15,
			GearRadiusM: 4.5,
			GearRPM:     2.5,
		},
		Helicopter: HelicopterDef{
			PadPosition:   [3]float64{-92, 111.5, -132},
			PadHeadingDeg: 40,
			MinAltitudeM:  2,
		},
		Elevators: ElevatorsDef{
			Count:        3,
			SpeedMPS:     9,
			AccelMPS2:    6,
			DwellS:       5,
			DwellJitterS: 4,
		},
	}
}
