package validation

import (
	"fmt"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/spec"
)

// Builders recognize these names; anything else falls back to a default.
var knownPalettes = map[string]bool{
	"slate": true,
	"brick": true,
	"glass": true,
	"sand":  true,
}

var knownLobeKinds = map[string]bool{
	"wavy_cylinder":   true,
	"drooping_sphere": true,
	"sheared_cone":    true,
}

// ValidateSchema performs Level 1 (schema) validation on a parsed DioramaSpec.
// It checks structural correctness before any geometry is synthesized.
func ValidateSchema(s *spec.DioramaSpec) *Report {
	r := NewReport()

	validateVersion(s, r)
	validateGround(s, r)
	validateMonorail(s, r)
	validateRoad(s, r)
	validateNeedle(s, r)
	validateSkyline(s, r)
	validateMuseum(s, r)
	validateTunnel(s, r)
	validateMall(s, r)
	validateHelicopter(s, r)
	validateElevators(s, r)

	return r
}

func validateVersion(s *spec.DioramaSpec, r *Report) {
	if s.SpecVersion == "" {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     "spec_version is empty",
			SpecPath:    "spec_version",
			Suggestions: []string{"Set spec_version so exported scenes record their provenance"},
		})
	}
}

func validateGround(s *spec.DioramaSpec, r *Report) {
	g := s.Ground
	if g.SizeM <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "ground size_m must be greater than 0",
			SpecPath:    "ground.size_m",
			ActualValue: g.SizeM,
			Expected:    "> 0",
		})
	}
	if g.CellM <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "ground cell_m must be greater than 0",
			SpecPath:    "ground.cell_m",
			ActualValue: g.CellM,
			Expected:    "> 0",
		})
	} else if g.SizeM > 0 && g.SizeM/g.CellM > 600 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("ground resolves to %.0f cells per side; generation will be slow", g.SizeM/g.CellM),
			SpecPath:    "ground.cell_m",
			ActualValue: g.CellM,
			Suggestions: []string{"Raise cell_m or shrink size_m to keep the grid under ~600 cells per side"},
		})
	}
	if g.RoadHalfWidthM <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "ground road_half_width_m must be greater than 0",
			SpecPath:    "ground.road_half_width_m",
			ActualValue: g.RoadHalfWidthM,
			Expected:    "> 0",
		})
	}
	if g.PlazaRadiusM < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "ground plaza_radius_m must not be negative",
			SpecPath:    "ground.plaza_radius_m",
			ActualValue: g.PlazaRadiusM,
			Expected:    ">= 0",
		})
	}
	if g.DepressionM < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "ground depression_m must not be negative",
			SpecPath:    "ground.depression_m",
			ActualValue: g.DepressionM,
			Expected:    ">= 0",
		})
	}
}

func validateMonorail(s *spec.DioramaSpec, r *Report) {
	m := s.Monorail

	if len(m.Points) < 2 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "monorail needs at least 2 control points",
			SpecPath:    "monorail.points",
			ActualValue: len(m.Points),
			Expected:    ">= 2",
		})
		return
	}
	if len(m.Points) < 4 {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("monorail has only %d control points; the track will be a straight run", len(m.Points)),
			SpecPath:    "monorail.points",
			ActualValue: len(m.Points),
			Suggestions: []string{"Use 4 or more points so the spline can curve"},
		})
	}
	for i := 0; i < len(m.Points)-1; i++ {
		if m.Points[i] == m.Points[i+1] {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("monorail.points[%d] and [%d] coincide", i, i+1),
				SpecPath:    fmt.Sprintf("monorail.points[%d]", i+1),
				ActualValue: m.Points[i+1],
			})
		}
	}

	if m.Speed <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "monorail speed must be greater than 0",
			SpecPath:    "monorail.speed",
			ActualValue: m.Speed,
			Expected:    "> 0",
		})
	}
	if m.DwellS < 0 || m.DwellJitterS < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "monorail dwell times must not be negative",
			SpecPath:    "monorail.dwell_s",
			ActualValue: fmt.Sprintf("%.1f ± %.1f", m.DwellS, m.DwellJitterS),
			Expected:    ">= 0",
		})
	}
	if m.CarLengthM <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "monorail car_length_m must be greater than 0",
			SpecPath:    "monorail.car_length_m",
			ActualValue: m.CarLengthM,
			Expected:    "> 0",
		})
	}
	if m.BufferT < 0 || m.BufferT > 0.1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("monorail buffer_t %.3f is outside valid range (0-0.1)", m.BufferT),
			SpecPath:    "monorail.buffer_t",
			ActualValue: m.BufferT,
			Expected:    "0-0.1",
		})
	}
	if m.StationFrom <= 0 || m.StationTo >= 1 || m.StationFrom >= m.StationTo {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("monorail station range %.2f-%.2f must satisfy 0 < from < to < 1", m.StationFrom, m.StationTo),
			SpecPath:    "monorail.station_from",
			ActualValue: fmt.Sprintf("%.2f-%.2f", m.StationFrom, m.StationTo),
			Expected:    "0 < from < to < 1",
		})
	}
	if m.ColumnSpacingT <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "monorail column_spacing_t must be greater than 0",
			SpecPath:    "monorail.column_spacing_t",
			ActualValue: m.ColumnSpacingT,
			Expected:    "> 0",
		})
	}
}

func validateRoad(s *spec.DioramaSpec, r *Report) {
	road := s.Road

	if len(road.Points) < 3 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "road loop needs at least 3 control points",
			SpecPath:    "road.points",
			ActualValue: len(road.Points),
			Expected:    ">= 3",
		})
	}
	if road.Cars < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "road cars must not be negative",
			SpecPath:    "road.cars",
			ActualValue: road.Cars,
			Expected:    ">= 0",
		})
	}
	if road.Cars > 0 && road.CarSpeedMPS <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "road car_speed_mps must be greater than 0 when cars are requested",
			SpecPath:    "road.car_speed_mps",
			ActualValue: road.CarSpeedMPS,
			Expected:    "> 0",
		})
	}
	if road.TaxiSpeedMPS <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "road taxi_speed_mps must be greater than 0",
			SpecPath:    "road.taxi_speed_mps",
			ActualValue: road.TaxiSpeedMPS,
			Expected:    "> 0",
		})
	}
}

func validateNeedle(s *spec.DioramaSpec, r *Report) {
	n := s.Needle

	if n.HeightM <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "needle height_m must be greater than 0",
			SpecPath:    "needle.height_m",
			ActualValue: n.HeightM,
			Expected:    "> 0",
		})
		return
	}

	radii := []struct {
		path  string
		value float64
	}{
		{"needle.base_radius_m", n.BaseRadiusM},
		{"needle.waist_radius_m", n.WaistRadiusM},
		{"needle.core_radius_m", n.CoreRadiusM},
		{"needle.deck_radius_m", n.DeckRadiusM},
	}
	for _, radius := range radii {
		if radius.value <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s must be greater than 0", radius.path),
				SpecPath:    radius.path,
				ActualValue: radius.value,
				Expected:    "> 0",
			})
		}
	}

	if n.WaistRadiusM >= n.BaseRadiusM {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("needle waist radius %.1f is not narrower than base radius %.1f; the legs will not taper", n.WaistRadiusM, n.BaseRadiusM),
			SpecPath:    "needle.waist_radius_m",
			ActualValue: n.WaistRadiusM,
		})
	}
	if n.DeckTopM() >= n.HeightM {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("needle deck top %.1f reaches past height_m %.1f; no room for the spire", n.DeckTopM(), n.HeightM),
			SpecPath:    "needle.deck_height_m",
			ActualValue: n.DeckTopM(),
			Expected:    fmt.Sprintf("< %.1f", n.HeightM),
		})
	}
	if n.CellM <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "needle cell_m must be greater than 0",
			SpecPath:    "needle.cell_m",
			ActualValue: n.CellM,
			Expected:    "> 0",
		})
	}
}

func validateSkyline(s *spec.DioramaSpec, r *Report) {
	sk := s.Skyline

	if sk.FloorM <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "skyline floor_m must be greater than 0",
			SpecPath:    "skyline.floor_m",
			ActualValue: sk.FloorM,
			Expected:    "> 0",
		})
	}
	if sk.LitChance < 0 || sk.LitChance > 1 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("skyline lit_chance %.2f is outside valid range (0-1)", sk.LitChance),
			SpecPath:    "skyline.lit_chance",
			ActualValue: sk.LitChance,
			Expected:    "0-1",
		})
	}
	for i, tower := range sk.Towers {
		if tower.WidthM <= 0 || tower.DepthM <= 0 || tower.HeightM <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("skyline.towers[%d]: dimensions must be greater than 0", i),
				SpecPath:    fmt.Sprintf("skyline.towers[%d]", i),
				ActualValue: fmt.Sprintf("%.0fx%.0fx%.0f", tower.WidthM, tower.DepthM, tower.HeightM),
				Expected:    "> 0",
			})
		}
		if tower.Palette != "" && !knownPalettes[tower.Palette] {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("skyline.towers[%d]: unknown palette %q, the builder will use slate", i, tower.Palette),
				SpecPath:    fmt.Sprintf("skyline.towers[%d].palette", i),
				ActualValue: tower.Palette,
				Expected:    "slate, brick, glass, or sand",
			})
		}
	}
}

func validateMuseum(s *spec.DioramaSpec, r *Report) {
	m := s.Museum

	if len(m.Lobes) == 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  "museum must define at least one lobe",
			SpecPath: "museum.lobes",
			Expected: "at least 1 lobe",
		})
		return
	}
	if m.CellM <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "museum cell_m must be greater than 0",
			SpecPath:    "museum.cell_m",
			ActualValue: m.CellM,
			Expected:    "> 0",
		})
	}
	if m.ClearanceM < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "museum clearance_m must not be negative",
			SpecPath:    "museum.clearance_m",
			ActualValue: m.ClearanceM,
			Expected:    ">= 0",
		})
	}
	for i, lobe := range m.Lobes {
		if !knownLobeKinds[lobe.Kind] {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("museum.lobes[%d]: unknown kind %q", i, lobe.Kind),
				SpecPath:    fmt.Sprintf("museum.lobes[%d].kind", i),
				ActualValue: lobe.Kind,
				Expected:    "wavy_cylinder, drooping_sphere, or sheared_cone",
			})
		}
		for axis, v := range lobe.Size {
			if v <= 0 {
				r.AddError(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("museum.lobes[%d]: size[%d] must be greater than 0", i, axis),
					SpecPath:    fmt.Sprintf("museum.lobes[%d].size", i),
					ActualValue: v,
					Expected:    "> 0",
				})
			}
		}
		for _, c := range lobe.Color {
			if c < 0 || c > 1 {
				r.AddWarning(Result{
					Level:       LevelSchema,
					Message:     fmt.Sprintf("museum.lobes[%d]: color channel %.2f is outside 0-1 and will be clamped", i, c),
					SpecPath:    fmt.Sprintf("museum.lobes[%d].color", i),
					ActualValue: c,
					Expected:    "0-1",
				})
				break
			}
		}
	}
}

func validateTunnel(s *spec.DioramaSpec, r *Report) {
	tn := s.Tunnel

	if tn.RadiusM <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "tunnel radius_m must be greater than 0",
			SpecPath:    "tunnel.radius_m",
			ActualValue: tn.RadiusM,
			Expected:    "> 0",
		})
	}
	if tn.HeightM <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "tunnel height_m must be greater than 0",
			SpecPath:    "tunnel.height_m",
			ActualValue: tn.HeightM,
			Expected:    "> 0",
		})
	}
	if tn.CellM <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "tunnel cell_m must be greater than 0",
			SpecPath:    "tunnel.cell_m",
			ActualValue: tn.CellM,
			Expected:    "> 0",
		})
	}
	if tn.ClearanceM <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "tunnel clearance_m must be greater than 0, the bore must fit the train",
			SpecPath:    "tunnel.clearance_m",
			ActualValue: tn.ClearanceM,
			Expected:    "> 0",
		})
	}
}

func validateMall(s *spec.DioramaSpec, r *Report) {
	m := s.Mall

	if m.WidthM <= 0 || m.DepthM <= 0 || m.HeightM <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "mall dimensions must be greater than 0",
			SpecPath:    "mall",
			ActualValue: fmt.Sprintf("%.0fx%.0fx%.0f", m.WidthM, m.DepthM, m.HeightM),
			Expected:    "> 0",
		})
	}
	if m.GearRadiusM <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "mall gear_radius_m must be greater than 0",
			SpecPath:    "mall.gear_radius_m",
			ActualValue: m.GearRadiusM,
			Expected:    "> 0",
		})
	} else if m.HeightM > 0 && m.GearRadiusM*2 > m.HeightM {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("mall gears (diameter %.1f) are taller than the building (%.1f)", m.GearRadiusM*2, m.HeightM),
			SpecPath:    "mall.gear_radius_m",
			ActualValue: m.GearRadiusM,
		})
	}
}

func validateHelicopter(s *spec.DioramaSpec, r *Report) {
	h := s.Helicopter

	if h.PadPosition[1] < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "helicopter pad must not be below grade",
			SpecPath:    "helicopter.pad_position",
			ActualValue: h.PadPosition[1],
			Expected:    ">= 0",
		})
	}
	if h.MinAltitudeM < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "helicopter min_altitude_m must not be negative",
			SpecPath:    "helicopter.min_altitude_m",
			ActualValue: h.MinAltitudeM,
			Expected:    ">= 0",
		})
	}
}

func validateElevators(s *spec.DioramaSpec, r *Report) {
	e := s.Elevators

	if e.Count < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "elevators count must not be negative",
			SpecPath:    "elevators.count",
			ActualValue: e.Count,
			Expected:    ">= 0",
		})
	}
	if e.Count == 0 {
		return
	}
	if e.SpeedMPS <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "elevators speed_mps must be greater than 0",
			SpecPath:    "elevators.speed_mps",
			ActualValue: e.SpeedMPS,
			Expected:    "> 0",
		})
	}
	if e.AccelMPS2 <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "elevators accel_mps2 must be greater than 0",
			SpecPath:    "elevators.accel_mps2",
			ActualValue: e.AccelMPS2,
			Expected:    "> 0",
		})
	}
	if e.DwellS < 0 || e.DwellJitterS < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "elevators dwell times must not be negative",
			SpecPath:    "elevators.dwell_s",
			ActualValue: fmt.Sprintf("%.1f ± %.1f", e.DwellS, e.DwellJitterS),
			Expected:    ">= 0",
		})
	}
}
