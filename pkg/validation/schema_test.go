package validation

import (
	"testing"

	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/spec"
)

func TestValidateSchemaDefault(t *testing.T) {
	r := ValidateSchema(spec.Default())
	if !r.Valid {
		t.Errorf("expected valid report for built-in spec, got %d errors: %v", len(r.Errors), r.Errors)
	}
}

func TestValidateSchemaEmptyVersion(t *testing.T) {
	s := spec.Default()
	s.SpecVersion = ""
	r := ValidateSchema(s)
	if !r.Valid {
		t.Error("empty spec_version should warn, not fail")
	}
	if len(r.Warnings) == 0 {
		t.Error("expected warning for empty spec_version")
	}
}

func TestValidateSchemaGroundCell(t *testing.T) {
	s := spec.Default()
	s.Ground.CellM = 0
	r := ValidateSchema(s)
	if r.Valid {
		t.Error("expected invalid report for cell_m=0")
	}
	assertHasError(t, r, "ground.cell_m")
}

func TestValidateSchemaGroundResolutionWarning(t *testing.T) {
	s := spec.Default()
	s.Ground.CellM = 0.25 // 1440 cells per side
	r := ValidateSchema(s)
	if !r.Valid {
		t.Error("fine cell size should warn, not fail")
	}
	found := false
	for _, w := range r.Warnings {
		if w.SpecPath == "ground.cell_m" {
			found = true
		}
	}
	if !found {
		t.Error("expected resolution warning for ground.cell_m")
	}
}

func TestValidateSchemaMonorailTooFewPoints(t *testing.T) {
	s := spec.Default()
	s.Monorail.Points = s.Monorail.Points[:1]
	r := ValidateSchema(s)
	if r.Valid {
		t.Error("expected invalid report for single-point track")
	}
	assertHasError(t, r, "monorail.points")
}

func TestValidateSchemaMonorailDuplicatePoint(t *testing.T) {
	s := spec.Default()
	s.Monorail.Points[2] = s.Monorail.Points[1]
	r := ValidateSchema(s)
	if r.Valid {
		t.Error("expected invalid report for coincident control points")
	}
	assertHasError(t, r, "monorail.points[2]")
}

func TestValidateSchemaMonorailStationRange(t *testing.T) {
	s := spec.Default()
	s.Monorail.StationFrom = 0.7
	s.Monorail.StationTo = 0.5
	r := ValidateSchema(s)
	if r.Valid {
		t.Error("expected invalid report for inverted station range")
	}
	assertHasError(t, r, "monorail.station_from")
}

func TestValidateSchemaMonorailBuffer(t *testing.T) {
	s := spec.Default()
	s.Monorail.BufferT = 0.5
	r := ValidateSchema(s)
	if r.Valid {
		t.Error("expected invalid report for buffer_t out of range")
	}
	assertHasError(t, r, "monorail.buffer_t")
}

func TestValidateSchemaRoadLoop(t *testing.T) {
	s := spec.Default()
	s.Road.Points = s.Road.Points[:2]
	r := ValidateSchema(s)
	if r.Valid {
		t.Error("expected invalid report for two-point loop")
	}
	assertHasError(t, r, "road.points")
}

func TestValidateSchemaNeedleDeckAboveSpire(t *testing.T) {
	s := spec.Default()
	s.Needle.DeckHeightM = s.Needle.HeightM
	r := ValidateSchema(s)
	if r.Valid {
		t.Error("expected invalid report when deck top passes the spire tip")
	}
	assertHasError(t, r, "needle.deck_height_m")
}

func TestValidateSchemaNeedleWaistWarning(t *testing.T) {
	s := spec.Default()
	s.Needle.WaistRadiusM = s.Needle.BaseRadiusM + 1
	r := ValidateSchema(s)
	if !r.Valid {
		t.Error("fat waist should warn, not fail")
	}
	if len(r.Warnings) == 0 {
		t.Error("expected warning for waist >= base")
	}
}

func TestValidateSchemaUnknownPalette(t *testing.T) {
	s := spec.Default()
	s.Skyline.Towers[0].Palette = "neon"
	r := ValidateSchema(s)
	if !r.Valid {
		t.Error("unknown palette should warn, not fail")
	}
	found := false
	for _, w := range r.Warnings {
		if w.SpecPath == "skyline.towers[0].palette" {
			found = true
		}
	}
	if !found {
		t.Error("expected warning for unknown palette")
	}
}

func TestValidateSchemaUnknownLobeKind(t *testing.T) {
	s := spec.Default()
	s.Museum.Lobes[0].Kind = "flying_saucer"
	r := ValidateSchema(s)
	if r.Valid {
		t.Error("expected invalid report for unknown lobe kind")
	}
	assertHasError(t, r, "museum.lobes[0].kind")
}

func TestValidateSchemaNoLobes(t *testing.T) {
	s := spec.Default()
	s.Museum.Lobes = nil
	r := ValidateSchema(s)
	if r.Valid {
		t.Error("expected invalid report for museum without lobes")
	}
	assertHasError(t, r, "museum.lobes")
}

func TestValidateSchemaTunnelClearance(t *testing.T) {
	s := spec.Default()
	s.Tunnel.ClearanceM = 0
	r := ValidateSchema(s)
	if r.Valid {
		t.Error("expected invalid report for zero tunnel clearance")
	}
	assertHasError(t, r, "tunnel.clearance_m")
}

func TestValidateSchemaElevatorsDisabled(t *testing.T) {
	s := spec.Default()
	s.Elevators = spec.ElevatorsDef{Count: 0}
	r := ValidateSchema(s)
	if !r.Valid {
		t.Errorf("zero elevators is a valid configuration, got errors: %v", r.Errors)
	}
}

func TestValidateSchemaElevatorSpeed(t *testing.T) {
	s := spec.Default()
	s.Elevators.SpeedMPS = -1
	r := ValidateSchema(s)
	if r.Valid {
		t.Error("expected invalid report for negative elevator speed")
	}
	assertHasError(t, r, "elevators.speed_mps")
}

func assertHasError(t *testing.T, r *Report, specPath string) {
	t.Helper()
	for _, e := range r.Errors {
		if e.SpecPath == specPath {
			return
		}
	}
	t.Errorf("expected error with spec_path %q, got errors: %v", specPath, r.Errors)
}
