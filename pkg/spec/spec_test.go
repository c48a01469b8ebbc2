package spec

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadProject(t *testing.T) {
	s, err := LoadProject("../../examples/default-diorama")
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	if s.SpecVersion != "1.0.0" {
		t.Errorf("spec_version = %q, want %q", s.SpecVersion, "1.0.0")
	}
	if s.Name != "seattle-center" {
		t.Errorf("name = %q, want %q", s.Name, "seattle-center")
	}
	if s.Seed != 1962 {
		t.Errorf("seed = %d, want 1962", s.Seed)
	}

	// Ground
	if s.Ground.SizeM != 360 {
		t.Errorf("ground.size_m = %v, want 360", s.Ground.SizeM)
	}
	if s.Ground.HalfM() != 180 {
		t.Errorf("ground half = %v, want 180", s.Ground.HalfM())
	}

	// Monorail
	if len(s.Monorail.Points) != 7 {
		t.Errorf("monorail points = %d, want 7", len(s.Monorail.Points))
	}
	if s.Monorail.StationFrom >= s.Monorail.StationTo {
		t.Errorf("station range inverted: %v >= %v", s.Monorail.StationFrom, s.Monorail.StationTo)
	}
	if s.Monorail.Points[0][1] != 9 {
		t.Errorf("track elevation = %v, want 9", s.Monorail.Points[0][1])
	}

	// Road loop must carry the dip under the guideway.
	dip := false
	for _, p := range s.Road.Points {
		if p[1] < 0 {
			dip = true
		}
	}
	if !dip {
		t.Error("road loop has no below-grade point")
	}

	// Needle
	if s.Needle.DeckTopM() != 162 {
		t.Errorf("deck top = %v, want 162", s.Needle.DeckTopM())
	}
	if s.Needle.HeightM <= s.Needle.DeckTopM() {
		t.Errorf("spire tip %v not above deck top %v", s.Needle.HeightM, s.Needle.DeckTopM())
	}

	// Skyline
	if len(s.Skyline.Towers) != 7 {
		t.Errorf("towers = %d, want 7", len(s.Skyline.Towers))
	}

	// Museum
	if len(s.Museum.Lobes) != 3 {
		t.Errorf("lobes = %d, want 3", len(s.Museum.Lobes))
	}
	if s.Museum.LobeByKind("drooping_sphere") == nil {
		t.Error("missing drooping_sphere lobe")
	}
	if s.Museum.LobeByKind("flying_saucer") != nil {
		t.Error("LobeByKind returned a lobe for an unknown kind")
	}

	// Elevators
	if s.Elevators.Count != 3 {
		t.Errorf("elevators = %d, want 3", s.Elevators.Count)
	}
}

func TestLoadProjectMissing(t *testing.T) {
	_, err := LoadProject("/nonexistent/path")
	if err == nil {
		t.Error("expected error for missing project directory")
	}
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "diorama.yaml")
	if err := os.WriteFile(path, []byte("monorail: [not: a: mapping"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestDefaultMatchesExampleProject(t *testing.T) {
	d := Default()
	s, err := LoadProject("../../examples/default-diorama")
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}

	if d.SpecVersion != s.SpecVersion {
		t.Errorf("spec_version drift: built-in %q, example %q", d.SpecVersion, s.SpecVersion)
	}
	if d.Seed != s.Seed {
		t.Errorf("seed drift: built-in %d, example %d", d.Seed, s.Seed)
	}
	if len(d.Monorail.Points) != len(s.Monorail.Points) {
		t.Errorf("monorail point drift: built-in %d, example %d", len(d.Monorail.Points), len(s.Monorail.Points))
	}
	if len(d.Road.Points) != len(s.Road.Points) {
		t.Errorf("road point drift: built-in %d, example %d", len(d.Road.Points), len(s.Road.Points))
	}
	if d.Needle != s.Needle {
		t.Errorf("needle drift:\nbuilt-in %+v\nexample  %+v", d.Needle, s.Needle)
	}
	if d.Tunnel != s.Tunnel {
		t.Errorf("tunnel drift:\nbuilt-in %+v\nexample  %+v", d.Tunnel, s.Tunnel)
	}
	if d.Elevators != s.Elevators {
		t.Errorf("elevator drift:\nbuilt-in %+v\nexample  %+v", d.Elevators, s.Elevators)
	}
}
