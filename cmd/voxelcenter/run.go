package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/daviddswayne-svg/voxel-seattle-center/internal/diorama"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/audio"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/input"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/scene"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/spec"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/stats"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/validation"
)

// loadSpec resolves the optional project argument: a directory holding
// diorama.yaml, a spec file itself, or nothing for the built-in scene.
func loadSpec(args []string) (*spec.DioramaSpec, error) {
	if len(args) == 0 {
		return spec.Default(), nil
	}
	info, err := os.Stat(args[0])
	if err != nil {
		return nil, fmt.Errorf("loading spec: %w", err)
	}
	if info.IsDir() {
		return spec.LoadProject(args[0])
	}
	return spec.Load(args[0])
}

// fullValidation runs all three passes: spec schema, built scene tree,
// and render budgets. Generation only runs on a schema-clean spec.
func fullValidation(sp *spec.DioramaSpec) (*validation.Report, *diorama.Diorama) {
	report := validation.ValidateSchema(sp)
	if !report.Valid {
		return report, nil
	}
	world := diorama.Build(sp, diorama.Options{})
	report.Merge(scene.ValidateTree(world.Root))
	stats.ValidateBudget(stats.Collect(world.Root), report)
	return report, world
}

func runValidate(args []string) error {
	sp, err := loadSpec(args)
	if err != nil {
		return err
	}

	report, _ := fullValidation(sp)
	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runBuild(args []string) error {
	sp, err := loadSpec(args)
	if err != nil {
		return err
	}

	report, world := fullValidation(sp)
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("spec has validation errors")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(world.Export())
}

func runSimulate(args []string, seconds float64, fps int, scriptPath string) error {
	sp, err := loadSpec(args)
	if err != nil {
		return err
	}
	if fps <= 0 {
		return fmt.Errorf("fps must be positive")
	}
	if seconds <= 0 {
		return fmt.Errorf("seconds must be positive")
	}

	board := audio.NewBoard()
	opts := diorama.Options{Sounds: board}

	var script *input.Script
	if scriptPath != "" {
		script, err = input.LoadScript(scriptPath)
		if err != nil {
			return err
		}
		opts.Source = script
	}

	world := diorama.Build(sp, opts)

	dt := 1.0 / float64(fps)
	steps := 0
	for elapsed := 0.0; elapsed+dt <= seconds+1e-12; elapsed += dt {
		world.Sched.Step(dt)
		if script != nil {
			script.Advance(dt)
		}
		steps++
	}

	printTelemetry(world, board, float64(steps)*dt, steps, fps)
	return nil
}
