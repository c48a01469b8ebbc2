package main

import (
	"fmt"

	"github.com/daviddswayne-svg/voxel-seattle-center/internal/diorama"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/audio"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/stats"
	"github.com/daviddswayne-svg/voxel-seattle-center/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	printResults("ERRORS", r.Errors)
	printResults("WARNINGS", r.Warnings)

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printResults(header string, results []validation.Result) {
	if len(results) == 0 {
		return
	}
	fmt.Printf("%s (%d):\n", header, len(results))
	for _, res := range results {
		fmt.Printf("  [%s] %s\n", res.Level, res.Message)
		if res.SpecPath != "" {
			fmt.Printf("    -> %s = %v\n", res.SpecPath, res.ActualValue)
		}
		if res.Expected != "" {
			fmt.Printf("    expected: %s\n", res.Expected)
		}
		if res.ConflictWith != "" {
			fmt.Printf("    conflicts with: %s\n", res.ConflictWith)
		}
		for _, s := range res.Suggestions {
			fmt.Printf("    * %s\n", s)
		}
	}
	fmt.Println()
}

func printTelemetry(world *diorama.Diorama, board *audio.Board, covered float64, steps, fps int) {
	fmt.Printf("Simulated %.1fs in %d steps at %d fps\n", covered, steps, fps)
	fmt.Println()

	fmt.Println("Agents")
	fmt.Println("------")
	train := world.Train
	fmt.Printf("  %-20s %-11s progress %.3f dir %+.0f\n", train.Name(), train.State(), train.Progress(), train.Direction())
	fmt.Printf("  %-20s %-11s loop t %.3f\n", world.Taxi.Name(), "driving", world.Taxi.Progress())
	hp := world.Heli.Position()
	fmt.Printf("  %-20s %-11s at (%.1f, %.1f, %.1f)\n", world.Heli.Name(), world.Heli.Mode(), hp.X(), hp.Y(), hp.Z())
	for _, e := range world.Elevators {
		fmt.Printf("  %-20s %-11s height %.1fm, %d round trips\n", e.Name(), e.State(), e.Height(), e.Cycles())
	}
	fmt.Println()

	if sounds := board.Snapshot(); len(sounds) > 0 {
		fmt.Println("Sounds")
		fmt.Println("------")
		for _, s := range sounds {
			fmt.Printf("  %-20s volume %.2f rate %.2f node %d\n", s.Kind, s.Volume, s.Rate, s.NodeID)
		}
		fmt.Println()
	}

	st := stats.Collect(world.Root)
	fmt.Printf("Scene: %d nodes, %d instances, %d lights, %d materials\n",
		st.Nodes, st.Instances, st.Lights, st.Materials)
}
