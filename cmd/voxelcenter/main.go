package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/daviddswayne-svg/voxel-seattle-center/internal/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "voxelcenter",
		Short: "Procedural Seattle Center diorama engine",
	}

	rootCmd.AddCommand(buildCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(simulateCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [project-path]",
		Short: "Build the diorama and write the scene document to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runBuild(args)
		},
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a diorama spec, its scene tree and render budgets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args)
		},
	}
}

func simulateCmd() *cobra.Command {
	var seconds float64
	var fps int
	var scriptPath string

	cmd := &cobra.Command{
		Use:   "simulate [project-path]",
		Short: "Run the diorama headless and print agent telemetry",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runSimulate(args, seconds, fps, scriptPath)
		},
	}

	cmd.Flags().Float64Var(&seconds, "seconds", 30, "simulated time to cover")
	cmd.Flags().IntVar(&fps, "fps", 60, "fixed steps per simulated second")
	cmd.Flags().StringVar(&scriptPath, "manual-script", "", "YAML flight script flown through the helicopter stick")
	return cmd
}

func serveCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve [project-path]",
		Short: "Start the local dev server with the live frame stream",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sp, err := loadSpec(args)
			if err != nil {
				return err
			}
			return server.New(sp, port).Start()
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	return cmd
}
