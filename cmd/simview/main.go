package main

import (
	"fmt"
	"os"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/simview/internal/config"
	"github.com/san-kum/simview/internal/format"
	"github.com/san-kum/simview/internal/sim"
	"github.com/san-kum/simview/internal/tui"
)

var (
	profilePath string
	dt          float64
	duration    float64
	theta       float64
	omega       float64
	damping     float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "simview",
		Short: "interactive simulation control panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			prof, err := loadProfile()
			if err != nil {
				return err
			}
			return tui.Run(prof)
		},
	}
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "profile file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "headless pendulum run with an ascii plot",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	runCmd.Flags().Float64Var(&duration, "time", 10.0, "duration")
	runCmd.Flags().Float64Var(&theta, "theta", 0.5, "initial angle")
	runCmd.Flags().Float64Var(&omega, "omega", 0.0, "initial angular velocity")
	runCmd.Flags().Float64Var(&damping, "damping", 0.1, "damping coefficient")

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "manage control profiles",
	}
	profileCmd.AddCommand(
		&cobra.Command{
			Use:   "init [path]",
			Short: "write a default profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := config.Save(args[0], config.DefaultProfile()); err != nil {
					return err
				}
				fmt.Printf("wrote %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "show [path]",
			Short: "print a profile",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				prof, err := config.Load(args[0])
				if err != nil {
					return err
				}
				fmt.Printf("name: %s\ntheme: %s\ndecimals: %d\n", prof.Name, prof.Theme, prof.Decimals)
				for id, v := range prof.Controls {
					fmt.Printf("  %s: %v\n", id, v)
				}
				return nil
			},
		},
	)

	rootCmd.AddCommand(runCmd, profileCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadProfile() (*config.Profile, error) {
	if profilePath == "" {
		return nil, nil
	}
	prof, err := config.Load(profilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return prof, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	p := sim.NewPendulum()
	p.Damping = damping

	steps := int(duration / dt)
	if steps < 1 {
		return fmt.Errorf("duration %v too short for dt %v", duration, dt)
	}

	states := sim.Run(p, sim.State{theta, omega}, dt, steps)

	data := make([]float64, len(states))
	for i, s := range states {
		data[i] = s[0]
	}

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("theta (angle)"),
	)
	fmt.Println(graph)
	fmt.Println()

	final := states[len(states)-1]
	fmt.Printf("steps: %d\n", steps)
	fmt.Printf("final theta: %s rad\n", format.Format(final[0], 4))
	fmt.Printf("final omega: %s rad/s\n", format.Format(final[1], 4))
	fmt.Printf("energy: %s J\n", format.Format(p.Energy(final), 4))
	return nil
}
