package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"linegraph/engine"
	"linegraph/models"
	"linegraph/store"
)

// renderCmd writes one frame of a dataset's chart as a standalone SVG, for worksheets and checking layouts.
func renderCmd() *cobra.Command {
	var (
		step   string
		tick   int
		point  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "render <dataset>",
		Short: "Render a dataset's chart at a step as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := store.Default()
			if err != nil {
				return err
			}
			dataset, ok := catalog.Dataset(args[0])
			if !ok {
				return fmt.Errorf("unknown dataset %q", args[0])
			}
			stepID, err := models.ParseStepID(step)
			if err != nil {
				return err
			}

			scene, err := engine.Compose(dataset, engine.Frame{Step: stepID, TickCounter: tick, PointCounter: point})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return err
				}
				defer func() { _ = file.Close() }()
				w = file
			}
			return engine.RenderSVG(w, scene)
		},
	}

	cmd.Flags().StringVar(&step, "step", models.LastStep.String(), "step name or number (0-6)")
	cmd.Flags().IntVar(&tick, "tick", engine.Inactive, "tick reveal counter while drawing axes")
	cmd.Flags().IntVar(&point, "point", engine.Inactive, "point reveal counter while plotting points")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}
