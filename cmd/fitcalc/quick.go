package main

import (
	"Velofit/internal/calc/fit"

	"github.com/spf13/cobra"
)

func newQuickCmd(output *string) *cobra.Command {
	var in fit.QuickInput
	var category string

	cmd := &cobra.Command{
		Use:   "quick",
		Short: "Estimate saddle height and frame size from height and inseam",
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Category = fit.BikeCategory(category)
			est, err := fit.CalculateQuickEstimate(in)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), *output, est)
		},
	}

	cmd.Flags().Float64Var(&in.HeightMm, "height", 0, "Rider height in mm")
	cmd.Flags().Float64Var(&in.InseamMm, "inseam", 0, "Inseam in mm")
	cmd.Flags().StringVar(&category, "category", string(fit.CategoryRoad), "road, gravel, mountain or city")
	return cmd
}
