package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRootCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fitcalc",
		Short: "Calculate bike fit targets from rider measurements",
		Long: `fitcalc runs the fit engine offline, without the HTTP service or a database.

Examples:
  fitcalc calc --file rider.yaml
  fitcalc calc --file rider.json --output yaml
  fitcalc quick --height 1750 --inseam 810 --category road`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "json", "Output format: json or yaml")

	cmd.AddCommand(newCalcCmd(&output))
	cmd.AddCommand(newQuickCmd(&output))
	return cmd
}

func writeResult(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q (want json or yaml)", format)
	}
}
