package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"Velofit/internal/calc/fit"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newCalcCmd(output *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Run the full fit calculation for a rider file",
		Long: `Read FitInputs from a YAML (.yaml, .yml) or JSON (.json) file and print the
calculated outputs. Scores in the file are on the 0-10 engine scale.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInputs(file)
			if err != nil {
				return err
			}
			out, err := fit.Calculate(in)
			if err != nil {
				return err
			}
			return writeResult(cmd.OutOrStdout(), *output, out)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Rider file (YAML or JSON)")
	cmd.MarkFlagRequired("file")
	return cmd
}

func loadInputs(path string) (fit.FitInputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fit.FitInputs{}, fmt.Errorf("read rider file: %w", err)
	}

	var in fit.FitInputs
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &in)
	case ".json":
		err = json.Unmarshal(data, &in)
	default:
		return fit.FitInputs{}, fmt.Errorf("unsupported rider file extension %q", ext)
	}
	if err != nil {
		return fit.FitInputs{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return in, nil
}
