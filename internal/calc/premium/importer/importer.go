package importer

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"Velofit/internal/calc/fit"

	"github.com/xuri/excelize/v2"
)

// Columns in sheet order. Flexibility and core are the 1-5 self assessments.
var Columns = []string{"category", "ambition", "height", "inseam", "flexibility", "core", "torso", "arm", "shoulder"}

const requiredColumns = 6

// Row is one parsed data row. Line is the 1-based spreadsheet row.
type Row struct {
	Line   int
	Inputs fit.FitInputs
	Err    error
}

// ParseWorkbook reads the first sheet, skipping the header row and blank rows.
func ParseWorkbook(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("empty sheet")
	}

	var out []Row
	for i := 1; i < len(rows); i++ {
		if blank(rows[i]) {
			continue
		}
		in, err := parseRow(rows[i])
		out = append(out, Row{Line: i + 1, Inputs: in, Err: err})
	}
	return out, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func parseRow(row []string) (fit.FitInputs, error) {
	if len(row) < requiredColumns {
		return fit.FitInputs{}, fmt.Errorf("expected at least %d columns, got %d", requiredColumns, len(row))
	}
	height, err := toFloat(row[2])
	if err != nil {
		return fit.FitInputs{}, fmt.Errorf("height: %w", err)
	}
	inseam, err := toFloat(row[3])
	if err != nil {
		return fit.FitInputs{}, fmt.Errorf("inseam: %w", err)
	}
	flex, err := toScore(row[4])
	if err != nil {
		return fit.FitInputs{}, fmt.Errorf("flexibility: %w", err)
	}
	core, err := toScore(row[5])
	if err != nil {
		return fit.FitInputs{}, fmt.Errorf("core: %w", err)
	}

	in := fit.FitInputs{
		Category:         fit.BikeCategory(strings.ToLower(strings.TrimSpace(row[0]))),
		Ambition:         fit.Ambition(strings.ToLower(strings.TrimSpace(row[1]))),
		HeightMm:         height,
		InseamMm:         inseam,
		FlexibilityScore: fit.MapFlexibilityScore(flex),
		CoreScore:        fit.MapCoreScore(core),
	}
	optional := []**float64{&in.TorsoMm, &in.ArmMm, &in.ShoulderWidthMm}
	for i, dst := range optional {
		col := requiredColumns + i
		if col >= len(row) || strings.TrimSpace(row[col]) == "" {
			continue
		}
		v, err := toFloat(row[col])
		if err != nil {
			return fit.FitInputs{}, fmt.Errorf("%s: %w", Columns[col], err)
		}
		*dst = &v
	}
	return in, nil
}

func toFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

// toScore accepts a whole 0-5 self assessment, including the "3.0"
// spreadsheets like to produce. 0 means unanswered.
func toScore(s string) (int, error) {
	v, err := toFloat(s)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) || v < 0 || v > 5 {
		return 0, fmt.Errorf("%q is not a whole number from 0 to 5", strings.TrimSpace(s))
	}
	return int(v), nil
}
