package report

import (
	"fmt"
	"io"
	"time"

	"Velofit/internal/calc/fit"

	"github.com/phpdave11/gofpdf"
)

type row struct {
	label, value, note string
}

func mm(v float64) string { return fmt.Sprintf("%.0f mm", v) }

func rangeNote(r fit.Range) string { return fmt.Sprintf("%.0f - %.0f mm", r.Min, r.Max) }

func optional(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}

func signed(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%+.0f mm", *v)
}

// Render writes the fit sheet as a PDF. It only formats what the engine
// returned.
func Render(w io.Writer, riderName string, in fit.FitInputs, out fit.FitOutputs, now time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Bike fit report", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Bike Fit Report")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	if riderName != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Rider: %s", riderName))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Bike: %s, ambition: %s", in.Category, in.Ambition))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Height %.0f mm, inseam %.0f mm", in.HeightMm, in.InseamMm))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s    Algorithm %s    Confidence %d%%", now.Format("2006-01-02"), out.AlgorithmVersion, out.ConfidenceScore))
	pdf.Ln(10)

	section(pdf, "Contact points")
	table(pdf, []row{
		{"Saddle height", mm(out.SaddleHeightMm), rangeNote(out.SaddleHeightRange)},
		{"Saddle setback", mm(out.SaddleSetbackMm), ""},
		{"Saddle tilt", fmt.Sprintf("%.0f deg", out.SaddleTiltDeg), "negative is nose down"},
		{"Handlebar drop", mm(out.BarDropMm), rangeNote(out.BarDropRange)},
		{"Reach", mm(out.ReachMm), rangeNote(out.ReachRange) + ", " + string(out.ReachBasis)},
		{"Crank length", fmt.Sprintf("%.1f mm", out.CrankLengthMm), ""},
		{"Handlebar width", mm(out.HandlebarWidthMm), ""},
		{"Cleat offset", mm(out.CleatOffsetMm), "behind ball of foot"},
	})

	section(pdf, "Frame and cockpit")
	table(pdf, []row{
		{"Frame stack target", fmt.Sprintf("%.1f mm", out.FrameStackTargetMm), optional(in.FrameStackMm, "current %.0f mm")},
		{"Frame reach target", fmt.Sprintf("%.1f mm", out.FrameReachTargetMm), optional(in.FrameReachMm, "current %.0f mm")},
		{"Stem length", mm(out.StemLengthMm), optional(in.StemLengthMm, "current %.0f mm")},
		{"Stem angle", fmt.Sprintf("%.0f deg", out.StemAngleDeg), optional(in.StemAngleDeg, "current %.0f deg")},
		{"Spacers", mm(out.SpacerStackMm), optional(in.SpacerStackMm, "current %.0f mm")},
	})

	if d := out.Deltas; d != nil {
		section(pdf, "Changes from your current setup")
		table(pdf, []row{
			{"Saddle height", signed(d.SaddleHeightMm), optional(in.CurrentSaddleHeightMm, "now %.0f mm")},
			{"Saddle setback", signed(d.SetbackMm), optional(in.CurrentSetbackMm, "now %.0f mm")},
			{"Handlebar drop", signed(d.DropMm), optional(in.CurrentDropMm, "now %.0f mm")},
			{"Reach", signed(d.ReachMm), optional(in.CurrentReachMm, "now %.0f mm")},
		})
	}

	if len(out.Warnings) > 0 {
		section(pdf, "Warnings")
		for _, warn := range out.Warnings {
			pdf.SetFont("Helvetica", "B", 10)
			pdf.MultiCell(0, 5, fmt.Sprintf("[%s] %s", warn.Severity, warn.Message), "", "L", false)
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, warn.Recommendation, "", "L", false)
			pdf.Ln(2)
		}
	}

	return pdf.Output(w)
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)
}

func table(pdf *gofpdf.Fpdf, rows []row) {
	pdf.SetFillColor(240, 240, 240)
	for i, r := range rows {
		fill := i%2 == 0
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(60, 7, r.label, "", 0, "L", fill, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 7, r.value, "", 0, "R", fill, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(0, 7, "  "+r.note, "", 1, "L", fill, 0, "")
	}
}
