package fit

import "fmt"

// GenerateWarnings evaluates every risk rule independently; several may fire
// for the same output. Measurement warnings from validation come first.
func GenerateWarnings(ctx CalcContext, measurementWarnings []string, out FitOutputs) []FitWarning {
	warnings := make([]FitWarning, 0, len(measurementWarnings)+2)
	for _, msg := range measurementWarnings {
		warnings = append(warnings, FitWarning{
			Type:           WarningMeasurement,
			Severity:       SeverityInfo,
			Message:        msg,
			Recommendation: "Re-measure to confirm; the fit was calculated with the value as entered.",
		})
	}

	ratio := out.SaddleHeightMm / ctx.Inputs.InseamMm
	switch {
	case ratio > saddleRatioHigh:
		warnings = append(warnings, FitWarning{
			Type:           WarningSaddleTooHigh,
			Severity:       SeverityWarning,
			Message:        fmt.Sprintf("Saddle height is %.1f%% of inseam, which risks hip rocking and overextension.", ratio*100),
			Recommendation: "Lower the saddle in 2-3 mm steps and check for a slight knee bend at the bottom of the stroke.",
		})
	case ratio < saddleRatioLow:
		warnings = append(warnings, FitWarning{
			Type:           WarningSaddleTooLow,
			Severity:       SeverityWarning,
			Message:        fmt.Sprintf("Saddle height is %.1f%% of inseam, which loads the front of the knee.", ratio*100),
			Recommendation: "Raise the saddle gradually unless a medical condition limits knee extension.",
		})
	}

	if ctx.FlexIndex <= lowIndexThreshold && out.BarDropMm >= dropAssessmentMm {
		warnings = append(warnings, FitWarning{
			Type:           WarningFlexibility,
			Severity:       SeverityWarning,
			Message:        fmt.Sprintf("A %.0f mm bar drop is demanding for your hamstring and lower back flexibility.", out.BarDropMm),
			Recommendation: "Start with spacers under the stem and lower the bars as flexibility improves.",
		})
	}
	if ctx.CoreIndex <= lowIndexThreshold && out.BarDropMm >= dropAssessmentMm {
		warnings = append(warnings, FitWarning{
			Type:           WarningCore,
			Severity:       SeverityWarning,
			Message:        fmt.Sprintf("A %.0f mm bar drop needs core strength to support the upper body.", out.BarDropMm),
			Recommendation: "Add core training and keep the bars higher until you can hold the position without hand pressure.",
		})
	}
	if out.BarDropMm >= dropRiskMm {
		severity := SeverityWarning
		if ctx.FlexIndex < 0 {
			severity = SeverityCritical
		}
		warnings = append(warnings, FitWarning{
			Type:           WarningDropRisk,
			Severity:       severity,
			Message:        fmt.Sprintf("Bar drop of %.0f mm is aggressive.", out.BarDropMm),
			Recommendation: "Build up to this drop over several weeks and watch for neck or lower back pain.",
		})
	}

	if out.ReachMm > reachRiskMm {
		severity := SeverityWarning
		if out.ReachMm > reachCriticalMm {
			severity = SeverityCritical
		}
		warnings = append(warnings, FitWarning{
			Type:           WarningReachRisk,
			Severity:       severity,
			Message:        fmt.Sprintf("Saddle-to-bar reach of %.0f mm is long and may overload the shoulders.", out.ReachMm),
			Recommendation: "Confirm arm and torso measurements; consider a shorter stem if you feel stretched.",
		})
	}

	return warnings
}
