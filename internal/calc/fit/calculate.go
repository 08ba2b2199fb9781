package fit

// Calculate runs the full fit pipeline. It fails only when validation fails;
// every later step is total.
func Calculate(in FitInputs) (FitOutputs, error) {
	v := Validate(in)
	if !v.IsValid {
		return FitOutputs{}, &ValidationError{Errors: v.Errors}
	}

	ctx := NewCalcContext(in)

	crank := CrankLength(ctx)
	saddle := SaddleHeight(ctx)
	setback := SaddleSetback(ctx)
	drop := BarDrop(ctx, saddle.Value)
	reach := Reach(ctx)
	tilt := SaddleTilt(ctx, drop.Value)
	cleat := CleatOffset(ctx)
	width := HandlebarWidth(ctx)
	frame := CalculateFrameTargets(ctx, saddle.Value, setback, drop.Value, reach.Value)
	stem := SolveStem(ctx.Category, frame.HandlebarStackMm, frame.HandlebarReachMm, in.FrameStackMm, in.FrameReachMm)

	out := FitOutputs{
		CrankLengthMm:      crank,
		SaddleHeightMm:     saddle.Value,
		SaddleHeightRange:  saddle.Range,
		SaddleSetbackMm:    setback,
		SaddleTiltDeg:      tilt,
		BarDropMm:          drop.Value,
		BarDropRange:       drop.Range,
		ReachMm:            reach.Value,
		ReachRange:         reach.Range,
		ReachBasis:         ctx.ReachBasis,
		CleatOffsetMm:      cleat,
		HandlebarWidthMm:   width,
		FrameStackTargetMm: frame.StackMm,
		FrameReachTargetMm: frame.ReachMm,
		StemLengthMm:       stem.StemLengthMm,
		StemAngleDeg:       stem.StemAngleDeg,
		SpacerStackMm:      stem.SpacerStackMm,
		AlgorithmVersion:   AlgorithmVersion,
	}
	out.Warnings = GenerateWarnings(ctx, v.Warnings, out)
	out.ConfidenceScore = ConfidenceScore(in)
	out.Deltas = CalculateDeltas(in, out)
	return out, nil
}

// ConfidenceScore rewards input completeness; it ignores the outputs.
func ConfidenceScore(in FitInputs) int {
	score := confidenceBase
	if in.TorsoMm != nil {
		score += confidenceTorso
	}
	if in.ArmMm != nil {
		score += confidenceArm
	}
	if in.ShoulderWidthMm != nil {
		score += confidenceShoulder
	}
	if in.FemurMm != nil {
		score += confidenceFemur
	}
	if in.FootLengthMm != nil {
		score += confidenceFoot
	}
	if in.Experience != "" {
		score += confidenceExperience
	}
	if in.FrameStackMm != nil && in.FrameReachMm != nil {
		score += confidenceFrame
	}
	if score > confidenceMax {
		score = confidenceMax
	}
	return score
}
