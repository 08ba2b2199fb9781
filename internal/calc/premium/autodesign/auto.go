package autodesign

import (
	"fmt"
	"math"

	"Velofit/internal/calc/fit"
)

// stack/reach ratio bands used to describe frame geometry
const (
	raceRatioBelow      = 1.40
	enduranceRatioAbove = 1.50
)

type FrameResult struct {
	NominalSizeCm      float64 `json:"nominalSizeCm"`
	FrameStackTargetMm float64 `json:"frameStackTargetMm"`
	FrameReachTargetMm float64 `json:"frameReachTargetMm"`
	StackToReach       float64 `json:"stackToReach"`
	Geometry           string  `json:"geometry"`
	fit.StemSolution
	Notes string `json:"notes"`
}

// Frame sizes a new frame for the rider. Existing frame geometry in the
// inputs is ignored so the cockpit is always the neutral one.
func Frame(in fit.FitInputs) (FrameResult, error) {
	in.FrameStackMm, in.FrameReachMm = nil, nil
	out, err := fit.Calculate(in)
	if err != nil {
		return FrameResult{}, err
	}
	if out.FrameReachTargetMm <= 0 {
		return FrameResult{}, fmt.Errorf("%w: measurements give no usable frame reach", fit.ErrInvalidInputs)
	}
	quick, err := fit.CalculateQuickEstimate(fit.QuickInput{
		HeightMm: in.HeightMm,
		InseamMm: in.InseamMm,
		Category: in.Category,
	})
	if err != nil {
		return FrameResult{}, err
	}

	res := FrameResult{
		NominalSizeCm:      quick.EstimatedFrameSize,
		FrameStackTargetMm: out.FrameStackTargetMm,
		FrameReachTargetMm: out.FrameReachTargetMm,
		StemSolution:       fit.DefaultStem,
		Geometry:           "all-round",
		Notes:              "Targets assume a 100 mm, -6 deg stem on 15 mm of spacers.",
	}
	res.StackToReach = math.Round(out.FrameStackTargetMm/out.FrameReachTargetMm*100) / 100
	switch {
	case res.StackToReach < raceRatioBelow:
		res.Geometry = "race"
	case res.StackToReach > enduranceRatioAbove:
		res.Geometry = "endurance"
	}
	return res, nil
}
