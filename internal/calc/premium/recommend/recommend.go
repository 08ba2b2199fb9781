package recommend

import (
	"fmt"
	"math"

	"Velofit/internal/calc/fit"
)

type StemInput struct {
	Category      fit.BikeCategory `json:"category"`
	TargetStackMm float64          `json:"targetStackMm"`
	TargetReachMm float64          `json:"targetReachMm"`
	FrameStackMm  float64          `json:"frameStackMm"`
	FrameReachMm  float64          `json:"frameReachMm"`
}

type StemResult struct {
	fit.StemSolution
	// where the chosen cockpit puts the bar clamp
	HandlebarStackMm float64 `json:"handlebarStackMm"`
	HandlebarReachMm float64 `json:"handlebarReachMm"`
	ErrorMm          float64 `json:"errorMm"`
}

// Stem picks the cockpit for a known frame. Unlike the full calculation it
// requires frame geometry instead of falling back to the neutral cockpit.
func Stem(in StemInput) (StemResult, error) {
	if in.FrameStackMm <= 0 || in.FrameReachMm <= 0 {
		return StemResult{}, fmt.Errorf("%w: frame stack and reach are required", fit.ErrInvalidInputs)
	}
	if in.TargetStackMm <= 0 || in.TargetReachMm <= 0 {
		return StemResult{}, fmt.Errorf("%w: target stack and reach are required", fit.ErrInvalidInputs)
	}
	category := in.Category
	if category == "" {
		category = fit.CategoryRoad
	}

	s := fit.SolveStem(category, in.TargetStackMm, in.TargetReachMm, &in.FrameStackMm, &in.FrameReachMm)
	stack, reach := fit.HandlebarPosition(in.FrameStackMm, in.FrameReachMm, s)
	return StemResult{
		StemSolution:     s,
		HandlebarStackMm: math.Round(stack*10) / 10,
		HandlebarReachMm: math.Round(reach*10) / 10,
		ErrorMm:          math.Round(math.Hypot(stack-in.TargetStackMm, reach-in.TargetReachMm)*10) / 10,
	}, nil
}
