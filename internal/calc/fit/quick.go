package fit

import (
	"fmt"
	"math"
)

type QuickInput struct {
	HeightMm float64      `json:"heightMm"`
	InseamMm float64      `json:"inseamMm"`
	Category BikeCategory `json:"category"`
}

type QuickEstimate struct {
	EstimatedSaddleHeight float64 `json:"estimatedSaddleHeight"`
	// centimetres, nearest half size
	EstimatedFrameSize float64 `json:"estimatedFrameSize"`
}

// CalculateQuickEstimate is a table-only preview. It skips the assessment
// scores and every adjustment of the full pipeline.
func CalculateQuickEstimate(in QuickInput) (QuickEstimate, error) {
	if !finite(in.HeightMm) || !finite(in.InseamMm) {
		return QuickEstimate{}, fmt.Errorf("%w: height and inseam must be numbers", ErrInvalidInputs)
	}
	if in.HeightMm <= 0 || in.InseamMm <= 0 {
		return QuickEstimate{}, fmt.Errorf("%w: height and inseam are required", ErrInvalidInputs)
	}
	if in.InseamMm >= in.HeightMm {
		return QuickEstimate{}, fmt.Errorf("%w: Inseam cannot be greater than or equal to height", ErrInvalidInputs)
	}
	category := in.Category
	if !knownCategory(category) {
		category = CategoryRoad
	}
	point, _, _ := saddleMultipliers(category)
	size := in.InseamMm / 10 * frameSizeFactor(category)
	return QuickEstimate{
		EstimatedSaddleHeight: math.Round(in.InseamMm * point),
		EstimatedFrameSize:    math.Round(size*2) / 2,
	}, nil
}
