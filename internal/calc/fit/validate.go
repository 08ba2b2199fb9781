package fit

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidInputs = errors.New("invalid fit inputs")

// ValidationError carries every hard validation failure of one call.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidInputs, strings.Join(e.Errors, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInputs
}

type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate gates the pipeline. It never clamps or rewrites inputs.
func Validate(in FitInputs) ValidationResult {
	var errs, warns []string

	switch {
	case in.HeightMm <= 0:
		errs = append(errs, "Height is required")
	case !finite(in.HeightMm) || in.HeightMm < MinHeightMm || in.HeightMm > MaxHeightMm:
		errs = append(errs, fmt.Sprintf("Height must be between %.0f and %.0f mm", MinHeightMm, MaxHeightMm))
	}
	switch {
	case in.InseamMm <= 0:
		errs = append(errs, "Inseam is required")
	case !finite(in.InseamMm) || in.InseamMm < MinInseamMm || in.InseamMm > MaxInseamMm:
		errs = append(errs, fmt.Sprintf("Inseam must be between %.0f and %.0f mm", MinInseamMm, MaxInseamMm))
	}
	if finite(in.HeightMm) && finite(in.InseamMm) && in.HeightMm > 0 && in.InseamMm > 0 {
		if in.InseamMm >= in.HeightMm {
			errs = append(errs, "Inseam cannot be greater than or equal to height")
		} else if ratio := in.InseamMm / in.HeightMm; ratio < minInseamRatio || ratio > maxInseamRatio {
			warns = append(warns, fmt.Sprintf("Inseam to height ratio %.2f is outside the typical range %.2f-%.2f", ratio, minInseamRatio, maxInseamRatio))
		}
	}

	if !finite(in.FlexibilityScore) || in.FlexibilityScore < MinScore || in.FlexibilityScore > MaxScore {
		errs = append(errs, "Flexibility score must be between 0 and 10")
	}
	if !finite(in.CoreScore) || in.CoreScore < MinScore || in.CoreScore > MaxScore {
		errs = append(errs, "Core score must be between 0 and 10")
	}

	if !knownCategory(in.Category) {
		errs = append(errs, fmt.Sprintf("Unknown bike category %q", in.Category))
	}
	if !knownAmbition(in.Ambition) {
		errs = append(errs, fmt.Sprintf("Unknown ambition %q", in.Ambition))
	}
	if in.Experience != "" && !knownExperience(in.Experience) {
		errs = append(errs, fmt.Sprintf("Unknown experience level %q", in.Experience))
	}

	optional := []struct {
		name   string
		value  *float64
		lo, hi float64
	}{
		{"Torso length", in.TorsoMm, minTorsoMm, maxTorsoMm},
		{"Arm length", in.ArmMm, minArmMm, maxArmMm},
		{"Shoulder width", in.ShoulderWidthMm, minShoulderMm, maxShoulderMm},
		{"Foot length", in.FootLengthMm, minFootMm, maxFootMm},
		{"Femur length", in.FemurMm, minFemurMm, maxFemurMm},
	}
	for _, m := range optional {
		if m.value == nil {
			continue
		}
		v := *m.value
		if !finite(v) {
			errs = append(errs, m.name+" must be a number")
			continue
		}
		if v <= 0 {
			errs = append(errs, m.name+" must be positive")
			continue
		}
		if v < m.lo || v > m.hi {
			warns = append(warns, fmt.Sprintf("%s %.0f mm is outside the typical range %.0f-%.0f mm", m.name, v, m.lo, m.hi))
		}
	}

	if positive(in.TorsoMm) && positive(in.ArmMm) && !measuredReachUsable(in) {
		warns = append(warns, "Torso and arm lengths were not used for reach; it is estimated from height")
	}

	setup := []struct {
		name     string
		value    *float64
		positive bool
	}{
		{"Current saddle height", in.CurrentSaddleHeightMm, true},
		{"Current setback", in.CurrentSetbackMm, false},
		{"Current drop", in.CurrentDropMm, false},
		{"Current reach", in.CurrentReachMm, true},
		{"Frame stack", in.FrameStackMm, true},
		{"Frame reach", in.FrameReachMm, true},
		{"Stem length", in.StemLengthMm, true},
		{"Stem angle", in.StemAngleDeg, false},
		{"Spacer stack", in.SpacerStackMm, false},
		{"Seat tube angle", in.SeatTubeAngleDeg, false},
	}
	for _, m := range setup {
		switch {
		case m.value == nil:
		case !finite(*m.value):
			errs = append(errs, m.name+" must be a number")
		case m.positive && *m.value <= 0:
			errs = append(errs, m.name+" must be positive")
		}
	}

	if a := in.SeatTubeAngleDeg; a != nil && finite(*a) && !validSeatTubeAngle(*a) {
		warns = append(warns, fmt.Sprintf("Seat tube angle %.1f° is outside %.0f-%.0f° and was ignored", *a, minSeatTubeAngleDeg, maxSeatTubeAngleDeg))
	}

	return ValidationResult{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
	}
}

func positive(v *float64) bool {
	return v != nil && finite(*v) && *v > 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validSeatTubeAngle(deg float64) bool {
	return deg >= minSeatTubeAngleDeg && deg <= maxSeatTubeAngleDeg
}

func knownCategory(c BikeCategory) bool {
	switch c {
	case CategoryRoad, CategoryGravel, CategoryMountain, CategoryCity:
		return true
	}
	return false
}

func knownAmbition(a Ambition) bool {
	switch a {
	case AmbitionComfort, AmbitionBalanced, AmbitionPerformance, AmbitionAero:
		return true
	}
	return false
}

func knownExperience(e ExperienceLevel) bool {
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced:
		return true
	}
	return false
}
