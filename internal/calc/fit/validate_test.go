package fit

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mod       func(*FitInputs)
		wantValid bool
		wantErr   string
		wantWarn  string
	}{
		{name: "fixture", mod: func(*FitInputs) {}, wantValid: true},
		{name: "missing height", mod: func(in *FitInputs) { in.HeightMm = 0 }, wantErr: "Height is required"},
		{name: "missing inseam", mod: func(in *FitInputs) { in.InseamMm = 0 }, wantErr: "Inseam is required"},
		{name: "short rider", mod: func(in *FitInputs) { in.HeightMm, in.InseamMm = 1100, 500 }, wantErr: "Height must be between 1200 and 2200 mm"},
		{name: "long inseam", mod: func(in *FitInputs) { in.HeightMm, in.InseamMm = 2150, 1150 }, wantErr: "Inseam must be between 500 and 1100 mm"},
		{name: "flexibility above scale", mod: func(in *FitInputs) { in.FlexibilityScore = 10.5 }, wantErr: "Flexibility score must be between 0 and 10"},
		{name: "core below scale", mod: func(in *FitInputs) { in.CoreScore = -0.5 }, wantErr: "Core score must be between 0 and 10"},
		{name: "unknown category", mod: func(in *FitInputs) { in.Category = "tandem" }, wantErr: `Unknown bike category "tandem"`},
		{name: "unknown ambition", mod: func(in *FitInputs) { in.Ambition = "casual" }, wantErr: `Unknown ambition "casual"`},
		{name: "unknown experience", mod: func(in *FitInputs) { in.Experience = "pro" }, wantErr: `Unknown experience level "pro"`},
		{name: "negative torso", mod: func(in *FitInputs) { in.TorsoMm = f(-1) }, wantErr: "Torso length must be positive"},
		{name: "short torso warns", mod: func(in *FitInputs) { in.TorsoMm = f(300) }, wantValid: true, wantWarn: "Torso length 300 mm"},
		{name: "wide shoulders warn", mod: func(in *FitInputs) { in.ShoulderWidthMm = f(560) }, wantValid: true, wantWarn: "Shoulder width"},
		{name: "odd proportions warn", mod: func(in *FitInputs) { in.InseamMm = 950 }, wantValid: true, wantWarn: "Inseam to height ratio"},
		{name: "seat tube angle ignored", mod: func(in *FitInputs) { in.SeatTubeAngleDeg = f(82) }, wantValid: true, wantWarn: "Seat tube angle"},
		{name: "NaN height", mod: func(in *FitInputs) { in.HeightMm = math.NaN() }, wantErr: "Height must be between 1200 and 2200 mm"},
		{name: "infinite height", mod: func(in *FitInputs) { in.HeightMm = math.Inf(1) }, wantErr: "Height must be between 1200 and 2200 mm"},
		{name: "NaN inseam", mod: func(in *FitInputs) { in.InseamMm = math.NaN() }, wantErr: "Inseam must be between 500 and 1100 mm"},
		{name: "NaN flexibility", mod: func(in *FitInputs) { in.FlexibilityScore = math.NaN() }, wantErr: "Flexibility score must be between 0 and 10"},
		{name: "infinite core", mod: func(in *FitInputs) { in.CoreScore = math.Inf(-1) }, wantErr: "Core score must be between 0 and 10"},
		{name: "NaN torso", mod: func(in *FitInputs) { in.TorsoMm = f(math.NaN()) }, wantErr: "Torso length must be a number"},
		{name: "infinite arm", mod: func(in *FitInputs) { in.ArmMm = f(math.Inf(1)) }, wantErr: "Arm length must be a number"},
		{name: "NaN shoulder", mod: func(in *FitInputs) { in.ShoulderWidthMm = f(math.NaN()) }, wantErr: "Shoulder width must be a number"},
		{name: "NaN foot", mod: func(in *FitInputs) { in.FootLengthMm = f(math.NaN()) }, wantErr: "Foot length must be a number"},
		{name: "NaN femur", mod: func(in *FitInputs) { in.FemurMm = f(math.NaN()) }, wantErr: "Femur length must be a number"},
		{name: "NaN current saddle height", mod: func(in *FitInputs) { in.CurrentSaddleHeightMm = f(math.NaN()) }, wantErr: "Current saddle height must be a number"},
		{name: "NaN current drop", mod: func(in *FitInputs) { in.CurrentDropMm = f(math.NaN()) }, wantErr: "Current drop must be a number"},
		{name: "infinite frame reach", mod: func(in *FitInputs) { in.FrameReachMm = f(math.Inf(1)) }, wantErr: "Frame reach must be a number"},
		{name: "zero frame stack", mod: func(in *FitInputs) { in.FrameStackMm = f(0) }, wantErr: "Frame stack must be positive"},
		{name: "NaN stem angle", mod: func(in *FitInputs) { in.StemAngleDeg = f(math.NaN()) }, wantErr: "Stem angle must be a number"},
		{name: "NaN seat tube angle", mod: func(in *FitInputs) { in.SeatTubeAngleDeg = f(math.NaN()) }, wantErr: "Seat tube angle must be a number"},
		{name: "negative current drop allowed", mod: func(in *FitInputs) { in.CurrentDropMm = f(-15) }, wantValid: true},
		{name: "boundary scores", mod: func(in *FitInputs) { in.FlexibilityScore, in.CoreScore = 0, 10 }, wantValid: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := fixtureInputs()
			tt.mod(&in)
			res := Validate(in)
			assert.Equal(t, tt.wantValid, res.IsValid, "errors: %v", res.Errors)
			if tt.wantErr != "" {
				assert.Contains(t, res.Errors, tt.wantErr)
			}
			if tt.wantWarn != "" {
				require.NotEmpty(t, res.Warnings)
				assert.Contains(t, res.Warnings[0], tt.wantWarn)
			}
			if tt.wantValid && tt.wantWarn == "" {
				assert.Empty(t, res.Warnings)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := error(&ValidationError{Errors: []string{"a", "b"}})
	assert.True(t, errors.Is(err, ErrInvalidInputs))
	assert.Equal(t, "invalid fit inputs: a; b", err.Error())
}

func TestMapAssessmentScores(t *testing.T) {
	want := map[int]float64{1: 2, 2: 4, 3: 5, 4: 7, 5: 9, 0: 5, 6: 5, -1: 5}
	for score, expected := range want {
		assert.Equal(t, expected, MapFlexibilityScore(score), "flexibility %d", score)
		assert.Equal(t, expected, MapCoreScore(score), "core %d", score)
	}
}

func TestCalculateQuickEstimate(t *testing.T) {
	road, err := CalculateQuickEstimate(QuickInput{HeightMm: 1750, InseamMm: 810, Category: CategoryRoad})
	require.NoError(t, err)
	assert.Equal(t, QuickEstimate{EstimatedSaddleHeight: 715, EstimatedFrameSize: 54}, road)

	mtb, err := CalculateQuickEstimate(QuickInput{HeightMm: 1750, InseamMm: 810, Category: CategoryMountain})
	require.NoError(t, err)
	assert.Equal(t, QuickEstimate{EstimatedSaddleHeight: 705, EstimatedFrameSize: 46.5}, mtb)

	unknown, err := CalculateQuickEstimate(QuickInput{HeightMm: 1750, InseamMm: 810, Category: "unicycle"})
	require.NoError(t, err)
	assert.Equal(t, road, unknown)

	_, err = CalculateQuickEstimate(QuickInput{HeightMm: 800, InseamMm: 810})
	assert.ErrorIs(t, err, ErrInvalidInputs)
	_, err = CalculateQuickEstimate(QuickInput{InseamMm: 810})
	assert.ErrorIs(t, err, ErrInvalidInputs)
	_, err = CalculateQuickEstimate(QuickInput{HeightMm: math.NaN(), InseamMm: 810})
	assert.ErrorIs(t, err, ErrInvalidInputs)
	_, err = CalculateQuickEstimate(QuickInput{HeightMm: 1750, InseamMm: math.Inf(1)})
	assert.ErrorIs(t, err, ErrInvalidInputs)
}

func TestCalculate_RejectsNonFinite(t *testing.T) {
	in := fixtureInputs()
	in.HeightMm = math.NaN()
	in.FlexibilityScore = math.NaN()
	_, err := Calculate(in)
	require.ErrorIs(t, err, ErrInvalidInputs)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Errors, 2)
}
