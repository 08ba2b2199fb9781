package fit

// CalcContext is derived once per calculation and shared read-only by every
// formula component.
type CalcContext struct {
	Inputs   FitInputs
	Category BikeCategory
	// Ambition after the category remap, see EffectiveAmbition.
	Ambition  Ambition
	FlexIndex float64
	CoreIndex float64

	ReachBasis ReachBasis
	// torso + arm when ReachBasis is measured, height otherwise
	ReachSourceMm float64

	// zero when absent or out of range
	SeatTubeAngleDeg float64
}

// EffectiveAmbition folds aero into performance for categories where an aero
// posture does not exist.
func EffectiveAmbition(c BikeCategory, a Ambition) Ambition {
	if a == AmbitionAero && (c == CategoryMountain || c == CategoryCity) {
		return AmbitionPerformance
	}
	return a
}

// NewCalcContext expects inputs that already passed Validate.
func NewCalcContext(in FitInputs) CalcContext {
	ctx := CalcContext{
		Inputs:        in,
		Category:      in.Category,
		Ambition:      EffectiveAmbition(in.Category, in.Ambition),
		FlexIndex:     in.FlexibilityScore - neutralScore,
		CoreIndex:     in.CoreScore - neutralScore,
		ReachBasis:    ReachEstimated,
		ReachSourceMm: in.HeightMm,
	}
	if measuredReachUsable(in) {
		ctx.ReachBasis = ReachMeasured
		ctx.ReachSourceMm = *in.TorsoMm + *in.ArmMm
	}
	if a := in.SeatTubeAngleDeg; a != nil && validSeatTubeAngle(*a) {
		ctx.SeatTubeAngleDeg = *a
	}
	return ctx
}

// measuredReachUsable is false when torso or arm falls outside its typical
// band; such measurements fall back to the height estimate.
func measuredReachUsable(in FitInputs) bool {
	if in.TorsoMm == nil || in.ArmMm == nil {
		return false
	}
	torso, arm := *in.TorsoMm, *in.ArmMm
	return torso >= minTorsoMm && torso <= maxTorsoMm && arm >= minArmMm && arm <= maxArmMm
}
