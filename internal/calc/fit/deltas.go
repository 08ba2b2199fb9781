package fit

// CalculateDeltas returns nil unless at least one current setup value was
// supplied.
func CalculateDeltas(in FitInputs, out FitOutputs) *FitDeltas {
	if in.CurrentSaddleHeightMm == nil && in.CurrentSetbackMm == nil &&
		in.CurrentDropMm == nil && in.CurrentReachMm == nil {
		return nil
	}
	return &FitDeltas{
		SaddleHeightMm: delta(out.SaddleHeightMm, in.CurrentSaddleHeightMm),
		SetbackMm:      delta(out.SaddleSetbackMm, in.CurrentSetbackMm),
		DropMm:         delta(out.BarDropMm, in.CurrentDropMm),
		ReachMm:        delta(out.ReachMm, in.CurrentReachMm),
	}
}

func delta(recommended float64, current *float64) *float64 {
	if current == nil {
		return nil
	}
	d := recommended - *current
	return &d
}
