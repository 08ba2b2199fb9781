package fit

import "math"

type StemSolution struct {
	StemLengthMm  float64 `json:"stemLengthMm"`
	StemAngleDeg  float64 `json:"stemAngleDeg"`
	SpacerStackMm float64 `json:"spacerStackMm"`
}

// DefaultStem is returned when there is no frame to solve against.
var DefaultStem = StemSolution{
	StemLengthMm:  neutralStemMm,
	StemAngleDeg:  neutralAngleDeg,
	SpacerStackMm: neutralSpacerMm,
}

// HandlebarPosition is where the bar clamp ends up for a frame and cockpit.
// Negative angles point the stem down.
func HandlebarPosition(frameStackMm, frameReachMm float64, s StemSolution) (stackMm, reachMm float64) {
	rad := degToRad(s.StemAngleDeg)
	reachMm = frameReachMm + s.StemLengthMm*math.Cos(rad)
	stackMm = frameStackMm + topCapMm + s.SpacerStackMm + s.StemLengthMm*math.Sin(rad)
	return stackMm, reachMm
}

// SolveStem searches every stem length, angle and spacer combination for the
// handlebar position closest (Euclidean) to the target. Equal distances go to
// the combination closest to the neutral cockpit, then to the shorter stem,
// lower angle and fewer spacers.
func SolveStem(category BikeCategory, targetStackMm, targetReachMm float64, frameStackMm, frameReachMm *float64) StemSolution {
	if frameStackMm == nil || frameReachMm == nil || *frameStackMm <= 0 || *frameReachMm <= 0 {
		return DefaultStem
	}

	lengths := stemLengthOptions[:]
	if category == CategoryMountain {
		lengths = mtbStemLengthOptions[:]
	}

	best := DefaultStem
	bestDist := math.Inf(1)
	for _, length := range lengths {
		for _, angle := range stemAngleOptions {
			for _, spacer := range spacerOptions {
				cand := StemSolution{StemLengthMm: length, StemAngleDeg: angle, SpacerStackMm: spacer}
				stack, reach := HandlebarPosition(*frameStackMm, *frameReachMm, cand)
				dist := math.Hypot(stack-targetStackMm, reach-targetReachMm)
				if dist < bestDist || (dist == bestDist && preferStem(cand, best)) {
					best, bestDist = cand, dist
				}
			}
		}
	}
	return best
}

// preferStem is a strict total order over candidates.
func preferStem(a, b StemSolution) bool {
	ka := [...]float64{
		math.Abs(a.StemLengthMm - neutralStemMm),
		math.Abs(a.StemAngleDeg - neutralAngleDeg),
		math.Abs(a.SpacerStackMm - neutralSpacerMm),
		a.StemLengthMm, a.StemAngleDeg, a.SpacerStackMm,
	}
	kb := [...]float64{
		math.Abs(b.StemLengthMm - neutralStemMm),
		math.Abs(b.StemAngleDeg - neutralAngleDeg),
		math.Abs(b.SpacerStackMm - neutralSpacerMm),
		b.StemLengthMm, b.StemAngleDeg, b.SpacerStackMm,
	}
	for i := range ka {
		if ka[i] != kb[i] {
			return ka[i] < kb[i]
		}
	}
	return false
}
