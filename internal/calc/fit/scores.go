package fit

// MapFlexibilityScore converts the 1-5 self assessment to the 0-10 scale.
// 3 maps to the neutral midpoint so an average rider gets no adjustment.
func MapFlexibilityScore(score int) float64 {
	return mapAssessment(score)
}

func MapCoreScore(score int) float64 {
	return mapAssessment(score)
}

func mapAssessment(score int) float64 {
	switch score {
	case 1:
		return 2
	case 2:
		return 4
	case 3:
		return 5
	case 4:
		return 7
	case 5:
		return 9
	default:
		return neutralScore
	}
}
