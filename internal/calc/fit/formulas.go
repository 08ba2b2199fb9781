package fit

import "math"

func CrankLength(ctx CalcContext) float64 {
	inseam := ctx.Inputs.InseamMm
	length := maxCrankMm
	for _, band := range crankBands {
		if inseam < band.belowInseamMm {
			length = band.lengthMm
			break
		}
	}
	// shorter cranks on mountain bikes for pedal clearance
	if ctx.Category == CategoryMountain && inseam >= mtbShortCrankInseamMm && length >= mtbShortCrankThreshold {
		length -= crankStepMm
	}
	return length
}

// SaddleHeight is the LeMond/Hamley baseline (inseam x coefficient) shifted by
// ambition and assessment, clamped to the category envelope.
func SaddleHeight(ctx CalcContext) Measurement {
	point, lo, hi := saddleMultipliers(ctx.Category)
	inseam := ctx.Inputs.InseamMm
	offset := saddleAmbitionOffset(ctx.Ambition)

	raw := inseam*point + offset + saddleFlexCoeff*ctx.FlexIndex + saddleCoreCoeff*ctx.CoreIndex
	return clampRounded(raw, inseam*lo+offset, inseam*hi+offset)
}

func SaddleSetback(ctx CalcContext) float64 {
	return math.Round(setbackBase(ctx.Category) + setbackAmbitionOffset(ctx.Ambition))
}

func BarDrop(ctx CalcContext, saddleHeightMm float64) Measurement {
	ratio := dropRatio(ctx.Category, ctx.Ambition)
	raw := saddleHeightMm*ratio +
		dropFlexCoeff*ctx.FlexIndex +
		dropCoreCoeff*ctx.CoreIndex +
		experienceDropOffset(ctx.Inputs.Experience)
	return clampRounded(raw, saddleHeightMm*math.Max(0, ratio-dropRangeRatio), saddleHeightMm*(ratio+dropRangeRatio))
}

// Reach is the horizontal saddle-to-bar distance.
func Reach(ctx CalcContext) Measurement {
	var base float64
	switch ctx.ReachBasis {
	case ReachMeasured:
		base = measuredReachFactor * ctx.ReachSourceMm
	default:
		base = estimatedReachFactor * ctx.ReachSourceMm
	}
	centre := base + reachCategoryOffset(ctx.Category) + reachAmbitionOffset(ctx.Ambition)
	raw := centre + reachFlexCoeff*ctx.FlexIndex + reachCoreCoeff*ctx.CoreIndex
	return clampRounded(raw, centre-reachHalfWindowMm, centre+reachHalfWindowMm)
}

// SaddleTilt returns degrees, negative meaning nose down.
func SaddleTilt(ctx CalcContext, dropMm float64) float64 {
	tilt := maxDropTiltDeg
	for _, step := range tiltSteps {
		if dropMm < step.belowDropMm {
			tilt = step.tiltDeg
			break
		}
	}
	return tiltBase(ctx.Category) + tilt
}

func CleatOffset(ctx CalcContext) float64 {
	return cleatOffset(ctx.Category, ctx.Ambition)
}

// HandlebarWidth rounds to the nearest stocked bar width.
func HandlebarWidth(ctx CalcContext) float64 {
	shoulder := defaultShoulderMm
	if ctx.Inputs.ShoulderWidthMm != nil {
		shoulder = *ctx.Inputs.ShoulderWidthMm
	}
	rule := barWidthRuleFor(ctx.Category)
	width := clamp(shoulder*rule.multiplier+rule.offsetMm, rule.minMm, rule.maxMm)
	return math.Round(width/barWidthStepMm) * barWidthStepMm
}

// FrameTargets positions the handlebar clamp relative to the bottom bracket
// and derives the frame that reaches it with the neutral cockpit.
type FrameTargets struct {
	StackMm          float64
	ReachMm          float64
	HandlebarStackMm float64
	HandlebarReachMm float64
}

// The saddle's horizontal offset behind the bottom bracket is always the
// recommended setback. A valid seat-tube angle only changes the vertical
// component (SH x sin STA); it does not move the saddle fore-aft.
func CalculateFrameTargets(ctx CalcContext, saddleHeightMm, setbackMm, dropMm, reachMm float64) FrameTargets {
	var saddleY float64
	if ctx.SeatTubeAngleDeg > 0 {
		saddleY = saddleHeightMm * math.Sin(degToRad(ctx.SeatTubeAngleDeg))
	} else {
		saddleY = math.Sqrt(saddleHeightMm*saddleHeightMm - setbackMm*setbackMm)
	}
	barStack := saddleY - dropMm
	barReach := reachMm - setbackMm

	neutral := degToRad(neutralAngleDeg)
	return FrameTargets{
		StackMm:          roundTenth(barStack - (topCapMm + neutralSpacerMm + neutralStemMm*math.Sin(neutral))),
		ReachMm:          roundTenth(barReach - neutralStemMm*math.Cos(neutral)),
		HandlebarStackMm: barStack,
		HandlebarReachMm: barReach,
	}
}

// clampRounded rounds the value and its bounds the same way, so a value
// clamped to a bound equals that bound in the returned range.
func clampRounded(raw, lo, hi float64) Measurement {
	return Measurement{
		Value: math.Round(clamp(raw, lo, hi)),
		Range: Range{Min: math.Round(lo), Max: math.Round(hi)},
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
