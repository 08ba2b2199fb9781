package fit

const AlgorithmVersion = "1.4.0"

// Physiological bounds, millimetres.
const (
	MinHeightMm = 1200.0
	MaxHeightMm = 2200.0
	MinInseamMm = 500.0
	MaxInseamMm = 1100.0

	MinScore = 0.0
	MaxScore = 10.0

	// neutral point of the 0-10 assessment scale
	neutralScore = 5.0
)

// Soft bands. Values outside produce a measurement warning, never an error.
const (
	minInseamRatio = 0.40
	maxInseamRatio = 0.52

	minTorsoMm    = 450.0
	maxTorsoMm    = 750.0
	minArmMm      = 500.0
	maxArmMm      = 800.0
	minShoulderMm = 320.0
	maxShoulderMm = 520.0
	minFootMm     = 220.0
	maxFootMm     = 320.0
	minFemurMm    = 380.0
	maxFemurMm    = 560.0

	minSeatTubeAngleDeg = 68.0
	maxSeatTubeAngleDeg = 78.0
)

type crankBand struct {
	belowInseamMm float64
	lengthMm      float64
}

var crankBands = [...]crankBand{
	{750, 165},
	{800, 167.5},
	{850, 170},
	{890, 172.5},
	{930, 175},
}

const (
	maxCrankMm             = 177.5
	crankStepMm            = 2.5
	mtbShortCrankInseamMm  = 820.0
	mtbShortCrankThreshold = 175.0
)

// saddleMultipliers returns the point multiplier and the clamp multipliers
// applied to inseam.
func saddleMultipliers(c BikeCategory) (point, lo, hi float64) {
	switch c {
	case CategoryGravel:
		return 0.878, 0.855, 0.905
	case CategoryMountain:
		return 0.870, 0.845, 0.895
	case CategoryCity:
		return 0.860, 0.835, 0.885
	default:
		return 0.883, 0.860, 0.910
	}
}

func saddleAmbitionOffset(a Ambition) float64 {
	switch a {
	case AmbitionComfort:
		return -5
	case AmbitionPerformance:
		return 3
	case AmbitionAero:
		return 5
	default:
		return 0
	}
}

const (
	saddleFlexCoeff = 1.0
	saddleCoreCoeff = 0.5
)

func setbackBase(c BikeCategory) float64 {
	switch c {
	case CategoryGravel:
		return 55
	case CategoryMountain:
		return 45
	case CategoryCity:
		return 30
	default:
		return 60
	}
}

func setbackAmbitionOffset(a Ambition) float64 {
	switch a {
	case AmbitionComfort:
		return 10
	case AmbitionPerformance:
		return -5
	case AmbitionAero:
		return -15
	default:
		return 0
	}
}

// dropRatio is the fraction of saddle height the bars sit below the saddle.
func dropRatio(c BikeCategory, a Ambition) float64 {
	ratios := [4]float64{0.02, 0.06, 0.09, 0.12}
	switch c {
	case CategoryGravel:
		ratios = [4]float64{0.01, 0.04, 0.07, 0.09}
	case CategoryMountain:
		ratios = [4]float64{0, 0.02, 0.04, 0.04}
	case CategoryCity:
		ratios = [4]float64{0, 0, 0.01, 0.01}
	}
	return ratios[ambitionRank(a)]
}

const (
	dropRangeRatio = 0.03
	dropFlexCoeff  = 3.0
	dropCoreCoeff  = 2.0
)

func experienceDropOffset(e ExperienceLevel) float64 {
	switch e {
	case ExperienceBeginner:
		return -10
	case ExperienceAdvanced:
		return 5
	default:
		return 0
	}
}

const (
	measuredReachFactor  = 0.45
	estimatedReachFactor = 0.31
	reachHalfWindowMm    = 25.0
	reachFlexCoeff       = 4.0
	reachCoreCoeff       = 2.0
)

func reachCategoryOffset(c BikeCategory) float64 {
	switch c {
	case CategoryGravel:
		return -10
	case CategoryMountain:
		return -15
	case CategoryCity:
		return -40
	default:
		return 0
	}
}

func reachAmbitionOffset(a Ambition) float64 {
	switch a {
	case AmbitionComfort:
		return -20
	case AmbitionPerformance:
		return 15
	case AmbitionAero:
		return 30
	default:
		return 0
	}
}

func tiltBase(c BikeCategory) float64 {
	if c == CategoryMountain {
		return -1
	}
	return 0
}

type tiltStep struct {
	belowDropMm float64
	tiltDeg     float64
}

var tiltSteps = [...]tiltStep{
	{40, 0},
	{60, -1},
	{80, -2},
}

const maxDropTiltDeg = -3.0

func cleatOffset(c BikeCategory, a Ambition) float64 {
	offsets := [4]float64{4, 2, 1, 0}
	switch c {
	case CategoryGravel:
		offsets = [4]float64{6, 4, 3, 2}
	case CategoryMountain:
		offsets = [4]float64{8, 6, 5, 5}
	case CategoryCity:
		offsets = [4]float64{10, 8, 7, 7}
	}
	return offsets[ambitionRank(a)]
}

const (
	defaultShoulderMm = 400.0
	barWidthStepMm    = 20.0
)

type barWidthRule struct {
	multiplier float64
	offsetMm   float64
	minMm      float64
	maxMm      float64
}

func barWidthRuleFor(c BikeCategory) barWidthRule {
	switch c {
	case CategoryGravel:
		return barWidthRule{multiplier: 1.0, offsetMm: 0, minMm: 400, maxMm: 480}
	case CategoryMountain:
		return barWidthRule{multiplier: 1.6, offsetMm: 100, minMm: 680, maxMm: 800}
	case CategoryCity:
		return barWidthRule{multiplier: 1.2, offsetMm: 100, minMm: 520, maxMm: 640}
	default:
		return barWidthRule{multiplier: 1.0, offsetMm: 0, minMm: 360, maxMm: 440}
	}
}

// Cockpit geometry used by the frame targets and the stem solver.
const (
	topCapMm        = 10.0
	neutralStemMm   = 100.0
	neutralAngleDeg = -6.0
	neutralSpacerMm = 15.0
)

var (
	stemLengthOptions    = [...]float64{60, 70, 80, 90, 100, 110, 120, 130}
	mtbStemLengthOptions = [...]float64{40, 50, 60, 70, 80, 90, 100}
	stemAngleOptions     = [...]float64{-17, -10, -6, 0, 6, 10, 17}
	spacerOptions        = [...]float64{0, 5, 10, 15, 20, 25, 30, 35, 40}
)

// Risk thresholds for the warning generator.
const (
	saddleRatioHigh   = 0.90
	saddleRatioLow    = 0.85
	lowIndexThreshold = -2.0
	dropAssessmentMm  = 40.0
	dropRiskMm        = 90.0
	reachRiskMm       = 600.0
	reachCriticalMm   = 650.0
)

// Confidence score increments.
const (
	confidenceBase       = 60
	confidenceTorso      = 8
	confidenceArm        = 8
	confidenceShoulder   = 6
	confidenceFemur      = 6
	confidenceFoot       = 4
	confidenceExperience = 4
	confidenceFrame      = 4
	confidenceMax        = 100
)

func frameSizeFactor(c BikeCategory) float64 {
	switch c {
	case CategoryGravel:
		return 0.655
	case CategoryMountain:
		return 0.575
	case CategoryCity:
		return 0.685
	default:
		return 0.665
	}
}

func ambitionRank(a Ambition) int {
	switch a {
	case AmbitionComfort:
		return 0
	case AmbitionPerformance:
		return 2
	case AmbitionAero:
		return 3
	default:
		return 1
	}
}
