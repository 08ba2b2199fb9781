package fit

type BikeCategory string

const (
	CategoryRoad     BikeCategory = "road"
	CategoryGravel   BikeCategory = "gravel"
	CategoryMountain BikeCategory = "mountain"
	CategoryCity     BikeCategory = "city"
)

// Ambition is ordered from least to most aggressive.
type Ambition string

const (
	AmbitionComfort     Ambition = "comfort"
	AmbitionBalanced    Ambition = "balanced"
	AmbitionPerformance Ambition = "performance"
	AmbitionAero        Ambition = "aero"
)

type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
)

// FitInputs is everything the engine needs for one calculation. Scores are
// on the internal 0-10 scale; use MapFlexibilityScore/MapCoreScore to convert
// the 1-5 self assessment first.
type FitInputs struct {
	Category         BikeCategory `json:"category" yaml:"category"`
	Ambition         Ambition     `json:"ambition" yaml:"ambition"`
	HeightMm         float64      `json:"heightMm" yaml:"heightMm"`
	InseamMm         float64      `json:"inseamMm" yaml:"inseamMm"`
	FlexibilityScore float64      `json:"flexibilityScore" yaml:"flexibilityScore"`
	CoreScore        float64      `json:"coreScore" yaml:"coreScore"`

	TorsoMm         *float64        `json:"torsoMm,omitempty" yaml:"torsoMm,omitempty"`
	ArmMm           *float64        `json:"armMm,omitempty" yaml:"armMm,omitempty"`
	ShoulderWidthMm *float64        `json:"shoulderWidthMm,omitempty" yaml:"shoulderWidthMm,omitempty"`
	FootLengthMm    *float64        `json:"footLengthMm,omitempty" yaml:"footLengthMm,omitempty"`
	FemurMm         *float64        `json:"femurMm,omitempty" yaml:"femurMm,omitempty"`
	Experience      ExperienceLevel `json:"experience,omitempty" yaml:"experience,omitempty"`

	CurrentSaddleHeightMm *float64 `json:"currentSaddleHeightMm,omitempty" yaml:"currentSaddleHeightMm,omitempty"`
	CurrentSetbackMm      *float64 `json:"currentSetbackMm,omitempty" yaml:"currentSetbackMm,omitempty"`
	CurrentDropMm         *float64 `json:"currentDropMm,omitempty" yaml:"currentDropMm,omitempty"`
	CurrentReachMm        *float64 `json:"currentReachMm,omitempty" yaml:"currentReachMm,omitempty"`

	FrameStackMm     *float64 `json:"frameStackMm,omitempty" yaml:"frameStackMm,omitempty"`
	FrameReachMm     *float64 `json:"frameReachMm,omitempty" yaml:"frameReachMm,omitempty"`
	SeatTubeAngleDeg *float64 `json:"seatTubeAngleDeg,omitempty" yaml:"seatTubeAngleDeg,omitempty"`

	// The rider's current cockpit. Only echoed in reports; the solver always
	// searches the full option set.
	StemLengthMm  *float64 `json:"stemLengthMm,omitempty" yaml:"stemLengthMm,omitempty"`
	StemAngleDeg  *float64 `json:"stemAngleDeg,omitempty" yaml:"stemAngleDeg,omitempty"`
	SpacerStackMm *float64 `json:"spacerStackMm,omitempty" yaml:"spacerStackMm,omitempty"`
}

type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

func (r Range) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// Measurement is a clamped value together with the envelope it was clamped to.
type Measurement struct {
	Value float64
	Range Range
}

type WarningType string

const (
	WarningSaddleTooHigh WarningType = "saddle_too_high"
	WarningSaddleTooLow  WarningType = "saddle_too_low"
	WarningDropRisk      WarningType = "drop_risk"
	WarningReachRisk     WarningType = "reach_risk"
	WarningFlexibility   WarningType = "flexibility_warning"
	WarningCore          WarningType = "core_warning"
	WarningMeasurement   WarningType = "measurement_warning"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

type FitWarning struct {
	Type           WarningType `json:"type" yaml:"type"`
	Severity       Severity    `json:"severity" yaml:"severity"`
	Message        string      `json:"message" yaml:"message"`
	Recommendation string      `json:"recommendation" yaml:"recommendation"`
}

// FitDeltas holds recommended minus current. A field is nil when the rider
// did not report the matching current value.
type FitDeltas struct {
	SaddleHeightMm *float64 `json:"saddleHeightMm,omitempty" yaml:"saddleHeightMm,omitempty"`
	SetbackMm      *float64 `json:"setbackMm,omitempty" yaml:"setbackMm,omitempty"`
	DropMm         *float64 `json:"dropMm,omitempty" yaml:"dropMm,omitempty"`
	ReachMm        *float64 `json:"reachMm,omitempty" yaml:"reachMm,omitempty"`
}

type ReachBasis string

const (
	ReachMeasured  ReachBasis = "measured"
	ReachEstimated ReachBasis = "estimated"
)

type FitOutputs struct {
	CrankLengthMm     float64    `json:"crankLengthMm" yaml:"crankLengthMm"`
	SaddleHeightMm    float64    `json:"saddleHeightMm" yaml:"saddleHeightMm"`
	SaddleHeightRange Range      `json:"saddleHeightRange" yaml:"saddleHeightRange"`
	SaddleSetbackMm   float64    `json:"saddleSetbackMm" yaml:"saddleSetbackMm"`
	SaddleTiltDeg     float64    `json:"saddleTiltDeg" yaml:"saddleTiltDeg"`
	BarDropMm         float64    `json:"barDropMm" yaml:"barDropMm"`
	BarDropRange      Range      `json:"barDropRange" yaml:"barDropRange"`
	ReachMm           float64    `json:"reachMm" yaml:"reachMm"`
	ReachRange        Range      `json:"reachRange" yaml:"reachRange"`
	ReachBasis        ReachBasis `json:"reachBasis" yaml:"reachBasis"`
	CleatOffsetMm     float64    `json:"cleatOffsetMm" yaml:"cleatOffsetMm"`
	HandlebarWidthMm  float64    `json:"handlebarWidthMm" yaml:"handlebarWidthMm"`

	FrameStackTargetMm float64 `json:"frameStackTargetMm" yaml:"frameStackTargetMm"`
	FrameReachTargetMm float64 `json:"frameReachTargetMm" yaml:"frameReachTargetMm"`
	StemLengthMm       float64 `json:"stemLengthMm" yaml:"stemLengthMm"`
	StemAngleDeg       float64 `json:"stemAngleDeg" yaml:"stemAngleDeg"`
	SpacerStackMm      float64 `json:"spacerStackMm" yaml:"spacerStackMm"`

	ConfidenceScore  int          `json:"confidenceScore" yaml:"confidenceScore"`
	AlgorithmVersion string       `json:"algorithmVersion" yaml:"algorithmVersion"`
	Warnings         []FitWarning `json:"warnings" yaml:"warnings"`
	Deltas           *FitDeltas   `json:"deltas,omitempty" yaml:"deltas,omitempty"`
}
