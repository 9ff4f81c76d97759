package catalog

// Scoring engine thresholds. All locked values live here so the numeric
// surface of the engine is auditable in one place.

// Likert bounds for frequency items (Never=0 .. Almost always=4).
const (
	LikertMin = 0
	LikertMax = 4
)

// ScaleFactor converts a 0-4 item mean to the 0-100 reporting scale.
const ScaleFactor = 25.0

// NeutralScore is the documented neutral default for any field of a ray
// that the run's question subset did not measure.
const NeutralScore = 50.0

// Eclipse modifier: AMPLIFIED requires a high local eclipse score plus
// corroboration from at least one independently elevated load dimension.
const (
	AmplifiedEclipseFloor   = 65.0
	AmplifiedDimensionFloor = 60.0
)

// Net-energy penalty factors: net = access - factor * eclipse, clamped.
const (
	EclipsePenaltyFactor          = 0.35
	AmplifiedEclipsePenaltyFactor = 0.5
)

// Load-pressure weights across the three dimensions. Must sum to 1.
const (
	EmotionalLoadWeight  = 0.40
	CognitiveLoadWeight  = 0.35
	RelationalLoadWeight = 0.25
)

// Eclipse level bands on the 0-100 load-pressure range. Bands are
// contiguous and exhaustive: LOW [0,15), MODERATE [15,55),
// ELEVATED [55,78), HIGH [78,100].
const (
	LevelModerateFloor = 15.0
	LevelElevatedFloor = 55.0
	LevelHighFloor     = 78.0
)

// EER smoothing keeps the ratio finite at the extremes (0-4 scale totals).
const EERSmoothing = 5.0

// BRI component thresholds.
const (
	BRIDepletingEER     = 1.0
	BRIAmplifiedRays    = 2
	BRIRecoveryLowWater = 30.0
)

// Gating thresholds: STABILIZE when bri >= 3 or level HIGH; STRETCH when
// bri <= 1 and level LOW; BUILD_RANGE otherwise.
const (
	GateStabilizeBRI = 3
	GateStretchBRI   = 1
)

// Recovery access derivation.
const RecoveryAmplifiedPenalty = 8.0

// Performance-presence delta flag threshold (0-100 scale).
const PPDElevated = 25.0

// Data-quality forensics.
const (
	StraightlineMinRun      = 10   // identical-value run floor
	StraightlineRunDivisor  = 8    // threshold = max(floor, n/divisor)
	LatencyFloorSeconds     = 1.25 // plausible reading floor per item
	LatencyFastFraction     = 0.20 // trigger when >= 20% of gaps are implausible
	LatencyPilotMedianSecs  = 6.0  // pilot median inter-answer gap
	LatencyPilotLogStdDev   = 0.75 // log-normal sigma fitted on pilot data
	InconsistencyPairDiff   = 3    // |normal - reverse| on the 0-4 scale
	InconsistencyFlagPairs  = 2    // pairs in disagreement before the flag
	ConfidenceLowTriggers   = 2    // triggers needed for a LOW band
)

// Flat-profile detection: standard deviation of net energy (0-100 scale).
const FlatProfileSD = 5.0

// Subfacet signal-tag thresholds (0-100 scale).
const (
	SubfacetHighShineFloor = 75.0
	SubfacetHighLoadFloor  = 65.0
	SubfacetLowShineCeil   = 35.0
)

// Edge-case thresholds (0-100 scale unless noted).
const (
	EdgeExpensiveShineFloor   = 75.0
	EdgeExpensiveEclipseFloor = 62.5
	EdgeSuppressedPresence    = 50.0
	EdgeHighRayFloor          = 75.0
	EdgeHighRayCount          = 4
	EdgePerfectShineFloor     = 80.0
	EdgePolarizedTopFloor     = 85.0
	EdgePolarizedSecondCeil   = 60.0
	EdgeAmbiguityCount        = 3
)
