package assessment

import (
	"lightscore/domain/core"
)

// ============================================================================
// STABLE PRIMITIVES (Canonical, never change)
// ============================================================================

// Polarity describes how an item's raw value maps onto capacity
type Polarity string

const (
	PolarityNormal  Polarity = "normal"
	PolarityReverse Polarity = "reverse"
)

// DisplayType describes how an item was presented to the respondent
type DisplayType string

const (
	DisplayFrequency    DisplayType = "frequency"
	DisplayScenarioCard DisplayType = "scenario_card"
	DisplayReflection   DisplayType = "reflection"
)

// QuestionSet identifies which assigned question list a run covers
type QuestionSet string

const (
	QuestionSetFull   QuestionSet = "full_143"
	QuestionSetWeekly QuestionSet = "weekly_43"
)

// EclipseLevel is the banded composite load level, monotonic in load pressure
type EclipseLevel string

const (
	EclipseLow      EclipseLevel = "LOW"
	EclipseModerate EclipseLevel = "MODERATE"
	EclipseElevated EclipseLevel = "ELEVATED"
	EclipseHigh     EclipseLevel = "HIGH"
)

// EclipseModifier marks contextually compounding load on a single ray
type EclipseModifier string

const (
	ModifierNone      EclipseModifier = "NONE"
	ModifierAmplified EclipseModifier = "AMPLIFIED"
)

// GateMode routes coaching work based on system load
type GateMode string

const (
	GateStabilize  GateMode = "STABILIZE"
	GateBuildRange GateMode = "BUILD_RANGE"
	GateStretch    GateMode = "STRETCH"
)

// ConfidenceBand grades how trustworthy a run's scores are
type ConfidenceBand string

const (
	ConfidenceHigh     ConfidenceBand = "HIGH"
	ConfidenceModerate ConfidenceBand = "MODERATE"
	ConfidenceLow      ConfidenceBand = "LOW"
)

// ActingStatus summarizes the performance-vs-presence check
type ActingStatus string

const (
	ActingClear   ActingStatus = "CLEAR"
	ActingWatch   ActingStatus = "WATCH"
	ActingFlagged ActingStatus = "FLAGGED"
)

// ReportLanguageMode controls how assertively report copy may read
type ReportLanguageMode string

const (
	LanguageStandard           ReportLanguageMode = "STANDARD"
	LanguageDirectional        ReportLanguageMode = "DIRECTIONAL"
	LanguageValidationRequired ReportLanguageMode = "VALIDATION_REQUIRED"
)

// ProfileFlag classifies the overall result shape
type ProfileFlag string

const (
	ProfileStandard         ProfileFlag = "STANDARD"
	ProfileUndifferentiated ProfileFlag = "UNDIFFERENTIATED"
	ProfilePartial          ProfileFlag = "PARTIAL"
)

// SelectionBasis explains why the growth-edge ray was chosen
type SelectionBasis string

const (
	BasisLowestNetEnergy SelectionBasis = "lowest_net_energy"
	BasisMostEclipsed    SelectionBasis = "most_eclipsed_excluding_top_two"
)

// ============================================================================
// RUN INPUT
// ============================================================================

// QuestionResponse is one raw answer as received from the persistence layer.
// Reflection items carry free text and are excluded from numeric aggregation.
type QuestionResponse struct {
	QuestionID  string         `json:"question_id"`
	RayID       string         `json:"ray_id,omitempty"`
	SubfacetID  string         `json:"subfacet_id,omitempty"`
	Value       int            `json:"value"`
	Polarity    Polarity       `json:"polarity"`
	DisplayType DisplayType    `json:"display_type"`
	FreeText    string         `json:"free_text,omitempty"`
	AnsweredAt  core.Timestamp `json:"answered_at,omitzero"`
}

// RunInput is the complete, finalized answer set for one assessment run.
type RunInput struct {
	RunID       core.RunID         `json:"run_id"`
	QuestionSet QuestionSet        `json:"question_set"`
	Responses   []QuestionResponse `json:"responses"`
}

// ============================================================================
// REPORT OUTPUT (AssessmentOutputV1)
// ============================================================================

// PolarityMix splits a subfacet score into its shine and load components.
// The two sides are independently derived and need not sum to 100.
type PolarityMix struct {
	Shine   float64 `json:"shine"`
	Eclipse float64 `json:"eclipse"`
}

// SubfacetOutput is the per-subfacet breakdown inside a RayOutput.
type SubfacetOutput struct {
	SubfacetID  string      `json:"subfacet_id"`
	Label       string      `json:"label"`
	Score       float64     `json:"score"`
	PolarityMix PolarityMix `json:"polarity_mix"`
	SignalTags  []string    `json:"signal_tags"`
}

// RayOutput is one of the nine capacity scores. Every run produces exactly
// nine entries; a ray not covered by the run's question subset gets the
// neutral default and Measured=false.
type RayOutput struct {
	RayID           string                    `json:"ray_id"`
	RayName         string                    `json:"ray_name"`
	Score           float64                   `json:"score"`
	AccessScore     float64                   `json:"access_score"`
	EclipseScore    float64                   `json:"eclipse_score"`
	EclipseModifier EclipseModifier           `json:"eclipse_modifier"`
	NetEnergy       float64                   `json:"net_energy"`
	Measured        bool                      `json:"measured"`
	Subfacets       map[string]SubfacetOutput `json:"subfacets"`
}

// LoadDimension is one of the three composite load dimensions.
type LoadDimension struct {
	Score float64 `json:"score"`
	Note  string  `json:"note"`
}

// EclipseDimensions holds the three fixed load dimensions.
type EclipseDimensions struct {
	EmotionalLoad  LoadDimension `json:"emotional_load"`
	CognitiveLoad  LoadDimension `json:"cognitive_load"`
	RelationalLoad LoadDimension `json:"relational_load"`
}

// DerivedMetrics is the numeric core of the eclipse analysis.
type DerivedMetrics struct {
	RecoveryAccess           float64 `json:"recovery_access"`
	LoadPressure             float64 `json:"load_pressure"`
	EER                      float64 `json:"eer"`
	BRI                      int     `json:"bri"`
	PerformancePresenceDelta float64 `json:"performance_presence_delta"`
}

// Gating routes coaching work; Mode is a pure function of level and BRI.
type Gating struct {
	Mode   GateMode `json:"mode"`
	Reason string   `json:"reason"`
}

// EclipseOutput is the composite stress/load analysis.
type EclipseOutput struct {
	Level          EclipseLevel      `json:"level"`
	Dimensions     EclipseDimensions `json:"dimensions"`
	DerivedMetrics DerivedMetrics    `json:"derived_metrics"`
	Gating         Gating            `json:"gating"`
}

// TopRay is one half of the light signature's top-two pair.
type TopRay struct {
	RayID     string  `json:"ray_id"`
	RayName   string  `json:"ray_name"`
	NetEnergy float64 `json:"net_energy"`
}

// Archetype is one of the 36 pre-registered pairings.
type Archetype struct {
	PairCode         string `json:"pair_code"`
	Name             string `json:"name"`
	Essence          string `json:"essence"`
	Strengths        string `json:"strengths,omitempty"`
	StressDistortion string `json:"stress_distortion,omitempty"`
}

// JustInRay is the selected growth-edge ray.
type JustInRay struct {
	RayID          string         `json:"ray_id"`
	RayName        string         `json:"ray_name"`
	NetEnergy      float64        `json:"net_energy"`
	SelectionBasis SelectionBasis `json:"selection_basis"`
}

// LightSignature pairs the two highest-ranked rays with their archetype.
type LightSignature struct {
	TopTwo    [2]TopRay `json:"top_two"`
	Archetype Archetype `json:"archetype"`
	JustInRay JustInRay `json:"just_in_ray"`
}

// DataQuality is the response-pattern forensics verdict.
type DataQuality struct {
	ConfidenceBand    ConfidenceBand `json:"confidence_band"`
	QualityNotes      string         `json:"quality_notes"`
	Triggers          []string       `json:"triggers"`
	RetakeRecommended bool           `json:"retake_recommended"`
}

// ToolRecommendation is one selected practice tool.
type ToolRecommendation struct {
	ToolID          string   `json:"tool_id"`
	Label           string   `json:"label"`
	WhyNow          string   `json:"why_now"`
	Steps           []string `json:"steps"`
	TimeCostMinutes int      `json:"time_cost_minutes"`
}

// ThirtyDayPlan is the templated development arc.
type ThirtyDayPlan struct {
	Week1     string `json:"week_1"`
	Weeks2to4 string `json:"weeks_2_4"`
}

// Recommendations is the derived coaching content block.
type Recommendations struct {
	ToolReadiness     []ToolRecommendation `json:"tool_readiness"`
	ThirtyDayPlan     ThirtyDayPlan        `json:"thirty_day_plan"`
	CoachingQuestions []string             `json:"coaching_questions"`
	WhatNotToDoYet    []string             `json:"what_not_to_do_yet"`
}

// ExecutiveSignal is one fired entry from the fixed signal catalog.
type ExecutiveSignal struct {
	SignalID string   `json:"signal_id"`
	Label    string   `json:"label"`
	Evidence []string `json:"evidence"`
}

// ExecutiveOutput carries the fired signal statements, in catalog order.
type ExecutiveOutput struct {
	Signals []ExecutiveSignal `json:"signals"`
}

// OutcomeTag is one applied entry from the fixed outcome-tag rule set.
type OutcomeTag struct {
	TagID    string   `json:"tag_id"`
	Label    string   `json:"label"`
	Evidence []string `json:"evidence"`
}

// OutcomeTags accumulates all matching tags.
type OutcomeTags struct {
	Applied []OutcomeTag `json:"applied"`
}

// EdgeCase is one evaluated edge-case predicate. All catalog entries are
// reported with their detected flag so the evaluation is auditable.
type EdgeCase struct {
	Code                 string `json:"code"`
	Detected             bool   `json:"detected"`
	Restriction          string `json:"restriction,omitempty"`
	RequiredNextEvidence string `json:"required_next_evidence,omitempty"`
}

// ActingVsCapacity is the performance-presence delta status block.
type ActingVsCapacity struct {
	Status             ActingStatus       `json:"status"`
	ReportLanguageMode ReportLanguageMode `json:"report_language_mode"`
	Note               string             `json:"note"`
}

// Indices is the summary numeric panel.
type Indices struct {
	EER             float64 `json:"eer"`
	BRI             int     `json:"bri"`
	LoadPressure    float64 `json:"load_pressure"`
	RecoveryAccess  float64 `json:"recovery_access"`
	PPDelta         float64 `json:"performance_presence_delta"`
	MeanNetEnergy   float64 `json:"mean_net_energy"`
	NetEnergySpread float64 `json:"net_energy_spread"`
}

// SchemaVersionV1 tags every assembled report. A rules change ships a new
// version tag; stored reports are never recomputed in place.
const SchemaVersionV1 = "v1.0"

// AssessmentOutputV1 is the immutable, versioned report envelope. It carries
// no wall-clock fields so that repeated scoring of the same input yields
// byte-identical JSON.
type AssessmentOutputV1 struct {
	SchemaVersion    string                `json:"schema_version"`
	RunID            core.RunID            `json:"run_id"`
	QuestionSet      QuestionSet           `json:"question_set"`
	InputFingerprint core.InputFingerprint `json:"input_fingerprint"`
	Rays             map[string]RayOutput  `json:"rays"`
	Eclipse          EclipseOutput         `json:"eclipse"`
	LightSignature   LightSignature        `json:"light_signature"`
	ActingVsCapacity ActingVsCapacity      `json:"acting_vs_capacity"`
	Recommendations  Recommendations       `json:"recommendations"`
	ExecutiveOutput  ExecutiveOutput       `json:"executive_output"`
	OutcomeTags      OutcomeTags           `json:"outcome_tags"`
	EdgeCases        []EdgeCase            `json:"edge_cases"`
	DataQuality      DataQuality           `json:"data_quality"`
	Indices          Indices               `json:"indices"`
	ProfileFlag      ProfileFlag           `json:"profile_flag"`
}
