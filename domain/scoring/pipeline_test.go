package scoring

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightscore/domain/assessment"
	"lightscore/domain/catalog"
	"lightscore/domain/core"
)

// buildRun answers every assigned item of a set. Numeric values come from
// pick; reflection prompts get boilerplate text. When step > 0, answers
// carry timestamps spaced step seconds apart.
func buildRun(t *testing.T, set assessment.QuestionSet, step time.Duration, pick func(q catalog.Question) int) assessment.RunInput {
	t.Helper()
	bank := catalog.Default()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	var responses []assessment.QuestionResponse
	for i, q := range bank.QuestionsFor(set) {
		resp := assessment.QuestionResponse{
			QuestionID:  q.ID,
			RayID:       q.RayID,
			SubfacetID:  q.SubfacetID,
			Polarity:    q.Polarity,
			DisplayType: q.DisplayType,
		}
		if q.DisplayType == assessment.DisplayReflection {
			resp.FreeText = "a grounded written answer"
		} else {
			resp.Value = pick(q)
		}
		if step > 0 {
			resp.AnsweredAt = core.NewTimestamp(base.Add(time.Duration(i) * step))
		}
		responses = append(responses, resp)
	}
	return assessment.RunInput{
		RunID:       core.RunID("run-test"),
		QuestionSet: set,
		Responses:   responses,
	}
}

func midpoint(q catalog.Question) int { return 2 }

// maxShine answers every item in the most-resourced direction: shine items
// at full capacity, load items at zero.
func maxShine(q catalog.Question) int {
	if q.Polarity == assessment.PolarityReverse {
		return catalog.LikertMin // keys back to full capacity
	}
	if q.Orientation == catalog.OrientationLoad {
		return catalog.LikertMin
	}
	return catalog.LikertMax
}

func score(t *testing.T, input assessment.RunInput) *assessment.AssessmentOutputV1 {
	t.Helper()
	out, err := NewEngine(catalog.Default()).Score(context.Background(), input)
	require.NoError(t, err)
	return out
}

func TestMidpointRun(t *testing.T) {
	out := score(t, buildRun(t, assessment.QuestionSetFull, 0, midpoint))

	require.Len(t, out.Rays, catalog.RayCount)
	for rayID, ray := range out.Rays {
		assert.True(t, ray.Measured, "ray %s", rayID)
		assert.InDelta(t, 50.0, ray.AccessScore, 1e-9)
		assert.InDelta(t, 50.0, ray.EclipseScore, 1e-9)
		assert.Equal(t, assessment.ModifierNone, ray.EclipseModifier)
		assert.InDelta(t, 50.0-catalog.EclipsePenaltyFactor*50.0, ray.NetEnergy, 1e-9)
	}

	assert.InDelta(t, 50.0, out.Eclipse.DerivedMetrics.LoadPressure, 1e-9)
	assert.Equal(t, assessment.EclipseModerate, out.Eclipse.Level)

	// Equal net energies everywhere: the ranking falls back to ray priority.
	assert.Equal(t, "R1", out.LightSignature.TopTwo[0].RayID)
	assert.Equal(t, "R2", out.LightSignature.TopTwo[1].RayID)
	assert.Equal(t, "R1-R2", out.LightSignature.Archetype.PairCode)
	assert.Equal(t, "Strategic Optimist", out.LightSignature.Archetype.Name)
	assert.Equal(t, "R9", out.LightSignature.JustInRay.RayID)

	// A perfectly uniform answer sheet is itself a pattern signal.
	assert.Contains(t, out.DataQuality.Triggers, "straight_lining")
	assert.Equal(t, assessment.ProfileUndifferentiated, out.ProfileFlag)
}

func TestMidpointRunWithFastTimestampsDropsConfidenceLow(t *testing.T) {
	out := score(t, buildRun(t, assessment.QuestionSetFull, 500*time.Millisecond, midpoint))

	assert.Contains(t, out.DataQuality.Triggers, "straight_lining")
	assert.Contains(t, out.DataQuality.Triggers, "implausible_latency")
	assert.Equal(t, assessment.ConfidenceLow, out.DataQuality.ConfidenceBand)
	assert.True(t, out.DataQuality.RetakeRecommended)
}

func TestMaxShineRun(t *testing.T) {
	out := score(t, buildRun(t, assessment.QuestionSetFull, 0, maxShine))

	for rayID, ray := range out.Rays {
		assert.InDelta(t, 100.0, ray.AccessScore, 1e-9, "ray %s", rayID)
		assert.InDelta(t, 0.0, ray.EclipseScore, 1e-9, "ray %s", rayID)
		assert.InDelta(t, 100.0, ray.NetEnergy, 1e-9, "ray %s", rayID)
	}
	assert.Equal(t, assessment.EclipseLow, out.Eclipse.Level)
	assert.InDelta(t, 0.0, out.Eclipse.DerivedMetrics.LoadPressure, 1e-9)
	assert.Equal(t, 0, out.Eclipse.DerivedMetrics.BRI)
	assert.Greater(t, out.Indices.EER, 1.0)
	assert.Equal(t, assessment.GateStretch, out.Eclipse.Gating.Mode)
}

func TestScoringIsDeterministic(t *testing.T) {
	input := buildRun(t, assessment.QuestionSetFull, 8*time.Second, func(q catalog.Question) int {
		return len(q.ID) % (catalog.LikertMax + 1)
	})

	a := score(t, input)
	b := score(t, input)
	aJSON, err := json.Marshal(a)
	require.NoError(t, err)
	bJSON, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, aJSON, bJSON, "same input must yield byte-identical reports")
}

func TestResponseOrderDoesNotAffectOutput(t *testing.T) {
	input := buildRun(t, assessment.QuestionSetFull, 0, func(q catalog.Question) int {
		return int(q.ID[2]) % (catalog.LikertMax + 1)
	})
	shuffled := input
	shuffled.Responses = make([]assessment.QuestionResponse, len(input.Responses))
	for i, r := range input.Responses {
		shuffled.Responses[len(input.Responses)-1-i] = r
	}

	a := score(t, input)
	b := score(t, shuffled)
	assert.Equal(t, a.InputFingerprint, b.InputFingerprint)

	aJSON, _ := json.Marshal(a)
	bJSON, _ := json.Marshal(b)
	assert.Equal(t, aJSON, bJSON)
}

func TestWeeklyRunNeutralDimensions(t *testing.T) {
	out := score(t, buildRun(t, assessment.QuestionSetWeekly, 0, func(q catalog.Question) int {
		if q.Polarity == assessment.PolarityReverse {
			return 1
		}
		return 3
	}))

	assert.Equal(t, assessment.QuestionSetWeekly, out.QuestionSet)
	assert.InDelta(t, catalog.NeutralScore, out.Eclipse.Dimensions.EmotionalLoad.Score, 1e-9)
	assert.Contains(t, out.Eclipse.Dimensions.EmotionalLoad.Note, "not measured")
	for rayID, ray := range out.Rays {
		assert.True(t, ray.Measured, "weekly set covers every ray (%s)", rayID)
	}
}

func TestAmplifiedModifierAndPenalty(t *testing.T) {
	// R4 carries maximal local load; the eclipse clusters are elevated
	// enough to corroborate.
	input := buildRun(t, assessment.QuestionSetFull, 0, func(q catalog.Question) int {
		if q.Dimension != "" {
			return 3 // dimensions at 75
		}
		if q.RayID == "R4" && q.Orientation == catalog.OrientationLoad {
			return catalog.LikertMax
		}
		if q.Orientation == catalog.OrientationLoad {
			return 1
		}
		if q.Polarity == assessment.PolarityReverse {
			return 1
		}
		return 3
	})
	out := score(t, input)

	r4 := out.Rays["R4"]
	require.Equal(t, assessment.ModifierAmplified, r4.EclipseModifier)
	assert.InDelta(t, 100.0, r4.EclipseScore, 1e-9)
	assert.InDelta(t, clampForTest(r4.AccessScore-catalog.AmplifiedEclipsePenaltyFactor*r4.EclipseScore), r4.NetEnergy, 1e-9)

	r1 := out.Rays["R1"]
	assert.Equal(t, assessment.ModifierNone, r1.EclipseModifier)
	assert.InDelta(t, clampForTest(r1.AccessScore-catalog.EclipsePenaltyFactor*r1.EclipseScore), r1.NetEnergy, 1e-9)
}

func clampForTest(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func TestElevatedLevelCountsTowardBurnoutRisk(t *testing.T) {
	// Emotional cluster at 3, everything else midpoint: pressure lands at
	// 60 (ELEVATED) while no other depletion marker applies.
	out := score(t, buildRun(t, assessment.QuestionSetFull, 0, func(q catalog.Question) int {
		if q.Dimension == catalog.DimEmotional {
			return 3
		}
		return midpoint(q)
	}))

	require.Equal(t, assessment.EclipseElevated, out.Eclipse.Level)
	assert.InDelta(t, 60.0, out.Eclipse.DerivedMetrics.LoadPressure, 1e-9)
	assert.InDelta(t, 40.0, out.Eclipse.DerivedMetrics.RecoveryAccess, 1e-9)
	assert.Equal(t, 1, out.Eclipse.DerivedMetrics.BRI, "elevated level is a depletion marker on its own")
}

func TestEnergyEfficiencyComesFromRayMeans(t *testing.T) {
	// Mean access equals mean eclipse at the midpoint, so the ratio must be
	// exactly 1 regardless of how many shine vs load items the bank carries.
	midRun := score(t, buildRun(t, assessment.QuestionSetFull, 0, midpoint))
	assert.InDelta(t, 1.0, midRun.Indices.EER, 1e-9)
	// Exactly balanced energy is not yet depleting.
	assert.Equal(t, 0, midRun.Eclipse.DerivedMetrics.BRI)

	shineRun := score(t, buildRun(t, assessment.QuestionSetFull, 0, maxShine))
	wantTop := (100.0/catalog.ScaleFactor + catalog.EERSmoothing) / catalog.EERSmoothing
	assert.InDelta(t, wantTop, shineRun.Indices.EER, 1e-9)
}

func TestRawScoreBlendsShineAndLoadItems(t *testing.T) {
	out := score(t, buildRun(t, assessment.QuestionSetFull, 0, maxShine))

	// Two shine items keyed to 4 and one load item keyed to 0 per subfacet:
	// the raw blend sits at 2/3 of the scale while access reads full.
	for rayID, ray := range out.Rays {
		assert.InDelta(t, 200.0/3.0, ray.Score, 1e-9, "ray %s", rayID)
		assert.NotEqual(t, ray.AccessScore, ray.Score, "ray %s raw must stay distinct from access", rayID)
	}
}

func TestEclipseLevelBandsPartitionTheRange(t *testing.T) {
	tests := []struct {
		pressure float64
		want     assessment.EclipseLevel
	}{
		{0, assessment.EclipseLow},
		{14.999, assessment.EclipseLow},
		{15, assessment.EclipseModerate},
		{54.999, assessment.EclipseModerate},
		{55, assessment.EclipseElevated},
		{77.999, assessment.EclipseElevated},
		{78, assessment.EclipseHigh},
		{100, assessment.EclipseHigh},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, eclipseLevel(tc.pressure), "pressure %.3f", tc.pressure)
	}
}

func TestLoadMonotonicity(t *testing.T) {
	low := score(t, buildRun(t, assessment.QuestionSetFull, 0, func(q catalog.Question) int {
		if q.Dimension != "" {
			return 1
		}
		return midpoint(q)
	}))
	high := score(t, buildRun(t, assessment.QuestionSetFull, 0, func(q catalog.Question) int {
		if q.Dimension != "" {
			return 3
		}
		return midpoint(q)
	}))
	assert.Greater(t, high.Eclipse.DerivedMetrics.LoadPressure, low.Eclipse.DerivedMetrics.LoadPressure)
	assert.LessOrEqual(t, high.Eclipse.DerivedMetrics.RecoveryAccess, low.Eclipse.DerivedMetrics.RecoveryAccess)
}

func TestNormalizeRejections(t *testing.T) {
	bank := catalog.Default()
	engine := NewEngine(bank)
	ctx := context.Background()

	t.Run("out of range value", func(t *testing.T) {
		input := buildRun(t, assessment.QuestionSetFull, 0, midpoint)
		input.Responses[0].Value = catalog.LikertMax + 1
		_, err := engine.Score(ctx, input)
		assert.ErrorIs(t, err, core.ErrInvalidResponse)
	})

	t.Run("unknown question", func(t *testing.T) {
		input := buildRun(t, assessment.QuestionSetFull, 0, midpoint)
		input.Responses[0].QuestionID = "Q999"
		_, err := engine.Score(ctx, input)
		assert.ErrorIs(t, err, core.ErrInvalidResponse)
	})

	t.Run("conflicting duplicate answer", func(t *testing.T) {
		input := buildRun(t, assessment.QuestionSetFull, 0, midpoint)
		conflict := input.Responses[0]
		conflict.Value = catalog.LikertMax
		input.Responses = append(input.Responses, conflict)
		_, err := engine.Score(ctx, input)
		assert.ErrorIs(t, err, core.ErrInvalidResponse)
	})

	t.Run("identical duplicate answer is accepted", func(t *testing.T) {
		input := buildRun(t, assessment.QuestionSetFull, 0, midpoint)
		input.Responses = append(input.Responses, input.Responses[0])
		_, err := engine.Score(ctx, input)
		assert.NoError(t, err)
	})

	t.Run("missing required item", func(t *testing.T) {
		input := buildRun(t, assessment.QuestionSetFull, 0, midpoint)
		input.Responses = input.Responses[1:]
		_, err := engine.Score(ctx, input)
		assert.ErrorIs(t, err, core.ErrIncompleteRun)
	})

	t.Run("unanswered reflections are not errors", func(t *testing.T) {
		input := buildRun(t, assessment.QuestionSetFull, 0, midpoint)
		kept := input.Responses[:0]
		for _, r := range input.Responses {
			if r.DisplayType != assessment.DisplayReflection {
				kept = append(kept, r)
			}
		}
		input.Responses = kept
		out, err := engine.Score(ctx, input)
		require.NoError(t, err)

		var missingReflection assessment.EdgeCase
		for _, ec := range out.EdgeCases {
			if ec.Code == "MISSING_REFLECTION" {
				missingReflection = ec
			}
		}
		assert.True(t, missingReflection.Detected)
	})

	t.Run("weekly item not assigned to full set is rejected when duplicated", func(t *testing.T) {
		input := buildRun(t, assessment.QuestionSetWeekly, 0, midpoint)
		input.Responses = append(input.Responses, assessment.QuestionResponse{
			QuestionID: "Q109", // eclipse cluster item, full set only
			Value:      2,
		})
		_, err := engine.Score(ctx, input)
		assert.ErrorIs(t, err, core.ErrInvalidResponse)
	})
}

func TestEdgeCasesAlwaysReportAllCodes(t *testing.T) {
	out := score(t, buildRun(t, assessment.QuestionSetFull, 0, midpoint))
	require.Len(t, out.EdgeCases, 10)
	codes := map[string]bool{}
	for _, ec := range out.EdgeCases {
		codes[ec.Code] = true
		if !ec.Detected {
			assert.Empty(t, ec.Restriction, "undetected %s must carry no restriction", ec.Code)
		}
	}
	for _, want := range []string{
		"EXPENSIVE_STRENGTH", "TRUTH_DETECTOR_SUPPRESSED", "PERFECT_SELF_REPORT",
		"CONTRADICTORY_RESPONSES", "FLAT_PROFILE", "MISSING_REFLECTION",
		"PARTIAL_COMPLETION", "EXTREME_POLARIZATION", "HIGH_LOAD_INTERFERENCE",
		"UNRESOLVED_AMBIGUITY",
	} {
		assert.True(t, codes[want], "missing edge case %s", want)
	}
}

func TestRecommendationsFollowGrowthEdge(t *testing.T) {
	out := score(t, buildRun(t, assessment.QuestionSetFull, 0, midpoint))
	justIn := out.LightSignature.JustInRay
	pair := catalog.ToolsForRay(justIn.RayID)

	require.Len(t, out.Recommendations.ToolReadiness, 2)
	assert.Equal(t, pair[0].ID, out.Recommendations.ToolReadiness[0].ToolID)
	assert.Equal(t, pair[1].ID, out.Recommendations.ToolReadiness[1].ToolID)
	assert.NotEmpty(t, out.Recommendations.ThirtyDayPlan.Week1)
	assert.NotEmpty(t, out.Recommendations.ThirtyDayPlan.Weeks2to4)
	assert.NotEmpty(t, out.Recommendations.CoachingQuestions)
}
