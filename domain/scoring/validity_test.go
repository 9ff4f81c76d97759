package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightscore/domain/assessment"
	"lightscore/domain/catalog"
)

func TestInconsistentPairsDegradeConfidence(t *testing.T) {
	// Answer honestly everywhere, then contradict the re-asks: anchors say
	// "almost always", the reverse re-asks agree that the capacity is lost
	// "almost always" too.
	bank := catalog.Default()
	input := buildRun(t, assessment.QuestionSetFull, 0, func(q catalog.Question) int {
		if q.PairID != "" {
			return catalog.LikertMax // keys to 0, far from the anchor
		}
		if anchored(bank, q) {
			return catalog.LikertMax
		}
		return 2
	})

	out := score(t, input)
	assert.Contains(t, out.DataQuality.Triggers, "reverse_pair_inconsistency")

	var contradictory assessment.EdgeCase
	for _, ec := range out.EdgeCases {
		if ec.Code == "CONTRADICTORY_RESPONSES" {
			contradictory = ec
		}
	}
	assert.True(t, contradictory.Detected)
}

// anchored reports whether q is the anchor of some validity pair.
func anchored(bank *catalog.Bank, q catalog.Question) bool {
	for _, other := range bank.Questions {
		if other.PairID == q.ID {
			return true
		}
	}
	return false
}

func TestStraightLiningThresholdScalesWithRunLength(t *testing.T) {
	// Weekly run: 43 items, threshold floor 10. Nine identical answers in a
	// row must not trip it.
	input := buildRun(t, assessment.QuestionSetWeekly, 0, func(q catalog.Question) int {
		switch q.ID[3] % 3 {
		case 0:
			return 1
		case 1:
			return 2
		default:
			return 3
		}
	})
	out := score(t, input)
	assert.NotContains(t, out.DataQuality.Triggers, "straight_lining")
	assert.Equal(t, assessment.ConfidenceHigh, out.DataQuality.ConfidenceBand)
}

func TestConfidenceBandCounts(t *testing.T) {
	assert.Equal(t, assessment.ConfidenceHigh, confidenceBand(validityResult{}))
	assert.Equal(t, assessment.ConfidenceModerate, confidenceBand(validityResult{
		Triggers: []string{triggerStraightLining},
	}))
	assert.Equal(t, assessment.ConfidenceLow, confidenceBand(validityResult{
		Triggers: []string{triggerStraightLining, triggerFastLatency},
	}))
}

func TestRunsWithoutTimestampsSkipLatencyCheck(t *testing.T) {
	out := score(t, buildRun(t, assessment.QuestionSetFull, 0, midpoint))
	assert.NotContains(t, out.DataQuality.Triggers, "implausible_latency")
}

func TestSubfacetSignalTags(t *testing.T) {
	tests := []struct {
		name  string
		score subfacetScore
		want  []string
	}{
		{"quiet middle", subfacetScore{Shine: 50, Load: 50, ShineKnown: true, LoadKnown: true}, []string{}},
		{"strong and cheap", subfacetScore{Shine: 80, Load: 20, ShineKnown: true, LoadKnown: true}, []string{"high_shine"}},
		{"strong but costly", subfacetScore{Shine: 80, Load: 70, ShineKnown: true, LoadKnown: true}, []string{"high_shine", "high_load", "expensive_shine"}},
		{"depleted", subfacetScore{Shine: 20, Load: 70, ShineKnown: true, LoadKnown: true}, []string{"low_shine", "high_load"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.ElementsMatch(t, tc.want, signalTags(tc.score))
		})
	}
}

func TestContextCancellationStopsScoring(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewEngine(catalog.Default()).Score(ctx, buildRun(t, assessment.QuestionSetFull, 0, midpoint))
	require.Error(t, err)
}
