package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lightscore/domain/assessment"
)

func TestBankItemCounts(t *testing.T) {
	bank := BuildBank()
	require.Len(t, bank.Questions, FullItemCount)

	var ray, eclipse, validity, reflection int
	for _, q := range bank.Questions {
		switch {
		case q.RayID != "":
			ray++
		case q.Dimension != "":
			eclipse++
		case q.PairID != "":
			validity++
		case q.DisplayType == assessment.DisplayReflection:
			reflection++
		}
	}
	assert.Equal(t, 108, ray)
	assert.Equal(t, 18, eclipse)
	assert.Equal(t, 9, validity)
	assert.Equal(t, 8, reflection)
}

func TestBankIDsSequentialAndUnique(t *testing.T) {
	bank := BuildBank()
	seen := map[string]bool{}
	for _, q := range bank.Questions {
		assert.False(t, seen[q.ID], "duplicate id %s", q.ID)
		seen[q.ID] = true
	}
	assert.Equal(t, "Q001", bank.Questions[0].ID)
	assert.Equal(t, "Q143", bank.Questions[len(bank.Questions)-1].ID)
}

func TestEverySubfacetHasTwoShineOneLoad(t *testing.T) {
	bank := BuildBank()
	type mix struct{ shine, load int }
	counts := map[string]*mix{}
	for _, q := range bank.Questions {
		if q.RayID == "" {
			continue
		}
		m, ok := counts[q.SubfacetID]
		if !ok {
			m = &mix{}
			counts[q.SubfacetID] = m
		}
		if q.Orientation == OrientationShine {
			m.shine++
		} else {
			m.load++
		}
	}
	require.Len(t, counts, 36)
	for sf, m := range counts {
		assert.Equal(t, 2, m.shine, "subfacet %s shine items", sf)
		assert.Equal(t, 1, m.load, "subfacet %s load items", sf)
	}
}

func TestValidityPairsResolveToAnchors(t *testing.T) {
	bank := BuildBank()
	for _, q := range bank.Questions {
		if q.PairID == "" {
			continue
		}
		anchor, ok := bank.Lookup(q.PairID)
		require.True(t, ok, "pair anchor %s missing", q.PairID)
		assert.Equal(t, assessment.PolarityNormal, anchor.Polarity)
		assert.Equal(t, assessment.PolarityReverse, q.Polarity)
		assert.NotEmpty(t, anchor.RayID)
	}
}

func TestWeeklySetShapeAndDeterminism(t *testing.T) {
	a := BuildBank().QuestionsFor(assessment.QuestionSetWeekly)
	b := BuildBank().QuestionsFor(assessment.QuestionSetWeekly)
	require.Len(t, a, WeeklyItemCount)
	require.Equal(t, a, b, "weekly selection must be stable across builds")

	perRay := map[string]int{}
	reversePerRay := map[string]int{}
	loadPerRay := map[string]int{}
	for _, q := range a {
		require.NotEmpty(t, q.RayID, "weekly set holds ray items only")
		perRay[q.RayID]++
		if q.Polarity == assessment.PolarityReverse {
			reversePerRay[q.RayID]++
		}
		if q.Orientation == OrientationLoad {
			loadPerRay[q.RayID]++
		}
	}
	for rayID, want := range weeklyRayTargets {
		assert.Equal(t, want, perRay[rayID], "ray %s quota", rayID)
		assert.GreaterOrEqual(t, reversePerRay[rayID], 1, "ray %s reverse quota", rayID)
		assert.GreaterOrEqual(t, loadPerRay[rayID], 1, "ray %s load quota", rayID)
	}
}

func TestArchetypeCatalogCoversAllPairs(t *testing.T) {
	require.Len(t, archetypes, ArchetypeCount)
	for i, a := range RayIDs {
		for _, b := range RayIDs[i+1:] {
			arch, ok := ArchetypeFor(a, b)
			require.True(t, ok, "missing archetype for %s/%s", a, b)
			assert.Equal(t, PairCode(a, b), arch.PairCode)
			assert.NotEmpty(t, arch.Name)
			assert.NotEmpty(t, arch.Essence)
		}
	}
	// Order of arguments must not matter.
	x, _ := ArchetypeFor("R7", "R2")
	y, _ := ArchetypeFor("R2", "R7")
	assert.Equal(t, x, y)
}

func TestToolMappingResolves(t *testing.T) {
	for _, rayID := range RayIDs {
		pair := ToolsForRay(rayID)
		assert.NotEmpty(t, pair[0].ID, "ray %s first tool", rayID)
		assert.NotEmpty(t, pair[1].ID, "ray %s second tool", rayID)
		assert.NotEqual(t, pair[0].ID, pair[1].ID, "ray %s tools must differ", rayID)
	}
	fallback := ToolsForRay("R0")
	assert.Equal(t, "T008", fallback[0].ID)
	assert.Equal(t, "T010", fallback[1].ID)
}

func TestSignalCatalogShape(t *testing.T) {
	require.Len(t, Signals, SignalCount)
	seen := map[string]bool{}
	for _, s := range Signals {
		assert.False(t, seen[s.ID], "duplicate signal %s", s.ID)
		seen[s.ID] = true
		assert.NotEmpty(t, s.Rays, "signal %s needs ray drivers", s.ID)
		for _, r := range s.Rays {
			assert.Contains(t, RayNames, r, "signal %s ray %s", s.ID, r)
		}
	}
}

func TestLoadWeightsSumToOne(t *testing.T) {
	assert.InDelta(t, 1.0, EmotionalLoadWeight+CognitiveLoadWeight+RelationalLoadWeight, 1e-9)
}
