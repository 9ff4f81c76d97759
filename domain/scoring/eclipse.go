package scoring

import (
	"fmt"

	"lightscore/domain/assessment"
	"lightscore/domain/catalog"
)

// dimensionScores holds the three composite load dimensions, 0-100.
type dimensionScores struct {
	Emotional  float64
	Cognitive  float64
	Relational float64
	Measured   bool // false when the run's subset carries no cluster items
}

func (d dimensionScores) anyAtLeast(floor float64) bool {
	return d.Emotional >= floor || d.Cognitive >= floor || d.Relational >= floor
}

// computeDimensions averages each eclipse-cluster's keyed answers. A run
// whose assigned subset has no cluster items (the weekly short form) gets
// the neutral default on all three.
func computeDimensions(idx *answerIndex) dimensionScores {
	d := dimensionScores{
		Emotional:  catalog.NeutralScore,
		Cognitive:  catalog.NeutralScore,
		Relational: catalog.NeutralScore,
	}
	score := func(dim catalog.LoadDimensionID) (float64, bool) {
		var vals []float64
		for _, a := range idx.byDimension[dim] {
			vals = append(vals, a.Keyed)
		}
		m, ok := mean(vals)
		return clamp(m * catalog.ScaleFactor), ok
	}
	if v, ok := score(catalog.DimEmotional); ok {
		d.Emotional = v
		d.Measured = true
	}
	if v, ok := score(catalog.DimCognitive); ok {
		d.Cognitive = v
		d.Measured = true
	}
	if v, ok := score(catalog.DimRelational); ok {
		d.Relational = v
		d.Measured = true
	}
	return d
}

// loadPressure is the fixed weighted blend of the three dimensions.
func loadPressure(d dimensionScores) float64 {
	return clamp(catalog.EmotionalLoadWeight*d.Emotional +
		catalog.CognitiveLoadWeight*d.Cognitive +
		catalog.RelationalLoadWeight*d.Relational)
}

// eclipseLevel bands load pressure. Bands are contiguous and exhaustive,
// so equal pressures always land in the same band.
func eclipseLevel(pressure float64) assessment.EclipseLevel {
	switch {
	case pressure < catalog.LevelModerateFloor:
		return assessment.EclipseLow
	case pressure < catalog.LevelElevatedFloor:
		return assessment.EclipseModerate
	case pressure < catalog.LevelHighFloor:
		return assessment.EclipseElevated
	default:
		return assessment.EclipseHigh
	}
}

// energyEfficiencyRatio is mean access divided by mean eclipse across the
// measured ray composites, smoothed on the 0-4 scale so the ratio stays
// finite when either side bottoms out. Working from the ray means keeps the
// ratio insensitive to the bank's uneven shine/load item counts.
func energyEfficiencyRatio(rays map[string]rayComposite) float64 {
	var access, eclipse []float64
	for _, rayID := range catalog.RayIDs {
		if r := rays[rayID]; r.Measured {
			access = append(access, r.Access)
			eclipse = append(eclipse, r.Eclipse)
		}
	}
	meanAccess, ok := mean(access)
	if !ok {
		return 1.0
	}
	meanEclipse, _ := mean(eclipse)
	return (meanAccess/catalog.ScaleFactor + catalog.EERSmoothing) /
		(meanEclipse/catalog.ScaleFactor + catalog.EERSmoothing)
}

// recoveryAccess estimates remaining restorative margin: what load has not
// already claimed, less a fixed penalty per amplified ray.
func recoveryAccess(pressure float64, amplified int) float64 {
	return clamp(100 - pressure - catalog.RecoveryAmplifiedPenalty*float64(amplified))
}

// burnoutRiskIndex counts independent depletion markers, 0-4.
func burnoutRiskIndex(eer float64, amplified int, recovery float64, level assessment.EclipseLevel) int {
	bri := 0
	if eer < catalog.BRIDepletingEER {
		bri++
	}
	if amplified >= catalog.BRIAmplifiedRays {
		bri++
	}
	if recovery < catalog.BRIRecoveryLowWater {
		bri++
	}
	if level == assessment.EclipseElevated || level == assessment.EclipseHigh {
		bri++
	}
	return bri
}

// gate routes coaching work from system load alone.
func gate(level assessment.EclipseLevel, bri int) assessment.Gating {
	switch {
	case bri >= catalog.GateStabilizeBRI || level == assessment.EclipseHigh:
		return assessment.Gating{
			Mode:   assessment.GateStabilize,
			Reason: fmt.Sprintf("System load is high (level %s, burnout risk %d). Stability comes before expansion.", level, bri),
		}
	case bri <= catalog.GateStretchBRI && level == assessment.EclipseLow:
		return assessment.Gating{
			Mode:   assessment.GateStretch,
			Reason: fmt.Sprintf("Load is low (level %s, burnout risk %d). The system has capacity for progressive challenge.", level, bri),
		}
	default:
		return assessment.Gating{
			Mode:   assessment.GateBuildRange,
			Reason: fmt.Sprintf("Load is workable (level %s, burnout risk %d). Build range with moderate reps.", level, bri),
		}
	}
}

// dimensionNote explains a dimension's standing in report copy.
func dimensionNote(label string, score float64, measured bool) string {
	if !measured {
		return fmt.Sprintf("%s was not measured by this run's question set; neutral default applied.", label)
	}
	switch {
	case score >= catalog.LevelHighFloor:
		return fmt.Sprintf("%s is severely elevated and likely shaping daily function.", label)
	case score >= catalog.LevelElevatedFloor:
		return fmt.Sprintf("%s is elevated and worth active management.", label)
	case score >= catalog.LevelModerateFloor:
		return fmt.Sprintf("%s is within a workable range.", label)
	default:
		return fmt.Sprintf("%s is low; this dimension is currently a resource.", label)
	}
}

// toDimensionOutput renders the three dimensions with notes.
func toDimensionOutput(d dimensionScores) assessment.EclipseDimensions {
	return assessment.EclipseDimensions{
		EmotionalLoad:  assessment.LoadDimension{Score: d.Emotional, Note: dimensionNote("Emotional load", d.Emotional, d.Measured)},
		CognitiveLoad:  assessment.LoadDimension{Score: d.Cognitive, Note: dimensionNote("Cognitive load", d.Cognitive, d.Measured)},
		RelationalLoad: assessment.LoadDimension{Score: d.Relational, Note: dimensionNote("Relational load", d.Relational, d.Measured)},
	}
}
