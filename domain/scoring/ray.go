package scoring

import (
	"lightscore/domain/assessment"
	"lightscore/domain/catalog"
)

// rayComposite is the internal per-ray aggregate before report rendering.
type rayComposite struct {
	RayID     string
	Raw       float64 // mean of every keyed ray item, shine and load blended, 0-100
	Access    float64 // mean shine across measured subfacets, 0-100
	Eclipse   float64 // mean load across measured subfacets, 0-100
	Net       float64
	Amplified bool
	Measured  bool
	Subfacets map[string]subfacetScore
}

// computeRays aggregates subfacet scores into the nine ray composites.
// Every ray appears in the result; rays the run's question subset never
// touched carry the neutral default and Measured=false.
//
// AMPLIFIED requires the ray's own eclipse to be high AND at least one
// independently elevated load dimension: local strain alone does not
// amplify without systemic corroboration.
func computeRays(idx *answerIndex, dims dimensionScores) map[string]rayComposite {
	rays := make(map[string]rayComposite, catalog.RayCount)
	anyDimElevated := dims.anyAtLeast(catalog.AmplifiedDimensionFloor)

	for _, rayID := range catalog.RayIDs {
		comp := rayComposite{
			RayID:     rayID,
			Raw:       catalog.NeutralScore,
			Access:    catalog.NeutralScore,
			Eclipse:   catalog.NeutralScore,
			Subfacets: make(map[string]subfacetScore, 4),
		}

		var shines, loads, keyed []float64
		for _, sf := range catalog.SubfacetsForRay(rayID) {
			answers := idx.bySubfacet[sf]
			if len(answers) == 0 {
				continue
			}
			for _, a := range answers {
				keyed = append(keyed, a.Keyed)
			}
			score := scoreSubfacet(sf, answers)
			comp.Subfacets[sf] = score
			if score.ShineKnown {
				shines = append(shines, score.Shine)
			}
			if score.LoadKnown {
				loads = append(loads, score.Load)
			}
		}

		if m, ok := mean(shines); ok {
			comp.Access = m
			comp.Measured = true
		}
		if m, ok := mean(loads); ok {
			comp.Eclipse = m
			comp.Measured = true
		}
		// Raw blends every item mean regardless of orientation: the
		// unweighted value before any shine/load framing is applied.
		if m, ok := mean(keyed); ok {
			comp.Raw = clamp(m * catalog.ScaleFactor)
		}

		comp.Amplified = comp.Measured &&
			comp.Eclipse >= catalog.AmplifiedEclipseFloor && anyDimElevated

		factor := catalog.EclipsePenaltyFactor
		if comp.Amplified {
			factor = catalog.AmplifiedEclipsePenaltyFactor
		}
		comp.Net = clamp(comp.Access - factor*comp.Eclipse)

		rays[rayID] = comp
	}
	return rays
}

// amplifiedCount counts rays carrying the AMPLIFIED modifier.
func amplifiedCount(rays map[string]rayComposite) int {
	n := 0
	for _, r := range rays {
		if r.Amplified {
			n++
		}
	}
	return n
}

// toOutput renders a ray composite for the report envelope.
func (r rayComposite) toOutput() assessment.RayOutput {
	modifier := assessment.ModifierNone
	if r.Amplified {
		modifier = assessment.ModifierAmplified
	}
	subfacets := make(map[string]assessment.SubfacetOutput, len(r.Subfacets))
	for id, s := range r.Subfacets {
		subfacets[id] = s.toOutput()
	}
	return assessment.RayOutput{
		RayID:           r.RayID,
		RayName:         catalog.RayNames[r.RayID],
		Score:           r.Raw,
		AccessScore:     r.Access,
		EclipseScore:    r.Eclipse,
		EclipseModifier: modifier,
		NetEnergy:       r.Net,
		Measured:        r.Measured,
		Subfacets:       subfacets,
	}
}
