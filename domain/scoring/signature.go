package scoring

import (
	"sort"

	"github.com/montanaflynn/stats"

	"lightscore/domain/assessment"
	"lightscore/domain/catalog"
	"lightscore/domain/core"
)

// rankRays orders the nine composites by net energy descending. Exact ties
// break by ray number ascending, so equal inputs always produce the same
// ranking.
func rankRays(rays map[string]rayComposite) []rayComposite {
	ranked := make([]rayComposite, 0, catalog.RayCount)
	for _, rayID := range catalog.RayIDs {
		ranked = append(ranked, rays[rayID])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Net != ranked[j].Net {
			return ranked[i].Net > ranked[j].Net
		}
		return core.RayID(ranked[i].RayID).RayNumber() < core.RayID(ranked[j].RayID).RayNumber()
	})
	return ranked
}

// netEnergyStats returns the mean and standard deviation of the nine net
// energies.
func netEnergyStats(rays map[string]rayComposite) (meanNet, spread float64) {
	vals := make([]float64, 0, catalog.RayCount)
	for _, rayID := range catalog.RayIDs {
		vals = append(vals, rays[rayID].Net)
	}
	meanNet, _ = stats.Mean(vals)
	spread, _ = stats.StandardDeviationPopulation(vals)
	return meanNet, spread
}

// buildSignature assembles the light signature: the top-two pairing with
// its pre-registered archetype, plus the selected growth-edge ray.
//
// The growth edge defaults to the lowest net energy outside the top two.
// When that ray is AMPLIFIED while the system is gated to STABILIZE, the
// selection moves to the lowest non-amplified candidate: an amplified ray
// is not coachable until load drops.
func buildSignature(ranked []rayComposite, gateMode assessment.GateMode) (assessment.LightSignature, error) {
	top1, top2 := ranked[0], ranked[1]
	arch, ok := catalog.ArchetypeFor(top1.RayID, top2.RayID)
	if !ok {
		return assessment.LightSignature{}, core.ErrUnknownArchetype
	}

	candidates := ranked[2:]
	justIn := candidates[len(candidates)-1]
	basis := assessment.BasisLowestNetEnergy
	if justIn.Amplified && gateMode == assessment.GateStabilize {
		for i := len(candidates) - 1; i >= 0; i-- {
			if !candidates[i].Amplified {
				justIn = candidates[i]
				basis = assessment.BasisMostEclipsed
				break
			}
		}
	}

	return assessment.LightSignature{
		TopTwo: [2]assessment.TopRay{
			{RayID: top1.RayID, RayName: catalog.RayNames[top1.RayID], NetEnergy: top1.Net},
			{RayID: top2.RayID, RayName: catalog.RayNames[top2.RayID], NetEnergy: top2.Net},
		},
		Archetype: arch,
		JustInRay: assessment.JustInRay{
			RayID:          justIn.RayID,
			RayName:        catalog.RayNames[justIn.RayID],
			NetEnergy:      justIn.Net,
			SelectionBasis: basis,
		},
	}, nil
}

// profileFlag classifies the result shape. A net-energy spread below the
// flat-profile floor means the ranking is not interpretable as a signature;
// a run whose subset left any ray unmeasured is only a partial picture.
func profileFlag(spread float64, rays map[string]rayComposite) assessment.ProfileFlag {
	if spread < catalog.FlatProfileSD {
		return assessment.ProfileUndifferentiated
	}
	for _, r := range rays {
		if !r.Measured {
			return assessment.ProfilePartial
		}
	}
	return assessment.ProfileStandard
}
