package scoring

import (
	"lightscore/domain/assessment"
	"lightscore/domain/catalog"
)

// subfacetScore carries both sides of one subfacet on the 0-100 scale.
// Shine and load are independently derived means, so they need not sum
// to anything.
type subfacetScore struct {
	SubfacetID string
	Shine      float64
	Load       float64
	ShineKnown bool
	LoadKnown  bool
}

// scoreSubfacet averages a subfacet's keyed answers by orientation and
// rescales to 0-100.
func scoreSubfacet(subfacetID string, answers []normalizedAnswer) subfacetScore {
	var shine, load []float64
	for _, a := range answers {
		if a.Question.Orientation == catalog.OrientationLoad {
			load = append(load, a.Keyed)
		} else {
			shine = append(shine, a.Keyed)
		}
	}
	s := subfacetScore{SubfacetID: subfacetID}
	if m, ok := mean(shine); ok {
		s.Shine = clamp(m * catalog.ScaleFactor)
		s.ShineKnown = true
	}
	if m, ok := mean(load); ok {
		s.Load = clamp(m * catalog.ScaleFactor)
		s.LoadKnown = true
	}
	return s
}

// signalTags labels notable subfacet patterns for report surfacing.
func signalTags(s subfacetScore) []string {
	tags := []string{}
	if s.ShineKnown && s.Shine >= catalog.SubfacetHighShineFloor {
		tags = append(tags, "high_shine")
	}
	if s.ShineKnown && s.Shine <= catalog.SubfacetLowShineCeil {
		tags = append(tags, "low_shine")
	}
	if s.LoadKnown && s.Load >= catalog.SubfacetHighLoadFloor {
		tags = append(tags, "high_load")
	}
	if s.ShineKnown && s.LoadKnown &&
		s.Shine >= catalog.SubfacetHighShineFloor && s.Load >= catalog.SubfacetHighLoadFloor {
		tags = append(tags, "expensive_shine")
	}
	return tags
}

// toOutput renders a subfacet score as report output. Unmeasured sides fall
// back to the neutral default.
func (s subfacetScore) toOutput() assessment.SubfacetOutput {
	shine, load := s.Shine, s.Load
	if !s.ShineKnown {
		shine = catalog.NeutralScore
	}
	if !s.LoadKnown {
		load = catalog.NeutralScore
	}
	return assessment.SubfacetOutput{
		SubfacetID: s.SubfacetID,
		Label:      catalog.SubfacetNames[s.SubfacetID],
		Score:      shine,
		PolarityMix: assessment.PolarityMix{
			Shine:   shine,
			Eclipse: load,
		},
		SignalTags: signalTags(s),
	}
}
