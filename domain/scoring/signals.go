package scoring

import (
	"fmt"

	"lightscore/domain/assessment"
	"lightscore/domain/catalog"
)

// evaluateSignals walks the fixed executive catalog in order. Strength
// signals read mean access of their driver rays and are suppressed under a
// STABILIZE gate: the capacity may exist but load is in the way of reading
// it. Risk signals read mean eclipse and are never suppressed.
func evaluateSignals(rays map[string]rayComposite, gateMode assessment.GateMode) []assessment.ExecutiveSignal {
	fired := []assessment.ExecutiveSignal{}
	for _, def := range catalog.Signals {
		var total float64
		evidence := make([]string, 0, len(def.Rays))
		for _, rayID := range def.Rays {
			comp := rays[rayID]
			switch def.Kind {
			case catalog.SignalRisk:
				total += comp.Eclipse
				evidence = append(evidence, fmt.Sprintf("%s eclipse %.1f", rayID, comp.Eclipse))
			default:
				total += comp.Access
				evidence = append(evidence, fmt.Sprintf("%s access %.1f", rayID, comp.Access))
			}
		}
		base := total / float64(len(def.Rays))

		var fires bool
		switch def.Kind {
		case catalog.SignalRisk:
			fires = base >= catalog.SignalRiskFloor
		default:
			fires = base >= catalog.SignalStrengthFloor && gateMode != assessment.GateStabilize
		}
		if fires {
			fired = append(fired, assessment.ExecutiveSignal{
				SignalID: def.ID,
				Label:    def.Label,
				Evidence: evidence,
			})
		}
	}
	return fired
}

// deriveOutcomeTags promotes fired signals with corroborating evidence from
// at least two drivers into outcome tags.
func deriveOutcomeTags(signals []assessment.ExecutiveSignal) assessment.OutcomeTags {
	applied := []assessment.OutcomeTag{}
	for _, s := range signals {
		if len(s.Evidence) < 2 {
			continue
		}
		applied = append(applied, assessment.OutcomeTag{
			TagID:    s.SignalID,
			Label:    s.Label,
			Evidence: s.Evidence,
		})
	}
	return assessment.OutcomeTags{Applied: applied}
}
