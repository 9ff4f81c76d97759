package scoring

import (
	"lightscore/domain/assessment"
	"lightscore/domain/catalog"
)

// The ten deterministic edge cases. Every catalog entry appears in the
// output with its detected flag so the evaluation is auditable; restriction
// and next-evidence text are attached only when detected.

type edgeCaseInputs struct {
	Rays      map[string]rayComposite
	Ranked    []rayComposite
	Validity  validityResult
	Spread    float64
	GateMode  assessment.GateMode
	EER       float64
	Reflected int // answered reflection prompts
}

func edgeCase(code string, detected bool, restriction, nextEvidence string) assessment.EdgeCase {
	ec := assessment.EdgeCase{Code: code, Detected: detected}
	if detected {
		ec.Restriction = restriction
		ec.RequiredNextEvidence = nextEvidence
	}
	return ec
}

func detectEdgeCases(in edgeCaseInputs) []assessment.EdgeCase {
	top1, top2 := in.Ranked[0], in.Ranked[1]

	expensive := false
	for _, r := range []rayComposite{top1, top2} {
		if r.Access >= catalog.EdgeExpensiveShineFloor && r.Eclipse >= catalog.EdgeExpensiveEclipseFloor {
			expensive = true
		}
	}

	// Grounding missing: Presence low while most other capacities read high.
	presence := in.Rays["R3"]
	otherHigh := 0
	for _, rayID := range catalog.RayIDs {
		if rayID == "R3" {
			continue
		}
		if in.Rays[rayID].Access >= catalog.EdgeHighRayFloor {
			otherHigh++
		}
	}
	truthSuppressed := presence.Access < catalog.EdgeSuppressedPresence &&
		otherHigh >= catalog.EdgeHighRayCount

	perfectReport := in.Validity.hasTrigger(triggerStraightLining)
	if perfectReport {
		for _, rayID := range catalog.RayIDs {
			if in.Rays[rayID].Access < catalog.EdgePerfectShineFloor {
				perfectReport = false
				break
			}
		}
	}

	contradictory := in.Validity.hasTrigger(triggerInconsistency)
	flat := in.Spread < catalog.FlatProfileSD
	missingReflection := in.Reflected == 0

	partial := false
	for _, r := range in.Rays {
		if !r.Measured {
			partial = true
		}
	}

	polarized := top1.Net > catalog.EdgePolarizedTopFloor && top2.Net < catalog.EdgePolarizedSecondCeil

	highLoad := in.GateMode == assessment.GateStabilize &&
		(len(in.Validity.Triggers) > 0 || in.EER < 0.8)

	cases := []assessment.EdgeCase{
		edgeCase("EXPENSIVE_STRENGTH", expensive,
			"Add cost language to the top-two description. The strength is real but expensive under load.",
			"Retest after load reduction to see whether eclipse drops while access holds."),
		edgeCase("TRUTH_DETECTOR_SUPPRESSED", truthSuppressed,
			"Flag Presence as the priority regardless of net energy. Other ray scores may be inflated without grounding.",
			"Coach debrief focused on Presence access and body awareness."),
		edgeCase("PERFECT_SELF_REPORT", perfectReport,
			"Suppress archetype language. Use hypothesis framing only.",
			"Mini-interview or 360 feedback to validate the self-report."),
		edgeCase("CONTRADICTORY_RESPONSES", contradictory,
			"Use directional language. Response patterns suggest context-specific differences.",
			"Retest or coach debrief to explore work-versus-life splits."),
		edgeCase("FLAT_PROFILE", flat,
			"Suppress the archetype. Report an undifferentiated profile with directional language.",
			"Retest after intentional reflection, or coach debrief to explore priorities."),
		edgeCase("MISSING_REFLECTION", missingReflection,
			"Cap confidence at moderate. Suppress reflection-dependent coaching prompts.",
			"Complete the reflection prompts for full confidence."),
		edgeCase("PARTIAL_COMPLETION", partial,
			"Label results as preliminary. Suppress specific predictions.",
			"Complete the remaining sections for a full assessment."),
		edgeCase("EXTREME_POLARIZATION", polarized,
			"Note single-ray dominance. The second ray may not be a true strength.",
			"Retest or debrief to confirm whether the second ray is genuinely resourced."),
		edgeCase("HIGH_LOAD_INTERFERENCE", highLoad,
			"Eclipse may be amplifying noise. Prioritize stabilization tools before interpreting patterns.",
			"Retest after four to six weeks of load reduction with stabilization tools."),
	}

	detected := 0
	for _, c := range cases {
		if c.Detected {
			detected++
		}
	}
	cases = append(cases, edgeCase("UNRESOLVED_AMBIGUITY", detected >= catalog.EdgeAmbiguityCount,
		"Multiple conflicting signals. Use preliminary framing for all outputs.",
		"Coach debrief to resolve the ambiguity."))

	return cases
}
