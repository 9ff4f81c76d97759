package scoring

import (
	"fmt"

	"lightscore/domain/assessment"
	"lightscore/domain/catalog"
)

// buildRecommendations derives the coaching block from the signature and
// gate. Content is fully templated: the same inputs always yield the same
// text.
func buildRecommendations(sig assessment.LightSignature, gating assessment.Gating, level assessment.EclipseLevel) assessment.Recommendations {
	justIn := sig.JustInRay
	rayName := justIn.RayName
	verb := catalog.RayVerbs[justIn.RayID]
	pair := catalog.ToolsForRay(justIn.RayID)

	whyNow := func(position int) string {
		if gating.Mode == assessment.GateStabilize {
			if position == 0 {
				return fmt.Sprintf("Stabilizes your foundation before expanding %s.", rayName)
			}
			return fmt.Sprintf("Creates safety for %s to come back online.", rayName)
		}
		if position == 0 {
			return fmt.Sprintf("Supports %s development with small reps and real results.", rayName)
		}
		return fmt.Sprintf("Builds %s range through intentional practice.", rayName)
	}

	tools := make([]assessment.ToolRecommendation, 0, len(pair))
	for i, t := range pair {
		tools = append(tools, assessment.ToolRecommendation{
			ToolID:          t.ID,
			Label:           t.Label,
			WhyNow:          whyNow(i),
			Steps:           t.Steps,
			TimeCostMinutes: t.TimeCostMinutes,
		})
	}

	var week1, weeks2to4 string
	switch gating.Mode {
	case assessment.GateStabilize:
		week1 = fmt.Sprintf("Reduce load before building: one %s rep per day, nothing added. Protect sleep and one recovery block.", pair[0].Label)
		weeks2to4 = fmt.Sprintf("Hold the stabilization routine. Only when load drops below its current level (%s), add one weekly %s (%s) rep.", level, rayName, verb)
	case assessment.GateStretch:
		week1 = fmt.Sprintf("Your system has headroom. Run one deliberate %s (%s) stretch rep daily using %s.", rayName, verb, pair[0].Label)
		weeks2to4 = fmt.Sprintf("Escalate: two stretch reps per day, alternating %s and %s. Review receipts each Sunday.", pair[0].Label, pair[1].Label)
	default:
		week1 = fmt.Sprintf("Build range gently: one %s rep on alternating days, focused on %s (%s).", pair[0].Label, rayName, verb)
		weeks2to4 = fmt.Sprintf("Add %s twice a week. Keep each rep under %d minutes; consistency beats intensity.", pair[1].Label, pair[1].TimeCostMinutes)
	}

	questions := []string{
		fmt.Sprintf("Where did %s show up this week without you forcing it?", rayName),
		fmt.Sprintf("What does it cost you when %s goes offline under pressure?", rayName),
		fmt.Sprintf("Your signature pairs %s with %s. Where do they reinforce each other, and where do they compete?",
			sig.TopTwo[0].RayName, sig.TopTwo[1].RayName),
	}

	notYet := []string{}
	if gating.Mode == assessment.GateStabilize {
		notYet = append(notYet,
			"Do not start new stretch goals or take on additional commitments.",
			"Do not interpret low scores as fixed traits while load is this high.")
	} else {
		notYet = append(notYet,
			fmt.Sprintf("Do not try to train more than one capacity at once; %s is the current edge.", rayName))
	}
	if level == assessment.EclipseElevated || level == assessment.EclipseHigh {
		notYet = append(notYet, "Do not schedule high-stakes conversations at the end of depleted days.")
	}

	return assessment.Recommendations{
		ToolReadiness: tools,
		ThirtyDayPlan: assessment.ThirtyDayPlan{
			Week1:     week1,
			Weeks2to4: weeks2to4,
		},
		CoachingQuestions: questions,
		WhatNotToDoYet:    notYet,
	}
}
