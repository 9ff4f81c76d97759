package scoring

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/gonum/stat/distuv"

	"lightscore/domain/assessment"
	"lightscore/domain/catalog"
)

// Response-pattern forensics. Three deterministic triggers feed the
// confidence band: straight-lining, implausible answer latency, and
// reverse-pair inconsistency. Each trigger degrades confidence but never
// blocks scoring.

const (
	triggerStraightLining = "straight_lining"
	triggerFastLatency    = "implausible_latency"
	triggerInconsistency  = "reverse_pair_inconsistency"
)

type validityResult struct {
	Triggers        []string
	LongestRun      int
	FastFraction    float64
	FlaggedPairs    int
	LatencyMeasured bool
}

// detectStraightLining finds the longest run of identical raw values in
// bank order. The threshold scales with run length so short forms are not
// over-flagged.
func detectStraightLining(idx *answerIndex) (int, bool) {
	threshold := len(idx.answers) / catalog.StraightlineRunDivisor
	if threshold < catalog.StraightlineMinRun {
		threshold = catalog.StraightlineMinRun
	}
	longest, current := 0, 0
	prev := -1
	for _, a := range idx.answers {
		if a.Raw == prev {
			current++
		} else {
			current = 1
			prev = a.Raw
		}
		if current > longest {
			longest = current
		}
	}
	return longest, longest >= threshold
}

// latencyModel is the log-normal inter-answer gap distribution fitted on
// pilot data. Gaps in its extreme left tail, or under the hard reading
// floor, are implausibly fast.
var latencyModel = distuv.LogNormal{
	Mu:    math.Log(catalog.LatencyPilotMedianSecs),
	Sigma: catalog.LatencyPilotLogStdDev,
}

const latencyTailProb = 0.02

// detectFastLatency inspects inter-answer gaps where timestamps exist.
// Runs submitted without timestamps skip this check entirely.
func detectFastLatency(idx *answerIndex) (fraction float64, measured, flag bool) {
	var stamps []float64
	for _, a := range idx.answers {
		if !a.AnsweredAt.IsZero() {
			stamps = append(stamps, float64(a.AnsweredAt.Time().UnixMilli())/1000.0)
		}
	}
	if len(stamps) < 2 {
		return 0, false, false
	}
	sort.Float64s(stamps)

	fast, total := 0, 0
	for i := 1; i < len(stamps); i++ {
		gap := stamps[i] - stamps[i-1]
		total++
		if gap < catalog.LatencyFloorSeconds || latencyModel.CDF(gap) < latencyTailProb {
			fast++
		}
	}
	fraction = float64(fast) / float64(total)
	return fraction, true, fraction >= catalog.LatencyFastFraction
}

// detectInconsistency compares each validity re-ask against its anchor on
// the keyed scale. A consistent respondent produces near-equal keyed values
// regardless of phrasing direction.
func detectInconsistency(idx *answerIndex) (flagged int, flag bool) {
	for _, a := range idx.answers {
		if a.Question.PairID == "" {
			continue
		}
		anchor, ok := idx.byQuestion[a.Question.PairID]
		if !ok {
			continue
		}
		if math.Abs(a.Keyed-anchor.Keyed) >= catalog.InconsistencyPairDiff {
			flagged++
		}
	}
	return flagged, flagged >= catalog.InconsistencyFlagPairs
}

// runForensics evaluates all pattern triggers for a run.
func runForensics(idx *answerIndex) validityResult {
	res := validityResult{Triggers: []string{}}

	longest, slFlag := detectStraightLining(idx)
	res.LongestRun = longest
	if slFlag {
		res.Triggers = append(res.Triggers, triggerStraightLining)
	}

	fraction, measured, latFlag := detectFastLatency(idx)
	res.FastFraction = fraction
	res.LatencyMeasured = measured
	if latFlag {
		res.Triggers = append(res.Triggers, triggerFastLatency)
	}

	pairs, incFlag := detectInconsistency(idx)
	res.FlaggedPairs = pairs
	if incFlag {
		res.Triggers = append(res.Triggers, triggerInconsistency)
	}

	return res
}

// hasTrigger reports whether a named trigger fired.
func (v validityResult) hasTrigger(name string) bool {
	for _, t := range v.Triggers {
		if t == name {
			return true
		}
	}
	return false
}

// confidenceBand grades the run from its trigger count.
func confidenceBand(v validityResult) assessment.ConfidenceBand {
	switch {
	case len(v.Triggers) >= catalog.ConfidenceLowTriggers:
		return assessment.ConfidenceLow
	case len(v.Triggers) == 1:
		return assessment.ConfidenceModerate
	default:
		return assessment.ConfidenceHigh
	}
}

// toDataQuality renders the forensics verdict for the report.
func (v validityResult) toDataQuality() assessment.DataQuality {
	band := confidenceBand(v)
	notes := "Response patterns look typical; scores can be read at face value."
	if len(v.Triggers) > 0 {
		notes = fmt.Sprintf("Response-pattern concerns: %s. Read scores directionally, not as point estimates.",
			strings.Join(v.Triggers, ", "))
	}
	return assessment.DataQuality{
		ConfidenceBand:    band,
		QualityNotes:      notes,
		Triggers:          v.Triggers,
		RetakeRecommended: band == assessment.ConfidenceLow,
	}
}

// actingVsCapacity turns the performance-presence delta into a status.
// An elevated delta alone warrants a watch; combined with any pattern
// trigger it flags the report into validation-required language.
func actingVsCapacity(ppd float64, v validityResult) assessment.ActingVsCapacity {
	switch {
	case ppd >= catalog.PPDElevated && len(v.Triggers) > 0:
		return assessment.ActingVsCapacity{
			Status:             assessment.ActingFlagged,
			ReportLanguageMode: assessment.LanguageValidationRequired,
			Note:               "Reported strengths outrun available recovery and response patterns raise concerns. Validate with observed behavior before acting on this report.",
		}
	case ppd >= catalog.PPDElevated:
		return assessment.ActingVsCapacity{
			Status:             assessment.ActingWatch,
			ReportLanguageMode: assessment.LanguageDirectional,
			Note:               "Top strengths may be running on performance rather than presence. Watch for cost accumulating behind the output.",
		}
	default:
		return assessment.ActingVsCapacity{
			Status:             assessment.ActingClear,
			ReportLanguageMode: assessment.LanguageStandard,
			Note:               "Reported capacity and available recovery are in workable proportion.",
		}
	}
}
