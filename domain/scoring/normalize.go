package scoring

import (
	"fmt"
	"sort"

	"lightscore/domain/assessment"
	"lightscore/domain/catalog"
	"lightscore/domain/core"
)

// normalizedAnswer is one numeric response after bank validation and
// reverse keying. Keyed is on the 0-4 capacity scale regardless of how
// the item was phrased.
type normalizedAnswer struct {
	Question   catalog.Question
	Raw        int
	Keyed      float64
	AnsweredAt core.Timestamp
}

// answerIndex is the validated, keyed view of a run the rest of the
// pipeline computes from. It is built once per run and never mutated.
type answerIndex struct {
	set         assessment.QuestionSet
	answers     []normalizedAnswer // numeric answers, bank order
	byQuestion  map[string]normalizedAnswer
	bySubfacet  map[string][]normalizedAnswer
	byDimension map[catalog.LoadDimensionID][]normalizedAnswer
	reflections []assessment.QuestionResponse
}

// reverseKey folds a reverse-phrased raw value back onto the capacity scale.
func reverseKey(q catalog.Question, value int) float64 {
	if q.Polarity == assessment.PolarityReverse {
		return float64(q.Max + q.Min - value)
	}
	return float64(value)
}

// normalize validates a run's responses against the bank and builds the
// answer index. It fails closed: any unknown item, conflicting duplicate,
// out-of-bounds value, or missing required item rejects the whole run.
func normalize(bank *catalog.Bank, input assessment.RunInput) (*answerIndex, error) {
	idx := &answerIndex{
		set:         input.QuestionSet,
		byQuestion:  make(map[string]normalizedAnswer, len(input.Responses)),
		bySubfacet:  make(map[string][]normalizedAnswer),
		byDimension: make(map[catalog.LoadDimensionID][]normalizedAnswer),
	}

	assigned := make(map[string]bool)
	for _, q := range bank.QuestionsFor(input.QuestionSet) {
		assigned[q.ID] = true
	}

	seen := make(map[string]assessment.QuestionResponse, len(input.Responses))
	for _, resp := range input.Responses {
		q, ok := bank.Lookup(resp.QuestionID)
		if !ok {
			return nil, core.NewInvalidResponseError(resp.QuestionID,
				fmt.Sprintf("question %s is not in the bank", resp.QuestionID))
		}
		if !assigned[q.ID] {
			return nil, core.NewInvalidResponseError(q.ID,
				fmt.Sprintf("question %s is not assigned to set %s", q.ID, input.QuestionSet))
		}
		if prev, dup := seen[q.ID]; dup {
			// An identical resubmission is harmless; only a conflicting
			// duplicate makes the run unreadable.
			if prev.Value == resp.Value && prev.FreeText == resp.FreeText {
				continue
			}
			return nil, core.NewInvalidResponseError(q.ID,
				fmt.Sprintf("question %s answered more than once with conflicting values", q.ID))
		}
		seen[q.ID] = resp

		if q.DisplayType == assessment.DisplayReflection {
			idx.reflections = append(idx.reflections, resp)
			continue
		}
		if resp.Value < q.Min || resp.Value > q.Max {
			return nil, core.NewInvalidResponseError(q.ID,
				fmt.Sprintf("value %d outside [%d,%d]", resp.Value, q.Min, q.Max))
		}

		ans := normalizedAnswer{
			Question:   q,
			Raw:        resp.Value,
			Keyed:      reverseKey(q, resp.Value),
			AnsweredAt: resp.AnsweredAt,
		}
		idx.byQuestion[q.ID] = ans
		if q.RayID != "" {
			idx.bySubfacet[q.SubfacetID] = append(idx.bySubfacet[q.SubfacetID], ans)
		}
		if q.Dimension != "" {
			idx.byDimension[q.Dimension] = append(idx.byDimension[q.Dimension], ans)
		}
	}

	var missing []string
	for _, q := range bank.RequiredFor(input.QuestionSet) {
		if _, ok := seen[q.ID]; !ok {
			missing = append(missing, q.ID)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, core.NewIncompleteRunError(string(input.RunID), missing)
	}
	if len(idx.byQuestion) == 0 {
		return nil, core.NewUnscorableRunError(string(input.RunID), "run has no numeric answers")
	}

	// Bank order keeps downstream pattern forensics order-independent of
	// the caller's response ordering.
	idx.answers = make([]normalizedAnswer, 0, len(idx.byQuestion))
	for _, q := range bank.QuestionsFor(input.QuestionSet) {
		if ans, ok := idx.byQuestion[q.ID]; ok {
			idx.answers = append(idx.answers, ans)
		}
	}
	return idx, nil
}

// clamp bounds a score to the 0-100 reporting range.
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// mean of a float slice; ok=false when empty.
func mean(vals []float64) (float64, bool) {
	if len(vals) == 0 {
		return 0, false
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals)), true
}
