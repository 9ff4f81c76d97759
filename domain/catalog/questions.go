package catalog

import (
	"fmt"
	"strings"

	"lightscore/domain/assessment"
)

// Orientation says which side of a capacity an item measures.
type Orientation string

const (
	OrientationShine Orientation = "shine"
	OrientationLoad  Orientation = "load"
)

// LoadDimensionID identifies one of the three fixed load clusters.
type LoadDimensionID string

const (
	DimEmotional  LoadDimensionID = "EMO"
	DimCognitive  LoadDimensionID = "COG"
	DimRelational LoadDimensionID = "REL"
)

// LoadDimensionIDs in canonical order.
var LoadDimensionIDs = [3]LoadDimensionID{DimEmotional, DimCognitive, DimRelational}

// Question is one bank item. The bank is hand-authored, versioned reference
// data; the engine never mutates it.
type Question struct {
	ID          string
	RayID       string          // "" for eclipse-cluster, validity-pair and reflection items
	SubfacetID  string          // e.g. "R1a"; "VAL_R1" for validity pairs
	Dimension   LoadDimensionID // set only for eclipse-cluster items
	Orientation Orientation
	Polarity    assessment.Polarity
	DisplayType assessment.DisplayType
	Min, Max    int
	Required    bool
	PairID      string // links a reverse-keyed re-ask to its normal counterpart
	Prompt      string
}

// IsNumeric reports whether the item contributes to numeric aggregation.
func (q Question) IsNumeric() bool {
	return q.DisplayType != assessment.DisplayReflection
}

// Bank is the full 143-item question bank plus lookup indexes. Loaded once
// at process start and passed by reference into each pure computation.
type Bank struct {
	Questions []Question
	byID      map[string]Question
	weekly    []Question
}

// FullItemCount and WeeklyItemCount are locked by the instrument design.
const (
	FullItemCount   = 143
	WeeklyItemCount = 43
)

// weeklyRayTargets: items per ray in the weekly tracking subset.
var weeklyRayTargets = map[string]int{
	"R1": 5, "R2": 5, "R3": 5, "R4": 5, "R5": 5,
	"R6": 5, "R7": 5, "R8": 4, "R9": 4,
}

var eclipsePrompts = map[LoadDimensionID][6]string{
	DimEmotional: {
		"How often do you feel emotionally drained before the day is half over?",
		"How often do small setbacks land harder than they should?",
		"How often do you carry tension in your body after work ends?",
		"How often does irritation surface faster than you'd like?",
		"How often do you feel numb rather than rested after downtime?",
		"How often do you dread obligations you normally enjoy?",
	},
	DimCognitive: {
		"How often does your focus fragment across too many open loops?",
		"How often do routine decisions feel heavier than they are?",
		"How often do you re-read the same material without absorbing it?",
		"How often do you lose track of commitments you meant to keep?",
		"How often does planning ahead feel impossible past today?",
		"How often do you default to busywork to avoid deciding?",
	},
	DimRelational: {
		"How often do conversations feel like effort you have to brace for?",
		"How often do you cancel or dodge contact you'd usually welcome?",
		"How often do you leave interactions feeling more depleted than connected?",
		"How often do minor frictions with others stay stuck in your head?",
		"How often do you hold back things that need saying to keep the peace?",
		"How often do you feel alone even when you're around people?",
	},
}

var reflectionPrompts = [8]string{
	"Describe a recent moment when you felt fully resourced. What made it possible?",
	"Where in your week does your energy leak the most, and what usually triggers it?",
	"What is one commitment you kept to yourself this month that mattered?",
	"When you imagine the next 90 days going well, what does that look like?",
	"What feedback have you received lately that you haven't fully digested?",
	"Which relationship would most benefit from ten more minutes of your attention?",
	"What are you pretending not to know about your current workload?",
	"If load dropped by half tomorrow, what would you start doing first?",
}

// BuildBank constructs the deterministic 143-item bank:
// 108 ray items (9 rays x 4 subfacets x 3 items), 18 eclipse-cluster items,
// 9 reverse-keyed validity pairs, 8 reflection prompts.
func BuildBank() *Bank {
	questions := make([]Question, 0, FullItemCount)
	next := 1
	id := func() string {
		s := fmt.Sprintf("Q%03d", next)
		next++
		return s
	}

	// Ray items. Per subfacet: two shine items (the second reverse-keyed on
	// subfacets b and d) and one load item. Subfacet c's first item presents
	// as a scenario card.
	pairAnchors := map[string]string{} // rayID -> anchor question ID for its validity pair
	for _, rayID := range RayIDs {
		for _, letter := range SubfacetLetters {
			sf := rayID + letter
			label := strings.ToLower(SubfacetNames[sf])

			display := assessment.DisplayFrequency
			if letter == "c" {
				display = assessment.DisplayScenarioCard
			}
			first := Question{
				ID: id(), RayID: rayID, SubfacetID: sf,
				Orientation: OrientationShine,
				Polarity:    assessment.PolarityNormal,
				DisplayType: display,
				Min:         LikertMin, Max: LikertMax, Required: true,
				Prompt: fmt.Sprintf("How often do you experience steady %s?", label),
			}
			if letter == "a" {
				pairAnchors[rayID] = first.ID
			}
			questions = append(questions, first)

			secondPolarity := assessment.PolarityNormal
			secondPrompt := fmt.Sprintf("How often does %s show up without you forcing it?", label)
			if letter == "b" || letter == "d" {
				secondPolarity = assessment.PolarityReverse
				secondPrompt = fmt.Sprintf("How often does %s slip when demands spike?", label)
			}
			questions = append(questions, Question{
				ID: id(), RayID: rayID, SubfacetID: sf,
				Orientation: OrientationShine,
				Polarity:    secondPolarity,
				DisplayType: assessment.DisplayFrequency,
				Min:         LikertMin, Max: LikertMax, Required: true,
				Prompt: secondPrompt,
			})

			questions = append(questions, Question{
				ID: id(), RayID: rayID, SubfacetID: sf,
				Orientation: OrientationLoad,
				Polarity:    assessment.PolarityNormal,
				DisplayType: assessment.DisplayFrequency,
				Min:         LikertMin, Max: LikertMax, Required: true,
				Prompt: fmt.Sprintf("Under pressure, how much effort does %s cost you to maintain?", label),
			})
		}
	}

	// Eclipse-cluster items: three disjoint load dimensions, independent of
	// ray assignment.
	for _, dim := range LoadDimensionIDs {
		prompts := eclipsePrompts[dim]
		for _, prompt := range prompts {
			questions = append(questions, Question{
				ID:          id(),
				Dimension:   dim,
				SubfacetID:  "E_" + string(dim),
				Orientation: OrientationLoad,
				Polarity:    assessment.PolarityNormal,
				DisplayType: assessment.DisplayFrequency,
				Min:         LikertMin, Max: LikertMax, Required: true,
				Prompt: prompt,
			})
		}
	}

	// Validity pairs: one reverse-keyed re-ask per ray, paired with the
	// subfacet-a anchor. These feed the data-quality grader only.
	for _, rayID := range RayIDs {
		label := strings.ToLower(SubfacetNames[rayID+"a"])
		questions = append(questions, Question{
			ID:          id(),
			SubfacetID:  "VAL_" + rayID,
			Orientation: OrientationShine,
			Polarity:    assessment.PolarityReverse,
			DisplayType: assessment.DisplayFrequency,
			Min:         LikertMin, Max: LikertMax, Required: true,
			PairID:      pairAnchors[rayID],
			Prompt:      fmt.Sprintf("How often do you lose %s even on ordinary days?", label),
		})
	}

	// Reflection prompts: free text, excluded from numeric aggregation.
	for _, prompt := range reflectionPrompts {
		questions = append(questions, Question{
			ID:          id(),
			SubfacetID:  "REFL",
			DisplayType: assessment.DisplayReflection,
			Required:    false,
			Prompt:      prompt,
		})
	}

	bank := &Bank{
		Questions: questions,
		byID:      make(map[string]Question, len(questions)),
	}
	for _, q := range questions {
		bank.byID[q.ID] = q
	}
	bank.weekly = buildWeeklySet(bank)
	return bank
}

// Lookup returns the bank item for an ID.
func (b *Bank) Lookup(id string) (Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// QuestionsFor returns the assigned question list for a run's set.
func (b *Bank) QuestionsFor(set assessment.QuestionSet) []Question {
	if set == assessment.QuestionSetWeekly {
		return b.weekly
	}
	return b.Questions
}

// RequiredFor returns the required items of a question set.
func (b *Bank) RequiredFor(set assessment.QuestionSet) []Question {
	assigned := b.QuestionsFor(set)
	required := make([]Question, 0, len(assigned))
	for _, q := range assigned {
		if q.Required {
			required = append(required, q)
		}
	}
	return required
}
