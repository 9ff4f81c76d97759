package catalog

// Practice-tool catalog (T001-T012) and the per-ray tool mapping used by
// the recommendation builder. Two tools per growth-edge ray; the fallback
// pair covers any unmapped selection.

// Tool is one coachable practice with its delivery details.
type Tool struct {
	ID              string
	Label           string
	Steps           []string
	TimeCostMinutes int
}

var tools = map[string]Tool{
	"T001": {ID: "T001", Label: "Watch Me", TimeCostMinutes: 10, Steps: []string{
		"Pick one behavior you want others to copy this week.",
		"Do it visibly, without announcing it.",
		"At week's end, note who picked it up.",
	}},
	"T002": {ID: "T002", Label: "I Rise", TimeCostMinutes: 5, Steps: []string{
		"Name the setback out loud in one sentence.",
		"State the very next physical action you will take.",
		"Take it within ten minutes.",
	}},
	"T003": {ID: "T003", Label: "Go First", TimeCostMinutes: 5, Steps: []string{
		"Identify the disclosure or apology you are waiting on someone else to make.",
		"Make your half of it first, today.",
		"Leave space; do not demand reciprocity.",
	}},
	"T004": {ID: "T004", Label: "REPs", TimeCostMinutes: 10, Steps: []string{
		"Each evening, record one moment of genuine energy from the day.",
		"Write what made it possible in one line.",
		"Review the list every Sunday and schedule one repeat.",
	}},
	"T005": {ID: "T005", Label: "143 Challenge", TimeCostMinutes: 15, Steps: []string{
		"Choose one person who would not expect to hear from you.",
		"Send a specific, concrete appreciation.",
		"Repeat daily for a week with a different person.",
	}},
	"T006": {ID: "T006", Label: "90-Second Window", TimeCostMinutes: 2, Steps: []string{
		"When activated, name the emotion silently.",
		"Breathe through ninety seconds without responding.",
		"Then decide whether a response is still needed.",
	}},
	"T007": {ID: "T007", Label: "RAS Reset", TimeCostMinutes: 5, Steps: []string{
		"Each morning, write the one outcome that would make today a win.",
		"Read it before opening any inbox.",
		"Check it again at midday and course-correct once.",
	}},
	"T008": {ID: "T008", Label: "Presence Pause", TimeCostMinutes: 3, Steps: []string{
		"Before each meeting, stop for three breaths.",
		"Name where your attention actually is.",
		"Choose where it goes next, then enter.",
	}},
	"T009": {ID: "T009", Label: "Boundary of Light", TimeCostMinutes: 10, Steps: []string{
		"Write the boundary you keep re-litigating in one sentence.",
		"Deliver it once, kindly, without justification.",
		"Hold it for seven days before renegotiating anything.",
	}},
	"T010": {ID: "T010", Label: "If/Then Planning", TimeCostMinutes: 10, Steps: []string{
		"Pick the situation where you reliably drift.",
		"Write an if/then: the trigger and your pre-decided response.",
		"Rehearse it once aloud; review after each occurrence.",
	}},
	"T011": {ID: "T011", Label: "Question Loop", TimeCostMinutes: 10, Steps: []string{
		"In your next conversation, ask a second question before offering a view.",
		"Reflect back what you heard in their words.",
		"Only then add your own.",
	}},
	"T012": {ID: "T012", Label: "Witness", TimeCostMinutes: 10, Steps: []string{
		"Choose someone doing unglamorous good work.",
		"Tell them precisely what you saw and its effect.",
		"Do this twice this week.",
	}},
}

// rayTools maps each ray to its two canonical practice tools.
var rayTools = map[string][2]string{
	"R1": {"T010", "T001"},
	"R2": {"T004", "T007"},
	"R3": {"T008", "T006"},
	"R4": {"T009", "T002"},
	"R5": {"T010", "T005"},
	"R6": {"T003", "T002"},
	"R7": {"T003", "T011"},
	"R8": {"T005", "T001"},
	"R9": {"T004", "T012"},
}

// fallbackTools is used when a ray has no mapping entry.
var fallbackTools = [2]string{"T008", "T010"}

// ToolByID returns a catalog tool.
func ToolByID(id string) (Tool, bool) {
	t, ok := tools[id]
	return t, ok
}

// ToolsForRay returns the two canonical tools for a growth-edge ray.
func ToolsForRay(rayID string) [2]Tool {
	ids, ok := rayTools[rayID]
	if !ok {
		ids = fallbackTools
	}
	return [2]Tool{tools[ids[0]], tools[ids[1]]}
}
