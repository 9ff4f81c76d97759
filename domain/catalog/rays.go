package catalog

// The nine fixed capacities. Ray order R1..R9 is also the canonical
// tie-break priority: lower number wins deterministic ties.

// RayCount is fixed; every report carries exactly this many ray entries.
const RayCount = 9

// RayIDs in canonical priority order.
var RayIDs = [RayCount]string{"R1", "R2", "R3", "R4", "R5", "R6", "R7", "R8", "R9"}

// RayNames maps ray IDs to display names.
var RayNames = map[string]string{
	"R1": "Ray of Intention",
	"R2": "Ray of Joy",
	"R3": "Ray of Presence",
	"R4": "Ray of Power",
	"R5": "Ray of Purpose",
	"R6": "Ray of Authenticity",
	"R7": "Ray of Connection",
	"R8": "Ray of Possibility",
	"R9": "Be The Light",
}

// RayVerbs are the one-word action frames used in report copy.
var RayVerbs = map[string]string{
	"R1": "Choose",
	"R2": "Expand",
	"R3": "Anchor",
	"R4": "Act",
	"R5": "Align",
	"R6": "Reveal",
	"R7": "Attune",
	"R8": "Explore",
	"R9": "Inspire",
}

// SubfacetLetters: each ray has four subfacets a-d.
var SubfacetLetters = [4]string{"a", "b", "c", "d"}

// SubfacetNames maps subfacet codes (e.g. R1a) to display labels.
var SubfacetNames = map[string]string{
	"R1a": "Daily Intentionality",
	"R1b": "Time/Attention Architecture",
	"R1c": "Boundary Clarity",
	"R1d": "Pre-Decision Practice",
	"R2a": "Joy Access",
	"R2b": "Gratitude Practice",
	"R2c": "Reinforcement Behavior",
	"R2d": "Recovery Integration",
	"R3a": "Attention Stability",
	"R3b": "Cognitive Flexibility",
	"R3c": "Body Signal Awareness",
	"R3d": "Emotional Regulation",
	"R4a": "Agency/Action Orientation",
	"R4b": "Boundary Enforcement",
	"R4c": "Conflict Engagement",
	"R4d": "Power Under Pressure",
	"R5a": "Purpose Clarity",
	"R5b": "Values Alignment",
	"R5c": "Meaningful Contribution",
	"R5d": "Long-Range Thinking",
	"R6a": "Self-Disclosure",
	"R6b": "Congruence",
	"R6c": "Vulnerability Tolerance",
	"R6d": "Identity Integration",
	"R7a": "Relational Safety Creation",
	"R7b": "Empathic Accuracy",
	"R7c": "Repair Initiation",
	"R7d": "Trust Building",
	"R8a": "Cognitive Openness",
	"R8b": "Divergent Thinking",
	"R8c": "Adaptive Flexibility",
	"R8d": "Creative Problem-Solving",
	"R9a": "Behavioral Modeling",
	"R9b": "Standard Setting",
	"R9c": "Generative Impact",
	"R9d": "Legacy Orientation",
}

// SubfacetsForRay returns the four subfacet codes for a ray ID.
func SubfacetsForRay(rayID string) [4]string {
	var codes [4]string
	for i, letter := range SubfacetLetters {
		codes[i] = rayID + letter
	}
	return codes
}

// EclipseDistortions describes how each ray tends to shift under load.
var EclipseDistortions = map[string]string{
	"R1": "Under pressure, scattered priorities and reactive drift may replace clear direction.",
	"R2": "Under pressure, joy access may narrow — numbness or forced positivity may surface.",
	"R3": "Under pressure, attention may fracture and reactivity may overtake grounding.",
	"R4": "Under pressure, aggression or withdrawal may replace measured power.",
	"R5": "Under pressure, cynicism or meaning-loss may surface — effort feels untethered.",
	"R6": "Under pressure, masking or performative behavior may replace authenticity.",
	"R7": "Under pressure, withdrawal or people-pleasing may replace genuine connection.",
	"R8": "Under pressure, rigidity or overwhelm may replace open exploration.",
	"R9": "Under pressure, overextension or withdrawal from influence may surface.",
}

// PowerSourceCount: the PPD check compares the two highest-ranked rays'
// access against overall recovery.
const PowerSourceCount = 2
