package catalog

import (
	"fmt"

	"lightscore/domain/assessment"
)

// The 36 pre-registered archetype pairings, one per unordered ray pair.
// Pair codes are always written lower-ray-first ("R1-R2"); content is
// versioned editorial copy and changes only with a schema version bump.

var archetypes = map[string]assessment.Archetype{
	"R1-R2": {PairCode: "R1-R2", Name: "Strategic Optimist",
		Essence:          "Clear direction fueled by genuine enthusiasm.",
		Strengths:        "Sets intentions people actually want to follow; plans without losing lightness.",
		StressDistortion: "Under load, optimism can paper over hard trade-offs instead of naming them."},
	"R1-R3": {PairCode: "R1-R3", Name: "Mindful Architect",
		Essence:          "Deliberate design grounded in moment-to-moment awareness.",
		Strengths:        "Builds structures that fit reality; notices drift early and corrects quietly.",
		StressDistortion: "Under load, planning can become a retreat from acting."},
	"R1-R4": {PairCode: "R1-R4", Name: "Decisive Director",
		Essence:          "Intention converted to action without hesitation.",
		Strengths:        "Decides fast, commits fully, and keeps others oriented in ambiguity.",
		StressDistortion: "Under load, decisiveness can harden into steamrolling."},
	"R1-R5": {PairCode: "R1-R5", Name: "Mission Commander",
		Essence:          "Purpose translated into an executable plan.",
		Strengths:        "Connects daily choices to long arcs; keeps the mission concrete.",
		StressDistortion: "Under load, the mission can crowd out the people serving it."},
	"R1-R6": {PairCode: "R1-R6", Name: "True North Leader",
		Essence:          "Direction that is visibly congruent with who you are.",
		Strengths:        "Decisions read as honest; people trust the compass even in fog.",
		StressDistortion: "Under load, conviction can shade into inflexibility."},
	"R1-R7": {PairCode: "R1-R7", Name: "Relational Strategist",
		Essence:          "Plans built through people, not around them.",
		Strengths:        "Aligns stakeholders early; strategy survives contact with the group.",
		StressDistortion: "Under load, consensus-seeking can stall necessary calls."},
	"R1-R8": {PairCode: "R1-R8", Name: "Visionary Planner",
		Essence:          "Imagination disciplined into roadmaps.",
		Strengths:        "Turns possibility into sequenced steps others can execute.",
		StressDistortion: "Under load, new options keep reopening settled plans."},
	"R1-R9": {PairCode: "R1-R9", Name: "Servant Architect",
		Essence:          "Systems designed so others can shine.",
		Strengths:        "Builds scaffolding that outlasts your presence in the room.",
		StressDistortion: "Under load, over-building for others erodes your own margins."},
	"R2-R3": {PairCode: "R2-R3", Name: "Present Celebrator",
		Essence:          "Joy found in what is actually here.",
		Strengths:        "Marks wins in real time; keeps groups regulated under pressure.",
		StressDistortion: "Under load, staying pleasant can substitute for staying honest."},
	"R2-R4": {PairCode: "R2-R4", Name: "Confident Enthusiast",
		Essence:          "Energy that moves rooms and then moves work.",
		Strengths:        "Raises ambient confidence; acts while the energy is live.",
		StressDistortion: "Under load, momentum can outrun diligence."},
	"R2-R5": {PairCode: "R2-R5", Name: "Joyful Missionary",
		Essence:          "Purpose carried with lightness.",
		Strengths:        "Makes the meaningful feel inviting rather than heavy.",
		StressDistortion: "Under load, forced positivity can mask meaning-loss."},
	"R2-R6": {PairCode: "R2-R6", Name: "Radiant Authentic",
		Essence:          "Unperformed warmth.",
		Strengths:        "People relax around you because nothing is being managed.",
		StressDistortion: "Under load, protecting the mood can delay hard disclosures."},
	"R2-R7": {PairCode: "R2-R7", Name: "Relational Spark",
		Essence:          "Connection that starts with delight.",
		Strengths:        "Opens conversations others avoid; bonds form quickly and hold.",
		StressDistortion: "Under load, the spark scatters across too many relationships."},
	"R2-R8": {PairCode: "R2-R8", Name: "Optimistic Explorer",
		Essence:          "Curiosity with a good mood attached.",
		Strengths:        "Tries the new thing first and reports back generously.",
		StressDistortion: "Under load, novelty-seeking becomes escape."},
	"R2-R9": {PairCode: "R2-R9", Name: "Light Bringer",
		Essence:          "Joy offered as a standard, not a performance.",
		Strengths:        "Lifts rooms by example; others borrow your baseline.",
		StressDistortion: "Under load, carrying the room's mood depletes your own."},
	"R3-R4": {PairCode: "R3-R4", Name: "Grounded Commander",
		Essence:          "Power that stays regulated.",
		Strengths:        "Acts firmly without spiking the room; steady in conflict.",
		StressDistortion: "Under load, control of self can become control of others."},
	"R3-R5": {PairCode: "R3-R5", Name: "Mindful Mission",
		Essence:          "Purpose pursued at a sustainable tempo.",
		Strengths:        "Long arcs held without burning the present to fund them.",
		StressDistortion: "Under load, patience can slide into passivity."},
	"R3-R6": {PairCode: "R3-R6", Name: "Present Truth",
		Essence:          "Honesty delivered with full attention.",
		Strengths:        "Says the real thing at the moment it can land.",
		StressDistortion: "Under load, bluntness arrives before readiness."},
	"R3-R7": {PairCode: "R3-R7", Name: "Deep Listener",
		Essence:          "Attention as a form of care.",
		Strengths:        "People feel heard to the bottom; trust compounds.",
		StressDistortion: "Under load, absorbing others' states displaces your own."},
	"R3-R8": {PairCode: "R3-R8", Name: "Present Visionary",
		Essence:          "Futures imagined from grounded observation.",
		Strengths:        "Sees what is emerging because you see what is.",
		StressDistortion: "Under load, watching replaces initiating."},
	"R3-R9": {PairCode: "R3-R9", Name: "Calm Center",
		Essence:          "Steadiness others organize around.",
		Strengths:        "The room's nervous system settles when you enter.",
		StressDistortion: "Under load, holding the center leaves no one holding you."},
	"R4-R5": {PairCode: "R4-R5", Name: "Driven Leader",
		Essence:          "Force in service of a chosen end.",
		Strengths:        "Moves obstacles; the mission gains ground weekly.",
		StressDistortion: "Under load, drive becomes grind and takes the team with it."},
	"R4-R6": {PairCode: "R4-R6", Name: "Bold Authentic",
		Essence:          "Saying it and doing it are the same act.",
		Strengths:        "Takes real positions in public; others calibrate to your candor.",
		StressDistortion: "Under load, boldness loses its tact."},
	"R4-R7": {PairCode: "R4-R7", Name: "Charismatic Connector",
		Essence:          "Influence that feels like invitation.",
		Strengths:        "Mobilizes networks fast; doors open on your name.",
		StressDistortion: "Under load, charm starts doing the work honesty should."},
	"R4-R8": {PairCode: "R4-R8", Name: "Risk-Taking Pioneer",
		Essence:          "First through the unmapped door.",
		Strengths:        "Prototypes futures while others are still debating them.",
		StressDistortion: "Under load, risk appetite stops pricing downside."},
	"R4-R9": {PairCode: "R4-R9", Name: "Empowering Force",
		Essence:          "Power spent making others powerful.",
		Strengths:        "Delegates real authority; people grow visibly in your orbit.",
		StressDistortion: "Under load, rescuing replaces empowering."},
	"R5-R6": {PairCode: "R5-R6", Name: "True Missionary",
		Essence:          "A cause you can be checked against.",
		Strengths:        "Walks the talk; the mission and the person match.",
		StressDistortion: "Under load, purity tests creep into the cause."},
	"R5-R7": {PairCode: "R5-R7", Name: "Community Builder",
		Essence:          "Meaning made together.",
		Strengths:        "Gathers people into shared purpose that outlives meetings.",
		StressDistortion: "Under load, the community's needs eclipse the mission's."},
	"R5-R8": {PairCode: "R5-R8", Name: "Visionary Missionary",
		Essence:          "A future worth recruiting for.",
		Strengths:        "Paints tomorrow concretely enough that people enlist today.",
		StressDistortion: "Under load, the vision inflates past what can be delivered."},
	"R5-R9": {PairCode: "R5-R9", Name: "Servant Leader",
		Essence:          "Purpose expressed as service.",
		Strengths:        "Leads from the back of the room and it still counts as leading.",
		StressDistortion: "Under load, self-sacrifice becomes the default setting."},
	"R6-R7": {PairCode: "R6-R7", Name: "Trusted Confidant",
		Essence:          "The person people tell the truth to.",
		Strengths:        "Holds confidences; relationships go deep and stay there.",
		StressDistortion: "Under load, carried secrets become carried weight."},
	"R6-R8": {PairCode: "R6-R8", Name: "Authentic Innovator",
		Essence:          "Originality without imitation.",
		Strengths:        "Makes new things that could only have come from you.",
		StressDistortion: "Under load, difference for its own sake replaces usefulness."},
	"R6-R9": {PairCode: "R6-R9", Name: "Truth Beacon",
		Essence:          "Integrity others navigate by.",
		Strengths:        "Your standards raise the room's without a speech.",
		StressDistortion: "Under load, the beacon burns hotter than the keeper."},
	"R7-R8": {PairCode: "R7-R8", Name: "Network Cultivator",
		Essence:          "Possibility discovered through people.",
		Strengths:        "Introduces the two people who needed each other; ideas travel on your graph.",
		StressDistortion: "Under load, breadth of contact thins depth of bond."},
	"R7-R9": {PairCode: "R7-R9", Name: "Relational Light",
		Essence:          "Connection offered as a gift, not a transaction.",
		Strengths:        "People leave your presence more themselves than they arrived.",
		StressDistortion: "Under load, everyone's needs get met except yours."},
	"R8-R9": {PairCode: "R8-R9", Name: "Visionary Servant",
		Essence:          "Imagining futures on behalf of others.",
		Strengths:        "Dreams in second person; builds possibility others step into.",
		StressDistortion: "Under load, tomorrow's promise defers today's care."},
}

// PairCode canonicalizes an unordered ray pair to "Rm-Rn" with m < n.
func PairCode(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%s-%s", a, b)
}

// ArchetypeFor resolves the pre-registered archetype for a ray pair.
func ArchetypeFor(a, b string) (assessment.Archetype, bool) {
	arch, ok := archetypes[PairCode(a, b)]
	return arch, ok
}

// ArchetypeCount is C(9,2): one entry per unordered ray pair.
const ArchetypeCount = 36
