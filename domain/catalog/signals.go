package catalog

// Executive signal catalog (M001-M024). Each signal reads a small set of
// rays and fires on either the access side (strength signals) or the
// eclipse side (risk signals). Strength signals are suppressed while the
// system is gated to STABILIZE: the capacity exists but load is in the way.

// SignalKind selects which side of the ray composite a signal reads.
type SignalKind string

const (
	SignalStrength SignalKind = "strength"
	SignalRisk     SignalKind = "risk"
)

// Signal firing floors on the 0-100 scale.
const (
	SignalStrengthFloor = 75.0
	SignalRiskFloor     = 55.0
)

// SignalDef is one catalog entry. Rays lists the involved capacities whose
// mean drives the signal.
type SignalDef struct {
	ID    string
	Label string
	Kind  SignalKind
	Rays  []string
}

// Signals in canonical catalog order.
var Signals = []SignalDef{
	{ID: "M001", Label: "Decision Fatigue Under Load", Kind: SignalRisk, Rays: []string{"R3", "R1"}},
	{ID: "M002", Label: "Recovery Deficit Pattern", Kind: SignalRisk, Rays: []string{"R2"}},
	{ID: "M003", Label: "Strategic Clarity Index", Kind: SignalStrength, Rays: []string{"R5", "R4"}},
	{ID: "M004", Label: "Authenticity Under Pressure", Kind: SignalRisk, Rays: []string{"R6"}},
	{ID: "M005", Label: "Adaptive Flexibility Gap", Kind: SignalRisk, Rays: []string{"R8"}},
	{ID: "M006", Label: "Team Safety Creation", Kind: SignalStrength, Rays: []string{"R7", "R9"}},
	{ID: "M007", Label: "Emotional Processing Speed", Kind: SignalRisk, Rays: []string{"R3", "R2"}},
	{ID: "M008", Label: "Influence Without Authority", Kind: SignalStrength, Rays: []string{"R9", "R5"}},
	{ID: "M009", Label: "Execution Reliability", Kind: SignalStrength, Rays: []string{"R1", "R4"}},
	{ID: "M010", Label: "Boundary Erosion Risk", Kind: SignalRisk, Rays: []string{"R4", "R1"}},
	{ID: "M011", Label: "Optimism Resilience", Kind: SignalStrength, Rays: []string{"R2", "R8"}},
	{ID: "M012", Label: "Meaning Drift", Kind: SignalRisk, Rays: []string{"R5"}},
	{ID: "M013", Label: "Grounded Judgment", Kind: SignalStrength, Rays: []string{"R3", "R5"}},
	{ID: "M014", Label: "Connection Withdrawal", Kind: SignalRisk, Rays: []string{"R7"}},
	{ID: "M015", Label: "Candor Capital", Kind: SignalStrength, Rays: []string{"R6", "R4"}},
	{ID: "M016", Label: "Overextension Pattern", Kind: SignalRisk, Rays: []string{"R9", "R4"}},
	{ID: "M017", Label: "Network Leverage", Kind: SignalStrength, Rays: []string{"R7", "R8"}},
	{ID: "M018", Label: "Attention Fragmentation", Kind: SignalRisk, Rays: []string{"R3"}},
	{ID: "M019", Label: "Purposeful Prioritization", Kind: SignalStrength, Rays: []string{"R1", "R5"}},
	{ID: "M020", Label: "Conflict Avoidance Loop", Kind: SignalRisk, Rays: []string{"R4", "R7"}},
	{ID: "M021", Label: "Role Model Effect", Kind: SignalStrength, Rays: []string{"R9", "R6"}},
	{ID: "M022", Label: "Innovation Shutdown", Kind: SignalRisk, Rays: []string{"R8", "R3"}},
	{ID: "M023", Label: "Creative Range", Kind: SignalStrength, Rays: []string{"R8", "R2"}},
	{ID: "M024", Label: "Steady Presence", Kind: SignalStrength, Rays: []string{"R3", "R9"}},
}

// SignalCount is fixed by the catalog.
const SignalCount = 24
