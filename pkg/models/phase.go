package models

// Phase is a project lifecycle phase. Advancement is monotone along the
// fixed sequence; there is no regression.
type Phase string

const (
	PhaseDiscovery      Phase = "discovery"
	PhaseAnalysis       Phase = "analysis"
	PhaseDesign         Phase = "design"
	PhaseImplementation Phase = "implementation"
)

// phaseOrder fixes the advancement sequence.
var phaseOrder = []Phase{PhaseDiscovery, PhaseAnalysis, PhaseDesign, PhaseImplementation}

// IsValid checks if the phase is one of the fixed sequence.
func (p Phase) IsValid() bool {
	for _, ph := range phaseOrder {
		if p == ph {
			return true
		}
	}
	return false
}

// Next returns the following phase and true, or the same phase and false
// when p is terminal (or unknown).
func (p Phase) Next() (Phase, bool) {
	for i, ph := range phaseOrder {
		if p == ph && i+1 < len(phaseOrder) {
			return phaseOrder[i+1], true
		}
	}
	return p, false
}

// Phases returns the fixed advancement sequence.
func Phases() []Phase {
	out := make([]Phase, len(phaseOrder))
	copy(out, phaseOrder)
	return out
}
