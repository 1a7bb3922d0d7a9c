package types

import "github.com/m-mizutani/goerr/v2"

// Phase represents the lifecycle stage of a project
type Phase string

const (
	PhaseGenesis        Phase = "genesis"
	PhaseImplementation Phase = "implementation"
	PhasePerfection     Phase = "perfection"
)

// AllPhases returns all valid phases in lifecycle order
func AllPhases() []Phase {
	return []Phase{
		PhaseGenesis,
		PhaseImplementation,
		PhasePerfection,
	}
}

// Validate checks if the phase is one of the known values
func (p Phase) Validate() error {
	switch p {
	case PhaseGenesis, PhaseImplementation, PhasePerfection:
		return nil
	}
	return goerr.New("invalid phase", goerr.V("phase", string(p)))
}

// Index returns the position of the phase in the lifecycle sequence.
// Unknown phases return -1.
func (p Phase) Index() int {
	for i, phase := range AllPhases() {
		if p == phase {
			return i
		}
	}
	return -1
}

// Before reports whether p comes earlier than other in the lifecycle
func (p Phase) Before(other Phase) bool {
	return p.Index() < other.Index()
}

func (p Phase) String() string {
	return string(p)
}
