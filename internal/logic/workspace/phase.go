package workspace

import "fmt"

// Phase is the lifecycle phase of a workspace.
type Phase string

const (
	PhasePending  Phase = "Pending"
	PhaseCreating Phase = "Creating"
	PhaseRunning  Phase = "Running"
	PhaseStopped  Phase = "Stopped"
	PhaseError    Phase = "Error"
)

var transitions = map[Phase][]Phase{
	PhasePending:  {PhaseCreating, PhaseError},
	PhaseCreating: {PhaseRunning, PhaseStopped, PhaseError},
	PhaseRunning:  {PhaseCreating, PhaseStopped, PhaseError},
	PhaseStopped:  {PhaseCreating, PhaseRunning, PhaseError},
	PhaseError:    {PhaseCreating, PhaseStopped},
}

// CanTransition reports whether from -> to is a valid phase change.
// An empty from is treated as Pending.
func CanTransition(from, to Phase) bool {
	if from == "" {
		from = PhasePending
	}

	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

func checkTransition(from, to Phase) error {
	if !CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	return nil
}

// IsValid reports whether p is a known phase.
func (p Phase) IsValid() bool {
	_, ok := transitions[p]

	return ok
}
