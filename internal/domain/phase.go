package domain

// Phase represents the current phase of a table
type Phase string

const (
	PhaseSetup   Phase = "SETUP"   // Choosing category and players
	PhaseReveal  Phase = "REVEAL"  // Passing the device, one card per player
	PhaseVoting  Phase = "VOTING"  // Choosing a suspect
	PhaseResults Phase = "RESULTS" // Identities and verdict
)

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}

// Screen returns the id of the screen shown during this phase
func (p Phase) Screen() string {
	switch p {
	case PhaseReveal:
		return "game-screen"
	case PhaseVoting:
		return "voting-screen"
	case PhaseResults:
		return "results-screen"
	default:
		return "setup-screen"
	}
}

// CanTransitionTo checks if a transition from current phase to target phase is valid
func (p Phase) CanTransitionTo(target Phase) bool {
	validTransitions := map[Phase][]Phase{
		PhaseSetup:   {PhaseReveal},
		PhaseReveal:  {PhaseVoting, PhaseResults, PhaseSetup},
		PhaseVoting:  {PhaseResults, PhaseSetup},
		PhaseResults: {PhaseSetup},
	}

	allowed, ok := validTransitions[p]
	if !ok {
		return false
	}

	for _, phase := range allowed {
		if phase == target {
			return true
		}
	}
	return false
}
