package optim

// Status describes how the most recent Minimize call ended.
type Status int

// Termination states.
const (
	NotRun         Status = iota // Minimize has not been called
	Converged                    // Gradient norm fell below the tolerance
	IterationLimit               // The iteration budget was exhausted
	Failed                       // Validation failed; the call returned an error
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case NotRun:
		return "NotRun"
	case Converged:
		return "Converged"
	case IterationLimit:
		return "IterationLimit"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}
