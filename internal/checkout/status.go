package checkout

type Status string

const (
	StatusIdle       Status = "IDLE"
	StatusValidating Status = "VALIDATING"
	StatusPaying     Status = "PAYING_SIMULATED"
	StatusSubmitting Status = "SUBMITTING"
	StatusSucceeded  Status = "SUCCEEDED"
	StatusFailed     Status = "FAILED"
)

func (s Status) IsTerminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}

var allowedTransitions = map[Status][]Status{
	StatusIdle:       {StatusValidating},
	StatusValidating: {StatusPaying, StatusIdle, StatusFailed},
	StatusPaying:     {StatusSubmitting, StatusFailed},
	StatusSubmitting: {StatusSucceeded, StatusFailed},
}

func CanTransitionTo(from, to Status) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
