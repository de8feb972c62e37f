package analysis

// State is a step of one Analyze run.
type State string

const (
	StatePending        State = "pending"
	StatePromptBuilt    State = "prompt_built"
	StateProviderCalled State = "provider_called"
	StateResponseParsed State = "response_parsed"
	StateParseFailed    State = "parse_failed"
	StateReconciled     State = "reconciled"
	StatePersisted      State = "persisted"
	StateFailed         State = "failed"
)

var transitions = map[State][]State{
	StatePending:        {StatePromptBuilt, StateFailed},
	StatePromptBuilt:    {StateProviderCalled, StateFailed},
	StateProviderCalled: {StateResponseParsed, StateParseFailed, StateFailed},
	StateResponseParsed: {StateReconciled, StateFailed},
	StateParseFailed:    {StateFailed},
	StateReconciled:     {StatePersisted, StateFailed},
}

// CanTransition reports whether a run may move from s to next.
func (s State) CanTransition(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s State) IsTerminal() bool {
	return len(transitions[s]) == 0
}
