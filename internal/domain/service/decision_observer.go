package service

// DecisionObserver counts approval desk and destructive-action outcomes.
type DecisionObserver interface {
	ObserveDecision(subject, action string, err error)
}
