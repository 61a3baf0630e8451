package entity

import "time"

// DecisionKind is the outcome of releasing a drag.
type DecisionKind int

const (
	// DecisionRest springs the panels back without navigating.
	DecisionRest DecisionKind = iota
	// DecisionCommitBack performs a back navigation.
	DecisionCommitBack
	// DecisionCommitForward performs a forward navigation.
	DecisionCommitForward
)

// String returns a human-readable representation of the decision kind.
func (k DecisionKind) String() string {
	switch k {
	case DecisionRest:
		return "rest"
	case DecisionCommitBack:
		return "commit_back"
	case DecisionCommitForward:
		return "commit_forward"
	default:
		return "unknown"
	}
}

// Decision is produced when a gesture ends.
type Decision struct {
	Kind DecisionKind
	// RestDuration is the spring-back animation length. Zero for commits.
	RestDuration time.Duration
}

// CommitBack returns a back-navigation decision.
func CommitBack() Decision {
	return Decision{Kind: DecisionCommitBack}
}

// CommitForward returns a forward-navigation decision.
func CommitForward() Decision {
	return Decision{Kind: DecisionCommitForward}
}

// Rest returns a spring-back decision.
func Rest(d time.Duration) Decision {
	if d < 0 {
		d = 0
	}
	return Decision{Kind: DecisionRest, RestDuration: d}
}

// IsCommit reports whether the decision triggers a navigation.
func (d Decision) IsCommit() bool {
	return d.Kind == DecisionCommitBack || d.Kind == DecisionCommitForward
}

// Side returns the side a commit navigates toward.
func (d Decision) Side() (Side, bool) {
	switch d.Kind {
	case DecisionCommitBack:
		return SideBack, true
	case DecisionCommitForward:
		return SideForward, true
	default:
		return SideBack, false
	}
}

// String returns a human-readable representation of the decision.
func (d Decision) String() string {
	if d.Kind == DecisionRest {
		return "rest(" + d.RestDuration.String() + ")"
	}
	return d.Kind.String()
}
