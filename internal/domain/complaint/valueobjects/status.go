package valueobjects

import "fmt"

type Status string

const (
	StatusFiled       Status = "Filed"
	StatusUnderReview Status = "Under Review"
	StatusInProgress  Status = "In Progress"
	StatusResolved    Status = "Resolved"
	StatusRejected    Status = "Rejected"
)

var validStatuses = map[Status]bool{
	StatusFiled:       true,
	StatusUnderReview: true,
	StatusInProgress:  true,
	StatusResolved:    true,
	StatusRejected:    true,
}

// statusTransitions is the linear workflow order. It is only consulted when
// strict transition checking is enabled; the default mode lets an
// administrator set any status from any status.
var statusTransitions = map[Status][]Status{
	StatusFiled:       {StatusUnderReview},
	StatusUnderReview: {StatusInProgress},
	StatusInProgress:  {StatusResolved, StatusRejected},
	StatusResolved:    {},
	StatusRejected:    {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	allowedTransitions, ok := statusTransitions[s]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (s Status) IsFiled() bool {
	return s == StatusFiled
}

func (s Status) IsUnderReview() bool {
	return s == StatusUnderReview
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsResolved() bool {
	return s == StatusResolved
}

func (s Status) IsRejected() bool {
	return s == StatusRejected
}

// IsTerminal reports whether the status ends the workflow
func (s Status) IsTerminal() bool {
	return s == StatusResolved || s == StatusRejected
}

// IsPending reports whether the complaint still awaits a terminal outcome
func (s Status) IsPending() bool {
	return s == StatusFiled || s == StatusUnderReview || s == StatusInProgress
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return status, nil
}
