package valueobjects

import "fmt"

type Status string

const (
	StatusOpen       Status = "Open"
	StatusInProgress Status = "In Progress"
	StatusResolved   Status = "Resolved"
	StatusClosed     Status = "Closed"
)

var validStatuses = map[Status]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

// statusTransitions mirrors the transitions the client UI offers. The write
// path does not reject other transitions; see Ticket.ApplyUpdate.
var statusTransitions = map[Status][]Status{
	StatusOpen: {
		StatusInProgress,
		StatusResolved,
		StatusClosed,
	},
	StatusInProgress: {
		StatusResolved,
		StatusClosed,
		StatusOpen,
	},
	StatusResolved: {
		StatusClosed,
	},
	StatusClosed: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	allowed, ok := statusTransitions[s]
	if !ok {
		return false
	}

	for _, candidate := range allowed {
		if candidate == newStatus {
			return true
		}
	}
	return false
}

func (s Status) IsOpen() bool {
	return s == StatusOpen
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsResolved() bool {
	return s == StatusResolved
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return status, nil
}
