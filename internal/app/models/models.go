package models

// ApplicationStatus defines the lifecycle state of an application
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "pending"   // Submitted, awaiting review
	StatusReviewed  ApplicationStatus = "reviewed"  // Seen by the poster, not yet decided
	StatusAccepted  ApplicationStatus = "accepted"  // Final: offer extended
	StatusRejected  ApplicationStatus = "rejected"  // Final: turned down
	StatusWithdrawn ApplicationStatus = "withdrawn" // Final: retracted by the applicant
)

// AllApplicationStatuses lists every valid status value.
var AllApplicationStatuses = []ApplicationStatus{
	StatusPending,
	StatusReviewed,
	StatusAccepted,
	StatusRejected,
	StatusWithdrawn,
}

// IsValid reports whether s is a known status value.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// IsTerminal reports whether s is a final state. Terminal applications
// accept no further transitions.
func (s ApplicationStatus) IsTerminal() bool {
	switch s {
	case StatusAccepted, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// CanTransitionTo reports whether the review flow moves from s to target:
// pending -> reviewed -> accepted or rejected, with withdrawn reachable
// from any non-terminal state.
func (s ApplicationStatus) CanTransitionTo(target ApplicationStatus) bool {
	if !s.IsValid() || !target.IsValid() || s.IsTerminal() || s == target {
		return false
	}
	if target == StatusWithdrawn {
		return true
	}
	switch s {
	case StatusPending:
		return target == StatusReviewed
	case StatusReviewed:
		return target == StatusAccepted || target == StatusRejected
	}
	return false
}
