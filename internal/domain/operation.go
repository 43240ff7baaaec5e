package domain

// OperationPhase is the lifecycle of one asynchronous operation.
type OperationPhase string

const (
	OperationIdle      OperationPhase = "idle"
	OperationPending   OperationPhase = "pending"
	OperationSucceeded OperationPhase = "succeeded"
	OperationFailed    OperationPhase = "failed"
)

// OperationStatus is attached to every mutating store operation so callers can
// distinguish not-started / in-progress / succeeded / failed without
// ambiguity. Terminal phases do not auto-decay; the caller acknowledges them
// via Reset.
type OperationStatus struct {
	Loading       bool           `json:"loading"`
	ActionLoading bool           `json:"actionLoading"`
	Error         string         `json:"error,omitempty"`
	Phase         OperationPhase `json:"operation"`
}

// NewOperationStatus returns a status in the idle phase.
func NewOperationStatus() OperationStatus {
	return OperationStatus{Phase: OperationIdle}
}

// Begin marks the operation pending. action distinguishes mutating calls
// (actionLoading) from plain reads (loading).
func (s *OperationStatus) Begin(action bool) {
	s.Phase = OperationPending
	s.Error = ""
	if action {
		s.ActionLoading = true
	} else {
		s.Loading = true
	}
}

// Succeed marks the operation succeeded and clears both loading flags.
func (s *OperationStatus) Succeed() {
	s.Phase = OperationSucceeded
	s.Loading = false
	s.ActionLoading = false
	s.Error = ""
}

// Fail marks the operation failed, recording the human-readable message.
func (s *OperationStatus) Fail(msg string) {
	s.Phase = OperationFailed
	s.Loading = false
	s.ActionLoading = false
	s.Error = msg
}

// Reset acknowledges a terminal phase and returns the status to idle.
func (s *OperationStatus) Reset() {
	*s = NewOperationStatus()
}
