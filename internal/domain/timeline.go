package domain

import (
	"fmt"
	"time"
)

// TimelineChange records one field mutation as structured data. The old/new
// values are kept separately so display layers never have to re-parse a
// sentence to recover them.
type TimelineChange struct {
	Field    string `json:"field"`
	OldValue string `json:"oldValue"`
	NewValue string `json:"newValue"`
}

// TimelineEntry is one immutable audit record. Entries are only ever appended
// to a booking's timeline, never edited or reordered.
type TimelineEntry struct {
	Date      string           `json:"date"`
	Message   string           `json:"message"`
	AgentName string           `json:"agentName"`
	Changes   []TimelineChange `json:"changes"`
}

// NewTimelineEntry builds an audit entry for a set of field changes. A
// mutation with zero changed fields must not produce an entry, so an empty
// change set is rejected.
func NewTimelineEntry(agentName string, changes []TimelineChange) (TimelineEntry, error) {
	if len(changes) == 0 {
		return TimelineEntry{}, NewValidationError("changes", "at least one changed field is required")
	}
	copied := make([]TimelineChange, len(changes))
	copy(copied, changes)
	return TimelineEntry{
		Date:      time.Now().UTC().Format(time.RFC3339),
		Message:   fmt.Sprintf("Updated %d field(s)", len(copied)),
		AgentName: agentName,
		Changes:   copied,
	}, nil
}
