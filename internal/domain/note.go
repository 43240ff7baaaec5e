package domain

// Note is one entry of a booking's collaborative notes sub-collection. Notes
// have no identity outside their parent booking; the server assigns id and
// timestamps.
type Note struct {
	ID        string `json:"id,omitempty"`
	Text      string `json:"text"`
	AgentName string `json:"agentName"`
	CreatedBy string `json:"createdBy"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// CanModify reports whether the given agent authored this note. This gate is
// advisory, for the UI only; the server boundary re-enforces ownership.
func (n *Note) CanModify(agentID string) bool {
	return n.CreatedBy == agentID
}
