package types

// CV represents an uploaded resume document. The binary content lives on
// the server; the client only sees the record.
type CV struct {
	ID     string `json:"_id,omitempty"`
	UserID string `json:"user,omitempty"`
	Name   string `json:"name"`
}
