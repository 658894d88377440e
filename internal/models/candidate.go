package models

// SearchCandidate is a lightweight search hit that still has to be resolved
// into a full Show with a detail request.
type SearchCandidate struct {
	ID        *int   `json:"id,omitempty"`
	Name      string `json:"name"`
	Permalink string `json:"permalink"`
}
