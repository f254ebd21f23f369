package responses

import "github.com/goccy/go-json"

type Page struct {
	Name    string                 `json:"page"`
	Title   string                 `json:"title"`
	Path    string                 `json:"path"`
	Session *Session               `json:"session,omitempty"`
	Content map[string]interface{} `json:"content,omitempty"`
	Error   string                 `json:"error,omitempty"`
}

type Directory struct {
	Kind    string            `json:"kind"`
	Entries []json.RawMessage `json:"entries"`
}

// BackendDirectory mirrors the backend listing envelope; Data is keyed by
// the plural entity name.
type BackendDirectory struct {
	Status string                       `json:"status"`
	Data   map[string][]json.RawMessage `json:"data"`
}
