package models

type NavigationEntry struct {
	Path         string `json:"path"`
	Label        string `json:"label"`
	Icon         string `json:"icon,omitempty"`
	RequireAuth  bool   `json:"-"`
	RequireAdmin bool   `json:"-"`
	Control      string `json:"-"`
}

// Requirement expresses the entry's visibility rule as an AccessRequirement.
func (e NavigationEntry) Requirement() AccessRequirement {
	return AccessRequirement{
		RequireAuth:        e.RequireAuth,
		RequireAdmin:       e.RequireAdmin,
		RequiredPermission: e.Control,
	}
}

type NavigationGroup struct {
	Name    string            `json:"name"`
	Entries []NavigationEntry `json:"entries"`
}
