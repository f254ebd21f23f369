package navigation

import (
	"medical-portal/internal/app/models"
	"medical-portal/internal/app/services/core/access"
)

// Filter keeps the entries the session may see, in their configured order,
// and drops groups left empty.
func Filter(groups []models.NavigationGroup, session *models.Session) []models.NavigationGroup {
	visible := make([]models.NavigationGroup, 0, len(groups))
	for _, group := range groups {
		entries := make([]models.NavigationEntry, 0, len(group.Entries))
		for _, entry := range group.Entries {
			if access.Evaluate(session, entry.Requirement()).Allowed() {
				entries = append(entries, entry)
			}
		}
		if len(entries) == 0 {
			continue
		}
		visible = append(visible, models.NavigationGroup{Name: group.Name, Entries: entries})
	}
	return visible
}
