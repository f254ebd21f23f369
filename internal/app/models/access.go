package models

// AccessRequirement is what a route or navigation entry demands from the
// current session.
type AccessRequirement struct {
	RequireAuth        bool   `json:"require_auth,omitempty"`
	RequireAdmin       bool   `json:"require_admin,omitempty"`
	RequiredPermission string `json:"required_permission,omitempty"`
}

func (r AccessRequirement) IsPublic() bool {
	return !r.RequireAuth && !r.RequireAdmin && r.RequiredPermission == ""
}
