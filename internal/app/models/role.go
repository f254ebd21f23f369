package models

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleDoctor     Role = "doctor"
	RolePatient    Role = "patient"
	RoleModerator  Role = "moderator"
	RoleClinic     Role = "clinic"
	RoleHospital   Role = "hospital"
	RolePharmacy   Role = "pharmacy"
	RoleLaboratory Role = "laboratory"
)

var knownRoles = map[Role]bool{
	RoleAdmin:      true,
	RoleDoctor:     true,
	RolePatient:    true,
	RoleModerator:  true,
	RoleClinic:     true,
	RoleHospital:   true,
	RolePharmacy:   true,
	RoleLaboratory: true,
}

// IsKnown reports whether r belongs to the closed role enumeration.
func (r Role) IsKnown() bool {
	return knownRoles[r]
}

func (r Role) String() string {
	return string(r)
}
