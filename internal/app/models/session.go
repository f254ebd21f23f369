package models

import (
	"sort"

	"github.com/goccy/go-json"
)

// Permission tags granted to sessions and required by routes.
const (
	PermissionDashboard      = "dashboard"
	PermissionMedicalRecords = "medical_records"
	PermissionAppointments   = "appointments"
	PermissionAnalytics      = "analytics"
	PermissionSettings       = "settings"
	PermissionUserManagement = "user_management"
	PermissionControlDoctors = "control_doctors"
	PermissionHospital       = "hospital"
	PermissionLab            = "lab"
	PermissionAIChat         = "aiChat"
	PermissionPatients       = "patients"
)

// PermissionSet is an unordered set of capability tags. It serializes as a
// sorted JSON array.
type PermissionSet map[string]struct{}

func NewPermissionSet(tags ...string) PermissionSet {
	set := make(PermissionSet, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

func (p PermissionSet) Has(tag string) bool {
	_, ok := p[tag]
	return ok
}

func (p PermissionSet) Slice() []string {
	tags := make([]string, 0, len(p))
	for tag := range p {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

func (p PermissionSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Slice())
}

func (p *PermissionSet) UnmarshalJSON(data []byte) error {
	var tags []string
	if err := json.Unmarshal(data, &tags); err != nil {
		return err
	}
	*p = NewPermissionSet(tags...)
	return nil
}

type Session struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	// Permissions is never nil on a session read back from a store. A nil
	// set is stored and restored as an empty one.
	Permissions PermissionSet `json:"permissions"`
	IsActive    bool          `json:"is_active"`
}

// Clone returns a deep copy so callers cannot mutate a store's session. The
// copy always has a non-nil Permissions set.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	clone := *s
	clone.Permissions = NewPermissionSet(s.Permissions.Slice()...)
	return &clone
}
