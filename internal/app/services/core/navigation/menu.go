package navigation

import "medical-portal/internal/app/models"

const (
	GroupMain           = "main"
	GroupWorkspace      = "workspace"
	GroupAdministration = "administration"
	GroupAccount        = "account"
)

// DefaultMenu returns a fresh copy of the static menu registry. Group and
// entry order is significant.
func DefaultMenu() []models.NavigationGroup {
	return []models.NavigationGroup{
		{
			Name: GroupMain,
			Entries: []models.NavigationEntry{
				{Path: "/", Label: "Home", Icon: "home"},
				{Path: "/doctors", Label: "Doctors", Icon: "stethoscope"},
				{Path: "/hospitals", Label: "Hospitals", Icon: "hospital"},
				{Path: "/pharmacy", Label: "Pharmacies", Icon: "pill"},
				{Path: "/labs", Label: "Labs", Icon: "flask"},
				{Path: "/clinics", Label: "Clinics", Icon: "clinic"},
				{Path: "/book-appointment", Label: "Book Appointment", Icon: "calendar-plus"},
				{Path: "/ai-analysis", Label: "AI Analysis", Icon: "sparkles"},
			},
		},
		{
			Name: GroupWorkspace,
			Entries: []models.NavigationEntry{
				{Path: "/dashboard", Label: "Dashboard", Icon: "layout", RequireAuth: true},
				{Path: "/records", Label: "Medical Records", Icon: "file-medical", RequireAuth: true, Control: models.PermissionMedicalRecords},
				{Path: "/appointments", Label: "Appointments", Icon: "calendar", RequireAuth: true, Control: models.PermissionAppointments},
				{Path: "/patients", Label: "Patients", Icon: "users", RequireAuth: true, Control: models.PermissionPatients},
				{Path: "/hospital", Label: "Hospital", Icon: "hospital", RequireAuth: true, Control: models.PermissionHospital},
				{Path: "/lab", Label: "Laboratory", Icon: "flask", RequireAuth: true, Control: models.PermissionLab},
				{Path: "/ai-chat", Label: "AI Chat", Icon: "bot", RequireAuth: true, Control: models.PermissionAIChat},
				{Path: "/analytics", Label: "Analytics", Icon: "chart", RequireAuth: true, Control: models.PermissionAnalytics},
			},
		},
		{
			Name: GroupAdministration,
			Entries: []models.NavigationEntry{
				{Path: "/users", Label: "Users", Icon: "user-cog", RequireAuth: true, RequireAdmin: true},
				{Path: "/moderators", Label: "Moderators", Icon: "shield", RequireAuth: true, RequireAdmin: true},
				{Path: "/control-doctors", Label: "Control Doctors", Icon: "stethoscope", RequireAuth: true, RequireAdmin: true},
				{Path: "/control-patients", Label: "Control Patients", Icon: "users", RequireAuth: true, RequireAdmin: true},
				{Path: "/control-pharmacy", Label: "Control Pharmacy", Icon: "pill", RequireAuth: true, RequireAdmin: true},
			},
		},
		{
			Name: GroupAccount,
			Entries: []models.NavigationEntry{
				{Path: "/notifications", Label: "Notifications", Icon: "bell"},
				{Path: "/telemedicine", Label: "Telemedicine", Icon: "video"},
				{Path: "/settings", Label: "Settings", Icon: "settings", RequireAuth: true},
				{Path: "/help", Label: "Help", Icon: "help", RequireAuth: true},
			},
		},
	}
}
