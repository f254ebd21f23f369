package routers

import (
	"medical-portal/internal/app/delivery/http/controllers"
	"medical-portal/internal/app/delivery/http/middlewares"
	"medical-portal/internal/app/models"
	"medical-portal/internal/app/services/core/directories"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Page is one entry of the route table. Requirement becomes an access policy
// that the route guard enforces on every request before Handler runs.
type Page struct {
	Path        string
	Name        string
	Title       string
	Requirement models.AccessRequirement
	Handler     http.HandlerFunc
}

var (
	publicPage = models.AccessRequirement{}
	authPage   = models.AccessRequirement{RequireAuth: true}
	adminPage  = models.AccessRequirement{RequireAuth: true, RequireAdmin: true}
)

func permissionPage(permission string) models.AccessRequirement {
	return models.AccessRequirement{RequireAuth: true, RequiredPermission: permission}
}

// DefaultPages is the full page surface of the portal. The login page is
// served at loginPath.
func DefaultPages(pageController *controllers.PageController, loginPath string) []Page {
	page := func(path, name, title string, requirement models.AccessRequirement) Page {
		return Page{Path: path, Name: name, Title: title, Requirement: requirement, Handler: pageController.Render(name, title)}
	}
	directory := func(path, name, title, kind string) Page {
		return Page{Path: path, Name: name, Title: title, Requirement: publicPage, Handler: pageController.RenderDirectory(name, title, kind)}
	}

	return []Page{
		page("/", "home", "Home", publicPage),
		directory("/doctors", "doctors", "Doctors", directories.KindDoctors),
		directory("/hospitals", "hospitals", "Hospitals", directories.KindHospitals),
		directory("/pharmacy", "pharmacy", "Pharmacies", directories.KindPharmacies),
		directory("/labs", "labs", "Laboratories", directories.KindLabs),
		directory("/clinics", "clinics", "Clinics", directories.KindClinics),
		{Path: loginPath, Name: "login", Title: "Login", Requirement: publicPage, Handler: pageController.RenderLogin("login", "Login")},
		page("/register", "register", "Register", publicPage),
		page("/forgot-password", "forgot-password", "Forgot Password", publicPage),
		page("/ai-analysis", "ai-analysis", "AI Analysis", publicPage),
		page("/book-appointment", "book-appointment", "Book Appointment", publicPage),
		page("/unauthorized", middlewares.PageUnauthorized, "Unauthorized", publicPage),
		page("/notifications", "notifications", "Notifications", publicPage),
		page("/telemedicine", "telemedicine", "Telemedicine", publicPage),

		page("/dashboard", "dashboard", "Dashboard", authPage),
		page("/settings", "settings", "Settings", authPage),
		page("/help", "help", "Help", authPage),

		page("/records", "records", "Medical Records", permissionPage(models.PermissionMedicalRecords)),
		page("/appointments", "appointments", "Appointments", permissionPage(models.PermissionAppointments)),
		page("/hospital", "hospital", "Hospital", permissionPage(models.PermissionHospital)),
		page("/lab", "lab", "Laboratory", permissionPage(models.PermissionLab)),
		page("/ai-chat", "ai-chat", "AI Chat", permissionPage(models.PermissionAIChat)),
		page("/chat", "chat", "Chat", permissionPage(models.PermissionAIChat)),
		page("/analytics", "analytics", "Analytics", permissionPage(models.PermissionAnalytics)),
		page("/patients", "patients", "Patients", permissionPage(models.PermissionPatients)),

		page("/users", "users", "Users", adminPage),
		page("/moderators", "moderators", "Moderators", adminPage),
		page("/control-doctors", "control-doctors", "Control Doctors", adminPage),
		page("/control-patients", "control-patients", "Control Patients", adminPage),
		page("/control-pharmacy", "control-pharmacy", "Control Pharmacy", adminPage),
	}
}

// attachPageRoutes registers every page with the access enforcer and mounts
// it behind the route guard.
func attachPageRoutes(router chi.Router, middlewares *middlewares.Middlewares, pages []Page) error {
	for _, page := range pages {
		err := middlewares.AccessEnforcer.Register(http.MethodGet, page.Path, page.Requirement)
		if err != nil {
			return err
		}
		router.With(middlewares.RouteGuard(http.MethodGet, page.Path)).Get(page.Path, page.Handler)
	}
	return nil
}
