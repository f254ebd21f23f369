package utils

import (
	"medical-portal/internal/pkg/constvars"
	"medical-portal/internal/pkg/dto/requests"
	"net/url"
	"strings"
)

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Redirect = strings.TrimSpace(input.Redirect)
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
	input.Phone = NormalizePhone(input.Phone)
	input.Address = strings.TrimSpace(input.Address)
}

func SanitizeBookingPatientInfo(input *requests.BookingPatientInfo) {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = NormalizePhone(input.Phone)
	input.Email = strings.TrimSpace(input.Email)
	input.Age = strings.TrimSpace(input.Age)
	input.Gender = strings.TrimSpace(input.Gender)
	input.Notes = strings.TrimSpace(input.Notes)
}

// SanitizeRedirectPath keeps only same-site paths, so a login can never bounce
// a user to another origin or back onto loginPath. Anything else falls back to
// fallback.
func SanitizeRedirectPath(raw, loginPath, fallback string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return fallback
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" {
		return fallback
	}
	if parsed.Path == loginPath {
		return fallback
	}
	return parsed.RequestURI()
}

// BuildLoginRedirectURL returns the login entry point carrying the originally
// requested URI.
func BuildLoginRedirectURL(loginPath, requestedURI string) string {
	query := url.Values{}
	query.Set(constvars.QueryParamRedirect, requestedURI)
	return loginPath + "?" + query.Encode()
}
