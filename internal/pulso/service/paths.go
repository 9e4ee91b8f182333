package service

import "strings"

// Page routes the redirect decisions point at.
const (
	PathHome             = "/"
	PathLogin            = "/login"
	PathRegister         = "/register"
	PathOnboarding       = "/onboarding"
	PathDashboard        = "/dashboard"
	PathUnauthorized     = "/unauthorized"
	PathAcceptInvitation = "/accept-invitation"
)

// hasPathPrefix reports whether path is prefix or a sub-path of it.
// "/dashboard/checklists" matches "/dashboard" but "/dashboardx" does not.
func hasPathPrefix(path, prefix string) bool {
	if prefix == "/" {
		return path == "/"
	}
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// normalizeEmail is applied to every address before lookup or storage.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
