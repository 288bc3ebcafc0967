package service

import "strings"

// maskEmailAddress keeps the first and last character of the local part for log lines.
func maskEmailAddress(email string) string {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return ""
	}
	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return "***"
	}
	switch {
	case local == "":
		local = "***"
	case len(local) <= 2:
		local = local[:1] + "***"
	default:
		local = local[:1] + "***" + local[len(local)-1:]
	}
	return local + "@" + domain
}
