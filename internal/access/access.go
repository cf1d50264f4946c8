// Package access decides administrative capability from a static,
// environment-supplied email allow-list. The check is a pure predicate: no
// network calls, no caching, re-evaluated on every request.
package access

import "strings"

// Allowlist is the process-wide set of admin emails, stored lowercased.
type Allowlist struct {
	emails map[string]struct{}
}

// ParseAllowlist builds an Allowlist from a comma-separated string. Entries
// are trimmed and lowercased; empties are dropped.
func ParseAllowlist(raw string) *Allowlist {
	emails := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		email := strings.ToLower(strings.TrimSpace(part))
		if email == "" {
			continue
		}
		emails[email] = struct{}{}
	}
	return &Allowlist{emails: emails}
}

// IsAdmin reports whether the given email is granted administrative
// capability. Empty input is never admin; matching is case-insensitive.
func (a *Allowlist) IsAdmin(email string) bool {
	if email == "" {
		return false
	}
	_, ok := a.emails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

// Size returns how many emails are allow-listed.
func (a *Allowlist) Size() int {
	return len(a.emails)
}
