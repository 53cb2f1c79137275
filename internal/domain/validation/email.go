// Package validation provides pure input validators for form submissions.
package validation

import "regexp"

// emailPattern matches local-part@domain with at least one dot-separated
// domain label. The local part charset is restricted to ASCII letters,
// digits and .!#$%&'*+/=?^_`{|}~- ; domain labels are max 63 chars and may
// not start or end with a hyphen. No network or DNS verification happens.
var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+` +
		`@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?` +
		`(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+$`)

// IsValidEmail reports whether s looks like a deliverable email address.
// Deterministic and side-effect free.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}
