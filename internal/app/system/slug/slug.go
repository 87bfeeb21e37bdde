// internal/app/system/slug/slug.go

// Package slug derives URL identifiers from display names.
package slug

import "strings"

// Make lowercases name, strips everything outside [a-z0-9], whitespace
// and hyphens, then collapses whitespace and hyphen runs into single
// hyphens with no leading or trailing hyphen.
//
//	Make("Kids' Dentistry!!") == "kids-dentistry"
func Make(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteRune(' ')
		}
	}

	s := strings.Join(strings.Fields(b.String()), "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}
