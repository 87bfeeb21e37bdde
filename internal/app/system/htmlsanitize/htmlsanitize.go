// Package htmlsanitize provides HTML sanitization for editor-supplied rich text.
// It uses bluemonday to strip potentially dangerous HTML while preserving safe formatting.
//
// Page sections arrive from the admin dashboard as JSON trees whose
// string leaves may contain rich text from the dashboard's editor.
// SanitizeTree walks a whole section payload so nothing reaches the
// database unsanitized.
package htmlsanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	// policy is the shared bluemonday policy for sanitizing rich text.
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy returns the shared sanitization policy, creating it on first use.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		// Start with UGC (User Generated Content) policy as base
		policy = bluemonday.UGCPolicy()

		// Allow common text formatting the dashboard editor emits
		policy.AllowElements("u", "s", "sub", "sup", "mark")

		// Allow data attributes the editor attaches to embeds
		policy.AllowDataAttributes()
	})
	return policy
}

// Sanitize cleans HTML input, removing potentially dangerous elements and attributes.
// It preserves safe formatting like bold, italic, lists, and links.
// Returns the sanitized HTML string.
func Sanitize(html string) string {
	if html == "" {
		return ""
	}
	return getPolicy().Sanitize(html)
}

// IsPlainText checks if content appears to be plain text (no HTML tags).
func IsPlainText(content string) bool {
	if content == "" {
		return true
	}
	// Valid HTML tags require both characters, so if either is missing, treat as plain text
	return !strings.Contains(content, "<") || !strings.Contains(content, ">")
}

// SanitizeTree sanitizes every string leaf of a section payload in
// place and returns it. Maps and lists are walked recursively;
// non-string leaves pass through untouched. Plain-text strings come
// back unchanged because the policy only removes markup.
func SanitizeTree(m bson.M) bson.M {
	for k, v := range m {
		m[k] = sanitizeValue(v)
	}
	return m
}

func sanitizeValue(v any) any {
	switch t := v.(type) {
	case string:
		if IsPlainText(t) {
			return t
		}
		return Sanitize(t)
	case bson.M:
		return SanitizeTree(t)
	case map[string]any:
		for k, inner := range t {
			t[k] = sanitizeValue(inner)
		}
		return t
	case bson.A:
		for i, inner := range t {
			t[i] = sanitizeValue(inner)
		}
		return t
	case []any:
		for i, inner := range t {
			t[i] = sanitizeValue(inner)
		}
		return t
	default:
		return v
	}
}
