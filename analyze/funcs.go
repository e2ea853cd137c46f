// Package analyze implements the classification of table columns into
// form-field and table-field descriptors, and the detection of belongs-to
// relationships from foreign-key naming conventions. Everything in this
// package is a pure function over in-memory descriptors.
package analyze

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	rules   = ruleset()
	acronym = map[string]struct{}{}
	titler  = cases.Title(language.English)
)

func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	// Common initialisms that keep their casing in identifiers.
	for _, w := range []string{
		"ACL", "API", "ASCII", "CPU", "CSS", "DNS", "EOF", "GB", "GUID",
		"HTML", "HTTP", "HTTPS", "ID", "IP", "JSON", "KB", "LHS", "MAC",
		"MB", "QPS", "RAM", "RHS", "RPC", "SLA", "SMTP", "SQL", "SSH",
		"SSO", "TCP", "TLS", "TTL", "UDP", "UI", "UID", "URI", "URL",
		"UTF8", "UUID", "VM", "XML", "XMPP", "XSRF", "XSS",
	} {
		acronym[w] = struct{}{}
		rules.AddAcronym(w)
	}
	return rules
}

// Pluralize returns the plural form of a word.
func Pluralize(name string) string {
	return rules.Pluralize(name)
}

// Singularize returns the singular form of a word.
func Singularize(name string) string {
	return rules.Singularize(name)
}

// words splits an identifier on underscores, hyphens and case boundaries.
func words(s string) []string {
	var (
		parts []string
		buf   strings.Builder
	)
	flush := func() {
		if buf.Len() > 0 {
			parts = append(parts, buf.String())
			buf.Reset()
		}
	}
	rs := []rune(s)
	for i, r := range rs {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			// Boundary at lower->Upper and at the last upper of an
			// acronym run (HTTPCode -> HTTP, Code).
			if i > 0 && (unicode.IsLower(rs[i-1]) || unicode.IsDigit(rs[i-1]) ||
				(unicode.IsUpper(rs[i-1]) && i+1 < len(rs) && unicode.IsLower(rs[i+1]))) {
				flush()
			}
			buf.WriteRune(r)
		default:
			buf.WriteRune(r)
		}
	}
	flush()
	return parts
}

// Snake converts an identifier to snake_case.
func Snake(s string) string {
	parts := words(s)
	for i, w := range parts {
		parts[i] = strings.ToLower(w)
	}
	return strings.Join(parts, "_")
}

// Kebab converts an identifier to kebab-case.
func Kebab(s string) string {
	parts := words(s)
	for i, w := range parts {
		parts[i] = strings.ToLower(w)
	}
	return strings.Join(parts, "-")
}

// Pascal converts an identifier to PascalCase (studly case). Known
// initialisms keep their upper-cased form ("user_id" -> "UserID").
func Pascal(s string) string {
	parts := words(s)
	for i, w := range parts {
		upper := strings.ToUpper(w)
		if _, ok := acronym[upper]; ok {
			parts[i] = upper
			continue
		}
		parts[i] = titleCase(w)
	}
	return strings.Join(parts, "")
}

// Camel converts an identifier to camelCase.
func Camel(s string) string {
	p := Pascal(s)
	if p == "" {
		return p
	}
	if len(p) > 1 && unicode.IsUpper(rune(p[1])) {
		// Leading acronym is lowered entirely (HTTPCode -> httpCode).
		i := 0
		for i < len(p) && unicode.IsUpper(rune(p[i])) {
			i++
		}
		if i > 1 && i < len(p) {
			i--
		}
		return strings.ToLower(p[:i]) + p[i:]
	}
	return strings.ToLower(p[:1]) + p[1:]
}

// Label converts a column name to a human-readable label: underscores
// and hyphens become spaces and each word is title-cased. Initialisms
// are NOT special-cased here ("user_profile_id" -> "User Profile Id"),
// matching what end users expect to see on a form.
func Label(name string) string {
	s := strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return titler.String(strings.ToLower(s))
}

// titleCase capitalizes the first letter of a single word.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// containsAny reports if the lower-cased name contains any of the given
// substrings. Matching is deliberately loose substring containment, not
// word-boundary matching; see the package tests for the implications.
func containsAny(name string, subs ...string) bool {
	name = strings.ToLower(name)
	for _, sub := range subs {
		if strings.Contains(name, sub) {
			return true
		}
	}
	return false
}
