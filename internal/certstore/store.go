// Package certstore discovers certificate aliases usable for signing. It
// reads the OS credential store two ways: natively where a backend is
// available, and through an external enumeration command that prints one
// certificate subject per line. Listing is best effort; every failure
// degrades to an empty list.
package certstore

import (
	"context"
	"regexp"
	"strings"
)

var cnPattern = regexp.MustCompile(`(?i)CN=([^,]+)`)

// ExtractCommonName returns the CN component of a certificate subject,
// trimmed. Subjects without a CN component come back trimmed but otherwise
// unchanged.
func ExtractCommonName(subject string) string {
	if m := cnPattern.FindStringSubmatch(subject); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(subject)
}

// DedupAliases extracts an alias from every non-blank subject line,
// preserving first-occurrence order.
func DedupAliases(subjects []string) []string {
	var aliases []string
	seen := make(map[string]bool)
	for _, subject := range subjects {
		if strings.TrimSpace(subject) == "" {
			continue
		}
		alias := ExtractCommonName(subject)
		if !seen[alias] {
			seen[alias] = true
			aliases = append(aliases, alias)
		}
	}
	return aliases
}

// Lister enumerates certificate aliases from one source.
type Lister interface {
	List(ctx context.Context) ([]string, error)
}

// Aliases merges the native store listing with the external query. The
// query command may be nil to use the platform default.
func Aliases(ctx context.Context, query *CommandLister) []string {
	var subjects []string
	if native, err := (NativeLister{}).List(ctx); err == nil {
		subjects = append(subjects, native...)
	}
	if query == nil {
		query = &CommandLister{}
	}
	if queried, err := query.List(ctx); err == nil {
		subjects = append(subjects, queried...)
	}
	return DedupAliases(subjects)
}
