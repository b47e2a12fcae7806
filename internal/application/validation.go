package application

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidName reports whether s can be used as an entity identifier.
func ValidName(s string) bool {
	return validate.Var(strings.TrimSpace(s), "required") == nil
}

// PermissivePhoto keeps photo only when it looks like a link.
// It is deliberately loose: anything containing "http" passes.
func PermissivePhoto(photo string) string {
	if strings.Contains(photo, "http") {
		return photo
	}
	return ""
}

// Dedupe returns the distinct values of in. Callers must not rely on the order.
func Dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
