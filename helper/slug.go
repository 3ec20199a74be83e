package helper

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug slugifies a menu name and appends a random 8-hex suffix so two
// menus with the same name stay distinguishable. Collisions after the suffix
// are treated as negligible and not re-checked.
func GenerateSlug(name string) string {
	base := strings.ToLower(name)
	base = nonSlugChars.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
