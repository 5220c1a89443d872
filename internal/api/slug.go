package api

import "strings"

// Slugify derives a URL-safe identifier from a display name by lowercasing
// and replacing spaces with hyphens. Collisions are allowed: slugs are a
// presentation aid, ids are the real keys.
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
