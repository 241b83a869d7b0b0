package repository

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	maxSlugLength = 80
	fallbackSlug  = "template"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases value, collapses every run of characters outside
// [a-z0-9] into one hyphen, caps the result at 80 characters and trims
// hyphens from both ends. An empty result becomes "template".
func Slugify(value string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(value), "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > maxSlugLength {
		slug = strings.TrimRight(slug[:maxSlugLength], "-")
	}

	if slug == "" {
		return fallbackSlug
	}

	return slug
}

// must hold s.mu
func (s *Store) uniqueSlug(base, ignoreID string) string {
	base = strings.ToLower(base)

	taken := func(candidate string) bool {
		for _, t := range s.templates {
			if t.Slug == candidate && t.ID != ignoreID {
				return true
			}
		}
		return false
	}

	slug := base
	for n := 1; taken(slug); n++ {
		slug = base + "-" + strconv.Itoa(n)
	}

	return slug
}

// sanitizeStrings trims every value and drops the empty ones. The result is never nil.
func sanitizeStrings(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
