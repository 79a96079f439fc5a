// Package slugify turns arbitrary title and path strings into URL-safe
// identifiers. Two strategies live here:
//   - NormalizeSlug: for titles and taxonomy names, producing WordPress
//     post_name / nicename values.
//   - StripLegacyHash: for paths taken from Medium URLs, which carry a random
//     trailing post-id suffix that must not survive the migration.
package slugify

import (
	"regexp"
	"strings"
)

var (
	tagRe        = regexp.MustCompile(`<[^>]+>`)
	disallowedRe = regexp.MustCompile(`[^A-Za-z0-9\s-]`)
	separatorRe  = regexp.MustCompile(`[-\s_]+`)

	queryRe      = regexp.MustCompile(`\?.*$`)
	hashSuffixRe = regexp.MustCompile(`-[a-zA-Z0-9]{6,}$`)
	nonPathRe    = regexp.MustCompile(`[^a-zA-Z0-9-]`)
	multiDashRe  = regexp.MustCompile(`-+`)
)

// NormalizeSlug converts text into a URL-friendly slug: embedded markup is
// stripped, anything outside letters/digits/separators is removed, runs of
// whitespace, hyphens and underscores collapse into a single hyphen, and the
// result is trimmed and lower-cased. Idempotent.
func NormalizeSlug(text string) string {
	s := tagRe.ReplaceAllString(text, "")
	s = strings.ReplaceAll(s, "_", " ")
	s = disallowedRe.ReplaceAllString(s, "")
	s = separatorRe.ReplaceAllString(s, "-")
	return strings.ToLower(strings.Trim(s, "-"))
}

// StripLegacyHash cleans a post path taken from a Medium URL. Medium post
// paths end with a random id like "post-title-5691beba463e"; the trailing
// dash plus 6-or-more alphanumerics is removed, along with any query string
// and stray characters. A short numeric suffix that is part of the title
// ("post-with-numbers-123") is preserved.
func StripLegacyHash(path string) string {
	p := queryRe.ReplaceAllString(path, "")
	p = hashSuffixRe.ReplaceAllString(p, "")
	p = nonPathRe.ReplaceAllString(p, "")
	p = multiDashRe.ReplaceAllString(p, "-")
	return strings.ToLower(strings.Trim(p, "-"))
}
