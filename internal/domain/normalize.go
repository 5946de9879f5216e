package domain

import (
	"strings"
)

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeTag trims a tag and compresses runs of spaces into one.
// Case is preserved.
func NormalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(tag))
	prevSpace := false
	for _, r := range tag {
		if r == ' ' || r == '\t' {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// NormalizeTags normalizes every tag, drops empties and duplicates,
// and keeps first-seen order. The result is never nil.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		n := NormalizeTag(t)
		if n == "" {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// CleanMood strips line breaks from model output and trims it.
// Returns nil when nothing is left.
func CleanMood(raw string) *string {
	s := strings.NewReplacer("\r", "", "\n", "").Replace(raw)
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
