package quran

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSlug is returned when a chapter slug cannot be parsed.
var ErrInvalidSlug = errors.New("invalid chapter slug")

// Slug builds a URL-friendly identifier for a chapter, e.g. "1-al-fatiha".
// Non-alphanumeric runs in the English name collapse to single hyphens.
func Slug(ch Chapter) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(ch.EnglishName) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}
	if b.Len() == 0 {
		return strconv.Itoa(ch.Number)
	}
	return fmt.Sprintf("%d-%s", ch.Number, b.String())
}

// ParseSlug extracts the chapter number from a slug produced by Slug. Only
// the leading digits matter, so stale name segments still resolve.
func ParseSlug(slug string) (int, error) {
	i := 0
	for i < len(slug) && slug[i] >= '0' && slug[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, ErrInvalidSlug
	}
	n, err := strconv.Atoi(slug[:i])
	if err != nil || !ValidChapter(n) {
		return 0, ErrInvalidSlug
	}
	return n, nil
}

// FilterChapters narrows a chapter list by a free-form query: a numeric
// query matches the chapter number exactly, anything else substring-matches
// the English name, its translation, or the Arabic name.
func FilterChapters(chapters []Chapter, query string) []Chapter {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return chapters
	}
	if n, err := strconv.Atoi(q); err == nil {
		for _, ch := range chapters {
			if ch.Number == n {
				return []Chapter{ch}
			}
		}
		return []Chapter{}
	}
	out := make([]Chapter, 0, len(chapters))
	for _, ch := range chapters {
		if strings.Contains(strings.ToLower(ch.EnglishName), q) ||
			strings.Contains(strings.ToLower(ch.EnglishNameTranslation), q) ||
			strings.Contains(ch.Name, strings.TrimSpace(query)) {
			out = append(out, ch)
		}
	}
	return out
}

// ToArabicNumerals renders a non-negative number with Eastern Arabic
// digits, as used for verse markers.
func ToArabicNumerals(n int) string {
	s := strconv.Itoa(n)
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune('٠' + (r - '0'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
