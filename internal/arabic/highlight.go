package arabic

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Marker is the pair of strings wrapped around every highlighted span. The
// engine stays rendering-agnostic; the transport layer decides the actual
// markup syntax.
type Marker struct {
	Prefix string
	Suffix string
}

// DefaultMarker wraps matches in <mark> tags, the shape the web client
// renders directly.
var DefaultMarker = Marker{Prefix: "<mark>", Suffix: "</mark>"}

// span is a half-open byte range into the original text.
type span struct {
	start int
	end   int
}

// charMap aligns the normalized form of a text with byte ranges in the
// original. entry i covers the i-th normalized rune; its range swallows any
// immediately following characters that normalize to nothing, so a letter's
// span includes the diacritics stacked on it. Entries are monotonically
// non-decreasing and never exceed the original length.
type charMap struct {
	runes []rune
	spans []span
}

// buildCharMap walks original rune by rune, producing its normalized form
// and the aligned byte ranges in a single pass. The walk applies the same
// per-rune folding as Normalize; whitespace runs collapse to one space
// entry covering the whole run, and leading/trailing runs produce no entry.
//
// The walk intentionally skips the NFC pre-composition step so the recorded
// offsets always refer to the caller's exact bytes.
func buildCharMap(original string) charMap {
	cm := charMap{}
	pendingWS := false
	wsStart := 0

	for off, r := range original {
		size := utf8.RuneLen(r)
		if unicode.IsSpace(r) {
			if !pendingWS {
				pendingWS = true
				wsStart = off
			}
			continue
		}
		folded, keep := foldRune(r)
		if !keep {
			// Diacritics attach to the preceding letter's range, unless a
			// whitespace run separates them from it.
			if n := len(cm.spans); n > 0 && !pendingWS {
				cm.spans[n-1].end = off + size
			}
			continue
		}
		if pendingWS && len(cm.runes) > 0 {
			cm.runes = append(cm.runes, ' ')
			cm.spans = append(cm.spans, span{start: wsStart, end: off})
		}
		pendingWS = false
		cm.runes = append(cm.runes, folded)
		cm.spans = append(cm.spans, span{start: off, end: off + size})
	}
	return cm
}

// originalSpan translates a normalized-rune range [start, end) into a byte
// range of the original text, clamping defensively instead of erroring when
// an index would fall outside the map.
func (cm charMap) originalSpan(start, end int, originalLen int) span {
	if len(cm.spans) == 0 || start >= end {
		return span{}
	}
	if start < 0 {
		start = 0
	}
	if start >= len(cm.spans) {
		start = len(cm.spans) - 1
	}
	last := end - 1
	if last >= len(cm.spans) {
		last = len(cm.spans) - 1
	}
	out := span{start: cm.spans[start].start, end: cm.spans[last].end}
	if out.end > originalLen {
		out.end = originalLen
	}
	return out
}

// Highlight wraps every query match inside original with the marker pair.
// Matching runs over the normalized form while the emitted string preserves
// the original byte-exactly outside and inside the markers; stripping the
// markers from the result always yields original unchanged.
//
// Both the full normalized query and (when at least two runes long) its
// article-stripped form are scanned, so a query without the definite
// article still lights up the bare word inside an article-bearing token
// while the article itself stays plain surrounding text.
//
// Highlight never fails: an empty query or a query with no occurrences
// returns original as is.
func Highlight(original, query string, marker Marker) string {
	if strings.TrimSpace(query) == "" || original == "" {
		return original
	}

	normQuery := Normalize(query)
	if normQuery == "" {
		return original
	}

	patterns := [][]rune{[]rune(normQuery)}
	if stripped := StripArticle(normQuery); stripped != normQuery && utf8.RuneCountInString(stripped) >= 2 {
		patterns = append(patterns, []rune(stripped))
	}

	cm := buildCharMap(original)
	if len(cm.runes) == 0 {
		return original
	}

	// Collect every occurrence of every pattern, advancing one rune at a
	// time so overlapping occurrences are found too; the merge pass below
	// resolves the overlap.
	var matches []span
	for _, pat := range patterns {
		for from := 0; from <= len(cm.runes)-len(pat); {
			idx := indexRunes(cm.runes, pat, from)
			if idx < 0 {
				break
			}
			matches = append(matches, cm.originalSpan(idx, idx+len(pat), len(original)))
			from = idx + 1
		}
	}
	if len(matches) == 0 {
		return original
	}

	merged := mergeSpans(matches)

	var b strings.Builder
	b.Grow(len(original) + len(merged)*(len(marker.Prefix)+len(marker.Suffix)))
	last := 0
	for _, m := range merged {
		b.WriteString(original[last:m.start])
		b.WriteString(marker.Prefix)
		b.WriteString(original[m.start:m.end])
		b.WriteString(marker.Suffix)
		last = m.end
	}
	b.WriteString(original[last:])
	return b.String()
}

// indexRunes returns the first index >= from where needle occurs in
// haystack, or -1. Linear scan; verse text is short.
func indexRunes(haystack, needle []rune, from int) int {
	if len(needle) == 0 || from < 0 {
		return -1
	}
	for i := from; i+len(needle) <= len(haystack); i++ {
		ok := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				ok = false
				break
			}
		}
		if ok {
			return i
		}
	}
	return -1
}

// mergeSpans sorts spans by start and folds overlapping or adjacent ones,
// extending the current span's end to the maximum seen. Zero-width spans
// are dropped.
func mergeSpans(spans []span) []span {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		return spans[i].end < spans[j].end
	})
	out := make([]span, 0, len(spans))
	for _, s := range spans {
		if s.end <= s.start {
			continue
		}
		if n := len(out); n > 0 && s.start <= out[n-1].end {
			if s.end > out[n-1].end {
				out[n-1].end = s.end
			}
			continue
		}
		out = append(out, s)
	}
	return out
}
