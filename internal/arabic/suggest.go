package arabic

import "strings"

// corrections maps known words and phrases to common alternate spellings or
// the article-bearing canonical form. The table is deliberately small: it
// covers the confusions users actually type (missing definite article,
// sad/seen swaps, hamza omissions), not a general spelling dictionary.
//
// Iteration over the table must be deterministic, so the keys are kept in a
// separate ordered slice.
var correctionKeys = []string{
	"رحمن",
	"الرحمن",
	"صراط",
	"سراط",
	"الصراط",
	"مستقيم",
	"المستقيم",
	"عليهم",
	"انعمت",
	"المغضوب",
	"الضالين",
}

var corrections = map[string][]string{
	"رحمن":     {"الرحمن", "رحمان"},
	"الرحمن":   {"رحمن", "رحمان"},
	"صراط":     {"سراط", "الصراط"},
	"سراط":     {"صراط", "الصراط"},
	"الصراط":   {"صراط", "سراط"},
	"مستقيم":   {"المستقيم"},
	"المستقيم": {"مستقيم"},
	"عليهم":    {"عليم"},
	"انعمت":    {"أنعمت"},
	"المغضوب":  {"مغضوب"},
	"الضالين":  {"ضالين"},
}

// maxSuggestions caps the number of corrections returned per query.
const maxSuggestions = 3

// Suggestions returns up to three correction candidates for the query. A
// table key contributes its alternates when the normalized key and the
// normalized query overlap by substring containment in either direction.
// Candidates are deduplicated, any candidate that normalizes identically to
// the query itself is excluded, and discovery order is preserved.
//
// Callers should only consult suggestions for queries of at least two
// runes; shorter queries overlap with nearly every key.
func Suggestions(query string) []string {
	normQuery := Normalize(query)
	if normQuery == "" {
		return nil
	}

	var out []string
	seen := make(map[string]struct{})
	for _, key := range correctionKeys {
		normKey := Normalize(key)
		if !strings.Contains(normKey, normQuery) && !strings.Contains(normQuery, normKey) {
			continue
		}
		for _, alt := range corrections[key] {
			if _, dup := seen[alt]; dup {
				continue
			}
			seen[alt] = struct{}{}
			if Normalize(alt) == normQuery {
				continue
			}
			out = append(out, alt)
			if len(out) == maxSuggestions {
				return out
			}
		}
	}
	return out
}

// frequentWords are common Quranic words offered for autocomplete.
var frequentWords = []string{
	"الله", "الرحمن", "الرحيم", "رب", "العالمين",
	"الصلاة", "الزكاة", "المؤمنين", "الكافرين",
	"الجنة", "النار", "الصراط", "المستقيم",
	"بسم", "الحمد", "إياك", "نعبد", "نستعين",
	"اهدنا", "أنعمت", "المغضوب", "الضالين",
	"قل", "آمنوا", "كفروا", "عملوا", "الصالحات",
}

// maxAutocomplete caps the number of autocomplete candidates.
const maxAutocomplete = 5

// Autocomplete returns up to five frequent Quranic words overlapping the
// query by substring containment in either direction. Queries shorter than
// two runes return nothing.
func Autocomplete(query string) []string {
	normQuery := Normalize(query)
	if len([]rune(normQuery)) < 2 {
		return nil
	}
	var out []string
	for _, w := range frequentWords {
		normWord := Normalize(w)
		if strings.Contains(normWord, normQuery) || strings.Contains(normQuery, normWord) {
			out = append(out, w)
			if len(out) == maxAutocomplete {
				break
			}
		}
	}
	return out
}
