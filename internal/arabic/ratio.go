package arabic

import (
	"regexp"
	"strings"
	"unicode"
)

// minArabicRatio is the share of Arabic-range characters (over all
// non-whitespace, non-digit characters) a commentary text must reach to be
// accepted as Arabic content.
const minArabicRatio = 0.60

// Ratio returns the share of characters in the Arabic Unicode blocks among
// all non-whitespace, non-digit characters of text. Empty input (or input
// with no countable characters) yields 0.
func Ratio(text string) float64 {
	arabic, total := 0, 0
	for _, r := range text {
		if unicode.IsSpace(r) || unicode.IsDigit(r) {
			continue
		}
		total++
		if IsArabicRune(r) {
			arabic++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(arabic) / float64(total)
}

// IsMostlyArabic reports whether text is predominantly Arabic: at least one
// Arabic character and a Ratio of 0.60 or more.
func IsMostlyArabic(text string) bool {
	return Ratio(text) >= minArabicRatio
}

var (
	htmlTagRE = regexp.MustCompile(`<[^>]*>`)
)

// htmlEntities maps the entities that actually occur in upstream tafsir
// payloads; a full HTML decoder is not needed here.
var htmlEntities = strings.NewReplacer(
	"&nbsp;", " ",
	"&quot;", `"`,
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
)

// CleanHTML strips markup tags, decodes the common entities, collapses
// whitespace runs and trims the result. Used on commentary text fetched
// from the upstream tafsir API before validation and storage.
func CleanHTML(text string) string {
	if text == "" {
		return ""
	}
	out := htmlTagRE.ReplaceAllString(text, " ")
	out = htmlEntities.Replace(out)
	return strings.Join(strings.Fields(out), " ")
}
