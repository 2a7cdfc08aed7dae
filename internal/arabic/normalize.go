package arabic

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// foldRune maps a single rune to its canonical form. The second return is
// false when the rune contributes nothing to the canonical form (diacritics,
// kashida, annotation glyphs). Whitespace is handled by the caller because
// collapsing requires run context.
func foldRune(r rune) (rune, bool) {
	switch {
	case isDiacritic(r), r == Tatweel, isAnnotationGlyph(r):
		return 0, false
	case r == AlefMadda, r == AlefHamzaAbove, r == AlefHamzaBelow, r == AlefWasla:
		return Alef, true
	case r == AlefMaqsura:
		return Yeh, true
	}
	// Unrecognized characters pass through verbatim.
	return r, true
}

// Normalize canonicalizes Arabic text for comparison: it strips tashkeel,
// kashida and Uthmani annotation glyphs, folds every alef variant to bare
// alef and alef maqsura to yeh, and collapses whitespace runs to single
// spaces with the ends trimmed.
//
// Input is composed to NFC first so that decomposed sequences (for example
// alef followed by a combining madda) normalize identically to their
// precomposed forms.
//
// Normalize is deterministic and idempotent: Normalize(Normalize(s)) ==
// Normalize(s) for every s. Text with no Arabic content passes through
// unchanged apart from whitespace collapsing.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	text = norm.NFC.String(text)

	var b strings.Builder
	b.Grow(len(text))
	pendingSpace := false
	wroteAny := false

	for _, r := range text {
		if unicode.IsSpace(r) {
			pendingSpace = true
			continue
		}
		folded, keep := foldRune(r)
		if !keep {
			continue
		}
		if pendingSpace && wroteAny {
			b.WriteByte(' ')
		}
		pendingSpace = false
		b.WriteRune(folded)
		wroteAny = true
	}
	return b.String()
}

// NormalizeExtended applies Normalize and additionally folds teh marbuta to
// heh. The fold is lossy (it erases grammatical gender marking), so it is
// reserved for the last-resort fuzzy comparison tier and must never be the
// primary match path.
func NormalizeExtended(text string) string {
	normalized := Normalize(text)
	if !strings.ContainsRune(normalized, TehMarbuta) {
		return normalized
	}
	return strings.Map(func(r rune) rune {
		if r == TehMarbuta {
			return Heh
		}
		return r
	}, normalized)
}

// article is the definite-article prefix ("ال") in canonical form.
const article = string('ا') + string('ل')

// StripArticle removes the definite-article prefix from the start of every
// whitespace-separated token of already-normalized text. Stripping is
// anchored at token starts only; the letter pair inside a word is never
// touched. A token that consists of the bare article alone is kept as is.
func StripArticle(normalized string) string {
	if !strings.Contains(normalized, article) {
		return normalized
	}
	fields := strings.Split(normalized, " ")
	for i, tok := range fields {
		if strings.HasPrefix(tok, article) && len(tok) > len(article) {
			fields[i] = tok[len(article):]
		}
	}
	return strings.Join(fields, " ")
}
