// Package arabic implements the Arabic-aware text engine used by the search
// subsystem: normalization of Uthmani-script verse text into a canonical
// comparable form, tiered query matching, match highlighting with index
// remapping back into the diacritic-bearing original, correction
// suggestions, and Arabic-content ratio validation for commentary text.
//
// It is intentionally small and dependency-light, in the same spirit as a
// standalone analysis library:
//
//   - No logging; callers decide how/what to log
//   - Every exported function is total over any Unicode input (never panics)
//   - Deterministic output (stable ordering, idempotent normalization)
//   - Safe for concurrent use: the package holds no mutable state
package arabic

// Unicode code points relevant to Uthmani Quranic typesetting. The exact
// ranges are codified here as named constants rather than buried inside
// regular expressions so the normalization rules stay portable and auditable.
const (
	// Base letters and variants.
	Alef           = 'ا' // ا
	AlefMadda      = 'آ' // آ
	AlefHamzaAbove = 'أ' // أ
	AlefHamzaBelow = 'إ' // إ
	AlefWasla      = 'ٱ' // ٱ
	Yeh            = 'ي' // ي
	AlefMaqsura    = 'ى' // ى
	TehMarbuta     = 'ة' // ة
	Heh            = 'ه' // ه

	// Elongation (kashida).
	Tatweel = 'ـ' // ـ

	// Core tashkeel block: fathatan … sukun.
	tashkeelFirst = 'ً'
	tashkeelLast  = 'ْ'

	// Superscript alef (dagger alef), written above the letter.
	SuperscriptAlef = 'ٰ'

	// Quranic annotation signs: honorifics and small high marks.
	annotationFirst = 'ؐ'
	annotationLast  = 'ؚ'

	// Small high ligatures and stop marks used in Uthmani mushaf typesetting.
	smallHighFirst  = 'ۖ'
	smallHighLast   = 'ۜ'
	smallMarksFirst = '۟'
	smallMarksLast  = 'ۤ'

	SmallHighYeh  = 'ۧ'
	SmallHighNoon = 'ۨ'

	emptyCentreFirst = '۪'
	emptyCentreLast  = 'ۭ'

	// Standalone annotation glyphs (not combining marks).
	EndOfAyah  = '۝' // ۝
	RubElHizb  = '۞' // ۞
	SajdahSign = '۩' // ۩
)

// Arabic script blocks used by Ratio.
const (
	arabicBlockFirst     = '؀'
	arabicBlockLast      = 'ۿ'
	arabicSupplementFrom = 'ݐ'
	arabicSupplementTo   = 'ݿ'
)

// isDiacritic reports whether r is a combining mark that contributes nothing
// to the canonical form: tashkeel, the superscript alef, and the small
// Quranic recitation marks.
func isDiacritic(r rune) bool {
	switch {
	case r >= tashkeelFirst && r <= tashkeelLast:
		return true
	case r == SuperscriptAlef:
		return true
	case r >= annotationFirst && r <= annotationLast:
		return true
	case r >= smallHighFirst && r <= smallHighLast:
		return true
	case r >= smallMarksFirst && r <= smallMarksLast:
		return true
	case r == SmallHighYeh || r == SmallHighNoon:
		return true
	case r >= emptyCentreFirst && r <= emptyCentreLast:
		return true
	}
	return false
}

// isAnnotationGlyph reports whether r is a standalone Uthmani annotation
// symbol (end-of-ayah, rub-el-hizb, sajdah) stripped during normalization.
func isAnnotationGlyph(r rune) bool {
	return r == EndOfAyah || r == RubElHizb || r == SajdahSign
}

// IsArabicRune reports whether r falls in the Arabic or Arabic Supplement
// Unicode blocks.
func IsArabicRune(r rune) bool {
	if r >= arabicBlockFirst && r <= arabicBlockLast {
		return true
	}
	return r >= arabicSupplementFrom && r <= arabicSupplementTo
}
