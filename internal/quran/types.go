// Package quran provides the read-only chapter/verse data layer: domain
// types for the 114 chapters of the Quran, an HTTP client for the
// alquran.cloud content API serving Uthmani-script text, and small helpers
// for slugs, numerals and chapter lookup.
package quran

// TotalChapters is the number of chapters (surahs) in the Quran.
const TotalChapters = 114

// TotalVerses is the number of verses (ayahs) across all chapters.
const TotalVerses = 6236

// Chapter is one surah. Verses is empty on the metadata listing endpoint
// and populated when a single chapter is fetched.
type Chapter struct {
	Number                 int     `json:"number"`
	Name                   string  `json:"name"`
	EnglishName            string  `json:"englishName"`
	EnglishNameTranslation string  `json:"englishNameTranslation"`
	NumberOfVerses         int     `json:"numberOfAyahs"`
	RevelationType         string  `json:"revelationType"`
	Verses                 []Verse `json:"ayahs,omitempty"`
}

// Verse is one ayah carrying the raw Uthmani-script text: Arabic letters,
// combining diacritic marks and Quranic annotation symbols.
type Verse struct {
	Number          int    `json:"number"`          // global verse number (1-6236)
	NumberInChapter int    `json:"numberInSurah"`   // 1-based, contiguous
	Text            string `json:"text"`
	Juz             int    `json:"juz,omitempty"`
	Page            int    `json:"page,omitempty"`
}

// verseCounts holds the number of verses per chapter, indexed by chapter
// number minus one.
var verseCounts = [TotalChapters]int{
	7, 286, 200, 176, 120, 165, 206, 75, 129, 109,
	123, 111, 43, 52, 99, 128, 111, 110, 98, 135,
	112, 78, 118, 64, 77, 227, 93, 88, 69, 60,
	34, 30, 73, 54, 45, 83, 182, 88, 75, 85,
	54, 53, 89, 59, 37, 35, 38, 29, 18, 45,
	60, 49, 62, 55, 78, 96, 29, 22, 24, 13,
	14, 11, 11, 18, 12, 12, 30, 52, 52, 44,
	28, 28, 20, 56, 40, 31, 50, 40, 46, 42,
	29, 19, 36, 25, 22, 17, 19, 26, 30, 20,
	15, 21, 11, 8, 8, 19, 5, 8, 8, 11,
	11, 8, 3, 9, 5, 4, 7, 3, 6, 3,
	5, 4, 5, 6,
}

// VerseCount returns the number of verses in chapter n, or 0 when n is out
// of range.
func VerseCount(n int) int {
	if n < 1 || n > TotalChapters {
		return 0
	}
	return verseCounts[n-1]
}

// ValidChapter reports whether n is a valid chapter number.
func ValidChapter(n int) bool { return n >= 1 && n <= TotalChapters }

// ValidVerseRef reports whether (chapter, verse) names an existing verse.
func ValidVerseRef(chapter, verse int) bool {
	return verse >= 1 && verse <= VerseCount(chapter)
}
