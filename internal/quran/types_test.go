package quran

import "testing"

func TestVerseCountsSumToTotal(t *testing.T) {
	sum := 0
	for n := 1; n <= TotalChapters; n++ {
		c := VerseCount(n)
		if c <= 0 {
			t.Fatalf("VerseCount(%d) = %d, want positive", n, c)
		}
		sum += c
	}
	if sum != TotalVerses {
		t.Fatalf("verse counts sum to %d, want %d", sum, TotalVerses)
	}
}

func TestVerseCountKnownChapters(t *testing.T) {
	cases := map[int]int{
		1:   7,
		2:   286,
		18:  110,
		55:  78,
		108: 3,
		114: 6,
	}
	for n, want := range cases {
		if got := VerseCount(n); got != want {
			t.Errorf("VerseCount(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestVerseCountOutOfRange(t *testing.T) {
	for _, n := range []int{0, -1, 115, 1000} {
		if got := VerseCount(n); got != 0 {
			t.Errorf("VerseCount(%d) = %d, want 0", n, got)
		}
	}
}

func TestValidChapter(t *testing.T) {
	if !ValidChapter(1) || !ValidChapter(114) {
		t.Fatal("boundary chapters should be valid")
	}
	if ValidChapter(0) || ValidChapter(115) {
		t.Fatal("out-of-range chapters should be invalid")
	}
}

func TestValidVerseRef(t *testing.T) {
	cases := []struct {
		chapter, verse int
		want           bool
	}{
		{1, 1, true},
		{1, 7, true},
		{1, 8, false},
		{2, 286, true},
		{2, 287, false},
		{114, 6, true},
		{114, 0, false},
		{0, 1, false},
		{115, 1, false},
	}
	for _, tc := range cases {
		if got := ValidVerseRef(tc.chapter, tc.verse); got != tc.want {
			t.Errorf("ValidVerseRef(%d, %d) = %v, want %v", tc.chapter, tc.verse, got, tc.want)
		}
	}
}
