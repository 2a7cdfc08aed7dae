package arabic

import "testing"

func TestRatio(t *testing.T) {
	if got := Ratio(""); got != 0 {
		t.Fatalf("Ratio(\"\") = %v, want 0", got)
	}
	if got := Ratio("   123  "); got != 0 {
		t.Fatalf("digits and spaces should not count: %v", got)
	}
	if got := Ratio("بسم الله"); got != 1 {
		t.Fatalf("pure Arabic should be 1, got %v", got)
	}
	if got := Ratio("abcd"); got != 0 {
		t.Fatalf("pure latin should be 0, got %v", got)
	}
}

func TestIsMostlyArabic(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"بسم الله الرحمن الرحيم", true},
		{"تفسير الآية 255 من سورة البقرة", true}, // digits excluded from the denominator
		{"plain english commentary", false},
		{"", false},
		{"بسم abcdefgh ijklmnop", false}, // Arabic minority
	}
	for _, tc := range tests {
		if got := IsMostlyArabic(tc.text); got != tc.want {
			t.Fatalf("IsMostlyArabic(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestCleanHTML(t *testing.T) {
	in := `<p>قال <b>ابن&nbsp;كثير</b>:&quot;تفسير&quot;</p>`
	want := `قال ابن كثير :"تفسير"`
	if got := CleanHTML(in); got != want {
		t.Fatalf("CleanHTML = %q, want %q", got, want)
	}
	if got := CleanHTML(""); got != "" {
		t.Fatalf("CleanHTML(\"\") = %q", got)
	}
}
