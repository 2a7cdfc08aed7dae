package arabic

import (
	"strings"
	"unicode/utf8"
)

// MatchType identifies which tier of the match cascade produced a hit.
type MatchType int

const (
	MatchNone MatchType = iota
	MatchExact
	MatchPhrase
	MatchWord
	MatchPartial
	MatchFuzzy
)

// String returns the stable wire name of the match type.
func (t MatchType) String() string {
	switch t {
	case MatchExact:
		return "exact"
	case MatchPhrase:
		return "phrase"
	case MatchWord:
		return "word"
	case MatchPartial:
		return "partial"
	case MatchFuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// Scores assigned per tier. The cascade is ordered; the first tier that
// fires wins and later tiers are skipped.
const (
	ScoreExact   = 100
	ScorePhrase  = 90
	ScoreWord    = 85
	ScorePartial = 75
	ScoreFuzzy   = 60
)

// Outcome is the result of matching one candidate text against a query.
type Outcome struct {
	Matches bool
	Score   int
	Type    MatchType
}

var noMatch = Outcome{Matches: false, Score: 0, Type: MatchNone}

// Match decides whether candidate text matches the query and assigns a
// tiered confidence score. Both inputs are normalized internally; callers
// pass raw verse text and the raw user query.
//
// Tiers, cheapest and most precise first:
//
//	exact   (100) query contained with whitespace/edge boundaries on both sides
//	phrase   (90) query contained as a raw substring
//	word     (85) single-word query contained after definite-article
//	              stripping of both sides
//	partial  (75) multi-word query whose every token is found somewhere in
//	              the candidate, order-independent
//	fuzzy    (60) containment under the lossy teh-marbuta fold
//
// A substring occurrence that exists only because the candidate token
// carries the definite article (e.g. query "رحمن" inside "الرحمن") is not
// reported as phrase; it falls through to the word tier so that
// article-insensitive hits rank below true substring hits. Likewise the
// word tier applies to single-token queries only; multi-token queries that
// need article stripping are the partial tier's job. Both rules keep
// article stripping word-boundary-anchored and consistent across tiers.
//
// An empty or whitespace-only query never matches.
func Match(candidate, query string) Outcome {
	normQuery := Normalize(query)
	if normQuery == "" {
		return noMatch
	}
	normCand := Normalize(candidate)
	if normCand == "" {
		return noMatch
	}

	// Tiers 1 and 2 share one scan over the raw occurrences.
	bounded, plain := scanOccurrences(normCand, normQuery)
	if bounded {
		return Outcome{Matches: true, Score: ScoreExact, Type: MatchExact}
	}
	if plain {
		return Outcome{Matches: true, Score: ScorePhrase, Type: MatchPhrase}
	}

	strippedCand := StripArticle(normCand)

	// Tier 3: single-word query against article-stripped forms.
	queryTokens := strings.Fields(normQuery)
	if len(queryTokens) == 1 {
		if strings.Contains(strippedCand, StripArticle(normQuery)) {
			return Outcome{Matches: true, Score: ScoreWord, Type: MatchWord}
		}
	}

	// Tier 4: every token of a multi-word query found somewhere, in any order.
	if len(queryTokens) >= 2 {
		all := true
		for _, tok := range queryTokens {
			if !strings.Contains(strippedCand, StripArticle(tok)) &&
				!strings.Contains(normCand, tok) {
				all = false
				break
			}
		}
		if all {
			return Outcome{Matches: true, Score: ScorePartial, Type: MatchPartial}
		}
	}

	// Tier 5: last resort, lossy teh-marbuta fold on both sides.
	if strings.Contains(NormalizeExtended(candidate), NormalizeExtended(query)) {
		return Outcome{Matches: true, Score: ScoreFuzzy, Type: MatchFuzzy}
	}

	return noMatch
}

// scanOccurrences walks every occurrence of query in candidate (both already
// normalized). bounded reports an occurrence with whitespace or string edges
// on both sides. plain reports an occurrence that is not explained away by a
// definite-article prefix on the enclosing token.
func scanOccurrences(candidate, query string) (bounded, plain bool) {
	for from := 0; ; {
		idx := strings.Index(candidate[from:], query)
		if idx < 0 {
			return bounded, plain
		}
		idx += from
		end := idx + len(query)

		if boundaryBefore(candidate, idx) && boundaryAfter(candidate, end) {
			// Any bounded occurrence settles the top tier.
			return true, plain
		}
		if !articleExplained(candidate, idx) {
			plain = true
		}
		from = idx + 1
	}
}

// boundaryBefore reports whether idx sits at the string start or right after
// a space.
func boundaryBefore(s string, idx int) bool {
	if idx == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:idx])
	return r == ' '
}

// boundaryAfter reports whether end sits at the string end or right before
// a space.
func boundaryAfter(s string, end int) bool {
	if end >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[end:])
	return r == ' '
}

// articleExplained reports whether the occurrence starting at idx is
// preceded, within its token, by exactly the definite article. Such
// occurrences belong to the word tier, not the phrase tier.
func articleExplained(s string, idx int) bool {
	tokenStart := strings.LastIndexByte(s[:idx], ' ') + 1
	return s[tokenStart:idx] == article
}
