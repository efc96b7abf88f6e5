package analysis

import (
	"math"
	"strings"
)

// CrisisMatch records a crisis-tier category hit together with the
// literal phrases that triggered it.
type CrisisMatch struct {
	Category string
	Label    string
	Phrases  []string
}

// Scores is the keyword scorer output: one density per standard
// category, crisis flags with matched phrases, and sentiment cue tallies.
type Scores struct {
	Categories map[string]float64
	Crisis     []CrisisMatch
	PosCues    int
	NegCues    int
	WordCount  int
}

// Normalize lower-cases text and folds typographic apostrophes so that
// lexicon phrases like "can't sleep" match either quote style.
func Normalize(text string) string {
	t := strings.ToLower(text)
	t = strings.ReplaceAll(t, "’", "'")
	return t
}

// lengthNormalizer grows sub-linearly with word count so short texts are
// not penalized and long texts do not trivially accumulate score.
func lengthNormalizer(wordCount int) float64 {
	return math.Log2(float64(wordCount)+2) / 8
}

// Score scans normalized text against the lexicon. Category densities
// are occurrences / (keyword count x lengthNormalizer), clipped to
// [0,1]; categories are scored independently. Empty or whitespace-only
// text yields zero scores and no crisis flags.
func Score(lex *Lexicon, text string) Scores {
	norm := Normalize(text)
	words := len(strings.Fields(norm))
	out := Scores{Categories: map[string]float64{}, WordCount: words}
	for _, c := range lex.Categories {
		if c.Tier == TierStandard {
			out.Categories[c.Name] = 0
		}
	}
	if words == 0 {
		return out
	}

	denomScale := lengthNormalizer(words)
	for _, c := range lex.Categories {
		hits := 0
		var phrases []string
		for _, kw := range c.Keywords {
			n := strings.Count(norm, kw)
			if n == 0 {
				continue
			}
			hits += n
			phrases = append(phrases, kw)
		}
		switch c.Tier {
		case TierCrisis:
			if hits > 0 {
				out.Crisis = append(out.Crisis, CrisisMatch{Category: c.Name, Label: c.Label, Phrases: phrases})
			}
		default:
			out.Categories[c.Name] = clip01(float64(hits) / (float64(len(c.Keywords)) * denomScale))
		}
	}

	for _, kw := range lex.PositiveCues {
		out.PosCues += strings.Count(norm, kw)
	}
	for _, kw := range lex.NegativeCues {
		out.NegCues += strings.Count(norm, kw)
	}
	return out
}

// cueDensity converts a cue tally into a [0,1] density with the same
// sub-linear length discount as category scores.
func cueDensity(hits, wordCount int) float64 {
	if wordCount == 0 || hits == 0 {
		return 0
	}
	return clip01(float64(hits) / math.Log2(float64(wordCount)+2))
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
