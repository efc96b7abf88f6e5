package analysis

import (
	"math"
	"strings"
	"testing"
)

func TestScoreEmptyText(t *testing.T) {
	lex := Default()
	for _, text := range []string{"", "   \n\t  "} {
		sc := Score(lex, text)
		if len(sc.Crisis) != 0 {
			t.Fatalf("empty text %q produced crisis flags: %+v", text, sc.Crisis)
		}
		for name, v := range sc.Categories {
			if v != 0 {
				t.Fatalf("empty text %q scored %f in %s", text, v, name)
			}
		}
		if sc.PosCues != 0 || sc.NegCues != 0 {
			t.Fatalf("empty text %q produced cue tallies", text)
		}
	}
}

func TestScoreDensityNormalization(t *testing.T) {
	lex := &Lexicon{Categories: []Category{
		{Name: "c", Label: "c", Tier: TierStandard, Keywords: []string{"blue", "gray", "teal", "plum"}},
	}}
	// 30 words, one hit: 1 / (4 * log2(32)/8) = 0.4
	text := strings.Repeat("pad ", 29) + "blue"
	sc := Score(lex, text)
	if sc.WordCount != 30 {
		t.Fatalf("word count = %d, want 30", sc.WordCount)
	}
	if got := sc.Categories["c"]; math.Abs(got-0.4) > 1e-9 {
		t.Fatalf("density = %f, want 0.4", got)
	}
	// saturation clips to 1
	sc = Score(lex, "blue gray blue")
	if got := sc.Categories["c"]; got != 1 {
		t.Fatalf("saturated density = %f, want 1", got)
	}
}

func TestScorePhraseMatchesAsUnit(t *testing.T) {
	lex := Default()
	if sc := Score(lex, "the movie will kill at the box office"); len(sc.Crisis) != 0 {
		t.Fatalf("partial phrase raised crisis flags: %+v", sc.Crisis)
	}
	sc := Score(lex, "some days I want to Kill Myself")
	if len(sc.Crisis) != 1 || sc.Crisis[0].Category != "suicidal_ideation" {
		t.Fatalf("expected suicidal_ideation crisis match, got %+v", sc.Crisis)
	}
	if len(sc.Crisis[0].Phrases) == 0 || sc.Crisis[0].Phrases[0] != "kill myself" {
		t.Fatalf("expected literal matched phrase, got %+v", sc.Crisis[0].Phrases)
	}
}

func TestScoreApostropheFolding(t *testing.T) {
	sc := Score(Default(), "I can’t sleep anymore")
	if sc.Categories["sleep"] == 0 {
		t.Fatalf("curly apostrophe phrase did not match sleep category")
	}
}

func TestScoreIndependentCategories(t *testing.T) {
	sc := Score(Default(), "worried about exams and worried about money and tuition")
	if sc.Categories["anxiety"] == 0 || sc.Categories["academic"] == 0 || sc.Categories["financial"] == 0 {
		t.Fatalf("expected simultaneous category scores, got %+v", sc.Categories)
	}
}
