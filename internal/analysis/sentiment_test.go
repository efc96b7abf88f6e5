package analysis

import "testing"

func TestSentimentNeutralBaseline(t *testing.T) {
	if s := EstimateSentiment(Score(Default(), "the weather was unremarkable today")); s != 0 {
		t.Fatalf("no-match text sentiment = %f, want exactly 0", s)
	}
}

func TestSentimentDirection(t *testing.T) {
	lex := Default()
	pos := EstimateSentiment(Score(lex, "I feel happy and grateful and calm"))
	if pos <= 0 {
		t.Fatalf("positive cues sentiment = %f, want > 0", pos)
	}
	neg := EstimateSentiment(Score(lex, "everything is terrible and awful and pointless"))
	if neg >= 0 {
		t.Fatalf("negative cues sentiment = %f, want < 0", neg)
	}
}

func TestSentimentCategoryMonotonicity(t *testing.T) {
	lex := Default()
	base := Score(lex, "a plain sentence with enough words to normalize against here")
	for _, cat := range []string{"depression", "anxiety", "isolation", "trauma"} {
		lower := base
		lower.Categories = map[string]float64{cat: 0.2}
		higher := base
		higher.Categories = map[string]float64{cat: 0.6}
		if EstimateSentiment(higher) >= EstimateSentiment(lower) {
			t.Fatalf("raising %s score did not decrease sentiment", cat)
		}
	}
}

func TestSentimentClamped(t *testing.T) {
	sc := Scores{
		Categories: map[string]float64{"depression": 1, "anxiety": 1, "isolation": 1, "trauma": 1},
		NegCues:    40,
		WordCount:  10,
	}
	if s := EstimateSentiment(sc); s != -1 {
		t.Fatalf("sentiment = %f, want clamp to -1", s)
	}
}
