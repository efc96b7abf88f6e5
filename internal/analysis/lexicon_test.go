package analysis

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLexiconValid(t *testing.T) {
	lex := Default()
	if err := lex.validate(); err != nil {
		t.Fatalf("default lexicon invalid: %v", err)
	}
	crisis := 0
	for _, c := range lex.Categories {
		if c.Tier == TierCrisis {
			crisis++
		}
	}
	if crisis != 2 {
		t.Fatalf("expected 2 crisis categories, got %d", crisis)
	}
	if lex.Category("depression") == nil || lex.Category("suicidal_ideation") == nil {
		t.Fatalf("expected taxonomy anchors missing")
	}
}

func TestLoadLexicon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.json")
	data := `{
	  "categories": [
	    {"name": "burnout", "label": "burnout indicators", "tier": "standard", "keywords": ["burned out", "running on empty"]},
	    {"name": "self_harm", "label": "self-harm risk", "tier": "crisis", "keywords": ["hurt myself"]}
	  ],
	  "positive_cues": ["rested"],
	  "negative_cues": ["drained"]
	}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	lex, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	sc := Score(lex, "completely burned out and drained")
	if sc.Categories["burnout"] == 0 {
		t.Fatalf("loaded category did not score: %+v", sc.Categories)
	}
	if sc.NegCues != 1 {
		t.Fatalf("loaded negative cue tally = %d, want 1", sc.NegCues)
	}
}

func TestLoadLexiconRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	cases := []string{
		`{"categories": []}`,
		`{"categories": [{"name": "x", "label": "x", "tier": "bogus", "keywords": ["y"]}]}`,
		`{"categories": [{"name": "x", "label": "x", "tier": "standard", "keywords": []}]}`,
		`not json`,
	}
	for _, data := range cases {
		if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("expected error for %s", data)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
