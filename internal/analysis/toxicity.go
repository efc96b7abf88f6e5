package analysis

import "strings"

// NewLexicalToxicity returns the built-in hostile-language scorer used
// when no external classifier is configured for the blended variant.
func NewLexicalToxicity() ToxicityScorer {
	return lexicalToxicity{cues: []string{
		"hate you", "stupid", "idiot", "shut up", "pathetic", "disgusting",
		"screw", "loser", "trash", "despise",
	}}
}

type lexicalToxicity struct {
	cues []string
}

func (t lexicalToxicity) Score(text string) float64 {
	norm := Normalize(text)
	words := len(strings.Fields(norm))
	hits := 0
	for _, c := range t.cues {
		hits += strings.Count(norm, c)
	}
	return cueDensity(hits, words)
}
