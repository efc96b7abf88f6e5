package analysis

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Tier partitions categories by downstream behavior: standard categories
// contribute density scores, crisis categories force a high risk level.
type Tier string

const (
	TierStandard Tier = "standard"
	TierCrisis   Tier = "crisis"
)

// Category is one entry of the taxonomy. Keywords are matched
// case-insensitively as substrings of the normalized text, so multi-word
// phrases match as a unit.
type Category struct {
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Tier     Tier     `json:"tier"`
	Keywords []string `json:"keywords"`

	// ReportThreshold is the minimum density at which the category label
	// is surfaced as a risk factor. Zero means the default applies.
	ReportThreshold float64 `json:"report_threshold,omitempty"`

	// Contextual marks categories describing circumstances (academic,
	// financial, ...) rather than clinical signals; both still feed tags
	// and risk factors, the flag only informs consuming UIs.
	Contextual bool `json:"contextual,omitempty"`
}

// Lexicon is the read-only keyword configuration the scorer runs against.
// Adding a category or keyword is a data change, not a code change.
type Lexicon struct {
	Categories   []Category `json:"categories"`
	PositiveCues []string   `json:"positive_cues"`
	NegativeCues []string   `json:"negative_cues"`
}

// Category returns the category with the given name, or nil.
func (l *Lexicon) Category(name string) *Category {
	for i := range l.Categories {
		if l.Categories[i].Name == name {
			return &l.Categories[i]
		}
	}
	return nil
}

// Load reads a lexicon from a JSON file and validates it.
func Load(path string) (*Lexicon, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	var lex Lexicon
	if err := json.Unmarshal(b, &lex); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}
	if err := lex.validate(); err != nil {
		return nil, fmt.Errorf("invalid lexicon %s: %w", path, err)
	}
	return &lex, nil
}

func (l *Lexicon) validate() error {
	if len(l.Categories) == 0 {
		return fmt.Errorf("no categories")
	}
	seen := map[string]bool{}
	for _, c := range l.Categories {
		if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Label) == "" {
			return fmt.Errorf("category with empty name or label")
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate category %q", c.Name)
		}
		seen[c.Name] = true
		if c.Tier != TierStandard && c.Tier != TierCrisis {
			return fmt.Errorf("category %q: unknown tier %q", c.Name, c.Tier)
		}
		if len(c.Keywords) == 0 {
			return fmt.Errorf("category %q has no keywords", c.Name)
		}
	}
	return nil
}

// Default returns the built-in taxonomy. Names are stable identifiers;
// labels are what dashboards render.
func Default() *Lexicon {
	return &Lexicon{
		Categories: []Category{
			{
				Name: "depression", Label: "signs of depression", Tier: TierStandard,
				Keywords: []string{
					"depressed", "depression", "hopeless", "worthless", "miserable",
					"feeling down", "feel empty", "numb", "no energy", "unhappy",
					"crying", "lost interest",
				},
			},
			{
				Name: "anxiety", Label: "anxiety symptoms", Tier: TierStandard,
				Keywords: []string{
					"anxious", "anxiety", "panic", "nervous", "worried", "worry",
					"overwhelmed", "on edge", "racing thoughts", "heart racing",
					"restless", "uneasy",
				},
			},
			{
				Name: "trauma", Label: "trauma indicators", Tier: TierStandard,
				Keywords: []string{
					"trauma", "flashback", "nightmare", "abuse", "assault",
					"haunted", "ptsd", "terrified", "violated", "shaken",
				},
			},
			{
				Name: "isolation", Label: "social withdrawal", Tier: TierStandard,
				Keywords: []string{
					"lonely", "isolated", "no friends", "nobody cares", "left out",
					"no one to talk", "withdrawn", "disconnected", "invisible",
					"by myself",
				},
			},
			{
				Name: "academic", Label: "academic stress", Tier: TierStandard, Contextual: true,
				ReportThreshold: 0.15,
				Keywords: []string{
					"exam", "assignment", "deadline", "grades", "failing",
					"coursework", "workload", "semester", "studying", "can't focus",
					"classes", "lectures", "thesis", "gpa",
				},
			},
			{
				Name: "financial", Label: "financial stress", Tier: TierStandard, Contextual: true,
				Keywords: []string{
					"money", "broke", "debt", "loan", "tuition", "rent", "bills",
					"afford", "financial", "fees", "budget", "paycheck",
				},
			},
			{
				Name: "sleep", Label: "sleep difficulties", Tier: TierStandard, Contextual: true,
				ReportThreshold: 0.30,
				Keywords: []string{
					"insomnia", "can't sleep", "sleepless", "no sleep",
					"awake all night", "exhausted", "fatigue", "tired",
					"oversleeping", "sleep schedule",
				},
			},
			{
				Name: "social", Label: "social difficulties", Tier: TierStandard, Contextual: true,
				Keywords: []string{
					"shy", "awkward", "embarrassed", "judged", "self-conscious",
					"fitting in", "social anxiety", "rejected", "excluded", "bullied",
				},
			},
			{
				Name: "relationship", Label: "relationship strain", Tier: TierStandard, Contextual: true,
				Keywords: []string{
					"breakup", "broke up", "boyfriend", "girlfriend", "partner",
					"divorce", "cheated", "heartbroken", "relationship", "argument",
				},
			},
			{
				Name: "family", Label: "family pressure", Tier: TierStandard, Contextual: true,
				Keywords: []string{
					"parents", "mother", "father", "sibling", "family conflict",
					"family expectations", "strict parents", "homesick", "at home",
					"family pressure",
				},
			},
			{
				Name: "body_image", Label: "body image concerns", Tier: TierStandard, Contextual: true,
				Keywords: []string{
					"ugly", "appearance", "body image", "hate my body", "not eating",
					"diet", "mirror", "skinny", "weight", "unattractive",
				},
			},
			{
				Name: "perfectionism", Label: "perfectionism", Tier: TierStandard, Contextual: true,
				Keywords: []string{
					"perfectionist", "never good enough", "high standards", "failure",
					"disappoint", "must succeed", "not good enough", "flawless",
				},
			},
			{
				Name: "time", Label: "time pressure", Tier: TierStandard, Contextual: true,
				Keywords: []string{
					"no time", "too busy", "procrastinat", "cramming",
					"overcommitted", "juggling", "running out of time", "last minute",
				},
			},
			{
				Name: "suicidal_ideation", Label: "suicidal ideation", Tier: TierCrisis,
				Keywords: []string{
					"suicide", "suicidal", "kill myself", "end my life",
					"want to die", "better off dead", "end it all",
					"no reason to live", "not worth living", "take my own life",
				},
			},
			{
				Name: "self_harm", Label: "self-harm risk", Tier: TierCrisis,
				Keywords: []string{
					"self harm", "self-harm", "hurt myself", "cut myself",
					"cutting myself", "burn myself", "harm myself", "punish myself",
				},
			},
		},
		PositiveCues: []string{
			"happy", "great", "good", "fine", "okay", "excited", "grateful",
			"hopeful", "better", "improving", "calm", "relaxed", "enjoy",
			"love", "proud", "wonderful",
		},
		NegativeCues: []string{
			"terrible", "awful", "horrible", "can't cope", "can't go on",
			"give up", "hate", "angry", "furious", "frustrated", "stressed",
			"scared", "crying", "pointless", "useless", "dreadful",
		},
	}
}
