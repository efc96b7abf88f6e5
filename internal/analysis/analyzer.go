package analysis

import (
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/campuswell/mindline/internal/models"
)

// Variant selects the scoring path at configuration time rather than by
// runtime feature detection; both paths are independently testable.
type Variant string

const (
	// VariantKeywordOnly runs the pure lexical pipeline.
	VariantKeywordOnly Variant = "keyword"
	// VariantBlended folds a generic toxicity score into sentiment and
	// anger and reports a higher confidence.
	VariantBlended Variant = "blended"
)

// ToxicityScorer produces a generic toxicity score in [0,1] for a text.
// The blended variant accepts any implementation; LexicalToxicity is the
// built-in one.
type ToxicityScorer interface {
	Score(text string) float64
}

// ErrorRiskFactor marks results produced by the degraded path after an
// internal failure, so a genuine low-risk read stays distinguishable.
const ErrorRiskFactor = "analysis error"

const (
	baseConfidence     = 0.45
	perTagConfidence   = 0.05
	maxTagConfidence   = 0.25
	crisisConfidence   = 0.85
	blendConfidence    = 0.15
	degradedConfidence = 0.15
)

// Analyzer is the local scoring pipeline: pure functions over the
// lexicon plus injectable id and clock sources for deterministic tests.
type Analyzer struct {
	lexicon  *Lexicon
	variant  Variant
	toxicity ToxicityScorer
	now      func() time.Time
	newID    func() string
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithVariant selects the scoring variant. VariantBlended requires a
// toxicity scorer; if none was supplied the built-in lexical one is used.
func WithVariant(v Variant) Option { return func(a *Analyzer) { a.variant = v } }

// WithToxicityScorer installs the external classifier used by the
// blended variant.
func WithToxicityScorer(t ToxicityScorer) Option { return func(a *Analyzer) { a.toxicity = t } }

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option { return func(a *Analyzer) { a.now = now } }

// WithIDGenerator overrides the id source.
func WithIDGenerator(gen func() string) Option { return func(a *Analyzer) { a.newID = gen } }

// NewAnalyzer builds a keyword-only analyzer over the given lexicon
// (Default() when nil).
func NewAnalyzer(lex *Lexicon, opts ...Option) *Analyzer {
	a := &Analyzer{
		lexicon: lex,
		variant: VariantKeywordOnly,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
	if a.lexicon == nil {
		a.lexicon = Default()
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.variant == VariantBlended && a.toxicity == nil {
		a.toxicity = NewLexicalToxicity()
	}
	return a
}

// Analyze runs the full local pipeline and always returns a fully
// populated result. Empty text is not an error: it yields the neutral
// baseline. An internal panic is contained and produces the documented
// degraded result instead of propagating.
func (a *Analyzer) Analyze(text string) (res *models.AssessmentResult) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("analysis: pipeline failure, emitting degraded result: %v", r)
			res = a.degraded(text)
		}
	}()

	sc := Score(a.lexicon, text)
	sentiment := EstimateSentiment(sc)

	toxicity := 0.0
	if a.variant == VariantBlended {
		toxicity = clip01(a.toxicity.Score(text))
		sentiment = clamp(sentiment-0.4*toxicity, -1, 1)
	}

	em := ProfileEmotions(sentiment, sc)
	if toxicity > 0 {
		em.Anger = clip01(em.Anger + 0.5*toxicity)
	}
	level, factors := ClassifyRisk(a.lexicon, sc, sentiment, em)
	tags := ContextTags(a.lexicon, sc)

	return &models.AssessmentResult{
		ID:          a.newID(),
		Text:        text,
		Sentiment:   sentiment,
		Emotions:    em,
		RiskLevel:   level,
		RiskFactors: factors,
		Tags:        tags,
		Confidence:  a.confidence(len(tags), len(sc.Crisis) > 0),
		Timestamp:   a.now(),
	}
}

// confidence is declared, not measured: a floor for bare text, a bump
// per matched category, a floor raise on crisis matches, and a premium
// for the blended variant.
func (a *Analyzer) confidence(tagCount int, crisis bool) float64 {
	boost := perTagConfidence * float64(tagCount)
	if boost > maxTagConfidence {
		boost = maxTagConfidence
	}
	conf := baseConfidence + boost
	if crisis && conf < crisisConfidence {
		conf = crisisConfidence
	}
	if a.variant == VariantBlended {
		conf += blendConfidence
	}
	return clip01(conf)
}

// degraded is the neutral substitute emitted when a scorer fails; every
// field is still present.
func (a *Analyzer) degraded(text string) *models.AssessmentResult {
	return &models.AssessmentResult{
		ID:          a.newID(),
		Text:        text,
		Sentiment:   0,
		Emotions:    models.Emotions{},
		RiskLevel:   models.RiskLow,
		RiskFactors: []string{ErrorRiskFactor},
		Tags:        []string{},
		Confidence:  degradedConfidence,
		Timestamp:   a.now(),
	}
}
