package analysis

import "github.com/campuswell/mindline/internal/models"

// Classification thresholds. Values are calibration choices; the binding
// contract is the decision order and the monotonic direction of each
// rule.
const (
	// high tier
	highNegEmotion   = 1.6  // sadness + fear + anxiety
	strongNegSent    = -0.6 // sentiment at or below forces high
	// moderate tier
	moderateNegEmotion = 0.55
	moderateNegSent    = -0.25
	escalationScore    = 0.25 // per-category score that counts toward multi-category escalation
	multiCategoryCount = 2

	// reporting
	defaultReportThreshold = 0.20 // risk factor label, unless the category overrides
	tagThreshold           = 0.10 // context tag visibility
)

// ClassifyRisk is the state-free decision procedure. First match wins:
// crisis flags force high; then aggregate negative emotion or strongly
// negative sentiment; then the moderate tier including multi-category
// escalation; otherwise low. Risk factor labels are added for every
// standard category at or above its reporting threshold, independent of
// which rule set the level, plus unconditional crisis labels.
func ClassifyRisk(lex *Lexicon, sc Scores, sentiment float64, em models.Emotions) (models.RiskLevel, []string) {
	factors := make([]string, 0, 4)
	for _, cm := range sc.Crisis {
		factors = appendUnique(factors, cm.Label)
	}
	for _, c := range lex.Categories {
		if c.Tier != TierStandard {
			continue
		}
		threshold := c.ReportThreshold
		if threshold == 0 {
			threshold = defaultReportThreshold
		}
		if sc.Categories[c.Name] >= threshold {
			factors = appendUnique(factors, c.Label)
		}
	}

	if len(sc.Crisis) > 0 {
		return models.RiskHigh, factors
	}

	negAgg := em.Sadness + em.Fear + em.Anxiety
	if negAgg >= highNegEmotion || sentiment <= strongNegSent {
		return models.RiskHigh, factors
	}

	elevated := 0
	for _, v := range sc.Categories {
		if v >= escalationScore {
			elevated++
		}
	}
	if negAgg >= moderateNegEmotion || sentiment <= moderateNegSent || elevated >= multiCategoryCount {
		return models.RiskModerate, factors
	}
	return models.RiskLow, factors
}

// ContextTags lists the labels of every category whose score reaches the
// tag threshold, in taxonomy order. Tags may overlap risk factors; the
// consuming UI renders them differently.
func ContextTags(lex *Lexicon, sc Scores) []string {
	tags := make([]string, 0, 4)
	for _, c := range lex.Categories {
		if c.Tier != TierStandard {
			continue
		}
		if sc.Categories[c.Name] >= tagThreshold {
			tags = appendUnique(tags, c.Label)
		}
	}
	return tags
}

func appendUnique(list []string, v string) []string {
	for _, s := range list {
		if s == v {
			return list
		}
	}
	return append(list, v)
}
