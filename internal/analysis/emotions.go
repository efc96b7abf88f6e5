package analysis

import "github.com/campuswell/mindline/internal/models"

// ProfileEmotions maps sentiment and category scores onto the fixed
// five-emotion vector. Each intensity is clamped to [0,1] independently;
// the vector is not a distribution.
//
// Direction contract: joy falls as depression/anxiety rise and as
// sentiment falls; sadness tracks depression; fear and anxiety track the
// anxiety/trauma scores; anger tracks trauma and severe negative
// sentiment.
func ProfileEmotions(sentiment float64, sc Scores) models.Emotions {
	dep := sc.Categories["depression"]
	anx := sc.Categories["anxiety"]
	trauma := sc.Categories["trauma"]
	negSent := 0.0
	if sentiment < 0 {
		negSent = -sentiment
	}
	posSent := 0.0
	if sentiment > 0 {
		posSent = sentiment
	}
	return models.Emotions{
		Joy:     clip01(posSent - 0.5*dep - 0.3*anx),
		Sadness: clip01(dep + 0.3*negSent),
		Anger:   clip01(0.7*trauma + 0.2*negSent),
		Fear:    clip01(0.7*anx + 0.5*trauma),
		Anxiety: clip01(0.9*anx + 0.3*trauma),
	}
}
