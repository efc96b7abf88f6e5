package analysis

// Linear weights for the sentiment estimate. Negative categories are
// weighted descending: depression > anxiety > isolation > trauma.
const (
	wPositiveCues = 0.8
	wNegativeCues = 0.9

	wDepression = 0.8
	wAnxiety    = 0.6
	wIsolation  = 0.45
	wTrauma     = 0.35
)

// EstimateSentiment derives a signed scalar in [-1,1] from cue densities
// and category scores. A text with no matches anywhere yields exactly 0.
// Increasing any negative category score strictly decreases the
// pre-clamp value.
func EstimateSentiment(sc Scores) float64 {
	pos := cueDensity(sc.PosCues, sc.WordCount)
	neg := cueDensity(sc.NegCues, sc.WordCount)
	s := wPositiveCues*pos - wNegativeCues*neg
	s -= wDepression * sc.Categories["depression"]
	s -= wAnxiety * sc.Categories["anxiety"]
	s -= wIsolation * sc.Categories["isolation"]
	s -= wTrauma * sc.Categories["trauma"]
	return clamp(s, -1, 1)
}
