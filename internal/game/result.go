// internal/game/result.go
//
// Composition of the final result: total of the three rounds, a verdict picked
// from fixed score bands, and the display strings for the end-of-game popup.

package game

import (
	"strings"
)

// verdictRule pairs a predicate on the total with its verdict.
type verdictRule struct {
	match   func(total float64) bool
	verdict string
}

func band(lo, hi float64) func(float64) bool {
	return func(t float64) bool { return t >= lo && t <= hi }
}

// verdictRules is evaluated top to bottom, first match wins. A perfect 100 is
// checked before the [90,100] band.
var verdictRules = []verdictRule{
	{func(t float64) bool { return t == 100.0 }, "Wow, cheating in a game like that? Really?"},
	{band(0, 10), "Do you have a humiliation kink?"},
	{band(10, 20), "You don't have anything better to do?"},
	{band(20, 30), "Nice, your score matches your IQ"},
	{band(30, 40), "If you are looking for information on the Germanic invaders, you're not on the right website"},
	{band(40, 50), "Just forget this website I don't want to see your face tomorrow"},
	{band(50, 60), "My dog plays better than you"},
	{band(60, 70), "Did you understand the purpose of this game?"},
	{band(70, 80), "At this point, picking random numbers may yield better results"},
	{band(80, 90), "You're supposed to think before typing"},
	{band(90, 100), "Not bad for a blind person"},
}

// FallbackVerdict is used for totals outside every band.
const FallbackVerdict = "I lost your score but it was probably bad anyway"

// Verdict picks the verdict string for total.
func Verdict(total float64) string {
	for _, r := range verdictRules {
		if r.match(total) {
			return r.verdict
		}
	}
	return FallbackVerdict
}

// Compose sums the round points and builds the popup strings.
func Compose(entries [RoundCount]ScoreEntry) GameResult {
	var total float64
	parts := make([]string, 0, RoundCount)
	for _, e := range entries {
		total += e.Points
		parts = append(parts, FormatPoints(e.Points))
	}
	return GameResult{
		Total:     total,
		Verdict:   Verdict(total),
		Score:     "Score: " + FormatPoints(total),
		Breakdown: strings.Join(parts, " + "),
	}
}
