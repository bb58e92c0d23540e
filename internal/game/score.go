// internal/game/score.go
//
// Scoring of a single guess.
// The error is the plain distance |guess - truth| in degrees, not the circular
// one: guessing 359 against 1 is 358 degrees off.

package game

import (
	"fmt"
	"strconv"
	"strings"
)

// categoryRule pairs a predicate on the error percentage with its category.
type categoryRule struct {
	match    func(pct float64) bool
	category Category
}

// categoryRules is evaluated top to bottom, first match wins. The bands overlap
// at their bounds and leave (90,95) uncovered; both are intended.
var categoryRules = []categoryRule{
	{func(p float64) bool { return p == 100.0 }, CategoryPerfect},
	{func(p float64) bool { return p <= 33.33 }, CategoryFailure},
	{func(p float64) bool { return p > 33.33 && p <= 66.66 }, CategoryError},
	{func(p float64) bool { return p > 66.66 && p <= 90.00 }, CategoryAlmost},
	{func(p float64) bool { return p >= 95.00 }, CategoryGood},
}

// Classify maps an error percentage to its category.
func Classify(pct float64) Category {
	for _, r := range categoryRules {
		if r.match(pct) {
			return r.category
		}
	}
	return CategoryFailure
}

// ErrorPercentage is (360 - |guess - truth|) / 360 * 100.
func ErrorPercentage(guess, truth int) float64 {
	diff := guess - truth
	if diff < 0 {
		diff = -diff
	}
	return float64(360-diff) / 360 * 100
}

// Score rates guess against truth. Range checks belong to ParseGuess.
func Score(guess, truth int) ScoreEntry {
	pct := ErrorPercentage(guess, truth)
	return ScoreEntry{
		ErrorPercentage: pct,
		Category:        Classify(pct),
		Points:          pct / 3,
	}
}

// ParseGuess reads a guess as typed by the player.
func ParseGuess(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGuess, raw)
	}
	if v < 0 || v > 360 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidGuess, v)
	}
	return v, nil
}

// FormatPoints renders a point value with two decimals.
func FormatPoints(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}
