package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_Symmetric(t *testing.T) {
	for truth := 0; truth < 360; truth++ {
		for guess := 0; guess < 360; guess++ {
			a := Score(guess, truth).ErrorPercentage
			b := Score(truth, guess).ErrorPercentage
			if a != b {
				t.Fatalf("Score(%d,%d)=%v, Score(%d,%d)=%v", guess, truth, a, truth, guess, b)
			}
		}
	}
}

func TestScore_ExactGuessIsPerfect(t *testing.T) {
	for truth := 0; truth < 360; truth++ {
		e := Score(truth, truth)
		require.Equal(t, 100.0, e.ErrorPercentage)
		require.Equal(t, CategoryPerfect, e.Category)
		require.InDelta(t, 33.3333, e.Points, 1e-4)
	}
}

func TestScore_HalfTurnIsError(t *testing.T) {
	e := Score(190, 10)
	assert.Equal(t, 50.0, e.ErrorPercentage)
	assert.Equal(t, CategoryError, e.Category)
	assert.InDelta(t, 50.0/3, e.Points, 1e-12)
}

func TestScore_DistanceIsNotCircular(t *testing.T) {
	e := Score(359, 1)
	assert.InDelta(t, 2.0/360*100, e.ErrorPercentage, 1e-12)
	assert.Equal(t, CategoryFailure, e.Category)
}

func TestScore_GuessOf360(t *testing.T) {
	e := Score(360, 0)
	assert.Equal(t, 0.0, e.ErrorPercentage)
	assert.Equal(t, CategoryFailure, e.Category)
	assert.Equal(t, 0.0, e.Points)
}

func TestClassify_Boundaries(t *testing.T) {
	cases := []struct {
		pct  float64
		want Category
	}{
		{0, CategoryFailure},
		{33.33, CategoryFailure},
		{33.34, CategoryError},
		{50, CategoryError},
		{66.66, CategoryError},
		{66.67, CategoryAlmost},
		{90.0, CategoryAlmost},
		{90.01, CategoryFailure},
		{94.99, CategoryFailure},
		{95.0, CategoryGood},
		{99.99, CategoryGood},
		{100.0, CategoryPerfect},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Classify(c.pct), "pct %v", c.pct)
	}
}

func TestScore_GapBandFromRealGuess(t *testing.T) {
	// 20 degrees off → 94.44%.
	e := Score(120, 100)
	assert.InDelta(t, 94.444, e.ErrorPercentage, 1e-3)
	assert.Equal(t, CategoryFailure, e.Category)

	// 18 degrees off → 95%.
	e = Score(118, 100)
	assert.Equal(t, CategoryGood, e.Category)
}

func TestParseGuess(t *testing.T) {
	ok := map[string]int{"0": 0, "90": 90, " 45\n": 45, "360": 360}
	for in, want := range ok {
		got, err := ParseGuess(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	for _, in := range []string{"", "abc", "12.5", "-1", "361", "9e1"} {
		_, err := ParseGuess(in)
		assert.True(t, errors.Is(err, ErrInvalidGuess), "input %q: %v", in, err)
	}
}

func TestFormatPoints(t *testing.T) {
	assert.Equal(t, "33.33", FormatPoints(100.0/3))
	assert.Equal(t, "0.00", FormatPoints(0))
	assert.Equal(t, "16.67", FormatPoints(50.0/3))
}
