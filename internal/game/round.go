// internal/game/round.go
//
// Deterministic round generation.
// A round is two rays drawn from the center of a disc of radius 50 centered at
// (50,50). The first ray is rotated by a random offset, the second one is rotated
// a further trueAngle degrees. The player guesses trueAngle.
//
// The same seed always yields the same round (see daily.Seed).

package game

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/irevoire/angle/internal/daily"
)

const (
	// Radius of the outer disc; the drawing box is 2*Radius wide.
	Radius = 50.0
	// WedgeRadius is the radius of the colored angle marker.
	WedgeRadius = Radius / 2
)

// Center of the outer disc.
var Center = Point{X: Radius, Y: Radius}

// RNG is the subset of *rand.Rand the generator needs.
type RNG interface {
	IntN(n int) int
}

// NewRNG returns a PCG generator seeded from seed.
func NewRNG(seed uint64) RNG {
	return rand.New(rand.NewPCG(seed, seed))
}

// Generate builds round index from seed.
func Generate(index int, seed uint64) Round {
	return generate(index, NewRNG(seed))
}

// GenerateDay eagerly builds all rounds of the session played on date.
func GenerateDay(date time.Time) [RoundCount]Round {
	var rounds [RoundCount]Round
	for i := range rounds {
		rounds[i] = Generate(i, daily.Seed(date, i))
	}
	return rounds
}

// generate draws the angle first, then the offset. The order is part of the
// seed → round mapping and must not change.
func generate(index int, rng RNG) Round {
	angle := rng.IntN(360)
	offset := radians(rng.IntN(360))
	return Round{
		Index:     index,
		TrueAngle: angle,
		Offset:    offset,
		RayA:      onCircle(offset),
		RayB:      onCircle(offset + radians(angle)),
	}
}

func radians(deg int) float64 { return float64(deg) * math.Pi / 180 }

// onCircle returns the point of the outer circle at angle a (radians).
func onCircle(a float64) Point {
	return Point{
		X: Center.X + Radius*math.Cos(a),
		Y: Center.Y + Radius*math.Sin(a),
	}
}
