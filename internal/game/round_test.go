package game

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irevoire/angle/internal/daily"
)

// fixedRNG returns values from a pre-set sequence.
type fixedRNG struct {
	values []int
	idx    int
}

func (r *fixedRNG) IntN(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

func TestGenerate_SameSeedSameRound(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		a := Generate(1, seed)
		b := Generate(1, seed)
		require.Equal(t, a, b, "seed %d", seed)
	}
}

func TestGenerate_DifferentSeedsVary(t *testing.T) {
	seen := make(map[int]bool)
	for seed := uint64(0); seed < 50; seed++ {
		seen[Generate(0, seed).TrueAngle] = true
	}
	assert.Greater(t, len(seen), 10)
}

func TestGenerate_AngleInRangeAndRaysOnCircle(t *testing.T) {
	for seed := uint64(0); seed < 1000; seed++ {
		r := Generate(2, seed)
		require.GreaterOrEqual(t, r.TrueAngle, 0)
		require.Less(t, r.TrueAngle, 360)
		assert.Equal(t, 2, r.Index)
		for _, p := range []Point{r.RayA, r.RayB} {
			dist := math.Hypot(p.X-Center.X, p.Y-Center.Y)
			require.InDelta(t, Radius, dist, 1e-9, "seed %d", seed)
		}
	}
}

func TestGenerate_AngleDrawnBeforeOffset(t *testing.T) {
	r := generate(0, &fixedRNG{values: []int{90, 0}})

	assert.Equal(t, 90, r.TrueAngle)
	assert.Equal(t, 0.0, r.Offset)
	assert.InDelta(t, 100.0, r.RayA.X, 1e-9)
	assert.InDelta(t, 50.0, r.RayA.Y, 1e-9)
	assert.InDelta(t, 50.0, r.RayB.X, 1e-9)
	assert.InDelta(t, 100.0, r.RayB.Y, 1e-9)
}

func TestGenerate_OffsetRotatesBothRays(t *testing.T) {
	r := generate(1, &fixedRNG{values: []int{45, 180}})

	assert.Equal(t, 45, r.TrueAngle)
	assert.InDelta(t, math.Pi, r.Offset, 1e-12)
	assert.InDelta(t, 0.0, r.RayA.X, 1e-9)
	assert.InDelta(t, 50.0, r.RayA.Y, 1e-9)
	assert.InDelta(t, 50-50*math.Sqrt2/2, r.RayB.X, 1e-9)
	assert.InDelta(t, 50-50*math.Sqrt2/2, r.RayB.Y, 1e-9)
}

func TestGenerateDay_UsesDailySeeds(t *testing.T) {
	date := time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC)
	rounds := GenerateDay(date)

	for i, r := range rounds {
		assert.Equal(t, i, r.Index)
		assert.Equal(t, Generate(i, daily.Seed(date, i)), r)
	}
	assert.Equal(t, rounds, GenerateDay(date.Add(20*time.Hour)))
}
