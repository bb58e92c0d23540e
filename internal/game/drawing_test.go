package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawing_AcuteAngleClipsWedge(t *testing.T) {
	r := generate(0, &fixedRNG{values: []int{90, 0}})
	d := r.Drawing(DefaultPalette)

	assert.Equal(t, 100.0, d.Size)
	require.Len(t, d.Discs, 3)
	assert.Empty(t, d.Polygons)

	bg, wedge, inner := d.Discs[0], d.Discs[1], d.Discs[2]
	assert.Equal(t, Disc{Center: Center, Radius: 50, Color: "black"}, bg)

	assert.Equal(t, 25.0, wedge.Radius)
	assert.Equal(t, "red", wedge.Color)
	assert.Equal(t, []Point{Center, r.RayA, r.RayB, Center}, wedge.Clip)

	assert.Equal(t, 24.0, inner.Radius)
	assert.Equal(t, "black", inner.Color)
	assert.Nil(t, inner.Clip)
}

func TestDrawing_ReflexAnglePaintsTriangleOver(t *testing.T) {
	r := generate(1, &fixedRNG{values: []int{270, 10}})
	d := r.Drawing(DefaultPalette)

	require.Len(t, d.Discs, 3)
	assert.Nil(t, d.Discs[1].Clip)
	assert.Equal(t, "red", d.Discs[1].Color)
	assert.Equal(t, 24.0, d.Discs[2].Radius)

	require.Len(t, d.Polygons, 1)
	assert.Equal(t, r.ClipPolygon(), d.Polygons[0].Points)
	assert.Equal(t, "black", d.Polygons[0].Color)
}

func TestDrawing_StraightAngleUsesReflexConvention(t *testing.T) {
	r := generate(0, &fixedRNG{values: []int{180, 0}})
	d := r.Drawing(DefaultPalette)

	assert.Len(t, d.Polygons, 1)
	assert.Nil(t, d.Discs[1].Clip)
}

func TestDrawing_RaysFromCenter(t *testing.T) {
	r := Generate(2, 12345)
	p := Palette{Background: "#000", Wedge: "#f00", Inner: "#111", Ray: "#fff"}
	d := r.Drawing(p)

	assert.Equal(t, 2, d.Index)
	assert.Equal(t, []Ray{
		{From: Center, To: r.RayA, Color: "#fff"},
		{From: Center, To: r.RayB, Color: "#fff"},
	}, d.Rays)
	assert.Equal(t, "#000", d.Discs[0].Color)
}
