// internal/game/drawing.go
//
// Drawing description of a round for the rendering surface.
// The surface paints Discs in order, then Polygons, then Rays.
//
// The clip polygon (center, rayA, rayB) always covers the minor wedge. Below
// 180° the colored wedge is that clipped disc; from 180° on, the whole wedge disc
// is colored and the minor triangle is painted over with the inner color, so the
// colored region keeps following the guessed angle.

package game

// Palette names the colors used by a drawing.
type Palette struct {
	Background string `json:"background" yaml:"background"`
	Wedge      string `json:"wedge" yaml:"wedge"`
	Inner      string `json:"inner" yaml:"inner"`
	Ray        string `json:"ray" yaml:"ray"`
}

// DefaultPalette is black discs, a red angle marker and white rays.
var DefaultPalette = Palette{
	Background: "black",
	Wedge:      "red",
	Inner:      "black",
	Ray:        "white",
}

// Disc is a filled circle, optionally clipped to a polygon.
type Disc struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
	Color  string  `json:"color"`
	Clip   []Point `json:"clip,omitempty"`
}

// Polygon is a filled closed shape.
type Polygon struct {
	Points []Point `json:"points"`
	Color  string  `json:"color"`
}

// Ray is a stroked line segment.
type Ray struct {
	From  Point  `json:"from"`
	To    Point  `json:"to"`
	Color string `json:"color"`
}

// Drawing is everything the rendering surface needs for one round.
type Drawing struct {
	Index    int       `json:"index"`
	Size     float64   `json:"size"`
	Discs    []Disc    `json:"discs"`
	Polygons []Polygon `json:"polygons,omitempty"`
	Rays     []Ray     `json:"rays"`
}

// ClipPolygon is the closed triangle (center, rayA, rayB, center).
func (r Round) ClipPolygon() []Point {
	return []Point{Center, r.RayA, r.RayB, Center}
}

// Drawing describes how to render r with palette p.
func (r Round) Drawing(p Palette) Drawing {
	d := Drawing{
		Index: r.Index,
		Size:  2 * Radius,
		Discs: []Disc{{Center: Center, Radius: Radius, Color: p.Background}},
	}

	wedge := Disc{Center: Center, Radius: WedgeRadius, Color: p.Wedge}
	inner := Disc{Center: Center, Radius: WedgeRadius - 1, Color: p.Inner}
	if r.TrueAngle < 180 {
		wedge.Clip = r.ClipPolygon()
		d.Discs = append(d.Discs, wedge, inner)
	} else {
		d.Discs = append(d.Discs, wedge, inner)
		d.Polygons = append(d.Polygons, Polygon{Points: r.ClipPolygon(), Color: p.Inner})
	}

	d.Rays = []Ray{
		{From: Center, To: r.RayA, Color: p.Ray},
		{From: Center, To: r.RayB, Color: p.Ray},
	}
	return d
}
