package chart

import "math"

// pxPerInch is the output resolution. 72 keeps pixel units equal to
// printer's points, so an 8 inch disc is 576 px across.
const pxPerInch = 72.0

const mmPerInch = 25.4

// Geometry describes the printable disc in pixel units.
type Geometry struct {
	Diameter   float64 // Disc diameter
	Radius     float64 // Disc radius
	CenterHole float64 // Mounting hole diameter
	Margin     float64 // Page margin around the disc
	PageW      float64 // Page width (disc + margins)
	PageH      float64 // Page height
	Cx         float64 // Disc center x on the page
	Cy         float64 // Disc center y on the page
}

// NewGeometry builds disc geometry from physical dimensions.
func NewGeometry(diameterIn, centerHoleMM, marginIn float64) Geometry {
	d := diameterIn * pxPerInch
	m := marginIn * pxPerInch
	g := Geometry{
		Diameter:   d,
		Radius:     d / 2,
		CenterHole: centerHoleMM / mmPerInch * pxPerInch,
		Margin:     m,
		PageW:      d + 2*m,
		PageH:      d + 2*m,
	}
	g.Cx = g.PageW / 2
	g.Cy = g.PageH / 2
	return g
}

// DefaultGeometry is an 8 inch disc with a 5 mm mounting hole and a
// 1 inch page margin.
func DefaultGeometry() Geometry {
	return NewGeometry(8, 5, 1)
}

// PolarProject maps equatorial coordinates onto the disc plane.
// Right ascension becomes the polar angle, declination the radius:
// +90° lands at the disc center, the celestial equator on the rim, and
// -90° at twice the radius, outside the printable disc. Out-of-disc
// points are not clamped here; the renderer's bounds check drops them.
func (g Geometry) PolarProject(raHours, decDeg float64) (x, y float64) {
	theta := (raHours / 24.0) * 2 * math.Pi
	r := g.Radius * (90 - decDeg) / 90

	x = g.Cx + r*math.Cos(theta)
	y = g.Cy + r*math.Sin(theta)
	return x, y
}

// InBounds reports whether a projected point lies within the disc's
// bounding square.
func (g Geometry) InBounds(x, y float64) bool {
	return x >= 0 && x <= g.Diameter && y >= 0 && y <= g.Diameter
}
