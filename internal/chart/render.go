package chart

import (
	"math"
	"sort"

	"github.com/litescript/stardisc/internal/catalog"
	"github.com/litescript/stardisc/internal/logging"
)

// Canvas is the drawing surface the renderer emits primitives to.
// Implementations live outside this package; the renderer never
// finalizes the canvas, the caller does.
type Canvas interface {
	SetRGB(r, g, b float64)
	SetLineWidth(w float64)
	SetDash(lengths ...float64)
	ClearDash()
	DrawCircle(x, y, r float64, filled bool)
	DrawLine(x1, y1, x2, y2 float64)
	DrawText(x, y float64, s string, size float64)
}

const (
	// labelCount is how many of the brightest stars get a name label.
	labelCount = 10

	// labelFontSize is the star-name font size in points;
	// tickFontSize is for the cardinal alignment label.
	labelFontSize = 6
	tickFontSize  = 10

	// markerBaseMM and markerMaxSize bound the magnitude-driven
	// marker radius.
	markerBaseMM  = 2.0
	markerMaxSize = 0.1 * pxPerInch

	// edgeLineWidth and edgeGray style the asterism lines.
	edgeLineWidth = 0.5
	edgeGray      = 0.7
)

// RenderStats counts what a render pass actually drew. Silent drops
// (out-of-bounds markers, edges with a missing endpoint) surface here
// as diagnostics, not errors.
type RenderStats struct {
	StarsDrawn       int      `json:"stars_drawn"`
	StarsOutOfBounds int      `json:"stars_out_of_bounds"`
	EdgesDrawn       int      `json:"edges_drawn"`
	EdgesSkipped     int      `json:"edges_skipped"`
	Labeled          []string `json:"labeled"`
}

// Renderer draws a star list onto a disc template.
type Renderer struct {
	geo   Geometry
	edges map[string][]Edge
}

// NewRenderer creates a renderer for the given disc geometry, using
// the compiled constellation edge table.
func NewRenderer(geo Geometry) *Renderer {
	return &Renderer{geo: geo, edges: Constellations}
}

// Render draws the full disc template: outline, alignment tick, star
// markers sized by magnitude, labels for the ten brightest stars, and
// constellation lines. Edge resolution runs only after every star
// position has been recorded.
func (r *Renderer) Render(c Canvas, stars []catalog.Star) RenderStats {
	var stats RenderStats

	r.drawDiscOutline(c)
	r.drawCenterHole(c)
	r.drawAlignmentMark(c)

	sorted := make([]catalog.Star, len(stars))
	copy(sorted, stars)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Magnitude < sorted[j].Magnitude
	})

	// The brightest stars get labels, identified by name.
	labeled := make(map[string]struct{}, labelCount)
	for i := 0; i < len(sorted) && i < labelCount; i++ {
		labeled[sorted[i].Name] = struct{}{}
		stats.Labeled = append(stats.Labeled, sorted[i].Name)
	}

	// HIP -> final pixel position, for edge resolution. Recorded for
	// every star with a HIP number, in or out of bounds.
	positions := make(map[int][2]float64, len(sorted))

	c.SetRGB(0, 0, 0)
	for _, star := range sorted {
		x, y := r.geo.PolarProject(star.RA, star.Dec)
		if star.HIP != 0 {
			positions[star.HIP] = [2]float64{x, y}
		}

		if !r.geo.InBounds(x, y) {
			stats.StarsOutOfBounds++
			continue
		}

		size := markerSize(star.Magnitude)
		c.DrawCircle(x, y, size, true)
		stats.StarsDrawn++

		if _, ok := labeled[star.Name]; ok {
			// Nudge left of center and below the marker.
			tx := x - float64(len(star.Name))*2
			ty := y + size + 8
			c.DrawText(tx, ty, star.Name, labelFontSize)
		}
	}

	r.drawConstellationLines(c, positions, &stats)

	return stats
}

// drawDiscOutline draws the dashed outer circle and the diameter
// guide lines used when cutting the disc out.
func (r *Renderer) drawDiscOutline(c Canvas) {
	g := r.geo

	c.SetRGB(0, 0, 0)
	c.SetLineWidth(1)
	c.SetDash(5, 5)
	c.DrawCircle(g.Cx, g.Cy, g.Radius, false)

	c.ClearDash()
	c.DrawLine(g.Cx-g.Radius, g.Cy, g.Cx+g.Radius, g.Cy)
	c.DrawLine(g.Cx, g.Cy-g.Radius, g.Cx, g.Cy+g.Radius)
}

// drawCenterHole marks the mounting hole at the disc center.
func (r *Renderer) drawCenterHole(c Canvas) {
	c.ClearDash()
	c.DrawCircle(r.geo.Cx, r.geo.Cy, r.geo.CenterHole/2, false)
}

// drawAlignmentMark draws the north tick at the top of the disc.
// Raster y grows downward, so the top edge is Cy - Radius.
func (r *Renderer) drawAlignmentMark(c Canvas) {
	g := r.geo
	top := g.Cy - g.Radius
	c.DrawLine(g.Cx, top, g.Cx, top+0.25*pxPerInch)
	c.DrawText(g.Cx-0.1*pxPerInch, top+0.2*pxPerInch, "N", tickFontSize)
}

// drawConstellationLines resolves each edge against the recorded star
// positions. An edge with a missing endpoint is skipped silently and
// counted; it is a diagnostic, not an error.
func (r *Renderer) drawConstellationLines(c Canvas, positions map[int][2]float64, stats *RenderStats) {
	log := logging.L()

	c.SetRGB(edgeGray, edgeGray, edgeGray)
	c.SetLineWidth(edgeLineWidth)

	for _, name := range r.edgeNames() {
		for _, e := range r.edges[name] {
			p1, ok1 := positions[e.A]
			p2, ok2 := positions[e.B]
			if !ok1 || !ok2 {
				stats.EdgesSkipped++
				log.Debug().Str("constellation", name).
					Int("hip_a", e.A).Int("hip_b", e.B).
					Msg("skipping edge: endpoint not positioned")
				continue
			}
			c.DrawLine(p1[0], p1[1], p2[0], p2[1])
			stats.EdgesDrawn++
		}
	}
}

// edgeNames returns the renderer's edge-table keys in stable order.
func (r *Renderer) edgeNames() []string {
	names := make([]string, 0, len(r.edges))
	for name := range r.edges {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// markerSize converts apparent magnitude to a marker radius: brighter
// stars (lower magnitudes) get strictly larger markers, capped at
// markerMaxSize. Magnitudes at or below -2 (the Sun, at -26.7, leads
// the HYG catalog) saturate at the cap rather than inverting the
// formula's sign.
func markerSize(mag float64) float64 {
	if mag <= -2 {
		return markerMaxSize
	}
	size := markerBaseMM * (1 / (mag + 2)) * pxPerInch / mmPerInch
	return math.Min(size, markerMaxSize)
}
