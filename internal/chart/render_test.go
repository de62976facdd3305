package chart

import (
	"fmt"
	"math"
	"os"
	"testing"

	"github.com/litescript/stardisc/internal/catalog"
	"github.com/litescript/stardisc/internal/logging"
)

func init() {
	logging.Discard()
}

// recordingCanvas captures drawing primitives for assertions.
type recordingCanvas struct {
	circles []circleOp
	lines   []lineOp
	texts   []textOp
	saved   string
}

type circleOp struct {
	x, y, r float64
	filled  bool
}

type lineOp struct {
	x1, y1, x2, y2 float64
}

type textOp struct {
	x, y float64
	s    string
	size float64
}

func (c *recordingCanvas) SetRGB(r, g, b float64)      {}
func (c *recordingCanvas) SetLineWidth(w float64)      {}
func (c *recordingCanvas) SetDash(lengths ...float64)  {}
func (c *recordingCanvas) ClearDash()                  {}
func (c *recordingCanvas) DrawLine(x1, y1, x2, y2 float64) {
	c.lines = append(c.lines, lineOp{x1, y1, x2, y2})
}
func (c *recordingCanvas) DrawCircle(x, y, r float64, filled bool) {
	c.circles = append(c.circles, circleOp{x, y, r, filled})
}
func (c *recordingCanvas) DrawText(x, y float64, s string, size float64) {
	c.texts = append(c.texts, textOp{x, y, s, size})
}
func (c *recordingCanvas) Save(path string) error {
	c.saved = path
	return os.WriteFile(path, []byte("png"), 0o644)
}

func (c *recordingCanvas) filledCircles() []circleOp {
	var out []circleOp
	for _, op := range c.circles {
		if op.filled {
			out = append(out, op)
		}
	}
	return out
}

func TestMarkerSize(t *testing.T) {
	// Strictly decreasing in magnitude below the cap, never above it.
	prev := math.Inf(1)
	for mag := -1.2; mag <= 8; mag += 0.1 {
		size := markerSize(mag)
		if size > markerMaxSize {
			t.Errorf("markerSize(%v) = %v exceeds cap %v", mag, size, markerMaxSize)
		}
		if size >= prev {
			t.Errorf("markerSize(%v) = %v, not below previous %v", mag, size, prev)
		}
		prev = size
	}
}

func TestMarkerSize_BrightCapped(t *testing.T) {
	// Very bright stars saturate at the cap instead of growing without
	// bound or, past magnitude -2, flipping negative.
	for _, mag := range []float64{-1.95, -2, -5, -26.7} {
		if got := markerSize(mag); got != markerMaxSize {
			t.Errorf("markerSize(%v) = %v, want cap %v", mag, got, markerMaxSize)
		}
	}
}

// chartStar builds a star whose disc projection is safely inside bounds.
func chartStar(id int, mag float64, name string) catalog.Star {
	return catalog.Star{
		ID:        id,
		HIP:       id,
		Name:      name,
		Magnitude: mag,
		RA:        float64(id%24) + 0.5,
		Dec:       40,
	}
}

func TestRender_LabelsTenBrightest(t *testing.T) {
	var stars []catalog.Star
	for i := 0; i < 15; i++ {
		stars = append(stars, chartStar(i+1, float64(i), fmt.Sprintf("S%02d", i+1)))
	}

	c := &recordingCanvas{}
	stats := NewRenderer(DefaultGeometry()).Render(c, stars)

	if len(stats.Labeled) != 10 {
		t.Fatalf("labeled %d stars, want 10", len(stats.Labeled))
	}
	for i, name := range stats.Labeled {
		want := fmt.Sprintf("S%02d", i+1)
		if name != want {
			t.Errorf("Labeled[%d] = %q, want %q (sorted by magnitude)", i, name, want)
		}
	}

	// Each labeled name appears on the canvas; dimmer stars do not.
	drawn := make(map[string]bool)
	for _, op := range c.texts {
		drawn[op.s] = true
	}
	if !drawn["S01"] || !drawn["S10"] {
		t.Error("brightest stars missing labels on canvas")
	}
	if drawn["S11"] || drawn["S15"] {
		t.Error("dim stars should not be labeled")
	}
}

func TestRender_LabelTiesBrokenByInputOrder(t *testing.T) {
	// Twelve stars with identical magnitude: the first ten by input
	// order win the labels.
	var stars []catalog.Star
	for i := 0; i < 12; i++ {
		stars = append(stars, chartStar(i+1, 1.0, fmt.Sprintf("T%02d", i+1)))
	}

	stats := NewRenderer(DefaultGeometry()).Render(&recordingCanvas{}, stars)

	if len(stats.Labeled) != 10 {
		t.Fatalf("labeled %d stars, want 10", len(stats.Labeled))
	}
	if stats.Labeled[0] != "T01" || stats.Labeled[9] != "T10" {
		t.Errorf("tie-break order wrong: %v", stats.Labeled)
	}
}

func TestRender_OutOfBoundsDroppedSilently(t *testing.T) {
	stars := []catalog.Star{
		chartStar(1, 1, "In"),
		{ID: 2, HIP: 2, Name: "Out", Magnitude: 1, RA: 12, Dec: -90},
	}

	c := &recordingCanvas{}
	stats := NewRenderer(DefaultGeometry()).Render(c, stars)

	if stats.StarsDrawn != 1 {
		t.Errorf("StarsDrawn = %d, want 1", stats.StarsDrawn)
	}
	if stats.StarsOutOfBounds != 1 {
		t.Errorf("StarsOutOfBounds = %d, want 1", stats.StarsOutOfBounds)
	}
	if got := len(c.filledCircles()); got != 1 {
		t.Errorf("filled circles = %d, want 1", got)
	}
}

func TestRender_EdgeNeedsBothEndpoints(t *testing.T) {
	geo := DefaultGeometry()
	r := &Renderer{
		geo: geo,
		edges: map[string][]Edge{
			"Test": {{1, 2}, {2, 3}},
		},
	}

	// Star 3 is absent: edge 2-3 must be skipped, edge 1-2 drawn.
	stars := []catalog.Star{
		chartStar(1, 1, "A"),
		chartStar(2, 2, "B"),
	}

	c := &recordingCanvas{}
	stats := r.Render(c, stars)

	if stats.EdgesDrawn != 1 {
		t.Errorf("EdgesDrawn = %d, want 1", stats.EdgesDrawn)
	}
	if stats.EdgesSkipped != 1 {
		t.Errorf("EdgesSkipped = %d, want 1", stats.EdgesSkipped)
	}

	// The drawn edge connects the two recorded positions exactly.
	x1, y1 := geo.PolarProject(stars[0].RA, stars[0].Dec)
	x2, y2 := geo.PolarProject(stars[1].RA, stars[1].Dec)
	found := false
	for _, op := range c.lines {
		if op == (lineOp{x1, y1, x2, y2}) || op == (lineOp{x2, y2, x1, y1}) {
			found = true
		}
	}
	if !found {
		t.Error("edge line between recorded positions not drawn")
	}
}

func TestRender_OutOfBoundsStarStillAnchorsEdges(t *testing.T) {
	// Positions are recorded before the bounds check, so an edge whose
	// endpoint was dropped as a marker still resolves.
	r := &Renderer{
		geo: DefaultGeometry(),
		edges: map[string][]Edge{
			"Test": {{1, 2}},
		},
	}

	stars := []catalog.Star{
		chartStar(1, 1, "In"),
		{ID: 2, HIP: 2, Name: "Out", Magnitude: 1, RA: 3, Dec: -88},
	}

	stats := r.Render(&recordingCanvas{}, stars)

	if stats.StarsOutOfBounds != 1 {
		t.Fatalf("StarsOutOfBounds = %d, want 1", stats.StarsOutOfBounds)
	}
	if stats.EdgesDrawn != 1 {
		t.Errorf("EdgesDrawn = %d, want 1 (position recorded despite bounds drop)", stats.EdgesDrawn)
	}
}

func TestRender_StarsWithoutHIPNeverAnchorEdges(t *testing.T) {
	r := &Renderer{
		geo: DefaultGeometry(),
		edges: map[string][]Edge{
			"Test": {{0, 1}},
		},
	}

	stars := []catalog.Star{
		{ID: 10, HIP: 0, Name: "NoHip", Magnitude: 1, RA: 2, Dec: 40},
		chartStar(1, 1, "A"),
	}

	stats := r.Render(&recordingCanvas{}, stars)

	if stats.EdgesDrawn != 0 {
		t.Errorf("EdgesDrawn = %d, want 0 (HIP 0 is never recorded)", stats.EdgesDrawn)
	}
	if stats.EdgesSkipped != 1 {
		t.Errorf("EdgesSkipped = %d, want 1", stats.EdgesSkipped)
	}
}

func TestRender_TemplateFurniture(t *testing.T) {
	g := DefaultGeometry()
	c := &recordingCanvas{}
	NewRenderer(g).Render(c, nil)

	// Outline circle and center hole are stroked, not filled.
	var stroked []circleOp
	for _, op := range c.circles {
		if !op.filled {
			stroked = append(stroked, op)
		}
	}
	if len(stroked) != 2 {
		t.Fatalf("stroked circles = %d, want 2 (outline + center hole)", len(stroked))
	}
	if stroked[0].r != g.Radius {
		t.Errorf("outline radius = %v, want %v", stroked[0].r, g.Radius)
	}
	if stroked[1].r != g.CenterHole/2 {
		t.Errorf("center hole radius = %v, want %v", stroked[1].r, g.CenterHole/2)
	}

	// Diameter guides plus the north tick.
	if len(c.lines) != 3 {
		t.Errorf("lines = %d, want 3 (two diameters + north tick)", len(c.lines))
	}

	foundN := false
	for _, op := range c.texts {
		if op.s == "N" {
			foundN = true
		}
	}
	if !foundN {
		t.Error("north label not drawn")
	}
}

func TestRender_NorthTickAtTopOfDisc(t *testing.T) {
	// Raster y grows downward: the tick and its label belong near
	// y = Cy - Radius, not mirrored to the bottom edge.
	g := DefaultGeometry()
	c := &recordingCanvas{}
	NewRenderer(g).Render(c, nil)

	top := g.Cy - g.Radius
	tick := c.lines[len(c.lines)-1]
	if tick.y1 != top || tick.y2 != top+0.25*pxPerInch {
		t.Errorf("tick spans y=(%v, %v), want (%v, %v)", tick.y1, tick.y2, top, top+0.25*pxPerInch)
	}

	for _, op := range c.texts {
		if op.s != "N" {
			continue
		}
		if op.y >= g.Cy {
			t.Errorf("north label at y=%v, below page center %v", op.y, g.Cy)
		}
	}
}
