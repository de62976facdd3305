package chart

import (
	"math"
	"time"

	"github.com/litescript/stardisc/internal/astro"
	"github.com/litescript/stardisc/internal/catalog"
	"github.com/litescript/stardisc/internal/logging"
)

// EphemerisFunc resolves horizontal coordinates for one star. The
// default is astro.EquatorialToHorizontal; tests substitute fakes.
type EphemerisFunc func(raHours, decDeg float64, obs astro.Observer, t time.Time) (astro.Horizontal, error)

// VisibleStar is a catalog star annotated with its horizontal
// coordinates and a horizon-based planar projection in X/Y.
type VisibleStar struct {
	catalog.Star
	AltDeg float64
	AzDeg  float64
}

// VisibleSet is the outcome of one visibility pass.
type VisibleSet struct {
	Stars []VisibleStar // Input order preserved

	BelowHorizon int // Excluded: below horizon, not edge-required
	KeptForEdges int // Included despite being below the horizon
	EphemErrors  int // Skipped: ephemeris could not resolve them
}

// VisibilityProjector decides which stars are chart-eligible for a
// fixed observer and instant. A star is included when it is above the
// horizon or when a constellation edge references its HIP number.
type VisibilityProjector struct {
	Ephemeris EphemerisFunc
	Required  map[int]struct{}
}

// NewVisibilityProjector wires the projector to the in-process
// ephemeris and the compiled edge table.
func NewVisibilityProjector() *VisibilityProjector {
	return &VisibilityProjector{
		Ephemeris: astro.EquatorialToHorizontal,
		Required:  RequiredHIPs(),
	}
}

// Project runs the visibility pass over stars. An ephemeris failure
// skips that one star and continues; a bad catalog row must not cost
// the whole chart. Included stars carry the flat horizon projection
// x = az·cos(alt), y = alt (radians) — a deliberate simplification,
// kept for the visibility overlay rather than physical accuracy.
func (p *VisibilityProjector) Project(stars []catalog.Star, obs astro.Observer, at time.Time) VisibleSet {
	set := VisibleSet{Stars: make([]VisibleStar, 0, len(stars))}
	log := logging.L()

	for _, star := range stars {
		h, err := p.Ephemeris(star.RA, star.Dec, obs, at)
		if err != nil {
			set.EphemErrors++
			log.Debug().Err(err).Int("id", star.ID).Str("name", star.Name).
				Msg("skipping star: ephemeris query failed")
			continue
		}

		_, required := p.Required[star.HIP]
		if h.AltDeg <= 0 && !required {
			set.BelowHorizon++
			continue
		}
		if h.AltDeg <= 0 {
			set.KeptForEdges++
		}

		altRad := h.AltDeg * math.Pi / 180
		azRad := h.AzDeg * math.Pi / 180

		vs := VisibleStar{Star: star, AltDeg: h.AltDeg, AzDeg: h.AzDeg}
		vs.X = azRad * math.Cos(altRad)
		vs.Y = altRad

		set.Stars = append(set.Stars, vs)
	}

	return set
}
