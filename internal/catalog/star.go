// Package catalog models the HYG star catalog: loading, lookup, and
// filter operations over an in-memory star collection.
package catalog

import "strings"

// BrightStarThreshold is the default magnitude cutoff for "bright" stars.
// Lower magnitudes are brighter.
const BrightStarThreshold = 4.5

// Star is a single catalog entry.
type Star struct {
	ID            int     // HYG catalog identifier, unique within a snapshot
	Name          string  // Proper name, else "HIP n", else "HD n"
	Magnitude     float64 // Apparent visual magnitude (lower = brighter)
	RA            float64 // Right ascension in hours [0, 24)
	Dec           float64 // Declination in degrees [-90, 90]
	Constellation string  // IAU constellation abbreviation, may be empty
	CommonName    string  // Proper name if the star has one
	HIP           int     // Hipparcos identifier, 0 when absent

	// Disc-plane coordinates, populated by projectors on copies.
	// The canonical catalog entries are never mutated after load.
	X, Y float64
}

// Catalog is an immutable star collection keyed by catalog ID.
// Filter operations iterate in insertion order.
type Catalog struct {
	stars map[int]Star
	order []int
}

// Len returns the number of stars in the catalog.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Get returns the star with the given catalog ID.
func (c *Catalog) Get(id int) (Star, bool) {
	s, ok := c.stars[id]
	return s, ok
}

// Stars returns all stars in insertion order.
func (c *Catalog) Stars() []Star {
	out := make([]Star, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.stars[id])
	}
	return out
}

// FilterByMagnitude returns all stars with magnitude <= limit,
// in insertion order.
func (c *Catalog) FilterByMagnitude(limit float64) []Star {
	out := make([]Star, 0, len(c.order))
	for _, id := range c.order {
		if s := c.stars[id]; s.Magnitude <= limit {
			out = append(out, s)
		}
	}
	return out
}

// BrightStars returns stars at the default bright-star threshold.
func (c *Catalog) BrightStars() []Star {
	return c.FilterByMagnitude(BrightStarThreshold)
}

// FilterByConstellation returns stars whose constellation abbreviation
// matches name, case-insensitively. Stars without a constellation are
// never returned.
func (c *Catalog) FilterByConstellation(name string) []Star {
	out := make([]Star, 0, 32)
	for _, id := range c.order {
		s := c.stars[id]
		if s.Constellation != "" && strings.EqualFold(s.Constellation, name) {
			out = append(out, s)
		}
	}
	return out
}

// NamedStars returns stars that have a common name.
func (c *Catalog) NamedStars() []Star {
	out := make([]Star, 0, 64)
	for _, id := range c.order {
		if s := c.stars[id]; s.CommonName != "" {
			out = append(out, s)
		}
	}
	return out
}

// add inserts a star, keeping first-seen order. Duplicate IDs overwrite
// the entry but keep the original position.
func (c *Catalog) add(s Star) {
	if _, seen := c.stars[s.ID]; !seen {
		c.order = append(c.order, s.ID)
	}
	c.stars[s.ID] = s
}
