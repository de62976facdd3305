package chart

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/litescript/stardisc/internal/astro"
	"github.com/litescript/stardisc/internal/catalog"
	"github.com/litescript/stardisc/internal/logging"
)

// PageCanvas is a Canvas that can be committed to a file.
type PageCanvas interface {
	Canvas
	Save(path string) error
}

// CanvasFunc creates a page canvas of the given pixel size. Generate
// takes a constructor rather than a canvas so the page can be sized
// from the disc geometry.
type CanvasFunc func(width, height int) (PageCanvas, error)

// Options configures one chart generation run.
type Options struct {
	Lat float64
	Lon float64

	// At is the chart instant. Zero means now.
	At time.Time

	// MagLimit is the magnitude cutoff for charted stars. Nil means
	// the catalog's bright-star threshold; magnitude has no lower
	// bound, so zero is an ordinary limit.
	MagLimit *float64

	// HorizonOnly restricts the disc to stars the visibility pass
	// included. Off by default: the disc depicts the static sky and
	// the horizon pass is informational.
	HorizonOnly bool

	OutDir      string
	CatalogURL  string
	CacheDir    string
	HTTPTimeout time.Duration

	// Geometry of the printable disc. Zero value means the default
	// 8 inch disc.
	Geometry Geometry

	// NewCanvas builds the output canvas.
	NewCanvas CanvasFunc
}

// Result reports what one generation run produced.
type Result struct {
	Path string `json:"path"`

	Load     catalog.LoadStats `json:"load"`
	Filtered int               `json:"filtered"`

	Visible      int `json:"visible"`
	BelowHorizon int `json:"below_horizon"`
	KeptForEdges int `json:"kept_for_edges"`
	EphemErrors  int `json:"ephem_errors"`

	Render RenderStats `json:"render"`
}

// Generate runs the whole pipeline: fetch and load the catalog, filter
// by magnitude, run the visibility pass, project onto the disc, render,
// and save one artifact. Only a missing catalog or a failed artifact
// write is fatal; every per-star anomaly degrades to a sparser chart.
func Generate(ctx context.Context, opts Options) (Result, error) {
	var res Result

	if opts.NewCanvas == nil {
		return res, fmt.Errorf("chart: no canvas constructor")
	}
	magLimit := catalog.BrightStarThreshold
	if opts.MagLimit != nil {
		magLimit = *opts.MagLimit
	}
	if opts.Geometry == (Geometry{}) {
		opts.Geometry = DefaultGeometry()
	}
	at := opts.At
	if at.IsZero() {
		at = time.Now().UTC()
	}

	log := logging.L()

	// Catalog acquisition. Total failure here aborts the run.
	fopts := []catalog.FetcherOption{}
	if opts.CatalogURL != "" {
		fopts = append(fopts, catalog.WithURL(opts.CatalogURL))
	}
	if opts.CacheDir != "" {
		fopts = append(fopts, catalog.WithCacheDir(opts.CacheDir))
	}
	if opts.HTTPTimeout > 0 {
		fopts = append(fopts, catalog.WithTimeout(opts.HTTPTimeout))
	}

	path, err := catalog.NewFetcher(fopts...).Fetch(ctx)
	if err != nil {
		return res, err
	}

	f, err := os.Open(path)
	if err != nil {
		return res, fmt.Errorf("%w: open %s: %v", catalog.ErrUnavailable, path, err)
	}
	defer f.Close()

	cat, loadStats, err := catalog.Load(f)
	if err != nil {
		return res, fmt.Errorf("%w: %v", catalog.ErrUnavailable, err)
	}
	res.Load = loadStats
	log.Info().Int("kept", loadStats.RowsKept).Int("skipped", loadStats.RowsSkipped).
		Msg("catalog loaded")

	stars := cat.FilterByMagnitude(magLimit)
	res.Filtered = len(stars)

	// Horizon pass. Informational unless HorizonOnly gates the disc.
	obs := astro.Observer{LatDeg: opts.Lat, LonDeg: opts.Lon}
	visible := NewVisibilityProjector().Project(stars, obs, at)
	res.Visible = len(visible.Stars)
	res.BelowHorizon = visible.BelowHorizon
	res.KeptForEdges = visible.KeptForEdges
	res.EphemErrors = visible.EphemErrors
	log.Info().Int("visible", res.Visible).Int("below_horizon", res.BelowHorizon).
		Int("kept_for_edges", res.KeptForEdges).Int("ephem_errors", res.EphemErrors).
		Msg("visibility pass complete")

	discStars := stars
	if opts.HorizonOnly {
		discStars = make([]catalog.Star, 0, len(visible.Stars))
		for _, vs := range visible.Stars {
			discStars = append(discStars, vs.Star)
		}
	}

	// Render onto the disc and commit.
	geo := opts.Geometry
	canvas, err := opts.NewCanvas(int(geo.PageW), int(geo.PageH))
	if err != nil {
		return res, fmt.Errorf("create canvas: %w", err)
	}

	res.Render = NewRenderer(geo).Render(canvas, discStars)

	artifact := filepath.Join(opts.OutDir, artifactName(at))
	if err := canvas.Save(artifact); err != nil {
		return res, fmt.Errorf("write artifact %s: %w", artifact, err)
	}
	res.Path = artifact

	log.Info().Str("path", artifact).Int("stars_drawn", res.Render.StarsDrawn).
		Int("edges_drawn", res.Render.EdgesDrawn).Msg("star disc written")

	return res, nil
}

// artifactName derives the output file name from the chart instant.
func artifactName(at time.Time) string {
	return fmt.Sprintf("star_disc_%s.png", at.Format("20060102_15"))
}
