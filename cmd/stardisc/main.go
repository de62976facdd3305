// Command stardisc renders a printable star-disc template for an
// observer location and instant.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/litescript/stardisc/internal/canvas/ggcanvas"
	"github.com/litescript/stardisc/internal/catalog"
	"github.com/litescript/stardisc/internal/chart"
	"github.com/litescript/stardisc/internal/config"
	"github.com/litescript/stardisc/internal/logging"
	"github.com/litescript/stardisc/internal/version"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	lat := flag.Float64("lat", 0, "Observer latitude in degrees (north positive)")
	lon := flag.Float64("lon", 0, "Observer longitude in degrees (east positive)")
	when := flag.String("time", "", "Chart instant, RFC 3339 (default: now)")
	mag := flag.Float64("mag", catalog.BrightStarThreshold, "Magnitude limit (lower = fewer, brighter stars)")
	outDir := flag.String("out", cfg.OutDir, "Output directory for the chart")
	horizonOnly := flag.Bool("horizon-only", false, "Chart only stars the horizon pass includes")
	summary := flag.Bool("summary", false, "Print a run summary table")
	statsPath := flag.String("stats-json", "", "Write run stats as JSON to file (use - for stdout)")
	logLevel := flag.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("stardisc " + version.Version)
		return
	}

	logging.Setup(*logLevel, nil)

	var at time.Time
	if *when != "" {
		at, err = time.Parse(time.RFC3339, *when)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad -time (want RFC 3339): %v\n", err)
			os.Exit(2)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	res, err := chart.Generate(ctx, chart.Options{
		Lat:         *lat,
		Lon:         *lon,
		At:          at,
		MagLimit:    mag,
		HorizonOnly: *horizonOnly,
		OutDir:      *outDir,
		CatalogURL:  cfg.CatalogURL,
		CacheDir:    cfg.CacheDir,
		HTTPTimeout: cfg.HTTPTimeout,
		NewCanvas: func(w, h int) (chart.PageCanvas, error) {
			return ggcanvas.New(w, h)
		},
	})
	if err != nil {
		// Catalog unavailability and artifact-write failures are the
		// only fatal outcomes; everything else degraded gracefully
		// inside Generate.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *statsPath != "" {
		if err := writeStats(res, *statsPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if *summary {
		styled := isatty.IsTerminal(os.Stdout.Fd())
		chart.WriteSummary(os.Stdout, res, styled)
		return
	}

	fmt.Println(res.Path)
}

// writeStats exports the run result as JSON to a file or stdout.
func writeStats(res chart.Result, path string) error {
	if path == "-" {
		return res.WriteJSON(os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create stats file: %w", err)
	}
	defer f.Close()

	return res.WriteJSON(f)
}
