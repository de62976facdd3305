package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/litescript/stardisc/internal/logging"
)

// Columns the loader requires in the CSV header.
var requiredColumns = []string{"id", "proper", "hip", "hd", "mag", "ra", "dec", "con"}

// LoadStats reports what happened during a catalog load.
type LoadStats struct {
	RowsRead    int `json:"rows_read"`
	RowsKept    int `json:"rows_kept"`
	RowsSkipped int `json:"rows_skipped"`
}

// Load parses a HYG-format CSV stream into a Catalog. The first record
// must be a header naming at least id, proper, hip, hd, mag, ra, dec
// and con. A malformed data row is skipped and counted, never fatal.
func Load(r io.Reader) (*Catalog, LoadStats, error) {
	var stats LoadStats

	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, stats, fmt.Errorf("read catalog header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, stats, fmt.Errorf("catalog header missing column %q", name)
		}
	}

	cat := &Catalog{stars: make(map[int]Star)}
	log := logging.L()

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A structurally broken row is dropped like any other bad row.
			stats.RowsRead++
			stats.RowsSkipped++
			log.Debug().Err(err).Int("row", stats.RowsRead).Msg("skipping unreadable catalog row")
			continue
		}
		stats.RowsRead++

		star, err := parseRow(record, col)
		if err != nil {
			stats.RowsSkipped++
			log.Debug().Err(err).Int("row", stats.RowsRead).Msg("skipping malformed catalog row")
			continue
		}

		cat.add(star)
		stats.RowsKept++
	}

	return cat, stats, nil
}

// parseRow converts one CSV record into a Star.
func parseRow(record []string, col map[string]int) (Star, error) {
	field := func(name string) string {
		i := col[name]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	id, err := strconv.Atoi(field("id"))
	if err != nil {
		return Star{}, fmt.Errorf("bad id: %w", err)
	}
	mag, err := strconv.ParseFloat(field("mag"), 64)
	if err != nil {
		return Star{}, fmt.Errorf("bad mag: %w", err)
	}
	ra, err := strconv.ParseFloat(field("ra"), 64)
	if err != nil {
		return Star{}, fmt.Errorf("bad ra: %w", err)
	}
	dec, err := strconv.ParseFloat(field("dec"), 64)
	if err != nil {
		return Star{}, fmt.Errorf("bad dec: %w", err)
	}

	hip := 0
	if v := field("hip"); v != "" {
		hip, err = strconv.Atoi(v)
		if err != nil {
			return Star{}, fmt.Errorf("bad hip: %w", err)
		}
	}

	proper := field("proper")

	// Display name falls back from proper name to HIP to HD designation.
	name := proper
	if name == "" {
		switch {
		case hip != 0:
			name = fmt.Sprintf("HIP %d", hip)
		default:
			name = fmt.Sprintf("HD %s", field("hd"))
		}
	}

	return Star{
		ID:            id,
		Name:          name,
		Magnitude:     mag,
		RA:            ra,
		Dec:           dec,
		Constellation: field("con"),
		CommonName:    proper,
		HIP:           hip,
	}, nil
}
