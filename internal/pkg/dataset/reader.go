// Package dataset reads and cleans the two raw tabular sources. Loading is a
// pure projection: rows failing required-field validation are dropped, never
// repaired, and retained rows keep source order.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mkorsa/covidash/internal/pkg/constants"
)

// DropStats reports how much of a source survived cleaning.
type DropStats struct {
	Scanned int `json:"scanned"`
	Dropped int `json:"dropped"`
}

// table is a raw CSV source with a header index. Cells are untrimmed strings;
// interpretation happens per loader.
type table struct {
	columns map[string]int
	rows    [][]string
}

// readTable slurps a CSV file and verifies the required columns exist in the
// header. A missing column means the wrong file, not a bad row, so it fails
// the whole load.
func readTable(path string, required []string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %v: %w", path, err, constants.ErrSourceUnavailable)
	}
	defer func() {
		_ = f.Close()
	}()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are dropped later, not fatal

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %v: %w", path, err, constants.ErrSourceUnavailable)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%s: missing column %q: %w", path, name, constants.ErrDataFormat)
		}
	}

	t := &table{columns: columns}
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %v: %w", path, err, constants.ErrSourceUnavailable)
		}
		t.rows = append(t.rows, row)
	}

	return t, nil
}

// cell returns the trimmed value of a named column, or "" when the row is too
// short or the column does not exist.
func (t *table) cell(row []string, column string) string {
	i, ok := t.columns[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// parseCount parses a non-negative integer cell. Some exports carry counts as
// floats ("48847.0"), those are accepted when integral.
func parseCount(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty count")
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		if v < 0 {
			return 0, fmt.Errorf("negative count %d", v)
		}
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad count %q: %w", s, err)
	}
	if f < 0 || f != float64(int64(f)) {
		return 0, fmt.Errorf("bad count %q", s)
	}
	return int64(f), nil
}
