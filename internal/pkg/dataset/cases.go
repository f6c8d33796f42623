package dataset

import (
	"context"
	"time"

	"github.com/mkorsa/covidash/internal/domain"
	"github.com/mkorsa/covidash/internal/pkg/logger"
	"github.com/mkorsa/covidash/internal/pkg/metrics"
)

const caseDateLayout = "2006-01-02"

// Case source columns. Sno, Time and the two nationality breakdown columns
// are present in the raw export but not part of the target schema; they are
// simply never read.
const (
	colCaseRegion    = "State/UnionTerritory"
	colCaseDate      = "Date"
	colCaseConfirmed = "Confirmed"
	colCaseCured     = "Cured"
	colCaseDeaths    = "Deaths"
)

var caseRequiredColumns = []string{
	colCaseDate,
	colCaseRegion,
	colCaseConfirmed,
	colCaseCured,
	colCaseDeaths,
}

// LoadCases reads the case source and returns cleaned records in source
// order. Rows with a missing or unparseable required field are dropped and
// counted; the derived active count is Confirmed - (Cured + Deaths) for every
// retained row.
func LoadCases(ctx context.Context, path string) ([]domain.CaseRecord, DropStats, error) {
	t, err := readTable(path, caseRequiredColumns)
	if err != nil {
		return nil, DropStats{}, err
	}

	records := make([]domain.CaseRecord, 0, len(t.rows))
	stats := DropStats{Scanned: len(t.rows)}
	for _, row := range t.rows {
		rec, ok := cleanCaseRow(t, row)
		if !ok {
			stats.Dropped++
			metrics.RowsDropped.WithLabelValues("cases").Inc()
			continue
		}
		records = append(records, rec)
	}

	if stats.Dropped > 0 {
		logger.Warnf(ctx, "case source %s: dropped %d of %d rows", path, stats.Dropped, stats.Scanned)
	}

	return records, stats, nil
}

func cleanCaseRow(t *table, row []string) (domain.CaseRecord, bool) {
	region := t.cell(row, colCaseRegion)
	if region == "" {
		return domain.CaseRecord{}, false
	}

	date, err := time.Parse(caseDateLayout, t.cell(row, colCaseDate))
	if err != nil {
		return domain.CaseRecord{}, false
	}

	confirmed, err := parseCount(t.cell(row, colCaseConfirmed))
	if err != nil {
		return domain.CaseRecord{}, false
	}
	cured, err := parseCount(t.cell(row, colCaseCured))
	if err != nil {
		return domain.CaseRecord{}, false
	}
	deaths, err := parseCount(t.cell(row, colCaseDeaths))
	if err != nil {
		return domain.CaseRecord{}, false
	}

	return domain.CaseRecord{
		Region:    region,
		Date:      date,
		Confirmed: confirmed,
		Cured:     cured,
		Deaths:    deaths,
		Active:    confirmed - (cured + deaths),
	}, true
}
