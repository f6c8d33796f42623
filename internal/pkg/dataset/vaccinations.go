package dataset

import (
	"context"
	"time"

	"github.com/mkorsa/covidash/internal/domain"
	"github.com/mkorsa/covidash/internal/pkg/logger"
	"github.com/mkorsa/covidash/internal/pkg/metrics"
)

// Vaccination source columns. "Updated On" and "Total Individuals Vaccinated"
// are normalized to date/total on the record; the values pass through
// untouched.
const (
	colVacRegion = "State"
	colVacDate   = "Updated On"
	colVacTotal  = "Total Individuals Vaccinated"
	colVacMale   = "Male(Individuals Vaccinated)"
	colVacFemale = "Female(Individuals Vaccinated)"
)

// nationalAggregate is the sentinel region covering the whole country. It is
// excluded so per-region tables never double-count the national total.
const nationalAggregate = "India"

var vaccinationRequiredColumns = []string{
	colVacDate,
	colVacRegion,
	colVacTotal,
}

// vaccinationDateLayouts: the vaccination export has shipped both ISO dates
// and DD/MM/YYYY.
var vaccinationDateLayouts = []string{"2006-01-02", "02/01/2006"}

// LoadVaccinations reads the vaccination source and returns cleaned records
// in source order, excluding the national aggregate rows. Male/female are
// optional: a missing or blank cell loads as zero and keeps the row.
func LoadVaccinations(ctx context.Context, path string) ([]domain.VaccinationRecord, DropStats, error) {
	t, err := readTable(path, vaccinationRequiredColumns)
	if err != nil {
		return nil, DropStats{}, err
	}

	records := make([]domain.VaccinationRecord, 0, len(t.rows))
	stats := DropStats{Scanned: len(t.rows)}
	for _, row := range t.rows {
		if t.cell(row, colVacRegion) == nationalAggregate {
			continue
		}

		rec, ok := cleanVaccinationRow(t, row)
		if !ok {
			stats.Dropped++
			metrics.RowsDropped.WithLabelValues("vaccinations").Inc()
			continue
		}
		records = append(records, rec)
	}

	if stats.Dropped > 0 {
		logger.Warnf(ctx, "vaccination source %s: dropped %d of %d rows", path, stats.Dropped, stats.Scanned)
	}

	return records, stats, nil
}

func cleanVaccinationRow(t *table, row []string) (domain.VaccinationRecord, bool) {
	region := t.cell(row, colVacRegion)
	if region == "" {
		return domain.VaccinationRecord{}, false
	}

	date, ok := parseVaccinationDate(t.cell(row, colVacDate))
	if !ok {
		return domain.VaccinationRecord{}, false
	}

	total, err := parseCount(t.cell(row, colVacTotal))
	if err != nil {
		return domain.VaccinationRecord{}, false
	}

	return domain.VaccinationRecord{
		Region: region,
		Date:   date,
		Total:  total,
		Male:   optionalCount(t.cell(row, colVacMale)),
		Female: optionalCount(t.cell(row, colVacFemale)),
	}, true
}

func parseVaccinationDate(s string) (time.Time, bool) {
	for _, layout := range vaccinationDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

func optionalCount(s string) int64 {
	v, err := parseCount(s)
	if err != nil {
		return 0
	}
	return v
}
