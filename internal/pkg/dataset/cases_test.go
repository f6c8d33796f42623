package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkorsa/covidash/internal/pkg/constants"
)

func writeSource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const caseHeader = "Sno,Date,Time,State/UnionTerritory,ConfirmedIndianNational,ConfirmedForeignNational,Cured,Deaths,Confirmed\n"

func TestLoadCases(t *testing.T) {
	path := writeSource(t, "cases.csv", caseHeader+
		"1,2021-01-01,8:00 AM,Kerala,-,-,1,0,10\n"+
		"2,2021-01-02,8:00 AM,Kerala,-,-,2,1,20\n"+
		"3,2021-01-01,8:00 AM,Delhi,-,-,5,2,50\n")

	records, stats, err := LoadCases(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, 3, stats.Scanned)
	assert.Equal(t, 0, stats.Dropped)

	// source order preserved
	assert.Equal(t, "Kerala", records[0].Region)
	assert.Equal(t, "Delhi", records[2].Region)

	first := records[0]
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, int64(10), first.Confirmed)
	assert.Equal(t, int64(1), first.Cured)
	assert.Equal(t, int64(0), first.Deaths)

	for _, r := range records {
		assert.Equal(t, r.Confirmed-(r.Cured+r.Deaths), r.Active)
	}
}

func TestLoadCasesDropsInvalidRows(t *testing.T) {
	path := writeSource(t, "cases.csv", caseHeader+
		"1,2021-01-01,8:00 AM,Kerala,-,-,1,0,10\n"+
		"2,not-a-date,8:00 AM,Kerala,-,-,2,1,20\n"+ // bad date
		"3,2021-01-03,8:00 AM,,-,-,2,1,20\n"+ // missing region
		"4,2021-01-04,8:00 AM,Kerala,-,-,oops,1,20\n"+ // bad cured count
		"5,2021-01-05,8:00 AM,Kerala,-,-,3,2,30\n")

	records, stats, err := LoadCases(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 5, stats.Scanned)
	assert.Equal(t, 3, stats.Dropped)
	assert.Equal(t, int64(10), records[0].Confirmed)
	assert.Equal(t, int64(30), records[1].Confirmed)
}

func TestLoadCasesAcceptsFloatCounts(t *testing.T) {
	path := writeSource(t, "cases.csv", caseHeader+
		"1,2021-01-01,8:00 AM,Kerala,-,-,1.0,0.0,10.0\n")

	records, _, err := LoadCases(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, int64(10), records[0].Confirmed)
}

func TestLoadCasesMissingColumn(t *testing.T) {
	path := writeSource(t, "cases.csv",
		"Sno,Date,State/UnionTerritory,Cured,Deaths\n"+
			"1,2021-01-01,Kerala,1,0\n")

	_, _, err := LoadCases(context.Background(), path)
	require.ErrorIs(t, err, constants.ErrDataFormat)
}

func TestLoadCasesSourceUnavailable(t *testing.T) {
	_, _, err := LoadCases(context.Background(), filepath.Join(t.TempDir(), "missing.csv"))
	require.ErrorIs(t, err, constants.ErrSourceUnavailable)
}
