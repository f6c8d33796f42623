package dashboard

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

const (
	testCaseCSV = "Sno,Date,Time,State/UnionTerritory,ConfirmedIndianNational,ConfirmedForeignNational,Cured,Deaths,Confirmed\n" +
		"1,2021-01-01,8:00 AM,Kerala,-,-,1,0,10\n" +
		"2,2021-01-02,8:00 AM,Kerala,-,-,3,2,30\n" +
		"3,2021-01-01,8:00 AM,Delhi,-,-,1,0,5\n"

	testVaccinationCSV = "Updated On,State,Total Individuals Vaccinated,Male(Individuals Vaccinated),Female(Individuals Vaccinated)\n" +
		"16/01/2021,India,48276,23757,24517\n" +
		"16/01/2021,Kerala,1200,700,400\n" +
		"16/01/2021,Delhi,300,150,140\n"
)

func newTestService(t *testing.T) (*Service, string, string) {
	t.Helper()
	dir := t.TempDir()
	casePath := filepath.Join(dir, "cases.csv")
	vacPath := filepath.Join(dir, "vaccine.csv")
	require.NoError(t, os.WriteFile(casePath, []byte(testCaseCSV), 0o644))
	require.NoError(t, os.WriteFile(vacPath, []byte(testVaccinationCSV), 0o644))

	return NewService(Config{CaseSource: casePath, VaccinationSource: vacPath}), casePath, vacPath
}

func TestSnapshotComputesAllTables(t *testing.T) {
	svc, _, _ := newTestService(t)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snap.Cases, 3)
	require.Len(t, snap.Vaccinations, 2, "national aggregate excluded")
	require.Len(t, snap.Summaries, 2)
	assert.Equal(t, "Kerala", snap.Summaries[0].Region)
	assert.Equal(t, int64(35), snap.Overview.Confirmed.Value)
	assert.Equal(t, int64(1500), snap.Overview.Vaccinated.Value)
	assert.Equal(t, int64(850), snap.Gender.Male)
	assert.Equal(t, []string{"Kerala"}, snap.TopRegionsByConfirmed(1))
}

func TestSnapshotIsCached(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	second, err := svc.Snapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "unchanged sources reuse the snapshot")
	assert.Same(t, first, second)
}

func TestSnapshotInvalidatesOnSourceChange(t *testing.T) {
	svc, casePath, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Snapshot(ctx)
	require.NoError(t, err)

	updated := testCaseCSV + "4,2021-01-03,8:00 AM,Delhi,-,-,2,1,40\n"
	require.NoError(t, os.WriteFile(casePath, []byte(updated), 0o644))
	// size changed, so the key changes even on coarse mtime filesystems;
	// bump mtime anyway to mirror a real edit
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(casePath, future, future))

	second, err := svc.Snapshot(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, second.Cases, 4)
	assert.Equal(t, "Delhi", second.Summaries[0].Region, "ranking follows the new data")
}

func TestReloadRotatesSnapshot(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	second, err := svc.Reload(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID, "reload recomputes even when sources are unchanged")
	assert.Equal(t, first.Summaries, second.Summaries, "same data, same tables")
}

func TestSnapshotMissingSource(t *testing.T) {
	svc := NewService(Config{
		CaseSource:        filepath.Join(t.TempDir(), "missing.csv"),
		VaccinationSource: filepath.Join(t.TempDir(), "missing.csv"),
	})

	_, err := svc.Snapshot(context.Background())
	require.ErrorIs(t, err, constants.ErrSourceUnavailable)
}

func TestPipelineIsDeterministic(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	second, err := svc.Reload(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.Cases, second.Cases)
	assert.Equal(t, first.Vaccinations, second.Vaccinations)
	assert.Equal(t, first.Summaries, second.Summaries)
	assert.Equal(t, first.VaccinationTotals, second.VaccinationTotals)
	assert.Equal(t, first.Gender, second.Gender)
	assert.Equal(t, first.Overview, second.Overview)
}
