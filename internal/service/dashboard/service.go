// Package dashboard composes the loader and the aggregations into a cached,
// immutable snapshot of everything the presentation layer reads.
package dashboard

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/mkorsa/covidash/internal/domain"
	"github.com/mkorsa/covidash/internal/pkg/constants"
	"github.com/mkorsa/covidash/internal/pkg/dataset"
	"github.com/mkorsa/covidash/internal/pkg/logger"
	"github.com/mkorsa/covidash/internal/pkg/metrics"
)

type Config struct {
	CaseSource        string
	VaccinationSource string
}

// Snapshot is one fully loaded and aggregated view of both sources. It is
// immutable after creation; callers must not modify any of its slices.
type Snapshot struct {
	ID       uuid.UUID
	LoadedAt time.Time

	Cases        []domain.CaseRecord
	Vaccinations []domain.VaccinationRecord

	Summaries         []domain.RegionSummary
	VaccinationTotals RegionVaccinationTotals
	Gender            domain.GenderSplit
	Overview          domain.Overview

	CaseDrops        dataset.DropStats
	VaccinationDrops dataset.DropStats
}

// Info is the operator-facing description of a snapshot.
type Info struct {
	ID                     string    `json:"id"`
	LoadedAt               time.Time `json:"loaded_at"`
	CaseRows               int       `json:"case_rows"`
	VaccinationRows        int       `json:"vaccination_rows"`
	DroppedCaseRows        int       `json:"dropped_case_rows"`
	DroppedVaccinationRows int       `json:"dropped_vaccination_rows"`
}

func (s *Snapshot) Info() Info {
	return Info{
		ID:                     s.ID.String(),
		LoadedAt:               s.LoadedAt,
		CaseRows:               len(s.Cases),
		VaccinationRows:        len(s.Vaccinations),
		DroppedCaseRows:        s.CaseDrops.Dropped,
		DroppedVaccinationRows: s.VaccinationDrops.Dropped,
	}
}

// Service owns the snapshot cache. The cache key is the identity of the two
// source files (path, mtime, size); concurrent callers racing on a cold or
// stale cache share one load through singleflight.
type Service struct {
	cfg   Config
	group singleflight.Group

	mu   sync.RWMutex
	key  string
	snap *Snapshot
}

func NewService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

// Snapshot returns the current snapshot, computing it at most once per source
// identity.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	key, err := s.sourceKey()
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	snap, cachedKey := s.snap, s.key
	s.mu.RUnlock()
	if snap != nil && cachedKey == key {
		return snap, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		snap, err := s.load(ctx)
		if err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.snap, s.key = snap, key
		s.mu.Unlock()

		return snap, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Snapshot), nil
}

// Invalidate drops the cached snapshot; the next Snapshot call recomputes.
func (s *Service) Invalidate() {
	s.mu.Lock()
	s.snap, s.key = nil, ""
	s.mu.Unlock()
}

// Reload invalidates and recomputes in one step.
func (s *Service) Reload(ctx context.Context) (*Snapshot, error) {
	s.Invalidate()
	return s.Snapshot(ctx)
}

// sourceKey derives the cache key from both source files. A source that
// cannot be stat'ed fails the whole access; there is no partial dashboard.
func (s *Service) sourceKey() (string, error) {
	var b strings.Builder
	for _, path := range []string{s.cfg.CaseSource, s.cfg.VaccinationSource} {
		fi, err := os.Stat(path)
		if err != nil {
			return "", fmt.Errorf("stat %s: %v: %w", path, err, constants.ErrSourceUnavailable)
		}
		fmt.Fprintf(&b, "%s|%d|%d;", path, fi.ModTime().UnixNano(), fi.Size())
	}
	return b.String(), nil
}

func (s *Service) load(ctx context.Context) (*Snapshot, error) {
	start := time.Now()

	snap := &Snapshot{
		ID:       uuid.New(),
		LoadedAt: start.UTC(),
	}

	// The two sources are independent; read them in parallel.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		snap.Cases, snap.CaseDrops, err = dataset.LoadCases(egCtx, s.cfg.CaseSource)
		if err != nil {
			return fmt.Errorf("load cases: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		snap.Vaccinations, snap.VaccinationDrops, err = dataset.LoadVaccinations(egCtx, s.cfg.VaccinationSource)
		if err != nil {
			return fmt.Errorf("load vaccinations: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	snap.Summaries = SummarizeRegions(snap.Cases)
	snap.VaccinationTotals = VaccinationTotalsByRegion(snap.Vaccinations)
	snap.Gender = GenderSums(snap.Vaccinations)
	snap.Overview = BuildOverview(snap.Summaries, snap.Vaccinations)

	metrics.SnapshotLoads.Inc()
	metrics.SnapshotLoadSeconds.Observe(time.Since(start).Seconds())
	logger.Infof(ctx, "snapshot %s loaded: %d case rows (%d dropped), %d vaccination rows (%d dropped)",
		snap.ID, len(snap.Cases), snap.CaseDrops.Dropped, len(snap.Vaccinations), snap.VaccinationDrops.Dropped)

	return snap, nil
}

// TopRegionsByConfirmed returns the first n region names of the summary
// ranking, used to select the trend series.
func (s *Snapshot) TopRegionsByConfirmed(n int) []domain.Region {
	if n > len(s.Summaries) {
		n = len(s.Summaries)
	}
	regions := make([]domain.Region, 0, n)
	for _, summary := range s.Summaries[:n] {
		regions = append(regions, summary.Region)
	}
	return regions
}
