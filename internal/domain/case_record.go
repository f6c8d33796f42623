package domain

import "time"

// Region is a first-level administrative division (state or union territory),
// identified by name. All summaries group by it.
type Region = string

// CaseRecord is one cleaned (region, date) observation from the case source.
// Counts are cumulative as of Date, not daily deltas.
type CaseRecord struct {
	Region    Region    `json:"region"`
	Date      time.Time `json:"date"`
	Confirmed int64     `json:"confirmed"`
	Cured     int64     `json:"cured"`
	Deaths    int64     `json:"deaths"`
	// Active is derived on load: Confirmed - (Cured + Deaths). It may go
	// negative when the source data is inconsistent; that is passed through.
	Active int64 `json:"active"`
}

// RegionSummary is the per-region rollup over every observed date. Counts are
// the maximum cumulative values, rates are percentages of max confirmed.
type RegionSummary struct {
	Region       Region  `json:"region"`
	Confirmed    int64   `json:"confirmed"`
	Cured        int64   `json:"cured"`
	Deaths       int64   `json:"deaths"`
	RecoveryRate float64 `json:"recovery_rate"`
	DeathRate    float64 `json:"death_rate"`
}

// RegionMetric is a single (region, value) ranking row, used by the top-N
// bar-chart tables.
type RegionMetric struct {
	Region Region `json:"region"`
	Value  int64  `json:"value"`
}
