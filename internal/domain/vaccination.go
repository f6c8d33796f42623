package domain

import "time"

// VaccinationRecord is one cleaned (region, date) snapshot from the
// vaccination source. The nationwide aggregate row never makes it here.
type VaccinationRecord struct {
	Region Region    `json:"region"`
	Date   time.Time `json:"date"`
	Total  int64     `json:"total"`
	// Male and Female are optional source columns; absent cells load as zero
	// and do not cause the row to be dropped.
	Male   int64 `json:"male"`
	Female int64 `json:"female"`
}

// RegionVaccinationTotal is the per-region sum of total individuals vaccinated
// across all dates.
type RegionVaccinationTotal struct {
	Region Region `json:"region"`
	Total  int64  `json:"total"`
}

// GenderSplit carries the independent male/female vaccination sums. The two
// columns come from the source as-is and are never reconciled against Total.
type GenderSplit struct {
	Male   int64 `json:"male"`
	Female int64 `json:"female"`
}
