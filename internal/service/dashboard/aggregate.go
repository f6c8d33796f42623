package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkorsa/covidash/internal/domain"
)

// ratePrecision is the decimal scale rates are rounded to before the float
// conversion.
const ratePrecision = 4

var hundred = decimal.NewFromInt(100)

// SummarizeRegions groups cases by region, takes the maximum cumulative
// counts per group and derives recovery/death rates. The result is sorted by
// confirmed count descending, ties broken by region name ascending.
//
// When a region's max confirmed count is zero both rates are reported as 0;
// NaN would not survive JSON encoding.
func SummarizeRegions(cases []domain.CaseRecord) []domain.RegionSummary {
	type maxima struct {
		confirmed, cured, deaths int64
	}
	byRegion := make(map[domain.Region]*maxima)
	for _, c := range cases {
		m, ok := byRegion[c.Region]
		if !ok {
			m = &maxima{}
			byRegion[c.Region] = m
		}
		m.confirmed = max64(m.confirmed, c.Confirmed)
		m.cured = max64(m.cured, c.Cured)
		m.deaths = max64(m.deaths, c.Deaths)
	}

	summaries := make([]domain.RegionSummary, 0, len(byRegion))
	for _, region := range sortedRegions(byRegion) {
		m := byRegion[region]
		s := domain.RegionSummary{
			Region:    region,
			Confirmed: m.confirmed,
			Cured:     m.cured,
			Deaths:    m.deaths,
		}
		if m.confirmed > 0 {
			confirmed := decimal.NewFromInt(m.confirmed)
			s.RecoveryRate = rate(m.cured, confirmed)
			s.DeathRate = rate(m.deaths, confirmed)
		}
		summaries = append(summaries, s)
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Confirmed > summaries[j].Confirmed
	})

	return summaries
}

func rate(part int64, confirmed decimal.Decimal) float64 {
	return decimal.NewFromInt(part).Mul(hundred).Div(confirmed).Round(ratePrecision).InexactFloat64()
}

// TopActiveByRegion ranks regions by their maximum observed active count,
// descending, and returns at most n rows. n < 0 means no limit.
func TopActiveByRegion(cases []domain.CaseRecord, n int) []domain.RegionMetric {
	return topByRegion(cases, n, func(c domain.CaseRecord) int64 { return c.Active })
}

// TopDeathsByRegion ranks regions by their maximum observed death count.
func TopDeathsByRegion(cases []domain.CaseRecord, n int) []domain.RegionMetric {
	return topByRegion(cases, n, func(c domain.CaseRecord) int64 { return c.Deaths })
}

func topByRegion(cases []domain.CaseRecord, n int, metric func(domain.CaseRecord) int64) []domain.RegionMetric {
	byRegion := make(map[domain.Region]int64)
	for _, c := range cases {
		v := metric(c)
		if cur, ok := byRegion[c.Region]; !ok || v > cur {
			byRegion[c.Region] = v
		}
	}

	rows := make([]domain.RegionMetric, 0, len(byRegion))
	for _, region := range sortedRegions(byRegion) {
		rows = append(rows, domain.RegionMetric{Region: region, Value: byRegion[region]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Value > rows[j].Value })

	if n >= 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// TrendForRegions filters cases down to the given regions, preserving source
// order, which keeps dates ordered per region the way they were loaded.
func TrendForRegions(cases []domain.CaseRecord, regions []domain.Region) []domain.CaseRecord {
	want := make(map[domain.Region]struct{}, len(regions))
	for _, r := range regions {
		want[r] = struct{}{}
	}

	out := make([]domain.CaseRecord, 0)
	for _, c := range cases {
		if _, ok := want[c.Region]; ok {
			out = append(out, c)
		}
	}
	return out
}

// RegionVaccinationTotals is the per-region vaccination ranking, stored
// most-vaccinated first. The ascending ordering is a reversed view over the
// same rows, not an independently maintained table.
type RegionVaccinationTotals []domain.RegionVaccinationTotal

// VaccinationTotalsByRegion sums total individuals vaccinated per region,
// sorted descending, ties broken by region name ascending.
func VaccinationTotalsByRegion(records []domain.VaccinationRecord) RegionVaccinationTotals {
	byRegion := make(map[domain.Region]int64)
	for _, r := range records {
		byRegion[r.Region] += r.Total
	}

	rows := make(RegionVaccinationTotals, 0, len(byRegion))
	for _, region := range sortedRegions(byRegion) {
		rows = append(rows, domain.RegionVaccinationTotal{Region: region, Total: byRegion[region]})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Total > rows[j].Total })

	return rows
}

// Descending returns the most-vaccinated-first ordering.
func (t RegionVaccinationTotals) Descending() []domain.RegionVaccinationTotal {
	return t
}

// Ascending returns the least-vaccinated-first ordering, the exact reverse of
// Descending over the same rows.
func (t RegionVaccinationTotals) Ascending() []domain.RegionVaccinationTotal {
	out := make([]domain.RegionVaccinationTotal, len(t))
	for i, row := range t {
		out[len(t)-1-i] = row
	}
	return out
}

// Head returns at most n leading rows of an ordering.
func Head(rows []domain.RegionVaccinationTotal, n int) []domain.RegionVaccinationTotal {
	if n >= 0 && len(rows) > n {
		return rows[:n]
	}
	return rows
}

// GenderSums sums the male and female columns independently across all
// records. The two sums intentionally do not reconcile against the total
// column; they are separate source series.
func GenderSums(records []domain.VaccinationRecord) domain.GenderSplit {
	var split domain.GenderSplit
	for _, r := range records {
		split.Male += r.Male
		split.Female += r.Female
	}
	return split
}

// BuildOverview derives the five headline metrics from the summarized case
// table and the vaccination records.
func BuildOverview(summaries []domain.RegionSummary, vaccinations []domain.VaccinationRecord) domain.Overview {
	var confirmed, cured, deaths int64
	for _, s := range summaries {
		confirmed += s.Confirmed
		cured += s.Cured
		deaths += s.Deaths
	}
	active := confirmed - (cured + deaths)

	var vaccinated int64
	for _, v := range vaccinations {
		vaccinated += v.Total
	}

	return domain.Overview{
		Confirmed:  metric(confirmed),
		Active:     metric(active),
		Cured:      metric(cured),
		Deaths:     metric(deaths),
		Vaccinated: metric(vaccinated),
	}
}

var displayPrinter = message.NewPrinter(language.English)

func metric(v int64) domain.Metric {
	return domain.Metric{Value: v, Display: displayPrinter.Sprintf("%d", v)}
}

// sortedRegions materializes grouping-map keys in lexicographic order so
// every downstream ordering is deterministic regardless of map iteration.
func sortedRegions[V any](m map[domain.Region]V) []domain.Region {
	regions := make([]domain.Region, 0, len(m))
	for r := range m {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
