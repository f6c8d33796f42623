package domain

// Metric is a scalar dashboard metric together with its grouped-integer
// display form ("1,234,567").
type Metric struct {
	Value   int64  `json:"value"`
	Display string `json:"display"`
}

// Overview holds the five nationwide headline metrics. Confirmed, cured and
// deaths are sums of the per-region maxima; active is confirmed minus
// (cured + deaths); vaccinated is the sum over every vaccination record.
type Overview struct {
	Confirmed  Metric `json:"confirmed"`
	Active     Metric `json:"active"`
	Cured      Metric `json:"cured"`
	Deaths     Metric `json:"deaths"`
	Vaccinated Metric `json:"vaccinated"`
}
