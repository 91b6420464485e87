package analytics

import (
	"math"
	"sort"
)

// SalaryStats is the descriptive statistics block shared by salary queries.
type SalaryStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	StdDev float64 `json:"std_dev"`
	Count  int     `json:"count"`
}

func computeSalaryStats(values []float64) SalaryStats {
	n := len(values)
	if n == 0 {
		return SalaryStats{}
	}
	return SalaryStats{
		Mean:   mean(values),
		Median: median(values),
		Min:    minOf(values),
		Max:    maxOf(values),
		StdDev: stdDev(values),
		Count:  n,
	}
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

// stdDev is the sample standard deviation (n-1 denominator). A single
// observation has no spread, reported as 0.
func stdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	m := mean(values)
	var ss float64
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(n-1))
}

// counter is a frequency multiset that remembers first-encounter order so
// MostCommon breaks count ties deterministically.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) Add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) Count(key string) int {
	return c.counts[key]
}

func (c *counter) Distinct() int {
	return len(c.counts)
}

// MostCommon returns the n highest-count entries, ties broken by the order
// keys were first added. n <= 0 means all entries.
func (c *counter) MostCommon(n int) []KeyCount {
	ranked := make([]KeyCount, 0, len(c.order))
	for _, key := range c.order {
		ranked = append(ranked, KeyCount{Key: key, Count: c.counts[key]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// KeyCount is one entry of a frequency ranking.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}
