package analytics

import "sort"

// GeographicAnalysis summarizes the dataset per country. Country is derived
// 1:1 from company location during normalization.
type GeographicAnalysis struct {
	JobCounts              []KeyCount            `json:"job_counts"`
	SalaryRanking          []CountrySalaryRank   `json:"salary_ranking"`
	RemoteTrends           []RemoteTrend         `json:"remote_trends"`
	TopIndustriesByCountry map[string][]KeyCount `json:"top_industries_by_country"`
}

type CountrySalaryRank struct {
	Country string  `json:"country"`
	Mean    float64 `json:"mean"`
	Count   int     `json:"count"`
}

// minCountrySalaryCount keeps thin countries out of the salary ranking.
const minCountrySalaryCount = 5

// GeographicAnalysis computes the top-15 countries by posting count, a mean
// salary ranking for countries with at least 5 postings, remote-work
// averages and the top-5 industries within each top-10 country.
func (a *Analyzer) GeographicAnalysis() (GeographicAnalysis, error) {
	if len(a.records) == 0 {
		return GeographicAnalysis{}, ErrNoData
	}

	counts := newCounter()
	salarySums := make(map[string]float64)
	remoteSums := make(map[string]float64)
	industries := make(map[string]*counter)

	for _, r := range a.records {
		counts.Add(r.Country)
		salarySums[r.Country] += r.SalaryUSD
		remoteSums[r.Country] += r.RemoteRatio

		ic, ok := industries[r.Country]
		if !ok {
			ic = newCounter()
			industries[r.Country] = ic
		}
		ic.Add(r.Industry)
	}

	ranking := make([]CountrySalaryRank, 0, counts.Distinct())
	remote := make([]RemoteTrend, 0, counts.Distinct())
	for _, entry := range counts.MostCommon(0) {
		n := entry.Count
		remote = append(remote, RemoteTrend{
			Key:             entry.Key,
			MeanRemoteRatio: remoteSums[entry.Key] / float64(n),
		})
		if n < minCountrySalaryCount {
			continue
		}
		ranking = append(ranking, CountrySalaryRank{
			Country: entry.Key,
			Mean:    salarySums[entry.Key] / float64(n),
			Count:   n,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].Mean > ranking[j].Mean })
	sort.SliceStable(remote, func(i, j int) bool { return remote[i].MeanRemoteRatio > remote[j].MeanRemoteRatio })

	topIndustries := make(map[string][]KeyCount, 10)
	for _, entry := range counts.MostCommon(10) {
		topIndustries[entry.Key] = industries[entry.Key].MostCommon(5)
	}

	return GeographicAnalysis{
		JobCounts:              counts.MostCommon(15),
		SalaryRanking:          ranking,
		RemoteTrends:           remote,
		TopIndustriesByCountry: topIndustries,
	}, nil
}
