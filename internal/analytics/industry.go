package analytics

import "sort"

// IndustryTrends summarizes the dataset per industry.
type IndustryTrends struct {
	JobCounts              []KeyCount                `json:"job_counts"`
	SalaryRanking          []IndustrySalaryRank      `json:"salary_ranking"`
	RemoteTrends           []RemoteTrend             `json:"remote_trends"`
	ExperienceDistribution map[string]map[string]int `json:"experience_distribution"`
}

type IndustrySalaryRank struct {
	Industry string  `json:"industry"`
	Mean     float64 `json:"mean"`
	Count    int     `json:"count"`
}

// RemoteTrend is the mean remote ratio for one group (industry or country).
type RemoteTrend struct {
	Key             string  `json:"key"`
	MeanRemoteRatio float64 `json:"mean_remote_ratio"`
}

// minIndustrySalaryCount keeps thin industries out of the salary ranking.
const minIndustrySalaryCount = 10

// IndustryTrends computes the top-15 industries by posting count, the mean
// salary ranking for industries with at least 10 postings, remote-work
// averages and the industry × experience-level contingency table.
func (a *Analyzer) IndustryTrends() (IndustryTrends, error) {
	if len(a.records) == 0 {
		return IndustryTrends{}, ErrNoData
	}

	counts := newCounter()
	salarySums := make(map[string]float64)
	remoteSums := make(map[string]float64)
	expDist := make(map[string]map[string]int)

	for _, r := range a.records {
		counts.Add(r.Industry)
		salarySums[r.Industry] += r.SalaryUSD
		remoteSums[r.Industry] += r.RemoteRatio

		levels, ok := expDist[r.Industry]
		if !ok {
			levels = make(map[string]int)
			expDist[r.Industry] = levels
		}
		levels[r.ExperienceLevel]++
	}

	ranking := make([]IndustrySalaryRank, 0, counts.Distinct())
	remote := make([]RemoteTrend, 0, counts.Distinct())
	for _, entry := range counts.MostCommon(0) {
		n := entry.Count
		remote = append(remote, RemoteTrend{
			Key:             entry.Key,
			MeanRemoteRatio: remoteSums[entry.Key] / float64(n),
		})
		if n < minIndustrySalaryCount {
			continue
		}
		ranking = append(ranking, IndustrySalaryRank{
			Industry: entry.Key,
			Mean:     salarySums[entry.Key] / float64(n),
			Count:    n,
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].Mean > ranking[j].Mean })
	sort.SliceStable(remote, func(i, j int) bool { return remote[i].MeanRemoteRatio > remote[j].MeanRemoteRatio })

	return IndustryTrends{
		JobCounts:              counts.MostCommon(15),
		SalaryRanking:          ranking,
		RemoteTrends:           remote,
		ExperienceDistribution: expDist,
	}, nil
}
