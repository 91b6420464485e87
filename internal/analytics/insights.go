package analytics

// SummaryInsights is the dataset overview shown on the landing view.
type SummaryInsights struct {
	TotalJobs              int            `json:"total_jobs"`
	AverageSalary          float64        `json:"average_salary"`
	TopIndustry            string         `json:"top_industry"`
	TopCountry             string         `json:"top_country"`
	TopSkill               string         `json:"top_skill"`
	RemotePercentage       float64        `json:"remote_percentage"`
	ExperienceDistribution map[string]int `json:"experience_distribution"`
}

// SummaryInsights computes headline numbers over the whole snapshot.
// RemotePercentage counts a posting as remote when its remote ratio is
// anything above zero.
func (a *Analyzer) SummaryInsights() (SummaryInsights, error) {
	if len(a.records) == 0 {
		return SummaryInsights{}, ErrNoData
	}

	industries := newCounter()
	countries := newCounter()
	skills := newCounter()
	expDist := make(map[string]int)

	var salarySum float64
	var remoteCount int
	for _, r := range a.records {
		industries.Add(r.Industry)
		countries.Add(r.Country)
		for _, skill := range r.Skills {
			skills.Add(skill)
		}
		expDist[r.ExperienceLevel]++
		salarySum += r.SalaryUSD
		if r.RemoteRatio > 0 {
			remoteCount++
		}
	}

	topSkill := "N/A"
	if ranked := skills.MostCommon(1); len(ranked) > 0 {
		topSkill = ranked[0].Key
	}

	total := len(a.records)
	return SummaryInsights{
		TotalJobs:              total,
		AverageSalary:          salarySum / float64(total),
		TopIndustry:            industries.MostCommon(1)[0].Key,
		TopCountry:             countries.MostCommon(1)[0].Key,
		TopSkill:               topSkill,
		RemotePercentage:       float64(remoteCount) / float64(total) * 100,
		ExperienceDistribution: expDist,
	}, nil
}
