package analytics

import (
	"sort"
	"strings"

	"career-compass/internal/dataset"
)

// JobTitleAnalysis is the result of a title search. The search term filters
// by case-insensitive substring match over the exact job_title value.
type JobTitleAnalysis struct {
	TitleCounts            []KeyCount    `json:"title_counts"`
	SalaryByTitle          []TitleSalary `json:"salary_by_title"`
	ExperienceDistribution []KeyCount    `json:"experience_distribution"`
	TopSkills              []KeyCount    `json:"top_skills"`
	TotalJobs              int           `json:"total_jobs"`
}

type TitleSalary struct {
	Title  string  `json:"title"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Count  int     `json:"count"`
}

// minTitleSalaryCount keeps one-off titles out of the per-title salary stats.
const minTitleSalaryCount = 3

// JobTitleSearch analyzes postings whose title contains term (empty term
// means all postings). Zero matches yield ErrNoData.
func (a *Analyzer) JobTitleSearch(term string) (JobTitleAnalysis, error) {
	needle := strings.ToLower(strings.TrimSpace(term))

	subset := make([]dataset.Record, 0, len(a.records))
	for _, r := range a.records {
		if needle != "" && !strings.Contains(strings.ToLower(r.JobTitle), needle) {
			continue
		}
		subset = append(subset, r)
	}
	if len(subset) == 0 {
		return JobTitleAnalysis{}, ErrNoData
	}

	titles := newCounter()
	levels := newCounter()
	skills := newCounter()
	salaries := make(map[string][]float64)

	for _, r := range subset {
		titles.Add(r.JobTitle)
		levels.Add(r.ExperienceLevel)
		salaries[r.JobTitle] = append(salaries[r.JobTitle], r.SalaryUSD)
		for _, skill := range r.Skills {
			skills.Add(skill)
		}
	}

	byTitle := make([]TitleSalary, 0, titles.Distinct())
	for _, entry := range titles.MostCommon(0) {
		vals := salaries[entry.Key]
		if len(vals) < minTitleSalaryCount {
			continue
		}
		byTitle = append(byTitle, TitleSalary{
			Title:  entry.Key,
			Mean:   mean(vals),
			StdDev: stdDev(vals),
			Count:  len(vals),
		})
	}
	sort.SliceStable(byTitle, func(i, j int) bool { return byTitle[i].Mean > byTitle[j].Mean })

	return JobTitleAnalysis{
		TitleCounts:            titles.MostCommon(20),
		SalaryByTitle:          byTitle,
		ExperienceDistribution: levels.MostCommon(0),
		TopSkills:              skills.MostCommon(15),
		TotalJobs:              len(subset),
	}, nil
}
