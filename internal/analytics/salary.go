package analytics

import (
	"sort"
	"strings"

	"career-compass/internal/dataset"
)

// SalaryFilter narrows a salary analysis. Both fields are optional and
// independent: level is an exact case-insensitive match, industry a
// case-insensitive substring match.
type SalaryFilter struct {
	ExperienceLevel string
	Industry        string
}

// SalaryAnalysis is the result of a salary query over the filtered subset.
type SalaryAnalysis struct {
	Stats         SalaryStats        `json:"stats"`
	ByExperience  []ExperienceSalary `json:"by_experience"`
	TopIndustries []IndustrySalary   `json:"top_industries"`
	Rows          []SalaryRow        `json:"rows"`
}

type ExperienceSalary struct {
	Level string  `json:"level"`
	Mean  float64 `json:"mean"`
	Count int     `json:"count"`
}

type IndustrySalary struct {
	Industry string  `json:"industry"`
	Mean     float64 `json:"mean"`
}

// SalaryRow is the filtered row projection handed to the UI.
type SalaryRow struct {
	JobTitle        string  `json:"job_title"`
	SalaryUSD       float64 `json:"salary_usd"`
	ExperienceLevel string  `json:"experience_level"`
	Industry        string  `json:"industry"`
	CompanyLocation string  `json:"company_location"`
}

// SalaryAnalysis computes salary statistics over the records matching the
// filter. An empty subset yields ErrNoData, never zero-valued statistics.
func (a *Analyzer) SalaryAnalysis(filter SalaryFilter) (SalaryAnalysis, error) {
	subset := a.filterSalary(filter)
	if len(subset) == 0 {
		return SalaryAnalysis{}, ErrNoData
	}

	salaries := make([]float64, 0, len(subset))
	for _, r := range subset {
		salaries = append(salaries, r.SalaryUSD)
	}

	out := SalaryAnalysis{
		Stats:         computeSalaryStats(salaries),
		ByExperience:  salaryByExperience(subset),
		TopIndustries: topIndustriesByMeanSalary(subset, 10),
		Rows:          projectSalaryRows(subset),
	}
	return out, nil
}

func (a *Analyzer) filterSalary(filter SalaryFilter) []dataset.Record {
	level := strings.ToUpper(strings.TrimSpace(filter.ExperienceLevel))
	industry := strings.ToLower(strings.TrimSpace(filter.Industry))

	subset := make([]dataset.Record, 0, len(a.records))
	for _, r := range a.records {
		if level != "" && r.ExperienceLevel != level {
			continue
		}
		if industry != "" && !strings.Contains(strings.ToLower(r.Industry), industry) {
			continue
		}
		subset = append(subset, r)
	}
	return subset
}

func salaryByExperience(records []dataset.Record) []ExperienceSalary {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		if _, seen := counts[r.ExperienceLevel]; !seen {
			order = append(order, r.ExperienceLevel)
		}
		sums[r.ExperienceLevel] += r.SalaryUSD
		counts[r.ExperienceLevel]++
	}

	sort.Strings(order)

	out := make([]ExperienceSalary, 0, len(order))
	for _, level := range order {
		out = append(out, ExperienceSalary{
			Level: level,
			Mean:  sums[level] / float64(counts[level]),
			Count: counts[level],
		})
	}
	return out
}

func topIndustriesByMeanSalary(records []dataset.Record, limit int) []IndustrySalary {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string
	for _, r := range records {
		if _, seen := counts[r.Industry]; !seen {
			order = append(order, r.Industry)
		}
		sums[r.Industry] += r.SalaryUSD
		counts[r.Industry]++
	}

	out := make([]IndustrySalary, 0, len(order))
	for _, ind := range order {
		out = append(out, IndustrySalary{Industry: ind, Mean: sums[ind] / float64(counts[ind])})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Mean > out[j].Mean })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func projectSalaryRows(records []dataset.Record) []SalaryRow {
	rows := make([]SalaryRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, SalaryRow{
			JobTitle:        r.JobTitle,
			SalaryUSD:       r.SalaryUSD,
			ExperienceLevel: r.ExperienceLevel,
			Industry:        r.Industry,
			CompanyLocation: r.CompanyLocation,
		})
	}
	return rows
}
